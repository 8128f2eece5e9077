package ratesheet

import (
	"errors"
	"fmt"
)

var ErrCardNotFound = errors.New("rate card not found")

// ParseError reports a rate sheet that cannot be turned into a Sheet.
type ParseError struct {
	Section string
	Err     error
}

func (e *ParseError) Error() string {
	if e.Section != "" {
		return fmt.Sprintf("rate sheet: %s: %v", e.Section, e.Err)
	}
	return fmt.Sprintf("rate sheet: %v", e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
