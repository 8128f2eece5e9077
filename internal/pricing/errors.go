package pricing

import (
	"errors"
	"fmt"
)

var (
	ErrUnsupportedContainerSize = errors.New("unsupported container size")
	ErrMissingRateConfiguration = errors.New("rate sheet has no drayage configuration")
)

type UnsupportedContainerSizeError struct {
	Size string
}

func (e *UnsupportedContainerSizeError) Error() string {
	return fmt.Sprintf("%v: %q", ErrUnsupportedContainerSize, e.Size)
}

func (e *UnsupportedContainerSizeError) Is(target error) bool {
	return target == ErrUnsupportedContainerSize
}
