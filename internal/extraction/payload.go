// Package extraction wraps the JSON object returned by the extraction model.
// The object has no fixed shape: any field may be missing, null, a string
// where a number was asked for, or nested under "drayage". Callers read it
// through ordered candidate paths and typed accessors.
package extraction

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"freightquote/internal/util"
)

var ErrMalformed = errors.New("extraction: reply is not a JSON object")

var reFence = regexp.MustCompile("(?i)```(?:json)?")

type Payload struct {
	root map[string]any
}

// New wraps an already decoded object. A nil map is an empty payload.
func New(root map[string]any) Payload {
	if root == nil {
		root = map[string]any{}
	}
	return Payload{root: root}
}

// Decode parses the model reply. Code fences are stripped and an empty reply
// is an empty payload. On malformed input the returned payload is still
// usable (empty) and the error wraps ErrMalformed.
func Decode(reply string) (Payload, error) {
	text := strings.TrimSpace(reFence.ReplaceAllString(reply, ""))
	if text == "" {
		return New(nil), nil
	}
	dec := json.NewDecoder(bytes.NewReader([]byte(text)))
	dec.UseNumber()
	var root map[string]any
	if err := dec.Decode(&root); err != nil {
		return New(nil), fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return New(root), nil
}

func (p Payload) Raw() map[string]any {
	return p.root
}

func (p Payload) Empty() bool {
	return len(p.root) == 0
}

// Lookup resolves a dotted path such as "drayage.invoice.chassis_days".
// Null values and empty strings count as absent.
func (p Payload) Lookup(path string) (any, bool) {
	var cur any = p.root
	for _, key := range strings.Split(path, ".") {
		obj, ok := cur.(map[string]any)
		if !ok {
			return nil, false
		}
		cur, ok = obj[key]
		if !ok {
			return nil, false
		}
	}
	if cur == nil {
		return nil, false
	}
	if s, ok := cur.(string); ok && strings.TrimSpace(s) == "" {
		return nil, false
	}
	return cur, true
}

// First returns the value of the first candidate path that is present.
func (p Payload) First(paths ...string) (any, bool) {
	for _, path := range paths {
		if v, ok := p.Lookup(path); ok {
			return v, true
		}
	}
	return nil, false
}

// String returns the first present candidate rendered as text.
func (p Payload) String(paths ...string) (string, bool) {
	v, ok := p.First(paths...)
	if !ok {
		return "", false
	}
	switch t := v.(type) {
	case string:
		return strings.TrimSpace(t), true
	case json.Number:
		return t.String(), true
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64), true
	case bool:
		return strconv.FormatBool(t), true
	}
	return "", false
}

// Float returns the first candidate that yields a number. Strings are parsed
// leniently ("62 miles" is 62); candidates that do not parse are skipped.
func (p Payload) Float(paths ...string) (float64, bool) {
	for _, path := range paths {
		v, ok := p.Lookup(path)
		if !ok {
			continue
		}
		if f, ok := toFloat(v); ok {
			return f, true
		}
	}
	return 0, false
}

// Int is Float truncated toward zero.
func (p Payload) Int(paths ...string) (int, bool) {
	f, ok := p.Float(paths...)
	return int(f), ok
}

// Bool coerces the first present candidate. Strings are true for
// yes/y/1/true/on, numbers for values above zero.
func (p Payload) Bool(paths ...string) (bool, bool) {
	v, ok := p.First(paths...)
	if !ok {
		return false, false
	}
	return toBool(v), true
}

// HasObject reports whether path holds an object with at least one non-null
// member.
func (p Payload) HasObject(path string) bool {
	v, ok := p.Lookup(path)
	if !ok {
		return false
	}
	obj, ok := v.(map[string]any)
	if !ok {
		return false
	}
	for _, member := range obj {
		if member != nil {
			return true
		}
	}
	return false
}

func toFloat(v any) (float64, bool) {
	switch t := v.(type) {
	case json.Number:
		f, err := t.Float64()
		return f, err == nil
	case float64:
		return t, true
	case int:
		return float64(t), true
	case string:
		return util.ParseLooseFloat(t)
	}
	return 0, false
}

func toBool(v any) bool {
	switch t := v.(type) {
	case bool:
		return t
	case string:
		return util.IsTruthy(t)
	}
	if f, ok := toFloat(v); ok {
		return f > 0
	}
	return false
}
