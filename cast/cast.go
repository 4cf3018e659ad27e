// Package cast provides a strict converter that panics on malformed input,
// the cautionary counterpart of the non-raising back-ends.
package cast

import (
	"fmt"
	"strconv"
)

// Error describes a failed strict conversion; it is the panic payload.
type Error struct {
	Text string
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("cannot cast %q: %v", e.Text, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Converter converts decimal text only and accepts no formatting options.
// Malformed input panics with *Error: there is no non-raising call style,
// and the dispatcher deliberately does not intercept the panic.
type Converter struct{}

// New creates a cast converter
func New() Converter {
	return Converter{}
}

// Int parses decimal text, panicking with *Error on malformed input. The
// error result is always nil; it exists to satisfy convertly.Func.
func (Converter) Int(text string) (int64, error) {
	value, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		panic(&Error{Text: text, Err: err})
	}
	return value, nil
}

// Float parses decimal floating point text, panicking on malformed input.
func (Converter) Float(text string) (float64, error) {
	value, err := strconv.ParseFloat(text, 64)
	if err != nil {
		panic(&Error{Text: text, Err: err})
	}
	return value, nil
}

// String renders value as decimal text; it never fails.
func (Converter) String(value int64) (string, error) {
	return strconv.FormatInt(value, 10), nil
}
