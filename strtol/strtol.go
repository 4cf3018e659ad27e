// Package strtol parses and renders integers with C strtol-style grammar:
// optional leading whitespace, optional sign, optional base prefix, digits
// of the configured base.
package strtol

import (
	"reflect"

	"github.com/viant/convertly"
	"golang.org/x/exp/constraints"
)

// Converter converts between integers and text. A converter may be reused
// across many calls; its options are shared by all of them.
type Converter struct {
	options convertly.Options
}

// New creates a strtol converter
func New(opts ...convertly.Option) *Converter {
	return &Converter{options: convertly.NewOptions(opts...)}
}

// Options exposes the converter formatting state.
func (c *Converter) Options() *convertly.Options {
	return &c.options
}

// Base sets the numeric base, returning the receiver for chaining.
func (c *Converter) Base(base convertly.Base) *Converter {
	c.options.Base = base
	return c
}

// Width sets the minimum rendered width.
func (c *Converter) Width(width int) *Converter {
	c.options.Width = width
	return c
}

// Fill sets the padding character.
func (c *Converter) Fill(fill rune) *Converter {
	c.options.Fill = fill
	return c
}

// Adjust sets which side padding goes on.
func (c *Converter) Adjust(adjustment convertly.Adjustment) *Converter {
	c.options.Adjustment = adjustment
	return c
}

// ShowBase enables the base prefix on rendered values.
func (c *Converter) ShowBase() *Converter {
	c.options.ShowBase = true
	return c
}

// Int parses text as a signed integer in the configured base. Failure means
// no digits were scanned or unconvertible characters trailed the number.
func (c *Converter) Int(text string) (int64, error) {
	return c.options.ParseInt(text, 64)
}

// Uint parses text as an unsigned integer in the configured base.
func (c *Converter) Uint(text string) (uint64, error) {
	return c.options.ParseUint(text, 64)
}

// String renders value in the configured base with show-base prefix and
// width/fill/adjustment applied. Hex digits render upper case, as the C
// digit tables do.
func (c *Converter) String(value int64) (string, error) {
	options := c.options
	if options.Base == convertly.BaseHex {
		options.Uppercase = true
	}
	return options.FormatInt(value), nil
}

// Parse adapts the converter to a sized signed integer target; out of range
// values fail.
func Parse[T constraints.Signed](c *Converter) convertly.Func[string, T] {
	bits := reflect.TypeOf(T(0)).Bits()
	return func(text string) (T, error) {
		value, err := c.options.ParseInt(text, bits)
		return T(value), err
	}
}

// ParseUnsigned adapts the converter to a sized unsigned integer target.
func ParseUnsigned[T constraints.Unsigned](c *Converter) convertly.Func[string, T] {
	bits := reflect.TypeOf(T(0)).Bits()
	return func(text string) (T, error) {
		value, err := c.options.ParseUint(text, bits)
		return T(value), err
	}
}

// Format adapts the converter to render any signed integer source.
func Format[T constraints.Signed](c *Converter) convertly.Func[T, string] {
	return func(value T) (string, error) {
		return c.String(int64(value))
	}
}
