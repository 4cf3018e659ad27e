// Package stream provides a converter that renders and parses through a live
// text buffer with iostream-style formatting state and manipulators.
package stream

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/viant/convertly"
)

// Converter formats and parses through a shared buffer. It is not copyable:
// share a single instance by pointer so that configuration and stream state
// carry across a batch of calls. Concurrent use requires external
// synchronization.
type Converter struct {
	options convertly.Options
	buf     bytes.Buffer
	err     error
}

// New creates a stream converter
func New(opts ...convertly.Option) *Converter {
	return &Converter{options: convertly.NewOptions(opts...)}
}

// Options exposes the shared formatting state.
func (c *Converter) Options() *convertly.Options {
	return &c.options
}

// Err returns the sticky stream error state.
func (c *Converter) Err() error {
	return c.err
}

// Reset clears stream state so the converter can be reused after a failed
// parse.
func (c *Converter) Reset() *Converter {
	c.err = nil
	c.buf.Reset()
	return c
}

// Dec switches the stream to decimal.
func (c *Converter) Dec() *Converter {
	c.options.Base = convertly.BaseDec
	return c
}

// Hex switches the stream to hexadecimal.
func (c *Converter) Hex() *Converter {
	c.options.Base = convertly.BaseHex
	return c
}

// Oct switches the stream to octal.
func (c *Converter) Oct() *Converter {
	c.options.Base = convertly.BaseOct
	return c
}

// SkipSpace makes parsing skip leading whitespace.
func (c *Converter) SkipSpace() *Converter {
	c.options.SkipSpace = true
	return c
}

// Uppercase renders hex digits and prefixes upper case.
func (c *Converter) Uppercase() *Converter {
	c.options.Uppercase = true
	return c
}

// ShowBase renders the base prefix (0x, 0X or leading 0).
func (c *Converter) ShowBase() *Converter {
	c.options.ShowBase = true
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

// Int parses text as a signed integer in the stream base. A failed parse
// leaves the stream in a failed state; further calls fail until Reset.
func (c *Converter) Int(text string) (int64, error) {
	digits, err := c.scan(text)
	if err != nil {
		return 0, err
	}
	value, err := strconv.ParseInt(digits, int(c.options.Base), 64)
	if err != nil {
		return 0, c.fail("cannot read %q: %v", text, err)
	}
	return value, nil
}

// Uint parses text as an unsigned integer in the stream base.
func (c *Converter) Uint(text string) (uint64, error) {
	digits, err := c.scan(text)
	if err != nil {
		return 0, err
	}
	value, err := strconv.ParseUint(digits, int(c.options.Base), 64)
	if err != nil {
		return 0, c.fail("cannot read %q: %v", text, err)
	}
	return value, nil
}

// Float parses text as a decimal floating point number.
func (c *Converter) Float(text string) (float64, error) {
	if c.err != nil {
		return 0, fmt.Errorf("stream already failed: %w", c.err)
	}
	input := text
	if c.options.SkipSpace {
		input = strings.TrimSpace(input)
	}
	value, err := strconv.ParseFloat(input, 64)
	if err != nil {
		return 0, c.fail("cannot read %q: %v", text, err)
	}
	return value, nil
}

// String renders value through the stream, applying base, case, show-base
// and width/fill/adjustment.
func (c *Converter) String(value int64) (string, error) {
	if c.err != nil {
		return "", fmt.Errorf("stream already failed: %w", c.err)
	}
	c.buf.Reset()
	magnitude := uint64(value)
	if value < 0 {
		c.buf.WriteByte('-')
		magnitude = -uint64(value)
	}
	c.buf.WriteString(c.options.BasePrefix())
	fmt.Fprintf(&c.buf, c.verb(), magnitude)
	return c.options.Pad(c.buf.String()), nil
}

// FromUint renders an unsigned value.
func (c *Converter) FromUint(value uint64) (string, error) {
	if c.err != nil {
		return "", fmt.Errorf("stream already failed: %w", c.err)
	}
	c.buf.Reset()
	c.buf.WriteString(c.options.BasePrefix())
	fmt.Fprintf(&c.buf, c.verb(), value)
	return c.options.Pad(c.buf.String()), nil
}

func (c *Converter) verb() string {
	switch c.options.Base {
	case convertly.BaseHex:
		if c.options.Uppercase {
			return "%X"
		}
		return "%x"
	case convertly.BaseOct:
		return "%o"
	}
	return "%d"
}

// scan consumes one integer token from text, loading it through the stream
// buffer and honoring skip-space; unconvertible trailing characters fail.
func (c *Converter) scan(text string) (string, error) {
	if c.err != nil {
		return "", fmt.Errorf("stream already failed: %w", c.err)
	}
	c.buf.Reset()
	c.buf.WriteString(text)
	input := c.buf.String()
	pos := 0
	if c.options.SkipSpace {
		for pos < len(input) && isSpace(input[pos]) {
			pos++
		}
	}
	var token strings.Builder
	if pos < len(input) && (input[pos] == '+' || input[pos] == '-') {
		if input[pos] == '-' {
			token.WriteByte('-')
		}
		pos++
	}
	if c.options.Base == convertly.BaseHex && pos+2 < len(input) &&
		input[pos] == '0' && (input[pos+1] == 'x' || input[pos+1] == 'X') &&
		isDigit(input[pos+2], convertly.BaseHex) {
		pos += 2
	}
	start := pos
	for pos < len(input) && isDigit(input[pos], c.options.Base) {
		pos++
	}
	if pos == start {
		return "", c.fail("no digits in %q", input)
	}
	token.WriteString(input[start:pos])
	if rest := strings.TrimRight(input[pos:], " \t\r\n"); rest != "" {
		return "", c.fail("trailing characters %q in %q", rest, input)
	}
	return token.String(), nil
}

// fail records the sticky stream error and returns it.
func (c *Converter) fail(format string, args ...interface{}) error {
	c.err = fmt.Errorf(format, args...)
	return c.err
}

func isSpace(ch byte) bool {
	return ch == ' ' || ch == '\t' || ch == '\r' || ch == '\n'
}

func isDigit(ch byte, base convertly.Base) bool {
	switch base {
	case convertly.BaseOct:
		return ch >= '0' && ch <= '7'
	case convertly.BaseHex:
		return ch >= '0' && ch <= '9' || ch >= 'a' && ch <= 'f' || ch >= 'A' && ch <= 'F'
	}
	return ch >= '0' && ch <= '9'
}
