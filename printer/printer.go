// Package printer renders numbers with locale-aware grouping through
// golang.org/x/text. It is a render-only back-end: there is no parsing
// counterpart.
package printer

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/viant/convertly"
)

// Converter renders decimal numbers for a language tag, applying
// width/fill/adjustment after localization. Base options do not apply.
type Converter struct {
	options convertly.Options
	printer *message.Printer
}

// New creates a printer converter for tag
func New(tag language.Tag, opts ...convertly.Option) *Converter {
	return &Converter{
		options: convertly.NewOptions(opts...),
		printer: message.NewPrinter(tag),
	}
}

// Options exposes the converter formatting state.
func (c *Converter) Options() *convertly.Options {
	return &c.options
}

// Width sets the minimum rendered width, returning the receiver for chaining.
func (c *Converter) Width(width int) *Converter {
	c.options.Width = width
	return c
}

// Fill sets the padding character.
func (c *Converter) Fill(fill rune) *Converter {
	c.options.Fill = fill
	return c
}

// Int renders value with locale grouping.
func (c *Converter) Int(value int64) (string, error) {
	return c.options.Pad(c.printer.Sprintf("%v", number.Decimal(value))), nil
}

// Float renders value with locale grouping.
func (c *Converter) Float(value float64) (string, error) {
	return c.options.Pad(c.printer.Sprintf("%v", number.Decimal(value))), nil
}
