package convertly

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/viant/convertly/tags"
)

// Base is a numeric base a converter parses and renders in.
type Base int

const (
	BaseDec Base = 10
	BaseHex Base = 16
	BaseOct Base = 8
)

// Adjustment controls which side of a padded value the fill goes on.
type Adjustment int

const (
	AdjustRight Adjustment = iota
	AdjustLeft
)

// Options holds formatting configuration shared by converter back-ends.
// The zero value means: base=dec, width=0, fill=' ', adjustment=right.
type Options struct {
	Base       Base
	Width      int
	Fill       rune
	Adjustment Adjustment
	Uppercase  bool
	ShowBase   bool
	SkipSpace  bool
}

// Option mutates converter options.
type Option func(o *Options)

// Apply applies options
func (o *Options) Apply(opts ...Option) {
	for _, opt := range opts {
		opt(o)
	}
}

// NewOptions returns options with defaults, updated with opts.
func NewOptions(opts ...Option) Options {
	ret := Options{Base: BaseDec, Fill: ' '}
	ret.Apply(opts...)
	return ret
}

// WithBase sets the numeric base.
func WithBase(base Base) Option {
	return func(o *Options) {
		o.Base = base
	}
}

// WithWidth sets the minimum rendered width.
func WithWidth(width int) Option {
	return func(o *Options) {
		o.Width = width
	}
}

// WithFill sets the padding character.
func WithFill(fill rune) Option {
	return func(o *Options) {
		o.Fill = fill
	}
}

// WithAdjustment sets which side padding goes on.
func WithAdjustment(adjustment Adjustment) Option {
	return func(o *Options) {
		o.Adjustment = adjustment
	}
}

// WithUppercase controls upper case rendering of hex digits and prefixes.
func WithUppercase(uppercase bool) Option {
	return func(o *Options) {
		o.Uppercase = uppercase
	}
}

// WithShowBase controls rendering of the base prefix (0x, 0X or leading 0).
func WithShowBase(showBase bool) Option {
	return func(o *Options) {
		o.ShowBase = showBase
	}
}

// WithSkipSpace controls skipping of leading whitespace on parse.
func WithSkipSpace(skipSpace bool) Option {
	return func(o *Options) {
		o.SkipSpace = skipSpace
	}
}

// ParseOptions parses an encoded option list, e.g. "base=hex,width=5,fill=*".
// Value-less keys (uppercase, showbase, skipspace) act as flags.
func ParseOptions(encoded string) (Options, error) {
	ret := NewOptions()
	err := tags.Values(encoded).MatchPairs(func(key, value string) error {
		return ret.update(key, value)
	})
	return ret, err
}

func (o *Options) update(key, value string) error {
	switch strings.ToLower(key) {
	case "base":
		switch strings.ToLower(value) {
		case "dec", "10":
			o.Base = BaseDec
		case "hex", "16":
			o.Base = BaseHex
		case "oct", "8":
			o.Base = BaseOct
		default:
			return fmt.Errorf("unknown base: %s", value)
		}
	case "width":
		width, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid width: %w", err)
		}
		if width < 0 {
			return fmt.Errorf("negative width: %d", width)
		}
		o.Width = width
	case "fill":
		if utf8.RuneCountInString(value) != 1 {
			return fmt.Errorf("fill has to be a single character: %q", value)
		}
		fill, _ := utf8.DecodeRuneInString(value)
		o.Fill = fill
	case "adjust", "adjustment":
		switch strings.ToLower(value) {
		case "left":
			o.Adjustment = AdjustLeft
		case "right":
			o.Adjustment = AdjustRight
		default:
			return fmt.Errorf("unknown adjustment: %s", value)
		}
	case "uppercase", "upper":
		o.Uppercase = true
	case "showbase":
		o.ShowBase = true
	case "skipspace", "skipws":
		o.SkipSpace = true
	default:
		return fmt.Errorf("unknown option: %s", key)
	}
	return nil
}

func (o Options) base() Base {
	if o.Base == 0 {
		return BaseDec
	}
	return o.Base
}

// Pad pads text to the configured width with the fill character.
func (o Options) Pad(text string) string {
	count := utf8.RuneCountInString(text)
	if o.Width <= count {
		return text
	}
	fill := o.Fill
	if fill == 0 {
		fill = ' '
	}
	padding := strings.Repeat(string(fill), o.Width-count)
	if o.Adjustment == AdjustLeft {
		return text + padding
	}
	return padding + text
}

// BasePrefix returns the show-base prefix for the configured base, empty
// unless ShowBase is set.
func (o Options) BasePrefix() string {
	if !o.ShowBase {
		return ""
	}
	switch o.base() {
	case BaseHex:
		if o.Uppercase {
			return "0X"
		}
		return "0x"
	case BaseOct:
		return "0"
	}
	return ""
}

// ParseInt parses text as a signed integer in the configured base. Leading
// and trailing whitespace are skipped; hex accepts an optional 0x/0X prefix.
func (o Options) ParseInt(text string, bitSize int) (int64, error) {
	digits, err := o.normalize(text)
	if err != nil {
		return 0, err
	}
	return strconv.ParseInt(digits, int(o.base()), bitSize)
}

// ParseUint parses text as an unsigned integer in the configured base.
func (o Options) ParseUint(text string, bitSize int) (uint64, error) {
	digits, err := o.normalize(text)
	if err != nil {
		return 0, err
	}
	return strconv.ParseUint(digits, int(o.base()), bitSize)
}

// normalize strips surrounding whitespace and a hex base prefix, leaving
// bare digits with an optional sign for strconv.
func (o Options) normalize(text string) (string, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return "", fmt.Errorf("no digits in %q", text)
	}
	sign := ""
	if trimmed[0] == '+' || trimmed[0] == '-' {
		sign = string(trimmed[0])
		trimmed = trimmed[1:]
	}
	if o.base() == BaseHex && len(trimmed) > 2 && (strings.HasPrefix(trimmed, "0x") || strings.HasPrefix(trimmed, "0X")) {
		trimmed = trimmed[2:]
	}
	if trimmed == "" {
		return "", fmt.Errorf("no digits in %q", text)
	}
	return sign + trimmed, nil
}

// FormatInt renders value in the configured base with case, show-base prefix
// and width padding applied.
func (o Options) FormatInt(value int64) string {
	digits := strconv.FormatInt(value, int(o.base()))
	return o.decorate(digits)
}

// FormatUint renders value in the configured base.
func (o Options) FormatUint(value uint64) string {
	digits := strconv.FormatUint(value, int(o.base()))
	return o.decorate(digits)
}

func (o Options) decorate(digits string) string {
	if o.Uppercase {
		digits = strings.ToUpper(digits)
	}
	if prefix := o.BasePrefix(); prefix != "" {
		if strings.HasPrefix(digits, "-") {
			digits = "-" + prefix + digits[1:]
		} else {
			digits = prefix + digits
		}
	}
	return o.Pad(digits)
}
