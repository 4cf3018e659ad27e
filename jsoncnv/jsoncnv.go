// Package jsoncnv converts single JSON literals to and from values through
// gojay. The JSON grammar is fixed, so base, width and fill options do not
// apply to this back-end.
package jsoncnv

import (
	"github.com/francoispqt/gojay"
)

// Converter decodes and encodes JSON literals. It is stateless and may be
// copied freely.
type Converter struct{}

// New creates a json converter
func New() Converter {
	return Converter{}
}

// Int decodes a JSON number literal.
func (Converter) Int(text string) (int64, error) {
	var value int64
	err := gojay.Unmarshal([]byte(text), &value)
	return value, err
}

// Float decodes a JSON number literal.
func (Converter) Float(text string) (float64, error) {
	var value float64
	err := gojay.Unmarshal([]byte(text), &value)
	return value, err
}

// Bool decodes a JSON boolean literal.
func (Converter) Bool(text string) (bool, error) {
	var value bool
	err := gojay.Unmarshal([]byte(text), &value)
	return value, err
}

// Text decodes a JSON string literal.
func (Converter) Text(text string) (string, error) {
	var value string
	err := gojay.Unmarshal([]byte(text), &value)
	return value, err
}

// FromInt encodes value as a JSON number literal.
func (Converter) FromInt(value int64) (string, error) {
	data, err := gojay.Marshal(value)
	return string(data), err
}

// FromFloat encodes value as a JSON number literal.
func (Converter) FromFloat(value float64) (string, error) {
	data, err := gojay.Marshal(value)
	return string(data), err
}

// FromBool encodes value as a JSON boolean literal.
func (Converter) FromBool(value bool) (string, error) {
	data, err := gojay.Marshal(value)
	return string(data), err
}

// FromText encodes value as a quoted JSON string literal.
func (Converter) FromText(value string) (string, error) {
	data, err := gojay.Marshal(value)
	return string(data), err
}
