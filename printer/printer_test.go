package printer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/viant/convertly"
	"golang.org/x/text/language"
)

func TestConverter_Int(t *testing.T) {
	cnv := New(language.AmericanEnglish)

	text, err := cnv.Int(1234567)
	assert.Nil(t, err)
	assert.Equal(t, "1,234,567", text)
}

func TestConverter_IntPadded(t *testing.T) {
	cnv := New(language.AmericanEnglish).Width(12).Fill('.')

	text, err := cnv.Int(1234567)
	assert.Nil(t, err)
	assert.Equal(t, "...1,234,567", text)
}

func TestConverter_Float(t *testing.T) {
	cnv := New(language.AmericanEnglish)

	text, err := cnv.Float(1234.5)
	assert.Nil(t, err)
	assert.Equal(t, "1,234.5", text)
}

func TestConverter_Batch(t *testing.T) {
	cnv := New(language.AmericanEnglish)

	strs := convertly.TransformOr([]int64{1000, 2000000}, cnv.Int, "")
	assert.Equal(t, []string{"1,000", "2,000,000"}, strs)
}
