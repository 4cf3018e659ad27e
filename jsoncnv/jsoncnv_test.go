package jsoncnv

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConverter_Decode(t *testing.T) {
	cnv := New()

	t.Run("int", func(t *testing.T) {
		value, err := cnv.Int("42")
		assert.Nil(t, err)
		assert.Equal(t, int64(42), value)

		_, err = cnv.Int("not an int")
		assert.NotNil(t, err)
	})

	t.Run("float", func(t *testing.T) {
		value, err := cnv.Float("2.5")
		assert.Nil(t, err)
		assert.Equal(t, 2.5, value)
	})

	t.Run("bool", func(t *testing.T) {
		value, err := cnv.Bool("true")
		assert.Nil(t, err)
		assert.True(t, value)

		_, err = cnv.Bool("yes")
		assert.NotNil(t, err)
	})

	t.Run("text", func(t *testing.T) {
		value, err := cnv.Text(`"abc"`)
		assert.Nil(t, err)
		assert.Equal(t, "abc", value)

		_, err = cnv.Text(`abc`) // not a JSON string literal
		assert.NotNil(t, err)
	})
}

func TestConverter_Encode(t *testing.T) {
	cnv := New()

	text, err := cnv.FromInt(-42)
	assert.Nil(t, err)
	assert.Equal(t, "-42", text)

	text, err = cnv.FromBool(true)
	assert.Nil(t, err)
	assert.Equal(t, "true", text)

	text, err = cnv.FromText("abc")
	assert.Nil(t, err)
	assert.Equal(t, `"abc"`, text)
}

func TestConverter_RoundTrip(t *testing.T) {
	cnv := New()
	values := []int64{0, 1, -1, 255, -4096}

	for _, value := range values {
		text, err := cnv.FromInt(value)
		if !assert.Nil(t, err) {
			continue
		}
		actual, err := cnv.Int(text)
		assert.Nil(t, err)
		assert.Equal(t, value, actual)
	}
}
