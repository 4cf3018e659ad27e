package stream

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/viant/convertly"
)

func TestConverter_Int(t *testing.T) {
	testCases := []struct {
		name      string
		converter *Converter
		text      string
		expected  int64
		hasError  bool
	}{
		{"dec", New(), "255", 255, false},
		{"negative", New(), "-11", -11, false},
		{"hex", New().Hex(), "ff", 255, false},
		{"hex prefixed", New().Hex(), "0XF", 15, false},
		{"hex skip space", New().Hex().SkipSpace(), " 5", 5, false},
		{"oct", New().Oct(), "377", 255, false},
		{"leading space not skipped", New(), " 5", 0, true},
		{"not an int", New(), "not an int", 0, true},
		{"trailing garbage", New(), "12th", 0, true},
		{"oct digit out of base", New().Oct(), "378", 0, true},
		{"empty", New(), "", 0, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			actual, err := tc.converter.Int(tc.text)
			if tc.hasError {
				assert.NotNil(t, err)
				assert.NotNil(t, tc.converter.Err())
				return
			}
			if !assert.Nil(t, err) {
				return
			}
			assert.Equal(t, tc.expected, actual)
		})
	}
}

func TestConverter_String(t *testing.T) {
	testCases := []struct {
		name      string
		converter *Converter
		value     int64
		expected  string
	}{
		{"dec", New(), 255, "255"},
		{"hex", New().Hex(), 255, "ff"},
		{"hex uppercase", New().Hex().Uppercase(), 255, "FF"},
		{"hex uppercase show base", New().Hex().Uppercase().ShowBase(), 15, "0XF"},
		{"hex show base", New().Hex().ShowBase(), 15, "0xf"},
		{"oct", New().Oct(), 255, "377"},
		{"oct show base", New().Oct().ShowBase(), 8, "010"},
		{"width", New().Width(4), 12, "  12"},
		{"width fill", New().Width(5).Fill('*'), 12, "***12"},
		{"left adjusted", New().Width(5).Fill('x').Adjust(convertly.AdjustLeft), 12, "12xxx"},
		{"negative", New().Hex(), -255, "-ff"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			actual, err := tc.converter.String(tc.value)
			assert.Nil(t, err)
			assert.Equal(t, tc.expected, actual)
		})
	}
}

// A failed parse leaves the stream failed; it stays failed until Reset.
func TestConverter_StickyError(t *testing.T) {
	cnv := New().Hex().SkipSpace()

	value, err := cnv.Int("0XF")
	assert.Nil(t, err)
	assert.Equal(t, int64(15), value)

	_, err = cnv.Int("not an int")
	assert.NotNil(t, err)

	// a valid input still fails: the stream is in a failed state
	_, err = cnv.Int("5")
	assert.NotNil(t, err)
	_, err = cnv.String(5)
	assert.NotNil(t, err)

	cnv.Reset()
	value, err = cnv.Int("5")
	assert.Nil(t, err)
	assert.Equal(t, int64(5), value)
}

// Reusing one configured stream across calls matches reconstructing the
// configuration for every call.
func TestConverter_ReuseMatchesReconstruction(t *testing.T) {
	shared := New().Hex().Uppercase().Width(6).Fill('0')
	values := []int64{1, 15, 255, 4095}

	for _, value := range values {
		fresh := New().Hex().Uppercase().Width(6).Fill('0')
		expected, err := fresh.String(value)
		if !assert.Nil(t, err) {
			continue
		}
		actual, err := shared.String(value)
		assert.Nil(t, err)
		assert.Equal(t, expected, actual)
	}
}

func TestConverter_Uint(t *testing.T) {
	cnv := New().Hex()

	value, err := cnv.Uint("ffff")
	assert.Nil(t, err)
	assert.Equal(t, uint64(0xFFFF), value)

	text, err := cnv.FromUint(0xFFFF)
	assert.Nil(t, err)
	assert.Equal(t, "ffff", text)

	_, err = cnv.Uint("-1")
	assert.NotNil(t, err)
}

func TestConverter_Float(t *testing.T) {
	cnv := New().SkipSpace()

	value, err := cnv.Float(" 2.5")
	assert.Nil(t, err)
	assert.Equal(t, 2.5, value)

	_, err = cnv.Float("not a float")
	assert.NotNil(t, err)
}

func TestConverter_FunctionalOptions(t *testing.T) {
	cnv := New(convertly.WithBase(convertly.BaseHex), convertly.WithSkipSpace(true))

	value, err := cnv.Int(" 0XF")
	assert.Nil(t, err)
	assert.Equal(t, int64(15), value)
}
