package tags

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValues_MatchPairs(t *testing.T) {
	testCases := []struct {
		name     string
		encoded  string
		expected []string
	}{
		{
			name:     "empty",
			encoded:  "",
			expected: nil,
		},
		{
			name:     "single pair",
			encoded:  "base=hex",
			expected: []string{"base=hex"},
		},
		{
			name:     "pairs",
			encoded:  "base=hex,width=5",
			expected: []string{"base=hex", "width=5"},
		},
		{
			name:     "flag",
			encoded:  "uppercase",
			expected: []string{"uppercase="},
		},
		{
			name:     "pairs with flag",
			encoded:  "base=oct,showbase,width=3",
			expected: []string{"base=oct", "showbase=", "width=3"},
		},
		{
			name:     "quoted value",
			encoded:  "fill=',',width=3",
			expected: []string{"fill=,", "width=3"},
		},
		{
			name:     "surrounding whitespace",
			encoded:  " base=hex, width=5",
			expected: []string{"base=hex", "width=5"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var actual []string
			err := Values(tc.encoded).MatchPairs(func(key, value string) error {
				actual = append(actual, key+"="+value)
				return nil
			})
			assert.Nil(t, err)
			assert.Equal(t, tc.expected, actual)
		})
	}
}

func TestValues_MatchPairsError(t *testing.T) {
	err := Values("base=hex,width=5").MatchPairs(func(key, value string) error {
		if key == "width" {
			return fmt.Errorf("unsupported key: %s", key)
		}
		return nil
	})
	assert.NotNil(t, err)
}
