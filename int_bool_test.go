package openrtb

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntBoolUnmarshal(t *testing.T) {
	testCases := []struct {
		description string
		json        string
		expected    IntBool
	}{
		{
			description: "zero is false",
			json:        `0`,
			expected:    false,
		},
		{
			description: "one is true",
			json:        `1`,
			expected:    true,
		},
		{
			description: "any nonzero integer is true",
			json:        `512`,
			expected:    true,
		},
		{
			description: "negative integers are true",
			json:        `-1`,
			expected:    true,
		},
	}

	for _, test := range testCases {
		t.Run(test.description, func(t *testing.T) {
			var b IntBool
			require.NoError(t, json.Unmarshal([]byte(test.json), &b))
			assert.Equal(t, test.expected, b)
		})
	}
}

func TestIntBoolUnmarshalErrors(t *testing.T) {
	testCases := []struct {
		description string
		json        string
	}{
		{
			description: "json boolean is not wire form",
			json:        `true`,
		},
		{
			description: "quoted integer",
			json:        `"1"`,
		},
		{
			description: "float",
			json:        `1.5`,
		},
	}

	for _, test := range testCases {
		t.Run(test.description, func(t *testing.T) {
			var b IntBool
			assert.Error(t, json.Unmarshal([]byte(test.json), &b))
		})
	}
}

func TestIntBoolMarshal(t *testing.T) {
	out, err := json.Marshal(IntBool(true))
	require.NoError(t, err)
	assert.Equal(t, `1`, string(out))

	out, err = json.Marshal(IntBool(false))
	require.NoError(t, err)
	assert.Equal(t, `0`, string(out))
}

func TestIntBoolNormalizesOnRoundTrip(t *testing.T) {
	var b IntBool
	require.NoError(t, json.Unmarshal([]byte(`5`), &b))
	assert.True(t, b.Val())

	out, err := json.Marshal(b)
	require.NoError(t, err)
	assert.Equal(t, `1`, string(out))
}
