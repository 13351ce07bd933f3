package jsonutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarshalUnmarshalRoundTrip(t *testing.T) {
	type payload struct {
		ID    string  `json:"id"`
		Price float64 `json:"price,omitempty"`
	}

	out, err := Marshal(payload{ID: "1", Price: 2.5})
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"1","price":2.5}`, string(out))

	var decoded payload
	require.NoError(t, Unmarshal(out, &decoded))
	assert.Equal(t, payload{ID: "1", Price: 2.5}, decoded)
}

func TestFindElement(t *testing.T) {
	testCases := []struct {
		description   string
		json          string
		keys          []string
		expectedFound bool
		expectedValue string
	}{
		{
			description:   "top level object",
			json:          `{"vendor":{"key":"value"},"other":1}`,
			keys:          []string{"vendor"},
			expectedFound: true,
			expectedValue: `{"key":"value"}`,
		},
		{
			description:   "nested path",
			json:          `{"vendor":{"key":"value"}}`,
			keys:          []string{"vendor", "key"},
			expectedFound: true,
			expectedValue: `"value"`,
		},
		{
			description:   "array value",
			json:          `{"ids":[1,2,3]}`,
			keys:          []string{"ids"},
			expectedFound: true,
			expectedValue: `[1,2,3]`,
		},
		{
			description:   "number value",
			json:          `{"n":512}`,
			keys:          []string{"n"},
			expectedFound: true,
			expectedValue: `512`,
		},
		{
			description:   "missing key is not an error",
			json:          `{"vendor":{"key":"value"}}`,
			keys:          []string{"absent"},
			expectedFound: false,
		},
		{
			description:   "missing nested key is not an error",
			json:          `{"vendor":{"key":"value"}}`,
			keys:          []string{"vendor", "absent"},
			expectedFound: false,
		},
	}

	for _, test := range testCases {
		t.Run(test.description, func(t *testing.T) {
			found, value, err := FindElement([]byte(test.json), test.keys...)
			require.NoError(t, err)
			assert.Equal(t, test.expectedFound, found)
			if test.expectedFound {
				assert.JSONEq(t, test.expectedValue, string(value))
			} else {
				assert.Nil(t, value)
			}
		})
	}
}

func TestDropElement(t *testing.T) {
	testCases := []struct {
		description string
		json        string
		keys        []string
		expected    string
	}{
		{
			description: "drop first element",
			json:        `{"vendor":{"key":"value"},"other":1}`,
			keys:        []string{"vendor"},
			expected:    `{"other":1}`,
		},
		{
			description: "drop last element",
			json:        `{"other":1,"vendor":{"key":"value"}}`,
			keys:        []string{"vendor"},
			expected:    `{"other":1}`,
		},
		{
			description: "drop only element",
			json:        `{"vendor":{"key":"value"}}`,
			keys:        []string{"vendor"},
			expected:    `{}`,
		},
		{
			description: "drop nested element",
			json:        `{"vendor":{"key":"value","keep":true}}`,
			keys:        []string{"vendor", "key"},
			expected:    `{"vendor":{"keep":true}}`,
		},
		{
			description: "missing element leaves payload unchanged",
			json:        `{"other":1}`,
			keys:        []string{"vendor"},
			expected:    `{"other":1}`,
		},
	}

	for _, test := range testCases {
		t.Run(test.description, func(t *testing.T) {
			out, err := DropElement([]byte(test.json), test.keys...)
			require.NoError(t, err)
			assert.JSONEq(t, test.expected, string(out))
		})
	}
}
