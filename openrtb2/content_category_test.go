package openrtb2

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContentCategoryDecode(t *testing.T) {
	testCases := []struct {
		description  string
		json         string
		expected     ContentCategory
		expectedName string
	}{
		{
			description:  "tier one category",
			json:         `"IAB1"`,
			expected:     ContentCategoryIAB1,
			expectedName: "Arts & Entertainment",
		},
		{
			description:  "tier two category",
			json:         `"IAB1-6"`,
			expected:     ContentCategoryIAB1_6,
			expectedName: "Music",
		},
		{
			description:  "last category in the table",
			json:         `"IAB26-4"`,
			expected:     ContentCategoryIAB26_4,
			expectedName: "Copyright Infringement",
		},
	}

	for _, test := range testCases {
		t.Run(test.description, func(t *testing.T) {
			var c ContentCategory
			require.NoError(t, json.Unmarshal([]byte(test.json), &c))
			assert.Equal(t, test.expected, c)
			assert.Equal(t, test.expectedName, c.Name())

			out, err := json.Marshal(c)
			require.NoError(t, err)
			assert.Equal(t, test.json, string(out))
		})
	}
}

func TestContentCategoryRejectsUnknown(t *testing.T) {
	testCases := []struct {
		description string
		json        string
	}{
		{
			description: "code outside the taxonomy",
			json:        `"IAB99"`,
		},
		{
			description: "lowercase code",
			json:        `"iab1"`,
		},
		{
			description: "unquoted value",
			json:        `IAB1`,
		},
		{
			description: "integer",
			json:        `1`,
		},
	}

	for _, test := range testCases {
		t.Run(test.description, func(t *testing.T) {
			var c ContentCategory
			assert.Error(t, json.Unmarshal([]byte(test.json), &c))
		})
	}
}
