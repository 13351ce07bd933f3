package native1

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVocabularyDecode(t *testing.T) {
	testCases := []struct {
		description  string
		json         string
		into         json.Unmarshaler
		expectedName string
	}{
		{
			description:  "context type",
			json:         `2`,
			into:         new(ContextType),
			expectedName: "SOCIAL",
		},
		{
			description:  "context subtype",
			json:         `22`,
			into:         new(ContextSubType),
			expectedName: "SOCIAL_CHAT_IM",
		},
		{
			description:  "placement type",
			json:         `4`,
			into:         new(PlacementType),
			expectedName: "RECOMMENDATION",
		},
		{
			description:  "data asset type",
			json:         `12`,
			into:         new(DataAssetType),
			expectedName: "CTATEXT",
		},
		{
			description:  "image asset type",
			json:         `3`,
			into:         new(ImageAssetType),
			expectedName: "MAIN",
		},
		{
			description:  "event type",
			json:         `4`,
			into:         new(EventType),
			expectedName: "VIEWABLE_VIDEO_50",
		},
		{
			description:  "event tracking method",
			json:         `2`,
			into:         new(EventTrackingMethod),
			expectedName: "JS",
		},
		{
			description:  "legacy layout",
			json:         `7`,
			into:         new(Layout),
			expectedName: "GRID",
		},
		{
			description:  "legacy ad unit",
			json:         `5`,
			into:         new(AdUnit),
			expectedName: "ADUNITID_CUSTOM",
		},
	}

	type named interface{ Name() string }

	for _, test := range testCases {
		t.Run(test.description, func(t *testing.T) {
			require.NoError(t, test.into.UnmarshalJSON([]byte(test.json)))
			assert.Equal(t, test.expectedName, test.into.(named).Name())
		})
	}
}

func TestVocabularyRejectsUnknown(t *testing.T) {
	testCases := []struct {
		description string
		json        string
		into        json.Unmarshaler
	}{
		{
			description: "context type out of range",
			json:        `4`,
			into:        new(ContextType),
		},
		{
			description: "context subtype between defined ranges",
			json:        `16`,
			into:        new(ContextSubType),
		},
		{
			description: "data asset type zero",
			json:        `0`,
			into:        new(DataAssetType),
		},
		{
			description: "event tracking method out of range",
			json:        `3`,
			into:        new(EventTrackingMethod),
		},
		{
			description: "context type 257 must not wrap around to content",
			json:        `257`,
			into:        new(ContextType),
		},
		{
			description: "context subtype 266 must not wrap around to general",
			json:        `266`,
			into:        new(ContextSubType),
		},
		{
			description: "malformed input",
			json:        `"1"`,
			into:        new(PlacementType),
		},
	}

	for _, test := range testCases {
		t.Run(test.description, func(t *testing.T) {
			assert.Error(t, test.into.UnmarshalJSON([]byte(test.json)))
		})
	}
}
