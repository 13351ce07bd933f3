package openrtb2

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuctionTypeOpenVocabulary(t *testing.T) {
	testCases := []struct {
		description              string
		json                     string
		expected                 AuctionType
		expectedName             string
		expectedExchangeSpecific bool
	}{
		{
			description:  "first price",
			json:         `1`,
			expected:     AuctionTypeFirstPrice,
			expectedName: "FIRST_PRICE",
		},
		{
			description:  "second price plus",
			json:         `2`,
			expected:     AuctionTypeSecondPricePlus,
			expectedName: "SECOND_PRICE_PLUS",
		},
		{
			description:              "exchange specific value above 500",
			json:                     `512`,
			expected:                 AuctionType(512),
			expectedName:             "EXCHANGE_SPECIFIC(512)",
			expectedExchangeSpecific: true,
		},
		{
			description:              "deal price on deal.at",
			json:                     `3`,
			expected:                 AuctionType(3),
			expectedName:             "EXCHANGE_SPECIFIC(3)",
			expectedExchangeSpecific: true,
		},
	}

	for _, test := range testCases {
		t.Run(test.description, func(t *testing.T) {
			var at AuctionType
			require.NoError(t, json.Unmarshal([]byte(test.json), &at))
			assert.Equal(t, test.expected, at)
			assert.Equal(t, test.expectedName, at.Name())
			assert.Equal(t, test.expectedExchangeSpecific, at.ExchangeSpecific())

			out, err := json.Marshal(at)
			require.NoError(t, err)
			assert.Equal(t, test.json, string(out))
		})
	}
}

func TestAuctionTypeRejectsMalformed(t *testing.T) {
	var at AuctionType
	assert.Error(t, json.Unmarshal([]byte(`"1"`), &at))
	assert.Error(t, json.Unmarshal([]byte(`first`), &at))
}

func TestStartDelayOpenVocabulary(t *testing.T) {
	testCases := []struct {
		description  string
		json         string
		expected     StartDelay
		expectedName string
	}{
		{
			description:  "pre-roll",
			json:         `0`,
			expected:     StartDelayPreRoll,
			expectedName: "PRE_ROLL",
		},
		{
			description:  "generic mid-roll",
			json:         `-1`,
			expected:     StartDelayGenericMidRoll,
			expectedName: "GENERIC_MID_ROLL",
		},
		{
			description:  "generic post-roll",
			json:         `-2`,
			expected:     StartDelayGenericPostRoll,
			expectedName: "GENERIC_POST_ROLL",
		},
		{
			description:  "positive offset is a mid-roll start",
			json:         `30`,
			expected:     StartDelay(30),
			expectedName: "MID_ROLL(30)",
		},
	}

	for _, test := range testCases {
		t.Run(test.description, func(t *testing.T) {
			var sd StartDelay
			require.NoError(t, json.Unmarshal([]byte(test.json), &sd))
			assert.Equal(t, test.expected, sd)
			assert.Equal(t, test.expectedName, sd.Name())

			out, err := json.Marshal(sd)
			require.NoError(t, err)
			assert.Equal(t, test.json, string(out))
		})
	}
}
