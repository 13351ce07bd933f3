package openrtb2

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClosedVocabularyDecode(t *testing.T) {
	testCases := []struct {
		description  string
		json         string
		into         json.Unmarshaler
		expectedName string
	}{
		{
			description:  "banner ad type",
			json:         `3`,
			into:         new(BannerAdType),
			expectedName: "JAVASCRIPT_AD",
		},
		{
			description:  "creative attribute",
			json:         `16`,
			into:         new(CreativeAttribute),
			expectedName: "AD_CAN_BE_SKIPPED",
		},
		{
			description:  "ad position fullscreen",
			json:         `7`,
			into:         new(AdPosition),
			expectedName: "AD_POSITION_FULLSCREEN",
		},
		{
			description:  "connection type zero is a defined value",
			json:         `0`,
			into:         new(ConnectionType),
			expectedName: "CONNECTION_UNKNOWN",
		},
		{
			description:  "device type 4 is the legacy highend phone",
			json:         `4`,
			into:         new(DeviceType),
			expectedName: "HIGHEND_PHONE",
		},
		{
			description:  "companion type iframe",
			json:         `3`,
			into:         new(CompanionType),
			expectedName: "COMPANION_IFRAME",
		},
		{
			description:  "expandable direction fullscreen",
			json:         `5`,
			into:         new(ExpandableDirection),
			expectedName: "EXPANDABLE_FULLSCREEN",
		},
		{
			description:  "no bid reason proxy ip",
			json:         `5`,
			into:         new(NoBidReason),
			expectedName: "CLOUD_DATACENTER_PROXYIP",
		},
		{
			description:  "loss reason zero is bid won",
			json:         `0`,
			into:         new(LossReason),
			expectedName: "BID_WON",
		},
		{
			description:  "loss reason second range",
			json:         `102`,
			into:         new(LossReason),
			expectedName: "LOST_HIGHER_BID",
		},
		{
			description:  "production quality zero is a defined value",
			json:         `0`,
			into:         new(ProductionQuality),
			expectedName: "QUALITY_UNKNOWN",
		},
		{
			description:  "video placement",
			json:         `4`,
			into:         new(VideoPlacementType),
			expectedName: "IN_FEED_PLACEMENT",
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

func TestClosedVocabularyRejectsUnknown(t *testing.T) {
	testCases := []struct {
		description string
		json        string
		into        json.Unmarshaler
	}{
		{
			description: "banner ad type out of range",
			json:        `5`,
			into:        new(BannerAdType),
		},
		{
			description: "ad position out of range",
			json:        `8`,
			into:        new(AdPosition),
		},
		{
			description: "video linearity zero",
			json:        `0`,
			into:        new(VideoLinearity),
		},
		{
			description: "loss reason gap between ranges",
			json:        `50`,
			into:        new(LossReason),
		},
		{
			description: "no bid reason out of range",
			json:        `11`,
			into:        new(NoBidReason),
		},
		{
			description: "device type zero",
			json:        `0`,
			into:        new(DeviceType),
		},
		{
			description: "device type 257 must not wrap around to mobile",
			json:        `257`,
			into:        new(DeviceType),
		},
		{
			description: "connection type 256 must not wrap around to unknown",
			json:        `256`,
			into:        new(ConnectionType),
		},
		{
			description: "ad position beyond int8 range",
			json:        `128`,
			into:        new(AdPosition),
		},
		{
			description: "playback method below int8 range",
			json:        `-129`,
			into:        new(PlaybackMethod),
		},
		{
			description: "malformed input",
			json:        `"2"`,
			into:        new(ConnectionType),
		},
		{
			description: "float input",
			json:        `1.5`,
			into:        new(PlaybackMethod),
		},
	}

	for _, test := range testCases {
		t.Run(test.description, func(t *testing.T) {
			assert.Error(t, test.into.UnmarshalJSON([]byte(test.json)))
		})
	}
}

func TestVocabularyEncodesAsPlainInteger(t *testing.T) {
	out, err := json.Marshal(ConnectionTypeWIFI)
	require.NoError(t, err)
	assert.Equal(t, `2`, string(out))

	out, err = json.Marshal(StartDelayGenericPostRoll)
	require.NoError(t, err)
	assert.Equal(t, `-2`, string(out))
}
