package openrtb2

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adscope/openrtb"
	"github.com/adscope/openrtb/util/jsonutil"
)

func TestBidRequestMinimalDecode(t *testing.T) {
	payload := `{"id":"req-1","imp":[{"id":"1"}],"at":2}`

	var req BidRequest
	require.NoError(t, jsonutil.Unmarshal([]byte(payload), &req))

	assert.Equal(t, "req-1", req.ID)
	require.Len(t, req.Imp, 1)
	assert.Equal(t, "1", req.Imp[0].ID)
	require.NotNil(t, req.AT)
	assert.Equal(t, AuctionTypeSecondPricePlus, *req.AT)

	assert.Nil(t, req.Site)
	assert.Nil(t, req.App)
	assert.Nil(t, req.Device)
	assert.Nil(t, req.User)
	assert.Nil(t, req.TMax)
	assert.Nil(t, req.Test)

	out, err := jsonutil.Marshal(req)
	require.NoError(t, err)
	assert.JSONEq(t, payload, string(out))
}

func TestBidRequestRequiredFieldsAlwaysEmitted(t *testing.T) {
	req := BidRequest{
		ID:  "req-1",
		Imp: []Imp{{ID: "1"}},
	}

	out, err := jsonutil.Marshal(req)
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"req-1","imp":[{"id":"1"}]}`, string(out))
}

func TestBidRequestRoundTrip(t *testing.T) {
	payload := `{
		"id": "req-1",
		"at": 512,
		"tmax": 120,
		"cur": ["USD"],
		"bcat": ["IAB25-3", "IAB26"],
		"badv": ["competitor.com"],
		"test": 1,
		"imp": [
			{
				"id": "1",
				"instl": 1,
				"tagid": "above-article",
				"bidfloor": 0.5,
				"bidfloorcur": "USD",
				"secure": 1,
				"banner": {
					"format": [{"w": 300, "h": 250}, {"w": 320, "h": 50}],
					"btype": [4],
					"battr": [8, 10],
					"pos": 1,
					"topframe": 0
				},
				"pmp": {
					"private_auction": 1,
					"deals": [
						{"id": "deal-1", "bidfloor": 2.5, "at": 3, "wseat": ["seat-9"]}
					]
				},
				"ext": {"vendor": {"key": "value"}}
			},
			{
				"id": "2",
				"video": {
					"mimes": ["video/mp4"],
					"minduration": 5,
					"maxduration": 30,
					"protocols": [2, 3],
					"startdelay": 0,
					"linearity": 1,
					"skip": 1,
					"skipafter": 5,
					"pos": 7
				}
			}
		],
		"site": {
			"id": "site-1",
			"domain": "news.example.com",
			"cat": ["IAB12"],
			"mobile": 1,
			"publisher": {"id": "pub-1", "name": "Example News"}
		},
		"device": {
			"ua": "Mozilla/5.0",
			"ip": "203.0.113.7",
			"devicetype": 1,
			"connectiontype": 2,
			"geo": {"lat": 42.3, "lon": -71.1, "type": 2, "country": "USA"},
			"dnt": 0,
			"lmt": 1
		},
		"user": {
			"id": "u-1",
			"buyeruid": "b-1",
			"data": [
				{"id": "dp-1", "segment": [{"id": "s1", "value": "v1"}]}
			]
		},
		"regs": {"coppa": 0},
		"source": {"fd": 1, "tid": "txn-1"},
		"ext": {"exchange": {"flag": true}}
	}`

	var req BidRequest
	require.NoError(t, jsonutil.Unmarshal([]byte(payload), &req))

	require.NotNil(t, req.AT)
	assert.True(t, req.AT.ExchangeSpecific())
	require.NotNil(t, req.TMax)
	assert.Equal(t, int64(120), *req.TMax)
	assert.Equal(t, []ContentCategory{ContentCategoryIAB25_3, ContentCategoryIAB26}, req.BCat)

	require.Len(t, req.Imp, 2)
	banner := req.Imp[0].Banner
	require.NotNil(t, banner)
	require.Len(t, banner.Format, 2)
	require.NotNil(t, banner.TopFrame)
	assert.False(t, banner.TopFrame.Val())
	require.NotNil(t, banner.Pos)
	assert.Equal(t, AdPositionAboveTheFold, *banner.Pos)

	pmp := req.Imp[0].Pmp
	require.NotNil(t, pmp)
	require.Len(t, pmp.Deals, 1)
	require.NotNil(t, pmp.Deals[0].AT)
	assert.True(t, pmp.Deals[0].AT.ExchangeSpecific())

	video := req.Imp[1].Video
	require.NotNil(t, video)
	assert.Equal(t, []string{"video/mp4"}, video.MIMEs)
	require.NotNil(t, video.StartDelay)
	assert.Equal(t, StartDelayPreRoll, *video.StartDelay)
	require.NotNil(t, video.Skip)
	assert.True(t, video.Skip.Val())

	device := req.Device
	require.NotNil(t, device)
	require.NotNil(t, device.DNT)
	assert.False(t, device.DNT.Val())
	require.NotNil(t, device.Lmt)
	assert.True(t, device.Lmt.Val())
	require.NotNil(t, device.Geo)
	require.NotNil(t, device.Geo.Type)
	assert.Equal(t, LocationTypeIP, *device.Geo.Type)

	require.NotNil(t, req.Regs)
	require.NotNil(t, req.Regs.COPPA)
	assert.False(t, req.Regs.COPPA.Val())

	out, err := jsonutil.Marshal(req)
	require.NoError(t, err)
	assert.JSONEq(t, payload, string(out))
}

func TestBidRequestWireBooleanNormalization(t *testing.T) {
	payload := `{"id":"req-1","imp":[{"id":"1","instl":5}]}`

	var req BidRequest
	require.NoError(t, jsonutil.Unmarshal([]byte(payload), &req))
	require.NotNil(t, req.Imp[0].Instl)
	assert.True(t, req.Imp[0].Instl.Val())

	out, err := jsonutil.Marshal(req)
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"req-1","imp":[{"id":"1","instl":1}]}`, string(out))
}

func TestBidRequestAbsentBooleanStaysAbsent(t *testing.T) {
	payload := `{"id":"req-1","imp":[{"id":"1"}]}`

	var req BidRequest
	require.NoError(t, jsonutil.Unmarshal([]byte(payload), &req))
	assert.Nil(t, req.Imp[0].Instl)
	assert.Nil(t, req.Imp[0].Secure)

	out, err := jsonutil.Marshal(req)
	require.NoError(t, err)
	assert.JSONEq(t, payload, string(out))
}

func TestBidRequestToleratesUnknownAttributes(t *testing.T) {
	payload := `{"id":"req-1","imp":[{"id":"1","futurefield":7}],"newthing":{"a":1}}`

	var req BidRequest
	require.NoError(t, jsonutil.Unmarshal([]byte(payload), &req))
	assert.Equal(t, "req-1", req.ID)
	require.Len(t, req.Imp, 1)
}

func TestBidRequestRejectsInvalidVocabularyValue(t *testing.T) {
	payload := `{"id":"req-1","imp":[{"id":"1","banner":{"pos":99}}]}`

	var req BidRequest
	assert.Error(t, jsonutil.Unmarshal([]byte(payload), &req))
}

func TestBidRequestExtPreservedVerbatim(t *testing.T) {
	payload := `{"id":"req-1","imp":[{"id":"1"}],"ext":{"vendor":{"nested":[1,2,3]}}}`

	var req BidRequest
	require.NoError(t, jsonutil.Unmarshal([]byte(payload), &req))
	assert.JSONEq(t, `{"vendor":{"nested":[1,2,3]}}`, string(req.Ext))

	req.Ext = json.RawMessage(`{"replaced":true}`)
	out, err := jsonutil.Marshal(req)
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"req-1","imp":[{"id":"1"}],"ext":{"replaced":true}}`, string(out))
}

func TestBidRequestBuiltWithPointerHelpers(t *testing.T) {
	req := BidRequest{
		ID: "req-1",
		Imp: []Imp{
			{
				ID:       "1",
				BidFloor: openrtb.ToPtr(1.25),
				Instl:    openrtb.ToPtr(openrtb.IntBool(true)),
				Banner: &Banner{
					W:   openrtb.ToPtr(int64(300)),
					H:   openrtb.ToPtr(int64(250)),
					Pos: openrtb.ToPtr(AdPositionBelowTheFold),
				},
			},
		},
		AT:   openrtb.ToPtr(AuctionTypeFirstPrice),
		Test: openrtb.ToPtr(openrtb.IntBool(true)),
	}

	out, err := jsonutil.Marshal(req)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"id": "req-1",
		"imp": [
			{
				"id": "1",
				"bidfloor": 1.25,
				"instl": 1,
				"banner": {"w": 300, "h": 250, "pos": 3}
			}
		],
		"at": 1,
		"test": 1
	}`, string(out))
}
