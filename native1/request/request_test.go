package request

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adscope/openrtb/native1"
	"github.com/adscope/openrtb/util/jsonutil"
)

func TestRequestRoundTrip(t *testing.T) {
	payload := `{
		"ver": "1.2",
		"context": 1,
		"contextsubtype": 11,
		"plcmttype": 1,
		"plcmtcnt": 1,
		"aurlsupport": 0,
		"privacy": 1,
		"eventtrackers": [
			{"event": 1, "methods": [1, 2]},
			{"event": 2, "methods": [1]}
		],
		"assets": [
			{
				"id": 1,
				"required": 1,
				"title": {"len": 90}
			},
			{
				"id": 2,
				"required": 1,
				"img": {"type": 3, "wmin": 627, "hmin": 627, "mimes": ["image/jpg"]}
			},
			{
				"id": 3,
				"data": {"type": 1, "len": 25}
			},
			{
				"id": 4,
				"video": {"mimes": ["video/mp4"], "minduration": 5, "maxduration": 30, "protocols": [2, 3]}
			}
		]
	}`

	var req Request
	require.NoError(t, jsonutil.Unmarshal([]byte(payload), &req))

	assert.Equal(t, "1.2", req.Ver)
	require.NotNil(t, req.Context)
	assert.Equal(t, native1.ContextTypeContent, *req.Context)
	require.NotNil(t, req.ContextSubType)
	assert.Equal(t, native1.ContextSubTypeArticle, *req.ContextSubType)
	require.NotNil(t, req.PlcmtType)
	assert.Equal(t, native1.PlacementTypeFeed, *req.PlcmtType)
	require.NotNil(t, req.AURLSupport)
	assert.False(t, req.AURLSupport.Val())
	require.NotNil(t, req.Privacy)
	assert.True(t, req.Privacy.Val())

	require.Len(t, req.EventTrackers, 2)
	assert.Equal(t, native1.EventTypeImpression, req.EventTrackers[0].Event)
	assert.Equal(t, []native1.EventTrackingMethod{
		native1.EventTrackingMethodImage,
		native1.EventTrackingMethodJS,
	}, req.EventTrackers[0].Methods)

	require.Len(t, req.Assets, 4)

	title := req.Assets[0]
	require.NotNil(t, title.Required)
	assert.True(t, title.Required.Val())
	require.NotNil(t, title.Title)
	assert.Equal(t, int64(90), title.Title.Len)
	assert.Nil(t, title.Img)
	assert.Nil(t, title.Video)
	assert.Nil(t, title.Data)

	img := req.Assets[1].Img
	require.NotNil(t, img)
	require.NotNil(t, img.Type)
	assert.Equal(t, native1.ImageAssetTypeMain, *img.Type)
	require.NotNil(t, img.WMin)
	assert.Equal(t, int64(627), *img.WMin)

	data := req.Assets[2].Data
	require.NotNil(t, data)
	assert.Equal(t, native1.DataAssetTypeSponsored, data.Type)
	require.NotNil(t, data.Len)
	assert.Equal(t, int64(25), *data.Len)

	video := req.Assets[3].Video
	require.NotNil(t, video)
	assert.Equal(t, []string{"video/mp4"}, video.MIMEs)
	assert.Equal(t, int64(5), video.MinDuration)
	assert.Equal(t, int64(30), video.MaxDuration)

	out, err := jsonutil.Marshal(req)
	require.NoError(t, err)
	assert.JSONEq(t, payload, string(out))
}

func TestRequestLegacyFields(t *testing.T) {
	payload := `{"ver":"1.0","layout":3,"adunit":2,"assets":[{"id":1,"title":{"len":25}}]}`

	var req Request
	require.NoError(t, jsonutil.Unmarshal([]byte(payload), &req))

	require.NotNil(t, req.Layout)
	assert.Equal(t, native1.LayoutNewsFeed, *req.Layout)
	require.NotNil(t, req.AdUnit)
	assert.Equal(t, native1.AdUnitRecommendationWidget, *req.AdUnit)

	out, err := jsonutil.Marshal(req)
	require.NoError(t, err)
	assert.JSONEq(t, payload, string(out))
}

func TestRequestAssetsAlwaysEmitted(t *testing.T) {
	out, err := jsonutil.Marshal(Request{})
	require.NoError(t, err)
	assert.JSONEq(t, `{"assets":null}`, string(out))
}

func TestRequestRejectsInvalidVocabularyValue(t *testing.T) {
	var req Request
	assert.Error(t, jsonutil.Unmarshal([]byte(`{"context":9,"assets":[]}`), &req))
}
