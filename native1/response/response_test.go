package response

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adscope/openrtb/native1"
	"github.com/adscope/openrtb/util/jsonutil"
)

func TestResponseRoundTrip(t *testing.T) {
	payload := `{
		"ver": "1.2",
		"link": {"url": "https://brand.example.com/landing", "clicktrackers": ["https://t.example.com/click"]},
		"privacy": "https://brand.example.com/privacy",
		"eventtrackers": [
			{"event": 1, "method": 1, "url": "https://t.example.com/imp.gif"}
		],
		"assets": [
			{
				"id": 1,
				"required": 1,
				"title": {"text": "Great Product"}
			},
			{
				"id": 2,
				"img": {"type": 3, "url": "https://cdn.example.com/main.jpg", "w": 1200, "h": 627}
			},
			{
				"id": 3,
				"data": {"type": 1, "value": "Example Brand"},
				"link": {"url": "https://brand.example.com/about"}
			},
			{
				"id": 4,
				"video": {"vasttag": "<VAST version=\"3.0\"></VAST>"}
			}
		]
	}`

	var resp Response
	require.NoError(t, jsonutil.Unmarshal([]byte(payload), &resp))

	assert.Equal(t, "1.2", resp.Ver)
	assert.Equal(t, "https://brand.example.com/landing", resp.Link.URL)
	assert.Equal(t, []string{"https://t.example.com/click"}, resp.Link.ClickTrackers)
	assert.Equal(t, "https://brand.example.com/privacy", resp.Privacy)

	require.Len(t, resp.EventTrackers, 1)
	assert.Equal(t, native1.EventTypeImpression, resp.EventTrackers[0].Event)
	assert.Equal(t, native1.EventTrackingMethodImage, resp.EventTrackers[0].Method)
	assert.Equal(t, "https://t.example.com/imp.gif", resp.EventTrackers[0].URL)

	require.Len(t, resp.Assets, 4)

	title := resp.Assets[0]
	require.NotNil(t, title.Required)
	assert.True(t, title.Required.Val())
	require.NotNil(t, title.Title)
	assert.Equal(t, "Great Product", title.Title.Text)

	img := resp.Assets[1].Img
	require.NotNil(t, img)
	require.NotNil(t, img.Type)
	assert.Equal(t, native1.ImageAssetTypeMain, *img.Type)
	assert.Equal(t, "https://cdn.example.com/main.jpg", img.URL)

	data := resp.Assets[2]
	require.NotNil(t, data.Data)
	assert.Equal(t, "Example Brand", data.Data.Value)
	require.NotNil(t, data.Link)
	assert.Equal(t, "https://brand.example.com/about", data.Link.URL)

	video := resp.Assets[3].Video
	require.NotNil(t, video)
	assert.Contains(t, video.VASTTag, "VAST")

	out, err := jsonutil.Marshal(resp)
	require.NoError(t, err)
	assert.JSONEq(t, payload, string(out))
}

func TestResponseLegacyTrackers(t *testing.T) {
	payload := `{
		"ver": "1.1",
		"link": {"url": "https://brand.example.com"},
		"assets": [{"id": 1, "title": {"text": "t"}}],
		"imptrackers": ["https://t.example.com/1x1.gif"],
		"jstracker": "<script src=\"https://t.example.com/t.js\"></script>"
	}`

	var resp Response
	require.NoError(t, jsonutil.Unmarshal([]byte(payload), &resp))

	assert.Equal(t, []string{"https://t.example.com/1x1.gif"}, resp.ImpTrackers)
	assert.Contains(t, resp.JSTracker, "script")

	out, err := jsonutil.Marshal(resp)
	require.NoError(t, err)
	assert.JSONEq(t, payload, string(out))
}

func TestResponseRequiredFieldsAlwaysEmitted(t *testing.T) {
	out, err := jsonutil.Marshal(Response{})
	require.NoError(t, err)
	assert.JSONEq(t, `{"assets":null,"link":{"url":""}}`, string(out))
}
