package openrtb2

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adscope/openrtb/util/jsonutil"
)

func TestBidResponseNoBid(t *testing.T) {
	payload := `{"id":"req-1","nbr":2}`

	var resp BidResponse
	require.NoError(t, jsonutil.Unmarshal([]byte(payload), &resp))

	assert.Equal(t, "req-1", resp.ID)
	assert.Empty(t, resp.SeatBid)
	require.NotNil(t, resp.NBR)
	assert.Equal(t, NoBidReasonInvalidRequest, *resp.NBR)
	assert.Equal(t, "INVALID_REQUEST", resp.NBR.Name())

	out, err := jsonutil.Marshal(resp)
	require.NoError(t, err)
	assert.JSONEq(t, payload, string(out))
}

func TestBidResponseRejectsUnknownNoBidReason(t *testing.T) {
	var resp BidResponse
	assert.Error(t, jsonutil.Unmarshal([]byte(`{"id":"req-1","nbr":42}`), &resp))
}

func TestBidResponseRoundTrip(t *testing.T) {
	payload := `{
		"id": "req-1",
		"bidid": "resp-7",
		"cur": "USD",
		"seatbid": [
			{
				"seat": "seat-9",
				"group": 0,
				"bid": [
					{
						"id": "bid-1",
						"impid": "1",
						"price": 2.75,
						"adm": "<div>ad</div>",
						"adomain": ["brand.example.com"],
						"cid": "camp-1",
						"crid": "cr-1",
						"cat": ["IAB1-6"],
						"attr": [16],
						"api": 3,
						"dealid": "deal-1",
						"w": 300,
						"h": 250,
						"exp": 300,
						"ext": {"dsp": {"score": 0.9}}
					}
				]
			}
		],
		"ext": {"exchange": {"debug": false}}
	}`

	var resp BidResponse
	require.NoError(t, jsonutil.Unmarshal([]byte(payload), &resp))

	require.Len(t, resp.SeatBid, 1)
	seat := resp.SeatBid[0]
	assert.Equal(t, "seat-9", seat.Seat)
	require.NotNil(t, seat.Group)
	assert.False(t, seat.Group.Val())

	require.Len(t, seat.Bid, 1)
	bid := seat.Bid[0]
	assert.Equal(t, "bid-1", bid.ID)
	assert.Equal(t, "1", bid.ImpID)
	assert.Equal(t, 2.75, bid.Price)
	assert.Equal(t, []ContentCategory{ContentCategoryIAB1_6}, bid.Cat)
	assert.Equal(t, []CreativeAttribute{CreativeAttributeAdCanBeSkipped}, bid.Attr)
	require.NotNil(t, bid.API)
	assert.Equal(t, APIFrameworkMRAID1, *bid.API)
	require.NotNil(t, bid.W)
	assert.Equal(t, int64(300), *bid.W)

	out, err := jsonutil.Marshal(resp)
	require.NoError(t, err)
	assert.JSONEq(t, payload, string(out))
}

func TestBidResponseRequiredBidFieldsAlwaysEmitted(t *testing.T) {
	resp := BidResponse{
		ID: "req-1",
		SeatBid: []SeatBid{
			{Bid: []Bid{{ID: "bid-1", ImpID: "1"}}},
		},
	}

	out, err := jsonutil.Marshal(resp)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"id": "req-1",
		"seatbid": [{"bid": [{"id": "bid-1", "impid": "1", "price": 0}]}]
	}`, string(out))
}
