package openrtb2

import (
	"encoding/json"

	"github.com/adscope/openrtb"
)

// SeatBid: a bid response can contain multiple SeatBid objects, each on
// behalf of a different bidder seat and each containing one or more
// individual bids. If multiple impressions are presented in the request, the
// Group attribute can be used to specify if a seat is willing to accept any
// impressions that it can win (default) or if it is only interested in
// winning any if it can win them all as a group.
type SeatBid struct {
	// Bid is the array of 1+ Bid objects each related to an impression.
	// Multiple bids can relate to the same impression.
	Bid []Bid `json:"bid"`

	// Seat is the ID of the buyer seat (e.g., advertiser, agency) on whose
	// behalf this bid is made.
	Seat string `json:"seat,omitempty"`

	// Group, where 0 = impressions can be won individually,
	// 1 = impressions must be won or lost as a group.
	Group *openrtb.IntBool `json:"group,omitempty"`

	// Ext is a placeholder for bidder-specific extensions to OpenRTB.
	Ext json.RawMessage `json:"ext,omitempty"`
}
