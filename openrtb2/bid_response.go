package openrtb2

import "encoding/json"

// BidResponse is the top-level bid response object (i.e., the unnamed outer
// JSON object). The ID attribute is a reflection of the bid request ID for
// logging purposes. Similarly, BidID is an optional response tracking ID for
// bidders. If specified, it can be included in the subsequent win notice
// call if the bidder wins. At least one SeatBid object is required, which
// contains at least one bid for an impression. Other attributes are
// optional.
//
// To express a "no-bid", the options are to return an empty response with
// HTTP 204. Alternately if the bidder wishes to convey to the exchange a
// reason for not bidding, just a BidResponse object is returned with a
// reason code in the NBR attribute.
type BidResponse struct {
	// ID of the bid request to which this is a response. Required by the
	// OpenRTB specification.
	ID string `json:"id"`

	// SeatBid is the array of SeatBid objects; 1+ required if a bid is to
	// be made.
	SeatBid []SeatBid `json:"seatbid,omitempty"`

	// BidID is the bidder generated response ID to assist with
	// logging/tracking.
	BidID string `json:"bidid,omitempty"`

	// Cur is the bid currency using ISO-4217 alpha codes.
	Cur string `json:"cur,omitempty"`

	// CustomData is an optional feature to allow a bidder to set data in
	// the exchange's cookie. The string must be in base85 cookie safe
	// characters and be in any format. Proper JSON encoding must be used to
	// include "escaped" quotation marks.
	CustomData string `json:"customdata,omitempty"`

	// NBR is the reason for not bidding.
	NBR *NoBidReason `json:"nbr,omitempty"`

	// Ext is a placeholder for bidder-specific extensions to OpenRTB.
	Ext json.RawMessage `json:"ext,omitempty"`
}
