package openrtb2

import "encoding/json"

// Deal constitutes a specific deal that was struck a priori between a buyer
// and a seller. Its presence with the Pmp collection indicates that this
// impression is available under the terms of that deal.
type Deal struct {
	// ID is a unique identifier for the direct deal. Required by the
	// OpenRTB specification.
	ID string `json:"id"`

	// BidFloor is the minimum bid for this impression expressed in CPM.
	BidFloor *float64 `json:"bidfloor,omitempty"`

	// BidFloorCur is the currency of BidFloor specified using ISO-4217
	// alpha codes. This may be different from bid currency returned by the
	// bidder if this is allowed by the exchange. Defaults to "USD".
	BidFloorCur string `json:"bidfloorcur,omitempty"`

	// AT is an optional override of the overall auction type of the bid
	// request, where 1 = First Price, 2 = Second Price Plus, 3 = the value
	// passed in BidFloor is the agreed-upon deal price. Additional auction
	// types can be defined by the exchange.
	AT *AuctionType `json:"at,omitempty"`

	// WSeat is an allowlist of buyer seats (e.g., advertisers, agencies)
	// that can bid on this deal. IDs of seats and knowledge of the buyer's
	// customers to which they refer must be coordinated between bidders and
	// the exchange a priori. Omission implies no seat restrictions.
	WSeat []string `json:"wseat,omitempty"`

	// WADomain is the array of advertiser domains (e.g., advertiser.com)
	// allowed to bid on this deal. Omission implies no advertiser
	// restrictions.
	WADomain []string `json:"wadomain,omitempty"`

	// Ext is a placeholder for exchange-specific extensions to OpenRTB.
	Ext json.RawMessage `json:"ext,omitempty"`
}
