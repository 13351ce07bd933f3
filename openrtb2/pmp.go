package openrtb2

import (
	"encoding/json"

	"github.com/adscope/openrtb"
)

// Pmp is the private marketplace container for direct deals between buyers
// and sellers that may pertain to this impression. The actual deals are
// represented as a collection of Deal objects.
type Pmp struct {
	// PrivateAuction is an indicator of auction eligibility to seats named
	// in the Direct Deals object, where 0 = all bids are accepted, 1 = bids
	// are restricted to the deals specified and the terms thereof.
	PrivateAuction *openrtb.IntBool `json:"private_auction,omitempty"`

	// Deals is the array of Deal objects that convey the specific deals
	// applicable to this impression.
	Deals []Deal `json:"deals,omitempty"`

	// Ext is a placeholder for exchange-specific extensions to OpenRTB.
	Ext json.RawMessage `json:"ext,omitempty"`
}
