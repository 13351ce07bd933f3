package openrtb2

import (
	"encoding/json"

	"github.com/adscope/openrtb"
)

// Source describes the nature and behavior of the entity that is the source
// of the bid request upstream from the exchange. The primary purpose of this
// object is to define post-auction or upstream decisioning when the exchange
// itself does not control the final decision. A common example of this is
// header bidding, but it can also apply to upstream server entities such as
// another RTB exchange, a mediation platform, or an ad server that combines
// direct campaigns with 3rd party demand in decisioning.
type Source struct {
	// FD is the entity responsible for the final impression sale decision,
	// where 0 = exchange, 1 = upstream source. Recommended by the OpenRTB
	// specification.
	FD *openrtb.IntBool `json:"fd,omitempty"`

	// TID is the transaction ID that must be common across all participants
	// in this bid request (e.g., potentially multiple exchanges).
	// Recommended by the OpenRTB specification.
	TID string `json:"tid,omitempty"`

	// PChain is the payment ID chain string containing embedded syntax
	// described in the TAG Payment ID Protocol v1.0. Recommended by the
	// OpenRTB specification.
	PChain string `json:"pchain,omitempty"`

	// Ext is a placeholder for exchange-specific extensions to OpenRTB.
	Ext json.RawMessage `json:"ext,omitempty"`
}
