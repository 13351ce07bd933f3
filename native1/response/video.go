package response

import "encoding/json"

// Video corresponds to the Video object in the request, yet containing a
// value of a conforming VAST tag as a value.
type Video struct {
	// VASTTag is the VAST XML. Required by the Native specification.
	VASTTag string `json:"vasttag"`

	// Ext is a placeholder for bidder-specific extensions.
	Ext json.RawMessage `json:"ext,omitempty"`
}
