package response

import "encoding/json"

// Title corresponds to the Title object in the request, with the value
// filled in. If using an assetsurl or dcourl response rather than an
// embedded asset response, it is recommended that three title objects be
// provided, each no longer than one of the three recommended maximum title
// lengths (25, 90, 140).
type Title struct {
	// Text is the text associated with the text element. Required by the
	// Native specification.
	Text string `json:"text"`

	// Len is the length of the title being provided. Required if using the
	// assetsurl/dcourl representation.
	Len *int64 `json:"len,omitempty"`

	// Ext is a placeholder for bidder-specific extensions.
	Ext json.RawMessage `json:"ext,omitempty"`
}
