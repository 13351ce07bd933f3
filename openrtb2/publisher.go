package openrtb2

import "encoding/json"

// Publisher describes the publisher of the media in which the ad will be
// displayed. The publisher is typically the seller in an OpenRTB transaction.
type Publisher struct {
	// ID is the exchange-specific publisher ID.
	ID string `json:"id,omitempty"`

	// Name is the publisher name (may be aliased at the publisher's
	// request).
	Name string `json:"name,omitempty"`

	// Cat is the array of IAB content categories that describe the
	// publisher.
	Cat []ContentCategory `json:"cat,omitempty"`

	// Domain is the highest level domain of the publisher (e.g.,
	// "publisher.com").
	Domain string `json:"domain,omitempty"`

	// Ext is a placeholder for exchange-specific extensions to OpenRTB.
	Ext json.RawMessage `json:"ext,omitempty"`
}
