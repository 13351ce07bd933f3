package openrtb2

import "encoding/json"

// Producer defines the producer of the content in which the ad will be
// shown. This is particularly useful when the content is syndicated and may
// be distributed through different publishers and thus when the producer and
// publisher are not necessarily the same entity.
type Producer struct {
	// ID is the content producer or originator ID. Useful if the content is
	// syndicated and may be posted on a site using embed tags.
	ID string `json:"id,omitempty"`

	// Name is the content producer or originator name (e.g., "Warner
	// Bros").
	Name string `json:"name,omitempty"`

	// Cat is the array of IAB content categories that describe the content
	// producer.
	Cat []ContentCategory `json:"cat,omitempty"`

	// Domain is the highest level domain of the content producer (e.g.,
	// "producer.com").
	Domain string `json:"domain,omitempty"`

	// Ext is a placeholder for exchange-specific extensions to OpenRTB.
	Ext json.RawMessage `json:"ext,omitempty"`
}
