package openrtb2

import "encoding/json"

// Format represents an allowed size (i.e., height and width combination) or
// Flex Ad parameters for a banner impression. These are typically used in an
// array where multiple sizes are permitted. It is recommended that either the
// W/H pair or the WRatio/HRatio/WMin set (for Flex Ads) be specified.
type Format struct {
	// W is the width in device independent pixels (DIPS).
	W *int64 `json:"w,omitempty"`

	// H is the height in device independent pixels (DIPS).
	H *int64 `json:"h,omitempty"`

	// WRatio is the relative width when expressing size as a ratio.
	WRatio *int64 `json:"wratio,omitempty"`

	// HRatio is the relative height when expressing size as a ratio.
	HRatio *int64 `json:"hratio,omitempty"`

	// WMin is the minimum width in device independent pixels (DIPS) at
	// which the ad will be displayed when the size is expressed as a ratio.
	WMin *int64 `json:"wmin,omitempty"`

	// Ext is a placeholder for exchange-specific extensions to OpenRTB.
	Ext json.RawMessage `json:"ext,omitempty"`
}
