package request

import (
	"encoding/json"

	"github.com/adscope/openrtb/native1"
)

// Image is used for all image elements of the native ad such as icons and
// main images. Recommended sizes and aspect ratios are included in
// native1.ImageAssetType.
type Image struct {
	// Type is the type ID of the image element supported by the publisher.
	// The publisher can display this information in an appropriate format.
	Type *native1.ImageAssetType `json:"type,omitempty"`

	// W is the width of the image in pixels.
	W *int64 `json:"w,omitempty"`

	// H is the height of the image in pixels.
	H *int64 `json:"h,omitempty"`

	// WMin is the minimum requested width of the image in pixels. This
	// option should be used for any rescaling of images by the client.
	// Either W or WMin should be transmitted; if only W is included, it
	// should be considered an exact requirement. Recommended by the Native
	// specification.
	WMin *int64 `json:"wmin,omitempty"`

	// HMin is the minimum requested height of the image in pixels. This
	// option should be used for any rescaling of images by the client.
	// Either H or HMin should be transmitted; if only H is included, it
	// should be considered an exact requirement. Recommended by the Native
	// specification.
	HMin *int64 `json:"hmin,omitempty"`

	// MIMEs is the allowlist of content MIME types supported, e.g.
	// "image/jpg" and "image/gif". If blank, assume all types are allowed.
	MIMEs []string `json:"mimes,omitempty"`

	// Ext is a placeholder for exchange-specific extensions.
	Ext json.RawMessage `json:"ext,omitempty"`
}
