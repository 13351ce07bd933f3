package response

import (
	"encoding/json"

	"github.com/adscope/openrtb/native1"
)

// Image corresponds to the Image object in the request and is used for all
// image elements of the native ad such as icons and main images. It is
// recommended that if assetsurl/dcourl is being used rather than embedded
// assets, an image of each recommended aspect ratio (per
// native1.ImageAssetType) be provided for the main image type.
type Image struct {
	// Type is the type of image element being submitted. Required for
	// assetsurl or dcourl responses, not required for embedded asset
	// responses.
	Type *native1.ImageAssetType `json:"type,omitempty"`

	// URL of the image asset. Required by the Native specification.
	URL string `json:"url"`

	// W is the width of the image in pixels. Recommended for embedded asset
	// responses; required for assetsurl or dcourl responses if multiple
	// assets of the same type are submitted.
	W *int64 `json:"w,omitempty"`

	// H is the height of the image in pixels. Recommended for embedded asset
	// responses; required for assetsurl or dcourl responses if multiple
	// assets of the same type are submitted.
	H *int64 `json:"h,omitempty"`

	// Ext is a placeholder for bidder-specific extensions.
	Ext json.RawMessage `json:"ext,omitempty"`
}
