package response

import (
	"encoding/json"

	"github.com/adscope/openrtb"
)

// Asset corresponds to the Asset object in the request and is the main
// container object for each asset requested or supported by the exchange on
// behalf of the rendering client. Only one of the {Title, Img, Video, Data}
// objects should be present in each asset; all others should be absent. The
// ID is unique within the asset array so that the response can be aligned
// with the request.
type Asset struct {
	// ID is the unique asset ID, assigned by the exchange. It must match one
	// of the asset IDs in the request. Required when an embedded asset is
	// being used.
	ID int64 `json:"id"`

	// Required is set when the asset is required (the bidder requires it to
	// be displayed).
	Required *openrtb.IntBool `json:"required,omitempty"`

	// Link object for call to actions. This link object applies if the asset
	// item is activated (clicked); if there is no link object on the asset,
	// the parent link object on the response applies.
	Link *Link `json:"link,omitempty"`

	// Title object for title assets.
	Title *Title `json:"title,omitempty"`

	// Img is the image object for image assets.
	Img *Image `json:"img,omitempty"`

	// Video object for video assets. Note that in-stream video ads are not
	// part of Native; native ads may contain a video as the ad creative
	// itself.
	Video *Video `json:"video,omitempty"`

	// Data object for ratings, prices etc.
	Data *Data `json:"data,omitempty"`

	// Ext is a placeholder for bidder-specific extensions.
	Ext json.RawMessage `json:"ext,omitempty"`
}
