package request

import (
	"encoding/json"

	"github.com/adscope/openrtb"
)

// Asset is the main container object for each asset requested or supported
// by the exchange on behalf of the rendering client. Any asset that is
// required is flagged as such. Only one of the {Title, Img, Video, Data}
// objects should be present in each asset; all others should be absent. The
// ID is unique within the asset array so that the response can be aligned.
type Asset struct {
	// ID is the unique asset ID, assigned by the exchange. Typically a
	// counter for the array. Required by the Native specification.
	ID int64 `json:"id"`

	// Required is set when the asset is required (the exchange will not
	// accept a bid without it).
	Required *openrtb.IntBool `json:"required,omitempty"`

	// Title object for title assets.
	Title *Title `json:"title,omitempty"`

	// Img is the image object for image assets.
	Img *Image `json:"img,omitempty"`

	// Video object for video assets. Note that in-stream video ads are not
	// part of Native; native ads may contain a video as the ad creative
	// itself.
	Video *Video `json:"video,omitempty"`

	// Data object for brand name, description, ratings, prices etc.
	Data *Data `json:"data,omitempty"`

	// Ext is a placeholder for exchange-specific extensions.
	Ext json.RawMessage `json:"ext,omitempty"`
}
