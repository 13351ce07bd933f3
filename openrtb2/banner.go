package openrtb2

import (
	"encoding/json"

	"github.com/adscope/openrtb"
)

// Banner represents the most general type of impression. Although the term
// "banner" may have very specific meaning in other contexts, here it can be
// many things including a simple static image, an expandable ad unit, or even
// in-banner video (refer to the Video object for the more generalized and
// full featured video ad units). An array of Banner objects can also appear
// within the Video to describe optional companion ads defined in the VAST
// specification.
//
// The presence of a Banner as a subordinate of the Imp object indicates that
// this impression is offered as a banner type impression.
type Banner struct {
	// Format is an array of Format objects representing the banner sizes
	// permitted. If none are specified, then use of the H and W attributes
	// is highly recommended.
	Format []Format `json:"format,omitempty"`

	// W is the exact width in device independent pixels (DIPS); recommended
	// if no Format objects are specified, otherwise a preferred width.
	W *int64 `json:"w,omitempty"`

	// H is the exact height in device independent pixels (DIPS);
	// recommended if no Format objects are specified, otherwise a preferred
	// height.
	H *int64 `json:"h,omitempty"`

	// WMax is the maximum width in DIPS.
	//
	// Deprecated: deprecated in OpenRTB 2.4+, prefer the Format field.
	WMax *int64 `json:"wmax,omitempty"`

	// HMax is the maximum height in DIPS.
	//
	// Deprecated: deprecated in OpenRTB 2.4+, prefer the Format field.
	HMax *int64 `json:"hmax,omitempty"`

	// WMin is the minimum width in DIPS.
	//
	// Deprecated: deprecated in OpenRTB 2.4+, prefer the Format field.
	WMin *int64 `json:"wmin,omitempty"`

	// HMin is the minimum height in DIPS.
	//
	// Deprecated: deprecated in OpenRTB 2.4+, prefer the Format field.
	HMin *int64 `json:"hmin,omitempty"`

	// BType holds blocked banner ad types.
	BType []BannerAdType `json:"btype,omitempty"`

	// BAttr holds blocked creative attributes.
	BAttr []CreativeAttribute `json:"battr,omitempty"`

	// Pos is the ad position on screen.
	Pos *AdPosition `json:"pos,omitempty"`

	// MIMEs is an allowlist of content MIME types supported. Popular MIME
	// types may include "application/x-shockwave-flash", "image/jpg", and
	// "image/gif".
	MIMEs []string `json:"mimes,omitempty"`

	// TopFrame indicates if the banner is in the top frame as opposed to an
	// iframe, where 0 = no, 1 = yes.
	TopFrame *openrtb.IntBool `json:"topframe,omitempty"`

	// ExpDir holds directions in which the banner may expand.
	ExpDir []ExpandableDirection `json:"expdir,omitempty"`

	// API is the list of supported API frameworks for this impression. If
	// an API is not explicitly listed, it is assumed not to be supported.
	API []APIFramework `json:"api,omitempty"`

	// ID is a unique identifier for this banner object. Recommended when
	// Banner objects are used with a Video object to represent an array of
	// companion ads. Values usually start at 1 and increase with each
	// object; should be unique within an impression.
	ID string `json:"id,omitempty"`

	// VCM is relevant only for Banner objects used with a Video object in
	// an array of companion ads. Indicates the companion banner rendering
	// mode relative to the associated video, where 0 = concurrent,
	// 1 = end-card.
	VCM *openrtb.IntBool `json:"vcm,omitempty"`

	// Ext is a placeholder for exchange-specific extensions to OpenRTB.
	Ext json.RawMessage `json:"ext,omitempty"`
}
