package openrtb2

import (
	"encoding/json"

	"github.com/adscope/openrtb"
)

// Video represents an in-stream video impression. Many of the fields are
// non-essential for minimally viable transactions, but are included to offer
// fine control when needed. Video in OpenRTB generally assumes compliance
// with the VAST standard. As such, the notion of companion ads is supported
// by optionally including an array of Banner objects that define these
// companion ads.
//
// The presence of a Video as a subordinate of the Imp object indicates that
// this impression is offered as a video type impression.
type Video struct {
	// MIMEs is an allowlist of content MIME types supported (e.g.,
	// "video/mp4"). Required by the OpenRTB specification: at least one
	// element.
	MIMEs []string `json:"mimes"`

	// MinDuration is the minimum video ad duration in seconds. Recommended
	// by the OpenRTB specification.
	MinDuration *int64 `json:"minduration,omitempty"`

	// MaxDuration is the maximum video ad duration in seconds. Recommended
	// by the OpenRTB specification.
	MaxDuration *int64 `json:"maxduration,omitempty"`

	// Protocols is the array of supported video protocols. At least one
	// supported protocol must be specified in either the Protocol or
	// Protocols attribute.
	Protocols []Protocol `json:"protocols,omitempty"`

	// Protocol is a supported video protocol.
	//
	// Deprecated: deprecated in OpenRTB 2.3+, prefer the Protocols field.
	Protocol *Protocol `json:"protocol,omitempty"`

	// W is the width of the video player in device independent pixels
	// (DIPS). Recommended by the OpenRTB specification.
	W *int64 `json:"w,omitempty"`

	// H is the height of the video player in device independent pixels
	// (DIPS). Recommended by the OpenRTB specification.
	H *int64 `json:"h,omitempty"`

	// StartDelay indicates the start delay in seconds for pre-roll,
	// mid-roll, or post-roll ad placements. Recommended by the OpenRTB
	// specification.
	StartDelay *StartDelay `json:"startdelay,omitempty"`

	// Placement is the placement type for the impression.
	Placement *VideoPlacementType `json:"placement,omitempty"`

	// Linearity indicates if the impression must be linear, nonlinear, etc.
	// If none specified, assume all are allowed.
	Linearity *VideoLinearity `json:"linearity,omitempty"`

	// Skip indicates if the player will allow the video to be skipped,
	// where 0 = no, 1 = yes. If a bidder sends markup/creative that is
	// itself skippable, the Bid object should include the attr array with
	// an element of 16 indicating skippable video.
	Skip *openrtb.IntBool `json:"skip,omitempty"`

	// SkipMin: videos of total duration greater than this number of seconds
	// can be skippable; only applicable if the ad is skippable.
	SkipMin *int64 `json:"skipmin,omitempty"`

	// SkipAfter is the number of seconds a video must play before skipping
	// is enabled; only applicable if the ad is skippable.
	SkipAfter *int64 `json:"skipafter,omitempty"`

	// Sequence: if multiple ad impressions are offered in the same bid
	// request, the sequence number will allow for the coordinated delivery
	// of multiple creatives.
	Sequence *int64 `json:"sequence,omitempty"`

	// BAttr holds blocked creative attributes.
	BAttr []CreativeAttribute `json:"battr,omitempty"`

	// MaxExtended is the maximum extended ad duration if extension is
	// allowed. If blank or 0, extension is not allowed. If -1, extension is
	// allowed, and there is no time limit imposed. If greater than 0, then
	// the value represents the number of seconds of extended play supported
	// beyond the MaxDuration value.
	MaxExtended *int64 `json:"maxextended,omitempty"`

	// MinBitRate is the minimum bit rate in Kbps.
	MinBitRate *int64 `json:"minbitrate,omitempty"`

	// MaxBitRate is the maximum bit rate in Kbps.
	MaxBitRate *int64 `json:"maxbitrate,omitempty"`

	// BoxingAllowed indicates if letter-boxing of 4:3 content into a 16:9
	// window is allowed, where 0 = no, 1 = yes.
	BoxingAllowed *openrtb.IntBool `json:"boxingallowed,omitempty"`

	// PlaybackMethod holds playback methods that may be in use. If none are
	// specified, any method may be used. Only one method is typically used
	// in practice; it is strongly advised to use only the first element of
	// this array.
	PlaybackMethod []PlaybackMethod `json:"playbackmethod,omitempty"`

	// PlaybackEnd is the event that causes playback to end.
	PlaybackEnd *PlaybackCessationMode `json:"playbackend,omitempty"`

	// Delivery holds supported delivery methods (e.g., streaming,
	// progressive). If none specified, assume all are supported.
	Delivery []ContentDeliveryMethod `json:"delivery,omitempty"`

	// Pos is the ad position on screen.
	Pos *AdPosition `json:"pos,omitempty"`

	// CompanionAd is the array of Banner objects if companion ads are
	// available.
	CompanionAd []Banner `json:"companionad,omitempty"`

	// API is the list of supported API frameworks for this impression. If
	// an API is not explicitly listed, it is assumed not to be supported.
	API []APIFramework `json:"api,omitempty"`

	// CompanionType holds supported VAST companion ad types. Recommended if
	// companion Banner objects are included via the CompanionAd array.
	CompanionType []CompanionType `json:"companiontype,omitempty"`

	// Ext is a placeholder for exchange-specific extensions to OpenRTB.
	Ext json.RawMessage `json:"ext,omitempty"`
}
