package openrtb2

import (
	"encoding/json"

	"github.com/adscope/openrtb"
)

// Audio represents an audio type impression. Many of the fields are
// non-essential for minimally viable transactions, but are included to offer
// fine control when needed. Audio in OpenRTB generally assumes compliance
// with the DAAST standard. As such, the notion of companion ads is supported
// by optionally including an array of Banner objects that define these
// companion ads.
//
// The presence of an Audio as a subordinate of the Imp object indicates that
// this impression is offered as an audio type impression.
type Audio struct {
	// MIMEs is an allowlist of content MIME types supported (e.g.,
	// "audio/mp4"). Required by the OpenRTB specification: at least one
	// element.
	MIMEs []string `json:"mimes"`

	// MinDuration is the minimum audio ad duration in seconds. Recommended
	// by the OpenRTB specification.
	MinDuration *int64 `json:"minduration,omitempty"`

	// MaxDuration is the maximum audio ad duration in seconds. Recommended
	// by the OpenRTB specification.
	MaxDuration *int64 `json:"maxduration,omitempty"`

	// Protocols is the array of supported audio protocols. Recommended by
	// the OpenRTB specification.
	Protocols []Protocol `json:"protocols,omitempty"`

	// StartDelay indicates the start delay in seconds for pre-roll,
	// mid-roll, or post-roll ad placements. Recommended by the OpenRTB
	// specification.
	StartDelay *StartDelay `json:"startdelay,omitempty"`

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

	// Delivery holds supported delivery methods (e.g., streaming,
	// progressive). If none specified, assume all are supported.
	Delivery []ContentDeliveryMethod `json:"delivery,omitempty"`

	// CompanionAd is the array of Banner objects if companion ads are
	// available.
	CompanionAd []Banner `json:"companionad,omitempty"`

	// API is the list of supported API frameworks for this impression. If
	// an API is not explicitly listed, it is assumed not to be supported.
	API []APIFramework `json:"api,omitempty"`

	// CompanionType holds supported DAAST companion ad types. Recommended
	// if companion Banner objects are included via the CompanionAd array.
	CompanionType []CompanionType `json:"companiontype,omitempty"`

	// MaxSeq is the maximum number of ads that can be played in an ad pod.
	MaxSeq *int64 `json:"maxseq,omitempty"`

	// Feed is the type of audio feed.
	Feed *FeedType `json:"feed,omitempty"`

	// Stitched indicates if the ad is stitched with audio content or
	// delivered independently, where 0 = no, 1 = yes.
	Stitched *openrtb.IntBool `json:"stitched,omitempty"`

	// NVol is the volume normalization mode.
	NVol *VolumeNormalizationMode `json:"nvol,omitempty"`

	// Ext is a placeholder for exchange-specific extensions to OpenRTB.
	Ext json.RawMessage `json:"ext,omitempty"`
}
