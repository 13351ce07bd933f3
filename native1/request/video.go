package request

import (
	"encoding/json"

	"github.com/adscope/openrtb/openrtb2"
)

// Video is used for video elements supported in the native ad. Corresponds
// to the Video object of the parent bid request, restricted to the
// attributes that apply to a native placement.
type Video struct {
	// MIMEs is the list of content MIME types supported, e.g. "video/mp4".
	// Required by the Native specification.
	MIMEs []string `json:"mimes"`

	// MinDuration is the minimum video ad duration in seconds. Required by
	// the Native specification.
	MinDuration int64 `json:"minduration"`

	// MaxDuration is the maximum video ad duration in seconds. Required by
	// the Native specification.
	MaxDuration int64 `json:"maxduration"`

	// Protocols is the array of video protocols the publisher can accept in
	// the bid response. Required by the Native specification.
	Protocols []openrtb2.Protocol `json:"protocols"`

	// Ext is a placeholder for exchange-specific extensions.
	Ext json.RawMessage `json:"ext,omitempty"`
}
