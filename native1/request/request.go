package request

import (
	"encoding/json"

	"github.com/adscope/openrtb"
	"github.com/adscope/openrtb/native1"
)

// Request defines the native advertising opportunity available for bid via
// this bid request. It is conveyed as a JSON-encoded string in the
// openrtb2.Native.Request attribute of the parent impression.
type Request struct {
	// Ver is the version of the Native Markup in use.
	Ver string `json:"ver,omitempty"`

	// Context is the context in which the ad appears. Recommended by the
	// Native specification.
	Context *native1.ContextType `json:"context,omitempty"`

	// ContextSubType is a more detailed context in which the ad appears.
	ContextSubType *native1.ContextSubType `json:"contextsubtype,omitempty"`

	// PlcmtType is the design/format/layout of the ad unit being offered.
	// Recommended by the Native specification.
	PlcmtType *native1.PlacementType `json:"plcmttype,omitempty"`

	// PlcmtCnt is the number of identical placements in this layout.
	// Defaults to 1 when absent.
	PlcmtCnt *int64 `json:"plcmtcnt,omitempty"`

	// Seq is 0 for the first ad, 1 for the second ad, and so on. Note this
	// would generally not be used in combination with PlcmtCnt: either
	// multiple identical placements are auctioned (PlcmtCnt > 1, Seq = 0) or
	// separate auctions are held for distinct items in the feed
	// (PlcmtCnt = 1, Seq >= 1).
	Seq *int64 `json:"seq,omitempty"`

	// Assets is the array of asset objects any bid must comply with.
	// Required by the Native specification: at least 1 element.
	Assets []Asset `json:"assets"`

	// AURLSupport indicates whether the supply source / impression supports
	// returning an assetsurl instead of an asset object. Absence indicates
	// no such support.
	AURLSupport *openrtb.IntBool `json:"aurlsupport,omitempty"`

	// DURLSupport indicates whether the supply source / impression supports
	// returning a DCO URL instead of an asset object. Absence indicates no
	// such support. Beta feature.
	DURLSupport *openrtb.IntBool `json:"durlsupport,omitempty"`

	// EventTrackers specifies what event tracking is supported.
	EventTrackers []EventTrackers `json:"eventtrackers,omitempty"`

	// Privacy is set when the native ad supports buyer-specific privacy
	// notice. Absence means custom privacy links are unsupported or support
	// is unknown. Recommended by the Native specification.
	Privacy *openrtb.IntBool `json:"privacy,omitempty"`

	// Layout is the layout of the ad unit being offered.
	//
	// Deprecated: removed in Native 1.2+, use PlcmtType.
	Layout *native1.Layout `json:"layout,omitempty"`

	// AdUnit is the ad unit of the ad being offered.
	//
	// Deprecated: removed in Native 1.2+, use Context and ContextSubType.
	AdUnit *native1.AdUnit `json:"adunit,omitempty"`

	// Ext is a placeholder for exchange-specific extensions.
	Ext json.RawMessage `json:"ext,omitempty"`
}
