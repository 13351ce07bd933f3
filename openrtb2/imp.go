package openrtb2

import (
	"encoding/json"

	"github.com/adscope/openrtb"
)

// Imp describes an ad placement or impression being auctioned. A single bid
// request can include multiple Imp objects, a use case for which might be an
// exchange that supports selling all ad positions on a given page. Each Imp
// object has a required ID so that bids can reference them individually.
//
// The presence of Banner, Video, Audio, and/or Native objects subordinate to
// the Imp object indicates the type of impression being offered. The
// publisher can choose one such type which is the typical case or mix them at
// their discretion. However, any given bid for the impression must conform to
// one of the offered types.
type Imp struct {
	// ID is a unique identifier for this impression within the context of
	// the bid request (typically, value starts with 1 and increments).
	ID string `json:"id"`

	// Metric is an array of Metric objects offering insight into the
	// impression to assist with decisioning such as average recent
	// viewability, click-through rate, etc.
	Metric []Metric `json:"metric,omitempty"`

	// Banner is required if this impression is offered as a banner ad
	// opportunity.
	Banner *Banner `json:"banner,omitempty"`

	// Video is required if this impression is offered as a video ad
	// opportunity.
	Video *Video `json:"video,omitempty"`

	// Audio is required if this impression is offered as an audio ad
	// opportunity.
	Audio *Audio `json:"audio,omitempty"`

	// Native is required if this impression is offered as a native ad
	// opportunity.
	Native *Native `json:"native,omitempty"`

	// Pmp contains any private marketplace deals in effect for this
	// impression.
	Pmp *Pmp `json:"pmp,omitempty"`

	// DisplayManager is the name of the ad mediation partner, SDK
	// technology, or player responsible for rendering the ad (typically
	// video or mobile). Used by some ad servers to customize ad code by
	// partner. Recommended for video and/or apps.
	DisplayManager string `json:"displaymanager,omitempty"`

	// DisplayManagerVer is the version of the ad mediation partner, SDK
	// technology, or player responsible for rendering the ad.
	DisplayManagerVer string `json:"displaymanagerver,omitempty"`

	// Instl indicates whether the ad is interstitial, where 1 = the ad is
	// interstitial or full screen, 0 = not interstitial.
	Instl *openrtb.IntBool `json:"instl,omitempty"`

	// TagID is an identifier for the specific ad placement or ad tag that
	// was used to initiate the auction. This can be useful for debugging of
	// any issues, or for optimization by the buyer.
	TagID string `json:"tagid,omitempty"`

	// BidFloor is the minimum bid for this impression expressed in CPM.
	BidFloor *float64 `json:"bidfloor,omitempty"`

	// BidFloorCur is the currency of BidFloor specified using ISO-4217
	// alpha codes. This may be different from bid currency returned by the
	// bidder if this is allowed by the exchange. Defaults to "USD".
	BidFloorCur string `json:"bidfloorcur,omitempty"`

	// ClickBrowser indicates the type of browser opened upon clicking the
	// creative in an app, where 0 = embedded, 1 = native. Note that the
	// Safari View Controller in iOS 9.x devices is considered a native
	// browser for purposes of this attribute.
	ClickBrowser *openrtb.IntBool `json:"clickbrowser,omitempty"`

	// Secure is a flag to indicate if the impression requires secure HTTPS
	// URL creative assets and markup, where 0 = non-secure, 1 = secure. If
	// omitted, the secure state is unknown, but non-secure HTTP support can
	// be assumed.
	Secure *openrtb.IntBool `json:"secure,omitempty"`

	// IframeBuster is an array of exchange-specific names of supported
	// iframe busters.
	IframeBuster []string `json:"iframebuster,omitempty"`

	// Exp advises as to the number of seconds that may elapse between the
	// auction and the actual impression.
	Exp *int64 `json:"exp,omitempty"`

	// Ext is a placeholder for exchange-specific extensions to OpenRTB.
	Ext json.RawMessage `json:"ext,omitempty"`
}
