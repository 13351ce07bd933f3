package openrtb2

import (
	"encoding/json"

	"github.com/adscope/openrtb"
)

// BidRequest is the top-level bid request object. It contains a globally
// unique bid request or auction ID. This id attribute is required as is at
// least one Imp object. Other attributes in this top-level object establish
// rules and restrictions that apply to all impressions being offered.
//
// There are also several subordinate objects that provide detailed data to
// potential buyers. Among these are the Site and App objects, which describe
// the type of published media in which the impression(s) appear. These
// objects are highly recommended, but only one applies to a given bid request
// depending on whether the media is browser-based web content or a
// non-browser application, respectively.
type BidRequest struct {
	// ID is the unique ID of the bid request, provided by the exchange.
	// Required by the OpenRTB specification.
	ID string `json:"id"`

	// Imp is the array of Imp objects representing the impressions offered.
	// At least 1 Imp object is required.
	Imp []Imp `json:"imp"`

	// Site describes the publisher's website. Only applicable and
	// recommended for websites. Mutually exclusive with App.
	Site *Site `json:"site,omitempty"`

	// App describes the publisher's app (i.e., non-browser applications).
	// Only applicable and recommended for apps. Mutually exclusive with Site.
	App *App `json:"app,omitempty"`

	// Device describes the user's device to which the impression will be
	// delivered.
	Device *Device `json:"device,omitempty"`

	// User describes the human user of the device; the advertising audience.
	User *User `json:"user,omitempty"`

	// Test indicates test mode in which auctions are not billable, where
	// 0 = live mode, 1 = test mode.
	Test *openrtb.IntBool `json:"test,omitempty"`

	// AT is the auction type, where 1 = First Price, 2 = Second Price Plus.
	// Exchange-specific auction types can be defined using values > 500.
	AT *AuctionType `json:"at,omitempty"`

	// TMax is the maximum time in milliseconds the exchange allows for bids
	// to be received including Internet latency to avoid timeout. This value
	// supersedes any a priori guidance from the exchange.
	TMax *int64 `json:"tmax,omitempty"`

	// WSeat is an allowlist of buyer seats (e.g., advertisers, agencies)
	// that can bid on this impression. IDs of seats and knowledge of the
	// buyer's customers to which they refer must be coordinated between
	// bidders and the exchange a priori. At most, only one of WSeat and
	// BSeat should be used in the same request. Omission of both implies no
	// seat restrictions.
	WSeat []string `json:"wseat,omitempty"`

	// BSeat is a block list of buyer seats (e.g., advertisers, agencies)
	// restricted from bidding on this impression. At most, only one of WSeat
	// and BSeat should be used in the same request. Omission of both implies
	// no seat restrictions.
	BSeat []string `json:"bseat,omitempty"`

	// AllImps is a flag to indicate if the exchange can verify that the
	// impressions offered represent all of the impressions available in
	// context (e.g., all on the web page, all video spots such as
	// pre/mid/post roll) to support road-blocking. 0 = no or unknown,
	// 1 = yes, the impressions offered represent all that are available.
	AllImps *openrtb.IntBool `json:"allimps,omitempty"`

	// Cur is the array of allowed currencies for bids on this bid request
	// using ISO-4217 alpha codes. Recommended only if the exchange accepts
	// multiple currencies.
	Cur []string `json:"cur,omitempty"`

	// WLang is an allowlist of languages for creatives using
	// ISO-639-1-alpha-2. Omission implies no specific restrictions, but
	// buyers would be advised to consider language attribute in the Device
	// and/or Content objects if available.
	WLang []string `json:"wlang,omitempty"`

	// BCat holds blocked advertiser categories using the IAB content
	// categories.
	BCat []ContentCategory `json:"bcat,omitempty"`

	// BAdv is a block list of advertisers by their domains (e.g.,
	// "ford.com").
	BAdv []string `json:"badv,omitempty"`

	// BApp is a block list of applications by their platform-specific
	// exchange-independent application identifiers. On Android, these should
	// be bundle or package names (e.g., com.foo.mygame). On iOS, these are
	// numeric IDs.
	BApp []string `json:"bapp,omitempty"`

	// Source provides data about the inventory source and which entity
	// makes the final decision.
	Source *Source `json:"source,omitempty"`

	// Regs specifies any industry, legal, or governmental regulations in
	// force for this request.
	Regs *Regs `json:"regs,omitempty"`

	// Ext is a placeholder for exchange-specific extensions to OpenRTB.
	Ext json.RawMessage `json:"ext,omitempty"`
}
