package response

import "encoding/json"

// Response is the top-level JSON object which identifies a native response.
// It is conveyed as a JSON-encoded string in the openrtb2.Bid.AdM attribute
// of the winning bid.
type Response struct {
	// Ver is the version of the Native Markup in use. Recommended by the
	// Native specification.
	Ver string `json:"ver,omitempty"`

	// Assets is the list of the native ad's assets. Required in 1.2 unless
	// AssetsURL is provided; recommended as a fallback even then.
	Assets []Asset `json:"assets"`

	// AssetsURL is the URL of an alternate source for the assets object.
	// The expected response is a JSON object mirroring the assets object in
	// the bid response. Where present, it overrides the assets object.
	AssetsURL string `json:"assetsurl,omitempty"`

	// DCOURL is the URL where a dynamic creative specification may be found
	// for populating this ad, per the Dynamic Content Ads Specification.
	// Beta feature; where present, it overrides the assets object.
	DCOURL string `json:"dcourl,omitempty"`

	// Link is the default destination link object for the ad. Individual
	// assets can also have a link object which applies if the asset is
	// activated (clicked); if an asset has no link object, this parent link
	// object applies. Required by the Native specification.
	Link Link `json:"link"`

	// ImpTrackers is the array of impression tracking URLs, expected to
	// return a 1x1 image or 204 response. Typically only passed when using
	// third-party trackers.
	//
	// Deprecated: removed in Native 1.2+, use EventTrackers.
	ImpTrackers []string `json:"imptrackers,omitempty"`

	// JSTracker is an optional javascript impression tracker containing
	// <script> tags to be executed at impression time where supported.
	//
	// Deprecated: removed in Native 1.2+, use EventTrackers.
	JSTracker string `json:"jstracker,omitempty"`

	// EventTrackers is the array of response event trackers to run with the
	// ad, in response to the declared supported methods in the request.
	// Replaces ImpTrackers and JSTracker.
	EventTrackers []EventTracker `json:"eventtrackers,omitempty"`

	// Privacy is the URL of a page informing the user about the buyer's
	// targeting activity, if support was indicated in the request.
	Privacy string `json:"privacy,omitempty"`

	// Ext is a placeholder for bidder-specific extensions.
	Ext json.RawMessage `json:"ext,omitempty"`
}
