package openrtb2

import "encoding/json"

// Bid: a SeatBid object contains one or more Bid objects, each of which
// relates to a specific impression in the bid request via the ImpID
// attribute and constitutes an offer to buy that impression for a given
// price.
type Bid struct {
	// ID is the bidder generated bid ID to assist with logging/tracking.
	// Required by the OpenRTB specification.
	ID string `json:"id"`

	// ImpID is the ID of the Imp object in the related bid request.
	// Required by the OpenRTB specification.
	ImpID string `json:"impid"`

	// Price is the bid price expressed as CPM although the actual
	// transaction is for a unit impression only. Note that while the type
	// indicates float, integer math is highly recommended when handling
	// currencies (e.g., big integers of micros). Required by the OpenRTB
	// specification.
	Price float64 `json:"price"`

	// NURL is the win notice URL called by the exchange if the bid wins;
	// optional means of serving ad markup. Substitution macros may be
	// included in both the URL and optionally returned markup.
	NURL string `json:"nurl,omitempty"`

	// BURL is the billing notice URL called by the exchange when a winning
	// bid becomes billable based on exchange-specific business policy
	// (e.g., typically delivered, viewed, etc.). Substitution macros may be
	// included.
	BURL string `json:"burl,omitempty"`

	// LURL is the loss notice URL called by the exchange when a bid is
	// known to have been lost. Substitution macros may be included.
	// Exchange-specific policy may preclude support for loss notices or the
	// disclosure of winning clearing prices resulting in ${AUCTION_PRICE}
	// macros being removed (i.e., replaced with a zero-length string).
	LURL string `json:"lurl,omitempty"`

	// AdM is an optional means of conveying ad markup in case the bid wins;
	// supersedes the win notice if markup is included in both. Substitution
	// macros may be included. For native ad bids, this carries the native
	// response payload as a JSON-encoded string.
	AdM string `json:"adm,omitempty"`

	// AdID is the ID of a preloaded ad to be served if the bid wins.
	AdID string `json:"adid,omitempty"`

	// ADomain is the advertiser domain for block list checking (e.g.,
	// "ford.com"). This can be an array for the case of rotating creatives.
	// Exchanges can mandate that only one domain is allowed.
	ADomain []string `json:"adomain,omitempty"`

	// Bundle is a platform-specific application identifier intended to be
	// unique to the app and independent of the exchange. On Android, this
	// should be a bundle or package name (e.g., com.foo.mygame). On iOS, it
	// is a numeric ID.
	Bundle string `json:"bundle,omitempty"`

	// IURL is the URL without cache-busting to an image that is
	// representative of the content of the campaign for ad quality/safety
	// checking.
	IURL string `json:"iurl,omitempty"`

	// CID is the campaign ID to assist with ad quality checking; the
	// collection of creatives for which IURL should be representative.
	CID string `json:"cid,omitempty"`

	// CrID is the creative ID to assist with ad quality checking.
	CrID string `json:"crid,omitempty"`

	// Tactic is an ID to enable buyers to label bids for reporting to the
	// exchange the tactic through which their bid was submitted. The
	// specific usage and meaning of the tactic ID should be communicated
	// between buyer and exchanges a priori.
	Tactic string `json:"tactic,omitempty"`

	// Cat is the array of IAB content categories of the creative.
	Cat []ContentCategory `json:"cat,omitempty"`

	// Attr is the set of attributes describing the creative.
	Attr []CreativeAttribute `json:"attr,omitempty"`

	// API is the API framework required by the markup if applicable.
	API *APIFramework `json:"api,omitempty"`

	// Protocol is the video response protocol of the markup if applicable.
	Protocol *Protocol `json:"protocol,omitempty"`

	// QAGMediaRating is the creative media rating per IQG guidelines.
	QAGMediaRating *QAGMediaRating `json:"qagmediarating,omitempty"`

	// Language of the creative using ISO-639-1-alpha-2. The nonstandard
	// code "xx" may also be used if the creative has no linguistic content
	// (e.g., a banner with just a company logo).
	Language string `json:"language,omitempty"`

	// DealID is a reference to the Deal.ID from the bid request if this bid
	// pertains to a private marketplace direct deal.
	DealID string `json:"dealid,omitempty"`

	// W is the width of the creative in device independent pixels (DIPS).
	W *int64 `json:"w,omitempty"`

	// H is the height of the creative in device independent pixels (DIPS).
	H *int64 `json:"h,omitempty"`

	// WRatio is the relative width of the creative when expressing size as
	// a ratio. Required for Flex Ads.
	WRatio *int64 `json:"wratio,omitempty"`

	// HRatio is the relative height of the creative when expressing size as
	// a ratio. Required for Flex Ads.
	HRatio *int64 `json:"hratio,omitempty"`

	// Exp advises as to the number of seconds the bidder is willing to wait
	// between the auction and the actual impression.
	Exp *int64 `json:"exp,omitempty"`

	// Ext is a placeholder for bidder-specific extensions to OpenRTB.
	Ext json.RawMessage `json:"ext,omitempty"`
}
