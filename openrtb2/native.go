package openrtb2

import "encoding/json"

// Native represents a native type impression. Native ad units are intended
// to blend seamlessly into the surrounding content (e.g., a sponsored Twitter
// or Facebook post). As such, the response must be well-structured to afford
// the publisher fine-grained control over rendering.
//
// The Native Subcommittee has developed a companion specification to OpenRTB
// called the Dynamic Native Ads API. It defines the request parameters and
// response markup structure of native ad units. This object provides the
// means of transporting request parameters as an opaque string so that the
// specific parameters can evolve separately under the auspices of the Dynamic
// Native Ads API. Similarly, the ad markup served will be structured
// according to that specification.
//
// The presence of a Native as a subordinate of the Imp object indicates that
// this impression is offered as a native type impression.
type Native struct {
	// Request is the request payload complying with the Native Ad
	// Specification. Required by the OpenRTB specification.
	Request string `json:"request"`

	// Ver is the version of the Dynamic Native Ads API to which Request
	// complies. Highly recommended for efficient parsing.
	Ver string `json:"ver,omitempty"`

	// API is the list of supported API frameworks for this impression. If
	// an API is not explicitly listed, it is assumed not to be supported.
	API []APIFramework `json:"api,omitempty"`

	// BAttr holds blocked creative attributes.
	BAttr []CreativeAttribute `json:"battr,omitempty"`

	// Ext is a placeholder for exchange-specific extensions to OpenRTB.
	Ext json.RawMessage `json:"ext,omitempty"`
}
