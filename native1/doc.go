// Package native1 provides the enumerated vocabularies shared by the
// OpenRTB Native 1.2 request and response payloads.
//
// The object graphs themselves live in the request and response
// subpackages; a native request rides inside openrtb2.Native.Request as a
// JSON-encoded string, and the matching native response rides back inside
// openrtb2.Bid.AdM the same way.
//
// https://iabtechlab.com/wp-content/uploads/2016/07/OpenRTB-Native-Ads-Specification-Final-1.2.pdf
package native1
