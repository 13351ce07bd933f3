// Package request provides the OpenRTB Native 1.2 request object graph.
//
// A native request does not travel as a JSON object of its own: it is
// encoded to a string and carried inside openrtb2.Native.Request. Decoding
// that string with this package recovers the markup the exchange is
// offering.
package request
