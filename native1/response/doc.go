// Package response provides the OpenRTB Native 1.2 response object graph.
//
// A native response is encoded to a string and carried inside
// openrtb2.Bid.AdM, mirroring the asset structure the exchange declared in
// the native request.
package response
