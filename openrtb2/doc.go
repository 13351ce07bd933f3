// Package openrtb2 provides the OpenRTB 2.5 bid request and bid response
// types together with the protocol's enumerated vocabularies.
//
// The types model the JSON wire contract only: required attributes are always
// emitted, optional attributes are pointers (or omitempty strings) so that an
// absent attribute survives a decode/encode round trip without collapsing
// into a zero value, and every extensible object carries an opaque ext slot.
// No cross-field validation is performed here; constructing a request that
// honors caller-level invariants (such as "site and app are mutually
// exclusive") is the caller's responsibility.
//
// https://iabtechlab.com/standards/openrtb/
// https://iabtechlab.com/wp-content/uploads/2016/07/OpenRTB-API-Specification-Version-2-5-FINAL.pdf
package openrtb2
