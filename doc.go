// Package openrtb provides shared wire primitives for the OpenRTB 2.x and
// OpenRTB Native 1.x type packages in this module.
//
// The protocol objects themselves live in the openrtb2, native1/request and
// native1/response packages; this package holds only the pieces they share:
// the integer-coded boolean codec and pointer helpers for optional fields.
//
// https://iabtechlab.com/standards/openrtb/
package openrtb
