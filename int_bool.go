package openrtb

import (
	"bytes"
	"fmt"
	"strconv"
)

// IntBool is a boolean carried on the wire as an integer.
//
// Several OpenRTB attributes (imp.instl, imp.secure, device.dnt, ...) are
// defined as integers where 0 means "no" and 1 means "yes", with absence
// meaning "unknown". Producers in the wild are loose about the domain, so
// decoding accepts any integer: zero is false, everything else is true.
// Encoding always emits 0 or 1.
//
// Use *IntBool for struct fields so that an omitted attribute stays
// distinguishable from an explicit 0.
type IntBool bool

// Val returns the plain bool value.
func (b IntBool) Val() bool {
	return bool(b)
}

// MarshalJSON implements json.Marshaler, emitting 1 for true and 0 for false.
func (b IntBool) MarshalJSON() ([]byte, error) {
	if b {
		return []byte("1"), nil
	}
	return []byte("0"), nil
}

// UnmarshalJSON implements json.Unmarshaler. Any integer decodes successfully:
// 0 becomes false, every other value becomes true. Non-integer input is a
// decode error.
func (b *IntBool) UnmarshalJSON(data []byte) error {
	v, err := strconv.ParseInt(string(bytes.TrimSpace(data)), 10, 64)
	if err != nil {
		return fmt.Errorf("openrtb: cannot decode %q as integer boolean: %w", data, err)
	}
	*b = v != 0
	return nil
}
