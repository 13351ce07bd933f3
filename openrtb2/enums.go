package openrtb2

import (
	"bytes"
	"fmt"
	"strconv"
)

// parseEnumInt parses the wire form of an integer-coded vocabulary value.
// The what argument names the vocabulary for the error message.
func parseEnumInt(data []byte, what string) (int64, error) {
	v, err := strconv.ParseInt(string(bytes.TrimSpace(data)), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("openrtb2: cannot decode %q as %s: %w", data, what, err)
	}
	return v, nil
}

// parseEnumInt8 is parseEnumInt for the int8-backed vocabularies. Parsing at
// 8-bit width rejects wire values outside the representable range, so a value
// like 257 cannot wrap around into the defined set.
func parseEnumInt8(data []byte, what string) (int8, error) {
	v, err := strconv.ParseInt(string(bytes.TrimSpace(data)), 10, 8)
	if err != nil {
		return 0, fmt.Errorf("openrtb2: cannot decode %q as %s: %w", data, what, err)
	}
	return int8(v), nil
}
