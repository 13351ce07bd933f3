package native1

import (
	"bytes"
	"fmt"
	"strconv"
)

// parseEnumInt8 parses the wire form of an integer-coded vocabulary value.
// The what argument names the vocabulary for the error message. Parsing at
// 8-bit width rejects wire values outside the representable range, so a value
// like 257 cannot wrap around into the defined set.
func parseEnumInt8(data []byte, what string) (int8, error) {
	v, err := strconv.ParseInt(string(bytes.TrimSpace(data)), 10, 8)
	if err != nil {
		return 0, fmt.Errorf("native1: cannot decode %q as %s: %w", data, what, err)
	}
	return int8(v), nil
}
