package openrtb2

import "fmt"

// Protocol is a video or audio bid response protocol supported by an
// exchange or used by a creative.
type Protocol int8

const (
	ProtocolVAST10         Protocol = 1  // VAST 1.0
	ProtocolVAST20         Protocol = 2  // VAST 2.0
	ProtocolVAST30         Protocol = 3  // VAST 3.0
	ProtocolVAST10Wrapper  Protocol = 4  // VAST 1.0 Wrapper
	ProtocolVAST20Wrapper  Protocol = 5  // VAST 2.0 Wrapper
	ProtocolVAST30Wrapper  Protocol = 6  // VAST 3.0 Wrapper
	ProtocolVAST40         Protocol = 7  // VAST 4.0
	ProtocolVAST40Wrapper  Protocol = 8  // VAST 4.0 Wrapper
	ProtocolDAAST10        Protocol = 9  // DAAST 1.0
	ProtocolDAAST10Wrapper Protocol = 10 // DAAST 1.0 Wrapper
)

// Name returns the canonical name of the protocol, or "" if t is not a
// defined value.
func (t Protocol) Name() string {
	switch t {
	case ProtocolVAST10:
		return "VAST_1_0"
	case ProtocolVAST20:
		return "VAST_2_0"
	case ProtocolVAST30:
		return "VAST_3_0"
	case ProtocolVAST10Wrapper:
		return "VAST_1_0_WRAPPER"
	case ProtocolVAST20Wrapper:
		return "VAST_2_0_WRAPPER"
	case ProtocolVAST30Wrapper:
		return "VAST_3_0_WRAPPER"
	case ProtocolVAST40:
		return "VAST_4_0"
	case ProtocolVAST40Wrapper:
		return "VAST_4_0_WRAPPER"
	case ProtocolDAAST10:
		return "DAAST_1_0"
	case ProtocolDAAST10Wrapper:
		return "DAAST_1_0_WRAPPER"
	}
	return ""
}

// UnmarshalJSON implements json.Unmarshaler, rejecting values outside the
// published vocabulary.
func (t *Protocol) UnmarshalJSON(data []byte) error {
	v, err := parseEnumInt8(data, "protocol")
	if err != nil {
		return err
	}
	if p := Protocol(v); p.Name() != "" {
		*t = p
		return nil
	}
	return fmt.Errorf("openrtb2: unknown protocol %d", v)
}
