package openrtb2

import "fmt"

// ConnectionType describes the options for the type of device connectivity.
type ConnectionType int8

const (
	ConnectionTypeUnknown     ConnectionType = 0 // Unknown
	ConnectionTypeEthernet    ConnectionType = 1 // Ethernet
	ConnectionTypeWIFI        ConnectionType = 2 // WIFI
	ConnectionTypeCellUnknown ConnectionType = 3 // Cellular Network - Unknown Generation
	ConnectionTypeCell2G      ConnectionType = 4 // Cellular Network - 2G
	ConnectionTypeCell3G      ConnectionType = 5 // Cellular Network - 3G
	ConnectionTypeCell4G      ConnectionType = 6 // Cellular Network - 4G
)

// Name returns the canonical name of the connection type, or "" if t is not
// a defined value.
func (t ConnectionType) Name() string {
	switch t {
	case ConnectionTypeUnknown:
		return "CONNECTION_UNKNOWN"
	case ConnectionTypeEthernet:
		return "ETHERNET"
	case ConnectionTypeWIFI:
		return "WIFI"
	case ConnectionTypeCellUnknown:
		return "CELL_UNKNOWN"
	case ConnectionTypeCell2G:
		return "CELL_2G"
	case ConnectionTypeCell3G:
		return "CELL_3G"
	case ConnectionTypeCell4G:
		return "CELL_4G"
	}
	return ""
}

// UnmarshalJSON implements json.Unmarshaler, rejecting values outside the
// published vocabulary.
func (t *ConnectionType) UnmarshalJSON(data []byte) error {
	v, err := parseEnumInt8(data, "connection type")
	if err != nil {
		return err
	}
	if c := ConnectionType(v); c.Name() != "" {
		*t = c
		return nil
	}
	return fmt.Errorf("openrtb2: unknown connection type %d", v)
}
