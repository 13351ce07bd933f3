package openrtb2

import "fmt"

// LocationType indicates how the geographic information in a Geo object was
// determined.
type LocationType int8

const (
	LocationTypeGPS          LocationType = 1 // GPS/Location Services
	LocationTypeIP           LocationType = 2 // IP Address
	LocationTypeUserProvided LocationType = 3 // User Provided (e.g., registration data)
)

// Name returns the canonical name of the location type, or "" if t is not a
// defined value.
func (t LocationType) Name() string {
	switch t {
	case LocationTypeGPS:
		return "GPS_LOCATION"
	case LocationTypeIP:
		return "IP"
	case LocationTypeUserProvided:
		return "USER_PROVIDED"
	}
	return ""
}

// UnmarshalJSON implements json.Unmarshaler, rejecting values outside the
// published vocabulary.
func (t *LocationType) UnmarshalJSON(data []byte) error {
	v, err := parseEnumInt8(data, "location type")
	if err != nil {
		return err
	}
	if l := LocationType(v); l.Name() != "" {
		*t = l
		return nil
	}
	return fmt.Errorf("openrtb2: unknown location type %d", v)
}
