package openrtb2

import "fmt"

// IPLocationService lists the services and/or vendors used for resolving IP
// addresses to geolocations.
type IPLocationService int8

const (
	IPLocationServiceIP2Location IPLocationService = 1 // ip2location
	IPLocationServiceNeustar     IPLocationService = 2 // Neustar (Quova)
	IPLocationServiceMaxMind     IPLocationService = 3 // MaxMind
	IPLocationServiceNetAcuity   IPLocationService = 4 // NetAcuity (Digital Element)
)

// Name returns the canonical name of the location service, or "" if t is not
// a defined value.
func (t IPLocationService) Name() string {
	switch t {
	case IPLocationServiceIP2Location:
		return "IP2LOCATION"
	case IPLocationServiceNeustar:
		return "NEUSTAR"
	case IPLocationServiceMaxMind:
		return "MAXMIND"
	case IPLocationServiceNetAcuity:
		return "NETACUITY"
	}
	return ""
}

// UnmarshalJSON implements json.Unmarshaler, rejecting values outside the
// published vocabulary.
func (t *IPLocationService) UnmarshalJSON(data []byte) error {
	v, err := parseEnumInt8(data, "ip location service")
	if err != nil {
		return err
	}
	if s := IPLocationService(v); s.Name() != "" {
		*t = s
		return nil
	}
	return fmt.Errorf("openrtb2: unknown ip location service %d", v)
}
