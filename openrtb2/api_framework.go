package openrtb2

import "fmt"

// APIFramework is an API framework supported by the publisher for an
// impression, or required by the markup of a bid.
//
// Note that MRAID-1 is a subset of MRAID-2. In OpenRTB 2.1 and prior, value 3
// was "MRAID"; however, not all MRAID-capable APIs understand MRAID-2
// features, so the only safe interpretation of value 3 is MRAID-1.
type APIFramework int8

const (
	APIFrameworkVPAID10 APIFramework = 1 // VPAID 1.0
	APIFrameworkVPAID20 APIFramework = 2 // VPAID 2.0
	APIFrameworkMRAID1  APIFramework = 3 // MRAID-1
	APIFrameworkORMMA   APIFramework = 4 // ORMMA
	APIFrameworkMRAID2  APIFramework = 5 // MRAID-2
	APIFrameworkMRAID3  APIFramework = 6 // MRAID-3
	APIFrameworkOMID1   APIFramework = 7 // OMID-1
)

// Name returns the canonical name of the API framework, or "" if t is not a
// defined value.
func (t APIFramework) Name() string {
	switch t {
	case APIFrameworkVPAID10:
		return "VPAID_1"
	case APIFrameworkVPAID20:
		return "VPAID_2"
	case APIFrameworkMRAID1:
		return "MRAID_1"
	case APIFrameworkORMMA:
		return "ORMMA"
	case APIFrameworkMRAID2:
		return "MRAID_2"
	case APIFrameworkMRAID3:
		return "MRAID_3"
	case APIFrameworkOMID1:
		return "OMID_1"
	}
	return ""
}

// UnmarshalJSON implements json.Unmarshaler, rejecting values outside the
// published vocabulary.
func (t *APIFramework) UnmarshalJSON(data []byte) error {
	v, err := parseEnumInt8(data, "api framework")
	if err != nil {
		return err
	}
	if a := APIFramework(v); a.Name() != "" {
		*t = a
		return nil
	}
	return fmt.Errorf("openrtb2: unknown api framework %d", v)
}
