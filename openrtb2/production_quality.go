package openrtb2

import "fmt"

// ProductionQuality lists the options for content quality as defined by the
// IAB: http://www.iab.net/media/file/long-form-video-final.pdf
type ProductionQuality int8

const (
	ProductionQualityUnknown       ProductionQuality = 0 // Unknown
	ProductionQualityProfessional  ProductionQuality = 1 // Professionally Produced
	ProductionQualityProsumer      ProductionQuality = 2 // Prosumer
	ProductionQualityUserGenerated ProductionQuality = 3 // User Generated (UGC)
)

// Name returns the canonical name of the production quality, or "" if t is
// not a defined value.
func (t ProductionQuality) Name() string {
	switch t {
	case ProductionQualityUnknown:
		return "QUALITY_UNKNOWN"
	case ProductionQualityProfessional:
		return "PROFESSIONAL"
	case ProductionQualityProsumer:
		return "PROSUMER"
	case ProductionQualityUserGenerated:
		return "USER_GENERATED"
	}
	return ""
}

// UnmarshalJSON implements json.Unmarshaler, rejecting values outside the
// published vocabulary.
func (t *ProductionQuality) UnmarshalJSON(data []byte) error {
	v, err := parseEnumInt8(data, "production quality")
	if err != nil {
		return err
	}
	if q := ProductionQuality(v); q.Name() != "" {
		*t = q
		return nil
	}
	return fmt.Errorf("openrtb2: unknown production quality %d", v)
}
