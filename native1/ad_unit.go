package native1

import "fmt"

// AdUnit describes the ad unit of the native ad.
//
// Deprecated: removed in OpenRTB Native 1.2+, use PlacementType together
// with ContextType/ContextSubType.
type AdUnit int8

const (
	// AdUnitPaidSearch: paid search units.
	AdUnitPaidSearch AdUnit = 1
	// AdUnitRecommendationWidget: recommendation widgets.
	AdUnitRecommendationWidget AdUnit = 2
	// AdUnitPromotedListing: promoted listings.
	AdUnitPromotedListing AdUnit = 3
	// AdUnitInAd: in-ad (IAB standard) with native element units.
	AdUnitInAd AdUnit = 4
	// AdUnitCustom: custom / "can't be contained" units.
	AdUnitCustom AdUnit = 5
)

// Name returns the canonical name of the ad unit, or "" if u is not a
// defined value. Exchange-specific values above 500 have no name.
func (u AdUnit) Name() string {
	switch u {
	case AdUnitPaidSearch:
		return "PAID_SEARCH_UNIT"
	case AdUnitRecommendationWidget:
		return "RECOMMENDATION_WIDGET"
	case AdUnitPromotedListing:
		return "PROMOTED_LISTING"
	case AdUnitInAd:
		return "IAB_IN_AD_NATIVE"
	case AdUnitCustom:
		return "ADUNITID_CUSTOM"
	}
	return ""
}

// UnmarshalJSON implements json.Unmarshaler, rejecting values outside the
// published vocabulary.
func (u *AdUnit) UnmarshalJSON(data []byte) error {
	v, err := parseEnumInt8(data, "ad unit")
	if err != nil {
		return err
	}
	if x := AdUnit(v); x.Name() != "" {
		*u = x
		return nil
	}
	return fmt.Errorf("native1: unknown ad unit %d", v)
}
