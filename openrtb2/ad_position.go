package openrtb2

import "fmt"

// AdPosition describes the position of the ad as a relative measure of
// visibility or prominence. The table is derived from the IAB Quality
// Assurance Guidelines (QAG).
type AdPosition int8

const (
	AdPositionUnknown      AdPosition = 0 // Unknown
	AdPositionAboveTheFold AdPosition = 1 // Above the Fold
	// AdPositionLikelyBelowTheFold is DEPRECATED in OpenRTB 2.1+ with no
	// replacement: may or may not be initially visible depending on screen
	// size and resolution.
	AdPositionLikelyBelowTheFold AdPosition = 2
	AdPositionBelowTheFold       AdPosition = 3 // Below the Fold
	AdPositionHeader             AdPosition = 4 // Header
	AdPositionFooter             AdPosition = 5 // Footer
	AdPositionSidebar            AdPosition = 6 // Sidebar
	AdPositionFullscreen         AdPosition = 7 // Full Screen
)

// Name returns the canonical name of the ad position, or "" if t is not a
// defined value.
func (t AdPosition) Name() string {
	switch t {
	case AdPositionUnknown:
		return "UNKNOWN"
	case AdPositionAboveTheFold:
		return "ABOVE_THE_FOLD"
	case AdPositionLikelyBelowTheFold:
		return "LIKELY_BELOW_THE_FOLD"
	case AdPositionBelowTheFold:
		return "BELOW_THE_FOLD"
	case AdPositionHeader:
		return "HEADER"
	case AdPositionFooter:
		return "FOOTER"
	case AdPositionSidebar:
		return "SIDEBAR"
	case AdPositionFullscreen:
		return "AD_POSITION_FULLSCREEN"
	}
	return ""
}

// UnmarshalJSON implements json.Unmarshaler, rejecting values outside the
// published vocabulary.
func (t *AdPosition) UnmarshalJSON(data []byte) error {
	v, err := parseEnumInt8(data, "ad position")
	if err != nil {
		return err
	}
	if a := AdPosition(v); a.Name() != "" {
		*t = a
		return nil
	}
	return fmt.Errorf("openrtb2: unknown ad position %d", v)
}
