package native1

import "fmt"

// PlacementType describes the format of the ad being purchased, separate
// from the surrounding context.
type PlacementType int8

const (
	// PlacementTypeFeed: in the feed of content, for example as an item
	// inside the organic feed/grid/listing/carousel.
	PlacementTypeFeed PlacementType = 1
	// PlacementTypeAtomicUnit: in the atomic unit of the content, i.e. in
	// the article page or single image page.
	PlacementTypeAtomicUnit PlacementType = 2
	// PlacementTypeOutsideCore: outside the core content, for example in the
	// ads section on the right rail or as a banner-style placement near the
	// content.
	PlacementTypeOutsideCore PlacementType = 3
	// PlacementTypeRecommendation: recommendation widget, most commonly
	// presented below the article content.
	PlacementTypeRecommendation PlacementType = 4
)

// Name returns the canonical name of the placement type, or "" if t is not a
// defined value.
func (t PlacementType) Name() string {
	switch t {
	case PlacementTypeFeed:
		return "IN_FEED"
	case PlacementTypeAtomicUnit:
		return "ATOMIC_UNIT"
	case PlacementTypeOutsideCore:
		return "OUTSIDE"
	case PlacementTypeRecommendation:
		return "RECOMMENDATION"
	}
	return ""
}

// UnmarshalJSON implements json.Unmarshaler, rejecting values outside the
// published vocabulary.
func (t *PlacementType) UnmarshalJSON(data []byte) error {
	v, err := parseEnumInt8(data, "placement type")
	if err != nil {
		return err
	}
	if p := PlacementType(v); p.Name() != "" {
		*t = p
		return nil
	}
	return fmt.Errorf("native1: unknown placement type %d", v)
}
