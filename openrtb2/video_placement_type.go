package openrtb2

import "fmt"

// VideoPlacementType describes the placement of a video impression, derived
// largely from the IAB Digital Video Guidelines.
type VideoPlacementType int8

const (
	// VideoPlacementTypeUndefined means the video placement is not defined.
	VideoPlacementTypeUndefined VideoPlacementType = 0
	// VideoPlacementTypeInStream is played before, during or after the
	// streaming video content that the consumer has requested (pre-roll,
	// mid-roll, post-roll).
	VideoPlacementTypeInStream VideoPlacementType = 1
	// VideoPlacementTypeInBanner exists within a web banner that leverages
	// the banner space to deliver a video experience.
	VideoPlacementTypeInBanner VideoPlacementType = 2
	// VideoPlacementTypeInArticle loads and plays dynamically between
	// paragraphs of editorial content.
	VideoPlacementTypeInArticle VideoPlacementType = 3
	// VideoPlacementTypeInFeed is found in content, social, or product feeds.
	VideoPlacementTypeInFeed VideoPlacementType = 4
	// VideoPlacementTypeFloating covers the entire or a portion of screen
	// area but is always on screen while displayed (interstitial, slider,
	// floating). A full-screen interstitial can be distinguished from a
	// floating unit by Imp.Instl.
	VideoPlacementTypeFloating VideoPlacementType = 5
)

// Name returns the canonical name of the placement, or "" if t is not a
// defined value.
func (t VideoPlacementType) Name() string {
	switch t {
	case VideoPlacementTypeUndefined:
		return "UNDEFINED_VIDEO_PLACEMENT"
	case VideoPlacementTypeInStream:
		return "IN_STREAM_PLACEMENT"
	case VideoPlacementTypeInBanner:
		return "IN_BANNER_PLACEMENT"
	case VideoPlacementTypeInArticle:
		return "IN_ARTICLE_PLACEMENT"
	case VideoPlacementTypeInFeed:
		return "IN_FEED_PLACEMENT"
	case VideoPlacementTypeFloating:
		return "FLOATING_PLACEMENT"
	}
	return ""
}

// UnmarshalJSON implements json.Unmarshaler, rejecting values outside the
// published vocabulary.
func (t *VideoPlacementType) UnmarshalJSON(data []byte) error {
	v, err := parseEnumInt8(data, "video placement type")
	if err != nil {
		return err
	}
	if p := VideoPlacementType(v); p.Name() != "" {
		*t = p
		return nil
	}
	return fmt.Errorf("openrtb2: unknown video placement type %d", v)
}
