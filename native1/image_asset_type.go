package native1

import "fmt"

// ImageAssetType describes the common image asset element types of native
// advertising. This list is non-exhaustive and intended to be extended by
// buyers and sellers as the format evolves.
type ImageAssetType int8

const (
	// ImageAssetTypeIcon: icon image. Max height at least 50, aspect ratio
	// 1:1.
	ImageAssetTypeIcon ImageAssetType = 1
	// ImageAssetTypeLogo: logo image for the brand/app.
	//
	// Deprecated: removed in OpenRTB Native 1.2+, use ImageAssetTypeIcon.
	ImageAssetTypeLogo ImageAssetType = 2
	// ImageAssetTypeMain: large image preview for the ad. At least one of
	// two size variants is required: small (max height 200+, max width 200+,
	// 267, or 382) or large (max height 627+, max width 627+, 836, or 1198),
	// each with aspect ratio 1:1, 4:3, or 1.91:1.
	ImageAssetTypeMain ImageAssetType = 3
)

// Name returns the canonical name of the image asset type, or "" if t is not
// a defined value.
func (t ImageAssetType) Name() string {
	switch t {
	case ImageAssetTypeIcon:
		return "ICON"
	case ImageAssetTypeLogo:
		return "LOGO"
	case ImageAssetTypeMain:
		return "MAIN"
	}
	return ""
}

// UnmarshalJSON implements json.Unmarshaler, rejecting values outside the
// published vocabulary.
func (t *ImageAssetType) UnmarshalJSON(data []byte) error {
	v, err := parseEnumInt8(data, "image asset type")
	if err != nil {
		return err
	}
	if i := ImageAssetType(v); i.Name() != "" {
		*t = i
		return nil
	}
	return fmt.Errorf("native1: unknown image asset type %d", v)
}
