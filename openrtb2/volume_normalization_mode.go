package openrtb2

import "fmt"

// VolumeNormalizationMode lists the types of volume normalization modes,
// typically for audio.
type VolumeNormalizationMode int8

const (
	VolumeNormalizationModeNone          VolumeNormalizationMode = 0 // None
	VolumeNormalizationModeAverageVolume VolumeNormalizationMode = 1 // Ad Volume Average Normalized to Content
	VolumeNormalizationModePeakVolume    VolumeNormalizationMode = 2 // Ad Volume Peak Normalized to Content
	VolumeNormalizationModeLoudness      VolumeNormalizationMode = 3 // Ad Loudness Normalized to Content
	VolumeNormalizationModeCustomVolume  VolumeNormalizationMode = 4 // Custom Volume Normalization
)

// Name returns the canonical name of the normalization mode, or "" if t is
// not a defined value.
func (t VolumeNormalizationMode) Name() string {
	switch t {
	case VolumeNormalizationModeNone:
		return "NONE"
	case VolumeNormalizationModeAverageVolume:
		return "AVERAGE_VOLUME"
	case VolumeNormalizationModePeakVolume:
		return "PEAK_VOLUME"
	case VolumeNormalizationModeLoudness:
		return "LOUDNESS"
	case VolumeNormalizationModeCustomVolume:
		return "CUSTOM_VOLUME"
	}
	return ""
}

// UnmarshalJSON implements json.Unmarshaler, rejecting values outside the
// published vocabulary.
func (t *VolumeNormalizationMode) UnmarshalJSON(data []byte) error {
	v, err := parseEnumInt8(data, "volume normalization mode")
	if err != nil {
		return err
	}
	if m := VolumeNormalizationMode(v); m.Name() != "" {
		*t = m
		return nil
	}
	return fmt.Errorf("openrtb2: unknown volume normalization mode %d", v)
}
