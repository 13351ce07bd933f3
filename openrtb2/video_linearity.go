package openrtb2

import "fmt"

// VideoLinearity indicates whether an ad is linear (in-stream: the user must
// watch the ad to reach the content) or non-linear (an overlay shown on top
// of the content). When the attribute is absent from a request, ads of
// either type are acceptable.
type VideoLinearity int8

const (
	VideoLinearityLinear    VideoLinearity = 1 // Linear / In-Stream
	VideoLinearityNonLinear VideoLinearity = 2 // Non-Linear / Overlay
)

// Name returns the canonical name of the linearity, or "" if t is not a
// defined value.
func (t VideoLinearity) Name() string {
	switch t {
	case VideoLinearityLinear:
		return "LINEAR"
	case VideoLinearityNonLinear:
		return "NON_LINEAR"
	}
	return ""
}

// UnmarshalJSON implements json.Unmarshaler, rejecting values outside the
// published vocabulary.
func (t *VideoLinearity) UnmarshalJSON(data []byte) error {
	v, err := parseEnumInt8(data, "video linearity")
	if err != nil {
		return err
	}
	if l := VideoLinearity(v); l.Name() != "" {
		*t = l
		return nil
	}
	return fmt.Errorf("openrtb2: unknown video linearity %d", v)
}
