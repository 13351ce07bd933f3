package openrtb2

import "fmt"

// CompanionType lists the markup types allowed for companion ads that
// accompany a video or audio ad.
type CompanionType int8

const (
	CompanionTypeStatic CompanionType = 1 // Static Resource
	CompanionTypeHTML   CompanionType = 2 // HTML Resource
	CompanionTypeIframe CompanionType = 3 // iframe Resource
)

// Name returns the canonical name of the companion type, or "" if t is not a
// defined value.
func (t CompanionType) Name() string {
	switch t {
	case CompanionTypeStatic:
		return "STATIC"
	case CompanionTypeHTML:
		return "HTML"
	case CompanionTypeIframe:
		return "COMPANION_IFRAME"
	}
	return ""
}

// UnmarshalJSON implements json.Unmarshaler, rejecting values outside the
// published vocabulary.
func (t *CompanionType) UnmarshalJSON(data []byte) error {
	v, err := parseEnumInt8(data, "companion type")
	if err != nil {
		return err
	}
	if c := CompanionType(v); c.Name() != "" {
		*t = c
		return nil
	}
	return fmt.Errorf("openrtb2: unknown companion type %d", v)
}
