package openrtb2

import "fmt"

// ExpandableDirection is a direction in which an expandable ad may expand,
// given the positioning of the ad unit on the page and constraints imposed
// by the content.
type ExpandableDirection int8

const (
	ExpandableDirectionLeft       ExpandableDirection = 1 // Left
	ExpandableDirectionRight      ExpandableDirection = 2 // Right
	ExpandableDirectionUp         ExpandableDirection = 3 // Up
	ExpandableDirectionDown       ExpandableDirection = 4 // Down
	ExpandableDirectionFullscreen ExpandableDirection = 5 // Full Screen
)

// Name returns the canonical name of the direction, or "" if t is not a
// defined value.
func (t ExpandableDirection) Name() string {
	switch t {
	case ExpandableDirectionLeft:
		return "LEFT"
	case ExpandableDirectionRight:
		return "RIGHT"
	case ExpandableDirectionUp:
		return "UP"
	case ExpandableDirectionDown:
		return "DOWN"
	case ExpandableDirectionFullscreen:
		return "EXPANDABLE_FULLSCREEN"
	}
	return ""
}

// UnmarshalJSON implements json.Unmarshaler, rejecting values outside the
// published vocabulary.
func (t *ExpandableDirection) UnmarshalJSON(data []byte) error {
	v, err := parseEnumInt8(data, "expandable direction")
	if err != nil {
		return err
	}
	if d := ExpandableDirection(v); d.Name() != "" {
		*t = d
		return nil
	}
	return fmt.Errorf("openrtb2: unknown expandable direction %d", v)
}
