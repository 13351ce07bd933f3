package native1

import "fmt"

// EventTrackingMethod describes a method of tracking an ad delivery event.
type EventTrackingMethod int8

const (
	// EventTrackingMethodImage: image-pixel tracking; the URL provided will
	// be inserted as a 1x1 pixel at the time of the event.
	EventTrackingMethodImage EventTrackingMethod = 1
	// EventTrackingMethodJS: javascript-based tracking; the URL provided
	// will be inserted as a js tag at the time of the event.
	EventTrackingMethodJS EventTrackingMethod = 2
)

// Name returns the canonical name of the tracking method, or "" if t is not
// a defined value. Exchange-specific values above 500 have no name.
func (t EventTrackingMethod) Name() string {
	switch t {
	case EventTrackingMethodImage:
		return "IMG"
	case EventTrackingMethodJS:
		return "JS"
	}
	return ""
}

// UnmarshalJSON implements json.Unmarshaler, rejecting values outside the
// published vocabulary.
func (t *EventTrackingMethod) UnmarshalJSON(data []byte) error {
	v, err := parseEnumInt8(data, "event tracking method")
	if err != nil {
		return err
	}
	if m := EventTrackingMethod(v); m.Name() != "" {
		*t = m
		return nil
	}
	return fmt.Errorf("native1: unknown event tracking method %d", v)
}
