package native1

import "fmt"

// EventType describes an ad delivery event available for tracking.
type EventType int8

const (
	// EventTypeImpression: impression.
	EventTypeImpression EventType = 1
	// EventTypeViewableMRC50: visible impression using the MRC definition at
	// 50% in view for 1 second.
	EventTypeViewableMRC50 EventType = 2
	// EventTypeViewableMRC100: 100% in view for 1 second (i.e. the GroupM
	// standard).
	EventTypeViewableMRC100 EventType = 3
	// EventTypeViewableVideo50: visible impression for video using the MRC
	// definition at 50% in view for 2 seconds.
	EventTypeViewableVideo50 EventType = 4
)

// Name returns the canonical name of the event type, or "" if t is not a
// defined value. Exchange-specific values above 500 have no name.
func (t EventType) Name() string {
	switch t {
	case EventTypeImpression:
		return "IMPRESSION"
	case EventTypeViewableMRC50:
		return "VIEWABLE_MRC_50"
	case EventTypeViewableMRC100:
		return "VIEWABLE_MRC_100"
	case EventTypeViewableVideo50:
		return "VIEWABLE_VIDEO_50"
	}
	return ""
}

// UnmarshalJSON implements json.Unmarshaler, rejecting values outside the
// published vocabulary.
func (t *EventType) UnmarshalJSON(data []byte) error {
	v, err := parseEnumInt8(data, "event type")
	if err != nil {
		return err
	}
	if e := EventType(v); e.Name() != "" {
		*t = e
		return nil
	}
	return fmt.Errorf("native1: unknown event type %d", v)
}
