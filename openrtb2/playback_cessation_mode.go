package openrtb2

import "fmt"

// PlaybackCessationMode describes the event that causes playback of an audio
// or video creative to end.
type PlaybackCessationMode int8

const (
	// PlaybackCessationModeCompletionOrUser: on video completion or when
	// terminated by user.
	PlaybackCessationModeCompletionOrUser PlaybackCessationMode = 1
	// PlaybackCessationModeLeavingOrUser: on leaving viewport or when
	// terminated by user.
	PlaybackCessationModeLeavingOrUser PlaybackCessationMode = 2
	// PlaybackCessationModeLeavingContinuesOrUser: on leaving viewport,
	// continues as a floating/slider unit until video completion or when
	// terminated by user.
	PlaybackCessationModeLeavingContinuesOrUser PlaybackCessationMode = 3
)

// Name returns the canonical name of the cessation mode, or "" if t is not a
// defined value.
func (t PlaybackCessationMode) Name() string {
	switch t {
	case PlaybackCessationModeCompletionOrUser:
		return "COMPLETION_OR_USER"
	case PlaybackCessationModeLeavingOrUser:
		return "LEAVING_OR_USER"
	case PlaybackCessationModeLeavingContinuesOrUser:
		return "LEAVING_CONTINUES_OR_USER"
	}
	return ""
}

// UnmarshalJSON implements json.Unmarshaler, rejecting values outside the
// published vocabulary.
func (t *PlaybackCessationMode) UnmarshalJSON(data []byte) error {
	v, err := parseEnumInt8(data, "playback cessation mode")
	if err != nil {
		return err
	}
	if p := PlaybackCessationMode(v); p.Name() != "" {
		*t = p
		return nil
	}
	return fmt.Errorf("openrtb2: unknown playback cessation mode %d", v)
}
