package openrtb2

import "fmt"

// PlaybackMethod lists the ways in which playback of an audio or video
// creative can be initiated.
type PlaybackMethod int8

const (
	PlaybackMethodAutoPlaySoundOn  PlaybackMethod = 1 // Initiates on Page Load with Sound On
	PlaybackMethodAutoPlaySoundOff PlaybackMethod = 2 // Initiates on Page Load with Sound Off by Default
	PlaybackMethodClickToPlay      PlaybackMethod = 3 // Initiates on Click with Sound On
	PlaybackMethodMouseOver        PlaybackMethod = 4 // Initiates on Mouse-Over with Sound On
	PlaybackMethodEnterSoundOn     PlaybackMethod = 5 // Initiates on Entering Viewport with Sound On
	PlaybackMethodEnterSoundOff    PlaybackMethod = 6 // Initiates on Entering Viewport with Sound Off by Default
)

// Name returns the canonical name of the playback method, or "" if t is not
// a defined value.
func (t PlaybackMethod) Name() string {
	switch t {
	case PlaybackMethodAutoPlaySoundOn:
		return "AUTO_PLAY_SOUND_ON"
	case PlaybackMethodAutoPlaySoundOff:
		return "AUTO_PLAY_SOUND_OFF"
	case PlaybackMethodClickToPlay:
		return "CLICK_TO_PLAY"
	case PlaybackMethodMouseOver:
		return "MOUSE_OVER"
	case PlaybackMethodEnterSoundOn:
		return "ENTER_SOUND_ON"
	case PlaybackMethodEnterSoundOff:
		return "ENTER_SOUND_OFF"
	}
	return ""
}

// UnmarshalJSON implements json.Unmarshaler, rejecting values outside the
// published vocabulary.
func (t *PlaybackMethod) UnmarshalJSON(data []byte) error {
	v, err := parseEnumInt8(data, "playback method")
	if err != nil {
		return err
	}
	if p := PlaybackMethod(v); p.Name() != "" {
		*t = p
		return nil
	}
	return fmt.Errorf("openrtb2: unknown playback method %d", v)
}
