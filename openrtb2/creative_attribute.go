package openrtb2

import "fmt"

// CreativeAttribute specifies a standard list of creative attributes that can
// describe an ad being served or serve as restrictions thereof.
type CreativeAttribute int8

const (
	CreativeAttributeAudioAutoPlay               CreativeAttribute = 1  // Audio Ad (Auto-Play)
	CreativeAttributeAudioUserInitiated          CreativeAttribute = 2  // Audio Ad (User Initiated)
	CreativeAttributeExpandableAutomatic         CreativeAttribute = 3  // Expandable (Automatic)
	CreativeAttributeExpandableClickInitiated    CreativeAttribute = 4  // Expandable (User Initiated - Click)
	CreativeAttributeExpandableRolloverInitiated CreativeAttribute = 5  // Expandable (User Initiated - Rollover)
	CreativeAttributeVideoInBannerAutoPlay       CreativeAttribute = 6  // In-Banner Video Ad (Auto-Play)
	CreativeAttributeVideoInBannerUserInitiated  CreativeAttribute = 7  // In-Banner Video Ad (User Initiated)
	CreativeAttributePop                         CreativeAttribute = 8  // Pop (e.g., Over, Under, or upon Exit)
	CreativeAttributeProvocativeOrSuggestive     CreativeAttribute = 9  // Provocative or Suggestive Imagery
	CreativeAttributeAnnoying                    CreativeAttribute = 10 // Shaky, Flashing, Flickering, Extreme Animation, Smileys
	CreativeAttributeSurveys                     CreativeAttribute = 11 // Surveys
	CreativeAttributeTextOnly                    CreativeAttribute = 12 // Text Only
	CreativeAttributeUserInteractive             CreativeAttribute = 13 // User Interactive (e.g., Embedded Games)
	CreativeAttributeWindowsDialogOrAlertStyle   CreativeAttribute = 14 // Windows Dialog or Alert Style
	CreativeAttributeHasAudioOnOffButton         CreativeAttribute = 15 // Has Audio On/Off Button
	CreativeAttributeAdCanBeSkipped              CreativeAttribute = 16 // Ad Provides Skip Button
	CreativeAttributeFlash                       CreativeAttribute = 17 // Adobe Flash
)

// Name returns the canonical name of the creative attribute, or "" if t is
// not a defined value.
func (t CreativeAttribute) Name() string {
	switch t {
	case CreativeAttributeAudioAutoPlay:
		return "AUDIO_AUTO_PLAY"
	case CreativeAttributeAudioUserInitiated:
		return "AUDIO_USER_INITIATED"
	case CreativeAttributeExpandableAutomatic:
		return "EXPANDABLE_AUTOMATIC"
	case CreativeAttributeExpandableClickInitiated:
		return "EXPANDABLE_CLICK_INITIATED"
	case CreativeAttributeExpandableRolloverInitiated:
		return "EXPANDABLE_ROLLOVER_INITIATED"
	case CreativeAttributeVideoInBannerAutoPlay:
		return "VIDEO_IN_BANNER_AUTO_PLAY"
	case CreativeAttributeVideoInBannerUserInitiated:
		return "VIDEO_IN_BANNER_USER_INITIATED"
	case CreativeAttributePop:
		return "POP"
	case CreativeAttributeProvocativeOrSuggestive:
		return "PROVOCATIVE_OR_SUGGESTIVE"
	case CreativeAttributeAnnoying:
		return "ANNOYING"
	case CreativeAttributeSurveys:
		return "SURVEYS"
	case CreativeAttributeTextOnly:
		return "TEXT_ONLY"
	case CreativeAttributeUserInteractive:
		return "USER_INTERACTIVE"
	case CreativeAttributeWindowsDialogOrAlertStyle:
		return "WINDOWS_DIALOG_OR_ALERT_STYLE"
	case CreativeAttributeHasAudioOnOffButton:
		return "HAS_AUDIO_ON_OFF_BUTTON"
	case CreativeAttributeAdCanBeSkipped:
		return "AD_CAN_BE_SKIPPED"
	case CreativeAttributeFlash:
		return "FLASH"
	}
	return ""
}

// UnmarshalJSON implements json.Unmarshaler, rejecting values outside the
// published vocabulary.
func (t *CreativeAttribute) UnmarshalJSON(data []byte) error {
	v, err := parseEnumInt8(data, "creative attribute")
	if err != nil {
		return err
	}
	if c := CreativeAttribute(v); c.Name() != "" {
		*t = c
		return nil
	}
	return fmt.Errorf("openrtb2: unknown creative attribute %d", v)
}
