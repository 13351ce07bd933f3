package openrtb2

import "fmt"

// FeedType lists the types of feeds, typically for audio.
type FeedType int8

const (
	FeedTypeMusicService FeedType = 1 // Music Service
	FeedTypeBroadcast    FeedType = 2 // FM/AM Broadcast
	FeedTypePodcast      FeedType = 3 // Podcast
)

// Name returns the canonical name of the feed type, or "" if t is not a
// defined value.
func (t FeedType) Name() string {
	switch t {
	case FeedTypeMusicService:
		return "MUSIC_SERVICE"
	case FeedTypeBroadcast:
		return "BROADCAST"
	case FeedTypePodcast:
		return "PODCAST"
	}
	return ""
}

// UnmarshalJSON implements json.Unmarshaler, rejecting values outside the
// published vocabulary.
func (t *FeedType) UnmarshalJSON(data []byte) error {
	v, err := parseEnumInt8(data, "feed type")
	if err != nil {
		return err
	}
	if f := FeedType(v); f.Name() != "" {
		*t = f
		return nil
	}
	return fmt.Errorf("openrtb2: unknown feed type %d", v)
}
