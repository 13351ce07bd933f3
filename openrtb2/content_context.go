package openrtb2

import "fmt"

// ContentContext indicates the type of content in which the impression will
// appear. The table is derived from the IAB Quality Assurance Guidelines
// (QAG).
type ContentContext int8

const (
	ContentContextVideo       ContentContext = 1 // Video (i.e., video file or stream such as Internet TV broadcasts)
	ContentContextGame        ContentContext = 2 // Game (i.e., an interactive software game)
	ContentContextMusic       ContentContext = 3 // Music (i.e., audio file or stream such as Internet radio broadcasts)
	ContentContextApplication ContentContext = 4 // Application (i.e., an interactive software application)
	ContentContextText        ContentContext = 5 // Text (i.e., primarily textual document such as a web page, eBook, or news article)
	ContentContextOther       ContentContext = 6 // Other (i.e., none of the other categories applies)
	ContentContextUnknown     ContentContext = 7 // Unknown
)

// Name returns the canonical name of the content context, or "" if t is not
// a defined value.
func (t ContentContext) Name() string {
	switch t {
	case ContentContextVideo:
		return "VIDEO"
	case ContentContextGame:
		return "GAME"
	case ContentContextMusic:
		return "MUSIC"
	case ContentContextApplication:
		return "APPLICATION"
	case ContentContextText:
		return "TEXT"
	case ContentContextOther:
		return "OTHER"
	case ContentContextUnknown:
		return "CONTEXT_UNKNOWN"
	}
	return ""
}

// UnmarshalJSON implements json.Unmarshaler, rejecting values outside the
// published vocabulary.
func (t *ContentContext) UnmarshalJSON(data []byte) error {
	v, err := parseEnumInt8(data, "content context")
	if err != nil {
		return err
	}
	if c := ContentContext(v); c.Name() != "" {
		*t = c
		return nil
	}
	return fmt.Errorf("openrtb2: unknown content context %d", v)
}
