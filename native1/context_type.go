package native1

import "fmt"

// ContextType describes the context in which the ad appears, i.e. what type
// of content is surrounding the ad on the page at a high level. This denotes
// the primary context but does not imply other content may not exist on the
// page; most content platforms have some social components, for example.
type ContextType int8

const (
	// ContextTypeContent: content-centric context such as newsfeed, article,
	// image gallery, video gallery, or similar.
	ContextTypeContent ContextType = 1
	// ContextTypeSocial: social-centric context such as social network feed,
	// email, chat, or similar.
	ContextTypeSocial ContextType = 2
	// ContextTypeProduct: product context such as product listings, details,
	// recommendations, reviews, or similar.
	ContextTypeProduct ContextType = 3
)

// Name returns the canonical name of the context type, or "" if t is not a
// defined value.
func (t ContextType) Name() string {
	switch t {
	case ContextTypeContent:
		return "CONTENT"
	case ContextTypeSocial:
		return "SOCIAL"
	case ContextTypeProduct:
		return "PRODUCT"
	}
	return ""
}

// UnmarshalJSON implements json.Unmarshaler, rejecting values outside the
// published vocabulary.
func (t *ContextType) UnmarshalJSON(data []byte) error {
	v, err := parseEnumInt8(data, "context type")
	if err != nil {
		return err
	}
	if c := ContextType(v); c.Name() != "" {
		*t = c
		return nil
	}
	return fmt.Errorf("native1: unknown context type %d", v)
}
