package native1

import "fmt"

// ContextSubType is the next-level context in which the ad appears. It
// reflects the primary context and does not imply the absence of other
// elements: an article is likely to contain images but is still first and
// foremost an article. A subtype should only be combined with the matching
// primary ContextType (a subtype in the 1x range goes with context type 1).
type ContextSubType int8

const (
	// ContextSubTypeGeneral: general or mixed content.
	ContextSubTypeGeneral ContextSubType = 10
	// ContextSubTypeArticle: primarily article content, which could include
	// images, as in a news article.
	ContextSubTypeArticle ContextSubType = 11
	// ContextSubTypeVideo: primarily video content.
	ContextSubTypeVideo ContextSubType = 12
	// ContextSubTypeAudio: primarily audio content.
	ContextSubTypeAudio ContextSubType = 13
	// ContextSubTypeImage: primarily image content.
	ContextSubTypeImage ContextSubType = 14
	// ContextSubTypeUserGenerated: user-generated content such as forums,
	// comments, etc.
	ContextSubTypeUserGenerated ContextSubType = 15
	// ContextSubTypeSocial: general social content such as a general social
	// network.
	ContextSubTypeSocial ContextSubType = 20
	// ContextSubTypeEmail: primarily email content.
	ContextSubTypeEmail ContextSubType = 21
	// ContextSubTypeChat: primarily chat or IM content.
	ContextSubTypeChat ContextSubType = 22
	// ContextSubTypeSelling: content focused on selling products, whether
	// digital or physical.
	ContextSubTypeSelling ContextSubType = 30
	// ContextSubTypeAppStore: application store or marketplace.
	ContextSubTypeAppStore ContextSubType = 31
	// ContextSubTypeProductReview: product reviews site primarily, which may
	// sell product secondarily.
	ContextSubTypeProductReview ContextSubType = 32
)

// Name returns the canonical name of the context subtype, or "" if t is not
// a defined value.
func (t ContextSubType) Name() string {
	switch t {
	case ContextSubTypeGeneral:
		return "CONTENT_GENERAL_OR_MIXED"
	case ContextSubTypeArticle:
		return "CONTENT_ARTICLE"
	case ContextSubTypeVideo:
		return "CONTENT_VIDEO"
	case ContextSubTypeAudio:
		return "CONTENT_AUDIO"
	case ContextSubTypeImage:
		return "CONTENT_IMAGE"
	case ContextSubTypeUserGenerated:
		return "CONTENT_USER_GENERATED"
	case ContextSubTypeSocial:
		return "SOCIAL_GENERAL"
	case ContextSubTypeEmail:
		return "SOCIAL_EMAIL"
	case ContextSubTypeChat:
		return "SOCIAL_CHAT_IM"
	case ContextSubTypeSelling:
		return "PRODUCT_SELLING"
	case ContextSubTypeAppStore:
		return "PRODUCT_MARKETPLACE"
	case ContextSubTypeProductReview:
		return "PRODUCT_REVIEW"
	}
	return ""
}

// UnmarshalJSON implements json.Unmarshaler, rejecting values outside the
// published vocabulary.
func (t *ContextSubType) UnmarshalJSON(data []byte) error {
	v, err := parseEnumInt8(data, "context subtype")
	if err != nil {
		return err
	}
	if c := ContextSubType(v); c.Name() != "" {
		*t = c
		return nil
	}
	return fmt.Errorf("native1: unknown context subtype %d", v)
}
