package native1

import "fmt"

// Layout describes the layout of the native ad unit.
//
// Deprecated: removed in OpenRTB Native 1.2+, use PlacementType together
// with ContextType/ContextSubType.
type Layout int8

const (
	// LayoutContentWall: content wall.
	LayoutContentWall Layout = 1
	// LayoutAppWall: app wall.
	LayoutAppWall Layout = 2
	// LayoutNewsFeed: news feed.
	LayoutNewsFeed Layout = 3
	// LayoutChatList: chat list.
	LayoutChatList Layout = 4
	// LayoutCarousel: carousel.
	LayoutCarousel Layout = 5
	// LayoutContentStream: content stream.
	LayoutContentStream Layout = 6
	// LayoutGrid: grid adjoining the content.
	LayoutGrid Layout = 7
)

// Name returns the canonical name of the layout, or "" if l is not a defined
// value. Exchange-specific values above 500 have no name.
func (l Layout) Name() string {
	switch l {
	case LayoutContentWall:
		return "CONTENT_WALL"
	case LayoutAppWall:
		return "APP_WALL"
	case LayoutNewsFeed:
		return "NEWS_FEED"
	case LayoutChatList:
		return "CHAT_LIST"
	case LayoutCarousel:
		return "CAROUSEL"
	case LayoutContentStream:
		return "CONTENT_STREAM"
	case LayoutGrid:
		return "GRID"
	}
	return ""
}

// UnmarshalJSON implements json.Unmarshaler, rejecting values outside the
// published vocabulary.
func (l *Layout) UnmarshalJSON(data []byte) error {
	v, err := parseEnumInt8(data, "layout")
	if err != nil {
		return err
	}
	if x := Layout(v); x.Name() != "" {
		*l = x
		return nil
	}
	return fmt.Errorf("native1: unknown layout %d", v)
}
