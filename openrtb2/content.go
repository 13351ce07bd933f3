package openrtb2

import (
	"encoding/json"

	"github.com/adscope/openrtb"
)

// Content describes the content in which the impression will appear, which
// may be syndicated or non-syndicated content. This object may be useful
// when syndicated content contains impressions and does not necessarily
// match the publisher's general content. The exchange might or might not
// have knowledge of the page where the content is running as a result of the
// syndication method. For example, it might be a video impression embedded
// in an iframe on an unknown web property or device.
type Content struct {
	// ID uniquely identifies the content.
	ID string `json:"id,omitempty"`

	// Episode is the content episode number (typically applies to video
	// content).
	Episode *int64 `json:"episode,omitempty"`

	// Title is the content title. Video examples: "Search Committee"
	// (television), "A New Hope" (movie), or "Endgame" (made for web).
	// Non-video example: "Why an Antarctic Glacier Is Melting So Quickly"
	// (Time magazine article).
	Title string `json:"title,omitempty"`

	// Series is the content series. Video examples: "The Office"
	// (television), "Star Wars" (movie), or "Arby 'N' The Chief" (made for
	// web). Non-video example: "Ecocentric" (Time Magazine blog).
	Series string `json:"series,omitempty"`

	// Season is the content season (e.g., "Season 3"); typically for video
	// content.
	Season string `json:"season,omitempty"`

	// Artist is the artist credited with the content.
	Artist string `json:"artist,omitempty"`

	// Genre is the genre that best describes the content (e.g., rock, pop,
	// etc).
	Genre string `json:"genre,omitempty"`

	// Album is the album to which the content belongs; typically for audio.
	Album string `json:"album,omitempty"`

	// ISRC is the International Standard Recording Code conforming to
	// ISO-3901.
	ISRC string `json:"isrc,omitempty"`

	// Producer holds details about the content producer.
	Producer *Producer `json:"producer,omitempty"`

	// URL of the content, for buy-side contextualization or review.
	URL string `json:"url,omitempty"`

	// Cat is the array of IAB content categories that describe the content.
	Cat []ContentCategory `json:"cat,omitempty"`

	// ProdQ is the production quality.
	ProdQ *ProductionQuality `json:"prodq,omitempty"`

	// VideoQuality is the video quality per IAB's classification.
	//
	// Deprecated: deprecated in OpenRTB 2.4+, prefer the ProdQ field.
	VideoQuality *ProductionQuality `json:"videoquality,omitempty"`

	// Context is the type of content (game, video, text, etc.).
	Context *ContentContext `json:"context,omitempty"`

	// ContentRating is the content rating (e.g., MPAA).
	ContentRating string `json:"contentrating,omitempty"`

	// UserRating is the user rating of the content (e.g., number of stars,
	// likes, etc.).
	UserRating string `json:"userrating,omitempty"`

	// QAGMediaRating is the media rating per IQG guidelines.
	QAGMediaRating *QAGMediaRating `json:"qagmediarating,omitempty"`

	// Keywords is a comma separated list of keywords describing the
	// content.
	Keywords string `json:"keywords,omitempty"`

	// LiveStream indicates whether the content is live, where 0 = not
	// live, 1 = content is live (e.g., stream, live blog).
	LiveStream *openrtb.IntBool `json:"livestream,omitempty"`

	// SourceRelationship, where 0 = indirect, 1 = direct.
	SourceRelationship *openrtb.IntBool `json:"sourcerelationship,omitempty"`

	// Len is the length of content in seconds; appropriate for video or
	// audio.
	Len *int64 `json:"len,omitempty"`

	// Language is the content language using ISO-639-1-alpha-2.
	Language string `json:"language,omitempty"`

	// Embeddable indicates whether the content is embeddable (e.g., an
	// embeddable video player), where 0 = no, 1 = yes.
	Embeddable *openrtb.IntBool `json:"embeddable,omitempty"`

	// Data holds additional content data. Each Data object represents a
	// different data source.
	Data []Data `json:"data,omitempty"`

	// Ext is a placeholder for exchange-specific extensions to OpenRTB.
	Ext json.RawMessage `json:"ext,omitempty"`
}
