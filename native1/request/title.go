package request

import "encoding/json"

// Title is used for the title element of the native ad.
type Title struct {
	// Len is the maximum length of the text in the title element.
	// Recommended to be 25, 90, or 140. Required by the Native
	// specification.
	Len int64 `json:"len"`

	// Ext is a placeholder for exchange-specific extensions.
	Ext json.RawMessage `json:"ext,omitempty"`
}
