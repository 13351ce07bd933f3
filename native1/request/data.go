package request

import (
	"encoding/json"

	"github.com/adscope/openrtb/native1"
)

// Data is used for all non-core elements of the native unit such as ratings,
// review counts, stars, download counts, and descriptions. It is also
// generic for native elements not contemplated at the time of writing of the
// Native specification.
type Data struct {
	// Type is the type ID of the element supported by the publisher. The
	// publisher can display this information in an appropriate format.
	// Required by the Native specification.
	Type native1.DataAssetType `json:"type"`

	// Len is the maximum length of the text in the element's response.
	// Longer strings may be truncated and ellipsized by the exchange or the
	// publisher during rendering.
	Len *int64 `json:"len,omitempty"`

	// Ext is a placeholder for exchange-specific extensions.
	Ext json.RawMessage `json:"ext,omitempty"`
}
