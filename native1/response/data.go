package response

import (
	"encoding/json"

	"github.com/adscope/openrtb/native1"
)

// Data corresponds to the Data object in the request, with the value filled
// in. It is used for all miscellaneous elements of the native unit such as
// brand name, ratings, review counts, stars, and downloads.
type Data struct {
	// Type is the type of data element being submitted. Required for
	// assetsurl or dcourl responses.
	Type *native1.DataAssetType `json:"type,omitempty"`

	// Len is the length of the data element being submitted. Where
	// applicable, it must comply with the recommended maximum lengths in
	// native1.DataAssetType. Required for assetsurl or dcourl responses.
	Len *int64 `json:"len,omitempty"`

	// Label is the optional formatted string name of the data type to be
	// displayed.
	//
	// Deprecated: removed in Native 1.2+, no replacement.
	Label string `json:"label,omitempty"`

	// Value is the formatted string of data to be displayed, such as
	// "5 stars", "$10", or "3.4 stars out of 5". Required by the Native
	// specification.
	Value string `json:"value"`

	// Ext is a placeholder for bidder-specific extensions.
	Ext json.RawMessage `json:"ext,omitempty"`
}
