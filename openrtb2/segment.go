package openrtb2

import "encoding/json"

// Segment objects are essentially key-value pairs that convey specific units
// of data. The parent Data object is a collection of such values from a
// given data provider. The specific segment names and value options must be
// published by the exchange a priori to its bidders.
type Segment struct {
	// ID of the data segment specific to the data provider.
	ID string `json:"id,omitempty"`

	// Name of the data segment specific to the data provider.
	Name string `json:"name,omitempty"`

	// Value is the string representation of the data segment value.
	Value string `json:"value,omitempty"`

	// Ext is a placeholder for exchange-specific extensions to OpenRTB.
	Ext json.RawMessage `json:"ext,omitempty"`
}
