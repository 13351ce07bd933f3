package openrtb2

import "encoding/json"

// Data and Segment objects together allow additional data about the related
// object (e.g., user, content) to be specified. This data may be from
// multiple sources whether from the exchange itself or third parties as
// specified by the ID field. A bid request can mix Data objects from
// multiple providers. The specific data providers in use should be published
// by the exchange a priori to its bidders.
type Data struct {
	// ID is the exchange-specific ID for the data provider.
	ID string `json:"id,omitempty"`

	// Name is the exchange-specific name for the data provider.
	Name string `json:"name,omitempty"`

	// Segment is the array of Segment objects that contain the actual data
	// values.
	Segment []Segment `json:"segment,omitempty"`

	// Ext is a placeholder for exchange-specific extensions to OpenRTB.
	Ext json.RawMessage `json:"ext,omitempty"`
}
