package openrtb2

import "encoding/json"

// Metric is associated with an impression as an array of metrics. These
// metrics can offer insight into the impression to assist with decisioning
// such as average recent viewability, click-through rate, etc. Each metric is
// identified by its type, reports the value of the metric, and optionally
// identifies the source or vendor measuring the value.
type Metric struct {
	// Type of metric being presented using exchange curated string names
	// which should be published to bidders a priori. Required by the
	// OpenRTB specification.
	Type string `json:"type"`

	// Value is a number representing the value of the metric.
	// Probabilities must be in the range 0.0 - 1.0. Required by the OpenRTB
	// specification.
	Value float64 `json:"value"`

	// Vendor is the source of the value using exchange curated string names
	// which should be published to bidders a priori. If the exchange itself
	// is the source versus a third party, "EXCHANGE" is recommended.
	Vendor string `json:"vendor,omitempty"`

	// Ext is a placeholder for exchange-specific extensions to OpenRTB.
	Ext json.RawMessage `json:"ext,omitempty"`
}
