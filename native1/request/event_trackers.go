package request

import (
	"encoding/json"

	"github.com/adscope/openrtb/native1"
)

// EventTrackers specifies the type of events the bidder can request to be
// tracked in the bid response, and which types of tracking are available for
// each event type. It is included as an array in the request.
type EventTrackers struct {
	// Event is the type of event available for tracking. Required by the
	// Native specification.
	Event native1.EventType `json:"event"`

	// Methods is the array of types of tracking available for the given
	// event. Required by the Native specification.
	Methods []native1.EventTrackingMethod `json:"methods"`

	// Ext is a placeholder for exchange-specific extensions.
	Ext json.RawMessage `json:"ext,omitempty"`
}
