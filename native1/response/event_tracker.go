package response

import (
	"encoding/json"

	"github.com/adscope/openrtb/native1"
)

// EventTracker specifies an event the bidder wishes to track and the
// URL/information to track it with. A bidder must only respond with methods
// indicated as available in the request. Note that most javascript trackers
// expect to be loaded at impression time, so it is not generally recommended
// to respond with javascript trackers on other events.
type EventTracker struct {
	// Event is the type of event to track. Required when an embedded asset
	// is being used.
	Event native1.EventType `json:"event,omitempty"`

	// Method is the type of tracking requested. Required when an embedded
	// asset is being used.
	Method native1.EventTrackingMethod `json:"method"`

	// URL of the image or js. Required for image or js trackers, optional
	// for custom trackers.
	URL string `json:"url,omitempty"`

	// Ext is a placeholder for bidder-specific extensions.
	Ext json.RawMessage `json:"ext,omitempty"`
}
