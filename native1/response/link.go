package response

import "encoding/json"

// Link is used for "call to action" assets or other links from the native
// ad. It should be associated to its peer object in the parent Asset object
// or as the primary link in the top-level Response object. When that peer
// object is activated (clicked), the action should take the user to the
// location of the link.
type Link struct {
	// URL is the landing URL of the clickable link. Required by the Native
	// specification.
	URL string `json:"url"`

	// ClickTrackers is the list of third-party tracker URLs to be fired on
	// click of the URL.
	ClickTrackers []string `json:"clicktrackers,omitempty"`

	// Fallback is the fallback URL for deeplinks, to be used if the URL
	// given in URL is not supported by the device.
	Fallback string `json:"fallback,omitempty"`

	// Ext is a placeholder for bidder-specific extensions.
	Ext json.RawMessage `json:"ext,omitempty"`
}
