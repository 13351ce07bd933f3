package openrtb2

import "encoding/json"

// User contains information known or derived about the human user of the
// device (i.e., the audience for advertising). The user ID is an exchange
// artifact and may be subject to rotation or other privacy policies.
// However, this user ID must be stable long enough to serve reasonably as
// the basis for frequency capping and retargeting.
type User struct {
	// ID is the exchange-specific ID for the user. At least one of ID or
	// BuyerUID is recommended.
	ID string `json:"id,omitempty"`

	// BuyerUID is the buyer-specific ID for the user as mapped by the
	// exchange for the buyer. At least one of BuyerUID or ID is
	// recommended.
	BuyerUID string `json:"buyeruid,omitempty"`

	// Yob is the year of birth as a 4-digit integer.
	Yob *int64 `json:"yob,omitempty"`

	// Gender, where "M" = male, "F" = female, "O" = known to be other
	// (i.e., omitted is unknown).
	Gender string `json:"gender,omitempty"`

	// Keywords is a comma separated list of keywords, interests, or intent.
	Keywords string `json:"keywords,omitempty"`

	// CustomData is an optional feature to pass bidder data that was set in
	// the exchange's cookie. The string must be in base85 cookie safe
	// characters and be in any format. Proper JSON encoding must be used to
	// include "escaped" quotation marks.
	CustomData string `json:"customdata,omitempty"`

	// Geo is the location of the user's home base (i.e., not necessarily
	// their current location).
	Geo *Geo `json:"geo,omitempty"`

	// Data holds additional user data. Each Data object represents a
	// different data source.
	Data []Data `json:"data,omitempty"`

	// Ext is a placeholder for exchange-specific extensions to OpenRTB.
	Ext json.RawMessage `json:"ext,omitempty"`
}
