package openrtb2

import "encoding/json"

// Geo encapsulates various methods for specifying a geographic location.
// When subordinate to a Device object, it indicates the location of the
// device which can also be interpreted as the user's current location. When
// subordinate to a User object, it indicates the location of the user's home
// base (i.e., not necessarily their current location).
//
// The Lat/Lon attributes should only be passed if they conform to the
// accuracy depicted in the Type attribute. For example, the centroid of a
// geographic region such as postal code should not be passed.
type Geo struct {
	// Lat is the latitude from -90.0 to +90.0, where negative is south.
	Lat *float64 `json:"lat,omitempty"`

	// Lon is the longitude from -180.0 to +180.0, where negative is west.
	Lon *float64 `json:"lon,omitempty"`

	// Type is the source of location data; recommended when passing
	// Lat/Lon.
	Type *LocationType `json:"type,omitempty"`

	// Accuracy is the estimated location accuracy in meters; recommended
	// when Lat/Lon are specified and derived from a device's location
	// services (i.e., type = 1). Note that this is the accuracy as reported
	// from the device. Consult OS specific documentation (e.g., Android,
	// iOS) for exact interpretation.
	Accuracy *int64 `json:"accuracy,omitempty"`

	// LastFix is the number of seconds since this geolocation fix was
	// established. Note that devices may cache location data across
	// multiple fetches. Ideally, this value should be from the time the
	// actual fix was taken.
	LastFix *int64 `json:"lastfix,omitempty"`

	// IPService is the service or provider used to determine geolocation
	// from the IP address if applicable (i.e., type = 2).
	IPService *IPLocationService `json:"ipservice,omitempty"`

	// Country using ISO-3166-1 Alpha-3.
	Country string `json:"country,omitempty"`

	// Region code using ISO-3166-2; 2-letter state code if USA.
	Region string `json:"region,omitempty"`

	// RegionFIPS104 is the region of a country using FIPS 10-4 notation.
	// While OpenRTB supports this attribute, it was withdrawn by NIST in
	// 2008.
	RegionFIPS104 string `json:"regionfips104,omitempty"`

	// Metro is the Google metro code; similar to but not exactly Nielsen
	// DMAs.
	Metro string `json:"metro,omitempty"`

	// City using United Nations Code for Trade & Transport Locations.
	City string `json:"city,omitempty"`

	// ZIP or postal code.
	ZIP string `json:"zip,omitempty"`

	// UTCOffset is the local time as the number +/- of minutes from UTC.
	UTCOffset *int64 `json:"utcoffset,omitempty"`

	// Ext is a placeholder for exchange-specific extensions to OpenRTB.
	Ext json.RawMessage `json:"ext,omitempty"`
}
