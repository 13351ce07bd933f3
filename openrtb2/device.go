package openrtb2

import (
	"encoding/json"

	"github.com/adscope/openrtb"
)

// Device provides information pertaining to the device through which the
// user is interacting. Device information includes its hardware, platform,
// location, and carrier data. The device can refer to a mobile handset, a
// desktop computer, set top box, or other digital device.
type Device struct {
	// UA is the browser user agent string. Recommended by the OpenRTB
	// specification.
	UA string `json:"ua,omitempty"`

	// Geo is the location of the device assumed to be the user's current
	// location. Recommended by the OpenRTB specification.
	Geo *Geo `json:"geo,omitempty"`

	// DNT is the standard "Do Not Track" flag as set in the header by the
	// browser, where 0 = tracking is unrestricted, 1 = do not track.
	// Recommended by the OpenRTB specification.
	DNT *openrtb.IntBool `json:"dnt,omitempty"`

	// Lmt is the "Limit Ad Tracking" signal commercially endorsed (e.g.,
	// iOS, Android), where 0 = tracking is unrestricted, 1 = tracking must
	// be limited per commercial guidelines. Recommended by the OpenRTB
	// specification.
	Lmt *openrtb.IntBool `json:"lmt,omitempty"`

	// IP is the IPv4 address closest to the device. Recommended by the
	// OpenRTB specification.
	IP string `json:"ip,omitempty"`

	// IPv6 is the IP address closest to the device as IPv6.
	IPv6 string `json:"ipv6,omitempty"`

	// DeviceType is the general type of device.
	DeviceType *DeviceType `json:"devicetype,omitempty"`

	// Make is the device make (e.g., "Apple").
	Make string `json:"make,omitempty"`

	// Model is the device model (e.g., "iPhone").
	Model string `json:"model,omitempty"`

	// OS is the device operating system (e.g., "iOS").
	OS string `json:"os,omitempty"`

	// OSV is the device operating system version (e.g., "3.1.2").
	OSV string `json:"osv,omitempty"`

	// HWV is the hardware version of the device (e.g., "5S" for iPhone 5S).
	HWV string `json:"hwv,omitempty"`

	// H is the physical height of the screen in pixels.
	H *int64 `json:"h,omitempty"`

	// W is the physical width of the screen in pixels.
	W *int64 `json:"w,omitempty"`

	// PPI is the screen size as pixels per linear inch.
	PPI *int64 `json:"ppi,omitempty"`

	// PxRatio is the ratio of physical pixels to device independent pixels.
	PxRatio *float64 `json:"pxratio,omitempty"`

	// JS indicates support for JavaScript, where 0 = no, 1 = yes.
	JS *openrtb.IntBool `json:"js,omitempty"`

	// GeoFetch indicates if the geolocation API will be available to
	// JavaScript code running in the banner, where 0 = no, 1 = yes.
	GeoFetch *openrtb.IntBool `json:"geofetch,omitempty"`

	// FlashVer is the version of Flash supported by the browser.
	FlashVer string `json:"flashver,omitempty"`

	// Language is the browser language using ISO-639-1-alpha-2.
	Language string `json:"language,omitempty"`

	// Carrier is the carrier or ISP (e.g., "VERIZON") using exchange
	// curated string names which should be published to bidders a priori.
	Carrier string `json:"carrier,omitempty"`

	// MCCMNC is the mobile carrier as the concatenated MCC-MNC code (e.g.,
	// "310-005" identifies Verizon Wireless CDMA in the USA). Note that the
	// dash between the MCC and MNC parts is required to remove parsing
	// ambiguity.
	MCCMNC string `json:"mccmnc,omitempty"`

	// ConnectionType is the network connection type.
	ConnectionType *ConnectionType `json:"connectiontype,omitempty"`

	// IFA is the ID sanctioned for advertiser use in the clear (i.e., not
	// hashed).
	IFA string `json:"ifa,omitempty"`

	// DIDSHA1 is the hardware device ID (e.g., IMEI); hashed via SHA1.
	DIDSHA1 string `json:"didsha1,omitempty"`

	// DIDMD5 is the hardware device ID (e.g., IMEI); hashed via MD5.
	DIDMD5 string `json:"didmd5,omitempty"`

	// DPIDSHA1 is the platform device ID (e.g., Android ID); hashed via
	// SHA1.
	DPIDSHA1 string `json:"dpidsha1,omitempty"`

	// DPIDMD5 is the platform device ID (e.g., Android ID); hashed via MD5.
	DPIDMD5 string `json:"dpidmd5,omitempty"`

	// MACSHA1 is the MAC address of the device; hashed via SHA1.
	MACSHA1 string `json:"macsha1,omitempty"`

	// MACMD5 is the MAC address of the device; hashed via MD5.
	MACMD5 string `json:"macmd5,omitempty"`

	// Ext is a placeholder for exchange-specific extensions to OpenRTB.
	Ext json.RawMessage `json:"ext,omitempty"`
}
