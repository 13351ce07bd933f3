package openrtb2

import (
	"encoding/json"

	"github.com/adscope/openrtb"
)

// App should be included if the ad supported content is a non-browser
// application (typically in mobile) as opposed to a website. A bid request
// must not contain both an App and a Site object. At a minimum, it is useful
// to provide an App ID or bundle, but this is not strictly required.
type App struct {
	// ID is the exchange-specific app ID. Recommended by the OpenRTB
	// specification.
	ID string `json:"id,omitempty"`

	// Name is the app name (may be aliased at the publisher's request).
	// App names for SDK-less requests (mostly from connected TVs) can be
	// provided by the publisher directly in the request.
	Name string `json:"name,omitempty"`

	// Bundle is a platform-specific application identifier intended to be
	// unique to the app and independent of the exchange. On Android, this
	// should be a bundle or package name (e.g., com.foo.mygame). On iOS, it
	// is a numeric ID.
	Bundle string `json:"bundle,omitempty"`

	// Domain is the domain of the app (e.g., "mygame.foo.com").
	Domain string `json:"domain,omitempty"`

	// StoreURL is the app store URL for an installed app; for IQG 2.1
	// compliance.
	StoreURL string `json:"storeurl,omitempty"`

	// Cat is the array of IAB content categories of the app.
	Cat []ContentCategory `json:"cat,omitempty"`

	// SectionCat is the array of IAB content categories that describe the
	// current section of the app.
	SectionCat []ContentCategory `json:"sectioncat,omitempty"`

	// PageCat is the array of IAB content categories that describe the
	// current page or view of the app.
	PageCat []ContentCategory `json:"pagecat,omitempty"`

	// Ver is the application version.
	Ver string `json:"ver,omitempty"`

	// PrivacyPolicy indicates if the app has a privacy policy, where
	// 0 = no, 1 = yes.
	PrivacyPolicy *openrtb.IntBool `json:"privacypolicy,omitempty"`

	// Paid indicates whether the app is a paid version, where 0 = app is
	// free, 1 = the app is a paid version.
	Paid *openrtb.IntBool `json:"paid,omitempty"`

	// Publisher holds details about the publisher of the app.
	Publisher *Publisher `json:"publisher,omitempty"`

	// Content holds details about the content within the app.
	Content *Content `json:"content,omitempty"`

	// Keywords is a comma separated list of keywords about the app.
	Keywords string `json:"keywords,omitempty"`

	// Ext is a placeholder for exchange-specific extensions to OpenRTB.
	Ext json.RawMessage `json:"ext,omitempty"`
}
