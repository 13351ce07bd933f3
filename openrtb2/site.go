package openrtb2

import (
	"encoding/json"

	"github.com/adscope/openrtb"
)

// Site should be included if the ad supported content is a website as
// opposed to a non-browser application. A bid request must not contain both
// a Site and an App object. At a minimum, it is useful to provide a site ID
// or page URL, but this is not strictly required.
type Site struct {
	// ID is the exchange-specific site ID. Recommended by the OpenRTB
	// specification.
	ID string `json:"id,omitempty"`

	// Name is the site name (may be aliased at the publisher's request).
	Name string `json:"name,omitempty"`

	// Domain is the domain of the site (e.g., "mysite.foo.com"), used for
	// advertiser-side blocking.
	Domain string `json:"domain,omitempty"`

	// Cat is the array of IAB content categories of the site.
	Cat []ContentCategory `json:"cat,omitempty"`

	// SectionCat is the array of IAB content categories that describe the
	// current section of the site.
	SectionCat []ContentCategory `json:"sectioncat,omitempty"`

	// PageCat is the array of IAB content categories that describe the
	// current page or view of the site.
	PageCat []ContentCategory `json:"pagecat,omitempty"`

	// Page is the URL of the page where the impression will be shown.
	Page string `json:"page,omitempty"`

	// Ref is the referrer URL that caused navigation to the current page.
	Ref string `json:"ref,omitempty"`

	// Search is the search string that caused navigation to the current
	// page.
	Search string `json:"search,omitempty"`

	// Mobile indicates if the site has been programmed to optimize layout
	// when viewed on mobile devices, where 0 = no, 1 = yes.
	Mobile *openrtb.IntBool `json:"mobile,omitempty"`

	// PrivacyPolicy indicates if the site has a privacy policy, where
	// 0 = no, 1 = yes.
	PrivacyPolicy *openrtb.IntBool `json:"privacypolicy,omitempty"`

	// Publisher holds details about the publisher of the site.
	Publisher *Publisher `json:"publisher,omitempty"`

	// Content holds details about the content within the site.
	Content *Content `json:"content,omitempty"`

	// Keywords is a comma separated list of keywords about the site.
	Keywords string `json:"keywords,omitempty"`

	// Ext is a placeholder for exchange-specific extensions to OpenRTB.
	Ext json.RawMessage `json:"ext,omitempty"`
}
