package openrtb2

import "fmt"

// BannerAdType is the type of ad that can be accepted by the exchange unless
// restricted by publisher site settings.
type BannerAdType int8

const (
	BannerAdTypeXHTMLTextAd   BannerAdType = 1 // XHTML Text Ad (usually mobile)
	BannerAdTypeXHTMLBannerAd BannerAdType = 2 // XHTML Banner Ad (usually mobile)
	BannerAdTypeJavaScriptAd  BannerAdType = 3 // JavaScript Ad; must be valid XHTML (i.e., script tags included)
	BannerAdTypeIframe        BannerAdType = 4 // iframe
)

// Name returns the canonical name of the banner ad type, or "" if t is not a
// defined value.
func (t BannerAdType) Name() string {
	switch t {
	case BannerAdTypeXHTMLTextAd:
		return "XHTML_TEXT_AD"
	case BannerAdTypeXHTMLBannerAd:
		return "XHTML_BANNER_AD"
	case BannerAdTypeJavaScriptAd:
		return "JAVASCRIPT_AD"
	case BannerAdTypeIframe:
		return "IFRAME"
	}
	return ""
}

// UnmarshalJSON implements json.Unmarshaler, rejecting values outside the
// published vocabulary.
func (t *BannerAdType) UnmarshalJSON(data []byte) error {
	v, err := parseEnumInt8(data, "banner ad type")
	if err != nil {
		return err
	}
	if b := BannerAdType(v); b.Name() != "" {
		*t = b
		return nil
	}
	return fmt.Errorf("openrtb2: unknown banner ad type %d", v)
}
