package native1

import "fmt"

// DataAssetType describes the common asset element types of native
// advertising. This list is non-exhaustive and intended to be extended by
// buyers and sellers as the format evolves; an implementing exchange may not
// support all asset variants or may introduce new ones unique to that
// system.
type DataAssetType int8

const (
	// DataAssetTypeSponsored: "sponsored by" message where the response
	// should contain the brand name of the sponsor. Format: text, max length
	// 25 or longer.
	DataAssetTypeSponsored DataAssetType = 1
	// DataAssetTypeDesc: descriptive text associated with the product or
	// service being advertised. Format: text, max length 140 or longer.
	DataAssetTypeDesc DataAssetType = 2
	// DataAssetTypeRating: rating of the product being offered to the user,
	// for example an app's rating in an app store from 0-5. Format: number
	// (1-5 digits) formatted as string.
	DataAssetTypeRating DataAssetType = 3
	// DataAssetTypeLikes: number of social ratings or "likes" of the product
	// being offered to the user. Format: number formatted as string.
	DataAssetTypeLikes DataAssetType = 4
	// DataAssetTypeDownloads: number of downloads/installs of this product.
	// Format: number formatted as string.
	DataAssetTypeDownloads DataAssetType = 5
	// DataAssetTypePrice: price for the product / app / in-app purchase. The
	// value should include the currency symbol in localised format. Format:
	// number formatted as string.
	DataAssetTypePrice DataAssetType = 6
	// DataAssetTypeSalePrice: sale price that can be used together with
	// price to indicate a discounted price compared to a regular price. The
	// value should include the currency symbol in localised format. Format:
	// number formatted as string.
	DataAssetTypeSalePrice DataAssetType = 7
	// DataAssetTypePhone: phone number. Format: formatted string.
	DataAssetTypePhone DataAssetType = 8
	// DataAssetTypeAddress: address. Format: text.
	DataAssetTypeAddress DataAssetType = 9
	// DataAssetTypeDesc2: additional descriptive text associated with the
	// product or service being advertised. Format: text.
	DataAssetTypeDesc2 DataAssetType = 10
	// DataAssetTypeDisplayURL: display URL for the text ad. Format: text.
	DataAssetTypeDisplayURL DataAssetType = 11
	// DataAssetTypeCTAText: text describing a "call to action" button for
	// the destination URL. Format: text.
	DataAssetTypeCTAText DataAssetType = 12
)

// Name returns the canonical name of the data asset type, or "" if t is not
// a defined value. Exchange-specific values above 500 have no name.
func (t DataAssetType) Name() string {
	switch t {
	case DataAssetTypeSponsored:
		return "SPONSORED"
	case DataAssetTypeDesc:
		return "DESC"
	case DataAssetTypeRating:
		return "RATING"
	case DataAssetTypeLikes:
		return "LIKES"
	case DataAssetTypeDownloads:
		return "DOWNLOADS"
	case DataAssetTypePrice:
		return "PRICE"
	case DataAssetTypeSalePrice:
		return "SALEPRICE"
	case DataAssetTypePhone:
		return "PHONE"
	case DataAssetTypeAddress:
		return "ADDRESS"
	case DataAssetTypeDesc2:
		return "DESC2"
	case DataAssetTypeDisplayURL:
		return "DISPLAYURL"
	case DataAssetTypeCTAText:
		return "CTATEXT"
	}
	return ""
}

// UnmarshalJSON implements json.Unmarshaler, rejecting values outside the
// published vocabulary.
func (t *DataAssetType) UnmarshalJSON(data []byte) error {
	v, err := parseEnumInt8(data, "data asset type")
	if err != nil {
		return err
	}
	if d := DataAssetType(v); d.Name() != "" {
		*t = d
		return nil
	}
	return fmt.Errorf("native1: unknown data asset type %d", v)
}
