package openrtb2

import "fmt"

// AuctionType determines how the winning price of an auction is established.
//
// Values 1 and 2 are reserved by the OpenRTB specification; every other
// integer is a valid exchange-specific auction type (by convention exchanges
// define values above 500) and must round-trip unchanged. The vocabulary is
// therefore deliberately open: decoding never rejects an integer. On
// Deal.AT, the value 3 additionally means "the value in bidfloor is the
// agreed-upon deal price".
type AuctionType int64

const (
	AuctionTypeFirstPrice      AuctionType = 1 // First Price
	AuctionTypeSecondPricePlus AuctionType = 2 // Second Price Plus
)

// ExchangeSpecific reports whether t lies outside the reserved values.
func (t AuctionType) ExchangeSpecific() bool {
	return t != AuctionTypeFirstPrice && t != AuctionTypeSecondPricePlus
}

// Name returns the canonical name of the auction type. Exchange-specific
// values are rendered with their wire integer.
func (t AuctionType) Name() string {
	switch t {
	case AuctionTypeFirstPrice:
		return "FIRST_PRICE"
	case AuctionTypeSecondPricePlus:
		return "SECOND_PRICE_PLUS"
	}
	return fmt.Sprintf("EXCHANGE_SPECIFIC(%d)", int64(t))
}

// UnmarshalJSON implements json.Unmarshaler. Unlike the closed vocabularies,
// any integer is accepted; only malformed input fails.
func (t *AuctionType) UnmarshalJSON(data []byte) error {
	v, err := parseEnumInt(data, "auction type")
	if err != nil {
		return err
	}
	*t = AuctionType(v)
	return nil
}
