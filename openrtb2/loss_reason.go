package openrtb2

import "fmt"

// LossReason lets an exchange inform a bidder as to the reason why they did
// not win an impression.
type LossReason int64

const (
	LossReasonBidWon                         LossReason = 0   // Bid Won
	LossReasonInternalError                  LossReason = 1   // Internal Error
	LossReasonImpExpired                     LossReason = 2   // Impression Opportunity Expired
	LossReasonInvalidBid                     LossReason = 3   // Invalid Bid Response
	LossReasonInvalidDealID                  LossReason = 4   // Invalid Deal ID
	LossReasonInvalidAuctionID               LossReason = 5   // Invalid Auction ID
	LossReasonInvalidADomain                 LossReason = 6   // Invalid (i.e., malformed) Advertiser Domain
	LossReasonMissingMarkup                  LossReason = 7   // Missing Markup
	LossReasonMissingCreativeID              LossReason = 8   // Missing Creative ID
	LossReasonMissingPrice                   LossReason = 9   // Missing Bid Price
	LossReasonMissingMinCreativeApprovalData LossReason = 10  // Missing Minimum Creative Approval Data
	LossReasonBidBelowFloor                  LossReason = 100 // Bid was Below Auction Floor
	LossReasonBidBelowDealFloor              LossReason = 101 // Bid was Below Deal Floor
	LossReasonLostHigherBid                  LossReason = 102 // Lost to Higher Bid
	LossReasonLostPMPDeal                    LossReason = 103 // Lost to a Bid for a PMP Deal
	LossReasonSeatBlocked                    LossReason = 104 // Buyer Seat Blocked
	LossReasonCreativeReasonUnknown          LossReason = 200 // Creative Filtered - General; Reason Unknown
	LossReasonCreativePending                LossReason = 201 // Creative Filtered - Pending Processing by Exchange
	LossReasonCreativeDisapproved            LossReason = 202 // Creative Filtered - Disapproved by Exchange
	LossReasonCreativeSize                   LossReason = 203 // Creative Filtered - Size Not Allowed
	LossReasonCreativeFormat                 LossReason = 204 // Creative Filtered - Incorrect Creative Format
	LossReasonCreativeAdvertiserExclusion    LossReason = 205 // Creative Filtered - Advertiser Exclusions
	LossReasonCreativeAppExclusion           LossReason = 206 // Creative Filtered - App Bundle Exclusions
	LossReasonCreativeNotSecure              LossReason = 207 // Creative Filtered - Not Secure
	LossReasonCreativeLanguageExclusion      LossReason = 208 // Creative Filtered - Language Exclusions
	LossReasonCreativeCategoryExclusion      LossReason = 209 // Creative Filtered - Category Exclusions
	LossReasonCreativeAttributeExclusion     LossReason = 210 // Creative Filtered - Creative Attribute Exclusions
	LossReasonCreativeAdTypeExclusion        LossReason = 211 // Creative Filtered - Ad Type Exclusions
	LossReasonCreativeAnimationLong          LossReason = 212 // Creative Filtered - Animation Too Long
	LossReasonCreativeNotAllowedPMP          LossReason = 213 // Creative Filtered - Not Allowed in PMP Deal
)

// Name returns the canonical name of the loss reason, or "" if t is not a
// defined value.
func (t LossReason) Name() string {
	switch t {
	case LossReasonBidWon:
		return "BID_WON"
	case LossReasonInternalError:
		return "INTERNAL_ERROR"
	case LossReasonImpExpired:
		return "IMP_EXPIRED"
	case LossReasonInvalidBid:
		return "INVALID_BID"
	case LossReasonInvalidDealID:
		return "INVALID_DEAL_ID"
	case LossReasonInvalidAuctionID:
		return "INVALID_AUCTION_ID"
	case LossReasonInvalidADomain:
		return "INVALID_ADOMAIN"
	case LossReasonMissingMarkup:
		return "MISSING_MARKUP"
	case LossReasonMissingCreativeID:
		return "MISSING_CREATIVE_ID"
	case LossReasonMissingPrice:
		return "MISSING_PRICE"
	case LossReasonMissingMinCreativeApprovalData:
		return "MISSING_MIN_CREATIVE_APPROVAL_DATA"
	case LossReasonBidBelowFloor:
		return "BID_BELOW_FLOOR"
	case LossReasonBidBelowDealFloor:
		return "BID_BELOW_DEAL_FLOOR"
	case LossReasonLostHigherBid:
		return "LOST_HIGHER_BID"
	case LossReasonLostPMPDeal:
		return "LOST_PMP_DEAL"
	case LossReasonSeatBlocked:
		return "SEAT_BLOCKED"
	case LossReasonCreativeReasonUnknown:
		return "CREATIVE_REASON_UNKNOWN"
	case LossReasonCreativePending:
		return "CREATIVE_PENDING"
	case LossReasonCreativeDisapproved:
		return "CREATIVE_DISAPPROVED"
	case LossReasonCreativeSize:
		return "CREATIVE_SIZE"
	case LossReasonCreativeFormat:
		return "CREATIVE_FORMAT"
	case LossReasonCreativeAdvertiserExclusion:
		return "CREATIVE_ADVERTISER_EXCLUSION"
	case LossReasonCreativeAppExclusion:
		return "CREATIVE_APP_EXCLUSION"
	case LossReasonCreativeNotSecure:
		return "CREATIVE_NOT_SECURE"
	case LossReasonCreativeLanguageExclusion:
		return "CREATIVE_LANGUAGE_EXCLUSION"
	case LossReasonCreativeCategoryExclusion:
		return "CREATIVE_CATEGORY_EXCLUSION"
	case LossReasonCreativeAttributeExclusion:
		return "CREATIVE_ATTRIBUTE_EXCLUSION"
	case LossReasonCreativeAdTypeExclusion:
		return "CREATIVE_ADTYPE_EXCLUSION"
	case LossReasonCreativeAnimationLong:
		return "CREATIVE_ANIMATION_LONG"
	case LossReasonCreativeNotAllowedPMP:
		return "CREATIVE_NOT_ALLOWED_PMP"
	}
	return ""
}

// UnmarshalJSON implements json.Unmarshaler, rejecting values outside the
// published vocabulary.
func (t *LossReason) UnmarshalJSON(data []byte) error {
	v, err := parseEnumInt(data, "loss reason")
	if err != nil {
		return err
	}
	if r := LossReason(v); r.Name() != "" {
		*t = r
		return nil
	}
	return fmt.Errorf("openrtb2: unknown loss reason %d", v)
}
