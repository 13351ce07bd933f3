package openrtb2

import "fmt"

// NoBidReason lets a bidder signal the exchange as to why it did not offer a
// bid for the impression.
type NoBidReason int8

const (
	NoBidReasonUnknownError             NoBidReason = 0  // Unknown Error
	NoBidReasonTechnicalError           NoBidReason = 1  // Technical Error
	NoBidReasonInvalidRequest           NoBidReason = 2  // Invalid Request
	NoBidReasonKnownWebSpider           NoBidReason = 3  // Known Web Spider
	NoBidReasonSuspectedNonHumanTraffic NoBidReason = 4  // Suspected Non-Human Traffic
	NoBidReasonCloudDataCenterProxyIP   NoBidReason = 5  // Cloud, Data center, or Proxy IP
	NoBidReasonUnsupportedDevice        NoBidReason = 6  // Unsupported Device
	NoBidReasonBlockedPublisher         NoBidReason = 7  // Blocked Publisher or Site
	NoBidReasonUnmatchedUser            NoBidReason = 8  // Unmatched User
	NoBidReasonDailyReaderCap           NoBidReason = 9  // Daily Reader Cap Met
	NoBidReasonDailyDomainCap           NoBidReason = 10 // Daily Domain Cap Met
)

// Name returns the canonical name of the no-bid reason, or "" if t is not a
// defined value.
func (t NoBidReason) Name() string {
	switch t {
	case NoBidReasonUnknownError:
		return "UNKNOWN_ERROR"
	case NoBidReasonTechnicalError:
		return "TECHNICAL_ERROR"
	case NoBidReasonInvalidRequest:
		return "INVALID_REQUEST"
	case NoBidReasonKnownWebSpider:
		return "KNOWN_WEB_SPIDER"
	case NoBidReasonSuspectedNonHumanTraffic:
		return "SUSPECTED_NONHUMAN_TRAFFIC"
	case NoBidReasonCloudDataCenterProxyIP:
		return "CLOUD_DATACENTER_PROXYIP"
	case NoBidReasonUnsupportedDevice:
		return "UNSUPPORTED_DEVICE"
	case NoBidReasonBlockedPublisher:
		return "BLOCKED_PUBLISHER"
	case NoBidReasonUnmatchedUser:
		return "UNMATCHED_USER"
	case NoBidReasonDailyReaderCap:
		return "DAILY_READER_CAP"
	case NoBidReasonDailyDomainCap:
		return "DAILY_DOMAIN_CAP"
	}
	return ""
}

// UnmarshalJSON implements json.Unmarshaler, rejecting values outside the
// published vocabulary.
func (t *NoBidReason) UnmarshalJSON(data []byte) error {
	v, err := parseEnumInt8(data, "no-bid reason")
	if err != nil {
		return err
	}
	if r := NoBidReason(v); r.Name() != "" {
		*t = r
		return nil
	}
	return fmt.Errorf("openrtb2: unknown no-bid reason %d", v)
}
