package openrtb2

import "fmt"

// ContentDeliveryMethod lists the various options for the delivery of video
// or audio content.
type ContentDeliveryMethod int8

const (
	ContentDeliveryMethodStreaming   ContentDeliveryMethod = 1 // Streaming
	ContentDeliveryMethodProgressive ContentDeliveryMethod = 2 // Progressive
)

// Name returns the canonical name of the delivery method, or "" if t is not
// a defined value.
func (t ContentDeliveryMethod) Name() string {
	switch t {
	case ContentDeliveryMethodStreaming:
		return "STREAMING"
	case ContentDeliveryMethodProgressive:
		return "PROGRESSIVE"
	}
	return ""
}

// UnmarshalJSON implements json.Unmarshaler, rejecting values outside the
// published vocabulary.
func (t *ContentDeliveryMethod) UnmarshalJSON(data []byte) error {
	v, err := parseEnumInt8(data, "content delivery method")
	if err != nil {
		return err
	}
	if m := ContentDeliveryMethod(v); m.Name() != "" {
		*t = m
		return nil
	}
	return fmt.Errorf("openrtb2: unknown content delivery method %d", v)
}
