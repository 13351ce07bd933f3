package openrtb2

import "fmt"

// DeviceType is the type of device from which the impression originated.
//
// OpenRTB 2.2 added distinct values for Mobile and Tablet; a bidder
// supporting 2.2+ should treat a value of 1 as an acceptable alias of 4 and
// 5. The table is derived from the IAB Quality Assurance Guidelines (QAG).
type DeviceType int8

const (
	DeviceTypeMobile           DeviceType = 1 // Mobile/Tablet (obsolete in 2.2+, alias for phone or tablet)
	DeviceTypePersonalComputer DeviceType = 2 // Personal Computer
	DeviceTypeConnectedTV      DeviceType = 3 // Connected TV
	DeviceTypePhone            DeviceType = 4 // Phone
	DeviceTypeTablet           DeviceType = 5 // Tablet
	DeviceTypeConnectedDevice  DeviceType = 6 // Connected Device
	DeviceTypeSetTopBox        DeviceType = 7 // Set Top Box
)

// Name returns the canonical name of the device type, or "" if t is not a
// defined value.
func (t DeviceType) Name() string {
	switch t {
	case DeviceTypeMobile:
		return "MOBILE"
	case DeviceTypePersonalComputer:
		return "PERSONAL_COMPUTER"
	case DeviceTypeConnectedTV:
		return "CONNECTED_TV"
	case DeviceTypePhone:
		return "HIGHEND_PHONE"
	case DeviceTypeTablet:
		return "TABLET"
	case DeviceTypeConnectedDevice:
		return "CONNECTED_DEVICE"
	case DeviceTypeSetTopBox:
		return "SET_TOP_BOX"
	}
	return ""
}

// UnmarshalJSON implements json.Unmarshaler, rejecting values outside the
// published vocabulary.
func (t *DeviceType) UnmarshalJSON(data []byte) error {
	v, err := parseEnumInt8(data, "device type")
	if err != nil {
		return err
	}
	if d := DeviceType(v); d.Name() != "" {
		*t = d
		return nil
	}
	return fmt.Errorf("openrtb2: unknown device type %d", v)
}
