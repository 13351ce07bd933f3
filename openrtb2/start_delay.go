package openrtb2

import "fmt"

// StartDelay describes the start delay in seconds for pre-roll, mid-roll, or
// post-roll audio/video placements.
//
// Any value greater than zero means a mid-roll placement that starts that
// many seconds into the content, so the vocabulary is open on the positive
// side and decoding never rejects an integer. Only 0, -1, and -2 carry
// reserved meanings.
type StartDelay int64

const (
	StartDelayPreRoll         StartDelay = 0  // Pre-Roll
	StartDelayGenericMidRoll  StartDelay = -1 // Generic Mid-Roll
	StartDelayGenericPostRoll StartDelay = -2 // Generic Post-Roll
)

// Name returns the canonical name of the start delay. Positive values are
// rendered as mid-roll offsets.
func (t StartDelay) Name() string {
	switch t {
	case StartDelayPreRoll:
		return "PRE_ROLL"
	case StartDelayGenericMidRoll:
		return "GENERIC_MID_ROLL"
	case StartDelayGenericPostRoll:
		return "GENERIC_POST_ROLL"
	}
	return fmt.Sprintf("MID_ROLL(%d)", int64(t))
}

// UnmarshalJSON implements json.Unmarshaler. Any integer is accepted; only
// malformed input fails.
func (t *StartDelay) UnmarshalJSON(data []byte) error {
	v, err := parseEnumInt(data, "start delay")
	if err != nil {
		return err
	}
	*t = StartDelay(v)
	return nil
}
