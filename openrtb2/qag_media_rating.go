package openrtb2

import "fmt"

// QAGMediaRating lists the media ratings used in describing content based on
// the IAB QAG categorization. Refer to http://www.iab.net/ne_guidelines for
// more information.
type QAGMediaRating int8

const (
	QAGMediaRatingAll    QAGMediaRating = 1 // All Audiences
	QAGMediaRatingOver12 QAGMediaRating = 2 // Everyone Over 12
	QAGMediaRatingMature QAGMediaRating = 3 // Mature Audiences
)

// Name returns the canonical name of the media rating, or "" if t is not a
// defined value.
func (t QAGMediaRating) Name() string {
	switch t {
	case QAGMediaRatingAll:
		return "ALL_AUDIENCES"
	case QAGMediaRatingOver12:
		return "EVERYONE_OVER_12"
	case QAGMediaRatingMature:
		return "MATURE"
	}
	return ""
}

// UnmarshalJSON implements json.Unmarshaler, rejecting values outside the
// published vocabulary.
func (t *QAGMediaRating) UnmarshalJSON(data []byte) error {
	v, err := parseEnumInt8(data, "qag media rating")
	if err != nil {
		return err
	}
	if r := QAGMediaRating(v); r.Name() != "" {
		*t = r
		return nil
	}
	return fmt.Errorf("openrtb2: unknown qag media rating %d", v)
}
