package analytics

import (
	"bytes"
	"encoding/json"
	"strings"
)

// aggregates rating records in a single pass; the result does not depend on order
func Compute(records []RatingRecord) Summary {
	var s Summary

	for _, r := range records {
		s.MessageCount++

		switch r.Rating {
		case RatingUp:
			s.Up++
		case RatingDown:
			s.Down++
		}

		if r.SourceProvided == nil || *r.SourceProvided {
			continue
		}

		final := normalizeSource(r.FinalSource)
		suggested := normalizeSource(r.SuggestedSource)

		if final == "" || suggested == "" {
			continue
		}

		s.SourceEvalCount++
		if final == suggested {
			s.CorrectSourceCount++
		}
	}

	s.RatedCount = s.Up + s.Down
	s.ThumbsUpRate, s.ThumbsUpPercent = ratio(s.Up, s.RatedCount)
	s.CorrectSourceRate, s.CorrectSourcePercent = ratio(s.CorrectSourceCount, s.SourceEvalCount)

	return s
}

func normalizeSource(source string) string {
	return strings.ToLower(strings.TrimSpace(source))
}

// rate and round-half-up percent, both nil on a zero denominator
func ratio(num, den int) (*float64, *int) {
	if den == 0 {
		return nil, nil
	}

	rate := float64(num) / float64(den)

	// integer arithmetic keeps x.5 ties exact
	percent := (200*num + den) / (2 * den)

	return &rate, &percent
}

// decodes one rating document, coercing malformed fields instead of failing
func (r *RatingRecord) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		// not an object: treat as a record with no fields
		*r = RatingRecord{}
		return nil
	}

	*r = RatingRecord{
		Rating:          parseRating(stringField(raw["rating"])),
		FinalSource:     stringField(raw["final_source"]),
		SuggestedSource: stringField(raw["suggested_source"]),
	}

	if v, ok := raw["source_provided"]; ok {
		var b bool
		if err := json.Unmarshal(v, &b); err == nil && !bytes.Equal(bytes.TrimSpace(v), []byte("null")) {
			r.SourceProvided = &b
		}
	}

	return nil
}

func parseRating(value string) Rating {
	switch Rating(value) {
	case RatingUp:
		return RatingUp
	case RatingDown:
		return RatingDown
	default:
		return RatingUnset
	}
}

// returns the string value, or "" for anything that is not a JSON string
func stringField(v json.RawMessage) string {
	if len(v) == 0 {
		return ""
	}

	var s string
	if err := json.Unmarshal(v, &s); err != nil {
		return ""
	}

	return s
}
