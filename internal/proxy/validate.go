package proxy

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"strings"
)

// decodes a request body that must be a JSON object
func decodeObject(raw []byte) (map[string]any, bool) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var body map[string]any
	if err := dec.Decode(&body); err != nil || body == nil {
		return nil, false
	}

	// anything after the object, including stray closing delimiters
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, false
	}

	return body, true
}

// fields from required that are missing, null or the empty string
func MissingFields(body map[string]any, required []string) []string {
	var missing []string

	for _, field := range required {
		v, ok := body[field]
		if !ok || v == nil {
			missing = append(missing, field)
			continue
		}

		if s, isString := v.(string); isString && s == "" {
			missing = append(missing, field)
		}
	}

	return missing
}

// "teamId is required", "teamId and userId are required", "a, b and c are required"
func RequiredMessage(fields []string) string {
	switch len(fields) {
	case 0:
		return ""
	case 1:
		return fields[0] + " is required"
	default:
		head := strings.Join(fields[:len(fields)-1], ", ")
		return head + " and " + fields[len(fields)-1] + " are required"
	}
}

// string value of a validated body field, "" for other types
func StringField(body map[string]any, key string) string {
	s, _ := body[key].(string) //nolint:errcheck // type assertion
	return s
}
