package docstore

import "strings"

// deep-merges src into dst; maps merge recursively, everything else replaces
func mergeInto(dst, src Document) {
	for key, value := range src {
		incoming, isMap := asMap(value)
		if !isMap {
			dst[key] = cloneValue(value)
			continue
		}

		existing, ok := asMap(dst[key])
		if !ok {
			dst[key] = cloneDocument(incoming)
			continue
		}

		merged := cloneDocument(existing)
		mergeInto(merged, incoming)
		dst[key] = merged
	}
}

// removes a dotted field path; missing intermediate maps are ignored
func deleteField(doc Document, field string) {
	parts := strings.Split(field, ".")
	current := doc

	for i, part := range parts {
		if i == len(parts)-1 {
			delete(current, part)
			return
		}

		next, ok := asMap(current[part])
		if !ok {
			return
		}

		// write back as a Document so later lookups see the same map
		current[part] = Document(next)
		current = next
	}
}

func asMap(v any) (Document, bool) {
	switch m := v.(type) {
	case Document:
		return m, true
	case map[string]any:
		return Document(m), true
	default:
		return nil, false
	}
}

func cloneDocument(doc Document) Document {
	if doc == nil {
		return nil
	}

	return cloneValue(doc).(Document)
}

func cloneValue(v any) any {
	switch t := v.(type) {
	case Document:
		out := make(Document, len(t))
		for k, val := range t {
			out[k] = cloneValue(val)
		}
		return out
	case map[string]any:
		out := make(Document, len(t))
		for k, val := range t {
			out[k] = cloneValue(val)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, val := range t {
			out[i] = cloneValue(val)
		}
		return out
	case []string:
		return append([]string(nil), t...)
	default:
		return v
	}
}
