package service

import (
	"encoding/json"
	"strings"
)

// NormalizePoints coerces the loosely shaped "points" form input into a
// canonical ordered list. Three accepted shapes, tried in order:
//
//   - repeated form values: passed through unchanged
//   - a single JSON array string: decoded, elements kept verbatim
//   - any other single string: split on commas, elements trimmed
//
// Absent or blank input yields an empty list. Never fails: malformed input
// degrades to the comma-split fallback.
func NormalizePoints(values []string) []string {
	switch len(values) {
	case 0:
		return []string{}
	case 1:
		return normalizeSingle(values[0])
	default:
		out := make([]string, len(values))
		copy(out, values)
		return out
	}
}

func normalizeSingle(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return []string{}
	}

	var parsed []string
	if err := json.Unmarshal([]byte(raw), &parsed); err == nil {
		return parsed
	}

	parts := strings.Split(raw, ",")
	out := make([]string, len(parts))
	for i, part := range parts {
		out[i] = strings.TrimSpace(part)
	}
	return out
}
