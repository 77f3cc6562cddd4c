package openf1

import "time"

// Timestamp layouts the API has been observed to emit.
var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999", // no zone, treated as UTC
}

// ParseDate parses an ISO-8601 timestamp string into Unix milliseconds.
// Empty or malformed values report ok=false; they never fail the caller.
func ParseDate(s string) (ms int64, ok bool) {
	if s == "" {
		return 0, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UnixMilli(), true
		}
	}
	return 0, false
}
