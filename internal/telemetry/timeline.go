package telemetry

import "openf1-service/internal/openf1"

// timeline carries the running lap-start instant across a lap sequence.
// Laps must be fed in chronological order; out-of-order input drifts and is
// the caller's responsibility to avoid.
type timeline struct {
	lastStartMs int64
	known       bool
}

// startOf resolves the start instant of lap in Unix milliseconds. An
// explicit, parseable date_start wins and resets the running value.
// Otherwise the start is projected forward from the running value by the
// lap's resolved duration. When neither is available the start is
// unresolved and the running value is left untouched.
func (tl *timeline) startOf(lap openf1.Lap, duration *float64) (int64, bool) {
	if ms, ok := openf1.ParseDate(lap.DateStart); ok {
		tl.lastStartMs = ms
		tl.known = true
		return ms, true
	}
	if tl.known && duration != nil {
		ms := tl.lastStartMs + int64(*duration*1000)
		tl.lastStartMs = ms
		return ms, true
	}
	return 0, false
}
