package domain

// LastRaceResult is the resolved finishing result for a driver in the most
// recent race session. Position and points are independently unresolved when
// neither the session result nor the position fallback could supply them.
type LastRaceResult struct {
	SessionKey int      `json:"session_key"`
	Position   *int     `json:"position"`
	Points     *float64 `json:"points"`
}
