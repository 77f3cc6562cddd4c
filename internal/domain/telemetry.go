package domain

// WeatherSnapshot is the weather reading matched to a lap by nearest
// timestamp. All measurements are optional upstream.
type WeatherSnapshot struct {
	Date             string   `json:"date"`
	AirTemperature   *float64 `json:"airTemperature"`
	TrackTemperature *float64 `json:"trackTemperature"`
	Humidity         *float64 `json:"humidity"`
	WindSpeed        *float64 `json:"windSpeed"`
	IsRaining        *bool    `json:"isRaining"`
}

// LapTelemetry is one per-lap entry of the merged document. Durations are in
// seconds. Nil fields are stripped from the serialized document by the
// prune package; they are deliberately not tagged omitempty so that the
// compaction happens in exactly one place.
type LapTelemetry struct {
	LapNumber    int              `json:"lapNumber"`
	LapDuration  *float64         `json:"lapDuration"`
	Sector1      *float64         `json:"sector1"`
	Sector2      *float64         `json:"sector2"`
	Sector3      *float64         `json:"sector3"`
	TireCompound *string          `json:"tireCompound"`
	Weather      *WeatherSnapshot `json:"weather"`
}

// PitStopInfo is one pit event in upstream list order. Duplicate lap numbers
// are preserved here even though the by-lap lookup collapses them.
type PitStopInfo struct {
	LapNumber     int      `json:"lapNumber"`
	Duration      *float64 `json:"duration"`
	TotalDuration *float64 `json:"totalDuration"`
}

// RaceSummary aggregates the merged session. TotalLaps counts lap records as
// received, TotalPitStops counts raw pit records including duplicates, and
// CompoundsUsed lists distinct compounds in first-encountered order.
type RaceSummary struct {
	TotalLaps     int      `json:"totalLaps"`
	TotalPitStops int      `json:"totalPitStops"`
	CompoundsUsed []string `json:"compoundsUsed"`
}

// RaceTelemetry is the full merged, per-lap view of one driver's race.
type RaceTelemetry struct {
	RaceSummary RaceSummary    `json:"raceSummary"`
	PitStops    []PitStopInfo  `json:"pitStops"`
	Telemetry   []LapTelemetry `json:"telemetry"`
}
