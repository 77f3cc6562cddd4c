package openf1

// Raw OpenF1 API records. Field sets are partial, focused on what the
// service consumes; optional fields are pointers so that absent and zero
// stay distinguishable.

// Driver is one entry of the /drivers collection.
type Driver struct {
	DriverNumber int    `json:"driver_number"`
	FullName     string `json:"full_name"`
	TeamName     string `json:"team_name"`
	TeamColour   string `json:"team_colour"`
	HeadshotURL  string `json:"headshot_url"`
	SessionKey   int    `json:"session_key"`
}

// Session is one entry of the /sessions collection.
type Session struct {
	SessionKey  int    `json:"session_key"`
	Year        int    `json:"year"`
	SessionType string `json:"session_type"`
	SessionName string `json:"session_name"`
	DateStart   string `json:"date_start"`
	DateEnd     string `json:"date_end"`
}

// SessionResult is one entry of the /session_result collection.
type SessionResult struct {
	SessionKey       int      `json:"session_key"`
	DriverNumber     int      `json:"driver_number"`
	Position         *int     `json:"position"`
	Points           *float64 `json:"points"`
	ClassifiedStatus *string  `json:"classified_status"`
}

// Position is one raw position sample from the /position collection.
type Position struct {
	SessionKey   int    `json:"session_key"`
	DriverNumber int    `json:"driver_number"`
	Position     *int   `json:"position"`
	Date         string `json:"date"`
}

// Lap is one entry of the /laps collection. The API has shipped two
// generations of field names for durations; both are decoded and the
// telemetry package picks the canonical one.
type Lap struct {
	SessionKey   int    `json:"session_key"`
	DriverNumber int    `json:"driver_number"`
	LapNumber    int    `json:"lap_number"`
	DateStart    string `json:"date_start"`

	LapDuration *float64 `json:"lap_duration"`
	Duration    *float64 `json:"duration"` // legacy alias of lap_duration

	DurationSector1 *float64 `json:"duration_sector_1"`
	DurationSector2 *float64 `json:"duration_sector_2"`
	DurationSector3 *float64 `json:"duration_sector_3"`
	Sector1         *float64 `json:"sector1"` // legacy alias
	Sector2         *float64 `json:"sector2"` // legacy alias
	Sector3         *float64 `json:"sector3"` // legacy alias
}

// Stint is one entry of the /stints collection, covering the closed lap
// interval [LapStart, LapEnd].
type Stint struct {
	SessionKey     int     `json:"session_key"`
	DriverNumber   int     `json:"driver_number"`
	LapStart       int     `json:"lap_start"`
	LapEnd         int     `json:"lap_end"`
	Compound       *string `json:"compound"`
	TyreAgeAtStart *int    `json:"tyre_age_at_start"`
}

// Pit is one entry of the /pit collection.
type Pit struct {
	SessionKey    int      `json:"session_key"`
	DriverNumber  int      `json:"driver_number"`
	LapNumber     int      `json:"lap_number"`
	Date          string   `json:"date"`
	PitDuration   *float64 `json:"pit_duration"`
	TotalDuration *float64 `json:"total_duration"`
}

// Weather is one entry of the /weather collection. Readings are session
// scoped, not per driver. Depending on the API generation rain arrives as
// the is_raining flag or as a rainfall amount.
type Weather struct {
	SessionKey       int      `json:"session_key"`
	Date             string   `json:"date"`
	AirTemperature   *float64 `json:"air_temperature"`
	TrackTemperature *float64 `json:"track_temperature"`
	Humidity         *float64 `json:"humidity"`
	WindSpeed        *float64 `json:"wind_speed"`
	Rainfall         *float64 `json:"rainfall"`
	IsRaining        *bool    `json:"is_raining"`
}
