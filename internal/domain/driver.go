package domain

// DriverSummary is the roster entry returned by the drivers operation.
// Field names follow the upstream OpenF1 convention.
type DriverSummary struct {
	DriverNumber int    `json:"driver_number"`
	FullName     string `json:"full_name"`
	TeamName     string `json:"team_name,omitempty"`
	TeamColour   string `json:"team_colour,omitempty"`
	HeadshotURL  string `json:"headshot_url,omitempty"`
}
