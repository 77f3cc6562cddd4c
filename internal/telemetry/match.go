package telemetry

import (
	"openf1-service/internal/domain"
	"openf1-service/internal/openf1"
)

// stintFor returns the first stint whose closed interval
// [lap_start, lap_end] contains lapNumber, or nil. Stint counts per session
// are small, so a linear scan is fine. When malformed upstream data makes
// two stints overlap a lap, the first match in list order wins; that is a
// known ambiguity, not a correctness guarantee.
func stintFor(lapNumber int, stints []openf1.Stint) *openf1.Stint {
	for i := range stints {
		if lapNumber >= stints[i].LapStart && lapNumber <= stints[i].LapEnd {
			return &stints[i]
		}
	}
	return nil
}

// nearestWeather returns the reading closest in absolute time to startMs,
// or nil when no reading has a parseable timestamp. The strict comparison
// keeps the first occurrence on equidistant ties. Readings are few per
// session, so no pre-sorting is assumed.
func nearestWeather(startMs int64, readings []openf1.Weather) *domain.WeatherSnapshot {
	var best *openf1.Weather
	var bestDiff int64
	for i := range readings {
		ms, ok := openf1.ParseDate(readings[i].Date)
		if !ok {
			continue
		}
		diff := ms - startMs
		if diff < 0 {
			diff = -diff
		}
		if best == nil || diff < bestDiff {
			best = &readings[i]
			bestDiff = diff
		}
	}
	if best == nil {
		return nil
	}
	return &domain.WeatherSnapshot{
		Date:             best.Date,
		AirTemperature:   best.AirTemperature,
		TrackTemperature: best.TrackTemperature,
		Humidity:         best.Humidity,
		WindSpeed:        best.WindSpeed,
		IsRaining:        rainIndicator(*best),
	}
}

// rainIndicator resolves rain from the explicit flag when present, else from
// a strictly positive rainfall amount, else stays unresolved.
func rainIndicator(w openf1.Weather) *bool {
	if w.IsRaining != nil {
		return w.IsRaining
	}
	if w.Rainfall != nil {
		raining := *w.Rainfall > 0
		return &raining
	}
	return nil
}
