package telemetry

import (
	"context"
	"errors"
	"strings"
	"testing"

	"openf1-service/internal/openf1"
	"openf1-service/internal/prune"
)

// stubSource serves canned collections, with per-collection failure
// injection.
type stubSource struct {
	laps    []openf1.Lap
	stints  []openf1.Stint
	pits    []openf1.Pit
	weather []openf1.Weather

	lapsErr    error
	stintsErr  error
	pitsErr    error
	weatherErr error
}

func (s *stubSource) Laps(ctx context.Context, sessionKey, driverNumber int) ([]openf1.Lap, error) {
	return s.laps, s.lapsErr
}

func (s *stubSource) Stints(ctx context.Context, sessionKey, driverNumber int) ([]openf1.Stint, error) {
	return s.stints, s.stintsErr
}

func (s *stubSource) Pits(ctx context.Context, sessionKey, driverNumber int) ([]openf1.Pit, error) {
	return s.pits, s.pitsErr
}

func (s *stubSource) Weather(ctx context.Context, sessionKey int) ([]openf1.Weather, error) {
	return s.weather, s.weatherErr
}

func TestMerge_SingleLapDocument(t *testing.T) {
	// One lap with only two sector times, one covering MEDIUM stint, no
	// pits, no weather. The compacted document must omit the unknown
	// fields entirely rather than carry nulls.
	src := &stubSource{
		laps:   []openf1.Lap{{LapNumber: 1, Sector2: fp(38.489), Sector3: fp(32.363)}},
		stints: []openf1.Stint{{LapStart: 1, LapEnd: 1, Compound: sp("MEDIUM")}},
	}

	merged, err := NewMerger(src).Run(context.Background(), 9999, 1)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if merged.RaceSummary.TotalLaps != 1 {
		t.Errorf("totalLaps: expected 1, got %d", merged.RaceSummary.TotalLaps)
	}
	if merged.RaceSummary.TotalPitStops != 0 {
		t.Errorf("totalPitStops: expected 0, got %d", merged.RaceSummary.TotalPitStops)
	}
	if len(merged.RaceSummary.CompoundsUsed) != 1 || merged.RaceSummary.CompoundsUsed[0] != "MEDIUM" {
		t.Errorf("compoundsUsed: expected [MEDIUM], got %v", merged.RaceSummary.CompoundsUsed)
	}

	document, err := prune.Document(merged)
	if err != nil {
		t.Fatalf("Document: %v", err)
	}
	root := document.(map[string]interface{})

	pitStops, ok := root["pitStops"].([]interface{})
	if !ok || len(pitStops) != 0 {
		t.Errorf("pitStops: expected empty array, got %v", root["pitStops"])
	}

	lapEntry := root["telemetry"].([]interface{})[0].(map[string]interface{})
	for _, key := range []string{"lapNumber", "sector2", "sector3", "tireCompound"} {
		if _, present := lapEntry[key]; !present {
			t.Errorf("lap entry missing %s: %v", key, lapEntry)
		}
	}
	for _, key := range []string{"lapDuration", "sector1", "weather"} {
		if _, present := lapEntry[key]; present {
			t.Errorf("lap entry must omit %s, got %v", key, lapEntry[key])
		}
	}
}

func TestMerge_InfersLapStartsForWeather(t *testing.T) {
	// Lap 1 carries an explicit start; lap 2 is projected 90s forward and
	// must therefore match the second weather reading.
	src := &stubSource{
		laps: []openf1.Lap{
			{LapNumber: 1, DateStart: "2024-05-05T14:00:00+00:00", LapDuration: fp(90)},
			{LapNumber: 2, LapDuration: fp(90)},
		},
		weather: []openf1.Weather{
			{Date: "2024-05-05T14:00:05+00:00", AirTemperature: fp(21)},
			{Date: "2024-05-05T14:01:35+00:00", AirTemperature: fp(25)},
		},
	}

	merged, err := NewMerger(src).Run(context.Background(), 9999, 1)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	w1 := merged.Telemetry[0].Weather
	if w1 == nil || *w1.AirTemperature != 21 {
		t.Errorf("lap 1: expected first reading, got %+v", w1)
	}
	w2 := merged.Telemetry[1].Weather
	if w2 == nil || *w2.AirTemperature != 25 {
		t.Errorf("lap 2: expected second reading, got %+v", w2)
	}
}

func TestMerge_SkipsWeatherForUnresolvedStarts(t *testing.T) {
	src := &stubSource{
		laps:    []openf1.Lap{{LapNumber: 1, LapDuration: fp(90)}}, // no timestamp, no prior lap
		weather: []openf1.Weather{{Date: "2024-05-05T14:00:00+00:00", AirTemperature: fp(21)}},
	}

	merged, err := NewMerger(src).Run(context.Background(), 9999, 1)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if merged.Telemetry[0].Weather != nil {
		t.Errorf("unresolved start must skip weather, got %+v", merged.Telemetry[0].Weather)
	}
}

func TestMerge_CompoundsInFirstEncounteredOrder(t *testing.T) {
	src := &stubSource{
		laps: []openf1.Lap{
			{LapNumber: 1}, {LapNumber: 2}, {LapNumber: 3}, {LapNumber: 4},
		},
		stints: []openf1.Stint{
			{LapStart: 1, LapEnd: 1, Compound: sp("MEDIUM")},
			{LapStart: 2, LapEnd: 2, Compound: sp("HARD")},
			{LapStart: 3, LapEnd: 3, Compound: sp("MEDIUM")},
			{LapStart: 4, LapEnd: 4}, // unknown compound
		},
	}

	merged, err := NewMerger(src).Run(context.Background(), 9999, 1)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	got := merged.RaceSummary.CompoundsUsed
	if len(got) != 2 || got[0] != "MEDIUM" || got[1] != "HARD" {
		t.Errorf("expected [MEDIUM HARD], got %v", got)
	}
	if merged.Telemetry[3].TireCompound != nil {
		t.Errorf("lap 4: expected unknown compound, got %v", *merged.Telemetry[3].TireCompound)
	}
}

func TestMerge_TotalLapsEqualsEntries(t *testing.T) {
	// Repeated lap numbers pass through; the summary counts records, not
	// distinct laps.
	src := &stubSource{
		laps: []openf1.Lap{{LapNumber: 1}, {LapNumber: 1}, {LapNumber: 2}},
	}

	merged, err := NewMerger(src).Run(context.Background(), 9999, 1)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if merged.RaceSummary.TotalLaps != len(merged.Telemetry) {
		t.Errorf("totalLaps %d != entries %d", merged.RaceSummary.TotalLaps, len(merged.Telemetry))
	}
	if merged.RaceSummary.TotalLaps != 3 {
		t.Errorf("expected 3 records, got %d", merged.RaceSummary.TotalLaps)
	}
}

func TestFetch_AnyFailureAbortsAtomically(t *testing.T) {
	boom := errors.New("upstream down")

	for _, tc := range []struct {
		name   string
		mutate func(*stubSource)
	}{
		{"laps", func(s *stubSource) { s.lapsErr = boom }},
		{"stints", func(s *stubSource) { s.stintsErr = boom }},
		{"pits", func(s *stubSource) { s.pitsErr = boom }},
		{"weather", func(s *stubSource) { s.weatherErr = boom }},
	} {
		t.Run(tc.name, func(t *testing.T) {
			src := &stubSource{
				laps:   []openf1.Lap{{LapNumber: 1}},
				stints: []openf1.Stint{{LapStart: 1, LapEnd: 1, Compound: sp("SOFT")}},
			}
			tc.mutate(src)

			merged, err := NewMerger(src).Run(context.Background(), 9999, 1)
			if err == nil {
				t.Fatal("expected failure")
			}
			if merged != nil {
				t.Errorf("no partial result allowed, got %+v", merged)
			}
			if !errors.Is(err, boom) {
				t.Errorf("expected wrapped upstream error, got %v", err)
			}
			if !strings.Contains(err.Error(), tc.name) {
				t.Errorf("error should name the failing collection %q: %v", tc.name, err)
			}
		})
	}
}
