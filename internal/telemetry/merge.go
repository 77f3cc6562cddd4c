// Package telemetry correlates the four independently-keyed OpenF1
// collections for one driver's race onto a common per-lap timeline.
package telemetry

import (
	"context"
	"fmt"
	"sync"
	"time"

	"openf1-service/internal/domain"
	"openf1-service/internal/observability"
	"openf1-service/internal/openf1"
)

// Source is the subset of the OpenF1 API the merge consumes.
type Source interface {
	Laps(ctx context.Context, sessionKey, driverNumber int) ([]openf1.Lap, error)
	Stints(ctx context.Context, sessionKey, driverNumber int) ([]openf1.Stint, error)
	Pits(ctx context.Context, sessionKey, driverNumber int) ([]openf1.Pit, error)
	Weather(ctx context.Context, sessionKey int) ([]openf1.Weather, error)
}

// Inputs holds the four materialized collections for one merge. Everything
// is request-scoped and immutable once fetched.
type Inputs struct {
	Laps    []openf1.Lap
	Stints  []openf1.Stint
	Pits    []openf1.Pit
	Weather []openf1.Weather
}

// Merger fetches and merges race telemetry from a Source.
type Merger struct {
	src Source
}

// NewMerger creates a new telemetry merger.
func NewMerger(src Source) *Merger {
	return &Merger{src: src}
}

// Fetch retrieves the four collections concurrently and waits for all of
// them. There is no partial-success path: any single failure aborts the
// fetch and none of the other results are used. Errors are classified in
// fixed collection order so the failing collection is deterministic.
func (m *Merger) Fetch(ctx context.Context, sessionKey, driverNumber int) (*Inputs, error) {
	var (
		in                                 Inputs
		lapsErr, stintsErr, pitsErr, wxErr error
		wg                                 sync.WaitGroup
	)

	wg.Add(4)
	go func() {
		defer wg.Done()
		in.Laps, lapsErr = m.src.Laps(ctx, sessionKey, driverNumber)
	}()
	go func() {
		defer wg.Done()
		in.Stints, stintsErr = m.src.Stints(ctx, sessionKey, driverNumber)
	}()
	go func() {
		defer wg.Done()
		in.Pits, pitsErr = m.src.Pits(ctx, sessionKey, driverNumber)
	}()
	go func() {
		defer wg.Done()
		in.Weather, wxErr = m.src.Weather(ctx, sessionKey)
	}()
	wg.Wait()

	for _, f := range []struct {
		collection string
		err        error
	}{
		{"laps", lapsErr},
		{"stints", stintsErr},
		{"pits", pitsErr},
		{"weather", wxErr},
	} {
		if f.err != nil {
			return nil, fmt.Errorf("fetch %s: %w", f.collection, f.err)
		}
	}

	return &in, nil
}

// Merge builds the unified per-lap view from materialized inputs. Laps are
// processed in the order received; the timestamp projection assumes that
// order is chronological.
func Merge(in *Inputs) *domain.RaceTelemetry {
	compounds := make([]string, 0, 4)
	seen := make(map[string]bool)
	var tl timeline

	laps := make([]domain.LapTelemetry, 0, len(in.Laps))
	for _, lap := range in.Laps {
		duration := lapDuration(lap)
		s1, s2, s3 := sectorTimes(lap)

		var compound *string
		if stint := stintFor(lap.LapNumber, in.Stints); stint != nil {
			compound = stint.Compound
		}
		if compound != nil && !seen[*compound] {
			seen[*compound] = true
			compounds = append(compounds, *compound)
		}

		var weather *domain.WeatherSnapshot
		if startMs, ok := tl.startOf(lap, duration); ok {
			weather = nearestWeather(startMs, in.Weather)
		}

		laps = append(laps, domain.LapTelemetry{
			LapNumber:    lap.LapNumber,
			LapDuration:  duration,
			Sector1:      s1,
			Sector2:      s2,
			Sector3:      s3,
			TireCompound: compound,
			Weather:      weather,
		})
	}

	return &domain.RaceTelemetry{
		RaceSummary: domain.RaceSummary{
			TotalLaps:     len(laps),
			TotalPitStops: len(in.Pits),
			CompoundsUsed: compounds,
		},
		PitStops:  pitStopList(in.Pits),
		Telemetry: laps,
	}
}

// Run fetches and merges in one step.
func (m *Merger) Run(ctx context.Context, sessionKey, driverNumber int) (*domain.RaceTelemetry, error) {
	start := time.Now()

	in, err := m.Fetch(ctx, sessionKey, driverNumber)
	if err != nil {
		observability.RecordMergeRun("error", time.Since(start).Seconds(), 0)
		return nil, err
	}

	out := Merge(in)
	observability.RecordMergeRun("success", time.Since(start).Seconds(), len(out.Telemetry))
	return out, nil
}
