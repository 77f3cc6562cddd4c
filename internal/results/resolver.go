// Package results resolves a driver's finishing result for the most recent
// race session of a season.
package results

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"openf1-service/internal/domain"
	"openf1-service/internal/openf1"
)

// ErrNoSessions is returned when the season has no race sessions.
var ErrNoSessions = errors.New("no race sessions found")

// DefaultSeason is the competition year queried when none is configured.
const DefaultSeason = 2025

const raceSessionType = "Race"

// Source is the subset of the OpenF1 API the resolver consumes.
type Source interface {
	Sessions(ctx context.Context, year int, sessionType string) ([]openf1.Session, error)
	SessionResults(ctx context.Context, sessionKey, driverNumber int) ([]openf1.SessionResult, error)
	Positions(ctx context.Context, sessionKey, driverNumber int) ([]openf1.Position, error)
}

// Resolver picks the latest race session of a season and resolves a
// driver's position and points through the session result, falling back to
// raw position samples. It is state-free; every call stands alone.
type Resolver struct {
	src  Source
	year int
}

// NewResolver creates a resolver for the given season. A zero year selects
// DefaultSeason.
func NewResolver(src Source, year int) *Resolver {
	if year == 0 {
		year = DefaultSeason
	}
	return &Resolver{src: src, year: year}
}

// LastRace resolves the driver's result in the season's most recent race.
//
// The provider returns sessions in calendar order and the last element is
// taken as the most recent; the resolver trusts that ordering instead of
// re-sorting by date_start. Re-sorting would change observable behavior if
// the provider's order ever disagreed with timestamp order.
func (r *Resolver) LastRace(ctx context.Context, driverNumber int) (*domain.LastRaceResult, error) {
	sessions, err := r.src.Sessions(ctx, r.year, raceSessionType)
	if err != nil {
		return nil, err
	}
	if len(sessions) == 0 {
		return nil, fmt.Errorf("%w for %d", ErrNoSessions, r.year)
	}

	latest := sessions[len(sessions)-1]
	out := &domain.LastRaceResult{SessionKey: latest.SessionKey}

	classified, err := r.src.SessionResults(ctx, latest.SessionKey, driverNumber)
	if err != nil {
		return nil, err
	}
	for i := range classified {
		if classified[i].DriverNumber != driverNumber {
			continue
		}
		if classified[i].Position != nil || classified[i].Points != nil {
			out.Position = classified[i].Position
			out.Points = classified[i].Points
			return out, nil
		}
		break
	}

	// Fallback: chronologically last raw position sample. The samples carry
	// no points data, so points stay unresolved on this path.
	samples, err := r.src.Positions(ctx, latest.SessionKey, driverNumber)
	if err != nil {
		return nil, err
	}
	if len(samples) > 0 {
		ordered := make([]openf1.Position, len(samples))
		copy(ordered, samples)
		sort.SliceStable(ordered, func(i, j int) bool {
			ti, _ := openf1.ParseDate(ordered[i].Date)
			tj, _ := openf1.ParseDate(ordered[j].Date)
			return ti < tj
		})
		out.Position = ordered[len(ordered)-1].Position
	}

	return out, nil
}
