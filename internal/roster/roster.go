// Package roster produces the deduplicated active-driver list.
package roster

import (
	"context"

	"openf1-service/internal/domain"
	"openf1-service/internal/openf1"
)

// Source is the subset of the OpenF1 API the roster consumes.
type Source interface {
	Drivers(ctx context.Context, sessionKey string) ([]openf1.Driver, error)
}

// Active returns the driver roster of the latest session, deduplicated by
// driver number. The first record seen for a number wins and output keeps
// first-seen order.
func Active(ctx context.Context, src Source) ([]domain.DriverSummary, error) {
	drivers, err := src.Drivers(ctx, openf1.SessionLatest)
	if err != nil {
		return nil, err
	}

	seen := make(map[int]bool, len(drivers))
	out := make([]domain.DriverSummary, 0, len(drivers))
	for _, d := range drivers {
		if seen[d.DriverNumber] {
			continue
		}
		seen[d.DriverNumber] = true
		out = append(out, domain.DriverSummary{
			DriverNumber: d.DriverNumber,
			FullName:     d.FullName,
			TeamName:     d.TeamName,
			TeamColour:   d.TeamColour,
			HeadshotURL:  d.HeadshotURL,
		})
	}
	return out, nil
}
