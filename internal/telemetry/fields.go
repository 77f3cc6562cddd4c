package telemetry

import "openf1-service/internal/openf1"

// The laps collection has carried two generations of field names for the
// same concepts. Resolution prefers the current name and falls back to the
// legacy alias; a lap where neither is set resolves to absent, not zero.

func lapDuration(lap openf1.Lap) *float64 {
	return coalesce(lap.LapDuration, lap.Duration)
}

func sectorTimes(lap openf1.Lap) (s1, s2, s3 *float64) {
	s1 = coalesce(lap.DurationSector1, lap.Sector1)
	s2 = coalesce(lap.DurationSector2, lap.Sector2)
	s3 = coalesce(lap.DurationSector3, lap.Sector3)
	return s1, s2, s3
}

func coalesce(preferred, legacy *float64) *float64 {
	if preferred != nil {
		return preferred
	}
	return legacy
}
