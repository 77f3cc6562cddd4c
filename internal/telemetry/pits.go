package telemetry

import (
	"openf1-service/internal/domain"
	"openf1-service/internal/openf1"
)

// PitIndex builds an O(1) lookup of pit stops keyed by lap number. At most
// one pit stop per lap is assumed upstream; if the provider repeats a lap
// number the last record wins.
func PitIndex(pits []openf1.Pit) map[int]openf1.Pit {
	index := make(map[int]openf1.Pit, len(pits))
	for _, p := range pits {
		index[p.LapNumber] = p
	}
	return index
}

// pitStopList projects pit records into output entries in upstream list
// order. Duplicates are kept: the readable list should show every recorded
// stop even though PitIndex collapses them.
func pitStopList(pits []openf1.Pit) []domain.PitStopInfo {
	out := make([]domain.PitStopInfo, 0, len(pits))
	for _, p := range pits {
		out = append(out, domain.PitStopInfo{
			LapNumber:     p.LapNumber,
			Duration:      p.PitDuration,
			TotalDuration: p.TotalDuration,
		})
	}
	return out
}
