package telemetry

import (
	"testing"

	"openf1-service/internal/openf1"
)

func TestPitIndex_LastRecordWinsOnDuplicateLap(t *testing.T) {
	pits := []openf1.Pit{
		{LapNumber: 12, PitDuration: fp(22.1)},
		{LapNumber: 30, PitDuration: fp(21.0)},
		{LapNumber: 12, PitDuration: fp(24.9)},
	}

	index := PitIndex(pits)
	if len(index) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(index))
	}
	if got := index[12].PitDuration; got == nil || *got != 24.9 {
		t.Errorf("lap 12: expected last record (24.9), got %v", got)
	}
}

func TestPitStopList_KeepsDuplicatesAndOrder(t *testing.T) {
	pits := []openf1.Pit{
		{LapNumber: 12, PitDuration: fp(22.1), TotalDuration: fp(28.4)},
		{LapNumber: 30},
		{LapNumber: 12, PitDuration: fp(24.9)},
	}

	list := pitStopList(pits)
	if len(list) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(list))
	}
	if list[0].LapNumber != 12 || list[1].LapNumber != 30 || list[2].LapNumber != 12 {
		t.Errorf("upstream order not preserved: %+v", list)
	}
	if list[1].Duration != nil || list[1].TotalDuration != nil {
		t.Errorf("missing durations must stay nil: %+v", list[1])
	}
}

func TestPitStopList_EmptyInputIsEmptyList(t *testing.T) {
	list := pitStopList(nil)
	if list == nil || len(list) != 0 {
		t.Errorf("expected non-nil empty list, got %#v", list)
	}
}
