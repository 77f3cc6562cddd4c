package telemetry

import (
	"testing"

	"openf1-service/internal/openf1"
)

func fp(v float64) *float64 { return &v }

func TestLapDuration_PrefersCurrentFieldName(t *testing.T) {
	lap := openf1.Lap{LapDuration: fp(92.5), Duration: fp(90.0)}
	got := lapDuration(lap)
	if got == nil || *got != 92.5 {
		t.Errorf("expected 92.5, got %v", got)
	}
}

func TestLapDuration_FallsBackToLegacy(t *testing.T) {
	lap := openf1.Lap{Duration: fp(90.0)}
	got := lapDuration(lap)
	if got == nil || *got != 90.0 {
		t.Errorf("expected 90.0, got %v", got)
	}
}

func TestLapDuration_AbsentIsNil(t *testing.T) {
	if got := lapDuration(openf1.Lap{}); got != nil {
		t.Errorf("expected nil, got %v", *got)
	}
}

func TestSectorTimes_MixedGenerations(t *testing.T) {
	lap := openf1.Lap{
		DurationSector1: fp(28.1),
		Sector2:         fp(38.489),
		// sector 3 absent in both generations
	}

	s1, s2, s3 := sectorTimes(lap)
	if s1 == nil || *s1 != 28.1 {
		t.Errorf("sector1: expected 28.1, got %v", s1)
	}
	if s2 == nil || *s2 != 38.489 {
		t.Errorf("sector2: expected 38.489, got %v", s2)
	}
	if s3 != nil {
		t.Errorf("sector3: expected nil, got %v", *s3)
	}
}

func TestSectorTimes_ZeroIsNotAbsent(t *testing.T) {
	lap := openf1.Lap{DurationSector1: fp(0)}
	s1, _, _ := sectorTimes(lap)
	if s1 == nil || *s1 != 0 {
		t.Errorf("expected explicit 0, got %v", s1)
	}
}
