// profile/segments_test.go
// Copyright(c) 2025 jetfuelburn contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package profile

import (
	"errors"
	gomath "math"
	"testing"

	"github.com/sustainableaviation/jetfuelburn/units"
)

// lowCeilingClimb is an aircraft whose ceiling sits below the Mach-climb
// band and which publishes no Mach-climb data.
var lowCeilingClimb = ClimbPerformance{
	RateInitial:      units.FeetPerMinute(1000),
	Rate5000To15000:  units.FeetPerMinute(1500),
	Rate15000To24000: units.FeetPerMinute(1200),
	RateMach:         units.FeetPerMinute(gomath.NaN()),
	VInitial:         units.Knots(250),
	V5000To15000:     units.Knots(300),
	V15000To24000:    units.Knots(350),
	VMach:            units.Knots(gomath.NaN()),
}

var highCeilingClimb = ClimbPerformance{
	RateInitial:      units.FeetPerMinute(2000),
	Rate5000To15000:  units.FeetPerMinute(2200),
	Rate15000To24000: units.FeetPerMinute(1800),
	RateMach:         units.FeetPerMinute(1000),
	VInitial:         units.Knots(250),
	V5000To15000:     units.Knots(290),
	V15000To24000:    units.Knots(330),
	VMach:            units.Knots(440),
}

func almost(t *testing.T, what string, got, want, tol float64) {
	t.Helper()
	if gomath.Abs(got-want) > tol {
		t.Errorf("%s = %v, expected %v", what, got, want)
	}
}

func TestBuildClimbSegmentsLowCeiling(t *testing.T) {
	segs, err := BuildClimbSegments(units.Feet(22000), lowCeilingClimb)
	if err != nil {
		t.Fatalf("BuildClimbSegments: %v", err)
	}
	if len(segs) != 3 {
		t.Fatalf("got %d segments, expected 3: %+v", len(segs), segs)
	}
	for i, want := range []struct {
		name        string
		bottom, top float64 // ft
	}{
		{"initial", 0, 5000},
		{"5000_15000", 5000, 15000},
		{"15000_24000", 15000, 22000}, // clipped to the ceiling
	} {
		seg := segs[i]
		if seg.Name != want.name {
			t.Errorf("segment %d: name %q, expected %q", i, seg.Name, want.name)
		}
		almost(t, seg.Name+" bottom", seg.AltBottom.Feet(), want.bottom, 1e-9)
		almost(t, seg.Name+" top", seg.AltTop.Feet(), want.top, 1e-9)
		if seg.Time != 0 || seg.Distance != 0 {
			t.Errorf("segment %q: time/distance should start at zero", seg.Name)
		}
	}
}

func TestBuildClimbSegmentsHighCeiling(t *testing.T) {
	segs, err := BuildClimbSegments(units.Feet(35000), highCeilingClimb)
	if err != nil {
		t.Fatalf("BuildClimbSegments: %v", err)
	}
	if len(segs) != 4 {
		t.Fatalf("got %d segments, expected 4", len(segs))
	}
	mach := segs[3]
	if mach.Name != "mach" {
		t.Errorf("final segment %q, expected mach", mach.Name)
	}
	almost(t, "mach bottom", mach.AltBottom.Feet(), 24000, 1e-9)
	almost(t, "mach top", mach.AltTop.Feet(), 35000, 1e-9)
}

func TestBuildClimbSegmentsMonotonic(t *testing.T) {
	for _, ceiling := range []float64{16000, 22000, 24000, 30000, 41000, 55000} {
		segs, err := BuildClimbSegments(units.Feet(ceiling), highCeilingClimb)
		if err != nil {
			t.Fatalf("ceiling %v: %v", ceiling, err)
		}
		var prev units.Length
		for _, seg := range segs {
			if seg.AltTop < prev {
				t.Errorf("ceiling %v: %q tops at %v ft below %v ft", ceiling, seg.Name, seg.AltTop.Feet(), prev.Feet())
			}
			prev = seg.AltTop
		}
	}
}

func TestBuildClimbSegmentsCeilingDomain(t *testing.T) {
	// Below the band, at exactly 15000 ft (reference boundary arithmetic
	// rejects it), and above 55000 ft.
	for _, ceiling := range []float64{14000, 15000, 55001} {
		if _, err := BuildClimbSegments(units.Feet(ceiling), highCeilingClimb); !errors.Is(err, ErrCeilingOutOfRange) {
			t.Errorf("ceiling %v ft: expected ErrCeilingOutOfRange, got %v", ceiling, err)
		}
	}
}

func TestBuildClimbSegmentsMandatoryBands(t *testing.T) {
	perf := highCeilingClimb
	perf.Rate5000To15000 = 0
	if _, err := BuildClimbSegments(units.Feet(35000), perf); !errors.Is(err, ErrMissingBandPerformance) {
		t.Errorf("zero mandatory rate: expected ErrMissingBandPerformance, got %v", err)
	}
	perf = highCeilingClimb
	perf.V15000To24000 = units.Knots(gomath.NaN())
	if _, err := BuildClimbSegments(units.Feet(35000), perf); !errors.Is(err, ErrMissingBandPerformance) {
		t.Errorf("NaN mandatory speed: expected ErrMissingBandPerformance, got %v", err)
	}
}

// The builder stops at the first band without valid data even when a higher
// band carries some. This is a policy, not an error: the truncation point is
// asserted here so the behavior stays deliberate rather than assumed
// correct.
func TestClimbSegmentsStopAtFirstMissingBand(t *testing.T) {
	perf := highCeilingClimb
	perf.RateMach = 0
	segs, err := BuildClimbSegments(units.Feet(35000), perf)
	if err != nil {
		t.Fatalf("BuildClimbSegments: %v", err)
	}
	if len(segs) != 3 {
		t.Fatalf("got %d segments, expected truncation after 15000_24000", len(segs))
	}
	if segs[len(segs)-1].Name != "15000_24000" {
		t.Errorf("final segment %q, expected 15000_24000", segs[len(segs)-1].Name)
	}
}

var descentPerf = DescentPerformance{
	RateApproach:      units.FeetPerMinute(700),
	Rate24000To10000:  units.FeetPerMinute(2500),
	RateCruiseTo24000: units.FeetPerMinute(1500),
	VApproach:         units.Knots(180),
	V24000To10000:     units.Knots(290),
	VCruiseTo24000:    units.Knots(440),
}

func TestBuildDescentSegments(t *testing.T) {
	segs, err := BuildDescentSegments(units.Feet(35000), descentPerf)
	if err != nil {
		t.Fatalf("BuildDescentSegments: %v", err)
	}
	if len(segs) != 3 {
		t.Fatalf("got %d segments, expected 3", len(segs))
	}
	for i, want := range []struct {
		name        string
		bottom, top float64
	}{
		{"approach", 0, 10000},
		{"24000_to_10000", 10000, 24000},
		{"cruise_to_24000", 24000, 35000},
	} {
		seg := segs[i]
		if seg.Name != want.name {
			t.Errorf("segment %d: name %q, expected %q", i, seg.Name, want.name)
		}
		almost(t, seg.Name+" bottom", seg.AltBottom.Feet(), want.bottom, 1e-9)
		almost(t, seg.Name+" top", seg.AltTop.Feet(), want.top, 1e-9)
	}
}

func TestBuildDescentSegmentsLowCeiling(t *testing.T) {
	// Ceiling at or below 24000 ft: no initial-descent band, middle band
	// runs ceiling down to 10000 ft. 15000 ft exactly is allowed for
	// descent (unlike climb).
	segs, err := BuildDescentSegments(units.Feet(15000), descentPerf)
	if err != nil {
		t.Fatalf("BuildDescentSegments: %v", err)
	}
	if len(segs) != 2 {
		t.Fatalf("got %d segments, expected 2", len(segs))
	}
	almost(t, "middle top", segs[1].AltTop.Feet(), 15000, 1e-9)
	almost(t, "middle bottom", segs[1].AltBottom.Feet(), 10000, 1e-9)
}

// A descent band gap skips that band but keeps collecting higher ones,
// unlike the climb builder; the asymmetry is inherited from the reference
// implementation.
func TestDescentSegmentsSkipMissingBand(t *testing.T) {
	perf := descentPerf
	perf.Rate24000To10000 = 0
	segs, err := BuildDescentSegments(units.Feet(35000), perf)
	if err != nil {
		t.Fatalf("BuildDescentSegments: %v", err)
	}
	if len(segs) != 2 {
		t.Fatalf("got %d segments, expected 2", len(segs))
	}
	if segs[0].Name != "approach" || segs[1].Name != "cruise_to_24000" {
		t.Errorf("got %q, %q; expected approach then cruise_to_24000", segs[0].Name, segs[1].Name)
	}
}
