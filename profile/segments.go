// profile/segments.go
// Copyright(c) 2025 jetfuelburn contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

// Package profile implements the flight-profile segmentation engine:
// EUROCONTROL-style climb and descent segment generation, truncation to a
// cruise altitude or a distance budget, top-of-climb resolution for short
// hops, and reconstruction of the full altitude-vs-distance profile.
package profile

import (
	"errors"
	"fmt"
	gomath "math"
	"time"

	"github.com/sustainableaviation/jetfuelburn/units"
)

var (
	ErrCeilingOutOfRange        = errors.New("cruise ceiling outside the 15000-55000 ft band")
	ErrMissingBandPerformance   = errors.New("missing rate or ground speed for a mandatory performance band")
	ErrCruiseAltitudeOutOfRange = errors.New("cruise altitude outside the 0-55000 ft band")
	ErrSegmentOrder             = errors.New("segment altitudes not in ascending order")
	ErrZeroSegmentDistance      = errors.New("segment has no recorded distance")
	ErrNegativeDistance         = errors.New("distance must not be negative")
	ErrNoSegments               = errors.New("segment sequence is empty")
)

// Segment is one phase of a climb or descent. Climb segments are ordered
// from the ground up; descent segments are also ordered ground-to-cruise,
// with distances measured from the destination. Time and Distance are zero
// until a truncation pass populates them.
type Segment struct {
	Name        string
	AltBottom   units.Length
	AltTop      units.Length
	Rate        units.Speed // vertical rate magnitude
	GroundSpeed units.Speed
	Time        time.Duration
	Distance    units.Length
}

// SegmentSeq is an insertion-ordered sequence of segments, ascending in
// altitude. Truncation produces a new, possibly shorter sequence; a dropped
// segment is simply absent, never retained with zero extent.
type SegmentSeq []Segment

func (s SegmentSeq) Clone() SegmentSeq {
	return append(SegmentSeq(nil), s...)
}

func (s SegmentSeq) TotalDistance() units.Length {
	var d units.Length
	for _, seg := range s {
		d += seg.Distance
	}
	return d
}

func (s SegmentSeq) TotalTime() time.Duration {
	var t time.Duration
	for _, seg := range s {
		t += seg.Time
	}
	return t
}

// CruiseAltitude returns the top altitude of the final segment, the altitude
// the sequence climbs (or descends from) to.
func (s SegmentSeq) CruiseAltitude() (units.Length, error) {
	if len(s) == 0 {
		return 0, ErrNoSegments
	}
	return s[len(s)-1].AltTop, nil
}

// checkAscending enforces the ordering invariant: segment top altitudes must
// be non-decreasing along the sequence.
func (s SegmentSeq) checkAscending() error {
	var prevTop units.Length
	for _, seg := range s {
		if seg.AltTop < prevTop {
			return fmt.Errorf("%w: %q tops out at %.0f ft below preceding %.0f ft",
				ErrSegmentOrder, seg.Name, seg.AltTop.Feet(), prevTop.Feet())
		}
		prevTop = seg.AltTop
	}
	return nil
}

// ClimbPerformance holds the per-band climb rates and ground speeds from an
// aircraft performance database. A zero (or NaN) entry marks missing data.
type ClimbPerformance struct {
	RateInitial      units.Speed // 0 - 5000 ft
	Rate5000To15000  units.Speed
	Rate15000To24000 units.Speed
	RateMach         units.Speed // 24000 ft - ceiling
	VInitial         units.Speed
	V5000To15000     units.Speed
	V15000To24000    units.Speed
	VMach            units.Speed
}

// DescentPerformance mirrors ClimbPerformance for the three descent bands.
type DescentPerformance struct {
	RateApproach      units.Speed // 10000 - 0 ft
	Rate24000To10000  units.Speed
	RateCruiseTo24000 units.Speed
	VApproach         units.Speed
	V24000To10000     units.Speed
	VCruiseTo24000    units.Speed
}

func bandMissing(rate, speed units.Speed) bool {
	r, v := rate.MetersPerSecond(), speed.MetersPerSecond()
	return r == 0 || gomath.IsNaN(r) || v == 0 || gomath.IsNaN(v)
}

// band pairs a segment name with its performance data and altitude span.
// present is false for bands the cruise ceiling excludes.
type band struct {
	name        string
	rate, speed units.Speed
	bottom, top units.Length
	present     bool
}

// BuildClimbSegments generates the ordered climb segment sequence for an
// aircraft with the given cruise ceiling, using the EUROCONTROL bands:
// initial climb to 5000 ft, climb to 15000 ft, climb to 24000 ft, and Mach
// climb from 24000 ft to the ceiling.
//
// The three bands below 24000 ft are mandatory; a missing rate or speed
// there is an error. The Mach band is optional: if its data is missing, band
// generation simply stops, yielding a valid partial sequence. More
// generally, generation stops at the FIRST band without valid data, so a gap
// silently discards every higher band as well. That truncation is a
// documented policy, not an error, but it means upstream data-quality gaps
// surface only as a short profile.
func BuildClimbSegments(ceiling units.Length, perf ClimbPerformance) (SegmentSeq, error) {
	for _, b := range []struct {
		name        string
		rate, speed units.Speed
	}{
		{"initial", perf.RateInitial, perf.VInitial},
		{"5000_15000", perf.Rate5000To15000, perf.V5000To15000},
		{"15000_24000", perf.Rate15000To24000, perf.V15000To24000},
	} {
		if bandMissing(b.rate, b.speed) {
			return nil, fmt.Errorf("%w: climb band %q", ErrMissingBandPerformance, b.name)
		}
	}

	bands := []band{
		{name: "initial", rate: perf.RateInitial, speed: perf.VInitial,
			bottom: units.Feet(0), top: units.Feet(5000), present: true},
		{name: "5000_15000", rate: perf.Rate5000To15000, speed: perf.V5000To15000,
			bottom: units.Feet(5000), top: units.Feet(15000), present: true},
		{name: "15000_24000", rate: perf.Rate15000To24000, speed: perf.V15000To24000,
			bottom: units.Feet(15000), top: units.Feet(24000), present: true},
		{name: "mach", rate: perf.RateMach, speed: perf.VMach},
	}

	ft := ceiling.Feet()
	switch {
	case ft < 15000:
		return nil, fmt.Errorf("%w: ceiling %.0f ft below 15000 ft", ErrCeilingOutOfRange, ft)
	case ft > 15000 && ft <= 24000:
		bands[2].top = ceiling
	case ft > 24000 && ft <= 55000:
		bands[3].bottom = units.Feet(24000)
		bands[3].top = ceiling
		bands[3].present = true
	default:
		// Includes the ceiling == 15000 ft corner, which the reference
		// boundary arithmetic rejects along with ceilings above 55000 ft.
		return nil, fmt.Errorf("%w: ceiling %.0f ft", ErrCeilingOutOfRange, ft)
	}

	var segs SegmentSeq
	for _, b := range bands {
		if !b.present || bandMissing(b.rate, b.speed) {
			break // stop-at-first-missing-band policy
		}
		segs = append(segs, Segment{
			Name:        b.name,
			AltBottom:   b.bottom,
			AltTop:      b.top,
			Rate:        b.rate,
			GroundSpeed: b.speed,
		})
	}
	return segs, nil
}

// BuildDescentSegments generates the ordered descent segment sequence,
// ground-to-cruise: approach below 10000 ft, descent 24000 to 10000 ft, and
// initial descent from the ceiling to 24000 ft.
//
// Unlike the climb builder, a band with missing data is skipped while later
// bands are still collected; the climb/descent asymmetry is inherited from
// the reference implementation.
func BuildDescentSegments(ceiling units.Length, perf DescentPerformance) (SegmentSeq, error) {
	bands := []band{
		{name: "approach", rate: perf.RateApproach, speed: perf.VApproach,
			bottom: units.Feet(0), top: units.Feet(10000), present: true},
		{name: "24000_to_10000", rate: perf.Rate24000To10000, speed: perf.V24000To10000},
		{name: "cruise_to_24000", rate: perf.RateCruiseTo24000, speed: perf.VCruiseTo24000},
	}

	ft := ceiling.Feet()
	switch {
	case ft < 15000:
		return nil, fmt.Errorf("%w: ceiling %.0f ft below 15000 ft", ErrCeilingOutOfRange, ft)
	case ft <= 24000:
		// No initial-descent band; the middle band runs from the ceiling
		// down to 10000 ft.
		bands[1].bottom = units.Feet(10000)
		bands[1].top = ceiling
		bands[1].present = true
	case ft <= 55000:
		bands[1].bottom = units.Feet(10000)
		bands[1].top = units.Feet(24000)
		bands[1].present = true
		bands[2].bottom = units.Feet(24000)
		bands[2].top = ceiling
		bands[2].present = true
	default:
		return nil, fmt.Errorf("%w: ceiling %.0f ft above 55000 ft", ErrCeilingOutOfRange, ft)
	}

	var segs SegmentSeq
	for _, b := range bands {
		if !b.present || bandMissing(b.rate, b.speed) {
			continue
		}
		segs = append(segs, Segment{
			Name:        b.name,
			AltBottom:   b.bottom,
			AltTop:      b.top,
			Rate:        b.rate,
			GroundSpeed: b.speed,
		})
	}
	return segs, nil
}
