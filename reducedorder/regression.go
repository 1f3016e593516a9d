// reducedorder/regression.go
// Copyright(c) 2025 jetfuelburn contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package reducedorder

import (
	"errors"
	"fmt"
	"slices"

	"golang.org/x/exp/maps"

	"github.com/sustainableaviation/jetfuelburn/units"
)

var (
	ErrNegativeRange   = errors.New("mission range must not be negative")
	ErrNegativePayload = errors.New("payload must not be negative")
	ErrNoBand          = errors.New("no distance band covers the mission range")
)

// Shape selects the formula a regression table is evaluated with. The
// published correlations all reduce to one of three algebraic forms; the
// tables differ, the evaluation does not.
type Shape int

const (
	// LinearRangePayload: fuel = cR*R + cP*PL + c0, R in km and PL in kg
	// (Yanto and Liem 2017).
	LinearRangePayload Shape = iota
	// QuadraticRange: fuel = cR2*R^2 + cR*R + c0, payload ignored
	// (Seymour et al. 2020).
	QuadraticRange
	// DistanceBanded: the mission range picks a band, then the band's
	// quadratic is evaluated (myclimate-style calculators).
	DistanceBanded
)

func (s Shape) String() string {
	switch s {
	case LinearRangePayload:
		return "linear_range_payload"
	case QuadraticRange:
		return "quadratic_range"
	case DistanceBanded:
		return "distance_banded"
	}
	return fmt.Sprintf("Shape(%d)", int(s))
}

// Band is one piece of a distance-banded correlation. UpTo is the inclusive
// upper edge in km; zero marks the final, unbounded band.
type Band struct {
	UpTo    float64 `json:"up_to"`
	CRange2 float64 `json:"c_range2"`
	CRange  float64 `json:"c_range"`
	CConst  float64 `json:"c_const"`
}

// Terms holds the fitted coefficients for one aircraft. Which fields are
// meaningful depends on the model's Shape; unused ones stay zero.
type Terms struct {
	CRange   float64 `json:"c_range"`
	CRange2  float64 `json:"c_range2"`
	CPayload float64 `json:"c_payload"`
	CConst   float64 `json:"c_const"`
	Bands    []Band  `json:"bands,omitempty"`
}

// RegressionModel is a coefficient table plus the shape to evaluate it with.
type RegressionModel struct {
	Name  string
	Shape Shape
	Table map[string]Terms
}

// Aircraft returns the sorted ICAO designators the model covers.
func (m *RegressionModel) Aircraft() []string {
	keys := maps.Keys(m.Table)
	slices.Sort(keys)
	return keys
}

// Fuel evaluates the model for the given aircraft, mission range and
// payload. Models whose shape does not use payload ignore it. The result is
// the raw correlation value; short missions on some tables extrapolate below
// zero and are returned as fitted, not clamped.
func (m *RegressionModel) Fuel(acft string, dist units.Length, payload units.Mass) (units.Mass, error) {
	if dist < 0 {
		return 0, ErrNegativeRange
	}
	if payload < 0 {
		return 0, ErrNegativePayload
	}
	terms, ok := m.Table[acft]
	if !ok {
		return 0, fmt.Errorf("%s: %q: %w", m.Name, acft, ErrUnknownAircraft)
	}

	r := dist.Kilometers()
	switch m.Shape {
	case LinearRangePayload:
		return units.Kilograms(terms.CRange*r + terms.CPayload*payload.Kilograms() + terms.CConst), nil
	case QuadraticRange:
		return units.Kilograms(terms.CRange2*r*r + terms.CRange*r + terms.CConst), nil
	case DistanceBanded:
		for _, band := range terms.Bands {
			if band.UpTo == 0 || r <= band.UpTo {
				return units.Kilograms(band.CRange2*r*r + band.CRange*r + band.CConst), nil
			}
		}
		return 0, fmt.Errorf("%s: %q at %.0f km: %w", m.Name, acft, r, ErrNoBand)
	}
	return 0, fmt.Errorf("%s: unsupported shape %v", m.Name, m.Shape)
}
