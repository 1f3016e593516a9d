// reducedorder/lee.go
// Copyright(c) 2025 jetfuelburn contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

// Package reducedorder implements reduced-order fuel burn models: the
// Lee and Chatterji (2010) closed-form takeoff-weight solver and a generic
// coefficient-table regression evaluator covering the published
// linear/quadratic/distance-banded correlations.
package reducedorder

import (
	"errors"
	gomath "math"

	"github.com/sustainableaviation/jetfuelburn/atmos"
	vmath "github.com/sustainableaviation/jetfuelburn/math"
	"github.com/sustainableaviation/jetfuelburn/units"
)

var ErrUnknownAircraft = errors.New("aircraft designator not found in model data")

// Lee et al. Section II D: fixed reserve and maneuver fuel fractions.
const (
	leeReserveFraction  = 0.08
	leeManeuverFraction = 0.007
)

// LeeCoefficients are the six empirically fitted correction-term
// coefficients of Lee et al. Table 2; the increment fraction they produce is
// a quadratic function of cruise altitude [m] and speed [m/s].
type LeeCoefficients struct {
	K1 float64 `json:"k1"` // h^2
	K2 float64 `json:"k2"` // h*V
	K3 float64 `json:"k3"` // V^2
	K4 float64 `json:"k4"` // h
	K5 float64 `json:"k5"` // V
	K6 float64 `json:"k6"` // constant
}

func (k LeeCoefficients) increment(h, v float64) float64 {
	return k.K1*h*h + k.K2*h*v + k.K3*v*v + k.K4*h + k.K5*v + k.K6
}

// LeeEnvelope is the aircraft performance envelope the Lee et al. solver
// operates on: certification weights, wing area, the drag polar, the cruise
// fuel-flow coefficient, and the correction-term coefficients.
type LeeEnvelope struct {
	EmptyWeight    units.Force
	MaxPayload     units.Force
	MaxTakeoff     units.Force
	MaxFuel        units.Force
	WingArea       units.Area
	CD0            float64 // zero-lift drag coefficient
	CD2            float64 // induced drag coefficient
	FuelFlowCruise float64 // cruise fuel-flow coefficient, 1/s
	Coefficients   LeeCoefficients
}

// LeeFuel solves the Lee et al. closed-form system for the fuel burned and
// payload carried on a mission of the given distance at the given cruise
// altitude and speed.
//
// The solver derives the zero-fuel weight from a direct rearrangement of the
// governing energy balance and then branches on feasibility: payload-limited
// aircraft fly with maximum payload and the takeoff weight follows from a
// quadratic; otherwise fuel is the gap between MTOW and zero-fuel weight,
// with a second quadratic resolving the payload when that gap exceeds tank
// capacity. Both quadratics take the + root; the - root corresponds to
// weights outside the physical envelope.
//
// Two reference quirks are preserved deliberately: the tangent term
// tan(A2*d) diverges as A2*d approaches pi/2 (very long missions) and is
// not clamped, and in the fuel-capacity-limited branch the reported fuel
// remains MTOW minus zero-fuel weight even though it exceeds tank capacity,
// matching the published figures.
func LeeFuel(env LeeEnvelope, alt units.Length, speed units.Speed, dist units.Length) (fuel, payload units.Mass, err error) {
	qp, err := atmos.DynamicPressure(speed, alt)
	if err != nil {
		return 0, 0, err
	}

	q := qp.Pascals()
	s := env.WingArea.SquareMeters()
	h := alt.Meters()
	v := speed.MetersPerSecond()
	d := dist.Meters()
	wE := env.EmptyWeight.Newtons()
	wMPLD := env.MaxPayload.Newtons()
	wMTO := env.MaxTakeoff.Newtons()
	wMF := env.MaxFuel.Newtons()

	a1 := (1 / (q * s)) * gomath.Sqrt(env.CD2/env.CD0)
	a2 := (env.FuelFlowCruise / v) * gomath.Sqrt(env.CD2*env.CD0)
	ad := gomath.Tan(a2 * d)
	a3 := env.Coefficients.increment(h, v) + leeManeuverFraction
	a4 := 1 + leeReserveFraction

	// Zero-fuel weight from the governing energy balance.
	wMZF := (-a1*a3*ad*wMTO*wMTO + (1-a3)*wMTO - ad/a1) / (a4 * (a1*ad*wMTO + 1))

	var wF, wPLD float64
	if wE+wMPLD < wMZF {
		// Payload-limited: max payload aboard, takeoff weight from the
		// quadratic in W_TO.
		wPLD = wMPLD
		wZF := wE + wPLD
		wTO, rootErr := vmath.PositiveQuadraticRoot(
			a1*a3*ad,
			a1*a4*ad*wZF+a3-1,
			a4*wZF+ad/a1)
		if rootErr != nil {
			return 0, 0, rootErr
		}
		wF = wTO - wPLD
	} else {
		wF = wMTO - wMZF
		if wF < wMF {
			// Weight-limited: fuel fits the tanks, payload fills to the
			// zero-fuel weight.
			wPLD = wMZF - wE
		} else {
			// Fuel-capacity-limited: tanks full, payload from the second
			// quadratic.
			wPLD, err = vmath.PositiveQuadraticRoot(
				a1*ad*(a3+a4),
				2*a1*ad*(a3+a4)*wE+a1*ad*(2*a3+a4)*wMF+a3+a4-1,
				a1*ad*(a3+a4)*wE*wE+
					a1*ad*(2*a3+a4)*wE*wMF+
					a1*a3*ad*wMF*wMF+
					(a3+a4-1)*wE+
					(a3-1)*wMF+
					ad/a1)
			if err != nil {
				return 0, 0, err
			}
		}
	}

	return units.Newtons(wF).Mass(), units.Newtons(wPLD).Mass(), nil
}
