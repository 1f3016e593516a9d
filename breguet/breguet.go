// breguet/breguet.go
// Copyright(c) 2025 jetfuelburn contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

// Package breguet computes cruise fuel from the Breguet range equation,
// under constant-airspeed and constant-lift-coefficient flight, plus a
// combined model layering per-phase fuel flows, taxi, reserves and an
// optional alternate leg on top of the cruise equation.
package breguet

import (
	"errors"
	gomath "math"

	"github.com/sustainableaviation/jetfuelburn/units"
)

var (
	ErrNegativeRange = errors.New("range must not be negative")
	ErrLiftToDrag    = errors.New("lift-to-drag ratio must be greater than 1")
	ErrNegativeMass  = errors.New("mass after cruise must not be negative")
	ErrCruiseSpeed   = errors.New("cruise speed must be positive")
	ErrTSFC          = errors.New("thrust specific fuel consumption must be positive")
)

// The range equation convention uses 9.81, not the 9.8067 of the
// closed-form solver; the sources differ and both are kept as published.
const gravity = 9.81

// FuelFromRangeEquation returns the fuel burned over a cruise of range r:
//
//	m_f = m2 * (exp(R * TSFC * g / (L/D * v)) - 1)
//
// where m2 is the aircraft mass after cruise (OEW + payload + crew +
// reserves). Climb and descent are not considered. A zero range burns zero
// fuel.
func FuelFromRangeEquation(r units.Length, liftToDrag float64, massAfterCruise units.Mass, cruiseSpeed units.Speed, tsfc units.TSFC) (units.Mass, error) {
	switch {
	case r < 0:
		return 0, ErrNegativeRange
	case liftToDrag <= 1:
		return 0, ErrLiftToDrag
	case massAfterCruise < 0:
		return 0, ErrNegativeMass
	case cruiseSpeed <= 0:
		return 0, ErrCruiseSpeed
	case tsfc <= 0:
		return 0, ErrTSFC
	}
	if r == 0 {
		return 0, nil
	}

	arg := r.Meters() * tsfc.SecondsPerMeter() * gravity / (liftToDrag * cruiseSpeed.MetersPerSecond())
	return units.Kilograms(massAfterCruise.Kilograms() * (gomath.Exp(arg) - 1)), nil
}
