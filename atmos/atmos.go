// atmos/atmos.go
// Copyright(c) 2025 jetfuelburn contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

// Package atmos implements the International Standard Atmosphere for
// altitudes up to 20,000 m: a linear temperature lapse with the barometric
// density formula in the troposphere, and an isothermal exponential decay in
// the lower stratosphere above 11,000 m.
package atmos

import (
	"errors"
	"fmt"
	gomath "math"

	"github.com/sustainableaviation/jetfuelburn/units"
)

var ErrAltitudeOutOfRange = errors.New("altitude outside ISA model domain [0 m, 20000 m]")

const (
	seaLevelTemperature    = 288.15  // K
	lapseRate              = 0.0065  // K/m, troposphere
	stratosphereTemp       = 216.65  // K, constant in the lower stratosphere
	seaLevelDensity        = 1.225   // kg/m^3
	tropopauseDensity      = 0.36391 // kg/m^3 at 11,000 m
	tropopauseAltitude     = 11000.0 // m
	maxAltitude            = 20000.0 // m
	gravity                = 9.80665 // m/s^2
	universalGasConstant   = 8.3144598  // J/(mol K)
	molarMassAir           = 0.0289644  // kg/mol
	specificGasConstantAir = 287.052874 // J/(kg K)
	heatCapacityRatioAir   = 1.4
)

func checkAltitude(alt units.Length) error {
	if m := alt.Meters(); m < 0 || m > maxAltitude {
		return fmt.Errorf("%w: %.0f m", ErrAltitudeOutOfRange, m)
	}
	return nil
}

// Temperature returns the ISA air temperature at the given altitude.
func Temperature(alt units.Length) (units.Temperature, error) {
	if err := checkAltitude(alt); err != nil {
		return 0, err
	}
	if h := alt.Meters(); h <= tropopauseAltitude {
		return units.Kelvin(seaLevelTemperature - lapseRate*h), nil
	}
	return units.Kelvin(stratosphereTemp), nil
}

// Density returns the ISA air density at the given altitude.
func Density(alt units.Length) (units.Density, error) {
	if err := checkAltitude(alt); err != nil {
		return 0, err
	}
	h := alt.Meters()
	if h <= tropopauseAltitude {
		exp := gravity*molarMassAir/(universalGasConstant*lapseRate) - 1
		return units.KilogramsPerCubicMeter(
			seaLevelDensity * gomath.Pow((seaLevelTemperature-lapseRate*h)/seaLevelTemperature, exp)), nil
	}
	return units.KilogramsPerCubicMeter(
		tropopauseDensity * gomath.Exp(-gravity*molarMassAir*(h-tropopauseAltitude)/
			(universalGasConstant*stratosphereTemp))), nil
}

// SpeedOfSound returns the speed of sound in air at the given temperature.
func SpeedOfSound(t units.Temperature) units.Speed {
	return units.MetersPerSecond(gomath.Sqrt(heatCapacityRatioAir * specificGasConstantAir * t.Kelvin()))
}

// MachToTAS converts a Mach number to true airspeed at the given altitude.
func MachToTAS(mach float64, alt units.Length) (units.Speed, error) {
	t, err := Temperature(alt)
	if err != nil {
		return 0, err
	}
	return units.MetersPerSecond(mach * SpeedOfSound(t).MetersPerSecond()), nil
}

// DynamicPressure returns q = rho * V^2 / 2 at the given speed and altitude.
func DynamicPressure(speed units.Speed, alt units.Length) (units.Pressure, error) {
	rho, err := Density(alt)
	if err != nil {
		return 0, err
	}
	v := speed.MetersPerSecond()
	return units.Pascals(0.5 * rho.KilogramsPerCubicMeter() * v * v), nil
}
