// breguet/breguet_test.go
// Copyright(c) 2025 jetfuelburn contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package breguet

import (
	"errors"
	gomath "math"
	"testing"

	"github.com/sustainableaviation/jetfuelburn/units"
)

func almost(t *testing.T, what string, got, want, tol float64) {
	t.Helper()
	if gomath.Abs(got-want) > tol {
		t.Errorf("%s = %v, expected %v", what, got, want)
	}
}

// Example 5.6 in Sadraey (2023): a jet transport with 30000 kg of fuel
// cruising 4143 km. The textbook's 100 t mass includes the fuel, so the
// after-cruise mass is 70 t; TSFC 0.8 N/(N h) converts to 22.653 mg/(N s).
func TestFuelFromRangeEquationTextbook(t *testing.T) {
	fuel, err := FuelFromRangeEquation(
		units.Kilometers(4143),
		15.4,
		units.Kilograms(70000),
		units.KilometersPerHour(603.4),
		units.MilligramsPerNewtonSecond(0.8/(9.81*3600)*1e6))
	if err != nil {
		t.Fatalf("FuelFromRangeEquation: %v", err)
	}
	almost(t, "fuel [kg]", fuel.Kilograms(), 30000.52, 0.1)
}

func TestFuelFromRangeEquationLongHaul(t *testing.T) {
	fuel, err := FuelFromRangeEquation(
		units.NauticalMiles(2000),
		18,
		units.Tonnes(100),
		units.KilometersPerHour(800),
		units.MilligramsPerNewtonSecond(17))
	if err != nil {
		t.Fatalf("FuelFromRangeEquation: %v", err)
	}
	almost(t, "fuel [kg]", fuel.Kilograms(), 16699.14, 0.1)
}

func TestFuelFromRangeEquationZeroRange(t *testing.T) {
	fuel, err := FuelFromRangeEquation(0, 18, units.Tonnes(100), units.KilometersPerHour(800), units.MilligramsPerNewtonSecond(17))
	if err != nil {
		t.Fatalf("FuelFromRangeEquation: %v", err)
	}
	if fuel != 0 {
		t.Errorf("zero range burned %v kg", fuel.Kilograms())
	}
}

func TestFuelFromRangeEquationDomain(t *testing.T) {
	ld := 18.0
	m2 := units.Tonnes(100)
	v := units.KilometersPerHour(800)
	tsfc := units.MilligramsPerNewtonSecond(17)

	for _, tc := range []struct {
		name string
		err  error
		call func() (units.Mass, error)
	}{
		{"negative range", ErrNegativeRange, func() (units.Mass, error) {
			return FuelFromRangeEquation(units.Kilometers(-1), ld, m2, v, tsfc)
		}},
		{"lift to drag at 1", ErrLiftToDrag, func() (units.Mass, error) {
			return FuelFromRangeEquation(units.Kilometers(100), 1, m2, v, tsfc)
		}},
		{"negative mass", ErrNegativeMass, func() (units.Mass, error) {
			return FuelFromRangeEquation(units.Kilometers(100), ld, units.Kilograms(-1), v, tsfc)
		}},
		{"zero speed", ErrCruiseSpeed, func() (units.Mass, error) {
			return FuelFromRangeEquation(units.Kilometers(100), ld, m2, 0, tsfc)
		}},
		{"zero tsfc", ErrTSFC, func() (units.Mass, error) {
			return FuelFromRangeEquation(units.Kilometers(100), ld, m2, v, 0)
		}},
	} {
		if _, err := tc.call(); !errors.Is(err, tc.err) {
			t.Errorf("%s: expected %v, got %v", tc.name, tc.err, err)
		}
	}
}
