// atmos/atmos_test.go
// Copyright(c) 2025 jetfuelburn contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package atmos

import (
	"errors"
	gomath "math"
	"testing"

	"github.com/sustainableaviation/jetfuelburn/units"
)

func TestAtmosphericConditions(t *testing.T) {
	type tc struct {
		altM    float64
		density float64 // kg/m^3
		tempC   float64
	}
	// Tropopause and sea-level reference values, plus one troposphere and
	// one stratosphere sample.
	for _, c := range []tc{
		{0, 1.225, 15.0},
		{10000, 0.4127, -50.0},
		{11000, 0.3648, -56.5},
		{15000, 0.19367, -56.5},
	} {
		rho, err := Density(units.Meters(c.altM))
		if err != nil {
			t.Fatalf("Density(%v): %v", c.altM, err)
		}
		if rel := gomath.Abs(rho.KilogramsPerCubicMeter()-c.density) / c.density; rel > 0.01 {
			t.Errorf("Density(%v m) = %v kg/m^3, expected %v within 1%%", c.altM, rho.KilogramsPerCubicMeter(), c.density)
		}
		temp, err := Temperature(units.Meters(c.altM))
		if err != nil {
			t.Fatalf("Temperature(%v): %v", c.altM, err)
		}
		if gomath.Abs(temp.Celsius()-c.tempC) > 0.1 {
			t.Errorf("Temperature(%v m) = %v C, expected %v", c.altM, temp.Celsius(), c.tempC)
		}
	}
}

func TestAltitudeDomain(t *testing.T) {
	for _, alt := range []units.Length{units.Meters(-1), units.Meters(20001)} {
		if _, err := Density(alt); !errors.Is(err, ErrAltitudeOutOfRange) {
			t.Errorf("Density(%v m): expected ErrAltitudeOutOfRange, got %v", alt.Meters(), err)
		}
		if _, err := Temperature(alt); !errors.Is(err, ErrAltitudeOutOfRange) {
			t.Errorf("Temperature(%v m): expected ErrAltitudeOutOfRange, got %v", alt.Meters(), err)
		}
		if _, err := MachToTAS(0.8, alt); !errors.Is(err, ErrAltitudeOutOfRange) {
			t.Errorf("MachToTAS(%v m): expected ErrAltitudeOutOfRange, got %v", alt.Meters(), err)
		}
	}
	// Domain endpoints are inclusive.
	if _, err := Density(units.Meters(0)); err != nil {
		t.Errorf("Density(0): %v", err)
	}
	if _, err := Density(units.Meters(20000)); err != nil {
		t.Errorf("Density(20000): %v", err)
	}
}

func TestMachToTAS(t *testing.T) {
	type tc struct {
		mach    float64
		altM    float64
		kphWant float64
	}
	for _, c := range []tc{
		{0.8, 10000, 862.45},
		{0.74, 9144, 807.65}, // the Lee et al. B732 cruise condition
	} {
		v, err := MachToTAS(c.mach, units.Meters(c.altM))
		if err != nil {
			t.Fatalf("MachToTAS(%v, %v): %v", c.mach, c.altM, err)
		}
		if rel := gomath.Abs(v.KilometersPerHour()-c.kphWant) / c.kphWant; rel > 0.01 {
			t.Errorf("MachToTAS(%v, %v m) = %v kph, expected %v", c.mach, c.altM, v.KilometersPerHour(), c.kphWant)
		}
	}
}

func TestDynamicPressure(t *testing.T) {
	// q = rho V^2 / 2 at sea level with V = 100 m/s: 0.5 * 1.225 * 1e4.
	q, err := DynamicPressure(units.MetersPerSecond(100), units.Meters(0))
	if err != nil {
		t.Fatalf("DynamicPressure: %v", err)
	}
	if gomath.Abs(q.Pascals()-6125) > 1e-6 {
		t.Errorf("q = %v Pa, expected 6125", q.Pascals())
	}
}
