// reducedorder/regression_test.go
// Copyright(c) 2025 jetfuelburn contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package reducedorder

import (
	"errors"
	"testing"

	"github.com/sustainableaviation/jetfuelburn/units"
)

// Yanto and Liem coefficients for the B739; the two missions are the cases
// the correlation was published with.
var yantoB739 = RegressionModel{
	Name:  "yanto_etal",
	Shape: LinearRangePayload,
	Table: map[string]Terms{
		"B739": {CRange: 2.507, CPayload: 0.172, CConst: 503.32},
	},
}

func TestRegressionLinearRangePayload(t *testing.T) {
	for _, tc := range []struct {
		rangeKM, payloadKG, want float64
	}{
		{2943, 7885, 9237.641},
		{4724, 17918, 15428.284},
	} {
		fuel, err := yantoB739.Fuel("B739", units.Kilometers(tc.rangeKM), units.Kilograms(tc.payloadKG))
		if err != nil {
			t.Fatalf("Fuel(%v km, %v kg): %v", tc.rangeKM, tc.payloadKG, err)
		}
		almost(t, "fuel [kg]", fuel.Kilograms(), tc.want, 1e-6)
	}
}

func TestRegressionQuadraticRange(t *testing.T) {
	m := RegressionModel{
		Name:  "seymour_etal",
		Shape: QuadraticRange,
		Table: map[string]Terms{
			"A321": {CRange2: 1.8e-4, CRange: 2.64, CConst: 620},
		},
	}
	fuel, err := m.Fuel("A321", units.Kilometers(2000), 0)
	if err != nil {
		t.Fatalf("Fuel: %v", err)
	}
	almost(t, "fuel [kg]", fuel.Kilograms(), 1.8e-4*2000*2000+2.64*2000+620, 1e-9)
}

func TestRegressionDistanceBanded(t *testing.T) {
	m := RegressionModel{
		Name:  "myclimate",
		Shape: DistanceBanded,
		Table: map[string]Terms{
			"standard": {Bands: []Band{
				{UpTo: 1500, CRange2: 7e-6, CRange: 2.775, CConst: 1260.6},
				{CRange2: 2.83e-4, CRange: 1.91, CConst: 1420.5},
			}},
		},
	}

	// Edge lands in the first band (inclusive upper bound), beyond it the
	// unbounded final band applies.
	fuel, err := m.Fuel("standard", units.Kilometers(1500), 0)
	if err != nil {
		t.Fatalf("Fuel: %v", err)
	}
	almost(t, "band edge fuel [kg]", fuel.Kilograms(), 7e-6*1500*1500+2.775*1500+1260.6, 1e-9)

	fuel, err = m.Fuel("standard", units.Kilometers(6000), 0)
	if err != nil {
		t.Fatalf("Fuel: %v", err)
	}
	almost(t, "long haul fuel [kg]", fuel.Kilograms(), 2.83e-4*6000*6000+1.91*6000+1420.5, 1e-9)
}

func TestRegressionUnknownAircraft(t *testing.T) {
	if _, err := yantoB739.Fuel("A388", units.Kilometers(1000), 0); !errors.Is(err, ErrUnknownAircraft) {
		t.Errorf("expected ErrUnknownAircraft, got %v", err)
	}
}

func TestRegressionInputDomain(t *testing.T) {
	if _, err := yantoB739.Fuel("B739", units.Kilometers(-1), 0); !errors.Is(err, ErrNegativeRange) {
		t.Errorf("expected ErrNegativeRange, got %v", err)
	}
	if _, err := yantoB739.Fuel("B739", units.Kilometers(1000), units.Kilograms(-1)); !errors.Is(err, ErrNegativePayload) {
		t.Errorf("expected ErrNegativePayload, got %v", err)
	}
}

func TestRegressionAircraftSorted(t *testing.T) {
	m := RegressionModel{Table: map[string]Terms{"B739": {}, "A321": {}, "A319": {}}}
	got := m.Aircraft()
	want := []string{"A319", "A321", "B739"}
	if len(got) != len(want) {
		t.Fatalf("got %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, expected %v", got, want)
		}
	}
}
