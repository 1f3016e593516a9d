// allocation/allocation.go
// Copyright(c) 2025 jetfuelburn contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

// Package allocation splits a flight's fuel burn across cabin classes using
// the allocation-by-area method recommended by IATA RP 1726 and the ICAO
// carbon emissions calculator.
package allocation

import (
	"errors"
	"fmt"

	"github.com/sustainableaviation/jetfuelburn/units"
)

var (
	ErrFuelPerFlight = errors.New("fuel per flight must be positive")
	ErrLoadFactor    = errors.New("load factor must be between 0 and 1")
	ErrNoSeats       = errors.New("at least one cabin class must have seats")
)

// CabinClass describes one seating class: its size factor relative to an
// economy seat (IATA RP 1726 Section 2.4.2 recommends 1.5 for narrow-body
// business and up to 5.0 for wide-body first), its seat count, and the
// fraction of those seats occupied. An absent class is the zero value.
type CabinClass struct {
	SizeFactor float64
	Seats      int
	LoadFactor float64
}

// Cabin is the aircraft's seating layout.
type Cabin struct {
	Economy        CabinClass
	PremiumEconomy CabinClass
	Business       CabinClass
	First          CabinClass
}

// PerPassenger is the fuel attributed to one passenger in each class.
type PerPassenger struct {
	Economy        units.Mass
	PremiumEconomy units.Mass
	Business       units.Mass
	First          units.Mass
}

func (c CabinClass) validate(name string) error {
	if c.LoadFactor < 0 || c.LoadFactor > 1 {
		return fmt.Errorf("%s: %w", name, ErrLoadFactor)
	}
	return nil
}

// ByArea allocates fuel to each occupied seat in proportion to the floor
// area its class occupies:
//
//	f_i = (1 / L_i) * s_i * F / sum_j(s_j * S_j)
//
// A class with no seats or a zero load factor carries no passengers and is
// allocated zero fuel rather than a division by zero.
func ByArea(fuelPerFlight units.Mass, cabin Cabin) (PerPassenger, error) {
	if fuelPerFlight <= 0 {
		return PerPassenger{}, ErrFuelPerFlight
	}
	classes := []struct {
		name string
		c    CabinClass
	}{
		{"economy", cabin.Economy},
		{"premium economy", cabin.PremiumEconomy},
		{"business", cabin.Business},
		{"first", cabin.First},
	}

	var area float64
	for _, cl := range classes {
		if err := cl.c.validate(cl.name); err != nil {
			return PerPassenger{}, err
		}
		area += cl.c.SizeFactor * float64(cl.c.Seats)
	}
	if area <= 0 {
		return PerPassenger{}, ErrNoSeats
	}

	perClass := func(c CabinClass) units.Mass {
		if c.Seats == 0 || c.LoadFactor == 0 {
			return 0
		}
		return units.Mass(c.SizeFactor * fuelPerFlight.Kilograms() / (area * c.LoadFactor))
	}
	return PerPassenger{
		Economy:        perClass(cabin.Economy),
		PremiumEconomy: perClass(cabin.PremiumEconomy),
		Business:       perClass(cabin.Business),
		First:          perClass(cabin.First),
	}, nil
}
