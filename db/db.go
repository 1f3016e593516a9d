// db/db.go
// Copyright(c) 2025 jetfuelburn contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

// Package db holds the static aircraft databases embedded in the binary:
// EUROCONTROL-style climb and descent performance, the Lee et al.
// correction-term coefficients, the Yanto and Liem regression table, and
// US DOT T2 fuel statistics. The data is parsed once at InitDB and is
// read-only afterwards.
package db

import (
	"embed"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/sustainableaviation/jetfuelburn/atmos"
	"github.com/sustainableaviation/jetfuelburn/profile"
	"github.com/sustainableaviation/jetfuelburn/reducedorder"
	"github.com/sustainableaviation/jetfuelburn/units"
	"github.com/sustainableaviation/jetfuelburn/util"
)

//go:embed resources
var resourcesFS embed.FS

var DB *StaticDatabase

var (
	ErrUnknownAircraft = errors.New("aircraft designator not found in database")
	ErrNegativeInput   = errors.New("range and weight must not be negative")
)

type StaticDatabase struct {
	Performance     map[string]AircraftPerformance
	LeeCoefficients map[string]reducedorder.LeeCoefficients
	Yanto           *reducedorder.RegressionModel
	USDOT           map[string]USDOTStatistics

	// profileCache stores recently assembled flight profiles so batch runs
	// over the same aircraft/route pairs skip the resolver.
	profileCache *expirable.LRU[string, profile.FlightProfile]
}

// AircraftPerformance is one aircraft's climb/descent band data plus its
// service ceiling and cruise Mach number. The Mach-band ground speeds are
// already converted to TAS at the ceiling.
type AircraftPerformance struct {
	ICAO       string
	Name       string
	Ceiling    units.Length
	CruiseMach float64
	Climb      profile.ClimbPerformance
	Descent    profile.DescentPerformance
}

// USDOTStatistics is one aircraft's fleet-average fuel intensity from the
// US DOT T2 summary: fuel per revenue seat-km [kg/km] and per revenue
// weight-km [1/km].
type USDOTStatistics struct {
	FuelPerSeatKilometer   float64 `json:"fuel_per_seat_km"`
	FuelPerWeightKilometer float64 `json:"fuel_per_weight_km"`
	Seats                  int     `json:"seats"`
}

func InitDB() {
	db := &StaticDatabase{
		profileCache: expirable.NewLRU[string, profile.FlightProfile](64, nil, 4*time.Hour),
	}

	var wg sync.WaitGroup
	wg.Add(4)
	go func() { defer wg.Done(); db.Performance = parsePerformance() }()
	go func() { defer wg.Done(); db.LeeCoefficients = parseLeeCoefficients() }()
	go func() { defer wg.Done(); db.Yanto = parseYanto() }()
	go func() { defer wg.Done(); db.USDOT = parseUSDOT() }()
	wg.Wait()

	DB = db
}

type climbJSON struct {
	RateInitial      float64 `json:"rate_initial_fpm"`
	VInitial         float64 `json:"v_initial_kt"`
	Rate5000To15000  float64 `json:"rate_5000_15000_fpm"`
	V5000To15000     float64 `json:"v_5000_15000_kt"`
	Rate15000To24000 float64 `json:"rate_15000_24000_fpm"`
	V15000To24000    float64 `json:"v_15000_24000_kt"`
	RateMach         float64 `json:"rate_mach_fpm"`
	Mach             float64 `json:"mach"`
}

type descentJSON struct {
	RateCruiseTo24000 float64 `json:"rate_cruise_24000_fpm"`
	Mach              float64 `json:"mach"`
	Rate24000To10000  float64 `json:"rate_24000_10000_fpm"`
	V24000To10000     float64 `json:"v_24000_10000_kt"`
	RateApproach      float64 `json:"rate_approach_fpm"`
	VApproach         float64 `json:"v_approach_kt"`
}

type aircraftJSON struct {
	ICAO      string      `json:"icao"`
	Name      string      `json:"name"`
	CeilingFt float64     `json:"ceiling_ft"`
	Climb     climbJSON   `json:"climb"`
	Descent   descentJSON `json:"descent"`
}

func parsePerformance() map[string]AircraftPerformance {
	r := util.LoadResource(resourcesFS, "resources/eurocontrol-performance.json")
	defer r.Close()

	var acStruct struct {
		Aircraft []aircraftJSON `json:"aircraft"`
	}
	if err := util.UnmarshalJSON(r, &acStruct); err != nil {
		panic(fmt.Sprintf("eurocontrol-performance.json: %v", err))
	}

	perf := make(map[string]AircraftPerformance)
	for _, ac := range acStruct.Aircraft {
		ceiling := units.Feet(ac.CeilingFt)

		// The Mach bands publish a Mach number; the profile builder wants
		// ground speeds, so convert to TAS at the ceiling.
		machTAS, err := atmos.MachToTAS(ac.Climb.Mach, ceiling)
		if err != nil {
			panic(fmt.Sprintf("%s: ceiling %v ft: %v", ac.ICAO, ac.CeilingFt, err))
		}
		descentMachTAS, err := atmos.MachToTAS(ac.Descent.Mach, ceiling)
		if err != nil {
			panic(fmt.Sprintf("%s: ceiling %v ft: %v", ac.ICAO, ac.CeilingFt, err))
		}

		perf[ac.ICAO] = AircraftPerformance{
			ICAO:       ac.ICAO,
			Name:       ac.Name,
			Ceiling:    ceiling,
			CruiseMach: ac.Climb.Mach,
			Climb: profile.ClimbPerformance{
				RateInitial:      units.FeetPerMinute(ac.Climb.RateInitial),
				Rate5000To15000:  units.FeetPerMinute(ac.Climb.Rate5000To15000),
				Rate15000To24000: units.FeetPerMinute(ac.Climb.Rate15000To24000),
				RateMach:         units.FeetPerMinute(ac.Climb.RateMach),
				VInitial:         units.Knots(ac.Climb.VInitial),
				V5000To15000:     units.Knots(ac.Climb.V5000To15000),
				V15000To24000:    units.Knots(ac.Climb.V15000To24000),
				VMach:            machTAS,
			},
			Descent: profile.DescentPerformance{
				RateApproach:      units.FeetPerMinute(ac.Descent.RateApproach),
				Rate24000To10000:  units.FeetPerMinute(ac.Descent.Rate24000To10000),
				RateCruiseTo24000: units.FeetPerMinute(ac.Descent.RateCruiseTo24000),
				VApproach:         units.Knots(ac.Descent.VApproach),
				V24000To10000:     units.Knots(ac.Descent.V24000To10000),
				VCruiseTo24000:    descentMachTAS,
			},
		}
	}
	return perf
}

func parseLeeCoefficients() map[string]reducedorder.LeeCoefficients {
	r := util.LoadResource(resourcesFS, "resources/lee-coefficients.json")
	defer r.Close()

	var coeffs map[string]reducedorder.LeeCoefficients
	if err := util.UnmarshalJSON(r, &coeffs); err != nil {
		panic(fmt.Sprintf("lee-coefficients.json: %v", err))
	}
	return coeffs
}

func parseYanto() *reducedorder.RegressionModel {
	r := util.LoadResource(resourcesFS, "resources/yanto-coefficients.json")
	defer r.Close()

	var table map[string]reducedorder.Terms
	if err := util.UnmarshalJSON(r, &table); err != nil {
		panic(fmt.Sprintf("yanto-coefficients.json: %v", err))
	}
	return &reducedorder.RegressionModel{
		Name:  "yanto_etal",
		Shape: reducedorder.LinearRangePayload,
		Table: table,
	}
}

func parseUSDOT() map[string]USDOTStatistics {
	r := util.LoadResource(resourcesFS, "resources/usdot-2023.json")
	defer r.Close()

	var stats map[string]USDOTStatistics
	if err := util.UnmarshalJSON(r, &stats); err != nil {
		panic(fmt.Sprintf("usdot-2023.json: %v", err))
	}
	return stats
}

func (d *StaticDatabase) AircraftPerformance(icao string) (AircraftPerformance, error) {
	ap, ok := d.Performance[icao]
	if !ok {
		return AircraftPerformance{}, fmt.Errorf("%q: %w", icao, ErrUnknownAircraft)
	}
	return ap, nil
}

func (d *StaticDatabase) LeeCoefficientsFor(icao string) (reducedorder.LeeCoefficients, error) {
	k, ok := d.LeeCoefficients[icao]
	if !ok {
		return reducedorder.LeeCoefficients{}, fmt.Errorf("%q: %w", icao, ErrUnknownAircraft)
	}
	return k, nil
}

// USDOTFuelPerSeat returns the fleet-average fuel burned carrying one
// revenue seat over the given range.
func (d *StaticDatabase) USDOTFuelPerSeat(icao string, r units.Length) (units.Mass, error) {
	if r < 0 {
		return 0, ErrNegativeInput
	}
	st, ok := d.USDOT[icao]
	if !ok {
		return 0, fmt.Errorf("%q: %w", icao, ErrUnknownAircraft)
	}
	return units.Kilograms(st.FuelPerSeatKilometer * r.Kilometers()), nil
}

// USDOTFuelPerWeight returns the fleet-average fuel burned carrying the
// given revenue weight over the given range.
func (d *StaticDatabase) USDOTFuelPerWeight(icao string, r units.Length, w units.Mass) (units.Mass, error) {
	if r < 0 || w < 0 {
		return 0, ErrNegativeInput
	}
	st, ok := d.USDOT[icao]
	if !ok {
		return 0, fmt.Errorf("%q: %w", icao, ErrUnknownAircraft)
	}
	return units.Kilograms(st.FuelPerWeightKilometer * r.Kilometers() * w.Kilograms()), nil
}

// CachedProfile returns a previously stored flight profile, if any.
func (d *StaticDatabase) CachedProfile(key string) (profile.FlightProfile, bool) {
	return d.profileCache.Get(key)
}

// StoreProfile caches an assembled flight profile under the given key.
func (d *StaticDatabase) StoreProfile(key string, p profile.FlightProfile) {
	d.profileCache.Add(key, p)
}
