// units/units.go
// Copyright(c) 2025 jetfuelburn contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

// Package units provides dimension-tagged numeric types for the physical
// quantities the fuel burn models traffic in. Each quantity is a defined
// float64 type holding a value in a fixed SI base unit, in the same spirit
// as time.Duration: constructors convert into the base unit, accessor
// methods convert back out, and mixing dimensions is a compile error.
package units

import "time"

// Length holds a distance or altitude in meters.
type Length float64

func Meters(v float64) Length        { return Length(v) }
func Kilometers(v float64) Length    { return Length(v * 1000) }
func Feet(v float64) Length          { return Length(v * metersPerFoot) }
func NauticalMiles(v float64) Length { return Length(v * metersPerNauticalMile) }

func (l Length) Meters() float64        { return float64(l) }
func (l Length) Kilometers() float64    { return float64(l) / 1000 }
func (l Length) Feet() float64          { return float64(l) / metersPerFoot }
func (l Length) NauticalMiles() float64 { return float64(l) / metersPerNauticalMile }

// Speed holds a velocity or a climb/descent rate in meters per second.
type Speed float64

func MetersPerSecond(v float64) Speed   { return Speed(v) }
func KilometersPerHour(v float64) Speed { return Speed(v / 3.6) }
func Knots(v float64) Speed             { return Speed(v * metersPerNauticalMile / 3600) }
func FeetPerMinute(v float64) Speed     { return Speed(v * metersPerFoot / 60) }

func (s Speed) MetersPerSecond() float64   { return float64(s) }
func (s Speed) KilometersPerHour() float64 { return float64(s) * 3.6 }
func (s Speed) Knots() float64             { return float64(s) * 3600 / metersPerNauticalMile }
func (s Speed) FeetPerMinute() float64     { return float64(s) * 60 / metersPerFoot }

// Times returns the distance covered at speed s over d.
func (s Speed) Times(d time.Duration) Length { return Length(float64(s) * d.Seconds()) }

// Mass holds a mass in kilograms.
type Mass float64

func Kilograms(v float64) Mass { return Mass(v) }
func Tonnes(v float64) Mass    { return Mass(v * 1000) }
func Pounds(v float64) Mass    { return Mass(v * kilogramsPerPound) }

func (m Mass) Kilograms() float64 { return float64(m) }
func (m Mass) Tonnes() float64    { return float64(m) / 1000 }
func (m Mass) Pounds() float64    { return float64(m) / kilogramsPerPound }

// Force holds a force or weight in newtons.
type Force float64

func Newtons(v float64) Force { return Force(v) }

func (f Force) Newtons() float64 { return float64(f) }

// Mass returns the mass whose weight under standard gravity is f.
func (f Force) Mass() Mass { return Mass(float64(f) / StandardGravity) }

// Weight returns the weight of m under standard gravity.
func (m Mass) Weight() Force { return Force(float64(m) * StandardGravity) }

// Area holds an area in square meters.
type Area float64

func SquareMeters(v float64) Area { return Area(v) }

func (a Area) SquareMeters() float64 { return float64(a) }

// Pressure holds a pressure in pascals.
type Pressure float64

func Pascals(v float64) Pressure { return Pressure(v) }

func (p Pressure) Pascals() float64 { return float64(p) }

// Density holds a mass density in kilograms per cubic meter.
type Density float64

func KilogramsPerCubicMeter(v float64) Density { return Density(v) }

func (d Density) KilogramsPerCubicMeter() float64 { return float64(d) }

// Temperature holds an absolute temperature in kelvin.
type Temperature float64

func Kelvin(v float64) Temperature  { return Temperature(v) }
func Celsius(v float64) Temperature { return Temperature(v + 273.15) }

func (t Temperature) Kelvin() float64  { return float64(t) }
func (t Temperature) Celsius() float64 { return float64(t) - 273.15 }

// TSFC holds a thrust-specific fuel consumption in seconds per meter;
// the customary mg/(N*s) collapses to this dimension.
type TSFC float64

func MilligramsPerNewtonSecond(v float64) TSFC { return TSFC(v * 1e-6) }

func (c TSFC) SecondsPerMeter() float64 { return float64(c) }

// FuelFlow holds a per-engine fuel mass flow in kilograms per second.
type FuelFlow float64

func KilogramsPerSecond(v float64) FuelFlow { return FuelFlow(v) }

func (f FuelFlow) KilogramsPerSecond() float64 { return float64(f) }

// Over returns the fuel mass consumed at flow f over d.
func (f FuelFlow) Over(d time.Duration) Mass { return Mass(float64(f) * d.Seconds()) }

const (
	metersPerFoot         = 0.3048
	metersPerNauticalMile = 1852.0
	kilogramsPerPound     = 0.45359237

	// StandardGravity is the acceleration due to gravity used for
	// weight/mass conversions, m/s^2. The Lee et al. paper rounds to
	// 9.8067; the ISA model uses the exact standard value internally.
	StandardGravity = 9.8067
)

// Minutes converts a fractional number of minutes to a time.Duration.
func Minutes(v float64) time.Duration {
	return time.Duration(v * float64(time.Minute))
}
