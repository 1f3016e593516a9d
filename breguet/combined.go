// breguet/combined.go
// Copyright(c) 2025 jetfuelburn contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package breguet

import (
	"errors"
	"fmt"
	"time"

	"github.com/sustainableaviation/jetfuelburn/units"
)

var (
	ErrNegativePayload  = errors.New("payload must not be negative")
	ErrEngineCount      = errors.New("engine count must be positive")
	ErrNegativeFuelFlow = errors.New("fuel flow must not be negative")
	ErrEmptySchedule    = errors.New("climb and descent schedules must not be empty")
	ErrSegmentBurn      = errors.New("segment needs a positive time and a fuel flow")
)

// DefaultTaxiTime is the ICAO-style block allowance applied when a mission
// does not specify its own taxi time.
const DefaultTaxiTime = 26 * time.Minute

// A PhaseBurn is one climb or descent phase flown at a fixed per-engine fuel
// flow for a fixed time. The flow is given either absolutely or as a
// fraction of the takeoff flow; an absolute flow wins when both are set.
type PhaseBurn struct {
	Name              string
	Time              time.Duration
	FlowPerEngine     units.FuelFlow
	RelativeToTakeoff float64
}

func (p PhaseBurn) flow(takeoff units.FuelFlow) units.FuelFlow {
	if p.FlowPerEngine > 0 {
		return p.FlowPerEngine
	}
	return units.KilogramsPerSecond(p.RelativeToTakeoff * takeoff.KilogramsPerSecond())
}

func (p PhaseBurn) validate() error {
	if p.Time <= 0 || (p.FlowPerEngine <= 0 && p.RelativeToTakeoff <= 0) {
		return fmt.Errorf("%q: %w", p.Name, ErrSegmentBurn)
	}
	return nil
}

// ClimbSchedule covers takeoff plus the climb phases above it, in flight
// order.
type ClimbSchedule struct {
	Takeoff PhaseBurn
	Climb   []PhaseBurn
}

// DescentSchedule covers the descent phases in flight order plus the final
// approach-and-landing phase.
type DescentSchedule struct {
	Descent  []PhaseBurn
	Approach PhaseBurn
}

// AlternateLeg is the diversion from the destination to an alternate
// airport, flown with its own schedules and cruise distance.
type AlternateLeg struct {
	Climb          ClimbSchedule
	Descent        DescentSchedule
	CruiseDistance units.Length
}

// Mission is a complete flight for the combined model: aircraft parameters,
// the outbound schedules and cruise distance, and optionally an alternate.
type Mission struct {
	Payload              units.Mass
	OEW                  units.Mass
	Engines              int
	IdleFlowPerEngine    units.FuelFlow
	TakeoffFlowPerEngine units.FuelFlow
	CruiseSpeed          units.Speed
	CruiseTSFC           units.TSFC
	LiftToDrag           float64
	Climb                ClimbSchedule
	Descent              DescentSchedule
	CruiseDistance       units.Length
	TaxiTime             time.Duration // DefaultTaxiTime when zero
	Alternate            *AlternateLeg
}

// FuelBreakdown is the per-phase fuel burn of the outbound leg; alternate
// and reserve fuel is folded into Cruise via the mass carried through it.
type FuelBreakdown struct {
	Taxi     units.Mass
	Takeoff  units.Mass
	Climb    units.Mass
	Cruise   units.Mass
	Descent  units.Mass
	Approach units.Mass
}

func (b FuelBreakdown) Total() units.Mass {
	return b.Taxi + b.Takeoff + b.Climb + b.Cruise + b.Descent + b.Approach
}

func (m Mission) validate() error {
	switch {
	case m.Payload < 0:
		return ErrNegativePayload
	case m.Engines <= 0:
		return ErrEngineCount
	case m.IdleFlowPerEngine < 0 || m.TakeoffFlowPerEngine < 0:
		return ErrNegativeFuelFlow
	case m.CruiseDistance < 0:
		return ErrNegativeRange
	case len(m.Climb.Climb) == 0 || len(m.Descent.Descent) == 0:
		return ErrEmptySchedule
	}

	phases := []PhaseBurn{m.Climb.Takeoff, m.Descent.Approach}
	phases = append(phases, m.Climb.Climb...)
	phases = append(phases, m.Descent.Descent...)
	if m.Alternate != nil {
		if m.Alternate.CruiseDistance < 0 {
			return ErrNegativeRange
		}
		phases = append(phases, m.Alternate.Climb.Takeoff, m.Alternate.Descent.Approach)
		phases = append(phases, m.Alternate.Climb.Climb...)
		phases = append(phases, m.Alternate.Descent.Descent...)
	}
	for _, p := range phases {
		if err := p.validate(); err != nil {
			return err
		}
	}
	return nil
}

func (m Mission) phaseFuel(p PhaseBurn) units.Mass {
	return p.flow(m.TakeoffFlowPerEngine).Over(p.Time) * units.Mass(m.Engines)
}

func (m Mission) scheduleFuel(phases []PhaseBurn) units.Mass {
	var total units.Mass
	for _, p := range phases {
		total += m.phaseFuel(p)
	}
	return total
}

// Fuel evaluates the combined model. Climb, descent, taxi and takeoff burn
// at their scheduled flows; the cruise burn comes from the range equation
// with the after-cruise mass inflated by everything still aboard at
// top-of-descent: descent and approach fuel, the whole alternate leg, a
// 30-minute final reserve, and half the taxi fuel.
func (m Mission) Fuel() (FuelBreakdown, error) {
	if err := m.validate(); err != nil {
		return FuelBreakdown{}, err
	}

	taxiTime := m.TaxiTime
	if taxiTime == 0 {
		taxiTime = DefaultTaxiTime
	}
	taxi := m.IdleFlowPerEngine.Over(taxiTime) * units.Mass(m.Engines)

	// Final reserve: 30 minutes of cruise at the zero-fuel mass.
	reserve, err := FuelFromRangeEquation(
		m.CruiseSpeed.Times(30*time.Minute),
		m.LiftToDrag, m.OEW+m.Payload, m.CruiseSpeed, m.CruiseTSFC)
	if err != nil {
		return FuelBreakdown{}, err
	}

	var alternate units.Mass
	if m.Alternate != nil {
		altDescent := m.scheduleFuel(m.Alternate.Descent.Descent)
		altApproach := m.phaseFuel(m.Alternate.Descent.Approach)
		altCruise, err := FuelFromRangeEquation(
			m.Alternate.CruiseDistance, m.LiftToDrag,
			m.OEW+m.Payload+altDescent+altApproach+reserve+taxi/2,
			m.CruiseSpeed, m.CruiseTSFC)
		if err != nil {
			return FuelBreakdown{}, err
		}
		alternate = m.phaseFuel(m.Alternate.Climb.Takeoff) +
			m.scheduleFuel(m.Alternate.Climb.Climb) +
			altDescent + altApproach + altCruise
	}

	b := FuelBreakdown{
		Taxi:     taxi,
		Takeoff:  m.phaseFuel(m.Climb.Takeoff),
		Climb:    m.scheduleFuel(m.Climb.Climb),
		Descent:  m.scheduleFuel(m.Descent.Descent),
		Approach: m.phaseFuel(m.Descent.Approach),
	}
	b.Cruise, err = FuelFromRangeEquation(
		m.CruiseDistance, m.LiftToDrag,
		m.OEW+m.Payload+b.Descent+b.Approach+alternate+reserve+taxi/2,
		m.CruiseSpeed, m.CruiseTSFC)
	if err != nil {
		return FuelBreakdown{}, err
	}
	return b, nil
}
