// profile/assemble.go
// Copyright(c) 2025 jetfuelburn contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package profile

import (
	"github.com/sustainableaviation/jetfuelburn/units"
)

// Point is one sample of the assembled flight profile.
type Point struct {
	Distance units.Length `msgpack:"distance"`
	Altitude units.Length `msgpack:"altitude"`
}

// FlightProfile is the full altitude-vs-distance curve of a mission,
// sampled at one-kilometer spacing from origin to destination. Produced
// once, read-only afterward.
type FlightProfile struct {
	Points []Point `msgpack:"points"`
}

// Assemble walks resolved climb and descent sequences plus the cruise
// plateau between them and samples the route at one-kilometer resolution:
// the climb curve up to the top of climb, the constant cruise altitude
// across the plateau, and the descent curve mirrored from the destination
// side. One-kilometer spacing is a deliberate simplification, not adaptive
// resolution.
func Assemble(route units.Length, res Resolution) (FlightProfile, error) {
	if route < 0 {
		return FlightProfile{}, ErrNegativeDistance
	}
	if len(res.Climb) == 0 && len(res.Descent) == 0 {
		return FlightProfile{}, ErrNoSegments
	}

	// The plateau sits at the altitude the climb actually reached, which is
	// the target unless the target exceeds the sequence ceiling.
	plateau := res.CruiseAltitude
	if top, err := res.Climb.CruiseAltitude(); err == nil {
		plateau = top
	}

	climbDist := res.Climb.TotalDistance()
	cruiseEnd := climbDist + res.CruiseDistance

	var p FlightProfile
	n := int(route.Kilometers())
	for x := 0; x <= n; x++ {
		d := units.Kilometers(float64(x))
		var alt units.Length
		var err error
		// A sequence truncated to zero extent (top of climb at an endpoint
		// of the scan) hands its share of the route to the other curve.
		switch {
		case d <= climbDist && len(res.Climb) > 0:
			alt, err = AltitudeAtDistance(d, res.Climb)
		case d <= cruiseEnd && res.CruiseDistance > 0:
			alt = plateau
		case len(res.Descent) > 0:
			alt, err = AltitudeAtDistance(route-d, res.Descent)
		default:
			alt, err = AltitudeAtDistance(d, res.Climb)
		}
		if err != nil {
			return FlightProfile{}, err
		}
		p.Points = append(p.Points, Point{Distance: d, Altitude: alt})
	}
	return p, nil
}
