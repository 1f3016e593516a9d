// profile/resolve.go
// Copyright(c) 2025 jetfuelburn contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package profile

import (
	"fmt"
	gomath "math"

	vmath "github.com/sustainableaviation/jetfuelburn/math"
	"github.com/sustainableaviation/jetfuelburn/units"
)

// AltitudeAtDistance evaluates the piecewise-linear altitude of a segment
// sequence at ground distance x from its reference point (origin for climb
// sequences, destination for descent sequences). Within a segment the slope
// is the rate-to-ground-speed ratio; beyond the final segment the final top
// altitude is returned, clamped rather than extrapolated.
func AltitudeAtDistance(x units.Length, segs SegmentSeq) (units.Length, error) {
	if x < 0 {
		return 0, fmt.Errorf("%w: %.3f km from reference", ErrNegativeDistance, x.Kilometers())
	}
	if len(segs) == 0 {
		return 0, ErrNoSegments
	}
	if err := segs.checkAscending(); err != nil {
		return 0, err
	}

	var prev, cur units.Length
	for _, seg := range segs {
		cur += seg.Distance
		if prev <= x && x <= cur {
			k := seg.Rate.MetersPerSecond() / seg.GroundSpeed.MetersPerSecond()
			return seg.AltBottom + units.Meters(k*(x-prev).Meters()), nil
		}
		prev = cur
	}
	return segs[len(segs)-1].AltTop, nil
}

// TopOfClimbDistance locates the point where a short-hop flight must stop
// climbing: the distance x from the origin minimizing the gap between the
// climb altitude at x and the descent altitude at (route - x). The curves
// are sampled at one-kilometer steps and scanned for the minimum absolute
// difference; a linear scan is deliberately preferred over a closed-form
// intersection for robustness at coarse sampling.
func TopOfClimbDistance(route units.Length, climb, descent SegmentSeq) (units.Length, error) {
	n := int(route.Kilometers())
	diffs := make([]float64, 0, n+1)
	for x := 0; x <= n; x++ {
		d := units.Kilometers(float64(x))
		ca, err := AltitudeAtDistance(d, climb)
		if err != nil {
			return 0, err
		}
		da, err := AltitudeAtDistance(route-d, descent)
		if err != nil {
			return 0, err
		}
		diffs = append(diffs, gomath.Abs((ca - da).Meters()))
	}
	return units.Kilometers(float64(vmath.ArgMin(diffs))), nil
}

// Resolution is the outcome of fitting climb and descent against a route: the
// truncated segment sequences and the length of the cruise plateau between
// them (zero for a short hop that never reaches cruise altitude).
type Resolution struct {
	Climb          SegmentSeq
	Descent        SegmentSeq
	CruiseAltitude units.Length
	CruiseDistance units.Length
}

// Resolve truncates the climb and descent sequences to the target cruise
// altitude and decides whether the aircraft reaches it before the
// destination. If climb plus descent distance fits within the route, the
// remainder is a cruise plateau at the target altitude. Otherwise the flight
// is a short hop: the top-of-climb point is located, both sequences are
// re-truncated by distance to meet there, and the cruise distance is exactly
// zero.
func Resolve(route units.Length, cruiseAlt units.Length, climb, descent SegmentSeq) (Resolution, error) {
	if route < 0 {
		return Resolution{}, fmt.Errorf("%w: route %.3f km", ErrNegativeDistance, route.Kilometers())
	}

	climbT, err := TruncateByCruiseAltitude(cruiseAlt, climb)
	if err != nil {
		return Resolution{}, err
	}
	descentT, err := TruncateByCruiseAltitude(cruiseAlt, descent)
	if err != nil {
		return Resolution{}, err
	}

	nonCruise := climbT.TotalDistance() + descentT.TotalDistance()
	if nonCruise <= route {
		return Resolution{
			Climb:          climbT,
			Descent:        descentT,
			CruiseAltitude: cruiseAlt,
			CruiseDistance: route - nonCruise,
		}, nil
	}

	toc, err := TopOfClimbDistance(route, climbT, descentT)
	if err != nil {
		return Resolution{}, err
	}
	climbShort, err := TruncateByDistance(toc, climbT)
	if err != nil {
		return Resolution{}, err
	}
	descentShort, err := TruncateByDistance(route-toc, descentT)
	if err != nil {
		return Resolution{}, err
	}
	return Resolution{
		Climb:          climbShort,
		Descent:        descentShort,
		CruiseAltitude: cruiseAlt,
		CruiseDistance: 0,
	}, nil
}
