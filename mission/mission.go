// mission/mission.go
// Copyright(c) 2025 jetfuelburn contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

// Package mission ties the databases and the profile engine together: given
// an aircraft designator and a route, it builds the climb and descent
// segments from the embedded performance data, resolves them against the
// route, and assembles the sampled altitude profile.
package mission

import (
	"context"
	"errors"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/sustainableaviation/jetfuelburn/db"
	"github.com/sustainableaviation/jetfuelburn/log"
	"github.com/sustainableaviation/jetfuelburn/profile"
	"github.com/sustainableaviation/jetfuelburn/units"
	"github.com/sustainableaviation/jetfuelburn/util"
)

// profileCacheBytes bounds the on-disk profile cache.
const profileCacheBytes = 32 * 1024 * 1024

var (
	ErrRouteTooShort      = errors.New("route must be at least 1 km")
	ErrCruiseAboveCeiling = errors.New("cruise altitude exceeds the aircraft ceiling")
)

type Planner struct {
	db *db.StaticDatabase
	lg *log.Logger
}

func NewPlanner(database *db.StaticDatabase, lg *log.Logger) *Planner {
	return &Planner{db: database, lg: lg}
}

// Request asks for one aircraft's profile over one route. A zero
// CruiseAltitude means cruise at the aircraft's ceiling.
type Request struct {
	ICAO           string
	Route          units.Length
	CruiseAltitude units.Length
}

func (r Request) cacheKey() string {
	return fmt.Sprintf("%s/%.0f/%.0f", r.ICAO, r.Route.Kilometers(), r.CruiseAltitude.Feet())
}

func (r Request) diskCacheName() string {
	return fmt.Sprintf("profiles/%s-%.0f-%.0f", r.ICAO, r.Route.Kilometers(), r.CruiseAltitude.Feet())
}

// Profile builds the sampled flight profile for the request, consulting the
// in-memory profile cache and then the on-disk cache before resolving from
// scratch. Freshly resolved profiles are written back to both layers.
func (p *Planner) Profile(req Request) (profile.FlightProfile, error) {
	if req.Route < units.Kilometers(1) {
		return profile.FlightProfile{}, ErrRouteTooShort
	}

	ap, err := p.db.AircraftPerformance(req.ICAO)
	if err != nil {
		return profile.FlightProfile{}, err
	}
	cruiseAlt := req.CruiseAltitude
	if cruiseAlt == 0 {
		cruiseAlt = ap.Ceiling
	}
	if cruiseAlt > ap.Ceiling {
		return profile.FlightProfile{}, fmt.Errorf("%s: %v ft: %w", req.ICAO, cruiseAlt.Feet(), ErrCruiseAboveCeiling)
	}

	req.CruiseAltitude = cruiseAlt
	if fp, ok := p.db.CachedProfile(req.cacheKey()); ok {
		p.lg.Debugf("%s: profile cache hit for %.0f km", req.ICAO, req.Route.Kilometers())
		return fp, nil
	}
	var cached profile.FlightProfile
	if _, err := util.CacheRetrieveObject(req.diskCacheName(), &cached); err == nil {
		p.lg.Debugf("%s: profile disk cache hit for %.0f km", req.ICAO, req.Route.Kilometers())
		p.db.StoreProfile(req.cacheKey(), cached)
		return cached, nil
	}

	climb, err := profile.BuildClimbSegments(ap.Ceiling, ap.Climb)
	if err != nil {
		return profile.FlightProfile{}, fmt.Errorf("%s: climb segments: %w", req.ICAO, err)
	}
	descent, err := profile.BuildDescentSegments(ap.Ceiling, ap.Descent)
	if err != nil {
		return profile.FlightProfile{}, fmt.Errorf("%s: descent segments: %w", req.ICAO, err)
	}

	res, err := profile.Resolve(req.Route, cruiseAlt, climb, descent)
	if err != nil {
		return profile.FlightProfile{}, fmt.Errorf("%s: resolve: %w", req.ICAO, err)
	}
	fp, err := profile.Assemble(req.Route, res)
	if err != nil {
		return profile.FlightProfile{}, fmt.Errorf("%s: assemble: %w", req.ICAO, err)
	}

	p.lg.Info("assembled flight profile",
		"aircraft", req.ICAO,
		"route_km", req.Route.Kilometers(),
		"cruise_ft", cruiseAlt.Feet(),
		"cruise_km", res.CruiseDistance.Kilometers())

	p.db.StoreProfile(req.cacheKey(), fp)
	if err := util.CacheStoreObject(req.diskCacheName(), fp); err != nil {
		p.lg.Warnf("%s: profile disk cache store: %v", req.ICAO, err)
	} else if err := util.CacheCullObjects(profileCacheBytes); err != nil {
		p.lg.Warnf("profile disk cache cull: %v", err)
	}
	return fp, nil
}

// Fuel estimates the request's block fuel from the regression table. The
// flight profile is resolved first, so the estimate is only produced for
// missions the aircraft's performance data can actually fly, and the profile
// lands in the cache for callers that want it next.
func (p *Planner) Fuel(req Request, payload units.Mass) (units.Mass, error) {
	if _, err := p.Profile(req); err != nil {
		return 0, err
	}
	fuel, err := p.db.Yanto.Fuel(req.ICAO, req.Route, payload)
	if err != nil {
		return 0, err
	}
	p.lg.Debugf("%s: %.0f kg block fuel over %.0f km", req.ICAO, fuel.Kilograms(), req.Route.Kilometers())
	return fuel, nil
}

// ProfileBatch resolves many requests concurrently. The first failure
// cancels the remaining work; on success the returned slice is parallel to
// reqs.
func (p *Planner) ProfileBatch(ctx context.Context, reqs []Request) ([]profile.FlightProfile, error) {
	profiles := make([]profile.FlightProfile, len(reqs))

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(runtime.NumCPU())
	for i, req := range reqs {
		i, req := i, req
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			fp, err := p.Profile(req)
			if err != nil {
				return fmt.Errorf("%s over %.0f km: %w", req.ICAO, req.Route.Kilometers(), err)
			}
			profiles[i] = fp
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return profiles, nil
}
