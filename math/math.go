// math/math.go
// Copyright(c) 2025 jetfuelburn contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

// Package math provides the small numeric kernel shared by the performance
// models: piecewise-linear interpolation over sorted breakpoints, quadratic
// root extraction, and argmin.
package math

import (
	"errors"
	"fmt"
	gomath "math"

	"golang.org/x/exp/constraints"
)

var (
	ErrOutOfBounds = errors.New("interpolation argument outside breakpoint range")
	ErrBreakpoints = errors.New("breakpoint slices invalid")
	ErrNoRealRoot  = errors.New("quadratic has no real root")
)

// Interpolate evaluates the piecewise-linear function defined by the sorted
// breakpoints (xs[i], ys[i]) at x.
//
// The boundary policy is strict exclusive at BOTH ends: x equal to xs[0] or
// xs[len(xs)-1] is rejected with ErrOutOfBounds, not just x outside the
// interval. This is deliberate compatibility behavior (the reference
// implementation rejects exact endpoints) and a known usability wart;
// callers holding an endpoint value must widen their breakpoint table.
func Interpolate[T constraints.Float](x T, xs, ys []T) (T, error) {
	if len(xs) != len(ys) || len(xs) < 2 {
		return 0, fmt.Errorf("%w: %d x values, %d y values", ErrBreakpoints, len(xs), len(ys))
	}
	if x <= xs[0] {
		return 0, fmt.Errorf("%w: %v less than minimum %v", ErrOutOfBounds, x, xs[0])
	}
	if x >= xs[len(xs)-1] {
		return 0, fmt.Errorf("%w: %v greater than maximum %v", ErrOutOfBounds, x, xs[len(xs)-1])
	}

	// First breakpoint strictly greater than x; interpolate against its
	// predecessor.
	lo, hi := 1, len(xs)-1
	for lo < hi {
		mid := (lo + hi) / 2
		if xs[mid] > x {
			hi = mid
		} else {
			lo = mid + 1
		}
	}
	x0, x1 := xs[lo-1], xs[lo]
	y0, y1 := ys[lo-1], ys[lo]
	return y0 + (y1-y0)/(x1-x0)*(x-x0), nil
}

// PositiveQuadraticRoot returns the root (-b + sqrt(b^2-4ac)) / 2a.
// The Lee et al. solver selects this branch for both of its quadratics; the
// minus root corresponds to physically meaningless (super-MTOW or negative)
// weights.
func PositiveQuadraticRoot(a, b, c float64) (float64, error) {
	disc := b*b - 4*a*c
	if disc < 0 {
		return 0, fmt.Errorf("%w: discriminant %g", ErrNoRealRoot, disc)
	}
	return (-b + gomath.Sqrt(disc)) / (2 * a), nil
}

// ArgMin returns the index of the smallest element of s, -1 if s is empty.
// Ties resolve to the earliest index.
func ArgMin[T constraints.Ordered](s []T) int {
	idx := -1
	for i, v := range s {
		if idx == -1 || v < s[idx] {
			idx = i
		}
	}
	return idx
}
