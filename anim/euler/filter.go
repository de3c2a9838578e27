package euler

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

const degToRad = math.Pi / 180

// Flip returns the alternative Euler triple representing the same 3D
// orientation as t (radians). For axes (a0, a1, a2) in application order the
// second solution of the Euler decomposition is obtained by adding pi to a0,
// negating a1 and adding pi, and adding pi to a2.
func Flip(order Order, t mgl64.Vec3) mgl64.Vec3 {
	axes := order.Axes()

	flipped := t
	flipped[axes[0]] += math.Pi
	flipped[axes[1]] = -flipped[axes[1]] + math.Pi
	flipped[axes[2]] += math.Pi

	return flipped
}

// Unwind1D shifts current (radians) by whole turns until it lies within pi of
// previous. Among all 2*pi-periodic representations of current this picks the
// one closest to previous. Non-finite inputs pass through unchanged.
func Unwind1D(previous, current float64) float64 {
	if math.IsInf(previous, 0) || math.IsInf(current, 0) {
		return current
	}

	for math.Abs(previous-current) > math.Pi {
		if previous < current {
			current -= 2 * math.Pi
		} else {
			current += 2 * math.Pi
		}
	}

	return current
}

// Unwind3D applies [Unwind1D] independently per axis.
func Unwind3D(previous, current mgl64.Vec3) mgl64.Vec3 {
	for axis := 0; axis < 3; axis++ {
		current[axis] = Unwind1D(previous[axis], current[axis])
	}

	return current
}

// Resolve picks, among the representations of current (radians) reachable by
// per-axis unwinding and the flip identity, the one with the smallest squared
// Euclidean distance to previous. Per-axis unwinding alone cannot undo a
// flip, since a flip moves all three axes jointly; the two-hypothesis search
// covers both solution branches of the Euler decomposition.
func Resolve(order Order, previous, current mgl64.Vec3) mgl64.Vec3 {
	unwound := Unwind3D(previous, current)
	flipped := Unwind3D(previous, Flip(order, current))

	if distanceSquared(unwound, previous) > distanceSquared(flipped, previous) {
		return flipped
	}

	return unwound
}

func distanceSquared(a, b mgl64.Vec3) float64 {
	d := a.Sub(b)

	return d[0]*d[0] + d[1]*d[1] + d[2]*d[2]
}

// Filter runs the continuity filter over a time-ordered rotation sequence.
// Angles are degrees in and degrees out; every output triple represents the
// same orientation as its input, re-expressed for minimal change from the
// previous filtered frame.
//
// Sequences longer than two frames are filtered starting at the second
// frame, and frame 0 is then re-derived from its continuity with the
// filtered frame 1. The first frame is the one most likely to carry a
// spurious flip, so it is corrected against its settled neighbor instead of
// serving as the reference for everything after it.
//
// The output has the same length as the input. A single-frame sequence is
// returned as-is; an empty one is rejected with [ErrEmptySequence].
func Filter(order Order, rotations []mgl64.Vec3) ([]mgl64.Vec3, error) {
	if !order.Valid() {
		return nil, ErrInvalidOrder
	}

	if len(rotations) == 0 {
		return nil, ErrEmptySequence
	}

	start := 0
	if len(rotations) > 2 {
		start = 1
	}

	fixed := make([]mgl64.Vec3, 0, len(rotations))

	var previous mgl64.Vec3

	havePrevious := false

	for _, degrees := range rotations[start:] {
		current := degrees.Mul(degToRad)

		if !havePrevious {
			previous = current
			havePrevious = true

			fixed = append(fixed, degrees)

			continue
		}

		resolved := Resolve(order, previous, current)
		previous = resolved

		fixed = append(fixed, resolved.Mul(1/degToRad))
	}

	if start == 1 {
		first := Resolve(order, fixed[0].Mul(degToRad), rotations[0].Mul(degToRad))
		fixed = append([]mgl64.Vec3{first.Mul(1 / degToRad)}, fixed...)
	}

	return fixed, nil
}
