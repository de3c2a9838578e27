package testutil

import (
	"math/rand"

	"github.com/go-gl/mathgl/mgl64"
)

// DeterministicAngles generates a reproducible sequence of Euler triples
// (degrees) spread over [-amplitude, amplitude] per axis.
func DeterministicAngles(seed int64, amplitude float64, length int) []mgl64.Vec3 {
	rng := rand.New(rand.NewSource(seed))

	out := make([]mgl64.Vec3, length)
	for i := range out {
		for axis := 0; axis < 3; axis++ {
			out[i][axis] = (rng.Float64()*2 - 1) * amplitude
		}
	}

	return out
}

// SmoothAngles generates a rotation sequence that drifts by at most step
// degrees per axis per frame, i.e. one that is already continuous.
func SmoothAngles(seed int64, step float64, length int) []mgl64.Vec3 {
	rng := rand.New(rand.NewSource(seed))

	out := make([]mgl64.Vec3, length)
	for i := 1; i < length; i++ {
		for axis := 0; axis < 3; axis++ {
			out[i][axis] = out[i-1][axis] + (rng.Float64()*2-1)*step
		}
	}

	return out
}
