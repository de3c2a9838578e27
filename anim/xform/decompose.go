package xform

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/cwbudde/algo-anim/anim/euler"
)

// scaleDecimals is the number of decimal digits kept in decomposed scale
// components. Sampled transforms routinely carry scales like 0.9999999999
// that are conceptually exactly 1; rounding keeps the baked curves clean.
// The truncation is intentional and lossy.
const scaleDecimals = 6

// Transform holds a decomposed affine transform. Rotation is an Euler triple
// in degrees whose meaning depends on Order; Translation is in scene units
// and Scale is a unitless per-axis ratio.
type Transform struct {
	Translation mgl64.Vec3
	Rotation    mgl64.Vec3
	Scale       mgl64.Vec3
	Order       euler.Order
}

// Decompose splits an affine transform into translation, rotation, and scale.
//
// Translation is read from the fourth column. Per-axis scale is the length
// of the corresponding basis column, rounded to six decimals. Rotation is
// extracted from the scale-normalized basis with the closed-form formula for
// the requested order and returned in degrees.
func Decompose(m mgl64.Mat4, order euler.Order) (Transform, error) {
	if !order.Valid() {
		return Transform{}, euler.ErrInvalidOrder
	}

	translation := m.Col(3).Vec3()

	x := m.Col(0).Vec3()
	y := m.Col(1).Vec3()
	z := m.Col(2).Vec3()

	lx, ly, lz := x.Len(), y.Len(), z.Len()

	// Normalize by the raw lengths; rounding applies only to the reported
	// scale, not to the rotation basis.
	rot := mgl64.Mat3FromCols(
		x.Mul(1/lx),
		y.Mul(1/ly),
		z.Mul(1/lz),
	)

	radians := extractEuler(rot, order)

	return Transform{
		Translation: translation,
		Rotation:    radians.Mul(180 / math.Pi),
		Scale:       mgl64.Vec3{roundScale(lx), roundScale(ly), roundScale(lz)},
		Order:       order,
	}, nil
}

func roundScale(s float64) float64 {
	shift := math.Pow10(scaleDecimals)

	return math.Round(s*shift) / shift
}

// extractEuler recovers the Euler angles (radians) of a pure rotation matrix
// for the given order. With axes (a0, a1, a2) in application order the matrix
// is R_a2*R_a1*R_a0; each permutation needs its own closed form because the
// middle angle lives in a different matrix element with its own sign.
func extractEuler(r mgl64.Mat3, order euler.Order) mgl64.Vec3 {
	var rx, ry, rz float64

	switch order {
	case euler.OrderXYZ: // Rz*Ry*Rx
		ry = asinClamped(-r.At(2, 0))
		rx = math.Atan2(r.At(2, 1), r.At(2, 2))
		rz = math.Atan2(r.At(1, 0), r.At(0, 0))
	case euler.OrderXZY: // Ry*Rz*Rx
		rz = asinClamped(r.At(1, 0))
		rx = math.Atan2(-r.At(1, 2), r.At(1, 1))
		ry = math.Atan2(-r.At(2, 0), r.At(0, 0))
	case euler.OrderYXZ: // Rz*Rx*Ry
		rx = asinClamped(r.At(2, 1))
		ry = math.Atan2(-r.At(2, 0), r.At(2, 2))
		rz = math.Atan2(-r.At(0, 1), r.At(1, 1))
	case euler.OrderYZX: // Rx*Rz*Ry
		rz = asinClamped(-r.At(0, 1))
		ry = math.Atan2(r.At(0, 2), r.At(0, 0))
		rx = math.Atan2(r.At(2, 1), r.At(1, 1))
	case euler.OrderZXY: // Ry*Rx*Rz
		rx = asinClamped(-r.At(1, 2))
		ry = math.Atan2(r.At(0, 2), r.At(2, 2))
		rz = math.Atan2(r.At(1, 0), r.At(1, 1))
	case euler.OrderZYX: // Rx*Ry*Rz
		ry = asinClamped(r.At(0, 2))
		rx = math.Atan2(-r.At(1, 2), r.At(2, 2))
		rz = math.Atan2(-r.At(0, 1), r.At(0, 0))
	}

	return mgl64.Vec3{rx, ry, rz}
}

// asinClamped guards the middle-angle extraction against arguments pushed
// slightly outside [-1, 1] by floating-point error.
func asinClamped(v float64) float64 {
	if v > 1 {
		v = 1
	} else if v < -1 {
		v = -1
	}

	return math.Asin(v)
}
