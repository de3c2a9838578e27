package xform

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/cwbudde/algo-anim/anim/euler"
)

// Compose rebuilds the affine matrix T*R*S described by t. It is the inverse
// of [Decompose] up to Euler multi-valuedness and scale rounding.
func Compose(t Transform) (mgl64.Mat4, error) {
	if !t.Order.Valid() {
		return mgl64.Mat4{}, euler.ErrInvalidOrder
	}

	translate := mgl64.Translate3D(t.Translation.X(), t.Translation.Y(), t.Translation.Z())
	rotate := RotationMatrix(t.Order, t.Rotation)
	scale := mgl64.Scale3D(t.Scale.X(), t.Scale.Y(), t.Scale.Z())

	return translate.Mul4(rotate).Mul4(scale), nil
}

// RotationMatrix composes the per-axis rotations of an Euler triple
// (degrees) in the given application order. For axes (a0, a1, a2) the result
// is R_a2*R_a1*R_a0, so a0 is applied first to column vectors.
func RotationMatrix(order euler.Order, degrees mgl64.Vec3) mgl64.Mat4 {
	radians := degrees.Mul(math.Pi / 180)

	m := mgl64.Ident4()
	for _, axis := range order.Axes() {
		m = axisRotation(axis, radians[axis]).Mul4(m)
	}

	return m
}

func axisRotation(axis int, angle float64) mgl64.Mat4 {
	switch axis {
	case 0:
		return mgl64.HomogRotate3DX(angle)
	case 1:
		return mgl64.HomogRotate3DY(angle)
	default:
		return mgl64.HomogRotate3DZ(angle)
	}
}
