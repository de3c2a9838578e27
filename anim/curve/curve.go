// Package curve holds baked per-frame animation channels in the shape host
// applications key them: one scalar value per frame per axis. It also
// provides block degree/radian conversion for packed angle channels.
package curve

import (
	"errors"
	"math"

	"github.com/cwbudde/algo-vecmath"
	"github.com/go-gl/mathgl/mgl64"
)

// Errors returned by channel operations.
var (
	ErrLengthMismatch = errors.New("curve: frames and values differ in length")
	ErrChannelShape   = errors.New("curve: channels differ in frames")
)

// Channel is one keyed scalar curve: Values[i] is keyed at frame Frames[i].
// Frames are expected in ascending order; the package does not sort.
type Channel struct {
	Frames []int
	Values []float64
}

// Validate checks the frame/value pairing.
func (c Channel) Validate() error {
	if len(c.Frames) != len(c.Values) {
		return ErrLengthMismatch
	}

	return nil
}

// Constant reports whether all keyed values agree within eps (absolute).
// Hosts use this to drop animation from channels that never move; eps <= 0
// means exact comparison. An empty channel is constant.
func (c Channel) Constant(eps float64) bool {
	if len(c.Values) < 2 {
		return true
	}

	first := c.Values[0]
	for _, v := range c.Values[1:] {
		if math.Abs(v-first) > eps {
			return false
		}
	}

	return true
}

// SplitVec3 unpacks a per-frame vector series into X, Y, and Z channels
// sharing the frames slice.
func SplitVec3(frames []int, values []mgl64.Vec3) [3]Channel {
	var out [3]Channel

	for axis := range out {
		ch := Channel{Frames: frames, Values: make([]float64, len(values))}
		for i, v := range values {
			ch.Values[i] = v[axis]
		}

		out[axis] = ch
	}

	return out
}

// JoinVec3 is the inverse of [SplitVec3]. All three channels must share the
// same frames.
func JoinVec3(channels [3]Channel) ([]int, []mgl64.Vec3, error) {
	for _, ch := range channels {
		if err := ch.Validate(); err != nil {
			return nil, nil, err
		}
	}

	frames := channels[0].Frames
	for _, ch := range channels[1:] {
		if len(ch.Frames) != len(frames) {
			return nil, nil, ErrChannelShape
		}

		for i, f := range ch.Frames {
			if f != frames[i] {
				return nil, nil, ErrChannelShape
			}
		}
	}

	values := make([]mgl64.Vec3, len(frames))
	for axis, ch := range channels {
		for i, v := range ch.Values {
			values[i][axis] = v
		}
	}

	return frames, values, nil
}

// DegreesToRadians converts a packed angle channel into dst.
// Both slices must have the same length.
func DegreesToRadians(dst, src []float64) {
	vecmath.ScaleBlock(dst, src, math.Pi/180)
}

// RadiansToDegrees converts a packed angle channel into dst.
// Both slices must have the same length.
func RadiansToDegrees(dst, src []float64) {
	vecmath.ScaleBlock(dst, src, 180/math.Pi)
}
