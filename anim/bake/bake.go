package bake

import (
	"errors"
	"fmt"
	"runtime"
	"sync"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/cwbudde/algo-anim/anim/euler"
	"github.com/cwbudde/algo-anim/anim/xform"
)

// Errors returned by Bake and Config.Validate.
var (
	ErrNilSource  = errors.New("bake: source is nil")
	ErrFrameRange = errors.New("bake: last frame precedes first frame")
)

// Source is the host boundary: it evaluates an object's world matrix at a
// frame and knows the object's native rotation order.
type Source interface {
	// WorldMatrix returns the world transform sampled at the given frame.
	WorldMatrix(frame int) (mgl64.Mat4, error)

	// RotationOrder returns the object's current rotation order, used when
	// the bake is configured to keep it.
	RotationOrder() euler.Order
}

// Config describes one bake run.
type Config struct {
	// First and Last bound the sampled frame range, inclusive.
	First, Last int

	// Order selects the rotation order for decomposition. It is ignored
	// when KeepOrder is set, in which case the source's own order is used.
	Order     euler.Order
	KeepOrder bool

	// FilterRotations runs the Euler continuity filter over the baked
	// rotation sequence.
	FilterRotations bool

	// KeepMatrices retains the raw sampled matrices in the result, for
	// hosts that key the matrix directly instead of decomposed values.
	KeepMatrices bool

	// Workers bounds the decomposition fan-out; <= 0 means GOMAXPROCS.
	Workers int
}

// Validate checks the frame range and, unless KeepOrder is set, the order.
func (c Config) Validate() error {
	if c.Last < c.First {
		return ErrFrameRange
	}

	if !c.KeepOrder && !c.Order.Valid() {
		return euler.ErrInvalidOrder
	}

	return nil
}

// Result holds the baked per-frame curves. All slices share the indexing of
// Frames; Matrices is nil unless KeepMatrices was set.
type Result struct {
	Frames      []int
	Translation []mgl64.Vec3
	Rotation    []mgl64.Vec3
	Scale       []mgl64.Vec3
	Matrices    []mgl64.Mat4
	Order       euler.Order
}

// Bake samples src over the configured frame range and returns the
// decomposed, optionally rotation-filtered, per-frame curves. Frames are
// decomposed concurrently; results are ordered by frame regardless of
// scheduling. The first source or decomposition error aborts the bake,
// annotated with the failing frame.
func Bake(src Source, cfg Config) (*Result, error) {
	if src == nil {
		return nil, ErrNilSource
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	order := cfg.Order
	if cfg.KeepOrder {
		order = src.RotationOrder()
		if !order.Valid() {
			return nil, fmt.Errorf("bake: source order: %w", euler.ErrInvalidOrder)
		}
	}

	n := cfg.Last - cfg.First + 1

	res := &Result{
		Frames:      make([]int, n),
		Translation: make([]mgl64.Vec3, n),
		Rotation:    make([]mgl64.Vec3, n),
		Scale:       make([]mgl64.Vec3, n),
		Order:       order,
	}

	if cfg.KeepMatrices {
		res.Matrices = make([]mgl64.Mat4, n)
	}

	errs := make([]error, n)

	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	if workers > n {
		workers = n
	}

	jobs := make(chan int)

	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)

		go func() {
			defer wg.Done()

			for i := range jobs {
				frame := cfg.First + i
				res.Frames[i] = frame

				m, err := src.WorldMatrix(frame)
				if err != nil {
					errs[i] = fmt.Errorf("bake: frame %d: %w", frame, err)

					continue
				}

				t, err := xform.Decompose(m, order)
				if err != nil {
					errs[i] = fmt.Errorf("bake: frame %d: %w", frame, err)

					continue
				}

				res.Translation[i] = t.Translation
				res.Rotation[i] = t.Rotation
				res.Scale[i] = t.Scale

				if res.Matrices != nil {
					res.Matrices[i] = m
				}
			}
		}()
	}

	for i := 0; i < n; i++ {
		jobs <- i
	}

	close(jobs)
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	if cfg.FilterRotations {
		filtered, err := euler.Filter(order, res.Rotation)
		if err != nil {
			return nil, fmt.Errorf("bake: filter: %w", err)
		}

		res.Rotation = filtered
	}

	return res, nil
}
