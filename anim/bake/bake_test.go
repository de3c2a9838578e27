package bake

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/cwbudde/algo-anim/anim/euler"
	"github.com/cwbudde/algo-anim/anim/xform"
	"github.com/cwbudde/algo-anim/internal/testutil"
)

// sliceSource serves pre-built world matrices for frames first..first+n-1.
type sliceSource struct {
	first    int
	matrices []mgl64.Mat4
	order    euler.Order
	failAt   int
}

func (s *sliceSource) WorldMatrix(frame int) (mgl64.Mat4, error) {
	if s.failAt != 0 && frame == s.failAt {
		return mgl64.Mat4{}, errors.New("host evaluation failed")
	}

	i := frame - s.first
	if i < 0 || i >= len(s.matrices) {
		return mgl64.Mat4{}, fmt.Errorf("no sample for frame %d", frame)
	}

	return s.matrices[i], nil
}

func (s *sliceSource) RotationOrder() euler.Order { return s.order }

// movingSource builds a source whose rotation sweeps through the +/-180
// boundary on Z while translating along X.
func movingSource(t *testing.T, first, n int, order euler.Order) (*sliceSource, []mgl64.Vec3) {
	t.Helper()

	matrices := make([]mgl64.Mat4, n)
	rotations := make([]mgl64.Vec3, n)

	for i := 0; i < n; i++ {
		rotations[i] = mgl64.Vec3{0, 0, 150 + 10*float64(i)}

		m, err := xform.Compose(xform.Transform{
			Translation: mgl64.Vec3{float64(i), 0, 0},
			Rotation:    rotations[i],
			Scale:       mgl64.Vec3{1, 1, 1},
			Order:       order,
		})
		if err != nil {
			t.Fatal(err)
		}

		matrices[i] = m
	}

	return &sliceSource{first: first, matrices: matrices, order: order}, rotations
}

// --- validation ---

func TestConfigValidate(t *testing.T) {
	if err := (Config{First: 10, Last: 5, Order: euler.OrderXYZ}).Validate(); !errors.Is(err, ErrFrameRange) {
		t.Fatalf("got %v, want ErrFrameRange", err)
	}

	if err := (Config{First: 1, Last: 2, Order: euler.Order(42)}).Validate(); !errors.Is(err, euler.ErrInvalidOrder) {
		t.Fatalf("got %v, want ErrInvalidOrder", err)
	}

	if err := (Config{First: 1, Last: 2, Order: euler.Order(42), KeepOrder: true}).Validate(); err != nil {
		t.Fatalf("KeepOrder must skip order validation, got %v", err)
	}
}

func TestBakeNilSource(t *testing.T) {
	if _, err := Bake(nil, Config{First: 1, Last: 2, Order: euler.OrderXYZ}); !errors.Is(err, ErrNilSource) {
		t.Fatalf("got %v, want ErrNilSource", err)
	}
}

// --- baking ---

func TestBakeFrameEnumeration(t *testing.T) {
	src, _ := movingSource(t, 101, 8, euler.OrderZXY)

	res, err := Bake(src, Config{First: 101, Last: 108, Order: euler.OrderZXY})
	if err != nil {
		t.Fatal(err)
	}

	if len(res.Frames) != 8 {
		t.Fatalf("len(Frames) = %d, want 8", len(res.Frames))
	}

	for i, frame := range res.Frames {
		if frame != 101+i {
			t.Fatalf("Frames[%d] = %d, want %d", i, frame, 101+i)
		}
	}

	for i := range res.Translation {
		testutil.RequireVec3NearlyEqual(t, res.Translation[i], mgl64.Vec3{float64(i), 0, 0}, 1e-9)
		testutil.RequireVec3NearlyEqual(t, res.Scale[i], mgl64.Vec3{1, 1, 1}, 1e-9)
	}
}

func TestBakeResultsOrderedAcrossWorkers(t *testing.T) {
	const n = 64

	src, _ := movingSource(t, 0, n, euler.OrderXYZ)

	res, err := Bake(src, Config{First: 0, Last: n - 1, Order: euler.OrderXYZ, Workers: 7})
	if err != nil {
		t.Fatal(err)
	}

	for i := 0; i < n; i++ {
		testutil.RequireVec3NearlyEqual(t, res.Translation[i], mgl64.Vec3{float64(i), 0, 0}, 1e-9)
	}
}

func TestBakeFilterRemovesWrap(t *testing.T) {
	// Z sweeps 150..220; sampled angles wrap to negative past 180, the
	// filtered curve keeps climbing.
	src, want := movingSource(t, 1, 8, euler.OrderZXY)

	unfiltered, err := Bake(src, Config{First: 1, Last: 8, Order: euler.OrderZXY})
	if err != nil {
		t.Fatal(err)
	}

	wrapped := false

	for _, r := range unfiltered.Rotation {
		if r.Z() < 0 {
			wrapped = true
		}
	}

	if !wrapped {
		t.Fatal("fixture never crossed the +/-180 boundary")
	}

	filtered, err := Bake(src, Config{First: 1, Last: 8, Order: euler.OrderZXY, FilterRotations: true})
	if err != nil {
		t.Fatal(err)
	}

	for i, r := range filtered.Rotation {
		testutil.RequireVec3NearlyEqual(t, r, want[i], 1e-6)
	}
}

func TestBakeFilterTouchesOnlyRotation(t *testing.T) {
	src, _ := movingSource(t, 1, 8, euler.OrderZXY)

	plain, err := Bake(src, Config{First: 1, Last: 8, Order: euler.OrderZXY})
	if err != nil {
		t.Fatal(err)
	}

	filtered, err := Bake(src, Config{First: 1, Last: 8, Order: euler.OrderZXY, FilterRotations: true})
	if err != nil {
		t.Fatal(err)
	}

	for i := range plain.Translation {
		testutil.RequireVec3NearlyEqual(t, filtered.Translation[i], plain.Translation[i], 0)
		testutil.RequireVec3NearlyEqual(t, filtered.Scale[i], plain.Scale[i], 0)
	}
}

func TestBakeKeepMatrices(t *testing.T) {
	src, _ := movingSource(t, 1, 4, euler.OrderXYZ)

	res, err := Bake(src, Config{First: 1, Last: 4, Order: euler.OrderXYZ, KeepMatrices: true})
	if err != nil {
		t.Fatal(err)
	}

	if len(res.Matrices) != 4 {
		t.Fatalf("len(Matrices) = %d, want 4", len(res.Matrices))
	}

	for i := range res.Matrices {
		testutil.RequireMat4NearlyEqual(t, res.Matrices[i], src.matrices[i], 0)
	}

	res, err = Bake(src, Config{First: 1, Last: 4, Order: euler.OrderXYZ})
	if err != nil {
		t.Fatal(err)
	}

	if res.Matrices != nil {
		t.Fatal("Matrices must be nil unless requested")
	}
}

func TestBakeKeepOrder(t *testing.T) {
	src, _ := movingSource(t, 1, 4, euler.OrderYZX)

	res, err := Bake(src, Config{First: 1, Last: 4, KeepOrder: true})
	if err != nil {
		t.Fatal(err)
	}

	if res.Order != euler.OrderYZX {
		t.Fatalf("Order = %v, want YZX", res.Order)
	}
}

func TestBakeKeepOrderInvalidSourceOrder(t *testing.T) {
	src := &sliceSource{first: 1, matrices: make([]mgl64.Mat4, 2), order: euler.Order(12)}

	if _, err := Bake(src, Config{First: 1, Last: 2, KeepOrder: true}); !errors.Is(err, euler.ErrInvalidOrder) {
		t.Fatalf("got %v, want ErrInvalidOrder", err)
	}
}

func TestBakeSourceErrorCarriesFrame(t *testing.T) {
	src, _ := movingSource(t, 1, 8, euler.OrderZXY)
	src.failAt = 5

	_, err := Bake(src, Config{First: 1, Last: 8, Order: euler.OrderZXY})
	if err == nil {
		t.Fatal("expected error from failing source")
	}

	if !strings.Contains(err.Error(), "frame 5") {
		t.Fatalf("error %q does not name the failing frame", err)
	}
}

func TestBakeSingleFrame(t *testing.T) {
	src, want := movingSource(t, 7, 1, euler.OrderZXY)

	res, err := Bake(src, Config{First: 7, Last: 7, Order: euler.OrderZXY, FilterRotations: true})
	if err != nil {
		t.Fatal(err)
	}

	if len(res.Frames) != 1 || res.Frames[0] != 7 {
		t.Fatalf("Frames = %v, want [7]", res.Frames)
	}

	testutil.RequireVec3NearlyEqual(t, res.Rotation[0], want[0], 1e-9)
}
