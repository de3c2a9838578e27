package xform_test

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/cwbudde/algo-anim/anim/euler"
	"github.com/cwbudde/algo-anim/anim/xform"
)

func ExampleDecompose() {
	m := mgl64.Translate3D(10, 0, -4).Mul4(mgl64.Scale3D(2, 0.9999999999, 1))

	tr, err := xform.Decompose(m, euler.OrderZXY)
	if err != nil {
		panic(err)
	}

	fmt.Println("translate:", tr.Translation)
	fmt.Println("rotate:   ", tr.Rotation)
	fmt.Println("scale:    ", tr.Scale)

	// Output:
	// translate: [10 0 -4]
	// rotate:    [0 0 0]
	// scale:     [2 1 1]
}
