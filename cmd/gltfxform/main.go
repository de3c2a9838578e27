// Command gltfxform prints the decomposed world transforms of every node in
// a glTF document.
//
// Usage:
//
//	gltfxform [flags] scene.gltf
//
// For each node the world matrix is accumulated down the scene hierarchy
// (node matrix or TRS properties, with glTF defaults) and decomposed into
// translate, Euler rotate (degrees), and scale.
//
// Examples:
//
//	gltfxform scene.gltf
//	gltfxform -order XYZ model.glb
package main

import (
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/qmuntal/gltf"

	"github.com/cwbudde/algo-anim/anim/euler"
	"github.com/cwbudde/algo-anim/anim/xform"
)

func main() {
	orderFlag := flag.String("order", "ZXY", "rotation order for the decomposed angles")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: gltfxform [flags] scene.gltf")
		flag.PrintDefaults()
		os.Exit(2)
	}

	if err := run(flag.Arg(0), *orderFlag); err != nil {
		fmt.Fprintln(os.Stderr, "gltfxform:", err)
		os.Exit(1)
	}
}

func run(path, orderToken string) error {
	order, err := euler.ParseOrder(orderToken)
	if err != nil {
		return fmt.Errorf("-order %q: %w", orderToken, err)
	}

	doc, err := gltf.Open(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "node\ttx\tty\ttz\trx\try\trz\tsx\tsy\tsz\t\n")

	for _, scene := range doc.Scenes {
		for _, root := range scene.Nodes {
			if err := walk(tw, doc, root, mgl64.Ident4(), order, 0); err != nil {
				return err
			}
		}
	}

	return tw.Flush()
}

func walk(tw *tabwriter.Writer, doc *gltf.Document, index uint32, parent mgl64.Mat4, order euler.Order, depth int) error {
	if int(index) >= len(doc.Nodes) {
		return fmt.Errorf("node index %d out of range", index)
	}

	node := doc.Nodes[index]
	world := parent.Mul4(localMatrix(node))

	tr, err := xform.Decompose(world, order)
	if err != nil {
		return fmt.Errorf("node %q: %w", node.Name, err)
	}

	name := node.Name
	if name == "" {
		name = fmt.Sprintf("#%d", index)
	}

	for i := 0; i < depth; i++ {
		name = "  " + name
	}

	fmt.Fprintf(tw, "%s\t%.6g\t%.6g\t%.6g\t%.6g\t%.6g\t%.6g\t%.6g\t%.6g\t%.6g\t\n",
		name,
		tr.Translation.X(), tr.Translation.Y(), tr.Translation.Z(),
		tr.Rotation.X(), tr.Rotation.Y(), tr.Rotation.Z(),
		tr.Scale.X(), tr.Scale.Y(), tr.Scale.Z())

	for _, child := range node.Children {
		if err := walk(tw, doc, child, world, order, depth+1); err != nil {
			return err
		}
	}

	return nil
}

// localMatrix returns the node's local transform. glTF nodes carry either an
// explicit column-major matrix or TRS properties; absent properties take the
// spec defaults (zero translation, identity rotation, unit scale).
func localMatrix(node *gltf.Node) mgl64.Mat4 {
	if m, ok := explicitMatrix(node); ok {
		return m
	}

	translate := mgl64.Translate3D(
		float64(node.Translation[0]),
		float64(node.Translation[1]),
		float64(node.Translation[2]),
	)

	rotate := mgl64.Ident4()

	if q := node.Rotation; q != [4]float32{} {
		quat := mgl64.Quat{
			W: float64(q[3]),
			V: mgl64.Vec3{float64(q[0]), float64(q[1]), float64(q[2])},
		}
		rotate = quat.Normalize().Mat4()
	}

	scale := mgl64.Ident4()

	if s := node.Scale; s != [3]float32{} {
		scale = mgl64.Scale3D(float64(s[0]), float64(s[1]), float64(s[2]))
	}

	return translate.Mul4(rotate).Mul4(scale)
}

// explicitMatrix reports the node's matrix property when it is actually set.
// An all-zero or identity matrix is treated as absent; for identity the TRS
// path composes the same transform anyway.
func explicitMatrix(node *gltf.Node) (mgl64.Mat4, bool) {
	zero := true
	identity := true

	for i, v := range node.Matrix {
		if v != 0 {
			zero = false
		}

		want := float32(0)
		if i%5 == 0 {
			want = 1
		}

		if v != want {
			identity = false
		}
	}

	if zero || identity {
		return mgl64.Mat4{}, false
	}

	var m mgl64.Mat4
	for i, v := range node.Matrix {
		m[i] = float64(v)
	}

	return m, true
}
