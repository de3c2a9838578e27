// Command xformbake bakes per-frame world matrices into translate/rotate/
// scale curves, with the Euler continuity filter applied to the rotations.
//
// Usage:
//
//	xformbake [flags] samples.json
//
// The input is a JSON document with the sampled matrices, row-major:
//
//	{
//	  "order": "ZXY",
//	  "first": 1,
//	  "frames": [[16 numbers], [16 numbers], ...]
//	}
//
// "-" reads the document from stdin.
//
// Examples:
//
//	xformbake samples.json
//	xformbake -order XYZ -json samples.json
//	xformbake -no-filter -matrices -json samples.json
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/cwbudde/algo-anim/anim/bake"
	"github.com/cwbudde/algo-anim/anim/euler"
)

type sampleDoc struct {
	Order  string      `json:"order"`
	First  int         `json:"first"`
	Frames [][]float64 `json:"frames"`
}

// matrixSource adapts a sample document to the bake.Source boundary.
type matrixSource struct {
	first    int
	matrices []mgl64.Mat4
	order    euler.Order
}

func (s *matrixSource) WorldMatrix(frame int) (mgl64.Mat4, error) {
	i := frame - s.first
	if i < 0 || i >= len(s.matrices) {
		return mgl64.Mat4{}, fmt.Errorf("no sample for frame %d", frame)
	}

	return s.matrices[i], nil
}

func (s *matrixSource) RotationOrder() euler.Order { return s.order }

type curveDoc struct {
	Order     string       `json:"order"`
	Frames    []int        `json:"frames"`
	Translate [][3]float64 `json:"translate"`
	Rotate    [][3]float64 `json:"rotate"`
	Scale     [][3]float64 `json:"scale"`
	Matrices  [][]float64  `json:"matrices,omitempty"`
}

func main() {
	orderFlag := flag.String("order", "", "rotation order (XYZ, XZY, YXZ, YZX, ZXY, ZYX); empty keeps the document's order")
	noFilter := flag.Bool("no-filter", false, "skip the Euler continuity filter")
	matrices := flag.Bool("matrices", false, "include the raw matrices in JSON output")
	asJSON := flag.Bool("json", false, "emit JSON curves instead of a table")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: xformbake [flags] samples.json")
		flag.PrintDefaults()
		os.Exit(2)
	}

	if err := run(flag.Arg(0), *orderFlag, *noFilter, *matrices, *asJSON); err != nil {
		fmt.Fprintln(os.Stderr, "xformbake:", err)
		os.Exit(1)
	}
}

func run(path, orderToken string, noFilter, matrices, asJSON bool) error {
	doc, err := loadSamples(path)
	if err != nil {
		return err
	}

	src, err := newSource(doc)
	if err != nil {
		return err
	}

	cfg := bake.Config{
		First:           doc.First,
		Last:            doc.First + len(src.matrices) - 1,
		KeepOrder:       true,
		FilterRotations: !noFilter,
		KeepMatrices:    matrices,
	}

	if orderToken != "" {
		order, err := euler.ParseOrder(orderToken)
		if err != nil {
			return fmt.Errorf("-order %q: %w", orderToken, err)
		}

		cfg.Order = order
		cfg.KeepOrder = false
	}

	res, err := bake.Bake(src, cfg)
	if err != nil {
		return err
	}

	if asJSON {
		return writeJSON(os.Stdout, res)
	}

	return writeTable(os.Stdout, res)
}

func loadSamples(path string) (*sampleDoc, error) {
	var r io.Reader = os.Stdin

	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()

		r = f
	}

	var doc sampleDoc
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("parse samples: %w", err)
	}

	if len(doc.Frames) == 0 {
		return nil, fmt.Errorf("document contains no frames")
	}

	return &doc, nil
}

func newSource(doc *sampleDoc) (*matrixSource, error) {
	order, err := euler.ParseOrder(doc.Order)
	if err != nil {
		return nil, fmt.Errorf("document order %q: %w", doc.Order, err)
	}

	src := &matrixSource{first: doc.First, order: order}

	for i, row := range doc.Frames {
		if len(row) != 16 {
			return nil, fmt.Errorf("frame %d: got %d matrix elements, want 16", doc.First+i, len(row))
		}

		src.matrices = append(src.matrices, fromRowMajor(row))
	}

	return src, nil
}

// fromRowMajor transposes a row-major 16-element list into a column-major
// mgl64.Mat4, the way hosts typically serialize matrix knobs.
func fromRowMajor(row []float64) mgl64.Mat4 {
	var m mgl64.Mat4
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			m[c*4+r] = row[r*4+c]
		}
	}

	return m
}

func toRowMajor(m mgl64.Mat4) []float64 {
	out := make([]float64, 16)
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			out[r*4+c] = m[c*4+r]
		}
	}

	return out
}

func writeTable(w io.Writer, res *bake.Result) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)

	fmt.Fprintf(tw, "frame\ttx\tty\ttz\trx\try\trz\tsx\tsy\tsz\t\n")

	for i, frame := range res.Frames {
		fmt.Fprintf(tw, "%d\t%.6g\t%.6g\t%.6g\t%.6g\t%.6g\t%.6g\t%.6g\t%.6g\t%.6g\t\n",
			frame,
			res.Translation[i].X(), res.Translation[i].Y(), res.Translation[i].Z(),
			res.Rotation[i].X(), res.Rotation[i].Y(), res.Rotation[i].Z(),
			res.Scale[i].X(), res.Scale[i].Y(), res.Scale[i].Z())
	}

	return tw.Flush()
}

func writeJSON(w io.Writer, res *bake.Result) error {
	doc := curveDoc{
		Order:     res.Order.String(),
		Frames:    res.Frames,
		Translate: packVec3(res.Translation),
		Rotate:    packVec3(res.Rotation),
		Scale:     packVec3(res.Scale),
	}

	for _, m := range res.Matrices {
		doc.Matrices = append(doc.Matrices, toRowMajor(m))
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(doc)
}

func packVec3(values []mgl64.Vec3) [][3]float64 {
	out := make([][3]float64, len(values))
	for i, v := range values {
		out[i] = [3]float64(v)
	}

	return out
}
