// Command beamsnap renders a beam diagram offscreen with the software
// backend and writes it to a PNG file. It is the headless counterpart
// of beamview and is handy for docs and golden images.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/gogpu/drawview"
	"github.com/gogpu/drawview/backend/soft"
	"github.com/gogpu/drawview/beam"
)

func main() {
	out := flag.String("o", "beam.png", "output file")
	width := flag.Int("w", 900, "image width")
	height := flag.Int("h", 600, "image height")
	flag.Parse()

	if err := run(*out, *width, *height); err != nil {
		fmt.Fprintln(os.Stderr, "beamsnap:", err)
		os.Exit(1)
	}
}

func run(out string, w, h int) error {
	r, err := soft.New(w, h)
	if err != nil {
		return err
	}

	model := beam.NewModel()
	model.AddSegment()
	for i := range model.Lengths {
		model.Lengths[i] = 2
		model.Loads[i] = -10
	}

	diagram := beam.NewDiagram(model)
	diagram.Results = results(model, 40)

	view := drawview.New(r, drawview.WithBackground(drawview.Hex("#fafaf7")))
	diagram.Bind(view)
	if err := diagram.FitView(view); err != nil {
		return err
	}
	return r.SavePNG(out)
}

// results samples the closed-form simply-supported uniform-load curves
// over the whole beam, n samples per segment.
func results(m *beam.Model, n int) *beam.Results {
	l := m.TotalLength()
	q := 10.0
	ei := m.Sections[0].E * m.Sections[0].I

	r := &beam.Results{
		X:            make([][]float64, m.NumSegments()),
		Moment:       make([][]float64, m.NumSegments()),
		Shear:        make([][]float64, m.NumSegments()),
		Displacement: make([][]float64, m.NumSegments()),
	}
	for i := 0; i < m.NumSegments(); i++ {
		x0 := m.NodeX(i)
		for k := 0; k <= n; k++ {
			x := x0 + m.Lengths[i]*float64(k)/float64(n)
			r.X[i] = append(r.X[i], x)
			r.Shear[i] = append(r.Shear[i], q*(l/2-x))
			r.Moment[i] = append(r.Moment[i], q*x*(l-x)/2)
			r.Displacement[i] = append(r.Displacement[i],
				-q*x*(l*l*l-2*l*x*x+x*x*x)/(24*ei))
		}
	}
	return r
}
