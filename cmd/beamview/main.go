// Command beamview opens a devdraw window showing a beam diagram with
// distributed loads, supports, dimension chains, and result curves.
// Clicking a segment selects it; the keys m, s, d and n toggle the
// moment, shear, displacement and dimension overlays. 'q' quits.
//
// It needs a running devdraw (plan9port) to talk to.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/gogpu/drawview"
	"github.com/gogpu/drawview/backend/devdraw"
	"github.com/gogpu/drawview/beam"
)

func main() {
	winsize := flag.String("size", "900x600", "initial window size")
	verbose := flag.Bool("v", false, "enable debug logging")
	flag.Parse()

	if *verbose {
		drawview.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	if err := run(*winsize); err != nil {
		fmt.Fprintln(os.Stderr, "beamview:", err)
		os.Exit(1)
	}
}

func run(winsize string) error {
	app, err := devdraw.New("beamview", winsize)
	if err != nil {
		return err
	}

	model := demoModel()
	diagram := beam.NewDiagram(model)
	diagram.Results = demoResults(model, 40)
	diagram.OnSegmentSelected = func(seg int) {
		if seg >= 0 {
			fmt.Printf("segment %d: %.2f m, %.1f kN/m\n",
				seg, model.Lengths[seg], model.Loads[seg])
		}
	}

	view := app.View(drawview.WithBackground(drawview.Hex("#fafaf7")))
	diagram.Bind(view)
	if err := diagram.FitView(view); err != nil {
		return err
	}

	app.OnKey = func(r rune) {
		switch r {
		case 'm':
			diagram.ShowMoment = !diagram.ShowMoment
		case 's':
			diagram.ShowShear = !diagram.ShowShear
		case 'd':
			diagram.ShowDisplacement = !diagram.ShowDisplacement
		case 'n':
			diagram.ShowDimensions = !diagram.ShowDimensions
		default:
			return
		}
		if err := view.Redraw(); err != nil {
			fmt.Fprintln(os.Stderr, "beamview: redraw:", err)
		}
	}

	return app.Run()
}

// demoModel is a three-segment beam under a uniform downward load.
func demoModel() *beam.Model {
	m := beam.NewModel()
	m.AddSegment()
	for i := range m.Lengths {
		m.Lengths[i] = 2
		m.Loads[i] = -10
	}
	return m
}

// demoResults samples the textbook closed-form curves for a simply
// supported beam of length L under uniform load q:
//
//	V(x) = q (L/2 - x)
//	M(x) = q x (L - x) / 2
//	w(x) = -q x (L³ - 2Lx² + x³) / (24 E I)
//
// It treats the whole beam as one span, which matches the demo model's
// end supports. n is the number of samples per segment.
func demoResults(m *beam.Model, n int) *beam.Results {
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
