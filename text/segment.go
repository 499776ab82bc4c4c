package text

import "golang.org/x/text/unicode/bidi"

// Run is a contiguous span of text with a single direction.
type Run struct {
	Text string
	RTL  bool
}

// splitRuns splits a string into directional runs using the Unicode
// bidirectional algorithm. Left-to-right text comes back as a single run.
func splitRuns(s string) []Run {
	if s == "" {
		return []Run{{}}
	}
	var p bidi.Paragraph
	p.SetString(s)
	order, err := p.Order()
	if err != nil {
		return []Run{{Text: s}}
	}

	runs := make([]Run, 0, order.NumRuns())
	for i := 0; i < order.NumRuns(); i++ {
		r := order.Run(i)
		runs = append(runs, Run{
			Text: r.String(),
			RTL:  r.Direction() == bidi.RightToLeft,
		})
	}
	return runs
}
