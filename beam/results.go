package beam

// Results holds sampled result curves for each segment of a model.
// All outer slices are indexed by segment; the inner slices within one
// segment have equal length. X stations are world x coordinates along
// the beam axis, so curves can be plotted without knowing the segment
// layout.
type Results struct {
	X            [][]float64
	Moment       [][]float64
	Shear        [][]float64
	Displacement [][]float64
}

// maxAbs returns the largest absolute value in a per-segment sample
// set, or 0 when there are no samples.
func maxAbs(curves [][]float64) float64 {
	var max float64
	for _, seg := range curves {
		for _, v := range seg {
			if v < 0 {
				v = -v
			}
			if v > max {
				max = v
			}
		}
	}
	return max
}

// MaxMoment returns the largest absolute bending moment.
func (r *Results) MaxMoment() float64 { return maxAbs(r.Moment) }

// MaxShear returns the largest absolute shear force.
func (r *Results) MaxShear() float64 { return maxAbs(r.Shear) }

// MaxDisplacement returns the largest absolute displacement.
func (r *Results) MaxDisplacement() float64 { return maxAbs(r.Displacement) }

// Empty reports whether the results carry no samples at all.
func (r *Results) Empty() bool {
	if r == nil {
		return true
	}
	for _, seg := range r.X {
		if len(seg) > 0 {
			return false
		}
	}
	return true
}
