package beam

import "errors"

// Support identifies the boundary condition at a node between two
// segments (or at either end of the beam).
type Support int

const (
	// Free leaves the node unconstrained.
	Free Support = iota
	// RollerY blocks vertical translation.
	RollerY
	// PinXY blocks horizontal and vertical translation.
	PinXY
	// FixedXYR blocks both translations and rotation.
	FixedXYR
)

// String returns a short label for the support kind.
func (s Support) String() string {
	switch s {
	case Free:
		return "free"
	case RollerY:
		return "roller"
	case PinXY:
		return "pin"
	case FixedXYR:
		return "fixed"
	}
	return "unknown"
}

// Section carries the material and cross-section properties of one
// segment: Young's modulus E [Pa], area A [m²], and second moment of
// area I [m⁴].
type Section struct {
	E float64
	A float64
	I float64
}

// Model describes a straight beam as a run of segments laid out along
// the positive x axis starting at the origin. Each segment has a
// length, a uniformly distributed vertical load (negative acts
// downward), and a cross section. Supports sit on the nodes, so there
// is always one more support entry than there are segments.
type Model struct {
	Lengths  []float64
	Loads    []float64
	Sections []Section
	Supports []Support
}

// defaultSection is an IPE-200-ish steel section.
var defaultSection = Section{E: 2.1e11, A: 2.85e-3, I: 1.94e-5}

// NewModel returns a simply supported beam of two 1 m segments with a
// pin at the left end and a roller at the right, no load applied.
func NewModel() *Model {
	return &Model{
		Lengths:  []float64{1, 1},
		Loads:    []float64{0, 0},
		Sections: []Section{defaultSection, defaultSection},
		Supports: []Support{PinXY, Free, RollerY},
	}
}

// ErrLastSegment is returned by RemoveSegment when the model is down
// to a single segment.
var ErrLastSegment = errors.New("beam: cannot remove the last segment")

// NumSegments returns the number of segments.
func (m *Model) NumSegments() int { return len(m.Lengths) }

// TotalLength returns the summed length of all segments.
func (m *Model) TotalLength() float64 {
	var sum float64
	for _, l := range m.Lengths {
		sum += l
	}
	return sum
}

// NodeX returns the x coordinate of node i (0 is the left end).
func (m *Model) NodeX(i int) float64 {
	var x float64
	for j := 0; j < i && j < len(m.Lengths); j++ {
		x += m.Lengths[j]
	}
	return x
}

// SegmentAt maps a world x coordinate to the index of the segment it
// falls on, or -1 when x lies outside the beam. The shared node
// between two segments belongs to the right one.
func (m *Model) SegmentAt(x float64) int {
	if x < 0 {
		return -1
	}
	var start float64
	for i, l := range m.Lengths {
		if x < start+l {
			return i
		}
		start += l
	}
	if len(m.Lengths) > 0 && x == start {
		return len(m.Lengths) - 1
	}
	return -1
}

// AddSegment appends a segment to the right end of the beam. The new
// segment inherits the length, load, and section of the current last
// segment, and the new right end gets a roller.
func (m *Model) AddSegment() {
	n := len(m.Lengths)
	if n == 0 {
		m.Lengths = []float64{1}
		m.Loads = []float64{0}
		m.Sections = []Section{defaultSection}
		m.Supports = []Support{PinXY, RollerY}
		return
	}
	m.Lengths = append(m.Lengths, m.Lengths[n-1])
	m.Loads = append(m.Loads, m.Loads[n-1])
	m.Sections = append(m.Sections, m.Sections[n-1])
	m.Supports = append(m.Supports, RollerY)
}

// RemoveSegment drops the last segment and its right-end support. A
// model always keeps at least one segment.
func (m *Model) RemoveSegment() error {
	n := len(m.Lengths)
	if n <= 1 {
		return ErrLastSegment
	}
	m.Lengths = m.Lengths[:n-1]
	m.Loads = m.Loads[:n-1]
	m.Sections = m.Sections[:n-1]
	m.Supports = m.Supports[:n]
	return nil
}
