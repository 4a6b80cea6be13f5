package path

import (
	"math"

	"github.com/matt-g-everett/tweentx/util"
)

// DefaultSubdivisions is the arc-length table resolution used when a
// measurement is needed but none was requested explicitly.
const DefaultSubdivisions = 100

// A Path is a Catmull-Rom spline through an ordered sequence of waypoints.
// Boundary control points are duplicated (or, for closed paths, wrapped) so
// the spline is evaluable over the full [0,1] domain, reaching the first and
// last waypoints with full curvature.
type Path struct {
	pts    []Point // control points, including the synthetic boundary points
	wp     int     // number of real waypoints
	closed bool

	// Arc-length measurement, populated by Measure.
	subdivisions int
	fractions    []float64 // each subdivision's share of total length
	spanLengths  []float64 // length of each waypoint-to-waypoint span
	length       float64
}

// New creates an open Path through the given waypoints. The first and last
// waypoints are duplicated as boundary control points. At least two waypoints
// are required for the path to be evaluable.
func New(waypoints ...Point) *Path {
	p := new(Path)
	p.wp = len(waypoints)
	p.pts = make([]Point, 0, len(waypoints)+2)
	if len(waypoints) > 0 {
		p.pts = append(p.pts, waypoints[0])
		p.pts = append(p.pts, waypoints...)
		p.pts = append(p.pts, waypoints[len(waypoints)-1])
	}
	return p
}

// NewClosed creates a closed Path: after the last waypoint the spline returns
// to the first. The closing segment is synthesized by wrapping the control
// points around the loop.
func NewClosed(waypoints ...Point) *Path {
	p := new(Path)
	p.wp = len(waypoints)
	p.closed = true
	p.pts = make([]Point, 0, len(waypoints)+3)
	if len(waypoints) >= 2 {
		p.pts = append(p.pts, waypoints[len(waypoints)-1])
		p.pts = append(p.pts, waypoints...)
		p.pts = append(p.pts, waypoints[0], waypoints[1])
	}
	return p
}

// Evaluable reports whether the path has enough control points to evaluate.
func (p *Path) Evaluable() bool {
	return len(p.pts) >= 4
}

// Closed reports whether the path loops back to its first waypoint.
func (p *Path) Closed() bool {
	return p.closed
}

// Len returns the number of real waypoints.
func (p *Path) Len() int {
	return p.wp
}

// Waypoints returns the real waypoints, without the boundary control points.
func (p *Path) Waypoints() []Point {
	if !p.Evaluable() {
		return nil
	}
	return p.pts[1 : 1+p.wp]
}

// segments returns the number of cubic segments.
func (p *Path) segments() int {
	return len(p.pts) - 3
}

// locate maps t in [0,1] to a segment index and a local parameter.
func (p *Path) locate(t float64) (int, float64) {
	n := p.segments()
	seg := int(math.Floor(t * float64(n)))
	if seg < 0 {
		seg = 0
	} else if seg > n-1 {
		seg = n - 1
	}
	return seg, t*float64(n) - float64(seg)
}

// At evaluates the spline position at t in [0,1]. A path with fewer than two
// waypoints is not evaluable and yields its sole waypoint, or the zero Point.
func (p *Path) At(t float64) Point {
	if !p.Evaluable() {
		if p.wp > 0 {
			return p.pts[1]
		}
		return Point{}
	}
	seg, u := p.locate(util.Clamp(t, 0, 1))
	a, b, c, d := p.pts[seg], p.pts[seg+1], p.pts[seg+2], p.pts[seg+3]

	u2 := u * u
	u3 := u2 * u
	res := a.Mul(-u3 + 2*u2 - u)
	res = res.Add(b.Mul(3*u3 - 5*u2 + 2))
	res = res.Add(c.Mul(-3*u3 + 4*u2 + u))
	res = res.Add(d.Mul(u3 - u2))
	return res.Mul(0.5)
}

// Velocity evaluates the analytic derivative of the spline at t, in units of
// distance per unit of local segment parameter. A non-evaluable path has no
// motion and yields the zero Point.
func (p *Path) Velocity(t float64) Point {
	if !p.Evaluable() {
		return Point{}
	}
	seg, u := p.locate(util.Clamp(t, 0, 1))
	a, b, c, d := p.pts[seg], p.pts[seg+1], p.pts[seg+2], p.pts[seg+3]

	u2 := u * u
	res := a.Mul(-u2).Add(b.Mul(3 * u2)).Add(c.Mul(-3 * u2)).Add(d.Mul(u2)).Mul(1.5)
	res = res.Add(a.Mul(2).Add(b.Mul(-5)).Add(c.Mul(4)).Sub(d).Mul(u))
	res = res.Add(c.Sub(a).Mul(0.5))
	return res
}

// Measured reports whether an arc-length table has been built.
func (p *Path) Measured() bool {
	return p.fractions != nil
}

// Length returns the approximate total path length. Zero until Measure runs.
func (p *Path) Length() float64 {
	return p.length
}

// Measure samples the path at the given number of equally spaced parameter
// subdivisions and builds the arc-length table used by ConstantSpeed and
// Slice. It is relatively expensive and therefore opt-in; accuracy improves
// with more subdivisions.
func (p *Path) Measure(subdivisions int) {
	if !p.Evaluable() {
		return
	}
	if subdivisions < 1 {
		subdivisions = DefaultSubdivisions
	}

	nSeg := p.segments()
	lengths := make([]float64, subdivisions)
	spans := make([]float64, nSeg)
	total := 0.0
	prev := p.At(0)
	for i := 0; i < subdivisions; i++ {
		t := float64(i+1) / float64(subdivisions)
		pt := p.At(t)
		l := prev.Distance(pt)
		lengths[i] = l
		total += l

		// Split the subdivision's length between the waypoint spans its
		// parameter interval overlaps, proportionally to the overlap.
		t0 := float64(i) / float64(subdivisions)
		s0 := int(t0 * float64(nSeg))
		if s0 > nSeg-1 {
			s0 = nSeg - 1
		}
		s1 := int(t * float64(nSeg))
		if s1 > nSeg-1 {
			s1 = nSeg - 1
		}
		if s0 == s1 {
			spans[s0] += l
		} else {
			for sp := s0; sp <= s1; sp++ {
				lo := math.Max(t0, float64(sp)/float64(nSeg))
				hi := math.Min(t, float64(sp+1)/float64(nSeg))
				spans[sp] += l * (hi - lo) / (t - t0)
			}
		}
		prev = pt
	}

	fractions := make([]float64, subdivisions)
	if total > 0 {
		for i, l := range lengths {
			fractions[i] = l / total
		}
	}

	p.subdivisions = subdivisions
	p.fractions = fractions
	p.spanLengths = spans
	p.length = total
}

// ConstantSpeed converts a linear time percentage into an effective parameter
// such that At(ConstantSpeed(t)) advances at approximately constant physical
// speed. It locates the subdivision whose cumulative length share first
// exceeds t and interpolates linearly within it, so the result is an
// approximation whose accuracy depends on the Measure resolution. Without a
// prior Measure it returns t unchanged.
func (p *Path) ConstantSpeed(tLinear float64) float64 {
	if p.fractions == nil {
		return tLinear
	}
	tLinear = util.Clamp(tLinear, 0, 1)
	if tLinear == 1 {
		return 1
	}

	cum := 0.0
	for i, f := range p.fractions {
		if cum+f >= tLinear {
			inner := 0.0
			if f > 0 {
				inner = (tLinear - cum) / f
			}
			return (float64(i) + inner) / float64(p.subdivisions)
		}
		cum += f
	}
	return 1
}

// SpanLengths returns the approximate length of each waypoint-to-waypoint
// span. Nil until Measure runs.
func (p *Path) SpanLengths() []float64 {
	return p.spanLengths
}

// Translate returns a copy of the path with every control point shifted by v.
// Translation preserves lengths, so any arc-length measurement carries over.
func (p *Path) Translate(v Point) *Path {
	np := new(Path)
	*np = *p
	np.pts = make([]Point, len(p.pts))
	for i, pt := range p.pts {
		np.pts[i] = pt.Add(v)
	}
	return np
}

// Slice returns a new open Path over the inclusive waypoint range [from, to],
// together with the sub-range's share of the total path length. It measures
// the path at the default resolution if no arc-length table exists yet. An
// invalid range yields (nil, 0).
func (p *Path) Slice(from, to int) (*Path, float64) {
	if !p.Evaluable() || from < 0 || to >= p.wp || to <= from {
		return nil, 0
	}
	if !p.Measured() {
		p.Measure(DefaultSubdivisions)
	}

	sub := New(p.Waypoints()[from : to+1]...)

	share := 0.0
	if p.length > 0 {
		part := 0.0
		for _, l := range p.spanLengths[from:to] {
			part += l
		}
		share = part / p.length
	}
	return sub, share
}
