package tween

import (
	"github.com/matt-g-everett/tweentx/path"
	"github.com/matt-g-everett/tweentx/util"
)

// OrientMode selects how a path-bound target is rotated after each position
// update.
type OrientMode int

const (
	// OrientNone leaves the target's orientation alone.
	OrientNone OrientMode = iota
	// OrientToPath faces the target along the path's forward tangent,
	// computed by sampling the path slightly ahead of the current parameter.
	OrientToPath
	// OrientLookAtPoint faces the target toward a fixed point.
	OrientLookAtPoint
	// OrientLookAtTarget faces the target toward a moving point read through
	// a getter capability.
	OrientLookAtTarget
)

const defaultLookAhead = 0.0001

// PathPlugin animates a 3D point property along a Catmull-Rom spline path,
// optionally at constant physical speed.
type PathPlugin struct {
	pluginBase
	get func() path.Point
	set func(path.Point)

	p        *path.Path
	relative bool

	constantSpeed bool
	subdivisions  int

	orient       OrientMode
	face         func(path.Point)
	lookAhead    float64
	lookAtPoint  path.Point
	lookAtTarget func() path.Point

	built          bool
	syntheticFirst bool
	perc           float64 // current path percentage, read-only telemetry
}

// PathTo creates a binding that moves a 3D property along p.
func PathTo(get func() path.Point, set func(path.Point), p *path.Path) *PathPlugin {
	pl := new(PathPlugin)
	pl.get = get
	pl.set = set
	pl.p = p
	return pl
}

// Eased sets the easing curve.
func (p *PathPlugin) Eased(fn Ease) *PathPlugin {
	p.setEase(fn)
	return p
}

// AsRelative treats the path waypoints as offsets from the value at startup.
func (p *PathPlugin) AsRelative() *PathPlugin {
	p.relative = true
	return p
}

// AtConstantSpeed makes traversal advance at approximately constant physical
// speed instead of constant parameter speed. The arc-length table is built at
// startup with the given number of subdivisions (<= 0 selects the default);
// this is the expensive, opt-in part of path setup.
func (p *PathPlugin) AtConstantSpeed(subdivisions int) *PathPlugin {
	p.constantSpeed = true
	p.subdivisions = subdivisions
	return p
}

// OrientedToPath rotates the target along the path's forward tangent after
// each position update, through the given facing capability. lookAhead is the
// parameter offset used to sample ahead; <= 0 selects the default.
func (p *PathPlugin) OrientedToPath(face func(path.Point), lookAhead float64) *PathPlugin {
	p.orient = OrientToPath
	p.face = face
	if lookAhead <= 0 {
		lookAhead = defaultLookAhead
	}
	p.lookAhead = lookAhead
	return p
}

// LookingAtPoint keeps the target facing a fixed point while it travels.
func (p *PathPlugin) LookingAtPoint(face func(path.Point), pt path.Point) *PathPlugin {
	p.orient = OrientLookAtPoint
	p.face = face
	p.lookAtPoint = pt
	return p
}

// LookingAtTarget keeps the target facing a moving point while it travels.
func (p *PathPlugin) LookingAtTarget(face func(path.Point), get func() path.Point) *PathPlugin {
	p.orient = OrientLookAtTarget
	p.face = face
	p.lookAtTarget = get
	return p
}

// Path returns the spline the binding currently follows.
func (p *PathPlugin) Path() *path.Path { return p.p }

// Percentage returns the effective path parameter of the last update.
func (p *PathPlugin) Percentage() float64 { return p.perc }

func (p *PathPlugin) Startup() {
	if p.get == nil || p.set == nil {
		p.warn("path binding is missing its getter or setter")
		return
	}
	if p.built {
		p.measureIfNeeded()
		return
	}
	p.built = true

	cur := p.get()
	wps := append([]path.Point(nil), p.p.Waypoints()...)
	if len(wps) == 0 {
		p.warn("path binding has no usable waypoints")
		return
	}

	if p.relative {
		// The waypoints are offsets from the property's current value.
		for i := range wps {
			wps[i] = wps[i].Add(cur)
		}
	} else if !util.Approximately(cur.Distance(wps[0]), 0) {
		// Inject a synthetic leading point so the motion begins exactly
		// where the target currently is.
		wps = append([]path.Point{cur}, wps...)
		p.syntheticFirst = true
	}

	if p.p.Closed() {
		p.p = path.NewClosed(wps...)
	} else {
		p.p = path.New(wps...)
	}
	p.measureIfNeeded()
}

func (p *PathPlugin) measureIfNeeded() {
	if p.constantSpeed && !p.p.Measured() {
		p.p.Measure(p.subdivisions)
	}
}

func (p *PathPlugin) Update(local float64) {
	if p.set == nil || !p.p.Evaluable() {
		return
	}
	t := p.position(local)
	if p.constantSpeed {
		t = p.p.ConstantSpeed(t)
	}
	p.perc = t
	p.set(p.p.At(t))

	if p.face == nil {
		return
	}
	switch p.orient {
	case OrientToPath:
		p.face(p.p.At(util.Clamp(t+p.lookAhead, 0, 1)))
	case OrientLookAtPoint:
		p.face(p.lookAtPoint)
	case OrientLookAtTarget:
		if p.lookAtTarget != nil {
			p.face(p.lookAtTarget())
		}
	}
}

func (p *PathPlugin) Complete() {
	p.Update(p.duration)
}

func (p *PathPlugin) Rewind() {
	p.Update(0)
}

// SetIncremental translates the whole path by delta times the start-to-end
// span, so incremental loops keep travelling instead of snapping back.
func (p *PathPlugin) SetIncremental(delta int) {
	wps := p.p.Waypoints()
	if len(wps) < 2 {
		return
	}
	span := wps[len(wps)-1].Sub(wps[0]).Mul(float64(delta))
	p.p = p.p.Translate(span)
}

// slice builds a sub-path over the inclusive user-facing waypoint range,
// converting the indices past any synthetic leading point, and returns it
// with the sub-range's share of total path length.
func (p *PathPlugin) slice(from, to int) (*path.Path, float64) {
	offset := 0
	if p.syntheticFirst {
		offset = 1
	}
	return p.p.Slice(from+offset, to+offset)
}

// withPath clones the binding onto a prebuilt path, used by partial-path
// restrictions. The clone skips startup injection.
func (p *PathPlugin) withPath(sub *path.Path) *PathPlugin {
	np := new(PathPlugin)
	*np = *p
	np.p = sub
	np.built = true
	np.syntheticFirst = false
	np.perc = 0
	np.measureIfNeeded()
	return np
}
