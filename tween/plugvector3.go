package tween

import "github.com/matt-g-everett/tweentx/path"

// Vector3Plugin animates a 3D point property along a straight line.
type Vector3Plugin struct {
	pluginBase
	get func() path.Point
	set func(path.Point)

	end      path.Point
	relative bool

	start path.Point
	delta path.Point
}

// Vector3 creates a binding that animates a 3D property to end.
func Vector3(get func() path.Point, set func(path.Point), end path.Point) *Vector3Plugin {
	p := new(Vector3Plugin)
	p.get = get
	p.set = set
	p.end = end
	return p
}

// Eased sets the easing curve.
func (p *Vector3Plugin) Eased(fn Ease) *Vector3Plugin {
	p.setEase(fn)
	return p
}

// AsRelative treats end as an offset from the value at startup.
func (p *Vector3Plugin) AsRelative() *Vector3Plugin {
	p.relative = true
	return p
}

func (p *Vector3Plugin) Startup() {
	if p.get == nil || p.set == nil {
		p.warn("vector3 binding is missing its getter or setter")
		return
	}
	p.start = p.get()
	if p.relative {
		p.delta = p.end
	} else {
		p.delta = p.end.Sub(p.start)
	}
}

func (p *Vector3Plugin) Update(local float64) {
	if p.set == nil {
		return
	}
	p.set(p.start.Add(p.delta.Mul(p.position(local))))
}

func (p *Vector3Plugin) Complete() {
	if p.set == nil {
		return
	}
	p.set(p.start.Add(p.delta))
}

func (p *Vector3Plugin) Rewind() {
	if p.set == nil {
		return
	}
	p.set(p.start)
}

func (p *Vector3Plugin) SetIncremental(delta int) {
	p.start = p.start.Add(p.delta.Mul(float64(delta)))
}
