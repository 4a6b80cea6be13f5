package tween

// FloatPlugin animates a scalar property.
type FloatPlugin struct {
	pluginBase
	get func() float64
	set func(float64)

	end      float64
	relative bool

	start float64
	delta float64
}

// Float creates a binding that animates a scalar property to end, reading and
// writing it through the given capability pair.
func Float(get func() float64, set func(float64), end float64) *FloatPlugin {
	p := new(FloatPlugin)
	p.get = get
	p.set = set
	p.end = end
	return p
}

// Eased sets the easing curve.
func (p *FloatPlugin) Eased(fn Ease) *FloatPlugin {
	p.setEase(fn)
	return p
}

// AsRelative treats end as an offset from the value at startup.
func (p *FloatPlugin) AsRelative() *FloatPlugin {
	p.relative = true
	return p
}

func (p *FloatPlugin) Startup() {
	if p.get == nil || p.set == nil {
		p.warn("float binding is missing its getter or setter")
		return
	}
	p.start = p.get()
	if p.relative {
		p.delta = p.end
	} else {
		p.delta = p.end - p.start
	}
}

func (p *FloatPlugin) Update(local float64) {
	if p.set == nil {
		return
	}
	p.set(p.start + p.delta*p.position(local))
}

func (p *FloatPlugin) Complete() {
	if p.set == nil {
		return
	}
	p.set(p.start + p.delta)
}

func (p *FloatPlugin) Rewind() {
	if p.set == nil {
		return
	}
	p.set(p.start)
}

func (p *FloatPlugin) SetIncremental(delta int) {
	p.start += p.delta * float64(delta)
}
