package tween

import "github.com/lucasb-eyer/go-colorful"

// ColorPlugin animates a color property by blending through the Hcl space,
// which keeps the intermediate colors perceptually even.
type ColorPlugin struct {
	pluginBase
	get func() colorful.Color
	set func(colorful.Color)

	end colorful.Color

	start colorful.Color
}

// Color creates a binding that blends a color property to end.
func Color(get func() colorful.Color, set func(colorful.Color), end colorful.Color) *ColorPlugin {
	p := new(ColorPlugin)
	p.get = get
	p.set = set
	p.end = end
	return p
}

// Eased sets the easing curve.
func (p *ColorPlugin) Eased(fn Ease) *ColorPlugin {
	p.setEase(fn)
	return p
}

func (p *ColorPlugin) Startup() {
	if p.get == nil || p.set == nil {
		p.warn("color binding is missing its getter or setter")
		return
	}
	p.start = p.get()
}

func (p *ColorPlugin) Update(local float64) {
	if p.set == nil {
		return
	}
	p.set(p.start.BlendHcl(p.end, p.position(local)))
}

func (p *ColorPlugin) Complete() {
	if p.set == nil {
		return
	}
	p.set(p.end)
}

func (p *ColorPlugin) Rewind() {
	if p.set == nil {
		return
	}
	p.set(p.start)
}

// SetIncremental shifts both endpoints by the loop-width in RGB space. The
// shifted colors may leave the displayable gamut; callers clamp at render
// time.
func (p *ColorPlugin) SetIncremental(delta int) {
	d := float64(delta)
	w := colorful.Color{R: p.end.R - p.start.R, G: p.end.G - p.start.G, B: p.end.B - p.start.B}
	p.start = colorful.Color{R: p.start.R + w.R*d, G: p.start.G + w.G*d, B: p.start.B + w.B*d}
	p.end = colorful.Color{R: p.end.R + w.R*d, G: p.end.G + w.G*d, B: p.end.B + w.B*d}
}
