package tween

import (
	"log/slog"

	"github.com/matt-g-everett/tweentx/util"
)

// A Plugin binds one animatable property to a timeline: it owns a start
// value, end value(s) and an easing function, converts local elapsed time
// into an interpolated value and writes it through a setter capability. The
// core never inspects a target's structure; getter/setter closures are the
// property-setter interface.
type Plugin interface {
	// Startup captures the property's current value as the start value. For
	// relative bindings the end values become offsets from it; for absolute
	// spatial bindings a synthetic leading point is injected unless the
	// current value already coincides with the first end value.
	Startup()
	// Update interpolates at a local elapsed time and writes the value.
	Update(local float64)
	// Complete forces the value to the end state.
	Complete()
	// Rewind forces the value back to the start state.
	Rewind()
	// SetEaseReversed toggles whether the easing curve runs backward, used
	// on yoyo-inverse back passes.
	SetEaseReversed(reversed bool)
	// SetIncremental shifts the start/end values by delta loop-widths, so
	// successive incremental loops continue from the prior loop's end.
	SetIncremental(delta int)

	setDuration(d float64)
	setLogger(l *slog.Logger)
}

// pluginBase carries the timing and easing state every plugin shares.
type pluginBase struct {
	duration     float64
	ease         Ease
	easeReversed bool
	logger       *slog.Logger
}

func (b *pluginBase) setDuration(d float64) { b.duration = d }

func (b *pluginBase) setLogger(l *slog.Logger) {
	if l != nil {
		b.logger = l
	}
}

func (b *pluginBase) warn(msg string, args ...any) {
	if b.logger == nil {
		b.logger = nopLogger()
	}
	b.logger.Warn(msg, args...)
}

func (b *pluginBase) SetEaseReversed(reversed bool) { b.easeReversed = reversed }

func (b *pluginBase) setEase(fn Ease) {
	if fn != nil {
		b.ease = fn
	}
}

// position converts a local elapsed time into an eased percentage. A
// zero-duration binding is always at its end state.
func (b *pluginBase) position(local float64) float64 {
	if b.duration <= 0 {
		return 1
	}
	t := util.Clamp(local/b.duration, 0, 1)
	fn := b.ease
	if fn == nil {
		fn = easeLinear
	}
	if b.easeReversed {
		return 1 - fn(1-t)
	}
	return fn(t)
}
