package tween

import "log/slog"

// A Tweener is a single animation: one target, an ordered set of property
// bindings sharing one timeline, and the elapsed/loop/delay state machine
// that drives them.
type Tweener struct {
	component
	target  any
	plugins []Plugin

	// Binding set archived by UsePartialPath, restored by ResetPath.
	archivedPlugins  []Plugin
	archivedDuration float64
}

// New creates a Tweener animating target's bindings over duration seconds.
// It plays as soon as it is advanced; tweens auto-kill on completion unless
// configured otherwise.
func New(target any, duration float64, plugins ...Plugin) *Tweener {
	tw := new(Tweener)
	tw.init(tw)
	tw.target = target
	tw.autoKill = true
	tw.setDuration(duration)
	for _, p := range plugins {
		if p != nil {
			tw.plugins = append(tw.plugins, p)
		}
	}
	return tw
}

// Loops configures the loop count (negative for infinite) and loop type.
func (tw *Tweener) Loops(count int, lt LoopType) *Tweener {
	tw.setLoops(count, lt)
	return tw
}

// Delayed sets the pre-start waiting window in seconds.
func (tw *Tweener) Delayed(d float64) *Tweener {
	if d > 0 {
		tw.delay = d
	}
	return tw
}

// Scaled sets the time-scale factor applied to every advance delta.
func (tw *Tweener) Scaled(s float64) *Tweener {
	tw.timeScale = s
	return tw
}

// KeptAlive disables auto-kill on completion.
func (tw *Tweener) KeptAlive() *Tweener {
	tw.autoKill = false
	return tw
}

// StartPaused creates the tween paused until Play is called.
func (tw *Tweener) StartPaused() *Tweener {
	tw.isPaused = true
	return tw
}

// WithLogger routes the tween's warnings to l.
func (tw *Tweener) WithLogger(l *slog.Logger) *Tweener {
	if l != nil {
		tw.logger = l
		tw.customLogger = true
	}
	return tw
}

// OnPlay registers a callback fired when the tween is unpaused.
func (tw *Tweener) OnPlay(fn func()) *Tweener { tw.onPlay = fn; return tw }

// OnUpdate registers a callback fired whenever the full elapsed time changes.
func (tw *Tweener) OnUpdate(fn func()) *Tweener { tw.onUpdate = fn; return tw }

// OnComplete registers a callback fired once, on the forward-completion
// transition.
func (tw *Tweener) OnComplete(fn func()) *Tweener { tw.onComplete = fn; return tw }

// OnStepComplete registers a callback fired when a loop boundary is crossed.
func (tw *Tweener) OnStepComplete(fn func()) *Tweener { tw.onStepComplete = fn; return tw }

// OnRewound registers a callback fired when the elapsed time returns to zero.
func (tw *Tweener) OnRewound(fn func()) *Tweener { tw.onRewound = fn; return tw }

// Target returns the opaque target reference.
func (tw *Tweener) Target() any { return tw.target }

func (tw *Tweener) targetAlive() bool {
	if tw.target == nil {
		return false
	}
	if l, ok := tw.target.(Liveness); ok && !l.Alive() {
		return false
	}
	return true
}

// Advance moves the tween by dt seconds and reports forward completion. A
// target that has become invalid causes an automatic silent kill.
func (tw *Tweener) Advance(dt float64, force bool) bool {
	if tw.killed {
		return true
	}
	if !tw.targetAlive() {
		tw.Kill()
		return true
	}
	return advance(tw, dt, force)
}

// Seek jumps to an absolute full-elapsed time, exhausting any delay.
func (tw *Tweener) Seek(t float64) bool {
	return seek(tw, t)
}

// Rewind moves the tween back to time zero, resets its delay window and
// pauses it.
func (tw *Tweener) Rewind() {
	rewind(tw)
}

// Restart rewinds and plays.
func (tw *Tweener) Restart() {
	rewind(tw)
	tw.Play()
}

// Complete jumps the tween to its forward end state.
func (tw *Tweener) Complete() {
	complete(tw)
}

// Kill destroys the tween: it notifies the overwrite arbiter, detaches from
// any parent timeline and scheduler, and releases its bindings. Killing is
// idempotent and every later Advance reports completion.
func (tw *Tweener) Kill() {
	if tw.killed {
		return
	}
	tw.killed = true
	if sc := tw.scheduler(); sc != nil && sc.arbiter != nil {
		sc.arbiter.TweenKilled(tw)
	}
	tw.detach()
	tw.plugins = nil
	tw.archivedPlugins = nil
}

// SetIncremental shifts every binding's start/end values by delta
// loop-widths.
func (tw *Tweener) SetIncremental(delta int) {
	tw.applyIncrement(delta)
}

// FillPlugins appends the tween's property bindings to out.
func (tw *Tweener) FillPlugins(out *[]Plugin) {
	*out = append(*out, tw.plugins...)
}

// PathPercentage returns the effective path parameter of the first spatial
// binding, for debug drawing. Zero when no path binding exists.
func (tw *Tweener) PathPercentage() float64 {
	for _, p := range tw.plugins {
		if pp, ok := p.(*PathPlugin); ok {
			return pp.Percentage()
		}
	}
	return 0
}

// UsePartialPath restricts a single-binding spatial tween to the inclusive
// waypoint range [from, to]: the current binding set and duration are
// archived, the duration is rescaled to the sub-range's share of total path
// length, and the tween restarts on the sub-path. Invalid requests warn and
// leave the tween unchanged.
func (tw *Tweener) UsePartialPath(from, to int) *Tweener {
	if tw.killed {
		return tw
	}
	if len(tw.plugins) != 1 {
		tw.logger.Warn("partial path requires exactly one binding", "bindings", len(tw.plugins))
		return tw
	}
	pp, ok := tw.plugins[0].(*PathPlugin)
	if !ok {
		tw.logger.Warn("partial path requires a spatial binding")
		return tw
	}
	tw.ensureStarted()

	sub, share := pp.slice(from, to)
	if sub == nil {
		tw.logger.Warn("invalid partial path range", "from", from, "to", to)
		return tw
	}

	if tw.archivedPlugins == nil {
		tw.archivedPlugins = tw.plugins
		tw.archivedDuration = tw.duration
	}
	np := pp.withPath(sub)
	np.setDuration(tw.archivedDuration * share)
	tw.plugins = []Plugin{np}
	tw.setDuration(tw.archivedDuration * share)
	tw.Restart()
	return tw
}

// ResetPath restores the binding set and duration archived by UsePartialPath
// and restarts the tween over the full path.
func (tw *Tweener) ResetPath() *Tweener {
	if tw.killed || tw.archivedPlugins == nil {
		return tw
	}
	tw.plugins = tw.archivedPlugins
	tw.setDuration(tw.archivedDuration)
	for _, p := range tw.plugins {
		p.setDuration(tw.archivedDuration)
	}
	tw.archivedPlugins = nil
	tw.Restart()
	return tw
}

func (tw *Tweener) ensureStarted() {
	if tw.started {
		return
	}
	tw.started = true
	if sc := tw.scheduler(); sc != nil && sc.arbiter != nil {
		sc.arbiter.TweenStarted(tw)
	}
	for _, p := range tw.plugins {
		p.setLogger(tw.logger)
		p.setDuration(tw.duration)
		p.Startup()
	}
}

func (tw *Tweener) applyElapsed(force, ignoreCallbacks bool) {
	local := tw.elapsed
	if tw.isLoopingBack {
		local = tw.duration - tw.elapsed
	}
	reversedEase := tw.isLoopingBack && tw.loopType == LoopYoyoInverse
	for _, p := range tw.plugins {
		p.SetEaseReversed(reversedEase)
		switch {
		case tw.isComplete && !tw.isLoopingBack:
			// Forward completion writes the exact end value, bypassing any
			// easing curve that does not land precisely on 1.
			p.Complete()
		case tw.fullElapsed == 0:
			p.Rewind()
		default:
			p.Update(local)
		}
	}
}

func (tw *Tweener) applyIncrement(delta int) {
	for _, p := range tw.plugins {
		p.SetIncremental(delta)
	}
}

// position routes a positional update from an owning Sequence.
func (tw *Tweener) position(t float64, force, ignoreCallbacks bool) bool {
	if tw.killed {
		return true
	}
	if !tw.targetAlive() {
		tw.Kill()
		return true
	}
	return goTo(tw, t, force, ignoreCallbacks)
}
