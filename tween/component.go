package tween

import (
	"log/slog"
	"math"

	"github.com/matt-g-everett/tweentx/util"
)

// component is the timeline state machine shared by Tweener and Sequence.
// Each owns an independent instance; a Sequence does not derive its state
// from its children, only from its own elapsed time.
type component struct {
	self Timeline // the concrete timeline embedding this component

	duration     float64
	fullDuration float64
	elapsed      float64
	fullElapsed  float64

	completedLoops int
	loopCount      int
	loopType       LoopType
	increment      int // loop-widths currently applied by LoopIncremental

	timeScale    float64
	delay        float64
	elapsedDelay float64
	delayCount   int

	isPaused      bool
	isComplete    bool
	isReversed    bool
	isLoopingBack bool
	killed        bool
	started       bool
	autoKill      bool

	parent       *Sequence
	sched        *Scheduler
	logger       *slog.Logger
	customLogger bool

	onPlay         func()
	onUpdate       func()
	onComplete     func()
	onStepComplete func()
	onRewound      func()
}

func (c *component) init(self Timeline) {
	c.self = self
	c.timeScale = 1
	c.loopCount = 1
	c.logger = nopLogger()
}

func (c *component) comp() *component { return c }

func (c *component) setDuration(d float64) {
	if d < 0 {
		d = 0
	}
	c.duration = d
	c.refreshFullDuration()
}

func (c *component) setLoops(count int, lt LoopType) {
	if c.loopType == LoopIncremental && lt != LoopIncremental && c.increment != 0 {
		// Reverse any accumulated increment before switching behavior.
		c.self.SetIncremental(-c.increment)
		c.increment = 0
	}
	c.loopCount = count
	c.loopType = lt
	c.refreshFullDuration()
}

func (c *component) refreshFullDuration() {
	if c.loopCount < 0 {
		c.fullDuration = math.Inf(1)
	} else {
		c.fullDuration = c.duration * float64(c.loopCount)
	}
}

// Duration returns the per-loop length in seconds.
func (c *component) Duration() float64 { return c.duration }

// FullDuration returns the length across all loops, +Inf for infinite loops.
func (c *component) FullDuration() float64 { return c.fullDuration }

// Elapsed returns the position within the current loop.
func (c *component) Elapsed() float64 { return c.elapsed }

// FullElapsed returns the position across all loops.
func (c *component) FullElapsed() float64 { return c.fullElapsed }

// CompletedLoops returns the number of finished loop iterations.
func (c *component) CompletedLoops() int { return c.completedLoops }

// Delay returns the pre-start waiting window in seconds.
func (c *component) Delay() float64 { return c.delay }

// ElapsedDelay returns how much of the delay window has been consumed.
func (c *component) ElapsedDelay() float64 { return c.elapsedDelay }

// DelayCount returns how many times the delay window has been exhausted.
func (c *component) DelayCount() int { return c.delayCount }

// TimeScale returns the factor applied to every advance delta.
func (c *component) TimeScale() float64 { return c.timeScale }

// LoopCount returns the configured loop count, negative for infinite.
func (c *component) LoopCount() int { return c.loopCount }

// Loop returns the configured loop type.
func (c *component) Loop() LoopType { return c.loopType }

// IsComplete reports whether the timeline has completed in the forward
// direction.
func (c *component) IsComplete() bool { return c.isComplete }

// IsAlive reports whether the timeline has not been killed.
func (c *component) IsAlive() bool { return !c.killed }

// IsPaused reports whether the timeline is paused.
func (c *component) IsPaused() bool { return c.isPaused }

// IsReversed reports whether the timeline is advancing backward.
func (c *component) IsReversed() bool { return c.isReversed }

// Play resumes the timeline.
func (c *component) Play() {
	if c.killed || !c.isPaused {
		return
	}
	c.isPaused = false
	if c.onPlay != nil {
		c.onPlay()
	}
}

// Pause suspends the timeline; its state is kept.
func (c *component) Pause() {
	c.isPaused = true
}

// Reverse toggles the direction of travel. Progress past the extreme bounds
// stays clamped.
func (c *component) Reverse() {
	c.isReversed = !c.isReversed
}

// scheduler walks the ownership chain up to the scheduler driving the root
// timeline, if any. Nested tweens reach the arbiter through it.
func (c *component) scheduler() *Scheduler {
	if c.sched != nil || c.parent == nil {
		return c.sched
	}
	return c.parent.comp().scheduler()
}

func (c *component) detach() {
	if c.parent != nil {
		p := c.parent
		c.parent = nil
		p.remove(c.self)
	}
	if c.sched != nil {
		s := c.sched
		c.sched = nil
		s.remove(c.self)
	}
}

// ticker is the part of a timeline the shared state machine drives: the
// concrete per-type behavior behind steps 1-2 and 7 of the advance algorithm.
type ticker interface {
	comp() *component
	ensureStarted()
	applyElapsed(force, ignoreCallbacks bool)
	applyIncrement(delta int)
}

// advance implements the per-tick algorithm shared by Tweener and Sequence:
// guard checks, delay accounting, then a positional update via goTo.
func advance(tk ticker, dt float64, force bool) bool {
	c := tk.comp()
	if c.killed {
		return true
	}
	if !force {
		if c.isComplete && !c.isReversed {
			return true
		}
		if c.isReversed && c.fullElapsed == 0 {
			return false
		}
		if c.isPaused {
			return c.isComplete
		}
	}

	// The pre-start delay window accumulates raw time, unaffected by the
	// time scale, and never runs backward. The tick that exhausts it only
	// contributes its remainder as real elapsed time.
	if !c.isReversed && c.elapsedDelay < c.delay {
		c.elapsedDelay += dt
		if c.elapsedDelay < c.delay {
			return false
		}
		dt = c.elapsedDelay - c.delay
		c.elapsedDelay = c.delay
		c.delayCount++
	}

	scaled := dt * c.timeScale
	if c.isReversed {
		scaled = -scaled
	}
	return goTo(tk, c.fullElapsed+scaled, force, false)
}

// goTo jumps the timeline to an absolute full-elapsed position, recomputes
// loop state, routes the update to the concrete timeline's bindings or items
// and fires callbacks for the transitions this jump crossed.
func goTo(tk ticker, target float64, force, ignoreCallbacks bool) bool {
	c := tk.comp()
	if c.killed {
		return true
	}
	tk.ensureStarted()

	prevFull := c.fullElapsed
	prevLoops := c.completedLoops
	prevComplete := c.isComplete

	if math.IsInf(c.fullDuration, 1) {
		c.fullElapsed = math.Max(target, 0)
	} else {
		c.fullElapsed = util.Clamp(target, 0, c.fullDuration)
	}

	if c.duration <= 0 {
		c.elapsed = 0
		if c.loopCount >= 0 {
			c.completedLoops = c.loopCount
		}
	} else {
		c.completedLoops = int(math.Floor(c.fullElapsed / c.duration))
		c.elapsed = c.fullElapsed - float64(c.completedLoops)*c.duration
	}

	c.isComplete = !c.isReversed && c.loopCount >= 0 && c.completedLoops >= c.loopCount
	if c.isComplete {
		// Clamp to the final loop's end state.
		c.completedLoops = c.loopCount
		c.elapsed = c.duration
	}

	// Direction of the loop currently being played (the final loop, once
	// complete). Odd iterations run backward under the yoyo loop types.
	dirLoops := c.completedLoops
	if c.isComplete {
		dirLoops--
	}
	c.isLoopingBack = c.loopType.yoyo() && dirLoops > 0 && dirLoops%2 != 0

	if c.loopType == LoopIncremental {
		syncIncrement(tk)
	}

	tk.applyElapsed(force, ignoreCallbacks)

	if !ignoreCallbacks {
		if c.fullElapsed != prevFull {
			if c.onUpdate != nil {
				c.onUpdate()
			}
			if c.fullElapsed == 0 && prevFull > 0 && c.onRewound != nil {
				c.onRewound()
			}
		}
		if c.isComplete && !prevComplete {
			if c.onComplete != nil {
				c.onComplete()
			}
		} else if c.completedLoops != prevLoops && c.onStepComplete != nil {
			c.onStepComplete()
		}
	}

	return c.isComplete
}

// syncIncrement brings the applied incremental shift in line with the number
// of completed loops, clamped so the completion loop itself is not counted.
func syncIncrement(tk ticker) {
	c := tk.comp()
	target := c.completedLoops
	if c.loopCount >= 0 && target > c.loopCount-1 {
		target = c.loopCount - 1
	}
	if target < 0 {
		target = 0
	}
	if target != c.increment {
		tk.applyIncrement(target - c.increment)
		c.increment = target
	}
}

func rewind(tk ticker) {
	c := tk.comp()
	if c.killed {
		return
	}
	c.elapsedDelay = 0
	c.isPaused = true
	goTo(tk, 0, true, false)
}

func complete(tk ticker) {
	c := tk.comp()
	if c.killed {
		return
	}
	if c.loopCount < 0 {
		c.logger.Warn("cannot complete a timeline with infinite loops")
		return
	}
	c.elapsedDelay = c.delay
	goTo(tk, c.fullDuration, true, false)
	if c.autoKill {
		c.self.Kill()
	}
}

func seek(tk ticker, t float64) bool {
	c := tk.comp()
	if c.killed {
		return true
	}
	c.elapsedDelay = c.delay
	return goTo(tk, t, true, false)
}
