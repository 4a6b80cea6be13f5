// Package tween implements a time-driven animation engine. Numeric property
// targets are advanced smoothly over time according to easing curves, loop
// policies and delays; spatial targets can follow a Catmull-Rom spline path
// with optional constant-speed traversal.
//
// A Tweener animates one or more property bindings over a shared timeline. A
// Sequence composes Tweeners, nested Sequences and pure time intervals at
// absolute start offsets, and runs the same timeline state machine itself.
// Both are driven by repeated Advance calls from a Scheduler (or any external
// ticker); everything is synchronous and single-threaded.
package tween

import (
	"io"
	"log/slog"
)

// Ease maps a normalized time percentage in [0,1] to an eased percentage.
// The curves from github.com/fogleman/ease satisfy this signature directly.
type Ease func(t float64) float64

func easeLinear(t float64) float64 { return t }

// LoopType controls what happens when a timeline finishes a loop iteration.
type LoopType int

const (
	// LoopRestart replays each loop from the start.
	LoopRestart LoopType = iota
	// LoopYoyo plays alternate loops backward, retracing the eased motion.
	LoopYoyo
	// LoopYoyoInverse plays alternate loops backward with the ease inverted,
	// so the back pass eases like a forward move.
	LoopYoyoInverse
	// LoopIncremental shifts the animated values by one loop-width per loop,
	// so each loop continues from where the previous one ended.
	LoopIncremental
)

func (lt LoopType) String() string {
	switch lt {
	case LoopRestart:
		return "restart"
	case LoopYoyo:
		return "yoyo"
	case LoopYoyoInverse:
		return "yoyoInverse"
	case LoopIncremental:
		return "incremental"
	}
	return "unknown"
}

func (lt LoopType) yoyo() bool {
	return lt == LoopYoyo || lt == LoopYoyoInverse
}

// Liveness lets an animation target report that it has become unusable.
// A Tweener checks its target on every advance; a dead target causes an
// automatic, silent kill.
type Liveness interface {
	Alive() bool
}

// Timeline is the shared contract of Tweener and Sequence: the elapsed/loop/
// delay state machine and its controls.
type Timeline interface {
	// Advance moves the timeline by dt seconds (scaled by its time scale,
	// negated when reversed) and reports whether it is now complete in the
	// forward direction. force bypasses the paused/complete guards.
	Advance(dt float64, force bool) bool
	// Seek jumps the timeline to an absolute full-elapsed time and reports
	// whether it is now complete.
	Seek(t float64) bool

	Play()
	Pause()
	Reverse()
	Rewind()
	Restart()
	Complete()
	Kill()

	IsComplete() bool
	IsPaused() bool
	IsReversed() bool
	Duration() float64
	FullDuration() float64
	Elapsed() float64
	FullElapsed() float64
	CompletedLoops() int
	LoopCount() int
	Loop() LoopType

	// SetIncremental shifts every animated value by delta loop-widths.
	SetIncremental(delta int)
	// FillPlugins appends every property binding reachable from this
	// timeline to out, for introspection and debug drawing.
	FillPlugins(out *[]Plugin)

	comp() *component
	position(t float64, force, ignoreCallbacks bool) bool
	detach()
}

func nopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
