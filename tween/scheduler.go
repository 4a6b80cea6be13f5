package tween

import "log/slog"

// An Arbiter receives start/kill notifications for single animations, so an
// external overwrite policy can detect and cancel animations that fight over
// the same property. The core only notifies; it never arbitrates itself.
type Arbiter interface {
	TweenStarted(tw *Tweener)
	TweenKilled(tw *Tweener)
}

// A Scheduler is the registry that tracks live timelines and advances them
// once per logical tick. It is purely cooperative: the host calls Advance
// with an elapsed-time delta, and every registered timeline is updated
// synchronously within that call.
type Scheduler struct {
	timelines []Timeline
	arbiter   Arbiter
	logger    *slog.Logger
}

// NewScheduler creates an empty Scheduler.
func NewScheduler() *Scheduler {
	s := new(Scheduler)
	s.logger = nopLogger()
	return s
}

// WithLogger routes the scheduler's warnings to l and makes it the default
// logger of timelines registered later.
func (s *Scheduler) WithLogger(l *slog.Logger) *Scheduler {
	if l != nil {
		s.logger = l
	}
	return s
}

// WithArbiter installs the overwrite arbiter notified on tween start/kill.
func (s *Scheduler) WithArbiter(a Arbiter) *Scheduler {
	s.arbiter = a
	return s
}

// Add registers tl as a root timeline, detaching it from any previous owner.
func (s *Scheduler) Add(tl Timeline) {
	if tl == nil || tl.comp().killed {
		s.logger.Warn("cannot schedule a nil or killed timeline")
		return
	}
	tl.detach()
	c := tl.comp()
	c.sched = s
	if !c.customLogger {
		c.logger = s.logger
	}
	s.timelines = append(s.timelines, tl)
}

// Advance ticks every registered timeline by dt seconds, killing the ones
// that completed with auto-kill enabled.
func (s *Scheduler) Advance(dt float64) {
	snapshot := append([]Timeline(nil), s.timelines...)
	for _, tl := range snapshot {
		done := tl.Advance(dt, false)
		if done && tl.comp().autoKill {
			tl.Kill()
		}
	}
}

// Len returns the number of registered timelines.
func (s *Scheduler) Len() int {
	return len(s.timelines)
}

// Timelines returns a snapshot of the registered timelines, for
// introspection.
func (s *Scheduler) Timelines() []Timeline {
	return append([]Timeline(nil), s.timelines...)
}

// Status is a point-in-time copy of a timeline's public state, detached from
// the live object so it can be handed to other goroutines.
type Status struct {
	Duration       float64
	FullDuration   float64
	Elapsed        float64
	FullElapsed    float64
	CompletedLoops int
	Loop           LoopType
	Complete       bool
	Paused         bool
	Reversed       bool
	Bindings       int
}

// Snapshot captures the state of every registered timeline. It must be
// called from the goroutine that drives Advance.
func (s *Scheduler) Snapshot() []Status {
	states := make([]Status, 0, len(s.timelines))
	for _, tl := range s.timelines {
		var plugins []Plugin
		tl.FillPlugins(&plugins)
		states = append(states, Status{
			Duration:       tl.Duration(),
			FullDuration:   tl.FullDuration(),
			Elapsed:        tl.Elapsed(),
			FullElapsed:    tl.FullElapsed(),
			CompletedLoops: tl.CompletedLoops(),
			Loop:           tl.Loop(),
			Complete:       tl.IsComplete(),
			Paused:         tl.IsPaused(),
			Reversed:       tl.IsReversed(),
			Bindings:       len(plugins),
		})
	}
	return states
}

func (s *Scheduler) remove(tl Timeline) {
	for i := range s.timelines {
		if s.timelines[i] == tl {
			s.timelines = append(s.timelines[:i], s.timelines[i+1:]...)
			return
		}
	}
}
