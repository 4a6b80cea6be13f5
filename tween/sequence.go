package tween

import (
	"log/slog"
	"math"
)

// A sequenceItem is one entry in a Sequence: either a nested timeline or a
// pure time interval, placed at an absolute start offset.
type sequenceItem struct {
	start    float64
	duration float64
	tl       Timeline // nil for a pure interval
}

// A Sequence is a composite timeline: an ordered collection of tweens,
// nested sequences and pure intervals, each placed at an absolute start
// offset. It runs its own instance of the timeline state machine and derives
// completion from its own elapsed time, not from its children.
type Sequence struct {
	component
	items []sequenceItem
}

// NewSequence creates an empty Sequence. Sequences are created paused and
// stay paused until explicitly played.
func NewSequence() *Sequence {
	s := new(Sequence)
	s.init(s)
	s.isPaused = true
	return s
}

// Loops configures the loop count (negative for infinite) and loop type.
func (s *Sequence) Loops(count int, lt LoopType) *Sequence {
	s.setLoops(count, lt)
	return s
}

// Delayed sets the pre-start waiting window in seconds.
func (s *Sequence) Delayed(d float64) *Sequence {
	if d > 0 {
		s.delay = d
	}
	return s
}

// Scaled sets the time-scale factor applied to every advance delta.
func (s *Sequence) Scaled(sc float64) *Sequence {
	s.timeScale = sc
	return s
}

// AutoKilled makes the sequence kill itself on completion.
func (s *Sequence) AutoKilled() *Sequence {
	s.autoKill = true
	return s
}

// WithLogger routes the sequence's warnings to l.
func (s *Sequence) WithLogger(l *slog.Logger) *Sequence {
	if l != nil {
		s.logger = l
		s.customLogger = true
	}
	return s
}

// OnPlay registers a callback fired when the sequence is unpaused.
func (s *Sequence) OnPlay(fn func()) *Sequence { s.onPlay = fn; return s }

// OnUpdate registers a callback fired whenever the full elapsed time changes.
func (s *Sequence) OnUpdate(fn func()) *Sequence { s.onUpdate = fn; return s }

// OnComplete registers a callback fired once, on the forward-completion
// transition.
func (s *Sequence) OnComplete(fn func()) *Sequence { s.onComplete = fn; return s }

// OnStepComplete registers a callback fired when a loop boundary is crossed.
func (s *Sequence) OnStepComplete(fn func()) *Sequence { s.onStepComplete = fn; return s }

// OnRewound registers a callback fired when the elapsed time returns to zero.
func (s *Sequence) OnRewound(fn func()) *Sequence { s.onRewound = fn; return s }

// Append places tl at the sequence's current duration, detaching it from any
// previous owner. The sequence takes exclusive ownership of tl.
func (s *Sequence) Append(tl Timeline) *Sequence {
	return s.Insert(s.duration, tl)
}

// AppendInterval extends the sequence with d seconds of empty time.
func (s *Sequence) AppendInterval(d float64) *Sequence {
	return s.InsertInterval(s.duration, d)
}

// Prepend places tl at offset zero, shifting every existing item later by
// tl's full duration.
func (s *Sequence) Prepend(tl Timeline) *Sequence {
	if !s.adoptable(tl) {
		return s
	}
	s.shift(tl.FullDuration())
	return s.Insert(0, tl)
}

// PrependInterval inserts d seconds of empty time at offset zero, shifting
// every existing item later by d.
func (s *Sequence) PrependInterval(d float64) *Sequence {
	if d < 0 {
		s.logger.Warn("interval duration must not be negative", "duration", d)
		return s
	}
	s.shift(d)
	return s.InsertInterval(0, d)
}

// Insert places tl at an arbitrary absolute start offset, detaching it from
// any previous owner and extending the sequence's duration if the item ends
// past the current maximum.
func (s *Sequence) Insert(at float64, tl Timeline) *Sequence {
	if !s.adoptable(tl) {
		return s
	}
	if at < 0 {
		s.logger.Warn("item start offset must not be negative", "at", at)
		return s
	}
	tl.detach()
	c := tl.comp()
	c.parent = s
	s.insertItem(sequenceItem{start: at, duration: tl.FullDuration(), tl: tl})
	return s
}

// InsertInterval places a pure time interval at an absolute start offset.
func (s *Sequence) InsertInterval(at, d float64) *Sequence {
	if at < 0 || d < 0 {
		s.logger.Warn("interval offsets and durations must not be negative", "at", at, "duration", d)
		return s
	}
	s.insertItem(sequenceItem{start: at, duration: d})
	return s
}

func (s *Sequence) adoptable(tl Timeline) bool {
	if tl == nil || tl.comp().killed {
		s.logger.Warn("cannot add a nil or killed timeline to a sequence")
		return false
	}
	if tl == Timeline(s) {
		s.logger.Warn("cannot add a sequence to itself")
		return false
	}
	if math.IsInf(tl.FullDuration(), 1) {
		s.logger.Warn("cannot add an infinite-loop timeline to a sequence")
		return false
	}
	return true
}

func (s *Sequence) shift(d float64) {
	if len(s.items) == 0 {
		return
	}
	for i := range s.items {
		s.items[i].start += d
	}
	s.setDuration(s.duration + d)
}

// insertItem keeps items sorted by start offset: the new item goes
// immediately before the first existing item whose start offset is greater
// than or equal to its own, else it is appended.
func (s *Sequence) insertItem(it sequenceItem) {
	pos := len(s.items)
	for i := range s.items {
		if s.items[i].start >= it.start {
			pos = i
			break
		}
	}
	s.items = append(s.items, sequenceItem{})
	copy(s.items[pos+1:], s.items[pos:])
	s.items[pos] = it

	if end := it.start + it.duration; end > s.duration {
		s.setDuration(end)
	}
}

// Remove deletes the item holding tl. A sequence left with no items kills
// itself, detaching from any parent in turn.
func (s *Sequence) Remove(tl Timeline) {
	s.remove(tl)
}

func (s *Sequence) remove(tl Timeline) {
	found := false
	for i := range s.items {
		if s.items[i].tl == tl {
			tl.comp().parent = nil
			s.items = append(s.items[:i], s.items[i+1:]...)
			found = true
			break
		}
	}
	if !found || s.killed {
		return
	}
	if len(s.items) == 0 {
		s.Kill()
		return
	}
	d := 0.0
	for _, it := range s.items {
		if end := it.start + it.duration; end > d {
			d = end
		}
	}
	s.setDuration(d)
}

// Advance moves the sequence by dt seconds and reports forward completion.
func (s *Sequence) Advance(dt float64, force bool) bool {
	if s.killed {
		return true
	}
	return advance(s, dt, force)
}

// Seek jumps to an absolute full-elapsed time, exhausting any delay.
func (s *Sequence) Seek(t float64) bool {
	return seek(s, t)
}

// Rewind moves the sequence back to time zero, resets its delay window and
// pauses it.
func (s *Sequence) Rewind() {
	rewind(s)
}

// Restart rewinds and plays.
func (s *Sequence) Restart() {
	rewind(s)
	s.Play()
}

// Complete jumps the sequence to its forward end state.
func (s *Sequence) Complete() {
	complete(s)
}

// Kill destroys the sequence and every item it owns, detaching from any
// parent timeline and scheduler. Killing is idempotent.
func (s *Sequence) Kill() {
	if s.killed {
		return
	}
	s.killed = true
	items := s.items
	s.items = nil
	for _, it := range items {
		if it.tl != nil {
			// The parent chain stays intact until the child's own detach so
			// its kill notification can still reach the root's arbiter.
			it.tl.Kill()
		}
	}
	s.detach()
}

// SetIncremental propagates an incremental value shift to every child.
func (s *Sequence) SetIncremental(delta int) {
	s.applyIncrement(delta)
}

// FillPlugins appends every property binding reachable from the sequence's
// children to out.
func (s *Sequence) FillPlugins(out *[]Plugin) {
	for _, it := range s.items {
		if it.tl != nil {
			it.tl.FillPlugins(out)
		}
	}
}

// ensureStarted forces every nested tween's bindings to initialize, in
// declaration order, before any out-of-order seeking can happen: a full
// forward pass to each item's end state, then a reverse pass back to its
// initial state, with callbacks suppressed throughout.
func (s *Sequence) ensureStarted() {
	if s.started {
		return
	}
	s.started = true
	items := append([]sequenceItem(nil), s.items...)
	for _, it := range items {
		if it.tl != nil {
			it.tl.position(it.tl.FullDuration(), true, true)
		}
	}
	for i := len(items) - 1; i >= 0; i-- {
		if tl := items[i].tl; tl != nil {
			tl.position(0, true, true)
		}
	}
}

// applyElapsed routes the sequence's local elapsed time to its items in two
// passes. The first pass walks the items in reverse and forces every item
// whose start offset has not been reached to its pre-start state, with
// callbacks suppressed; this un-plays not-yet-due children when time moves
// backward past them. The second pass walks forward and gives every reached
// item a normal update at its local time.
func (s *Sequence) applyElapsed(force, ignoreCallbacks bool) {
	twElapsed := s.elapsed
	if s.isLoopingBack {
		twElapsed = s.duration - s.elapsed
	}

	// Both passes work on a snapshot: a child killed mid-pass (dead target)
	// detaches and shifts the live slice, which must not starve a sibling of
	// this tick's update.
	items := append([]sequenceItem(nil), s.items...)
	for i := len(items) - 1; i >= 0; i-- {
		it := items[i]
		if it.tl != nil && it.start > twElapsed {
			it.tl.position(twElapsed-it.start, true, true)
		}
	}
	for _, it := range items {
		if it.tl != nil && it.start <= twElapsed {
			it.tl.position(twElapsed-it.start, force, ignoreCallbacks)
		}
	}
}

func (s *Sequence) applyIncrement(delta int) {
	for _, it := range s.items {
		if it.tl != nil {
			it.tl.SetIncremental(delta)
		}
	}
}

// position routes a positional update from an owning parent sequence.
func (s *Sequence) position(t float64, force, ignoreCallbacks bool) bool {
	if s.killed {
		return true
	}
	return goTo(s, t, force, ignoreCallbacks)
}
