package tween

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingArbiter struct {
	started []*Tweener
	killed  []*Tweener
}

func (a *recordingArbiter) TweenStarted(tw *Tweener) { a.started = append(a.started, tw) }
func (a *recordingArbiter) TweenKilled(tw *Tweener)  { a.killed = append(a.killed, tw) }

func TestSchedulerAutoKillsCompletedTweens(t *testing.T) {
	arb := new(recordingArbiter)
	sched := NewScheduler().WithArbiter(arb)

	tgt := newTestTarget()
	tw := New(tgt, 1, tgt.floatPlugin(10))
	sched.Add(tw)
	require.Equal(t, 1, sched.Len())

	sched.Advance(0.5)
	assert.Len(t, arb.started, 1)
	assert.True(t, tw.IsAlive())

	sched.Advance(0.6)
	assert.Equal(t, 0, sched.Len())
	assert.False(t, tw.IsAlive(), "a completed auto-kill tween is destroyed")
	require.Len(t, arb.killed, 1)
	assert.Same(t, tw, arb.killed[0])
	assert.Equal(t, 10.0, tgt.x)
}

func TestSchedulerKeepsAliveTweens(t *testing.T) {
	sched := NewScheduler()
	tgt := newTestTarget()
	tw := New(tgt, 1, tgt.floatPlugin(10)).KeptAlive()
	sched.Add(tw)

	sched.Advance(2)
	assert.Equal(t, 1, sched.Len())
	assert.True(t, tw.IsComplete())
}

func TestSchedulerAddDetachesFromPriorOwner(t *testing.T) {
	tgt := newTestTarget()
	tw := New(tgt, 1, tgt.floatPlugin(10))

	first := NewScheduler()
	second := NewScheduler()
	first.Add(tw)
	second.Add(tw)
	assert.Equal(t, 0, first.Len())
	assert.Equal(t, 1, second.Len())

	s := NewSequence()
	s.Append(tw)
	assert.Equal(t, 0, second.Len(), "sequence ownership detaches from the scheduler")
}

func TestArbiterSeesNestedTweens(t *testing.T) {
	arb := new(recordingArbiter)
	sched := NewScheduler().WithArbiter(arb)

	tgt := newTestTarget()
	tw := New(tgt, 1, tgt.floatPlugin(10))
	s := NewSequence()
	s.Append(tw)
	sched.Add(s)

	s.Play()
	sched.Advance(0.5)
	require.Len(t, arb.started, 1)
	assert.Same(t, tw, arb.started[0])

	s.Kill()
	require.Len(t, arb.killed, 1)
	assert.Same(t, tw, arb.killed[0])
}

func TestSequencesStayPausedUntilPlayed(t *testing.T) {
	sched := NewScheduler()
	tgt := newTestTarget()
	s := NewSequence()
	s.Append(New(tgt, 1, tgt.floatPlugin(10)))
	sched.Add(s)

	sched.Advance(0.5)
	assert.Equal(t, 0.0, s.FullElapsed())

	s.Play()
	sched.Advance(0.5)
	assert.InDelta(t, 0.5, s.FullElapsed(), 1e-9)
}

func TestKilledTimelineCannotBeScheduled(t *testing.T) {
	sched := NewScheduler()
	tgt := newTestTarget()
	tw := New(tgt, 1, tgt.floatPlugin(10))
	tw.Kill()
	sched.Add(tw)
	assert.Equal(t, 0, sched.Len())
}

func TestFillPluginsWalksNestedTimelines(t *testing.T) {
	tgt := newTestTarget()
	inner := NewSequence()
	inner.Append(New(tgt, 1, tgt.floatPlugin(1)))
	outer := NewSequence()
	outer.Append(inner)
	outer.Append(New(tgt, 1, tgt.floatPlugin(2), tgt.floatPlugin(3)))

	var plugins []Plugin
	outer.FillPlugins(&plugins)
	assert.Len(t, plugins, 3)
}
