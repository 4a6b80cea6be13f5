package tween

import (
	"testing"

	"github.com/fogleman/ease"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matt-g-everett/tweentx/path"
)

type testTarget struct {
	alive bool
	x     float64
	pos   path.Point
}

func (t *testTarget) Alive() bool { return t.alive }

func newTestTarget() *testTarget {
	return &testTarget{alive: true}
}

func (t *testTarget) floatPlugin(end float64) *FloatPlugin {
	return Float(func() float64 { return t.x }, func(v float64) { t.x = v }, end)
}

func (t *testTarget) pathPlugin(p *path.Path) *PathPlugin {
	return PathTo(func() path.Point { return t.pos }, func(p path.Point) { t.pos = p }, p)
}

func TestRestartLoopsCompleteOnce(t *testing.T) {
	tgt := newTestTarget()
	completes := 0
	steps := 0
	tw := New(tgt, 2, tgt.floatPlugin(10)).
		Loops(2, LoopRestart).
		KeptAlive().
		OnComplete(func() { completes++ }).
		OnStepComplete(func() { steps++ })

	done := tw.Advance(2.0, false)
	require.False(t, done)
	assert.Equal(t, 2.0, tw.FullElapsed())
	assert.Equal(t, 1, tw.CompletedLoops())
	assert.Equal(t, 0.0, tw.Elapsed())
	assert.Equal(t, 1, steps)
	assert.Equal(t, 0, completes)

	done = tw.Advance(2.0, false)
	require.True(t, done)
	assert.True(t, tw.IsComplete())
	assert.Equal(t, 4.0, tw.FullElapsed())
	assert.Equal(t, 2.0, tw.Elapsed())
	assert.Equal(t, 10.0, tgt.x)
	assert.Equal(t, 1, completes)
	assert.Equal(t, 1, steps)

	// Advancing a completed tween is a no-op and must not re-fire callbacks.
	require.True(t, tw.Advance(1.0, false))
	assert.Equal(t, 1, completes)
}

func TestYoyoBackPassReturnsToStart(t *testing.T) {
	tgt := newTestTarget()
	tw := New(tgt, 1, tgt.floatPlugin(10)).Loops(2, LoopYoyo).KeptAlive()

	tw.Advance(1.5, false)
	assert.InDelta(t, 5.0, tgt.x, 1e-9)

	tw.Advance(0.3, false)
	assert.InDelta(t, 2.0, tgt.x, 1e-9, "the back pass must move the property toward its start")

	done := tw.Advance(0.2, false)
	require.True(t, done)
	assert.InDelta(t, 0.0, tgt.x, 1e-9, "a full yoyo cycle returns the property to its start value")
	assert.Equal(t, 2.0, tw.FullElapsed())
}

func TestYoyoInverseInvertsEaseOnBackPass(t *testing.T) {
	plain := newTestTarget()
	inverse := newTestTarget()
	twPlain := New(plain, 1, plain.floatPlugin(10).Eased(ease.InQuad)).Loops(2, LoopYoyo).KeptAlive()
	twInverse := New(inverse, 1, inverse.floatPlugin(10).Eased(ease.InQuad)).Loops(2, LoopYoyoInverse).KeptAlive()

	twPlain.Advance(1.5, false)
	twInverse.Advance(1.5, false)

	// Halfway through the back pass InQuad gives t² = 0.25, while the
	// inverted ease gives 1-(1-t)² = 0.75.
	assert.InDelta(t, 2.5, plain.x, 1e-9)
	assert.InDelta(t, 7.5, inverse.x, 1e-9)
}

func TestDelayConsumesOnlyRemainder(t *testing.T) {
	tgt := newTestTarget()
	tw := New(tgt, 1, tgt.floatPlugin(10)).Delayed(0.5).KeptAlive()

	done := tw.Advance(0.3, false)
	require.False(t, done)
	assert.Equal(t, 0.0, tw.FullElapsed())
	assert.Equal(t, 0.0, tgt.x)

	tw.Advance(0.4, false)
	assert.InDelta(t, 0.2, tw.FullElapsed(), 1e-9)
	assert.InDelta(t, 2.0, tgt.x, 1e-9)
	assert.Equal(t, 1, tw.DelayCount())
}

func TestDelayIgnoresTimeScale(t *testing.T) {
	tgt := newTestTarget()
	tw := New(tgt, 1, tgt.floatPlugin(10)).Delayed(0.5).Scaled(2).KeptAlive()

	tw.Advance(0.25, false)
	assert.Equal(t, 0.0, tw.FullElapsed(), "the delay window accumulates raw time")

	tw.Advance(0.25, false)
	assert.Equal(t, 0.0, tw.FullElapsed())

	tw.Advance(0.25, false)
	assert.InDelta(t, 0.5, tw.FullElapsed(), 1e-9, "playback time is scaled once the delay is exhausted")
	assert.InDelta(t, 5.0, tgt.x, 1e-9)
}

func TestZeroDurationCompletesImmediately(t *testing.T) {
	tgt := newTestTarget()
	tw := New(tgt, 0, tgt.floatPlugin(10)).KeptAlive()

	done := tw.Advance(0.016, false)
	require.True(t, done)
	assert.True(t, tw.IsComplete())
	assert.Equal(t, 10.0, tgt.x)
}

func TestDeadTargetKillIsIdempotent(t *testing.T) {
	tgt := newTestTarget()
	tw := New(tgt, 1, tgt.floatPlugin(10)).KeptAlive()

	tw.Advance(0.2, false)
	tgt.alive = false

	require.True(t, tw.Advance(0.2, false))
	assert.False(t, tw.IsAlive())
	require.True(t, tw.Advance(0.2, false), "advancing a killed tween must consistently report completion")
}

func TestNilTargetIsKilledOnAdvance(t *testing.T) {
	var x float64
	tw := New(nil, 1, Float(func() float64 { return x }, func(v float64) { x = v }, 10))
	require.True(t, tw.Advance(0.1, false))
	assert.False(t, tw.IsAlive())
}

func TestIncrementalLoopsContinueFromPriorEnd(t *testing.T) {
	tgt := newTestTarget()
	tw := New(tgt, 1, tgt.floatPlugin(10)).Loops(3, LoopIncremental).KeptAlive()

	tw.Advance(1.0, false)
	assert.InDelta(t, 10.0, tgt.x, 1e-9, "the second loop starts where the first ended")

	tw.Advance(0.5, false)
	assert.InDelta(t, 15.0, tgt.x, 1e-9)

	done := tw.Advance(1.5, false)
	require.True(t, done)
	assert.InDelta(t, 30.0, tgt.x, 1e-9)

	// Switching away from incremental reverses the accumulated shift.
	tw.Loops(1, LoopRestart)
	tw.Rewind()
	assert.InDelta(t, 0.0, tgt.x, 1e-9)
}

func TestReverseClampsAtZeroAndFiresOnRewound(t *testing.T) {
	tgt := newTestTarget()
	rewinds := 0
	tw := New(tgt, 1, tgt.floatPlugin(10)).KeptAlive().OnRewound(func() { rewinds++ })

	tw.Advance(0.5, false)
	assert.InDelta(t, 5.0, tgt.x, 1e-9)

	tw.Reverse()
	require.True(t, tw.IsReversed())
	tw.Advance(0.3, false)
	assert.InDelta(t, 2.0, tgt.x, 1e-9)

	tw.Advance(0.5, false)
	assert.Equal(t, 0.0, tw.FullElapsed())
	assert.Equal(t, 1, rewinds)

	// Fully rewound and reversed: no further backward progress, no re-fire.
	require.False(t, tw.Advance(0.5, false))
	assert.Equal(t, 0.0, tw.FullElapsed())
	assert.Equal(t, 1, rewinds)
}

func TestPausedAdvanceIsNoOpUnlessForced(t *testing.T) {
	tgt := newTestTarget()
	tw := New(tgt, 1, tgt.floatPlugin(10)).KeptAlive()

	tw.Advance(0.2, false)
	tw.Pause()
	tw.Advance(0.3, false)
	assert.InDelta(t, 0.2, tw.FullElapsed(), 1e-9)

	tw.Advance(0.3, true)
	assert.InDelta(t, 0.5, tw.FullElapsed(), 1e-9)

	tw.Play()
	tw.Advance(0.25, false)
	assert.InDelta(t, 0.75, tw.FullElapsed(), 1e-9)
}

func TestSeekExhaustsDelay(t *testing.T) {
	tgt := newTestTarget()
	tw := New(tgt, 2, tgt.floatPlugin(10)).Delayed(5).KeptAlive()

	done := tw.Seek(1)
	require.False(t, done)
	assert.InDelta(t, 5.0, tgt.x, 1e-9)

	require.True(t, tw.Seek(2))
	assert.Equal(t, 10.0, tgt.x)
}

func TestRestartReplaysDelay(t *testing.T) {
	tgt := newTestTarget()
	tw := New(tgt, 1, tgt.floatPlugin(10)).Delayed(0.5).KeptAlive()

	tw.Advance(1.5, false)
	require.True(t, tw.IsComplete())

	tw.Restart()
	assert.False(t, tw.IsComplete())
	tw.Advance(0.3, false)
	assert.Equal(t, 0.0, tw.FullElapsed(), "the delay window runs again after a restart")
	tw.Advance(0.7, false)
	assert.InDelta(t, 0.5, tw.FullElapsed(), 1e-9)
}

func TestEndStatesBypassTheEasingCurve(t *testing.T) {
	tgt := newTestTarget()
	// A curve that never quite reaches 1 must not leave the property short
	// of its end value at completion.
	sloppy := func(t float64) float64 { return t * 0.999 }
	tw := New(tgt, 1, tgt.floatPlugin(10).Eased(sloppy)).KeptAlive()

	tw.Advance(1.0, false)
	assert.Equal(t, 10.0, tgt.x)

	tw.Rewind()
	assert.Equal(t, 0.0, tgt.x)
}

func TestCompleteJumpsToEndState(t *testing.T) {
	tgt := newTestTarget()
	completes := 0
	tw := New(tgt, 2, tgt.floatPlugin(10)).KeptAlive().OnComplete(func() { completes++ })

	tw.Complete()
	assert.True(t, tw.IsComplete())
	assert.Equal(t, 10.0, tgt.x)
	assert.Equal(t, 1, completes)
}

func TestPathStartupInjectsSyntheticLeadingPoint(t *testing.T) {
	tgt := newTestTarget()
	tgt.pos = path.Pt(-5, 0, 0)
	p := path.New(path.Pt(0, 0, 0), path.Pt(10, 0, 0), path.Pt(20, 0, 0), path.Pt(30, 0, 0))
	tw := New(tgt, 2, tgt.pathPlugin(p)).KeptAlive()

	tw.Seek(0)
	assert.InDelta(t, -5.0, tgt.pos.X, 1e-9, "the motion must begin exactly where the target currently is")

	tw.Seek(2)
	assert.InDelta(t, 30.0, tgt.pos.X, 1e-9)
}

func TestPartialPathRestrictsAndRestores(t *testing.T) {
	tgt := newTestTarget()
	p := path.New(path.Pt(0, 0, 0), path.Pt(10, 0, 0), path.Pt(20, 0, 0), path.Pt(30, 0, 0))
	tw := New(tgt, 3, tgt.pathPlugin(p)).KeptAlive()

	tw.UsePartialPath(1, 2)
	assert.InDelta(t, 1.0, tw.Duration(), 0.05, "duration rescales to the sub-range's share of path length")
	assert.InDelta(t, 10.0, tgt.pos.X, 1e-6, "the tween restarts at the partial path's first waypoint")

	require.True(t, tw.Advance(tw.Duration()+0.1, false))
	assert.InDelta(t, 20.0, tgt.pos.X, 1e-6)

	tw.ResetPath()
	assert.Equal(t, 3.0, tw.Duration())
	assert.InDelta(t, 0.0, tgt.pos.X, 1e-6)
	require.True(t, tw.Advance(3, false))
	assert.InDelta(t, 30.0, tgt.pos.X, 1e-6)
}

func TestPartialPathRequiresSingleSpatialBinding(t *testing.T) {
	tgt := newTestTarget()
	tw := New(tgt, 2, tgt.floatPlugin(10), tgt.floatPlugin(20)).KeptAlive()
	tw.UsePartialPath(0, 1)
	assert.Equal(t, 2.0, tw.Duration(), "a multi-binding partial path request is a no-op")

	single := New(tgt, 2, tgt.floatPlugin(10)).KeptAlive()
	single.UsePartialPath(0, 1)
	assert.Equal(t, 2.0, single.Duration(), "a non-spatial partial path request is a no-op")
}
