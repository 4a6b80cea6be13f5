package stream

import (
	"log/slog"
	"sync/atomic"

	"github.com/fogleman/ease"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/matt-g-everett/tweentx/path"
	"github.com/matt-g-everett/tweentx/tween"
)

// A Show owns the animated state of the strip: a band of light whose
// position runs a spline path at constant speed while its colour cross-fades,
// both driven by the tween engine.
type Show struct {
	sched  *tween.Scheduler
	status atomic.Value // []tween.Status, republished on every tick

	back   colorful.Color
	pos    float64
	length float64
	colour colorful.Color
}

// NewShow builds the show's timelines and registers them with a scheduler.
func NewShow(config Config, logger *slog.Logger) *Show {
	s := new(Show)
	s.sched = tween.NewScheduler().WithLogger(logger)
	s.back, _ = colorful.Hex("#100505")
	s.colour, _ = colorful.Hex("#f06020")

	s.length = config.Show.BandLength
	if s.length <= 0 {
		s.length = 12
	}
	travel := config.Show.Travel
	if travel <= 0 {
		travel = numPixels - s.length
	}

	// The band's position follows a spline through the strip, dwelling near
	// the ends; constant-speed traversal keeps the motion even between the
	// waypoints.
	sweep := path.New(
		path.Pt(0, 0, 0),
		path.Pt(travel*0.2, 0, 0),
		path.Pt(travel*0.8, 0, 0),
		path.Pt(travel, 0, 0),
	)
	position := tween.New(s, 6,
		tween.PathTo(
			func() path.Point { return path.Pt(s.pos, 0, 0) },
			func(p path.Point) { s.pos = p.X },
			sweep,
		).AtConstantSpeed(0).Eased(ease.InOutQuad),
	).KeptAlive()

	blue, _ := colorful.Hex("#2040f0")
	colour := tween.New(s, 3,
		tween.Color(
			func() colorful.Color { return s.colour },
			func(c colorful.Color) { s.colour = c },
			blue,
		).Eased(ease.InOutSine),
	).Loops(2, tween.LoopYoyo).KeptAlive()

	show := tween.NewSequence().Loops(-1, tween.LoopYoyo).WithLogger(logger)
	show.Append(position)
	show.Insert(0, colour)
	s.sched.Add(show)
	show.Play()
	s.status.Store(s.sched.Snapshot())

	return s
}

// Scheduler exposes the show's timeline registry for introspection. It must
// only be used from the goroutine that drives Advance.
func (s *Show) Scheduler() *tween.Scheduler {
	return s.sched
}

// Status returns the timeline snapshot published by the latest tick. Unlike
// the scheduler itself it is safe to read from other goroutines.
func (s *Show) Status() []tween.Status {
	st, _ := s.status.Load().([]tween.Status)
	return st
}

// Advance moves the show forward by dt seconds.
func (s *Show) Advance(dt float64) {
	s.sched.Advance(dt)
	s.status.Store(s.sched.Snapshot())
}

// CalculateFrame renders the current band state into a Frame.
func (s *Show) CalculateFrame() *Frame {
	f := NewFrame(s.back)
	half := s.length / 2
	f.Blend(int(s.pos-half), int(s.pos+half), s.colour, 1)
	return f
}
