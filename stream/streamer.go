package stream

import (
	"log/slog"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
)

// Streamer that streams RGB data frames to an LED strip receiver.
type Streamer struct {
	client mqtt.Client
	config Config
	logger *slog.Logger
	show   *Show
}

// NewStreamer creates an instance of a Streamer.
func NewStreamer(config Config, client mqtt.Client, logger *slog.Logger) *Streamer {
	s := new(Streamer)
	s.client = client
	s.config = config
	s.logger = logger
	s.show = NewShow(config, logger)
	return s
}

// Show returns the show the streamer renders.
func (s *Streamer) Show() *Show {
	return s.show
}

// SendFrame sends a frame as binary over MQTT to an LED strip receiver.
func (s *Streamer) SendFrame() {
	f := s.show.CalculateFrame()
	b, _ := f.MarshalBinary()
	token := s.client.Publish(s.config.Mqtt.Topics.Stream, 2, false, b)
	token.Wait()
}

// Run advances the show and sends frames continuously.
func (s *Streamer) Run() {
	frameRate := s.config.Show.FrameRate
	if frameRate <= 0 {
		frameRate = 30
	}
	interval := time.Duration(float64(time.Second) / frameRate)
	dt := interval.Seconds()

	publishTimer := time.NewTicker(interval)
	for {
		<-publishTimer.C
		s.show.Advance(dt)
		s.SendFrame()
	}
}
