package stream

import (
	"time"

	"github.com/eclipse/paho.mqtt.golang"

	"github.com/matt-g-everett/tweentx/api"
)

// Streamer that streams RGB data frames to an ledrx device.
type Streamer struct {
	config     Config
	client     mqtt.Client
	controller *Controller
	runtimeMs  int64
	frames     uint64
}

// NewStreamer creates an instance of a Streamer.
func NewStreamer(config Config, client mqtt.Client) (*Streamer, error) {
	s := new(Streamer)
	s.config = config
	s.client = client

	controller, err := NewController(config)
	if err != nil {
		return nil, err
	}
	s.controller = controller

	return s, nil
}

// SendFrame sends the frame for runtimeMs as binary over MQTT to an ledrx device.
func (s *Streamer) SendFrame(runtimeMs int64) {
	s.runtimeMs = runtimeMs
	f := s.controller.CalculateFrame(runtimeMs)
	b, _ := f.MarshalBinary()
	token := s.client.Publish(s.config.Mqtt.Topics.Stream, 2, false, b)
	token.Wait()
	s.frames++
}

// Status reports the live playback snapshot for the HTTP API.
func (s *Streamer) Status() api.Status {
	return api.Status{
		Scene:     s.controller.SceneName(),
		RuntimeMs: s.runtimeMs,
		Frames:    s.frames,
	}
}

// Run causes the Streamer to send Frames continuously at the configured rate.
func (s *Streamer) Run() {
	interval := time.Duration(float64(time.Second) / s.config.Stream.FrameRate)
	start := time.Now()
	publishTimer := time.NewTicker(interval)
	for {
		<-publishTimer.C
		s.SendFrame(time.Since(start).Milliseconds())
	}
}
