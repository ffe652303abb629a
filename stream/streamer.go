package stream

import (
	"fmt"
	"sync/atomic"

	"github.com/BrugadaSyndrome/bslogger"
	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/matt-g-everett/tweentx/tween"
)

// Publisher is the part of mqtt.Client the Streamer needs.
type Publisher interface {
	Publish(topic string, qos byte, retained bool, payload interface{}) mqtt.Token
}

// Streamer that streams RGB data frames to an ledrx device.
type Streamer struct {
	client   Publisher
	topic    string
	qos      byte
	renderer Renderer
	logger   bslogger.Logger

	sent   atomic.Int64
	failed atomic.Int64
}

// NewStreamer creates an instance of a Streamer.
func NewStreamer(client Publisher, topic string, qos byte, renderer Renderer) *Streamer {
	s := new(Streamer)
	s.client = client
	s.topic = topic
	s.qos = qos
	s.renderer = renderer
	s.logger = bslogger.NewLogger("Streamer", bslogger.Normal, nil)
	return s
}

// SendFrame sends a frame as binary over MQTT to an ledrx device.
func (s *Streamer) SendFrame(f *Frame) error {
	b, err := f.MarshalBinary()
	if err != nil {
		return err
	}

	token := s.client.Publish(s.topic, s.qos, false, b)
	token.Wait()
	if err := token.Error(); err != nil {
		return fmt.Errorf("stream: publish to %s: %w", s.topic, err)
	}
	return nil
}

// Update renders v and publishes it. It has the shape of a
// tween.Config.OnUpdate; publish failures are logged, not returned.
func (s *Streamer) Update(v tween.Value) {
	if err := s.SendFrame(s.renderer.Render(v)); err != nil {
		s.failed.Add(1)
		s.logger.Error(err.Error())
		return
	}
	s.sent.Add(1)
}

// Stats returns how many frames were published and how many failed.
func (s *Streamer) Stats() (sent, failed int64) {
	return s.sent.Load(), s.failed.Load()
}
