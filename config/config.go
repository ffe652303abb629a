// Package config reads the tweentx YAML configuration.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/matt-g-everett/tweentx/timing"
	"github.com/matt-g-everett/tweentx/tween"
	"gopkg.in/yaml.v2"
)

const (
	DefaultFrameRate = 60.0
	DefaultDuration  = 2 * time.Second
	DefaultTopic     = "home/xmastree/stream"
	DefaultClientID  = "tweentx"
	DefaultRender    = "blend"
	DefaultListen    = ":3000"
)

type Config struct {
	Mqtt      MqttConfig      `yaml:"mqtt"`
	FrameRate float64         `yaml:"frameRate"`
	Listen    string          `yaml:"listen"`
	Animation AnimationConfig `yaml:"animation"`
	Render    RenderConfig    `yaml:"render"`
}

type MqttConfig struct {
	URL      string `yaml:"url"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	ClientID string `yaml:"clientId"`
	QoS      byte   `yaml:"qos"`
	Topics   struct {
		Stream string `yaml:"stream"`
	} `yaml:"topics"`
}

// AnimationConfig is the YAML form of tween.Config. Start and End are
// pointers so that omitted values can take their defaults.
type AnimationConfig struct {
	Duration    time.Duration      `yaml:"duration"`
	Timing      string             `yaml:"timing"`
	Start       *float64           `yaml:"start,omitempty"`
	End         *float64           `yaml:"end,omitempty"`
	StartValues map[string]float64 `yaml:"startValues,omitempty"`
	EndValues   map[string]float64 `yaml:"endValues,omitempty"`
}

type GradientStop struct {
	Hue float64 `yaml:"hue"`
	Pos float64 `yaml:"pos"`
}

// RenderConfig selects how animation values become LED frames.
type RenderConfig struct {
	Mode       string         `yaml:"mode"`
	Pixels     int            `yaml:"pixels"`
	From       string         `yaml:"from"`
	To         string         `yaml:"to"`
	Saturation float64        `yaml:"saturation"`
	Luminance  float64        `yaml:"luminance"`
	Gradient   []GradientStop `yaml:"gradient,omitempty"`
}

func DefaultConfig() *Config {
	c := &Config{
		FrameRate: DefaultFrameRate,
		Listen:    DefaultListen,
		Animation: AnimationConfig{
			Duration: DefaultDuration,
			Timing:   "easeInOut",
		},
		Render: RenderConfig{
			Mode:       DefaultRender,
			From:       "#000005",
			To:         "#808080",
			Saturation: 1.0,
			Luminance:  0.05,
		},
	}
	c.Mqtt.ClientID = DefaultClientID
	c.Mqtt.Topics.Stream = DefaultTopic
	return c
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parsing %s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// IsGroup reports whether the animation animates named values. An
// explicit start keeps single mode even when startValues is present.
func (a AnimationConfig) IsGroup() bool {
	return a.Start == nil && a.StartValues != nil
}

// Range resolves the value range. In single mode start defaults to 0 and
// end to 1; in group mode end is ignored.
func (a AnimationConfig) Range() tween.Range {
	if a.IsGroup() {
		return tween.Group{Start: a.StartValues, End: a.EndValues}
	}

	single := tween.Single{Start: 0, End: 1}
	if a.Start != nil {
		single.Start = *a.Start
	}
	if a.End != nil {
		single.End = *a.End
	}
	return single
}

// Tween builds a tween.Config with the given callbacks. Validation of the
// result is left to tween.Animation.Start.
func (a AnimationConfig) Tween(onUpdate func(tween.Value)) (tween.Config, error) {
	f, err := timing.Lookup(a.Timing)
	if err != nil {
		return tween.Config{}, err
	}

	return tween.Config{
		Timing:   f,
		Duration: a.Duration,
		Range:    a.Range(),
		OnUpdate: onUpdate,
	}, nil
}
