package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/kelseyhightower/envconfig"

	"github.com/phanxgames/sprig"
)

// Config is read from SPRIG_* environment variables.
type Config struct {
	Width     int     `envconfig:"WIDTH" default:"600"`
	Height    int     `envconfig:"HEIGHT" default:"600"`
	Extent    float64 `envconfig:"EXTENT" default:"1"`
	SceneFile string  `envconfig:"SCENE"`
	Showcase  bool    `envconfig:"SHOWCASE" default:"true"`
	Output    string  `envconfig:"OUTPUT" default:"sprigshot.png"`
	Export    string  `envconfig:"EXPORT"`
	// Background is a hex color.
	Background string  `envconfig:"BACKGROUND" default:"#ffffff"`
	LineWidth  float64 `envconfig:"LINE_WIDTH" default:"1"`
	Probe      string  `envconfig:"PROBE"`
	LogLevel   string  `envconfig:"LOG_LEVEL" default:"info"`
	LogFile    string  `envconfig:"LOG_FILE"`
	Debug      bool    `envconfig:"DEBUG"`
}

// LoadConfig reads the configuration from the environment.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("sprig", &cfg); err != nil {
		return nil, err
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, fmt.Errorf("invalid size %dx%d", cfg.Width, cfg.Height)
	}
	if cfg.Extent <= 0 {
		return nil, fmt.Errorf("invalid extent %g", cfg.Extent)
	}
	return &cfg, nil
}

// ProbePoint parses Probe as "x,y". ok is false when Probe is empty.
func (c *Config) ProbePoint() (p sprig.Vec2, ok bool, err error) {
	if strings.TrimSpace(c.Probe) == "" {
		return sprig.Vec2{}, false, nil
	}
	xs, ys, found := strings.Cut(c.Probe, ",")
	if !found {
		return sprig.Vec2{}, false, fmt.Errorf("probe %q: want x,y", c.Probe)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(xs), 64)
	if err != nil {
		return sprig.Vec2{}, false, fmt.Errorf("probe x: %w", err)
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(ys), 64)
	if err != nil {
		return sprig.Vec2{}, false, fmt.Errorf("probe y: %w", err)
	}
	return sprig.Vec2{X: x, Y: y}, true, nil
}
