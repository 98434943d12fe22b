package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/springsim/internal/sim"
	"github.com/san-kum/springsim/internal/viz"
)

// Config is the on-disk shape of a run: physical parameters plus the
// render settings. Fields missing from the file keep their defaults.
type Config struct {
	Params sim.Params     `yaml:"params"`
	Render RenderSettings `yaml:"render"`
}

type RenderSettings struct {
	Theme           string `yaml:"theme"`
	GIF             string `yaml:"gif"`
	FPS             int    `yaml:"fps"`
	FrameIntervalMS int    `yaml:"frame_interval_ms"`
	Width           int    `yaml:"width"`
	Height          int    `yaml:"height"`
	ChartWidth      int    `yaml:"chart_width"`
	ChartHeight     int    `yaml:"chart_height"`
	TermWidth       int    `yaml:"term_width"`
	TermHeight      int    `yaml:"term_height"`
	MarkerRadius    int    `yaml:"marker_radius"`
}

func DefaultConfig() *Config {
	rc := viz.DefaultRenderConfig()
	return &Config{
		Params: sim.DefaultParams(),
		Render: RenderSettings{
			Theme:           rc.Theme.Name,
			GIF:             rc.Filename,
			FPS:             rc.FPS,
			FrameIntervalMS: int(rc.FrameInterval / time.Millisecond),
			Width:           rc.Width,
			Height:          rc.Height,
			ChartWidth:      rc.ChartWidth,
			ChartHeight:     rc.ChartHeight,
			TermWidth:       rc.TermWidth,
			TermHeight:      rc.TermHeight,
			MarkerRadius:    rc.MarkerRadius,
		},
	}
}

func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if err := LoadInto(cfg, path); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadInto overlays the keys present in the file onto cfg.
func LoadInto(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}

// RenderConfig converts the settings into the renderer form. Non-positive
// sizes fall back to the defaults.
func (c *Config) RenderConfig() viz.RenderConfig {
	rc := viz.DefaultRenderConfig()
	r := c.Render

	if r.Theme != "" {
		rc.Theme = viz.GetTheme(r.Theme)
	}
	if r.GIF != "" {
		rc.Filename = r.GIF
	}
	setPositive(&rc.FPS, r.FPS)
	setPositive(&rc.Width, r.Width)
	setPositive(&rc.Height, r.Height)
	setPositive(&rc.ChartWidth, r.ChartWidth)
	setPositive(&rc.ChartHeight, r.ChartHeight)
	setPositive(&rc.TermWidth, r.TermWidth)
	setPositive(&rc.TermHeight, r.TermHeight)
	setPositive(&rc.MarkerRadius, r.MarkerRadius)
	if r.FrameIntervalMS > 0 {
		rc.FrameInterval = time.Duration(r.FrameIntervalMS) * time.Millisecond
	}
	return rc
}

func setPositive(dst *int, v int) {
	if v > 0 {
		*dst = v
	}
}
