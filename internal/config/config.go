package config

import (
	"errors"
	"fmt"
	"os"
	"runtime"

	"gopkg.in/yaml.v3"
)

const (
	DefaultWidth      = 800
	DefaultHeight     = 600
	DefaultBackground = "#ffffff"
	DefaultFPS        = 30.0
	DefaultTickMs     = 16.0
	DefaultFrameRate  = 30
	DefaultTheme      = "default"
	DefaultDataDir    = "runs"
)

var ErrInvalid = errors.New("invalid config")

type Config struct {
	Width       int     `yaml:"width"`
	Height      int     `yaml:"height"`
	Background  string  `yaml:"background"`
	FPS         float64 `yaml:"fps"`
	TickMs      float64 `yaml:"tick_ms"`
	FrameRate   int     `yaml:"frame_rate"`
	Workers     int     `yaml:"workers"`
	Theme       string  `yaml:"theme"`
	DataDir     string  `yaml:"data_dir"`
	LiveResolve bool    `yaml:"live_resolve"`
}

func DefaultConfig() *Config {
	return &Config{
		Width:      DefaultWidth,
		Height:     DefaultHeight,
		Background: DefaultBackground,
		FPS:        DefaultFPS,
		TickMs:     DefaultTickMs,
		FrameRate:  DefaultFrameRate,
		Theme:      DefaultTheme,
		DataDir:    DefaultDataDir,
	}
}

// Load reads a YAML config. Fields absent from the file keep their
// defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
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

func (c *Config) Validate() error {
	var errs []error
	if c.Width <= 0 || c.Height <= 0 {
		errs = append(errs, fmt.Errorf("%w: size %dx%d", ErrInvalid, c.Width, c.Height))
	}
	if c.FPS <= 0 {
		errs = append(errs, fmt.Errorf("%w: fps %g", ErrInvalid, c.FPS))
	}
	if c.TickMs <= 0 {
		errs = append(errs, fmt.Errorf("%w: tick_ms %g", ErrInvalid, c.TickMs))
	}
	if c.FrameRate <= 0 {
		errs = append(errs, fmt.Errorf("%w: frame_rate %d", ErrInvalid, c.FrameRate))
	}
	if c.Workers < 0 {
		errs = append(errs, fmt.Errorf("%w: workers %d", ErrInvalid, c.Workers))
	}
	return errors.Join(errs...)
}

// WorkerCount resolves Workers, where zero means one per CPU.
func (c *Config) WorkerCount() int {
	if c.Workers > 0 {
		return c.Workers
	}
	return runtime.NumCPU()
}
