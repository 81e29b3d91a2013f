package config

import (
	"errors"
	"fmt"
	"math"
	"os"

	"github.com/san-kum/vthrow/internal/input"
	"github.com/san-kum/vthrow/internal/kinematics"
	"github.com/san-kum/vthrow/internal/trajectory"
	"gopkg.in/yaml.v3"
)

const (
	DefaultBody     = "earth"
	DefaultFrames   = trajectory.DefaultFrames
	DefaultFallback = trajectory.DefaultFallback
	DefaultFPS      = 20
	DefaultLogLevel = "info"
)

var ErrInvalid = errors.New("config: invalid value")

type Config struct {
	// Body names a registered body; ignored when Gravity is set.
	Body      string          `yaml:"body"`
	Gravity   *float64        `yaml:"gravity,omitempty"`
	InitState InitStateConfig `yaml:"init_state"`
	Query     *float64        `yaml:"query,omitempty"`
	Frames    int             `yaml:"frames"`
	Fallback  float64         `yaml:"fallback"`
	FPS       int             `yaml:"fps"`
	Limits    LimitsConfig    `yaml:"limits"`
	Log       LogConfig       `yaml:"log"`
}

type InitStateConfig struct {
	Height   float64 `yaml:"height"`
	Velocity float64 `yaml:"velocity"`
}

// LimitsConfig bounds the values accepted by the interactive prompts.
// Zero upper limits mean unbounded.
type LimitsConfig struct {
	MaxHeight   float64 `yaml:"max_height"`
	MaxVelocity float64 `yaml:"max_velocity"`
	MaxGravity  float64 `yaml:"max_gravity"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

func DefaultConfig() *Config {
	return &Config{
		Body:     DefaultBody,
		Frames:   DefaultFrames,
		Fallback: DefaultFallback,
		FPS:      DefaultFPS,
		Log: LogConfig{
			Level:  DefaultLogLevel,
			Format: "text",
		},
	}
}

func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if err := LoadInto(path, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadInto reads the YAML file at path over cfg. Keys missing from the file
// keep the values already in cfg.
func LoadInto(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// ResolveBody returns the configured body, or a custom one when Gravity is set.
func (c *Config) ResolveBody() (kinematics.Body, error) {
	if c.Gravity != nil {
		return kinematics.CustomBody(*c.Gravity), nil
	}
	return kinematics.LookupBody(c.Body)
}

func (c *Config) Params() (kinematics.Params, error) {
	b, err := c.ResolveBody()
	if err != nil {
		return kinematics.Params{}, err
	}
	return b.Params(c.InitState.Height, c.InitState.Velocity), nil
}

func (c *Config) Sampler() trajectory.Sampler {
	return trajectory.Sampler{Frames: c.Frames, Fallback: c.Fallback}
}

// PromptLimits builds the prompt bounds. Height, gravity and time are never negative.
func (c *Config) PromptLimits() input.Limits {
	l := input.DefaultLimits()
	if c.Limits.MaxHeight > 0 {
		l.Height = input.Between(0, c.Limits.MaxHeight)
	}
	if c.Limits.MaxVelocity > 0 {
		l.Velocity = input.Between(-c.Limits.MaxVelocity, c.Limits.MaxVelocity)
	}
	if c.Limits.MaxGravity > 0 {
		l.Gravity = input.Between(0, c.Limits.MaxGravity)
	}
	return l
}

func (c *Config) Validate() error {
	p, err := c.Params()
	if err != nil {
		return err
	}
	if err := p.Validate(); err != nil {
		return err
	}
	if c.InitState.Height < 0 {
		return fmt.Errorf("%w: init_state.height must be >= 0", ErrInvalid)
	}
	if c.Query != nil && (!(*c.Query >= 0) || math.IsInf(*c.Query, 0)) {
		return fmt.Errorf("%w: query must be >= 0", ErrInvalid)
	}
	if err := c.Sampler().Validate(); err != nil {
		return err
	}
	if c.FPS <= 0 {
		return fmt.Errorf("%w: fps must be > 0", ErrInvalid)
	}
	return nil
}
