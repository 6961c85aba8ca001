package firework

import (
	"errors"
	"fmt"
	"math"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Simulation.
const (
	ReferenceFPS   = 60.0 // drag factors are expressed per frame at this rate
	MaxParticles   = 12000
	DefaultGravity = 160.0 // px/s^2, +Y is down
	DefaultDrag    = 0.985
)

// Explosion defaults.
const (
	DefaultForce           = 300.0
	DefaultParticleCount   = 60
	DefaultSpreadAngle     = 360.0 // degrees
	DefaultLifespan        = 1.6   // seconds
	DefaultMinParticleSize = 2.0
	DefaultMaxParticleSize = 5.0
)

// Secondary explosions.
const (
	DefaultSecondaryForce         = 140.0
	DefaultSecondaryDelay         = 0.45
	DefaultSecondaryCount         = 3
	DefaultSecondaryParticleCount = 20
)

// Triggering.
const (
	DefaultMoveDistance = 120.0 // px of cursor travel per move-triggered burst
)

var ErrUnknownStyle = errors.New("unknown style")

// Config is the on-disk effect configuration.
type Config struct {
	Style    string `yaml:"style"`
	Capacity int    `yaml:"capacity"`
	Seed     uint64 `yaml:"seed"`

	Physics   PhysicsConfig   `yaml:"physics"`
	Explosion ExplosionConfig `yaml:"explosion"`
	Secondary SecondaryConfig `yaml:"secondary"`
	Colors    ColorConfig     `yaml:"colors"`
	Trigger   TriggerConfig   `yaml:"trigger"`

	// Parameters maps style name to key/value overrides for that style.
	Parameters map[string]map[string]float64 `yaml:"parameters"`
}

type PhysicsConfig struct {
	Gravity float64 `yaml:"gravity"`
	Drag    float64 `yaml:"drag"`
}

type ExplosionConfig struct {
	Force         float64 `yaml:"force"`
	ParticleCount int     `yaml:"particleCount"`
	SpreadAngle   float64 `yaml:"spreadAngle"`
	Lifespan      float64 `yaml:"lifespan"`
	MinSize       float64 `yaml:"minSize"`
	MaxSize       float64 `yaml:"maxSize"`
}

type SecondaryConfig struct {
	Enabled       bool    `yaml:"enabled"`
	Force         float64 `yaml:"force"`
	Delay         float64 `yaml:"delay"`
	Count         int     `yaml:"count"`
	ParticleCount int     `yaml:"particleCount"`
}

type ColorConfig struct {
	Primary   string `yaml:"primary"`
	Secondary string `yaml:"secondary"`
	Random    bool   `yaml:"random"`
}

type TriggerConfig struct {
	OnClick      bool    `yaml:"onClick"`
	OnMove       bool    `yaml:"onMove"`
	MoveDistance float64 `yaml:"moveDistance"`
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() Config {
	return Config{
		Style:    "Classic Burst",
		Capacity: MaxParticles,
		Physics: PhysicsConfig{
			Gravity: DefaultGravity,
			Drag:    DefaultDrag,
		},
		Explosion: ExplosionConfig{
			Force:         DefaultForce,
			ParticleCount: DefaultParticleCount,
			SpreadAngle:   DefaultSpreadAngle,
			Lifespan:      DefaultLifespan,
			MinSize:       DefaultMinParticleSize,
			MaxSize:       DefaultMaxParticleSize,
		},
		Secondary: SecondaryConfig{
			Enabled:       false,
			Force:         DefaultSecondaryForce,
			Delay:         DefaultSecondaryDelay,
			Count:         DefaultSecondaryCount,
			ParticleCount: DefaultSecondaryParticleCount,
		},
		Colors: ColorConfig{
			Primary:   "#ff5a2a",
			Secondary: "#ffd45a",
		},
		Trigger: TriggerConfig{
			OnClick:      true,
			OnMove:       false,
			MoveDistance: DefaultMoveDistance,
		},
	}
}

// LoadConfig reads a YAML file on top of DefaultConfig.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read effect config: %w", err)
	}
	return ParseConfig(data)
}

// ParseConfig decodes YAML on top of DefaultConfig and validates the result.
func ParseConfig(data []byte) (*Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse effect config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid effect config: %w", err)
	}
	return &cfg, nil
}

// Validate checks values that would otherwise make the effect unusable.
// Degenerate but harmless values (negative lifespan, zero force) pass through.
func (c *Config) Validate() error {
	if !IsStyleName(c.Style) {
		return fmt.Errorf("%w: %q", ErrUnknownStyle, c.Style)
	}
	if c.Capacity < 0 {
		return fmt.Errorf("capacity must not be negative, got %d", c.Capacity)
	}
	for _, f := range []struct {
		key string
		v   float64
	}{
		{"physics.gravity", c.Physics.Gravity},
		{"physics.drag", c.Physics.Drag},
		{"explosion.force", c.Explosion.Force},
		{"explosion.spreadAngle", c.Explosion.SpreadAngle},
		{"explosion.lifespan", c.Explosion.Lifespan},
		{"explosion.minSize", c.Explosion.MinSize},
		{"explosion.maxSize", c.Explosion.MaxSize},
		{"secondary.force", c.Secondary.Force},
		{"secondary.delay", c.Secondary.Delay},
		{"trigger.moveDistance", c.Trigger.MoveDistance},
	} {
		if math.IsNaN(f.v) || math.IsInf(f.v, 0) {
			return fmt.Errorf("%s must be finite, got %g", f.key, f.v)
		}
	}
	if c.Physics.Drag < 0 || c.Physics.Drag > 1 {
		return fmt.Errorf("physics.drag must be within [0,1], got %g", c.Physics.Drag)
	}
	if c.Explosion.MinSize > c.Explosion.MaxSize {
		return fmt.Errorf("explosion.minSize %g exceeds maxSize %g", c.Explosion.MinSize, c.Explosion.MaxSize)
	}
	if _, err := ParseColor(c.Colors.Primary); err != nil {
		return fmt.Errorf("colors.primary: %w", err)
	}
	if _, err := ParseColor(c.Colors.Secondary); err != nil {
		return fmt.Errorf("colors.secondary: %w", err)
	}
	for name := range c.Parameters {
		if !IsStyleName(name) {
			return fmt.Errorf("parameters: %w: %q", ErrUnknownStyle, name)
		}
	}
	return nil
}

// Tunables extracts the explosion tunables carried by an ExplosionContext.
func (c *Config) Tunables() Tunables {
	return Tunables{
		SpreadAngle:              c.Explosion.SpreadAngle,
		Lifespan:                 c.Explosion.Lifespan,
		MinParticleSize:          c.Explosion.MinSize,
		MaxParticleSize:          c.Explosion.MaxSize,
		EnableSecondaryExplosion: c.Secondary.Enabled,
		SecondaryExplosionForce:  c.Secondary.Force,
		SecondaryExplosionDelay:  c.Secondary.Delay,
		SecondaryExplosionCount:  c.Secondary.Count,
		SecondaryParticleCount:   c.Secondary.ParticleCount,
	}
}

// ColorPolicy resolves the configured colours. Call after Validate.
func (c *Config) ColorPolicy() ColorPolicy {
	primary, _ := ParseColor(c.Colors.Primary)
	secondary, _ := ParseColor(c.Colors.Secondary)
	return ColorPolicy{Primary: primary, Secondary: secondary, RandomColors: c.Colors.Random}
}

// IsStyleName reports whether name (case-insensitive) is a registered style.
func IsStyleName(name string) bool {
	for _, n := range AvailableStyles() {
		if strings.EqualFold(n, name) {
			return true
		}
	}
	return false
}
