// Package config provides YAML-based configuration loading for starlinks:
// physics tuning, weapon, targets and their links, particles and controls.
package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/starlinks/internal/effects"
	"github.com/vovakirdan/starlinks/internal/entity"
	"github.com/vovakirdan/starlinks/internal/input"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Config contains all tunable settings.
type Config struct {
	Field     FieldConfig     `yaml:"field"`
	Physics   PhysicsConfig   `yaml:"physics"`
	Weapon    WeaponConfig    `yaml:"weapon"`
	Targets   TargetsConfig   `yaml:"targets"`
	Particles ParticlesConfig `yaml:"particles"`
	Controls  ControlsConfig  `yaml:"controls"`
}

// FieldConfig maps terminal cells onto field units.
type FieldConfig struct {
	CellWidth  float64 `yaml:"cell_width"`
	CellHeight float64 `yaml:"cell_height"`
}

// PhysicsConfig defines ship motion.
type PhysicsConfig struct {
	Thrust       float64            `yaml:"thrust"` // Units per second squared
	Damping      float64            `yaml:"damping"`
	DampingMode  entity.DampingMode `yaml:"damping_mode"` // "exponential" or "legacy"
	ReferenceFPS float64            `yaml:"reference_fps"`
	MaxDT        float64            `yaml:"max_dt"` // Frame step clamp in seconds
	RotateSpeed  float64            `yaml:"rotate_speed"`
	SteerGain    float64            `yaml:"steer_gain"`
	ShipRadius   float64            `yaml:"ship_radius"`
}

// WeaponConfig defines projectiles.
type WeaponConfig struct {
	Cooldown float64 `yaml:"cooldown"` // Seconds between shots
	Speed    float64 `yaml:"speed"`
	Lifetime float64 `yaml:"lifetime"`
	Muzzle   float64 `yaml:"muzzle"` // Spawn offset ahead of the ship
	Radius   float64 `yaml:"radius"`
}

// TargetsConfig defines the link portals.
type TargetsConfig struct {
	Radius   float64 `yaml:"radius"`
	MaxSpeed float64 `yaml:"max_speed"` // Per-axis initial speed bound
	Spin     float64 `yaml:"spin"`
	Links    []Link  `yaml:"links"`
}

// Link is one (category tag, URL) pair, with an optional icon file name.
type Link struct {
	Tag  string `yaml:"tag"`
	URL  string `yaml:"url"`
	Icon string `yaml:"icon,omitempty"`
}

// ParticlesConfig defines hit bursts.
type ParticlesConfig struct {
	Burst    int     `yaml:"burst"`
	Color    string  `yaml:"color"`
	SpeedMin float64 `yaml:"speed_min"`
	SpeedMax float64 `yaml:"speed_max"`
	Decay    float64 `yaml:"decay"`
	SizeMin  float64 `yaml:"size_min"`
	SizeMax  float64 `yaml:"size_max"`
}

// ControlsConfig defines the virtual controls.
type ControlsConfig struct {
	Scheme        string  `yaml:"scheme"`
	ButtonSize    float64 `yaml:"button_size"`
	Margin        float64 `yaml:"margin"`
	DeadZone      float64 `yaml:"dead_zone"`
	StickRadius   float64 `yaml:"stick_radius"`
	StickDeadZone float64 `yaml:"stick_dead_zone"`
}

// DampingModel converts the physics section into an entity damping model.
func (p PhysicsConfig) DampingModel() entity.Damping {
	return entity.Damping{
		Mode:         p.DampingMode,
		Factor:       p.Damping,
		ReferenceFPS: p.ReferenceFPS,
	}
}

// Effects converts the particles section into an effects config.
func (p ParticlesConfig) Effects() effects.Config {
	return effects.Config{
		SpeedMin: p.SpeedMin,
		SpeedMax: p.SpeedMax,
		Decay:    p.Decay,
		SizeMin:  p.SizeMin,
		SizeMax:  p.SizeMax,
	}
}

// InputOptions builds control options from the controls and physics sections.
func (c Config) InputOptions() input.Options {
	return input.Options{
		Scheme:        c.Controls.Scheme,
		ButtonSize:    c.Controls.ButtonSize,
		Margin:        c.Controls.Margin,
		RotateSpeed:   c.Physics.RotateSpeed,
		DeadZone:      c.Controls.DeadZone,
		StickRadius:   c.Controls.StickRadius,
		StickDeadZone: c.Controls.StickDeadZone,
		SteerGain:     c.Physics.SteerGain,
	}
}

// EntityLinks returns the configured links as entity links.
func (t TargetsConfig) EntityLinks() []entity.Link {
	out := make([]entity.Link, len(t.Links))
	for i, l := range t.Links {
		out[i] = entity.Link{Tag: l.Tag, URL: l.URL}
	}
	return out
}

// Validate checks the configuration for values the simulation cannot run with.
func (c Config) Validate() error {
	positive := []struct {
		name string
		v    float64
	}{
		{"physics.thrust", c.Physics.Thrust},
		{"physics.reference_fps", c.Physics.ReferenceFPS},
		{"physics.max_dt", c.Physics.MaxDT},
		{"physics.rotate_speed", c.Physics.RotateSpeed},
		{"physics.ship_radius", c.Physics.ShipRadius},
		{"weapon.speed", c.Weapon.Speed},
		{"weapon.lifetime", c.Weapon.Lifetime},
		{"weapon.radius", c.Weapon.Radius},
		{"targets.radius", c.Targets.Radius},
		{"particles.decay", c.Particles.Decay},
		{"controls.button_size", c.Controls.ButtonSize},
	}
	for _, p := range positive {
		if p.v <= 0 {
			return fmt.Errorf("config: %s must be positive, got %v: %w", p.name, p.v, ErrInvalidConfig)
		}
	}

	if c.Physics.Damping <= 0 || c.Physics.Damping > 1 {
		return fmt.Errorf("config: physics.damping must be in (0, 1], got %v: %w", c.Physics.Damping, ErrInvalidConfig)
	}
	switch c.Physics.DampingMode {
	case entity.DampingExponential, entity.DampingLegacy:
	default:
		return fmt.Errorf("config: unknown physics.damping_mode %q: %w", c.Physics.DampingMode, ErrInvalidConfig)
	}
	if c.Weapon.Cooldown < 0 {
		return fmt.Errorf("config: weapon.cooldown must not be negative: %w", ErrInvalidConfig)
	}
	if c.Particles.Burst < 0 {
		return fmt.Errorf("config: particles.burst must not be negative: %w", ErrInvalidConfig)
	}
	if c.Particles.SpeedMax < c.Particles.SpeedMin || c.Particles.SizeMax < c.Particles.SizeMin {
		return fmt.Errorf("config: particles ranges must have max >= min: %w", ErrInvalidConfig)
	}
	if c.Controls.StickDeadZone < 0 || c.Controls.StickDeadZone >= 1 {
		return fmt.Errorf("config: controls.stick_dead_zone must be in [0, 1): %w", ErrInvalidConfig)
	}

	for i, l := range c.Targets.Links {
		if l.Tag == "" {
			return fmt.Errorf("config: targets.links[%d] has no tag: %w", i, ErrInvalidConfig)
		}
		if l.URL == "" {
			return fmt.Errorf("config: targets.links[%d] (%s) has no url: %w", i, l.Tag, ErrInvalidConfig)
		}
	}

	if !input.Exists(c.Controls.Scheme) {
		return fmt.Errorf("config: unknown controls.scheme %q: %w", c.Controls.Scheme, ErrInvalidConfig)
	}
	return nil
}
