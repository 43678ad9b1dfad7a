package config

import (
	_ "embed"

	"github.com/vovakirdan/starlinks/internal/entity"
)

//go:embed defaults/starlinks.yaml
var defaultYAML []byte

// DefaultConfig returns the built-in configuration.
func DefaultConfig() Config {
	return Config{
		Field: FieldConfig{
			CellWidth:  10,
			CellHeight: 20,
		},
		Physics: PhysicsConfig{
			Thrust:       200,
			Damping:      0.99,
			DampingMode:  entity.DampingExponential,
			ReferenceFPS: 60,
			MaxDT:        1.0 / 15,
			RotateSpeed:  5,
			SteerGain:    5,
			ShipRadius:   15,
		},
		Weapon: WeaponConfig{
			Cooldown: 0.25,
			Speed:    500,
			Lifetime: 1.5,
			Muzzle:   20,
			Radius:   4,
		},
		Targets: TargetsConfig{
			Radius:   25,
			MaxSpeed: 50,
			Spin:     0.5,
			Links: []Link{
				{Tag: "github", URL: "https://github.com/vovakirdan", Icon: "github.png"},
				{Tag: "twitter", URL: "https://x.com", Icon: "twitter.png"},
				{Tag: "linkedin", URL: "https://www.linkedin.com", Icon: "linkedin.png"},
				{Tag: "blog", URL: "https://dev.to", Icon: "blog.png"},
				{Tag: "replit", URL: "https://replit.com", Icon: "replit.png"},
			},
		},
		Particles: ParticlesConfig{
			Burst:    20,
			Color:    "white",
			SpeedMin: 50,
			SpeedMax: 150,
			Decay:    2,
			SizeMin:  1,
			SizeMax:  4,
		},
		Controls: ControlsConfig{
			Scheme:        "buttons",
			ButtonSize:    60,
			Margin:        20,
			DeadZone:      10,
			StickRadius:   50,
			StickDeadZone: 0.3,
		},
	}
}
