// Package config provides YAML-based configuration loading and difficulty
// presets for the lander.
package config

import "github.com/vovakirdan/tui-lander/internal/sim"

// LanderConfig contains all tunable parameters for a descent.
type LanderConfig struct {
	Physics PhysicsConfig `yaml:"physics"`
	Control ControlConfig `yaml:"control"`
	World   WorldConfig   `yaml:"world"`
	Landing LandingConfig `yaml:"landing"`
}

// PhysicsConfig defines the craft and environment constants.
type PhysicsConfig struct {
	Gravity          float64 `yaml:"gravity"`            // m/s², negative
	MainEngineThrust float64 `yaml:"main_engine_thrust"` // N
	SubEngineThrust  float64 `yaml:"sub_engine_thrust"`  // N
	SpecificImpulse  float64 `yaml:"specific_impulse"`   // N·s/kg
	DryMass          float64 `yaml:"dry_mass"`           // kg
	FuelMass         float64 `yaml:"fuel_mass"`          // kg
}

// ControlConfig defines the throttle ramp behavior.
type ControlConfig struct {
	ThrottleRate float64 `yaml:"throttle_rate"` // full-throttle fractions per second
	MinThrottle  float64 `yaml:"min_throttle"`  // low-throttle floor, 0 disables
}

// WorldConfig defines the playfield and the landing pad.
type WorldConfig struct {
	StartHeight float64   `yaml:"start_height"` // m
	FieldMin    float64   `yaml:"field_min"`    // m, x/y lower bound
	FieldMax    float64   `yaml:"field_max"`    // m, x/y upper bound
	Pad         PadConfig `yaml:"pad"`
}

// PadConfig defines the optional landing target.
type PadConfig struct {
	Enabled bool    `yaml:"enabled"`
	X       float64 `yaml:"x"`
	Y       float64 `yaml:"y"`
}

// LandingConfig defines the touchdown classification.
type LandingConfig struct {
	SafeVelocity float64 `yaml:"safe_velocity"` // m/s
}

// SimConfig converts the loaded configuration into the simulation core's
// immutable config.
func (c LanderConfig) SimConfig() sim.Config {
	return sim.Config{
		Gravity:             c.Physics.Gravity,
		MainEngineThrust:    c.Physics.MainEngineThrust,
		SubEngineThrust:     c.Physics.SubEngineThrust,
		SpecificImpulse:     c.Physics.SpecificImpulse,
		ThrottleRate:        c.Control.ThrottleRate,
		MinThrottle:         c.Control.MinThrottle,
		DryMass:             c.Physics.DryMass,
		FuelMass:            c.Physics.FuelMass,
		StartHeight:         c.World.StartHeight,
		FieldMin:            c.World.FieldMin,
		FieldMax:            c.World.FieldMax,
		SafeLandingVelocity: c.Landing.SafeVelocity,
		PadX:                c.World.Pad.X,
		PadY:                c.World.Pad.Y,
		HasPad:              c.World.Pad.Enabled,
	}
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ApplyPreset adjusts the configuration for a difficulty preset. Easy
// flights carry more propellant and a wider safe-landing margin; hard
// flights carry less of both.
func ApplyPreset(cfg *LanderConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Physics.FuelMass *= 1.5
		cfg.Landing.SafeVelocity += 1.0
	case DifficultyHard:
		cfg.Physics.FuelMass *= 0.6
		cfg.Landing.SafeVelocity -= 1.0
		if cfg.Landing.SafeVelocity < 1.0 {
			cfg.Landing.SafeVelocity = 1.0
		}
	}
}
