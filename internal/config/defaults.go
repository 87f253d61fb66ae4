package config

import (
	_ "embed"
)

//go:embed defaults/lander.yaml
var defaultLanderYAML []byte

// DefaultLanderConfig returns the built-in lander configuration. It mirrors
// the embedded YAML and serves as the last-resort fallback.
func DefaultLanderConfig() LanderConfig {
	return LanderConfig{
		Physics: PhysicsConfig{
			Gravity:          -1.625,
			MainEngineThrust: 45000,
			SubEngineThrust:  9000,
			SpecificImpulse:  3000,
			DryMass:          1000,
			FuelMass:         10000,
		},
		Control: ControlConfig{
			ThrottleRate: 0.2,
			MinThrottle:  0.05,
		},
		World: WorldConfig{
			StartHeight: 500,
			FieldMin:    50,
			FieldMax:    4950,
			Pad: PadConfig{
				Enabled: true,
				X:       2500,
				Y:       2500,
			},
		},
		Landing: LandingConfig{
			SafeVelocity: 3.0,
		},
	}
}
