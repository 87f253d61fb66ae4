// Package sim implements the descent physics for the lander: time-stepped
// integration of thrust, gravity and fuel burn, throttle ramp control,
// playfield bounds enforcement, and touchdown outcome evaluation.
// It contains no platform dependencies and never reads a system clock;
// time is always supplied by the caller, so the whole package is
// deterministic under synthetic time.
package sim

// Config holds the physical and control constants for a flight.
// It is built once at startup and treated as immutable for the whole run.
type Config struct {
	Gravity          float64 // surface gravity in m/s², negative (downward)
	MainEngineThrust float64 // main engine rated thrust in N
	SubEngineThrust  float64 // lateral thruster rated thrust in N
	SpecificImpulse  float64 // N·s of impulse per kg of propellant
	ThrottleRate     float64 // main throttle ramp in full-throttle fractions per second
	MinThrottle      float64 // low-throttle floor for the main engine; 0 disables the floor

	DryMass     float64 // structural mass in kg
	FuelMass    float64 // propellant load at launch in kg
	StartHeight float64 // initial height above the surface in m

	FieldMin float64 // playfield lower bound for x and y, in m
	FieldMax float64 // playfield upper bound for x and y, in m

	SafeLandingVelocity float64 // max touchdown speed counted as a landing, m/s

	// Landing pad position. Pad distance is only reported when HasPad is set.
	PadX, PadY float64
	HasPad     bool
}
