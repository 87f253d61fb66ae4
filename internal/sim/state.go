package sim

import (
	"math"
	"time"
)

// FlightState is the mutable record describing the lander's kinematics, fuel
// and control surfaces. One instance is created per attempt and mutated in
// place every tick by the Simulator; a restart builds a fresh one.
type FlightState struct {
	// Position in metres. Z is height above the surface; X and Y are the
	// planar position within the playfield.
	X, Y, Z float64

	// Velocity in m/s and the acceleration/force computed on the last step.
	VX, VY, VZ float64
	AX, AY, AZ float64
	FX, FY, FZ float64 // applied force in N

	FuelMass float64 // remaining propellant in kg, never negative
	DryMass  float64 // structural mass in kg, constant for the run

	// MainThrottle is the main engine setting in [0,1]. LatX and LatY are
	// the lateral thruster settings in [-1,1], set directly by input with
	// no ramp.
	MainThrottle float64
	LatX, LatY   float64

	// LastTick is the simulated timestamp of the most recent step, used to
	// derive the elapsed time for the next one.
	LastTick time.Duration
}

// NewFlightState builds the initial state for an attempt: mid-field planar
// position, starting height, full tanks, everything else at rest.
func NewFlightState(cfg Config) *FlightState {
	return &FlightState{
		X:        (cfg.FieldMin + cfg.FieldMax) / 2,
		Y:        (cfg.FieldMin + cfg.FieldMax) / 2,
		Z:        cfg.StartHeight,
		FuelMass: cfg.FuelMass,
		DryMass:  cfg.DryMass,
	}
}

// TotalMass returns the current mass of the lander in kg.
func (s *FlightState) TotalMass() float64 {
	return s.DryMass + s.FuelMass
}

// TotalSpeed returns the magnitude of the velocity vector in m/s.
func (s *FlightState) TotalSpeed() float64 {
	return math.Sqrt(s.VX*s.VX + s.VY*s.VY + s.VZ*s.VZ)
}

// Touchdown reports whether the lander has reached the surface.
func (s *FlightState) Touchdown() bool {
	return s.Z <= 0
}
