package sim

import "math"

// Outcome is the classification of a finished attempt. It is a pure function
// of the final state and the safe-landing threshold.
type Outcome struct {
	Landed         bool
	TouchdownSpeed float64 // total speed at the surface, m/s
	PadDistance    float64 // planar distance to the landing pad, m
	FuelRemaining  float64 // propellant left in the tanks, kg
}

// Evaluate classifies the attempt once the lander has reached the surface.
// The state is not mutated. PadDistance is zero when no pad is configured.
func (sim *Simulator) Evaluate(s *FlightState) Outcome {
	out := Outcome{
		TouchdownSpeed: s.TotalSpeed(),
		FuelRemaining:  s.FuelMass,
	}
	out.Landed = out.TouchdownSpeed <= sim.cfg.SafeLandingVelocity
	if sim.cfg.HasPad {
		dx := s.X - sim.cfg.PadX
		dy := s.Y - sim.cfg.PadY
		out.PadDistance = math.Sqrt(dx*dx + dy*dy)
	}
	return out
}
