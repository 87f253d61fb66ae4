package sim

import "time"

// Simulator advances a FlightState under a fixed Config. It holds no mutable
// state of its own; every method is a plain transformation of the state it
// is handed.
type Simulator struct {
	cfg Config
}

// NewSimulator creates a simulator for the given configuration.
func NewSimulator(cfg Config) *Simulator {
	return &Simulator{cfg: cfg}
}

// Config returns the configuration the simulator was built with.
func (sim *Simulator) Config() Config {
	return sim.cfg
}

// Step advances the state to the simulated timestamp now. The elapsed time
// is derived from the state's own LastTick; a non-monotonic clock sample is
// clamped to zero elapsed time rather than allowed to reverse integration.
//
// Order per step: thrust from throttles (gated on remaining fuel), fuel burn,
// then semi-implicit Euler integration per axis with gravity added as an
// acceleration on z.
func (sim *Simulator) Step(s *FlightState, now time.Duration) {
	dt := (now - s.LastTick).Seconds()
	s.LastTick = now
	if dt < 0 {
		dt = 0
	}

	if s.FuelMass > 0 {
		s.FX = sim.cfg.SubEngineThrust * s.LatX
		s.FY = sim.cfg.SubEngineThrust * s.LatY
		s.FZ = sim.cfg.MainEngineThrust * s.MainThrottle
	} else {
		// Dry tanks disable thrust silently; throttles keep their settings.
		s.FX, s.FY, s.FZ = 0, 0, 0
	}

	// Burn accounting sums signed forces, so opposing lateral thrust
	// under-charges fuel. The floor at zero keeps fuel non-increasing.
	burn := (s.FZ + s.FX + s.FY) * dt / sim.cfg.SpecificImpulse
	if burn > 0 {
		s.FuelMass -= burn
		if s.FuelMass < 0 {
			s.FuelMass = 0
		}
	}

	// DryMass is a positive constant and fuel is clamped at zero, so the
	// divisor is always well-defined.
	m := s.TotalMass()

	s.AX = s.FX / m
	s.VX += s.AX * dt
	s.X += s.VX * dt

	s.AY = s.FY / m
	s.VY += s.AY * dt
	s.Y += s.VY * dt

	s.AZ = s.FZ/m + sim.cfg.Gravity
	s.VZ += s.AZ * dt
	s.Z += s.VZ * dt
}

// BoundsCheck clamps the state back into the playfield. Called once per tick
// after Step. The height ceiling also bleeds off sustained upward velocity so
// the lander cannot park at the top of the field; the planar clamps have no
// velocity side effect. The surface itself is not clamped: z reaching 0 is
// the terminal condition, not a wall.
func (sim *Simulator) BoundsCheck(s *FlightState) {
	if s.Z > sim.cfg.StartHeight {
		s.Z = sim.cfg.StartHeight
		if s.VZ > 2.0 {
			s.VZ = 1.0
		}
	}
	s.X = clampF(s.X, sim.cfg.FieldMin, sim.cfg.FieldMax)
	s.Y = clampF(s.Y, sim.cfg.FieldMin, sim.cfg.FieldMax)
}

func clampF(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
