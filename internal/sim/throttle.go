package sim

import "time"

// ThrottleUp ramps the main throttle toward full over the elapsed control
// interval. When a low-throttle floor is configured the setting snaps up to
// the floor instead of idling in the unusable band just above zero.
func (sim *Simulator) ThrottleUp(s *FlightState, dt time.Duration) {
	s.MainThrottle += dt.Seconds() * sim.cfg.ThrottleRate
	if s.MainThrottle > 1 {
		s.MainThrottle = 1
	}
	if sim.cfg.MinThrottle > 0 && s.MainThrottle < sim.cfg.MinThrottle {
		s.MainThrottle = sim.cfg.MinThrottle
	}
}

// ThrottleDown ramps the main throttle toward idle. Below the configured
// floor the engine drops straight to zero rather than resting at a setting
// too low to be useful.
func (sim *Simulator) ThrottleDown(s *FlightState, dt time.Duration) {
	s.MainThrottle -= dt.Seconds() * sim.cfg.ThrottleRate
	if sim.cfg.MinThrottle > 0 && s.MainThrottle < sim.cfg.MinThrottle {
		s.MainThrottle = 0
	}
	if s.MainThrottle < 0 {
		s.MainThrottle = 0
	}
}

// SetMainThrottle sets the main throttle directly, bypassing the ramp. Used
// by the full-burn and cutoff shortcuts. The value is clipped to [0,1]; a
// positive setting below the configured floor snaps up to the floor.
func (sim *Simulator) SetMainThrottle(s *FlightState, v float64) {
	v = clampF(v, 0, 1)
	if v > 0 && sim.cfg.MinThrottle > 0 && v < sim.cfg.MinThrottle {
		v = sim.cfg.MinThrottle
	}
	s.MainThrottle = v
}

// SetLateral sets both lateral throttles directly. Lateral thrusters have
// full authority with no ramp; values are clipped to [-1,1].
func (sim *Simulator) SetLateral(s *FlightState, x, y float64) {
	s.LatX = clampF(x, -1, 1)
	s.LatY = clampF(y, -1, 1)
}
