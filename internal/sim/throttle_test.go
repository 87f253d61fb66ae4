package sim

import (
	"testing"
	"time"
)

func TestThrottleUpConvergesToFull(t *testing.T) {
	cfg := testConfig()
	sim := NewSimulator(cfg)
	s := NewFlightState(cfg)

	for i := 0; i < 200; i++ {
		sim.ThrottleUp(s, 100*time.Millisecond)
		if s.MainThrottle > 1 {
			t.Fatalf("throttle exceeded 1: %v", s.MainThrottle)
		}
	}
	if s.MainThrottle != 1 {
		t.Errorf("throttle = %v, expected to converge to 1", s.MainThrottle)
	}

	// Stays pinned once there.
	sim.ThrottleUp(s, time.Second)
	if s.MainThrottle != 1 {
		t.Errorf("throttle left 1 after further ramping: %v", s.MainThrottle)
	}
}

func TestThrottleDownConvergesToZero(t *testing.T) {
	cfg := testConfig()
	sim := NewSimulator(cfg)
	s := NewFlightState(cfg)
	s.MainThrottle = 1

	for i := 0; i < 200; i++ {
		sim.ThrottleDown(s, 100*time.Millisecond)
		if s.MainThrottle < 0 {
			t.Fatalf("throttle went negative: %v", s.MainThrottle)
		}
	}
	if s.MainThrottle != 0 {
		t.Errorf("throttle = %v, expected to converge to 0", s.MainThrottle)
	}
}

func TestThrottleRampRate(t *testing.T) {
	cfg := testConfig() // ThrottleRate 0.2/s
	sim := NewSimulator(cfg)
	s := NewFlightState(cfg)

	sim.ThrottleUp(s, time.Second)
	if !approxEqual(s.MainThrottle, 0.2, 1e-9) {
		t.Errorf("throttle = %v after 1s, expected 0.2", s.MainThrottle)
	}
	sim.ThrottleDown(s, 500*time.Millisecond)
	if !approxEqual(s.MainThrottle, 0.1, 1e-9) {
		t.Errorf("throttle = %v, expected 0.1", s.MainThrottle)
	}
}

func TestThrottleFloor(t *testing.T) {
	cfg := testConfig()
	cfg.MinThrottle = 0.1
	sim := NewSimulator(cfg)
	s := NewFlightState(cfg)

	// Ramping up from idle snaps straight to the floor.
	sim.ThrottleUp(s, 100*time.Millisecond) // 0.02 raw, below the floor
	if s.MainThrottle != 0.1 {
		t.Errorf("throttle = %v, expected the 0.1 floor", s.MainThrottle)
	}

	// Ramping down through the floor drops straight to zero.
	sim.ThrottleDown(s, 100*time.Millisecond)
	if s.MainThrottle != 0 {
		t.Errorf("throttle = %v, expected 0 below the floor", s.MainThrottle)
	}
}

func TestSetMainThrottle(t *testing.T) {
	cfg := testConfig()
	cfg.MinThrottle = 0.1
	sim := NewSimulator(cfg)

	tests := []struct {
		name string
		in   float64
		want float64
	}{
		{"full burn", 1.0, 1.0},
		{"cutoff", 0.0, 0.0},
		{"above full clips", 1.5, 1.0},
		{"below zero clips", -0.3, 0.0},
		{"inside floor band snaps up", 0.05, 0.1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := NewFlightState(cfg)
			sim.SetMainThrottle(s, tc.in)
			if s.MainThrottle != tc.want {
				t.Errorf("SetMainThrottle(%v) -> %v, expected %v", tc.in, s.MainThrottle, tc.want)
			}
		})
	}
}

func TestSetLateralClips(t *testing.T) {
	cfg := testConfig()
	sim := NewSimulator(cfg)
	s := NewFlightState(cfg)

	sim.SetLateral(s, 2, -3)
	if s.LatX != 1 || s.LatY != -1 {
		t.Errorf("lateral throttles = (%v, %v), expected (1, -1)", s.LatX, s.LatY)
	}
	sim.SetLateral(s, 0, 0.5)
	if s.LatX != 0 || s.LatY != 0.5 {
		t.Errorf("lateral throttles = (%v, %v), expected (0, 0.5)", s.LatX, s.LatY)
	}
}
