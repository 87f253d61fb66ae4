package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadEmbeddedDefault(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Physics.Gravity != -1.625 {
		t.Errorf("Gravity = %v, expected -1.625", cfg.Physics.Gravity)
	}
	if cfg.Physics.MainEngineThrust != 45000 {
		t.Errorf("MainEngineThrust = %v, expected 45000", cfg.Physics.MainEngineThrust)
	}
	if cfg.Landing.SafeVelocity != 3.0 {
		t.Errorf("SafeVelocity = %v, expected 3.0", cfg.Landing.SafeVelocity)
	}
	if !cfg.World.Pad.Enabled {
		t.Error("default config should enable the landing pad")
	}
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	data := []byte(`
physics:
  gravity: -3.7
  main_engine_thrust: 60000
  sub_engine_thrust: 5000
  specific_impulse: 2500
  dry_mass: 1500
  fuel_mass: 8000
control:
  throttle_rate: 0.5
world:
  start_height: 300
  field_min: 0
  field_max: 1000
landing:
  safe_velocity: 2.0
`)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Physics.Gravity != -3.7 {
		t.Errorf("Gravity = %v, expected -3.7", cfg.Physics.Gravity)
	}
	if cfg.Control.ThrottleRate != 0.5 {
		t.Errorf("ThrottleRate = %v, expected 0.5", cfg.Control.ThrottleRate)
	}
	if cfg.World.Pad.Enabled {
		t.Error("pad should be disabled when omitted")
	}
}

func TestLoadMissingCustomPath(t *testing.T) {
	if _, err := Load("/nonexistent/lander.yaml"); err == nil {
		t.Error("expected an error for a missing custom config path")
	}
}

func TestApplyPreset(t *testing.T) {
	tests := []struct {
		name     string
		preset   DifficultyPreset
		wantFuel float64
		wantSafe float64
	}{
		{"easy", DifficultyEasy, 15000, 4.0},
		{"normal", DifficultyNormal, 10000, 3.0},
		{"hard", DifficultyHard, 6000, 2.0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultLanderConfig()
			ApplyPreset(&cfg, tc.preset)
			if cfg.Physics.FuelMass != tc.wantFuel {
				t.Errorf("FuelMass = %v, expected %v", cfg.Physics.FuelMass, tc.wantFuel)
			}
			if cfg.Landing.SafeVelocity != tc.wantSafe {
				t.Errorf("SafeVelocity = %v, expected %v", cfg.Landing.SafeVelocity, tc.wantSafe)
			}
		})
	}
}

func TestSimConfigConversion(t *testing.T) {
	cfg := DefaultLanderConfig()
	sc := cfg.SimConfig()

	if sc.Gravity != cfg.Physics.Gravity {
		t.Errorf("Gravity not carried over: %v", sc.Gravity)
	}
	if sc.FuelMass != cfg.Physics.FuelMass || sc.DryMass != cfg.Physics.DryMass {
		t.Error("masses not carried over")
	}
	if !sc.HasPad || sc.PadX != cfg.World.Pad.X {
		t.Error("pad not carried over")
	}
	if sc.FieldMin != 50 || sc.FieldMax != 4950 {
		t.Errorf("field bounds = [%v, %v], expected [50, 4950]", sc.FieldMin, sc.FieldMax)
	}
}
