// Package game wires the descent simulation into the platform's tick loop:
// it maps input actions onto the throttles, advances a simulated clock, runs
// the per-tick step/bounds sequence, records flight history, and renders the
// playfield and HUD.
package game

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-lander/internal/config"
	"github.com/vovakirdan/tui-lander/internal/core"
	"github.com/vovakirdan/tui-lander/internal/history"
	"github.com/vovakirdan/tui-lander/internal/sim"
)

// star is a fixed backdrop point in world coordinates.
type star struct {
	x, z float64
}

// Game implements the lander descent game logic.
type Game struct {
	landerCfg config.LanderConfig
	simCfg    sim.Config
	simulator *sim.Simulator
	flight    *sim.FlightState
	recorder  *history.Recorder

	config core.RuntimeConfig
	tickDT time.Duration
	clock  time.Duration // simulated time since launch

	outcome sim.Outcome
	done    bool
	paused  bool
	score   int

	stars []star
}

// New creates a game for the given lander configuration.
func New(cfg config.LanderConfig) *Game {
	return &Game{
		landerCfg: cfg,
		recorder:  history.NewRecorder(),
	}
}

// ID returns the identifier used for CLI commands and the flight log.
func (g *Game) ID() string {
	return "lander"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Lunar Lander"
}

// Reset initializes or restarts the attempt with a fresh flight state.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.config = cfg
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
		g.config = cfg
	}
	g.tickDT = time.Second / time.Duration(cfg.TickRate)

	g.simCfg = g.landerCfg.SimConfig()
	g.simulator = sim.NewSimulator(g.simCfg)
	g.flight = sim.NewFlightState(g.simCfg)
	g.recorder.Reset()
	g.clock = 0
	g.outcome = sim.Outcome{}
	g.done = false
	g.paused = false
	g.score = 0

	g.scatterStars(cfg.Seed)
}

// scatterStars places the backdrop starfield in world coordinates.
func (g *Game) scatterStars(seed int64) {
	rng := rand.New(rand.NewSource(seed))
	g.stars = make([]star, 140)
	span := g.simCfg.FieldMax - g.simCfg.FieldMin
	for i := range g.stars {
		g.stars[i] = star{
			x: g.simCfg.FieldMin + rng.Float64()*span,
			z: 5 + rng.Float64()*g.simCfg.StartHeight*1.2,
		}
	}
}

// Step advances the game by one tick. Control updates and the physics step
// share the same clock sample, so the elapsed time used by the throttle ramp
// is exactly the time integrated by the simulator.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.done {
		return core.StepResult{State: g.State()}
	}

	// The pause toggle consumes its tick so unpausing never advances the
	// simulation on the same frame as the keypress.
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
		return core.StepResult{State: g.State()}
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.clock += g.tickDT

	// Main engine: direct-set shortcuts win over the ramp.
	switch {
	case in.Has(core.ActionFullBurn):
		g.simulator.SetMainThrottle(g.flight, 1)
	case in.Has(core.ActionCutoff):
		g.simulator.SetMainThrottle(g.flight, 0)
	case in.Has(core.ActionThrottleUp):
		g.simulator.ThrottleUp(g.flight, g.tickDT)
	case in.Has(core.ActionThrottleDown):
		g.simulator.ThrottleDown(g.flight, g.tickDT)
	}

	// Lateral thrusters have full authority and are re-set every tick.
	var latX, latY float64
	if in.Has(core.ActionEast) {
		latX += 1
	}
	if in.Has(core.ActionWest) {
		latX -= 1
	}
	if in.Has(core.ActionNorth) {
		latY += 1
	}
	if in.Has(core.ActionSouth) {
		latY -= 1
	}
	g.simulator.SetLateral(g.flight, latX, latY)

	g.simulator.Step(g.flight, g.clock)
	g.simulator.BoundsCheck(g.flight)
	g.recorder.Append(g.clock, g.flight.Z, g.flight.TotalSpeed())

	if g.flight.Touchdown() {
		g.outcome = g.simulator.Evaluate(g.flight)
		g.done = true
		g.score = flightScore(g.outcome)
	}

	return core.StepResult{State: g.State()}
}

// flightScore turns an outcome into a flight-log score. Crashes score zero;
// landings reward remaining propellant and pad proximity.
func flightScore(out sim.Outcome) int {
	if !out.Landed {
		return 0
	}
	score := int(out.FuelRemaining)
	bonus := 1000 - int(out.PadDistance)
	if bonus > 0 {
		score += bonus
	}
	return score
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.done,
		Landed:   g.done && g.outcome.Landed,
		Paused:   g.paused,
	}
}

// Outcome returns the touchdown evaluation. Valid only after the attempt
// ended, as reported by the second return value.
func (g *Game) Outcome() (sim.Outcome, bool) {
	return g.outcome, g.done
}

// Flight exposes the state for read-only consumers (renderer, HUD).
func (g *Game) Flight() *sim.FlightState {
	return g.flight
}

// Elapsed returns the simulated time since launch.
func (g *Game) Elapsed() time.Duration {
	return g.clock
}

// History returns the recorded (time, altitude, speed) samples.
func (g *Game) History() []history.Sample {
	return g.recorder.Samples()
}
