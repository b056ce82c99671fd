// Package flappy implements a Flappy Bird-style game.
// The player keeps a falling body airborne by flapping and steers it through
// gaps in a stream of obstacles scrolling in from the right.
//
// The world has its own coordinate system, independent of the terminal: x
// grows to the right, y grows downwards, and the ground sits at
// world height minus ground height. Renderers scale the world to whatever
// surface they draw on.
package flappy

import (
	"math/rand"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/registry"
)

// Game owns the current session and the best score across sessions.
// A Game is not safe for concurrent use; each player gets their own.
type Game struct {
	id      string
	cfg     config.FlappyConfig
	rt      core.RuntimeConfig
	rng     *rand.Rand
	oracle  Oracle
	scorer  Scorer
	session *Session
	best    int
	events  []core.Event
}

// New creates a game for the given variant ID and configuration.
// The configuration is validated before anything else happens.
func New(id string, cfg config.FlappyConfig) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	g := &Game{
		id:     id,
		cfg:    cfg,
		oracle: NewOracle(cfg),
		scorer: NewScorer(cfg),
	}
	g.Reset(core.DefaultConfig())
	return g, nil
}

// MustNew is like New but panics on an invalid configuration.
// Meant for built-in defaults.
func MustNew(id string, cfg config.FlappyConfig) *Game {
	g, err := New(id, cfg)
	if err != nil {
		panic(err)
	}
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return g.id
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return g.cfg.Title
}

// Config returns the configuration the game runs with.
func (g *Game) Config() config.FlappyConfig {
	return g.cfg
}

// Reset seeds the game from rt and waits for the first flap.
// The best score is kept.
func (g *Game) Reset(rt core.RuntimeConfig) {
	g.rt = rt
	g.rng = rand.New(rand.NewSource(rt.Seed))
	g.session = newSession(g.cfg, g.rng, core.PhaseIdle)
}

// Step advances the game by one tick.
//
// Quit wins over everything else in the frame, then restart. In the idle and
// game over phases a flap starts a new session; the first physics tick of
// that session is the next Step.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.events = nil

	if in.Has(core.ActionQuit) {
		return core.StepResult{State: g.State(), Continue: false}
	}

	if in.Has(core.ActionRestart) {
		g.endSession(CauseNone)
		g.start()
		return g.result()
	}

	switch g.session.Phase {
	case core.PhaseIdle, core.PhaseGameOver:
		if in.Has(core.ActionFlap) {
			g.start()
		}
	case core.PhasePlaying:
		g.update(in.Count(core.ActionFlap))
	}
	return g.result()
}

// update runs one physics tick of the playing session.
func (g *Game) update(flaps int) {
	s := g.session
	p := g.cfg.Physics

	for range flaps {
		s.Body.Flap(p)
	}
	if flaps > 0 {
		g.emit(core.EventFlap)
	}

	s.Body.Integrate(p.Gravity, p.MaxFallSpeed)

	s.Stream.Advance()
	s.Stream.Spawn()
	s.Stream.Cull()

	if n := g.scorer.Score(s.Stream.Obstacles(), s.Body.X); n > 0 {
		s.Score += n
		g.emit(core.EventScore)
	}

	s.Tick++

	if c := g.oracle.Check(&s.Body, s.Stream.Obstacles()); c.Hit() {
		g.endSession(c.Cause)
		g.emit(core.EventCrash)
	}
}

// start begins a fresh session with its first obstacle already in place.
func (g *Game) start() {
	g.session = newSession(g.cfg, g.rng, core.PhasePlaying)
	g.session.Stream.Prime()
	g.emit(core.EventStart)
}

// endSession freezes a running session and folds its score into the best.
// Sessions that are not running are left alone.
func (g *Game) endSession(cause Cause) {
	s := g.session
	if s.Phase != core.PhasePlaying {
		return
	}
	s.Phase = core.PhaseGameOver
	s.Cause = cause
	g.best = max(g.best, s.Score)
}

func (g *Game) emit(e core.Event) {
	g.events = append(g.events, e)
}

func (g *Game) result() core.StepResult {
	return core.StepResult{State: g.State(), Events: g.events, Continue: true}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score: g.session.Score,
		Best:  g.best,
		Phase: g.session.Phase,
	}
}

// Session returns the current session. Callers must not modify it.
func (g *Game) Session() *Session {
	return g.session
}

// Register both variants with the registry
func init() {
	for _, variant := range config.Variants() {
		registry.Register(variant, func() registry.Game {
			return MustNew(variant, config.Default(variant))
		})
	}
}
