package flappy

import (
	"errors"
	"reflect"
	"slices"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/registry"
)

func testRuntime(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     seed,
	}
}

func newTestGame(t *testing.T, cfg config.FlappyConfig, seed int64) *Game {
	t.Helper()
	g, err := New(config.VariantClassic, cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	g.Reset(testRuntime(seed))
	return g
}

func input(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

// runUntilOver steps without input until the session ends or limit ticks pass.
func runUntilOver(g *Game, limit int) core.StepResult {
	var res core.StepResult
	for range limit {
		res = g.Step(core.NewInputFrame())
		if res.State.GameOver() {
			break
		}
	}
	return res
}

func TestGameStartsIdle(t *testing.T) {
	g := newTestGame(t, config.DefaultFlappyConfig(), 1)
	before := g.Snapshot()

	for range 30 {
		res := g.Step(core.NewInputFrame())
		if res.State.Phase != core.PhaseIdle {
			t.Fatalf("phase = %v, expected idle", res.State.Phase)
		}
		if len(res.Events) != 0 {
			t.Fatalf("idle frame produced events %v", res.Events)
		}
		if !res.Continue {
			t.Fatal("idle frame asked to stop")
		}
	}
	if !reflect.DeepEqual(before, g.Snapshot()) {
		t.Error("idle frames changed the world")
	}
}

func TestFlapStartsSession(t *testing.T) {
	g := newTestGame(t, config.DefaultFlappyConfig(), 1)

	res := g.Step(input(core.ActionFlap))
	if res.State.Phase != core.PhasePlaying {
		t.Fatalf("phase = %v, expected playing", res.State.Phase)
	}
	if !slices.Equal(res.Events, []core.Event{core.EventStart}) {
		t.Errorf("events = %v, expected [start]", res.Events)
	}

	s := g.Session()
	if s.Body.Velocity != 0 {
		t.Errorf("starting flap applied an impulse: velocity = %v", s.Body.Velocity)
	}
	if s.Tick != 0 {
		t.Errorf("tick = %d, physics should start on the next step", s.Tick)
	}
	if s.Stream.Len() != 1 {
		t.Errorf("expected one seeded obstacle, got %d", s.Stream.Len())
	}

	g.Step(core.NewInputFrame())
	if s.Tick != 1 || s.Body.Velocity != g.Config().Physics.Gravity {
		t.Errorf("first tick: tick=%d velocity=%v", s.Tick, s.Body.Velocity)
	}
}

func TestSessionScenario(t *testing.T) {
	cfg := config.DefaultFlappyConfig()
	cfg.Physics.Gravity = 0.5
	cfg.Physics.FlapImpulse = -10

	g := newTestGame(t, cfg, 1)
	g.Step(input(core.ActionFlap))
	g.Session().Body.Y = 300

	res := g.Step(input(core.ActionFlap))
	b := g.Session().Body
	if b.Velocity != -9.5 || b.Y != 290.5 {
		t.Fatalf("frame 1: velocity=%v y=%v", b.Velocity, b.Y)
	}
	if !slices.Contains(res.Events, core.EventFlap) {
		t.Errorf("events = %v, expected a flap", res.Events)
	}

	g.Step(core.NewInputFrame())
	b = g.Session().Body
	if b.Velocity != -9.0 || b.Y != 281.5 {
		t.Fatalf("frame 2: velocity=%v y=%v", b.Velocity, b.Y)
	}
}

func TestMultipleFlapsInOneFrame(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.FlappyConfig
		want float64
	}{
		{"set", config.DefaultFlappyConfig(), -8 + 0.5},
		{"decrement", config.DefaultGlideConfig(), -6 + 0.25},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := newTestGame(t, tc.cfg, 1)
			g.Step(input(core.ActionFlap))

			in := input(core.ActionFlap, core.ActionFlap, core.ActionFlap)
			res := g.Step(in)
			if got := g.Session().Body.Velocity; got != tc.want {
				t.Errorf("velocity = %v, expected %v", got, tc.want)
			}
			flaps := 0
			for _, e := range res.Events {
				if e == core.EventFlap {
					flaps++
				}
			}
			if flaps != 1 {
				t.Errorf("expected one flap event, got %d", flaps)
			}
		})
	}
}

func TestCrashEndsSession(t *testing.T) {
	g := newTestGame(t, config.DefaultFlappyConfig(), 3)
	g.Step(input(core.ActionFlap))

	var crashed bool
	for range 200 {
		res := g.Step(core.NewInputFrame())
		if slices.Contains(res.Events, core.EventCrash) {
			crashed = true
			break
		}
	}
	if !crashed {
		t.Fatal("falling body never crashed")
	}

	s := g.Session()
	if s.Phase != core.PhaseGameOver || s.Cause != CauseGround {
		t.Fatalf("phase=%v cause=%v, expected game over on the ground", s.Phase, s.Cause)
	}

	// Frozen until the next flap
	before := g.Snapshot()
	for range 10 {
		res := g.Step(core.NewInputFrame())
		if len(res.Events) != 0 {
			t.Fatalf("game over frame produced events %v", res.Events)
		}
	}
	if !reflect.DeepEqual(before, g.Snapshot()) {
		t.Error("game over frames changed the world")
	}

	res := g.Step(input(core.ActionFlap))
	if res.State.Phase != core.PhasePlaying || res.State.Score != 0 {
		t.Errorf("flap after game over: %+v", res.State)
	}
}

func TestQuit(t *testing.T) {
	g := newTestGame(t, config.DefaultFlappyConfig(), 1)
	for _, phase := range []string{"idle", "playing"} {
		if phase == "playing" {
			g.Step(input(core.ActionFlap))
		}
		res := g.Step(input(core.ActionQuit, core.ActionFlap))
		if res.Continue {
			t.Errorf("%s: quit did not stop the game", phase)
		}
	}
}

func TestRestartFoldsScore(t *testing.T) {
	g := newTestGame(t, config.DefaultFlappyConfig(), 1)
	g.Step(input(core.ActionFlap))
	g.Session().Score = 4

	res := g.Step(input(core.ActionRestart))
	if res.State.Best != 4 {
		t.Errorf("best = %d, expected 4", res.State.Best)
	}
	if res.State.Score != 0 || res.State.Phase != core.PhasePlaying {
		t.Errorf("restart should begin a fresh session, got %+v", res.State)
	}

	// A worse session never lowers the best
	g.Session().Score = 2
	res = g.Step(input(core.ActionRestart))
	if res.State.Best != 4 {
		t.Errorf("best = %d after a worse session, expected 4", res.State.Best)
	}
}

func TestResetKeepsBest(t *testing.T) {
	g := newTestGame(t, config.DefaultFlappyConfig(), 1)
	g.Step(input(core.ActionFlap))
	g.Session().Score = 7
	g.Step(input(core.ActionRestart))

	g.Reset(testRuntime(2))
	if st := g.State(); st.Best != 7 || st.Phase != core.PhaseIdle || st.Score != 0 {
		t.Errorf("after reset: %+v", st)
	}
}

func TestGameDeterminism(t *testing.T) {
	// Same seed and inputs must produce identical frames
	inputs := make([]core.InputFrame, 600)
	for i := range inputs {
		inputs[i] = core.NewInputFrame()
		if i%17 == 0 {
			inputs[i].Set(core.ActionFlap)
		}
	}

	for _, variant := range config.Variants() {
		t.Run(variant, func(t *testing.T) {
			g1 := newTestGame(t, config.Default(variant), 12345)
			g2 := newTestGame(t, config.Default(variant), 12345)

			for i, in := range inputs {
				r1, r2 := g1.Step(in), g2.Step(in)
				if !reflect.DeepEqual(r1, r2) {
					t.Fatalf("tick %d: results differ: %+v vs %+v", i, r1, r2)
				}
				if !reflect.DeepEqual(g1.Snapshot(), g2.Snapshot()) {
					t.Fatalf("tick %d: snapshots differ", i)
				}
			}
		})
	}
}

func TestSeedsDiffer(t *testing.T) {
	g1 := newTestGame(t, config.DefaultFlappyConfig(), 1)
	g2 := newTestGame(t, config.DefaultFlappyConfig(), 2)
	differ := false
	for range 20 {
		g1.Step(input(core.ActionRestart))
		g2.Step(input(core.ActionRestart))
		if g1.Session().Stream.Obstacles()[0].GapY != g2.Session().Stream.Obstacles()[0].GapY {
			differ = true
			break
		}
	}
	if !differ {
		t.Error("different seeds produced identical obstacle streams")
	}
}

func TestInvariantsUnderAutopilot(t *testing.T) {
	for _, variant := range config.Variants() {
		t.Run(variant, func(t *testing.T) {
			cfg := config.Default(variant)
			g := newTestGame(t, cfg, 7)
			pilot := DefaultAutopilot()
			bestSeen := 0

			for tick := range 5000 {
				snap := g.Snapshot()
				res := g.Step(pilot.Decide(snap))

				if res.State.Best < bestSeen {
					t.Fatalf("tick %d: best decreased from %d to %d", tick, bestSeen, res.State.Best)
				}
				bestSeen = res.State.Best
				if res.State.Phase == core.PhaseGameOver && res.State.Score > res.State.Best {
					t.Fatalf("tick %d: ended session scored %d above best %d", tick, res.State.Score, res.State.Best)
				}

				s := g.Session()
				if s.Phase == core.PhasePlaying && s.Stream.Len() == 0 {
					t.Fatalf("tick %d: no obstacles during play", tick)
				}
				if s.Phase == core.PhasePlaying {
					ahead := false
					for _, o := range s.Stream.Obstacles() {
						if o.X+cfg.Obstacles.Width > s.Body.X {
							ahead = true
						}
					}
					if !ahead {
						t.Fatalf("tick %d: no obstacle ahead of the body", tick)
					}
				}
				passed := 0
				for _, o := range s.Stream.Obstacles() {
					if o.Passed {
						passed++
					}
				}
				if passed > s.Score {
					t.Fatalf("tick %d: %d live passed obstacles but score %d", tick, passed, s.Score)
				}
			}
		})
	}
}

func TestAutopilotScores(t *testing.T) {
	g := newTestGame(t, config.DefaultFlappyConfig(), 7)
	pilot := DefaultAutopilot()

	for range 1000 {
		g.Step(pilot.Decide(g.Snapshot()))
	}
	if st := g.State(); max(st.Score, st.Best) < 3 {
		t.Errorf("autopilot scored %d (best %d), expected at least 3", st.Score, st.Best)
	}
}

func TestFastStreamScoresEveryObstacle(t *testing.T) {
	cfg := config.DefaultFlappyConfig()
	cfg.Physics.Gravity = 0
	cfg.Obstacles.Speed = cfg.Body.X // Fastest speed the trailing edge allows
	g := newTestGame(t, cfg, 3)
	g.Step(input(core.ActionFlap))

	spawnX := cfg.SpawnX()
	unpassed := func() int {
		n := 0
		for _, o := range g.Session().Stream.Obstacles() {
			if !o.Passed {
				n++
			}
		}
		return n
	}

	for range 200 {
		before, score := unpassed(), g.Session().Score
		res := g.Step(core.NewInputFrame())
		if res.State.GameOver() {
			t.Fatalf("tick %d: unexpected crash (%v)", g.Session().Tick, g.Session().Cause)
		}

		spawned := 0
		for _, o := range g.Session().Stream.Obstacles() {
			if o.X == spawnX {
				spawned++
			}
		}
		scored := g.Session().Score - score
		if lost := before + spawned - scored - unpassed(); lost != 0 {
			t.Fatalf("tick %d: %d obstacles removed without scoring", g.Session().Tick, lost)
		}
	}
	if g.Session().Score == 0 {
		t.Error("no obstacle scored")
	}
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	cfg := config.DefaultFlappyConfig()
	cfg.Obstacles.GapHeight = 1000

	_, err := New(config.VariantClassic, cfg)
	var cfgErr *config.ConfigurationError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("expected *config.ConfigurationError, got %v", err)
	}
}

func TestRegistered(t *testing.T) {
	for _, variant := range config.Variants() {
		if !registry.Exists(variant) {
			t.Fatalf("%s not registered", variant)
		}
		g, err := registry.Create(variant)
		if err != nil {
			t.Fatal(err)
		}
		if g.ID() != variant || g.Title() != config.Default(variant).Title {
			t.Errorf("registered %s as %q %q", variant, g.ID(), g.Title())
		}
	}
}

func TestRender(t *testing.T) {
	g := newTestGame(t, config.DefaultFlappyConfig(), 1)
	screen := core.NewScreen(80, 24)

	g.Render(screen)
	if out := screen.String(); !strings.Contains(out, g.Title()) {
		t.Errorf("idle screen misses the title:\n%s", out)
	}

	g.Step(input(core.ActionFlap))
	g.Render(screen)
	out := screen.String()
	if !strings.ContainsAny(out, string([]rune{SquareChar, CircleChar, TriangleChar})) {
		t.Errorf("body not drawn:\n%s", out)
	}
	if !strings.Contains(out, "Score: 0") {
		t.Errorf("HUD missing:\n%s", out)
	}
	if screen.GetCell(0, 23).Bg != g.Session().Ground {
		t.Error("ground not drawn on the last row")
	}

	runUntilOver(g, 500)
	g.Render(screen)
	if out := screen.String(); !strings.Contains(out, "GAME OVER") {
		t.Errorf("game over screen misses the banner:\n%s", out)
	}
}

func TestRenderAnySize(t *testing.T) {
	g := newTestGame(t, config.DefaultGlideConfig(), 1)
	g.Step(input(core.ActionFlap))
	state := g.State()
	tick := g.Session().Tick

	for _, size := range [][2]int{{0, 0}, {1, 1}, {10, 5}, {80, 24}, {300, 90}} {
		screen := core.NewScreen(size[0], size[1])
		g.Render(screen)
	}
	if g.State() != state || g.Session().Tick != tick {
		t.Error("rendering changed the game")
	}
}
