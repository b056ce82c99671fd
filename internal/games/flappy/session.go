package flappy

import (
	"math/rand"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Session cosmetics.
var (
	groundPalette = []core.Color{core.ColorDarkBrown, core.ColorYellow}
)

// Session is one attempt, from the first flap to the collision that ends it.
// It owns the body, the obstacles and the running score.
type Session struct {
	Body       Body
	Stream     *Stream
	Score      int
	Phase      core.Phase
	Tick       int   // Ticks simulated while playing
	Cause      Cause // What ended the session, CauseNone while running
	Background core.Color
	Ground     core.Color
}

// newSession creates a session with a fresh body halfway between the top of
// the world and the ground, and cosmetics drawn from rng.
func newSession(cfg config.FlappyConfig, rng *rand.Rand, phase core.Phase) *Session {
	s := &Session{
		Body: Body{
			X:      cfg.Body.X,
			Y:      cfg.GroundY() / 2,
			Size:   cfg.Body.Size,
			Shape:  randomShape(rng),
			Color:  core.RandomColor(rng, 0, 100),
			Shrink: cfg.Body.ShrinkHitbox,
		},
		Stream: NewStream(cfg, rng),
		Phase:  phase,
	}

	s.Background = core.ColorLightBlue
	if rng.Intn(2) == 1 {
		s.Background = core.RandomColor(rng, 180, 240)
	}
	s.Ground = core.PickColor(rng, groundPalette)
	return s
}
