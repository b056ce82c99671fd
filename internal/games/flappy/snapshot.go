package flappy

import (
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// BodyView is the renderable state of the body.
type BodyView struct {
	Geometry Geometry
	Hitbox   core.Rect
	Color    core.Color
	Velocity float64
}

// ObstacleView is the renderable state of one obstacle.
type ObstacleView struct {
	Top    core.Rect
	Bottom core.Rect
	Color  core.Color
	Passed bool
}

// Snapshot is a read-only copy of everything a renderer or an autopilot
// needs. It shares no memory with the game.
type Snapshot struct {
	Tick       int
	Phase      core.Phase
	Score      int
	Best       int
	Cause      Cause
	World      core.Rect // Whole world, ground included
	GroundY    float64
	Body       BodyView
	Obstacles  []ObstacleView // Oldest first
	Background core.Color
	Ground     core.Color
}

// Snapshot captures the current frame.
func (g *Game) Snapshot() Snapshot {
	s := g.session
	w := g.cfg.World

	snap := Snapshot{
		Tick:    s.Tick,
		Phase:   s.Phase,
		Score:   s.Score,
		Best:    g.best,
		Cause:   s.Cause,
		World:   core.NewRect(0, 0, w.Width, w.Height),
		GroundY: g.cfg.GroundY(),
		Body: BodyView{
			Geometry: s.Body.Geometry(),
			Hitbox:   s.Body.Hitbox(),
			Color:    s.Body.Color,
			Velocity: s.Body.Velocity,
		},
		Obstacles:  make([]ObstacleView, 0, s.Stream.Len()),
		Background: s.Background,
		Ground:     s.Ground,
	}

	width, groundY := s.Stream.Width(), s.Stream.GroundY()
	for _, o := range s.Stream.Obstacles() {
		snap.Obstacles = append(snap.Obstacles, ObstacleView{
			Top:    o.TopRect(width),
			Bottom: o.BottomRect(width, groundY),
			Color:  o.Color,
			Passed: o.Passed,
		})
	}
	return snap
}
