package flappy

import (
	"math/rand"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Obstacle colors, one drawn per obstacle.
var obstaclePalette = []core.Color{core.ColorDarkGreen, core.ColorLightBrn, core.ColorDarkGray}

// Obstacle is a pair of segments sharing one gap. The top segment runs from
// the top of the world to GapY, the bottom one from the gap's end to the
// ground.
type Obstacle struct {
	X         float64    // Horizontal position (left edge)
	GapY      float64    // Y position where gap starts (top of gap)
	GapHeight float64    // Height of the passable gap
	Color     core.Color // Paint color
	Passed    bool       // Whether the body has passed this obstacle (for scoring)
}

// TopRect returns the collision rectangle for the top segment.
func (o Obstacle) TopRect(width float64) core.Rect {
	return core.NewRect(o.X, 0, width, o.GapY)
}

// BottomRect returns the collision rectangle for the bottom segment.
func (o Obstacle) BottomRect(width, groundY float64) core.Rect {
	bottomY := o.GapY + o.GapHeight
	return core.NewRect(o.X, bottomY, width, groundY-bottomY)
}

// Stream spawns, moves and removes obstacles. Obstacles are kept in spawn
// order, so the oldest (leftmost) comes first and the newest last.
type Stream struct {
	obstacles  []Obstacle
	cfg        config.FlappyObstacles
	rng        *rand.Rand
	spawnX     float64
	groundY    float64
	gapLo      float64
	gapHi      float64
	sinceSpawn int // Ticks since the last spawn
}

// NewStream creates an empty obstacle stream for a validated configuration.
func NewStream(cfg config.FlappyConfig, rng *rand.Rand) *Stream {
	lo, hi := cfg.GapRange()
	return &Stream{
		obstacles: make([]Obstacle, 0, 8),
		cfg:       cfg.Obstacles,
		rng:       rng,
		spawnX:    cfg.SpawnX(),
		groundY:   cfg.GroundY(),
		gapLo:     lo,
		gapHi:     hi,
	}
}

// Width returns the horizontal size of every obstacle.
func (s *Stream) Width() float64 {
	return s.cfg.Width
}

// GroundY returns the y-coordinate where bottom segments end.
func (s *Stream) GroundY() float64 {
	return s.groundY
}

// Obstacles returns the live obstacles, oldest first. The slice aliases the
// stream's storage and is only valid until the next Spawn or Cull.
func (s *Stream) Obstacles() []Obstacle {
	return s.obstacles
}

// Len returns the number of live obstacles.
func (s *Stream) Len() int {
	return len(s.obstacles)
}

// Advance moves every obstacle left by the configured speed.
func (s *Stream) Advance() {
	for i := range s.obstacles {
		s.obstacles[i].X -= s.cfg.Speed
	}
}

// Prime spawns the first obstacle of a session if the stream is empty.
func (s *Stream) Prime() {
	if len(s.obstacles) == 0 {
		s.spawn()
	}
}

// Spawn runs the spawn policy for one tick and reports whether a new
// obstacle was added.
func (s *Stream) Spawn() bool {
	s.sinceSpawn++
	if !s.due() {
		return false
	}
	s.spawn()
	return true
}

// due reports whether the spawn policy fires now.
func (s *Stream) due() bool {
	if len(s.obstacles) == 0 {
		return true
	}
	switch s.cfg.SpawnPolicy {
	case config.SpawnInterval:
		return s.sinceSpawn >= s.cfg.IntervalFrames
	default:
		newest := s.obstacles[len(s.obstacles)-1]
		return newest.X <= s.spawnX-s.cfg.Spacing
	}
}

// spawn appends a new obstacle at the spawn edge with a random gap.
func (s *Stream) spawn() {
	gapY := s.gapLo
	if s.gapHi > s.gapLo {
		gapY += s.rng.Float64() * (s.gapHi - s.gapLo)
	}

	s.obstacles = append(s.obstacles, Obstacle{
		X:         s.spawnX,
		GapY:      gapY,
		GapHeight: s.cfg.GapHeight,
		Color:     core.PickColor(s.rng, obstaclePalette),
	})
	s.sinceSpawn = 0
}

// Cull removes obstacles whose right edge is past the left boundary and
// returns how many were removed. Remaining obstacles keep their order.
func (s *Stream) Cull() int {
	kept := s.obstacles[:0]
	for _, o := range s.obstacles {
		if o.X+s.cfg.Width >= 0 {
			kept = append(kept, o)
		}
	}
	removed := len(s.obstacles) - len(kept)
	clear(s.obstacles[len(kept):])
	s.obstacles = kept
	return removed
}
