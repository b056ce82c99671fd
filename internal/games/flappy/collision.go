package flappy

import (
	"github.com/vovakirdan/tui-flappy/internal/config"
)

// Cause names what ended a session.
type Cause int

const (
	CauseNone Cause = iota
	CauseGround
	CauseCeiling
	CauseObstacle
)

// String returns a human-readable name for the cause.
func (c Cause) String() string {
	switch c {
	case CauseNone:
		return "none"
	case CauseGround:
		return "ground"
	case CauseCeiling:
		return "ceiling"
	case CauseObstacle:
		return "obstacle"
	default:
		return "unknown"
	}
}

// Collision is the outcome of one collision check.
type Collision struct {
	Cause Cause
	Index int // Obstacle index for CauseObstacle, -1 otherwise
}

// Hit reports whether the check found a terminal collision.
func (c Collision) Hit() bool {
	return c.Cause != CauseNone
}

var noCollision = Collision{Cause: CauseNone, Index: -1}

// Oracle decides whether the body collides with the world boundaries or an
// obstacle.
type Oracle struct {
	groundY float64
	width   float64
	ceiling config.CeilingPolicy
}

// NewOracle creates an oracle for a validated configuration.
func NewOracle(cfg config.FlappyConfig) Oracle {
	return Oracle{
		groundY: cfg.GroundY(),
		width:   cfg.Obstacles.Width,
		ceiling: cfg.Rules.Ceiling,
	}
}

// Check tests the body against the ground, the ceiling and every obstacle,
// in that order, and returns the first hit.
//
// Check moves the body when a boundary is reached: on the ground the body
// rests on it, and under the clamp policy a body above the ceiling is pushed
// back down with its velocity zeroed.
func (o Oracle) Check(b *Body, obstacles []Obstacle) Collision {
	hb := b.Hitbox()

	// Ground is always terminal
	if hb.Bottom() >= o.groundY {
		b.Y -= hb.Bottom() - o.groundY
		return Collision{Cause: CauseGround, Index: -1}
	}

	if hb.Y < 0 {
		if o.ceiling != config.CeilingClamp {
			return Collision{Cause: CauseCeiling, Index: -1}
		}
		b.Y -= hb.Y
		b.Velocity = 0
		hb = b.Hitbox()
	}

	for i, obs := range obstacles {
		if hb.Intersects(obs.TopRect(o.width)) || hb.Intersects(obs.BottomRect(o.width, o.groundY)) {
			return Collision{Cause: CauseObstacle, Index: i}
		}
	}
	return noCollision
}
