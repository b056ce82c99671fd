package config

import "fmt"

// ConfigurationError reports a configuration that cannot produce a playable
// session. It is returned before any session exists, never mid-game.
type ConfigurationError struct {
	Field  string // YAML path of the offending value, e.g. "obstacles.gap_height"
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("config: invalid %s: %s", e.Field, e.Reason)
}

func invalid(field, format string, args ...any) error {
	return &ConfigurationError{Field: field, Reason: fmt.Sprintf(format, args...)}
}

// Validate checks that the configuration can produce a playable session.
// It returns the first problem found as a *ConfigurationError.
func (c FlappyConfig) Validate() error {
	checks := []func() error{
		c.validateWorld,
		c.validatePhysics,
		c.validateBody,
		c.validateObstacles,
		c.validateRules,
		c.validateGap,
		c.validateSpacing,
		c.validateScoreReach,
	}
	for _, check := range checks {
		if err := check(); err != nil {
			return err
		}
	}
	return nil
}

func (c FlappyConfig) validateWorld() error {
	w := c.World
	if w.Width <= 0 {
		return invalid("world.width", "must be positive, got %v", w.Width)
	}
	if w.Height <= 0 {
		return invalid("world.height", "must be positive, got %v", w.Height)
	}
	if w.GroundHeight < 0 || w.GroundHeight >= w.Height {
		return invalid("world.ground_height", "must be in [0, %v), got %v", w.Height, w.GroundHeight)
	}
	return nil
}

func (c FlappyConfig) validatePhysics() error {
	p := c.Physics
	if p.Gravity < 0 {
		return invalid("physics.gravity", "must not be negative, got %v", p.Gravity)
	}
	if p.FlapImpulse >= 0 {
		return invalid("physics.flap_impulse", "must be negative (upward), got %v", p.FlapImpulse)
	}
	if p.MaxFallSpeed < 0 {
		return invalid("physics.max_fall_speed", "must not be negative, got %v", p.MaxFallSpeed)
	}
	switch p.FlapPolicy {
	case FlapSet:
	case FlapDecrement:
		if p.MaxUpSpeed >= 0 {
			return invalid("physics.max_up_speed", "decrement policy needs a negative upward limit, got %v", p.MaxUpSpeed)
		}
	default:
		return invalid("physics.flap_policy", "unknown policy %q (want %q or %q)", p.FlapPolicy, FlapSet, FlapDecrement)
	}
	return nil
}

func (c FlappyConfig) validateBody() error {
	b := c.Body
	if b.Size <= 0 {
		return invalid("body.size", "must be positive, got %v", b.Size)
	}
	if b.Size >= c.GroundY() {
		return invalid("body.size", "body of size %v does not fit above the ground at %v", b.Size, c.GroundY())
	}
	if b.X <= 0 || b.X >= c.World.Width {
		return invalid("body.x", "must be inside the world (0, %v), got %v", c.World.Width, b.X)
	}
	return nil
}

func (c FlappyConfig) validateObstacles() error {
	o := c.Obstacles
	if o.Width <= 0 {
		return invalid("obstacles.width", "must be positive, got %v", o.Width)
	}
	if o.GapHeight <= 0 {
		return invalid("obstacles.gap_height", "must be positive, got %v", o.GapHeight)
	}
	if o.Speed <= 0 {
		return invalid("obstacles.speed", "must be positive, got %v", o.Speed)
	}
	if o.TopMargin < 0 {
		return invalid("obstacles.top_margin", "must not be negative, got %v", o.TopMargin)
	}
	if o.BottomMargin < 0 {
		return invalid("obstacles.bottom_margin", "must not be negative, got %v", o.BottomMargin)
	}
	switch o.SpawnPolicy {
	case SpawnSpacing:
		if o.Spacing <= 0 {
			return invalid("obstacles.spacing", "must be positive, got %v", o.Spacing)
		}
	case SpawnInterval:
		if o.IntervalFrames <= 0 {
			return invalid("obstacles.interval_frames", "must be positive, got %d", o.IntervalFrames)
		}
	default:
		return invalid("obstacles.spawn_policy", "unknown policy %q (want %q or %q)", o.SpawnPolicy, SpawnSpacing, SpawnInterval)
	}
	return nil
}

func (c FlappyConfig) validateRules() error {
	switch c.Rules.Ceiling {
	case CeilingTerminal, CeilingClamp:
	default:
		return invalid("rules.ceiling", "unknown policy %q (want %q or %q)", c.Rules.Ceiling, CeilingTerminal, CeilingClamp)
	}
	switch c.Rules.ScoreEdge {
	case EdgeLeading, EdgeCenter, EdgeTrailing:
	default:
		return invalid("rules.score_edge", "unknown edge %q (want %q, %q or %q)", c.Rules.ScoreEdge, EdgeLeading, EdgeCenter, EdgeTrailing)
	}
	return nil
}

// validateGap rejects gaps that cannot be placed between the margins.
func (c FlappyConfig) validateGap() error {
	lo, hi := c.GapRange()
	if hi < lo {
		o := c.Obstacles
		return invalid("obstacles.gap_height",
			"gap %v with margins %v+%v exceeds usable height %v",
			o.GapHeight, o.TopMargin, o.BottomMargin, c.GroundY())
	}
	return nil
}

// validateSpacing rejects spawn settings that overlap obstacles or let the
// stream run dry in front of the body.
func (c FlappyConfig) validateSpacing() error {
	field := "obstacles.spacing"
	if c.Obstacles.SpawnPolicy == SpawnInterval {
		field = "obstacles.interval_frames"
	}

	if d := c.SpawnDistance(); d <= c.Obstacles.Width {
		return invalid(field, "obstacles %v apart would overlap (width %v)", d, c.Obstacles.Width)
	}

	// The next obstacle must appear before the newest one is behind the body.
	reach := c.SpawnX() + c.Obstacles.Width - c.Body.X
	if d := c.MaxSpawnDistance(); d > reach {
		return invalid(field, "obstacles up to %v apart leave the body without an obstacle ahead (max %v)", d, reach)
	}
	return nil
}

// validateScoreReach rejects speeds at which an obstacle can be culled before
// its scoring edge is seen past the body. Culling runs before scoring, so
// the last position an obstacle is kept at, somewhere in [-width, -width+speed),
// must already be scoreable.
func (c FlappyConfig) validateScoreReach() error {
	o := c.Obstacles
	limit := c.Body.X - (o.Width - c.ScoreOffset())
	if o.Speed > limit {
		return invalid("obstacles.speed",
			"obstacles moving %v per tick can leave before the %s edge passes the body (max %v)",
			o.Speed, c.Rules.ScoreEdge, limit)
	}
	return nil
}
