// Package config provides YAML-based game configuration loading and
// validation for the flappy game.
package config

// FlappyConfig contains all configuration for one Flappy variant.
// Every value is fixed when a session is constructed.
type FlappyConfig struct {
	Title     string          `yaml:"title"`
	World     FlappyWorld     `yaml:"world"`
	Physics   FlappyPhysics   `yaml:"physics"`
	Body      FlappyBody      `yaml:"body"`
	Obstacles FlappyObstacles `yaml:"obstacles"`
	Rules     FlappyRules     `yaml:"rules"`
}

// FlappyWorld defines the playfield in world units. Y grows downwards.
type FlappyWorld struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	GroundHeight float64 `yaml:"ground_height"`
}

// FlappyPhysics defines physics parameters, all expressed per tick.
type FlappyPhysics struct {
	Gravity      float64    `yaml:"gravity"`
	FlapImpulse  float64    `yaml:"flap_impulse"` // Negative = up
	FlapPolicy   FlapPolicy `yaml:"flap_policy"`
	MaxUpSpeed   float64    `yaml:"max_up_speed"`   // Upward speed limit for "decrement" (negative)
	MaxFallSpeed float64    `yaml:"max_fall_speed"` // 0 = unlimited
}

// FlappyBody defines the controlled body.
type FlappyBody struct {
	X            float64 `yaml:"x"`
	Size         float64 `yaml:"size"`
	ShrinkHitbox bool    `yaml:"shrink_hitbox"` // Smaller hitbox for circle/triangle
}

// FlappyObstacles defines obstacle parameters.
type FlappyObstacles struct {
	Width          float64     `yaml:"width"`
	GapHeight      float64     `yaml:"gap_height"`
	Speed          float64     `yaml:"speed"`
	SpawnPolicy    SpawnPolicy `yaml:"spawn_policy"`
	Spacing        float64     `yaml:"spacing"`         // Used by "spacing"
	IntervalFrames int         `yaml:"interval_frames"` // Used by "interval"
	TopMargin      float64     `yaml:"top_margin"`
	BottomMargin   float64     `yaml:"bottom_margin"`
}

// FlappyRules selects the behavioral forks of the game.
type FlappyRules struct {
	Ceiling   CeilingPolicy `yaml:"ceiling"`
	ScoreEdge ScoreEdge     `yaml:"score_edge"`
}

// FlapPolicy decides how a flap changes the body's velocity.
type FlapPolicy string

const (
	FlapSet       FlapPolicy = "set"       // velocity = impulse
	FlapDecrement FlapPolicy = "decrement" // velocity += impulse, bounded by max_up_speed
)

// SpawnPolicy decides when the obstacle stream produces a new obstacle.
type SpawnPolicy string

const (
	SpawnSpacing  SpawnPolicy = "spacing"  // Newest obstacle is far enough from the spawn edge
	SpawnInterval SpawnPolicy = "interval" // A fixed number of ticks has elapsed
)

// CeilingPolicy decides what touching the top of the world does.
type CeilingPolicy string

const (
	CeilingTerminal CeilingPolicy = "terminal" // Ends the session like the ground
	CeilingClamp    CeilingPolicy = "clamp"    // Stops the body at the top and keeps playing
)

// ScoreEdge selects which obstacle edge must pass the body to score.
type ScoreEdge string

const (
	EdgeLeading  ScoreEdge = "leading"
	EdgeCenter   ScoreEdge = "center"
	EdgeTrailing ScoreEdge = "trailing"
)

// GroundY returns the y-coordinate of the ground surface.
func (c FlappyConfig) GroundY() float64 {
	return c.World.Height - c.World.GroundHeight
}

// SpawnX returns the x-coordinate at which new obstacles appear.
func (c FlappyConfig) SpawnX() float64 {
	return c.World.Width
}

// GapRange returns the feasible range for an obstacle's gap start.
func (c FlappyConfig) GapRange() (lo, hi float64) {
	o := c.Obstacles
	return o.TopMargin, c.GroundY() - o.GapHeight - o.BottomMargin
}

// SpawnDistance returns the smallest horizontal distance between two
// consecutively spawned obstacles.
func (c FlappyConfig) SpawnDistance() float64 {
	if c.Obstacles.SpawnPolicy == SpawnInterval {
		return float64(c.Obstacles.IntervalFrames) * c.Obstacles.Speed
	}
	return c.Obstacles.Spacing
}

// ScoreOffset returns the distance from an obstacle's left edge to the edge
// the body has to pass to score it.
func (c FlappyConfig) ScoreOffset() float64 {
	switch c.Rules.ScoreEdge {
	case EdgeLeading:
		return 0
	case EdgeCenter:
		return c.Obstacles.Width / 2
	default:
		return c.Obstacles.Width
	}
}

// MaxSpawnDistance returns the largest horizontal distance between two
// consecutively spawned obstacles. The spacing policy can overshoot by
// less than one tick of movement.
func (c FlappyConfig) MaxSpawnDistance() float64 {
	if c.Obstacles.SpawnPolicy == SpawnInterval {
		return c.SpawnDistance()
	}
	return c.Obstacles.Spacing + c.Obstacles.Speed
}
