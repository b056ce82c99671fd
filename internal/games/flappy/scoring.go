package flappy

import (
	"github.com/vovakirdan/tui-flappy/internal/config"
)

// Scorer awards a point once per obstacle when the body crosses the
// configured edge of it.
type Scorer struct {
	offset float64
}

// NewScorer creates a scorer for a validated configuration.
func NewScorer(cfg config.FlappyConfig) Scorer {
	return Scorer{offset: cfg.ScoreOffset()}
}

// Threshold returns the x-coordinate the body has to pass to score o.
func (s Scorer) Threshold(o Obstacle) float64 {
	return o.X + s.offset
}

// Score marks every obstacle the body at bodyX has newly passed and returns
// how many there were. Passed obstacles never score again.
func (s Scorer) Score(obstacles []Obstacle, bodyX float64) int {
	n := 0
	for i := range obstacles {
		if obstacles[i].Passed || s.Threshold(obstacles[i]) >= bodyX {
			continue
		}
		obstacles[i].Passed = true
		n++
	}
	return n
}
