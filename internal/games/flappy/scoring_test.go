package flappy

import (
	"testing"

	"github.com/vovakirdan/tui-flappy/internal/config"
)

func TestScorerEdges(t *testing.T) {
	// Obstacle spans x 100..170
	tests := []struct {
		edge  config.ScoreEdge
		bodyX float64
		want  int
	}{
		{config.EdgeLeading, 100, 0},
		{config.EdgeLeading, 100.5, 1},
		{config.EdgeCenter, 135, 0},
		{config.EdgeCenter, 136, 1},
		{config.EdgeTrailing, 170, 0},
		{config.EdgeTrailing, 171, 1},
	}

	for _, tc := range tests {
		cfg := config.DefaultFlappyConfig()
		cfg.Rules.ScoreEdge = tc.edge
		s := NewScorer(cfg)

		obs := []Obstacle{{X: 100}}
		if got := s.Score(obs, tc.bodyX); got != tc.want {
			t.Errorf("%s at x=%v: scored %d, expected %d", tc.edge, tc.bodyX, got, tc.want)
		}
		if obs[0].Passed != (tc.want == 1) {
			t.Errorf("%s at x=%v: passed = %v", tc.edge, tc.bodyX, obs[0].Passed)
		}
	}
}

func TestScorerCountsOnce(t *testing.T) {
	s := NewScorer(config.DefaultFlappyConfig())
	obs := []Obstacle{{X: 0}, {X: 300}}

	total := 0
	for range 10 {
		total += s.Score(obs, 200)
	}
	if total != 1 {
		t.Errorf("scored %d points for one passed obstacle, expected 1", total)
	}
	if obs[1].Passed {
		t.Error("obstacle ahead of the body marked as passed")
	}
}
