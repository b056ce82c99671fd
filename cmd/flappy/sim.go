package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
)

var (
	flagSimVariant  string
	flagSimSessions int
	flagSimMaxTicks int
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run headless autopilot sessions",
	Long: `Run sessions without a terminal, flown by the built-in autopilot, and
report how far each one got. Useful for checking custom configurations.

Session i uses seed --seed+i, so runs with a fixed --seed are repeatable.

Examples:
  flappy sim
  flappy sim --variant glide --sessions 50
  flappy sim --config ./hard.yaml --max-ticks 20000 --seed 7`,
	Args: cobra.NoArgs,
	RunE: runSim,
}

func init() {
	simCmd.Flags().StringVar(&flagSimVariant, "variant", config.VariantClassic, "Variant to simulate")
	simCmd.Flags().IntVar(&flagSimSessions, "sessions", 10, "Number of sessions")
	simCmd.Flags().IntVar(&flagSimMaxTicks, "max-ticks", 10000, "Tick limit per session")
}

// simResult summarizes one autopilot session.
type simResult struct {
	Seed  int64
	Score int
	Ticks int
	Cause flappy.Cause
}

func runSim(_ *cobra.Command, _ []string) error {
	if flagSimSessions <= 0 || flagSimMaxTicks <= 0 {
		return fmt.Errorf("--sessions and --max-ticks must be positive")
	}

	game, err := newGame(flagSimVariant)
	if err != nil {
		return err
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	pilot := flappy.DefaultAutopilot()
	results := make([]simResult, 0, flagSimSessions)
	for i := range flagSimSessions {
		r := simulate(game, pilot, seed+int64(i), flagSimMaxTicks)
		logger.Debug("session finished", "n", i+1, "seed", r.Seed, "score", r.Score, "ticks", r.Ticks, "cause", r.Cause)
		results = append(results, r)
	}

	printSimResults(results)
	return nil
}

// simulate plays one session from a fresh reset until it ends or hits the
// tick limit.
func simulate(game *flappy.Game, pilot flappy.Autopilot, seed int64, maxTicks int) simResult {
	rt := core.DefaultConfig()
	rt.Seed = seed
	game.Reset(rt)

	// The first flap only starts the session.
	game.Step(pilot.Decide(game.Snapshot()))

	for game.Session().Tick < maxTicks && !game.State().GameOver() {
		game.Step(pilot.Decide(game.Snapshot()))
	}

	s := game.Session()
	return simResult{Seed: seed, Score: s.Score, Ticks: s.Tick, Cause: s.Cause}
}

func printSimResults(results []simResult) {
	fmt.Printf("  %-4s  %-20s  %6s  %6s  %s\n", "#", "Seed", "Score", "Ticks", "End")
	fmt.Printf("  %-4s  %-20s  %6s  %6s  %s\n", "--", "----", "-----", "-----", "---")

	total, best, survived := 0, 0, 0
	for i, r := range results {
		end := r.Cause.String()
		if r.Cause == flappy.CauseNone {
			end = "tick limit"
			survived++
		}
		fmt.Printf("  %-4d  %-20d  %6d  %6d  %s\n", i+1, r.Seed, r.Score, r.Ticks, end)
		total += r.Score
		best = max(best, r.Score)
	}

	fmt.Println()
	fmt.Printf("Sessions: %d  Best: %d  Mean: %.1f  Survived: %d\n",
		len(results), best, float64(total)/float64(len(results)), survived)
}
