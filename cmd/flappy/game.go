package main

import (
	"fmt"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
	"github.com/vovakirdan/tui-flappy/internal/registry"
)

// newGame builds a variant from its effective configuration: --config,
// then the user and local config directories, then the embedded default.
func newGame(variant string) (*flappy.Game, error) {
	if !registry.Exists(variant) {
		return nil, fmt.Errorf("unknown variant %q (run 'flappy list')", variant)
	}
	cfg, err := config.Load(variant, flagConfig)
	if err != nil {
		return nil, err
	}
	return flappy.New(variant, cfg)
}

// gameFactory adapts newGame to the registry's game interface.
func gameFactory(variant string) (registry.Game, error) {
	g, err := newGame(variant)
	if err != nil {
		return nil, err
	}
	return g, nil
}
