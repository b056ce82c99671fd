package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-flappy/internal/audio"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/platform/cellterm"
	"github.com/vovakirdan/tui-flappy/internal/platform/tui"
)

var (
	flagBackend string
	flagMute    bool
)

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play a variant",
	Long: `Start playing the specified variant, or pick one from a menu.

Controls:
  Space/Up/W - Flap (also starts a session)
  R          - Restart
  ?          - Toggle help
  Q/Esc      - Quit
  Ctrl+C     - Force quit

Backends:
  tea    - Bubble Tea program with help bar (default)
  tcell  - Direct tcell screen, lower overhead

Examples:
  flappy play
  flappy play flappy
  flappy play glide --backend tcell
  flappy play flappy --config ./my-flappy.yaml --seed 42`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagBackend, "backend", "tea", "Frontend: tea or tcell")
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound effects")
}

func runPlay(_ *cobra.Command, args []string) error {
	// Get terminal size early for the menu
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	var variant string
	if len(args) == 1 {
		variant = args[0]
	} else {
		result, err := tui.RunMenu(cfg)
		if err != nil {
			return fmt.Errorf("menu: %w", err)
		}
		if result.Quit {
			return nil
		}
		variant = result.GameID
		cfg = result.Config
	}

	game, err := newGame(variant)
	if err != nil {
		return err
	}
	logger.Debug("starting game", "variant", variant, "backend", flagBackend, "fps", cfg.TickRate, "seed", cfg.Seed)

	sounds := openSounds()
	if sounds != nil {
		defer sounds.Cleanup()
	}

	switch flagBackend {
	case "tea", "":
		opts := tui.Options{}
		if sounds != nil {
			opts.Sounds = sounds
		}
		return tui.Run(game, cfg, opts)

	case "tcell":
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		var sink cellterm.EventSink
		if sounds != nil {
			sink = sounds
		}
		return cellterm.Run(ctx, game, cfg, sink)

	default:
		return fmt.Errorf("unknown backend %q (expected tea or tcell)", flagBackend)
	}
}

// openSounds starts the audio device. Playing without sound is always
// possible, so failures are only logged.
func openSounds() *audio.SoundManager {
	if flagMute {
		return nil
	}
	sm := audio.NewSoundManager()
	if err := sm.Initialize(); err != nil {
		logger.Warn("sound disabled", "error", err)
		return nil
	}
	return sm
}
