// Package cellterm runs a game directly on a tcell screen, without Bubble Tea.
// It is the lightweight frontend selected with --backend tcell.
package cellterm

import (
	"context"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/platform/keys"
	"github.com/vovakirdan/tui-flappy/internal/registry"
)

// EventSink receives the events of every tick, e.g. to play sounds.
type EventSink interface {
	Play(e core.Event)
}

// Runner drives a game on a tcell screen at a fixed tick rate.
type Runner struct {
	screen tcell.Screen
	game   registry.Game
	config core.RuntimeConfig
	buf    *core.Screen
	input  core.InputFrame
	sounds EventSink
	styles map[[2]core.Color]tcell.Style
}

// New creates a runner on an initialized screen and resets the game.
// A zero seed is replaced by the current time.
func New(screen tcell.Screen, game registry.Game, cfg core.RuntimeConfig, sounds EventSink) *Runner {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	w, h := screen.Size()
	cfg.ScreenW, cfg.ScreenH = w, h
	game.Reset(cfg)

	return &Runner{
		screen: screen,
		game:   game,
		config: cfg,
		buf:    core.NewScreen(w, h),
		input:  core.NewInputFrame(),
		sounds: sounds,
		styles: make(map[[2]core.Color]tcell.Style),
	}
}

// Run opens the terminal, plays the game until it stops or ctx is done,
// and restores the terminal.
func Run(ctx context.Context, game registry.Game, cfg core.RuntimeConfig, sounds EventSink) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("cellterm: cannot open screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("cellterm: cannot init screen: %w", err)
	}
	defer screen.Fini()

	screen.HideCursor()
	return New(screen, game, cfg, sounds).Loop(ctx)
}

// Loop polls input and ticks the game until it asks to stop.
func (r *Runner) Loop(ctx context.Context) error {
	ticker := time.NewTicker(r.config.TickInterval())
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	done := make(chan struct{})
	defer close(done)
	go pump(r.screen, events, done)

	r.Draw()
	for {
		select {
		case <-ctx.Done():
			return nil

		case ev := <-events:
			if !r.HandleEvent(ev) {
				return nil
			}

		case <-ticker.C:
			if !r.Tick() {
				return nil
			}
			r.Draw()
		}
	}
}

// pump forwards screen events until the screen is finalized or done is
// closed.
func pump(screen tcell.Screen, events chan<- tcell.Event, done <-chan struct{}) {
	for {
		ev := screen.PollEvent()
		if ev == nil {
			return // Screen finalized
		}
		select {
		case events <- ev:
		case <-done:
			return
		}
	}
}

// HandleEvent records input and reacts to resizes. It returns false when
// the player forces an immediate exit.
func (r *Runner) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		name := keyName(ev)
		if keys.IsForceQuit(name) {
			return false
		}
		r.input.Set(keys.Action(name))

	case *tcell.EventResize:
		w, h := ev.Size()
		r.config.ScreenW, r.config.ScreenH = w, h
		r.buf.Resize(w, h)
		r.screen.Sync()
	}
	return true
}

// keyName spells a key the way the shared key table does.
func keyName(ev *tcell.EventKey) string {
	switch ev.Key() {
	case tcell.KeyRune:
		return string(ev.Rune())
	case tcell.KeyUp:
		return "up"
	case tcell.KeyEscape:
		return "esc"
	case tcell.KeyCtrlC:
		return "ctrl+c"
	}
	return ""
}

// Tick advances the game by one step with the input gathered since the
// last tick. It returns false once the game asks to stop.
func (r *Runner) Tick() bool {
	result := r.game.Step(r.input)
	r.input.Clear()

	if r.sounds != nil {
		for _, e := range result.Events {
			r.sounds.Play(e)
		}
	}
	return result.Continue
}

// Draw renders the game and shows it on the screen.
func (r *Runner) Draw() {
	r.game.Render(r.buf)
	r.paint()
	r.screen.Show()
}

// paint copies the cell buffer onto the tcell screen.
func (r *Runner) paint() {
	for y := range r.buf.Height() {
		for x := range r.buf.Width() {
			c := r.buf.GetCell(x, y)
			r.screen.SetContent(x, y, c.Rune, nil, r.style(c.Fg, c.Bg))
		}
	}
}

func (r *Runner) style(fg, bg core.Color) tcell.Style {
	k := [2]core.Color{fg, bg}
	if s, ok := r.styles[k]; ok {
		return s
	}
	s := tcell.StyleDefault
	if fg.Set {
		s = s.Foreground(tcell.NewRGBColor(int32(fg.R), int32(fg.G), int32(fg.B)))
	}
	if bg.Set {
		s = s.Background(tcell.NewRGBColor(int32(bg.R), int32(bg.G), int32(bg.B)))
	}
	r.styles[k] = s
	return s
}
