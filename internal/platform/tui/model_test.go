package tui

import (
	"slices"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
	"github.com/vovakirdan/tui-flappy/internal/platform/keys"
	"github.com/vovakirdan/tui-flappy/internal/registry"
)

type recordingSink struct {
	events []core.Event
}

func (r *recordingSink) Play(e core.Event) {
	r.events = append(r.events, e)
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func newTestModel(t *testing.T, opts Options) (Model, *flappy.Game) {
	t.Helper()
	game := flappy.MustNew(config.VariantClassic, config.DefaultFlappyConfig())
	m := NewModel(game, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 42}, opts)
	m.Init()
	return m, game
}

func step(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return model, cmd
}

func TestKeyMapper(t *testing.T) {
	km := NewKeyMapper(DefaultKeyMap())
	tests := []struct {
		key  string
		want core.Action
	}{
		{" ", core.ActionFlap},
		{"up", core.ActionFlap},
		{"w", core.ActionFlap},
		{"W", core.ActionFlap},
		{"r", core.ActionRestart},
		{"R", core.ActionRestart},
		{"q", core.ActionQuit},
		{"Q", core.ActionQuit},
		{"esc", core.ActionQuit},
		{"x", core.ActionNone},
	}

	for _, tc := range tests {
		if got := km.MapKey(keyMsg(tc.key)); got != tc.want {
			t.Errorf("MapKey(%q) = %v, expected %v", tc.key, got, tc.want)
		}
	}
}

func TestKeyMapperMatchesSharedTable(t *testing.T) {
	km := NewKeyMapper(DefaultKeyMap())
	for _, names := range [][]string{keys.Flap, keys.Restart, keys.Quit} {
		for _, name := range names {
			if got, want := km.MapKey(keyMsg(name)), keys.Action(name); got != want {
				t.Errorf("MapKey(%q) = %v, shared table says %v", name, got, want)
			}
		}
	}
}

func TestKeysApplyOnTick(t *testing.T) {
	sink := &recordingSink{}
	m, game := newTestModel(t, Options{Sounds: sink})

	m, _ = step(t, m, keyMsg(" "))
	if game.State().Phase != core.PhaseIdle {
		t.Fatal("key press stepped the game before the tick")
	}

	m, cmd := step(t, m, TickMsg(time.Now()))
	if cmd == nil {
		t.Fatal("tick did not schedule the next one")
	}
	if m.State().Phase != core.PhasePlaying {
		t.Errorf("phase = %v, expected playing", m.State().Phase)
	}
	if !slices.Equal(sink.events, []core.Event{core.EventStart}) {
		t.Errorf("events = %v, expected [start]", sink.events)
	}

	// Input is consumed by the tick
	m, _ = step(t, m, TickMsg(time.Now()))
	if slices.Contains(sink.events[1:], core.EventStart) {
		t.Error("flap was applied twice")
	}
}

func TestResizeKeepsSession(t *testing.T) {
	m, game := newTestModel(t, Options{})
	m, _ = step(t, m, keyMsg(" "))
	for range 10 {
		m, _ = step(t, m, TickMsg(time.Now()))
	}
	tick := game.Session().Tick

	m, _ = step(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	if game.Session().Tick != tick || game.State().Phase != core.PhasePlaying {
		t.Error("resize reset the session")
	}
	if m.screen.Width() != 120 || m.screen.Height() != 40-helpHeight {
		t.Errorf("screen %dx%d after resize", m.screen.Width(), m.screen.Height())
	}
	if view := m.View(); !strings.Contains(view, "Score") {
		t.Errorf("view after resize misses the HUD:\n%s", view)
	}
}

func TestQuitThroughGame(t *testing.T) {
	m, _ := newTestModel(t, Options{})
	m, _ = step(t, m, keyMsg("q"))
	m, cmd := step(t, m, TickMsg(time.Now()))

	if !m.Done() || !m.IsQuitting() {
		t.Fatal("quit key did not stop the model")
	}
	if cmd == nil {
		t.Fatal("expected tea.Quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected a quit message")
	}
}

func TestEmbeddedQuitHandsBack(t *testing.T) {
	m, _ := newTestModel(t, Options{Embedded: true})
	m, _ = step(t, m, keyMsg("q"))
	m, cmd := step(t, m, TickMsg(time.Now()))

	if !m.Done() || m.IsQuitting() || cmd != nil {
		t.Errorf("embedded quit: done=%v quitting=%v cmd=%v", m.Done(), m.IsQuitting(), cmd != nil)
	}
}

func TestSessionModelReturnsToMenu(t *testing.T) {
	cfg := core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1}
	sm := NewSessionModel(cfg, registry.Create, testLogger())

	update := func(msg tea.Msg) {
		next, _ := sm.Update(msg)
		sm = next.(SessionModel)
	}

	update(keyMsg("enter"))
	if sm.gameModel == nil {
		t.Fatal("selecting a variant did not start a game")
	}
	first := sm.gameModel.game

	update(keyMsg("q"))
	update(TickMsg(time.Now()))
	if sm.gameModel != nil || sm.quitting {
		t.Fatal("quitting the game should return to the menu")
	}

	update(keyMsg("enter"))
	if sm.gameModel == nil || sm.gameModel.game != first {
		t.Error("the same variant should reuse its game")
	}
}

func TestRenderScreen(t *testing.T) {
	s := core.NewScreen(10, 2)
	s.DrawText(0, 0, "hello")
	s.SetCell(0, 1, core.Cell{Rune: '#', Fg: core.ColorDarkGreen, Bg: core.ColorLightBlue})

	out := RenderScreen(s)
	if !strings.Contains(out, "hello") || !strings.Contains(out, "#") {
		t.Errorf("rendered output misses content: %q", out)
	}
	if got := strings.Count(out, "\n"); got != 1 {
		t.Errorf("expected 2 rows, got %d newlines", got)
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	km := NewKeyMapper(DefaultKeyMap())
	tests := []struct {
		key  string
		want MenuAction
	}{
		{"q", MenuActionQuit},
		{"Q", MenuActionQuit},
		{"esc", MenuActionQuit},
		{"ctrl+c", MenuActionQuit},
		{"up", MenuActionUp},
		{"j", MenuActionDown},
		{"enter", MenuActionSelect},
		{"x", MenuActionNone},
	}

	for _, tc := range tests {
		if got := km.MapKeyToMenuAction(keyMsg(tc.key)); got != tc.want {
			t.Errorf("MapKeyToMenuAction(%q) = %v, expected %v", tc.key, got, tc.want)
		}
	}
}
