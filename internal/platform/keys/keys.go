// Package keys is the key table shared by the terminal frontends.
// Key names use Bubble Tea's spelling: the rune itself, "up", "esc", "ctrl+c".
package keys

import (
	"slices"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

var (
	Flap      = []string{" ", "up", "w", "W"}
	Restart   = []string{"r", "R"}
	Quit      = []string{"q", "Q", "esc"}
	ForceQuit = []string{"ctrl+c"} // Leaves without waiting for a tick
	Help      = []string{"?"}
)

// Action returns the game action bound to a key name, or ActionNone.
func Action(name string) core.Action {
	switch {
	case slices.Contains(Flap, name):
		return core.ActionFlap
	case slices.Contains(Restart, name):
		return core.ActionRestart
	case slices.Contains(Quit, name):
		return core.ActionQuit
	}
	return core.ActionNone
}

// IsForceQuit reports whether the key exits the frontend immediately.
func IsForceQuit(name string) bool {
	return slices.Contains(ForceQuit, name)
}
