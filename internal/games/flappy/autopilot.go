package flappy

import (
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Autopilot is a simple controller that flies through gaps. It drives the
// headless simulator and is handy in tests and demos.
type Autopilot struct {
	// Bias moves the target below the gap center, as a fraction of the gap
	// height. Flapping carries the body upward past the point where it
	// was triggered, so aiming low keeps the arc inside the gap.
	Bias float64
}

// DefaultAutopilot returns an autopilot tuned for the built-in variants.
func DefaultAutopilot() Autopilot {
	return Autopilot{Bias: 1.0 / 6.0}
}

// Decide returns the input for the next tick given the current frame.
// Outside a running session it flaps to start one.
func (a Autopilot) Decide(snap Snapshot) core.InputFrame {
	in := core.NewInputFrame()
	if snap.Phase != core.PhasePlaying {
		in.Set(core.ActionFlap)
		return in
	}

	body := snap.Body
	target := snap.GroundY / 2
	for _, o := range snap.Obstacles {
		// First obstacle whose far edge is still ahead of the body
		if o.Top.Right() < body.Hitbox.X {
			continue
		}
		gap := core.NewRect(o.Top.X, o.Top.Bottom(), o.Top.W, o.Bottom.Y-o.Top.Bottom())
		target = gap.Center().Y + gap.H*a.Bias
		break
	}

	if body.Geometry.Center.Y > target && body.Velocity > 0 {
		in.Set(core.ActionFlap)
	}
	return in
}
