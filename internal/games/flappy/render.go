package flappy

import (
	"fmt"
	"math"
	"unicode/utf8"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Visual characters for rendering
const (
	ObstacleChar    = '█'
	ObstacleCapTop  = '▄'
	ObstacleCapBot  = '▀'
	GroundChar      = '═'
	SquareChar      = '■'
	CircleChar      = '●'
	TriangleChar    = '▲'
	messageMinWidth = 24
)

// viewport maps world coordinates onto screen cells.
type viewport struct {
	sx, sy float64
}

func newViewport(world core.Rect, w, h int) viewport {
	return viewport{sx: float64(w) / world.W, sy: float64(h) / world.H}
}

// cells returns the cell span covered by r as [x0, x1) x [y0, y1).
// Any rectangle with a positive area covers at least one cell.
func (v viewport) cells(r core.Rect) (x0, y0, x1, y1 int) {
	x0 = int(math.Floor(r.X * v.sx))
	y0 = int(math.Floor(r.Y * v.sy))
	x1 = int(math.Ceil(r.Right() * v.sx))
	y1 = int(math.Ceil(r.Bottom() * v.sy))
	return x0, y0, x1, y1
}

func (v viewport) row(y float64) int {
	return int(math.Floor(y * v.sy))
}

// Render draws the current frame scaled to the screen. The world keeps its
// own size, so a screen of any dimension shows the whole playfield.
func (g *Game) Render(dst *core.Screen) {
	w, h := dst.Width(), dst.Height()
	if w == 0 || h == 0 {
		return
	}
	snap := g.Snapshot()
	vp := newViewport(snap.World, w, h)

	dst.Fill(core.Cell{Rune: ' ', Bg: snap.Background})

	for _, o := range snap.Obstacles {
		drawObstacle(dst, vp, o, snap.Background)
	}

	// Draw ground
	groundY := core.Clamp(vp.row(snap.GroundY), 0, h-1)
	dst.DrawRect(0, groundY, w, h-groundY, core.Cell{Rune: ' ', Fg: core.ColorBlack, Bg: snap.Ground})
	dst.DrawHLine(0, groundY, w, GroundChar)

	drawBody(dst, vp, snap.Body, snap.Background)

	// Draw HUD
	dst.DrawText(1, 0, fmt.Sprintf(" Score: %d  Best: %d ", snap.Score, snap.Best))

	switch snap.Phase {
	case core.PhaseIdle:
		drawCenteredMessage(dst, g.Title(), "SPACE to flap", "R restart  Q quit")
	case core.PhaseGameOver:
		drawCenteredMessage(dst, "GAME OVER",
			fmt.Sprintf("Score: %d  Best: %d", snap.Score, snap.Best),
			"SPACE to play again  Q quit")
	}
}

// drawObstacle renders both segments of an obstacle with caps facing the gap.
func drawObstacle(dst *core.Screen, vp viewport, o ObstacleView, bg core.Color) {
	body := core.Cell{Rune: ObstacleChar, Fg: o.Color, Bg: bg}

	if !o.Top.Empty() {
		x0, y0, x1, y1 := vp.cells(o.Top)
		dst.DrawRect(x0, y0, x1-x0, y1-y0, body)
		dst.DrawRect(x0, y1-1, x1-x0, 1, core.Cell{Rune: ObstacleCapTop, Fg: o.Color, Bg: bg})
	}
	if !o.Bottom.Empty() {
		x0, y0, x1, y1 := vp.cells(o.Bottom)
		dst.DrawRect(x0, y0, x1-x0, y1-y0, body)
		dst.DrawRect(x0, y0, x1-x0, 1, core.Cell{Rune: ObstacleCapBot, Fg: o.Color, Bg: bg})
	}
}

// drawBody fills the body's bounding cells with its shape glyph.
func drawBody(dst *core.Screen, vp viewport, b BodyView, bg core.Color) {
	glyph := SquareChar
	switch b.Geometry.Shape {
	case ShapeCircle:
		glyph = CircleChar
	case ShapeTriangle:
		glyph = TriangleChar
	}

	x0, y0, x1, y1 := vp.cells(b.Geometry.Bounds)
	// Large cells may round the body away; keep it visible.
	x1, y1 = max(x1, x0+1), max(y1, y0+1)
	dst.DrawRect(x0, y0, x1-x0, y1-y0, core.Cell{Rune: glyph, Fg: b.Color, Bg: bg})
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title string, lines ...string) {
	w := dst.Width()
	h := dst.Height()

	// Calculate box dimensions
	boxW := max(utf8.RuneCountInString(title), messageMinWidth)
	for _, l := range lines {
		boxW = max(boxW, utf8.RuneCountInString(l))
	}
	boxW += 4
	boxH := len(lines) + 4
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	// Draw box
	dst.DrawRect(boxX, boxY, boxW, boxH, core.Cell{Rune: ' ', Fg: core.ColorBlack, Bg: core.ColorWhite})
	dst.DrawBox(boxX, boxY, boxW, boxH)

	// Draw text
	dst.DrawTextCentered(boxY+1, title)
	for i, l := range lines {
		dst.DrawTextCentered(boxY+3+i, l)
	}
}
