package flappy

import (
	"math/rand"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Shape is the visual form of the body. The set is closed.
type Shape int

const (
	ShapeSquare Shape = iota
	ShapeCircle
	ShapeTriangle
)

var shapes = [...]Shape{ShapeSquare, ShapeCircle, ShapeTriangle}

// String returns the shape name.
func (s Shape) String() string {
	switch s {
	case ShapeSquare:
		return "square"
	case ShapeCircle:
		return "circle"
	case ShapeTriangle:
		return "triangle"
	default:
		return "unknown"
	}
}

// randomShape picks one of the shapes uniformly.
func randomShape(rng *rand.Rand) Shape {
	return shapes[rng.Intn(len(shapes))]
}

// hitboxScale returns the hitbox width and height as fractions of the body
// size. Round shapes get a smaller box so corners of the bounding square
// do not count as hits.
func (s Shape) hitboxScale() (w, h float64) {
	switch s {
	case ShapeCircle:
		return 0.8, 0.8
	case ShapeTriangle:
		return 0.8, 2.0 / 3.0
	default:
		return 1, 1
	}
}

// Hitbox returns the collision rectangle of a body of this shape.
// Without shrinking, every shape uses its full bounding square.
func (s Shape) Hitbox(center core.Vec, size float64, shrink bool) core.Rect {
	w, h := 1.0, 1.0
	if shrink {
		w, h = s.hitboxScale()
	}
	return core.RectAround(center.X, center.Y, size*w, size*h)
}

// Geometry describes how to paint a body. Renderers pick the fields that
// match Shape.
type Geometry struct {
	Shape  Shape
	Center core.Vec
	Bounds core.Rect   // Visual bounding square
	Radius float64     // Circle only
	Points [3]core.Vec // Triangle only: apex, bottom-left, bottom-right
}

// Geometry returns the renderable descriptor of a body of this shape.
func (s Shape) Geometry(center core.Vec, size float64) Geometry {
	half := size / 2
	g := Geometry{
		Shape:  s,
		Center: center,
		Bounds: core.RectAround(center.X, center.Y, size, size),
	}
	switch s {
	case ShapeCircle:
		g.Radius = half
	case ShapeTriangle:
		g.Points = [3]core.Vec{
			{X: center.X, Y: center.Y - half},
			{X: center.X - half, Y: center.Y + half},
			{X: center.X + half, Y: center.Y + half},
		}
	}
	return g
}

// Body is the player-controlled actor. X is fixed for a session, Y is the
// center of the body and grows downwards.
type Body struct {
	X        float64
	Y        float64
	Velocity float64
	Size     float64
	Shape    Shape
	Color    core.Color
	Shrink   bool // Use the reduced hitbox for round shapes
}

// Integrate applies one tick of gravity: velocity first, then position.
// A positive maxFall caps the downward speed.
func (b *Body) Integrate(gravity, maxFall float64) {
	b.Velocity += gravity
	if maxFall > 0 && b.Velocity > maxFall {
		b.Velocity = maxFall
	}
	b.Y += b.Velocity
}

// Flap launches the body upward according to the configured policy.
func (b *Body) Flap(p config.FlappyPhysics) {
	switch p.FlapPolicy {
	case config.FlapDecrement:
		b.Velocity = max(b.Velocity+p.FlapImpulse, p.MaxUpSpeed)
	default:
		b.Velocity = p.FlapImpulse
	}
}

// Center returns the body's position.
func (b *Body) Center() core.Vec {
	return core.Vec{X: b.X, Y: b.Y}
}

// Hitbox returns the collision rectangle at the current position.
func (b *Body) Hitbox() core.Rect {
	return b.Shape.Hitbox(b.Center(), b.Size, b.Shrink)
}

// Geometry returns the renderable descriptor at the current position.
func (b *Body) Geometry() Geometry {
	return b.Shape.Geometry(b.Center(), b.Size)
}
