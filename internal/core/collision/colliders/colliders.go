// Package colliders provides the built-in shape strategies: circle and
// oriented rectangle. Both install themselves into collision.Default on load.
package colliders

import (
	"fmt"

	"github.com/zeusync/collide/internal/core/collision"
	"github.com/zeusync/collide/internal/core/render"
	"github.com/zeusync/collide/internal/core/systems/physics"
)

const (
	KindCircle    collision.ShapeKind = "circle"
	KindRectangle collision.ShapeKind = "rectangle"
)

// Debug drawing constants.
const (
	outlineColor   = "#ff0000"
	velocityColor  = "#00ff00"
	lineWidth      = 2
	centerRadius   = 3
	velocityFactor = 0.1
)

// Moving is implemented by collidables that carry a velocity. Only the debug
// overlay reads it.
type Moving interface {
	Velocity() physics.Vector2
}

// Register installs the circle and rectangle strategies into reg.
func Register(reg *collision.Registry) error {
	if err := reg.RegisterShape(KindCircle, Circle{}); err != nil {
		return fmt.Errorf("colliders: %w", err)
	}
	if err := reg.RegisterShape(KindRectangle, Rectangle{}); err != nil {
		return fmt.Errorf("colliders: %w", err)
	}
	return nil
}

func init() {
	if err := Register(collision.Default()); err != nil {
		panic(err)
	}
}

func drawCenter(s render.Surface, c physics.Vector2) {
	s.Push()
	s.SetHexColor(outlineColor)
	s.DrawCircle(c.X, c.Y, centerRadius)
	_ = s.Fill()
	s.Pop()
}

func drawVelocity(s render.Surface, self collision.Collidable, from physics.Vector2) {
	m, ok := self.(Moving)
	if !ok {
		return
	}
	v := m.Velocity()
	if v.IsZero() {
		return
	}
	to := from.Add(v.Scale(velocityFactor))
	s.Push()
	s.SetHexColor(velocityColor)
	s.SetLineWidth(lineWidth)
	s.MoveTo(from.X, from.Y)
	s.LineTo(to.X, to.Y)
	_ = s.Stroke()
	s.Pop()
}
