package colliders

import (
	"github.com/zeusync/collide/internal/core/collision"
	"github.com/zeusync/collide/internal/core/render"
	"github.com/zeusync/collide/internal/core/systems/physics"
)

// Round is the shape data the circle strategy reads.
type Round interface {
	Center() physics.Vector2
	Radius() float64
}

// Circle is the shape strategy for KindCircle.
//
// A circle has no fixed axes. Against an opponent it contributes the single
// direction from its center to the opponent's closest point, or nothing when
// that direction has zero length.
type Circle struct{}

var (
	_ collision.ShapeStrategy = Circle{}
	_ collision.DebugDrawer   = Circle{}
)

func (Circle) Accepts(c collision.Collidable) bool {
	_, ok := c.(Round)
	return ok
}

func (Circle) Normals(self, other collision.Collidable, otherShape collision.ShapeStrategy) []physics.Vector2 {
	center := self.(Round).Center()
	closest := otherShape.ClosestPoint(other, center)
	direction := closest.Sub(center)
	if direction.Length() > 0 {
		return []physics.Vector2{direction.Normalize()}
	}
	return nil
}

// ClosestPoint returns p itself when it lies within the radius, else the
// boundary point toward p.
func (Circle) ClosestPoint(self collision.Collidable, p physics.Vector2) physics.Vector2 {
	r := self.(Round)
	center := r.Center()
	direction := p.Sub(center)
	if direction.Length() <= r.Radius() {
		return p
	}
	return center.Add(direction.Normalize().Scale(r.Radius()))
}

func (Circle) Project(self collision.Collidable, axis physics.Vector2) collision.Interval {
	r := self.(Round)
	c := r.Center().Dot(axis)
	return collision.Interval{Min: c - r.Radius(), Max: c + r.Radius()}
}

func (Circle) DebugDraw(self collision.Collidable, s render.Surface) {
	r := self.(Round)
	center := r.Center()

	s.Push()
	s.SetHexColor(outlineColor)
	s.SetLineWidth(lineWidth)
	s.DrawCircle(center.X, center.Y, r.Radius())
	_ = s.Stroke()
	s.Pop()

	drawCenter(s, center)
	drawVelocity(s, self, center)
}
