// Package body holds ready-made collidables for the built-in shapes. They
// suit tests, tools and small scenes; a game usually adapts its own entities.
package body

import (
	"github.com/zeusync/collide/internal/core/collision"
	"github.com/zeusync/collide/internal/core/collision/colliders"
	"github.com/zeusync/collide/internal/core/systems/physics"
)

// Circle is a circular collidable positioned by its center.
type Circle struct {
	Response collision.ResponseKind
	Pos      physics.Vector2
	Vel      physics.Vector2
	R        float64
	Disabled bool
	OnHit    func()
}

func (c *Circle) ShapeKind() collision.ShapeKind       { return colliders.KindCircle }
func (c *Circle) ResponseKind() collision.ResponseKind { return c.Response }
func (c *Circle) Center() physics.Vector2              { return c.Pos }
func (c *Circle) Radius() float64                      { return c.R }
func (c *Circle) Position() physics.Vector2            { return c.Pos }
func (c *Circle) SetPosition(p physics.Vector2)        { c.Pos = p }
func (c *Circle) Velocity() physics.Vector2            { return c.Vel }
func (c *Circle) SetVelocity(v physics.Vector2)        { c.Vel = v }
func (c *Circle) CollisionEnabled() bool               { return !c.Disabled }

func (c *Circle) OnCollision() {
	if c.OnHit != nil {
		c.OnHit()
	}
}

// Rectangle is an oriented rectangle. Pos is the unrotated top-left corner
// and AngleDeg rotates it about its center.
type Rectangle struct {
	Response collision.ResponseKind
	Pos      physics.Vector2
	Vel      physics.Vector2
	W, H     float64
	AngleDeg float64
	Disabled bool
	OnHit    func()
}

func (r *Rectangle) ShapeKind() collision.ShapeKind       { return colliders.KindRectangle }
func (r *Rectangle) ResponseKind() collision.ResponseKind { return r.Response }
func (r *Rectangle) Origin() physics.Vector2              { return r.Pos }
func (r *Rectangle) Size() (float64, float64)             { return r.W, r.H }
func (r *Rectangle) Angle() float64                       { return r.AngleDeg }
func (r *Rectangle) Position() physics.Vector2            { return r.Pos }
func (r *Rectangle) SetPosition(p physics.Vector2)        { r.Pos = p }
func (r *Rectangle) Velocity() physics.Vector2            { return r.Vel }
func (r *Rectangle) SetVelocity(v physics.Vector2)        { r.Vel = v }
func (r *Rectangle) CollisionEnabled() bool               { return !r.Disabled }

func (r *Rectangle) OnCollision() {
	if r.OnHit != nil {
		r.OnHit()
	}
}
