package world

import (
	"github.com/zeusync/collide/internal/core/collision"
	"github.com/zeusync/collide/internal/core/collision/colliders"
	"github.com/zeusync/collide/internal/core/systems/physics"
)

// entityView adapts an entity to the collision engine. Views live for one
// sweep and write straight through to the entity.
type entityView struct {
	e *Entity
	w *World
}

func (v entityView) ShapeKind() collision.ShapeKind       { return v.e.Collider.Shape }
func (v entityView) ResponseKind() collision.ResponseKind { return v.e.Collider.Response }
func (v entityView) Position() physics.Vector2            { return v.e.Position }
func (v entityView) SetPosition(p physics.Vector2)        { v.e.Position = p }
func (v entityView) Velocity() physics.Vector2            { return v.e.Velocity }
func (v entityView) SetVelocity(vel physics.Vector2)      { v.e.Velocity = vel }
func (v entityView) CollisionEnabled() bool               { return v.e.Collider.Enabled }
func (v entityView) OnCollision()                         { v.w.onCollision(v.e) }
func (v entityView) ID() EntityID                         { return v.e.ID }

// circleView exposes the circle shape data only, so a rectangle strategy
// cannot accept it.
type circleView struct{ entityView }

func (v circleView) Center() physics.Vector2 { return v.e.Position }
func (v circleView) Radius() float64         { return v.e.Collider.Radius }

type rectView struct{ entityView }

func (v rectView) Origin() physics.Vector2  { return v.e.Position }
func (v rectView) Size() (float64, float64) { return v.e.Collider.Width, v.e.Collider.Height }
func (v rectView) Angle() float64           { return v.e.Collider.Angle }

func (w *World) viewOf(e *Entity) collision.Collidable {
	base := entityView{e: e, w: w}
	switch e.Collider.Shape {
	case colliders.KindCircle:
		return circleView{base}
	case colliders.KindRectangle:
		return rectView{base}
	default:
		return base
	}
}
