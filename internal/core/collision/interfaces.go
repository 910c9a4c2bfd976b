// Package collision implements pairwise collision detection and resolution
// with the Separating Axis Theorem.
//
// Objects are plain data. Behavior is looked up by string kind in a Registry:
// a ShapeStrategy supplies candidate axes, closest points and projections, a
// ResponseStrategy reacts to a confirmed overlap. New kinds are added by
// registering strategies; the resolver never changes.
package collision

import (
	"github.com/zeusync/collide/internal/core/render"
	"github.com/zeusync/collide/internal/core/systems/physics"
)

// ShapeKind selects the ShapeStrategy of a Collidable.
type ShapeKind string

func (k ShapeKind) String() string { return string(k) }

// ResponseKind selects the ResponseStrategy of a Collidable.
type ResponseKind string

func (k ResponseKind) String() string { return string(k) }

// Collidable is the unit the engine reasons about. The engine borrows a
// Collidable for the duration of one pairwise check and never retains it.
type Collidable interface {
	ShapeKind() ShapeKind
	ResponseKind() ResponseKind
}

// Notifier is implemented by collidables that want a callback after every
// confirmed collision they take part in.
type Notifier interface {
	OnCollision()
}

// Toggle is implemented by collidables that can switch collision off.
// The resolver does not consult it; see Enabled.
type Toggle interface {
	CollisionEnabled() bool
}

// Enabled reports whether c takes part in collision. Collidables without a
// Toggle are enabled.
func Enabled(c Collidable) bool {
	if t, ok := c.(Toggle); ok {
		return t.CollisionEnabled()
	}
	return true
}

// Interval is the projection of a shape onto a unit axis.
type Interval struct {
	Min float64
	Max float64
}

// ShapeStrategy is the geometry contract of one shape kind. Implementations
// are stateless and shared by every object of that kind.
type ShapeStrategy interface {
	// Accepts reports whether the strategy can read c's shape data.
	Accepts(c Collidable) bool
	// Normals returns the candidate separating axes self contributes against
	// other. otherShape is other's registered strategy.
	Normals(self, other Collidable, otherShape ShapeStrategy) []physics.Vector2
	// ClosestPoint returns the point of self nearest to p.
	ClosestPoint(self Collidable, p physics.Vector2) physics.Vector2
	// Project returns the extent of self along a unit axis.
	Project(self Collidable, axis physics.Vector2) Interval
}

// DebugDrawer is optionally implemented by a ShapeStrategy.
type DebugDrawer interface {
	DebugDraw(self Collidable, surface render.Surface)
}

// ResponseStrategy reacts to a confirmed collision. overlap is signed: combined
// with normal it gives the push-out for self. The two sides of a pair receive
// opposite signs along the same normal.
type ResponseStrategy interface {
	Accepts(c Collidable) bool
	Resolve(self, other Collidable, overlap float64, normal physics.Vector2)
}
