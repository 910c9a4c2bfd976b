package world

import (
	"time"

	"github.com/zeusync/collide/internal/core/collision"
	"github.com/zeusync/collide/internal/core/systems/physics"
)

// EntityID identifies an entity for the lifetime of a World. IDs are never
// reused; zero is never assigned.
type EntityID uint64

type Kind uint8

const (
	KindPlayer Kind = iota + 1
	KindEnemy
	KindObstacle
	KindProjectile
)

func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindEnemy:
		return "enemy"
	case KindObstacle:
		return "obstacle"
	case KindProjectile:
		return "projectile"
	default:
		return "unknown"
	}
}

// Collider describes how an entity takes part in collision. Circles use
// Radius; rectangles use Width, Height and Angle (degrees) around the center
// of the box whose top-left corner is the entity position.
type Collider struct {
	Shape    collision.ShapeKind
	Response collision.ResponseKind
	Radius   float64
	Width    float64
	Height   float64
	Angle    float64
	Enabled  bool
}

// ProjectileState tracks a projectile's damage and age.
type ProjectileState struct {
	Damage   float64
	Lifetime time.Duration
	Age      time.Duration
}

// Entity is a snapshot-friendly value. Accessors on World return copies.
type Entity struct {
	ID         EntityID
	Kind       Kind
	Position   physics.Vector2
	Velocity   physics.Vector2
	Collider   Collider
	Projectile *ProjectileState
}

func (e Entity) clone() Entity {
	if e.Projectile != nil {
		p := *e.Projectile
		e.Projectile = &p
	}
	return e
}
