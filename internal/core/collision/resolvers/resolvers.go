// Package resolvers provides the built-in response strategies.
package resolvers

import (
	"fmt"

	"github.com/zeusync/collide/internal/core/collision"
	"github.com/zeusync/collide/internal/core/systems/physics"
)

const (
	KindPushOut           collision.ResponseKind = "pushOut"
	KindStatic            collision.ResponseKind = "static"
	KindBouncy            collision.ResponseKind = "bouncy"
	KindProjectileDestroy collision.ResponseKind = "projectileDestroy"
)

// Positioned is implemented by collidables a response may move.
type Positioned interface {
	Position() physics.Vector2
	SetPosition(physics.Vector2)
}

// Kinematic is a Positioned collidable with a mutable velocity.
type Kinematic interface {
	Positioned
	Velocity() physics.Vector2
	SetVelocity(physics.Vector2)
}

// Register installs the four built-in responses into reg. bouncy configures
// the bouncy response; pass DefaultBouncy() for the stock tuning.
func Register(reg *collision.Registry, bouncy Bouncy) error {
	entries := []struct {
		kind     collision.ResponseKind
		strategy collision.ResponseStrategy
	}{
		{KindPushOut, PushOut{}},
		{KindStatic, Static{}},
		{KindBouncy, bouncy},
		{KindProjectileDestroy, ProjectileDestroy{}},
	}
	for _, e := range entries {
		if err := reg.RegisterResponse(e.kind, e.strategy); err != nil {
			return fmt.Errorf("resolvers: register %s: %w", e.kind, err)
		}
	}
	return nil
}

func init() {
	if err := Register(collision.Default(), DefaultBouncy()); err != nil {
		panic(err)
	}
}

// PushOut moves self by the signed overlap along the normal.
type PushOut struct{}

func (PushOut) Accepts(c collision.Collidable) bool {
	_, ok := c.(Positioned)
	return ok
}

func (PushOut) Resolve(self, _ collision.Collidable, overlap float64, normal physics.Vector2) {
	p := self.(Positioned)
	p.SetPosition(p.Position().Add(normal.Scale(overlap)))
}

// Static never moves.
type Static struct{}

func (Static) Accepts(collision.Collidable) bool { return true }

func (Static) Resolve(_, _ collision.Collidable, _ float64, _ physics.Vector2) {}

// ProjectileDestroy leaves geometry alone and fires the collidable's own
// callback. The resolver fires it again afterwards, so consumers must treat
// repeated callbacks for one contact as idempotent.
type ProjectileDestroy struct{}

func (ProjectileDestroy) Accepts(collision.Collidable) bool { return true }

func (ProjectileDestroy) Resolve(self, _ collision.Collidable, _ float64, _ physics.Vector2) {
	if n, ok := self.(collision.Notifier); ok {
		n.OnCollision()
	}
}
