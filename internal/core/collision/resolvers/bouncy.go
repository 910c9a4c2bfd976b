package resolvers

import (
	"math"

	"github.com/zeusync/collide/internal/core/collision"
	"github.com/zeusync/collide/internal/core/systems/physics"
)

// Bouncy pushes self out, reflects the normal velocity component with
// Damping restitution and scales the tangential component down by Friction.
// Components smaller than SnapX and SnapY are zeroed.
type Bouncy struct {
	Damping  float64 `yaml:"damping" json:"damping"`
	Friction float64 `yaml:"friction" json:"friction"`
	SnapX    float64 `yaml:"snap_x" json:"snap_x"`
	SnapY    float64 `yaml:"snap_y" json:"snap_y"`
}

func DefaultBouncy() Bouncy {
	return Bouncy{Damping: 0.7, Friction: 0.2, SnapX: 10, SnapY: 40}
}

func (Bouncy) Accepts(c collision.Collidable) bool {
	_, ok := c.(Kinematic)
	return ok
}

func (b Bouncy) Resolve(self, _ collision.Collidable, overlap float64, normal physics.Vector2) {
	k := self.(Kinematic)
	n := normal.Normalize()
	k.SetPosition(k.Position().Add(n.Scale(overlap)))

	v := k.Velocity()
	v = v.Sub(n.Scale((1 + b.Damping) * v.Dot(n)))

	t := n.Perp()
	v = v.Sub(t.Scale(v.Dot(t) * b.Friction))

	if math.Abs(v.X) < b.SnapX {
		v.X = 0
	}
	if math.Abs(v.Y) < b.SnapY {
		v.Y = 0
	}
	k.SetVelocity(v)
}
