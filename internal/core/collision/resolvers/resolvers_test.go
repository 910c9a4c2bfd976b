package resolvers_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zeusync/collide/internal/core/collision"
	"github.com/zeusync/collide/internal/core/collision/body"
	"github.com/zeusync/collide/internal/core/collision/resolvers"
	"github.com/zeusync/collide/internal/core/systems/physics"
)

type ghost struct{}

func (ghost) ShapeKind() collision.ShapeKind       { return "ghost" }
func (ghost) ResponseKind() collision.ResponseKind { return "ghost" }

func TestRegister(t *testing.T) {
	reg := collision.NewRegistry()
	require.NoError(t, resolvers.Register(reg, resolvers.DefaultBouncy()))

	assert.Equal(t, []collision.ResponseKind{
		resolvers.KindBouncy,
		resolvers.KindProjectileDestroy,
		resolvers.KindPushOut,
		resolvers.KindStatic,
	}, reg.ResponseKinds())

	for _, kind := range reg.ResponseKinds() {
		_, ok := collision.Default().Response(kind)
		assert.True(t, ok, kind.String())
	}
}

func TestAccepts(t *testing.T) {
	c := &body.Circle{}

	assert.True(t, resolvers.PushOut{}.Accepts(c))
	assert.False(t, resolvers.PushOut{}.Accepts(ghost{}))
	assert.True(t, resolvers.DefaultBouncy().Accepts(c))
	assert.False(t, resolvers.DefaultBouncy().Accepts(ghost{}))
	assert.True(t, resolvers.Static{}.Accepts(ghost{}))
	assert.True(t, resolvers.ProjectileDestroy{}.Accepts(ghost{}))
}

func TestPushOut(t *testing.T) {
	c := &body.Circle{Pos: physics.Vec(1, 1), Vel: physics.Vec(5, 5)}

	resolvers.PushOut{}.Resolve(c, nil, -3, physics.Vec(1, 0))
	assert.Equal(t, physics.Vec(-2, 1), c.Pos)
	assert.Equal(t, physics.Vec(5, 5), c.Vel)
}

func TestStatic(t *testing.T) {
	r := &body.Rectangle{Pos: physics.Vec(4, 4), W: 10, H: 10}

	resolvers.Static{}.Resolve(r, nil, 50, physics.Vec(0, 1))
	assert.Equal(t, physics.Vec(4, 4), r.Pos)
}

func TestProjectileDestroy(t *testing.T) {
	hits := 0
	c := &body.Circle{Pos: physics.Vec(7, 7), OnHit: func() { hits++ }}

	resolvers.ProjectileDestroy{}.Resolve(c, nil, 5, physics.Vec(1, 0))
	assert.Equal(t, 1, hits)
	assert.Equal(t, physics.Vec(7, 7), c.Pos)

	assert.NotPanics(t, func() {
		resolvers.ProjectileDestroy{}.Resolve(ghost{}, nil, 5, physics.Vec(1, 0))
	})
}

func TestBouncy(t *testing.T) {
	tests := []struct {
		name    string
		vel     physics.Vector2
		normal  physics.Vector2
		overlap float64
		wantPos physics.Vector2
		wantVel physics.Vector2
	}{
		{
			name:    "floor bounce",
			vel:     physics.Vec(0, 200),
			normal:  physics.Vec(0, -1),
			overlap: 5,
			wantPos: physics.Vec(0, -5),
			wantVel: physics.Vec(0, -140),
		},
		{
			name:    "glancing with friction and snap",
			vel:     physics.Vec(100, 50),
			normal:  physics.Vec(0, -1),
			overlap: 5,
			wantPos: physics.Vec(0, -5),
			wantVel: physics.Vec(80, 0),
		},
		{
			name:    "slow wall touch comes to rest",
			vel:     physics.Vec(-5, 0),
			normal:  physics.Vec(2, 0),
			overlap: 1,
			wantPos: physics.Vec(1, 0),
			wantVel: physics.Vec(0, 0),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &body.Circle{Vel: tt.vel}
			resolvers.DefaultBouncy().Resolve(c, nil, tt.overlap, tt.normal)

			assert.InDelta(t, tt.wantPos.X, c.Pos.X, 1e-9)
			assert.InDelta(t, tt.wantPos.Y, c.Pos.Y, 1e-9)
			assert.InDelta(t, tt.wantVel.X, c.Vel.X, 1e-9)
			assert.InDelta(t, tt.wantVel.Y, c.Vel.Y, 1e-9)
		})
	}
}

func TestBouncyCustomTuning(t *testing.T) {
	elastic := resolvers.Bouncy{Damping: 1}
	c := &body.Circle{Vel: physics.Vec(3, 4)}

	elastic.Resolve(c, nil, 0, physics.Vec(1, 0))
	assert.InDelta(t, -3, c.Vel.X, 1e-9)
	assert.InDelta(t, 4, c.Vel.Y, 1e-9)
}
