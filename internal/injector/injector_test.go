package injector

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zeusync/collide/internal/core/collision"
	"github.com/zeusync/collide/internal/core/collision/resolvers"
	"github.com/zeusync/collide/internal/core/world"
	"github.com/zeusync/collide/internal/server"
)

func TestInitializeWorld(t *testing.T) {
	cfg := world.DefaultConfig()
	cfg.LogLevel = "error"
	cfg.Bouncy.Damping = 0.4

	w, err := InitializeWorld(cfg)
	require.NoError(t, err)

	reg := w.Registry()
	assert.NotSame(t, collision.Default(), reg)
	assert.Equal(t, []collision.ShapeKind{"circle", "rectangle"}, reg.ShapeKinds())
	assert.Len(t, reg.ResponseKinds(), 4)

	bouncy, ok := reg.Response(resolvers.KindBouncy)
	require.True(t, ok)
	assert.Equal(t, 0.4, bouncy.(resolvers.Bouncy).Damping)

	w.Populate()
	w.Tick(world.Input{})
	assert.Equal(t, uint64(1), w.Ticks())
}

func TestInitializeWorldInvalidConfig(t *testing.T) {
	cfg := world.DefaultConfig()
	cfg.TickDelta = 0

	_, err := InitializeWorld(cfg)
	assert.ErrorIs(t, err, world.ErrInvalidConfig)
}

func TestInitializeDebugServer(t *testing.T) {
	s, err := InitializeDebugServer(world.DefaultConfig(), server.DefaultConfig())
	require.NoError(t, err)
	assert.Zero(t, s.Clients())

	bad := server.DefaultConfig()
	bad.MaxClients = 0
	_, err = InitializeDebugServer(world.DefaultConfig(), bad)
	assert.ErrorIs(t, err, server.ErrInvalidConfig)
}
