package world

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zeusync/collide/internal/core/systems/physics"
)

func TestPilotInput(t *testing.T) {
	w := newWorld(t, DefaultConfig())
	assert.Equal(t, Input{}, Pilot{}.Input(w))

	w.SpawnPlayer(physics.Vec(0, 0))
	assert.Equal(t, Input{Down: true, Right: true}, Pilot{}.Input(w))

	w.index[w.player].Position = physics.Vec(1000, 361)
	assert.Equal(t, Input{Left: true}, Pilot{}.Input(w))
}

func TestPilotTarget(t *testing.T) {
	w := newWorld(t, DefaultConfig())
	w.SpawnPlayer(physics.Vec(0, 0))

	_, ok := Pilot{}.Target(w)
	assert.False(t, ok)

	w.SpawnEnemy(physics.Vec(300, 0))
	w.SpawnEnemy(physics.Vec(0, -120))
	target, ok := Pilot{}.Target(w)
	require.True(t, ok)
	assert.Equal(t, physics.Vec(0, -120), target)
}

func TestPilotStepFires(t *testing.T) {
	w := newWorld(t, DefaultConfig())
	w.SpawnPlayer(physics.Vec(0, 0))
	w.SpawnEnemy(physics.Vec(300, 0))

	pilot := Pilot{FireEvery: 2}
	pilot.Step(w)
	assert.Zero(t, w.Count(KindProjectile))
	pilot.Step(w)
	assert.Equal(t, 1, w.Count(KindProjectile))

	Pilot{}.Step(w)
	assert.Equal(t, uint64(3), w.Ticks())
	assert.Equal(t, 1, w.Count(KindProjectile))
}
