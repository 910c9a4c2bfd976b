package world

import (
	"math/rand/v2"

	"github.com/zeusync/collide/internal/core/systems/physics"
)

// NewRand returns the generator GenerateLevel expects for a seed.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// GenerateLevel scatters obstacles and enemies over the arena. Obstacles
// keep ObstacleMargin from the edges, enemies EnemyMargin. Every draw comes
// from rng, so equal seeds produce equal levels.
func (w *World) GenerateLevel(rng *rand.Rand) {
	c := w.cfg

	obstacles := between(rng, c.Obstacles)
	for range obstacles {
		x := rng.Float64()*(c.Width-2*c.ObstacleMargin) + c.ObstacleMargin
		y := rng.Float64()*(c.Height-2*c.ObstacleMargin) + c.ObstacleMargin

		size := c.ObstacleSize
		if rng.Float64() < c.LargeObstacleChance {
			size = c.LargeObstacleSize
		}
		width := size.Min + rng.Float64()*(size.Max-size.Min)
		height := size.Min + rng.Float64()*(size.Max-size.Min)
		angle := rng.Float64() * 360

		w.SpawnObstacle(physics.Vec(x, y), width, height, angle)
	}

	enemies := between(rng, c.Enemies)
	for range enemies {
		x := rng.Float64()*(c.Width-2*c.EnemyMargin) + c.EnemyMargin
		y := rng.Float64()*(c.Height-2*c.EnemyMargin) + c.EnemyMargin
		w.SpawnEnemy(physics.Vec(x, y))
	}
}

func between(rng *rand.Rand, r Range) int {
	return r.Min + rng.IntN(r.Max-r.Min+1)
}

// Populate generates the level for the configured seed and spawns the player
// at the arena origin.
func (w *World) Populate() EntityID {
	w.GenerateLevel(NewRand(w.cfg.Seed))
	return w.SpawnPlayer(physics.Zero)
}
