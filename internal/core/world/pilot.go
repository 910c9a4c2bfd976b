package world

import (
	"github.com/zeusync/collide/internal/core/collision"
	"github.com/zeusync/collide/internal/core/systems/physics"
)

// Pilot drives the player for unattended runs. It walks toward the arena
// center and fires at the nearest enemy every FireEvery ticks.
type Pilot struct {
	FireEvery uint64
}

// Input returns the keys that move the player toward the arena center. Axes
// within one step of the target are left alone.
func (p Pilot) Input(w *World) Input {
	player, ok := w.Player()
	if !ok {
		return Input{}
	}
	d := physics.Vec(w.cfg.Width/2, w.cfg.Height/2).Sub(player.Position)
	step := w.cfg.PlayerSpeed
	return Input{
		Up:    d.Y < -step,
		Down:  d.Y > step,
		Left:  d.X < -step,
		Right: d.X > step,
	}
}

// Target returns the position of the enemy nearest to the player.
func (p Pilot) Target(w *World) (physics.Vector2, bool) {
	player, ok := w.Player()
	if !ok {
		return physics.Zero, false
	}
	var (
		best  physics.Vector2
		bestD = -1.0
	)
	for e := range w.ofKind(KindEnemy).Seq() {
		if d := e.Position.Sub(player.Position).Length(); bestD < 0 || d < bestD {
			best, bestD = e.Position, d
		}
	}
	return best, bestD >= 0
}

// Step ticks the world once with the pilot's input, then fires when the
// tick count is a multiple of FireEvery.
func (p Pilot) Step(w *World) collision.SweepStats {
	stats := w.Tick(p.Input(w))
	if p.FireEvery == 0 || w.Ticks()%p.FireEvery != 0 {
		return stats
	}
	if target, ok := p.Target(w); ok {
		player, _ := w.Player()
		w.Shoot(player.Position, target)
	}
	return stats
}
