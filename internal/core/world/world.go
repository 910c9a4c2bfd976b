// Package world is a small arena game driven by the collision engine: a
// player, chasing enemies, static obstacles and projectiles. It is single
// threaded and deterministic for a given seed and input sequence.
package world

import (
	"fmt"
	"slices"

	"github.com/google/uuid"

	"github.com/zeusync/collide/internal/core/collision"
	"github.com/zeusync/collide/internal/core/collision/colliders"
	"github.com/zeusync/collide/internal/core/collision/resolvers"
	"github.com/zeusync/collide/internal/core/events/bus"
	"github.com/zeusync/collide/internal/core/observability/log"
	"github.com/zeusync/collide/internal/core/render"
	"github.com/zeusync/collide/internal/core/systems/physics"
	"github.com/zeusync/collide/pkg/sequence"
)

type identified interface {
	ID() EntityID
}

// Input is the held direction keys for one tick.
type Input struct {
	Up, Down, Left, Right bool
}

type World struct {
	cfg       Config
	logger    log.Log
	events    bus.EventBus
	scheduler *collision.Scheduler
	session   uuid.UUID

	nextID   EntityID
	entities []*Entity
	index    map[EntityID]*Entity
	player   EntityID
	tick     uint64

	views    []collision.Collidable
	contacts []Contact
	pending  []EntityID
	marked   map[EntityID]struct{}
}

// New builds an empty world. A nil scheduler gets one over the default
// registry; a nil bus gets a private one. The world subscribes to the
// scheduler's contacts, so a scheduler serves a single world.
func New(cfg Config, scheduler *collision.Scheduler, events bus.EventBus, logger log.Log) (*World, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	logger = log.OrNop(logger)
	if scheduler == nil {
		scheduler = collision.NewScheduler(collision.NewResolver(nil, logger))
	}
	if events == nil {
		events = bus.New()
	}

	w := &World{
		cfg:       cfg,
		events:    events,
		scheduler: scheduler,
		session:   uuid.New(),
		index:     make(map[EntityID]*Entity),
		marked:    make(map[EntityID]struct{}),
	}
	w.logger = logger.Named("world").With(log.Stringer("session", w.session))
	scheduler.OnContact(w.recordContact)
	return w, nil
}

func (w *World) Config() Config                  { return w.cfg }
func (w *World) Events() bus.EventBus            { return w.events }
func (w *World) Scheduler() *collision.Scheduler { return w.scheduler }
func (w *World) Session() uuid.UUID              { return w.session }
func (w *World) Ticks() uint64                   { return w.tick }
func (w *World) Len() int                        { return len(w.entities) }
func (w *World) Registry() *collision.Registry   { return w.scheduler.Resolver().Registry() }
func (w *World) Views() []collision.Collidable   { return w.views }
func (w *World) PlayerID() (EntityID, bool)      { return w.player, w.player != 0 }

// Entity returns a copy of the entity with the given ID.
func (w *World) Entity(id EntityID) (Entity, bool) {
	e, ok := w.index[id]
	if !ok {
		return Entity{}, false
	}
	return e.clone(), true
}

// Entities returns copies of all entities in spawn order.
func (w *World) Entities() []Entity {
	out := make([]Entity, len(w.entities))
	for i, e := range w.entities {
		out[i] = e.clone()
	}
	return out
}

// Count returns the number of live entities of kind k.
func (w *World) Count(k Kind) int {
	return w.ofKind(k).Count()
}

func (w *World) ofKind(k Kind) *sequence.Iterator[*Entity] {
	return sequence.From(w.entities).Filter(func(e *Entity) bool { return e.Kind == k })
}

// Player returns a copy of the player entity.
func (w *World) Player() (Entity, bool) {
	if w.player == 0 {
		return Entity{}, false
	}
	return w.Entity(w.player)
}

// SetCollisionEnabled toggles whether id takes part in the next sweeps.
func (w *World) SetCollisionEnabled(id EntityID, enabled bool) bool {
	e, ok := w.index[id]
	if ok {
		e.Collider.Enabled = enabled
	}
	return ok
}

func (w *World) circle(radius float64, response collision.ResponseKind) Collider {
	return Collider{Shape: colliders.KindCircle, Response: response, Radius: radius, Enabled: true}
}

// SpawnPlayer adds the player. A world has at most one player; spawning
// another replaces the reference but keeps the old entity.
func (w *World) SpawnPlayer(pos physics.Vector2) EntityID {
	id := w.spawn(&Entity{Kind: KindPlayer, Position: pos, Collider: w.circle(w.cfg.EntityRadius, resolvers.KindPushOut)})
	w.player = id
	return id
}

func (w *World) SpawnEnemy(pos physics.Vector2) EntityID {
	return w.spawn(&Entity{Kind: KindEnemy, Position: pos, Collider: w.circle(w.cfg.EntityRadius, resolvers.KindPushOut)})
}

// SpawnObstacle adds a static rectangle whose unrotated top-left corner is
// origin. angle is in degrees.
func (w *World) SpawnObstacle(origin physics.Vector2, width, height, angle float64) EntityID {
	return w.spawn(&Entity{
		Kind:     KindObstacle,
		Position: origin,
		Collider: Collider{
			Shape:    colliders.KindRectangle,
			Response: resolvers.KindStatic,
			Width:    width,
			Height:   height,
			Angle:    angle,
			Enabled:  true,
		},
	})
}

func (w *World) SpawnProjectile(pos, vel physics.Vector2) EntityID {
	return w.spawn(&Entity{
		Kind:     KindProjectile,
		Position: pos,
		Velocity: vel,
		Collider: w.circle(w.cfg.ProjectileRadius, resolvers.KindProjectileDestroy),
		Projectile: &ProjectileState{
			Damage:   w.cfg.ProjectileDamage,
			Lifetime: w.cfg.ProjectileLifetime,
		},
	})
}

// Shoot fires a projectile from `from` toward target. It spawns
// SpawnDistance ahead along the aim and travels at ProjectileSpeed. A
// zero-length aim fires nothing.
func (w *World) Shoot(from, target physics.Vector2) (EntityID, bool) {
	aim := target.Sub(from)
	if aim.IsZero() {
		return 0, false
	}
	dir := aim.Normalize()
	pos := from.Add(dir.Scale(w.cfg.SpawnDistance))
	return w.SpawnProjectile(pos, dir.Scale(w.cfg.ProjectileSpeed)), true
}

func (w *World) spawn(e *Entity) EntityID {
	w.nextID++
	e.ID = w.nextID
	w.entities = append(w.entities, e)
	w.index[e.ID] = e

	w.logger.Debug("entity spawned",
		log.Uint64("id", uint64(e.ID)),
		log.Stringer("kind", e.Kind),
		log.Float64("x", e.Position.X),
		log.Float64("y", e.Position.Y),
	)
	w.publish(EventSpawned, Spawned{ID: e.ID, Kind: e.Kind})
	return e.ID
}

func (w *World) destroy(id EntityID, reason string) bool {
	e, ok := w.index[id]
	if !ok {
		return false
	}
	delete(w.index, id)
	if i := slices.Index(w.entities, e); i >= 0 {
		w.entities = slices.Delete(w.entities, i, i+1)
	}
	if w.player == id {
		w.player = 0
	}

	w.logger.Debug("entity destroyed",
		log.Uint64("id", uint64(id)),
		log.Stringer("kind", e.Kind),
		log.String("reason", reason),
	)
	w.publish(EventDestroyed, Destroyed{ID: id, Kind: e.Kind, Reason: reason})
	return true
}

// Tick advances the world by one step: movement, projectile aging, one
// collision sweep, then removal of projectiles that hit something.
func (w *World) Tick(in Input) collision.SweepStats {
	w.tick++

	w.movePlayer(in)
	w.chasePlayer()
	w.advanceProjectiles()

	w.rebuildViews()
	w.contacts = w.contacts[:0]
	stats := w.scheduler.Update(w.views)

	for _, c := range w.contacts {
		w.publish(EventContact, c)
	}
	w.flushPending()
	return stats
}

func (w *World) movePlayer(in Input) {
	p, ok := w.index[w.player]
	if !ok {
		return
	}
	speed := w.cfg.PlayerSpeed
	if in.Up {
		p.Position.Y -= speed
	}
	if in.Down {
		p.Position.Y += speed
	}
	if in.Left {
		p.Position.X -= speed
	}
	if in.Right {
		p.Position.X += speed
	}
}

func (w *World) chasePlayer() {
	p, ok := w.index[w.player]
	if !ok {
		return
	}
	for e := range w.ofKind(KindEnemy).Seq() {
		d := p.Position.Sub(e.Position)
		dist := d.Length()
		if dist > 0 {
			e.Position = e.Position.Add(d.Scale(w.cfg.EnemySpeed / dist))
		}
	}
}

func (w *World) advanceProjectiles() {
	dt := w.cfg.TickDelta
	var expired []EntityID
	for _, e := range w.entities {
		if e.Projectile == nil {
			continue
		}
		e.Projectile.Age += dt
		if e.Projectile.Age > e.Projectile.Lifetime {
			expired = append(expired, e.ID)
			continue
		}
		e.Position = e.Position.Add(e.Velocity.Scale(dt.Seconds()))
	}
	for _, id := range expired {
		w.destroy(id, ReasonExpired)
	}
}

func (w *World) rebuildViews() {
	w.views = w.views[:0]
	for _, e := range w.entities {
		v := w.viewOf(e)
		if collision.Enabled(v) {
			w.views = append(w.views, v)
		}
	}
}

func (w *World) recordContact(i, j int, out collision.Outcome) {
	w.contacts = append(w.contacts, Contact{
		Tick:    w.tick,
		A:       w.views[i].(identified).ID(),
		B:       w.views[j].(identified).ID(),
		Overlap: out.Overlap,
		Normal:  out.Normal,
	})
}

// onCollision runs inside the sweep. Projectiles are only marked here; the
// callback fires more than once per contact and removal waits for the sweep
// to finish.
func (w *World) onCollision(e *Entity) {
	if e.Kind != KindProjectile {
		return
	}
	if _, ok := w.marked[e.ID]; ok {
		return
	}
	w.marked[e.ID] = struct{}{}
	w.pending = append(w.pending, e.ID)
}

func (w *World) flushPending() {
	for _, id := range w.pending {
		w.destroy(id, ReasonCollision)
	}
	w.pending = w.pending[:0]
	clear(w.marked)
}

// DebugDraw draws every collidable entity onto s.
func (w *World) DebugDraw(s render.Surface) {
	w.rebuildViews()
	collision.DebugDrawAll(w.Registry(), w.views, s)
}

func (w *World) publish(eventType string, payload any) {
	if err := w.events.Publish(bus.NewEvent(eventType, eventSource, payload)); err != nil {
		w.logger.Warn("event handler failed", log.String("event", eventType), log.Error(err))
	}
}

func (w *World) String() string {
	return fmt.Sprintf("world %s tick=%d entities=%d", w.session, w.tick, len(w.entities))
}
