package world

import (
	"github.com/zeusync/collide/internal/core/systems/physics"
)

// Event types published on the world's bus.
const (
	EventContact   = "collision.contact"
	EventSpawned   = "entity.spawned"
	EventDestroyed = "entity.destroyed"
)

// Destruction reasons.
const (
	ReasonCollision = "collision"
	ReasonExpired   = "expired"
)

const eventSource = "world"

// Contact is the payload of EventContact. A and B follow sweep order.
type Contact struct {
	Tick    uint64          `json:"tick"`
	A       EntityID        `json:"a"`
	B       EntityID        `json:"b"`
	Overlap float64         `json:"overlap"`
	Normal  physics.Vector2 `json:"normal"`
}

// Spawned is the payload of EventSpawned.
type Spawned struct {
	ID   EntityID `json:"id"`
	Kind Kind     `json:"kind"`
}

// Destroyed is the payload of EventDestroyed.
type Destroyed struct {
	ID     EntityID `json:"id"`
	Kind   Kind     `json:"kind"`
	Reason string   `json:"reason"`
}
