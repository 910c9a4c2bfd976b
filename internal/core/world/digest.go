package world

import (
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"
)

// Digest hashes the ordered entity state: id, kind, position, velocity and
// projectile age. Two worlds fed the same seed and inputs have equal digests.
func (w *World) Digest() uint64 {
	h := xxhash.New()
	var buf [8]byte
	put := func(v uint64) {
		binary.LittleEndian.PutUint64(buf[:], v)
		_, _ = h.Write(buf[:])
	}

	put(w.tick)
	for _, e := range w.entities {
		put(uint64(e.ID))
		put(uint64(e.Kind))
		put(math.Float64bits(e.Position.X))
		put(math.Float64bits(e.Position.Y))
		put(math.Float64bits(e.Velocity.X))
		put(math.Float64bits(e.Velocity.Y))
		if e.Projectile != nil {
			put(uint64(e.Projectile.Age))
		}
	}
	return h.Sum64()
}
