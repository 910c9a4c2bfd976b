package collision

import (
	"time"

	"github.com/zeusync/collide/pkg/sequence"
)

// ContactFunc is called after a pair's responses and callbacks have run.
// i and j index the slice passed to Update. Implementations must not mutate
// that slice.
type ContactFunc func(i, j int, out Outcome)

// SweepStats summarises one Update pass.
type SweepStats struct {
	Objects  int
	Pairs    int
	Contacts int
	Skipped  int
	Duration time.Duration
}

// Metrics accumulates SweepStats across passes.
type Metrics struct {
	Sweeps          uint64
	PairsTested     uint64
	Contacts        uint64
	Skipped         uint64
	TotalDuration   time.Duration
	MaxDuration     time.Duration
	LastSweep       SweepStats
	AverageDuration time.Duration
}

// Scheduler evaluates every unordered pair of a collidable set once per tick.
// The pass is synchronous and exhaustive: O(n^2), no pruning, no caching.
type Scheduler struct {
	resolver  *Resolver
	onContact []ContactFunc
	metrics   Metrics
}

func NewScheduler(resolver *Resolver) *Scheduler {
	return &Scheduler{resolver: resolver}
}

// OnContact registers fn to be called for each colliding pair.
func (s *Scheduler) OnContact(fn ContactFunc) {
	s.onContact = append(s.onContact, fn)
}

// Update runs the resolver on (0,1), (0,2), ..., (1,2), ... in that order.
// Responses and callbacks must not add or remove elements of objs; removal
// requests are to be collected and applied after Update returns.
func (s *Scheduler) Update(objs []Collidable) SweepStats {
	start := time.Now()
	stats := SweepStats{Objects: len(objs)}

	for i, j := range sequence.Pairs(len(objs)) {
		stats.Pairs++
		out, st := s.resolver.resolve(objs[i], objs[j])
		switch st {
		case statusColliding:
			stats.Contacts++
			for _, fn := range s.onContact {
				fn(i, j, out)
			}
		case statusSkipped:
			stats.Skipped++
		}
	}

	stats.Duration = time.Since(start)
	s.record(stats)
	return stats
}

func (s *Scheduler) record(stats SweepStats) {
	m := &s.metrics
	m.Sweeps++
	m.PairsTested += uint64(stats.Pairs)
	m.Contacts += uint64(stats.Contacts)
	m.Skipped += uint64(stats.Skipped)
	m.TotalDuration += stats.Duration
	if stats.Duration > m.MaxDuration {
		m.MaxDuration = stats.Duration
	}
	m.AverageDuration = m.TotalDuration / time.Duration(m.Sweeps)
	m.LastSweep = stats
}

// Metrics returns the accumulated sweep metrics.
func (s *Scheduler) Metrics() Metrics {
	return s.metrics
}

// Resolver returns the resolver used for each pair.
func (s *Scheduler) Resolver() *Resolver {
	return s.resolver
}
