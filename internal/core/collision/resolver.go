package collision

import (
	"math"

	"github.com/zeusync/collide/internal/core/observability/log"
	"github.com/zeusync/collide/internal/core/systems/physics"
)

// Outcome describes a confirmed overlap between objects A and B.
type Outcome struct {
	// Overlap is the unsigned penetration depth along Normal.
	Overlap float64
	// Normal is the unit axis of minimum overlap.
	Normal physics.Vector2
	// Direction is +1 or -1. A is pushed out by Normal * Overlap * Direction,
	// B by the opposite.
	Direction float64
}

// MTV returns the minimum translation vector that separates A from B.
func (o Outcome) MTV() physics.Vector2 {
	return o.Normal.Scale(o.Overlap * o.Direction)
}

type status uint8

const (
	statusSeparated status = iota
	statusColliding
	statusSkipped
)

type pairStrategies struct {
	shapeA, shapeB       ShapeStrategy
	responseA, responseB ResponseStrategy
}

// Resolver runs the SAT test on one pair at a time. It keeps a scratch axis
// buffer and is not safe for concurrent use.
type Resolver struct {
	registry *Registry
	logger   log.Log
	axes     []physics.Vector2
}

func NewResolver(registry *Registry, logger log.Log) *Resolver {
	if registry == nil {
		registry = Default()
	}
	return &Resolver{
		registry: registry,
		logger:   log.OrNop(logger).Named("collision"),
		axes:     make([]physics.Vector2, 0, 8),
	}
}

// Registry returns the registry strategies are looked up in.
func (r *Resolver) Registry() *Registry {
	return r.registry
}

// Test reports whether a and b overlap without invoking any response or
// callback. Only shape strategies are required.
func (r *Resolver) Test(a, b Collidable) (Outcome, bool) {
	shapeA, err := r.shapeOf(a)
	if err != nil {
		r.skip(a, b, err)
		return Outcome{}, false
	}
	shapeB, err := r.shapeOf(b)
	if err != nil {
		r.skip(a, b, err)
		return Outcome{}, false
	}
	return r.separate(a, b, shapeA, shapeB)
}

// ResolvePair tests a and b and, on overlap, invokes both response strategies
// followed by both collision callbacks, A first.
func (r *Resolver) ResolvePair(a, b Collidable) (Outcome, bool) {
	out, st := r.resolve(a, b)
	return out, st == statusColliding
}

func (r *Resolver) resolve(a, b Collidable) (Outcome, status) {
	ps, err := r.lookup(a, b)
	if err != nil {
		r.skip(a, b, err)
		return Outcome{}, statusSkipped
	}

	out, ok := r.separate(a, b, ps.shapeA, ps.shapeB)
	if !ok {
		return Outcome{}, statusSeparated
	}

	ps.responseA.Resolve(a, b, out.Overlap*out.Direction, out.Normal)
	ps.responseB.Resolve(b, a, out.Overlap*-out.Direction, out.Normal)

	if n, ok := a.(Notifier); ok {
		n.OnCollision()
	}
	if n, ok := b.(Notifier); ok {
		n.OnCollision()
	}
	return out, statusColliding
}

// separate finds the axis of minimum overlap. A single separating axis ends
// the search. An empty axis set reports no collision.
func (r *Resolver) separate(a, b Collidable, shapeA, shapeB ShapeStrategy) (Outcome, bool) {
	r.axes = append(r.axes[:0], shapeA.Normals(a, b, shapeB)...)
	r.axes = append(r.axes, shapeB.Normals(b, a, shapeA)...)

	minOverlap := math.Inf(1)
	var best Outcome
	found := false

	for _, axis := range r.axes {
		n := axis.Normalize()
		projA := shapeA.Project(a, n)
		projB := shapeB.Project(b, n)

		towardB := projB.Max - projA.Min
		towardA := projA.Max - projB.Min
		if towardB <= 0 || towardA <= 0 {
			return Outcome{}, false
		}

		overlap, direction := towardA, -1.0
		if towardB < towardA {
			overlap, direction = towardB, 1.0
		}

		// strict less: the first axis wins ties
		if overlap < minOverlap {
			minOverlap = overlap
			best = Outcome{Overlap: overlap, Normal: n, Direction: direction}
			found = true
		}
	}

	if !found || minOverlap <= 0 || math.IsInf(minOverlap, 1) {
		return Outcome{}, false
	}
	return best, true
}

func (r *Resolver) shapeOf(c Collidable) (ShapeStrategy, error) {
	s, ok := r.registry.Shape(c.ShapeKind())
	if !ok {
		return nil, ErrShapeNotRegistered
	}
	if !s.Accepts(c) {
		return nil, ErrIncompatibleShape
	}
	return s, nil
}

func (r *Resolver) responseOf(c Collidable) (ResponseStrategy, error) {
	s, ok := r.registry.Response(c.ResponseKind())
	if !ok {
		return nil, ErrResponseNotRegistered
	}
	if !s.Accepts(c) {
		return nil, ErrIncompatibleResponse
	}
	return s, nil
}

func (r *Resolver) lookup(a, b Collidable) (ps pairStrategies, err error) {
	if ps.shapeA, err = r.shapeOf(a); err != nil {
		return ps, err
	}
	if ps.responseA, err = r.responseOf(a); err != nil {
		return ps, err
	}
	if ps.shapeB, err = r.shapeOf(b); err != nil {
		return ps, err
	}
	if ps.responseB, err = r.responseOf(b); err != nil {
		return ps, err
	}
	return ps, nil
}

func (r *Resolver) skip(a, b Collidable, err error) {
	r.logger.Warn("collision pair skipped",
		log.Stringer("shape_a", a.ShapeKind()),
		log.Stringer("response_a", a.ResponseKind()),
		log.Stringer("shape_b", b.ShapeKind()),
		log.Stringer("response_b", b.ResponseKind()),
		log.Error(err),
	)
}
