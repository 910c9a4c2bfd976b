package collision

import (
	"fmt"
	"slices"
	"sync"
)

// Registry maps kinds to strategies. Registration is expected at startup; the
// lock keeps late registration from racing readers but the hot loop only reads.
type Registry struct {
	mu        sync.RWMutex
	shapes    map[ShapeKind]ShapeStrategy
	responses map[ResponseKind]ResponseStrategy
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		shapes:    make(map[ShapeKind]ShapeStrategy),
		responses: make(map[ResponseKind]ResponseStrategy),
	}
}

var (
	defaultRegistry     *Registry
	defaultRegistryOnce sync.Once
)

// Default returns the process-wide registry that strategy packages install
// themselves into on load.
func Default() *Registry {
	defaultRegistryOnce.Do(func() { defaultRegistry = NewRegistry() })
	return defaultRegistry
}

// RegisterShape installs s for kind, replacing any previous strategy.
func (r *Registry) RegisterShape(kind ShapeKind, s ShapeStrategy) error {
	if kind == "" {
		return fmt.Errorf("register shape: %w", ErrEmptyKind)
	}
	if s == nil {
		return fmt.Errorf("register shape %q: %w", kind, ErrNilStrategy)
	}
	r.mu.Lock()
	r.shapes[kind] = s
	r.mu.Unlock()
	return nil
}

// UnregisterShape removes kind and reports whether it was present.
func (r *Registry) UnregisterShape(kind ShapeKind) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.shapes[kind]
	delete(r.shapes, kind)
	return ok
}

func (r *Registry) Shape(kind ShapeKind) (ShapeStrategy, bool) {
	r.mu.RLock()
	s, ok := r.shapes[kind]
	r.mu.RUnlock()
	return s, ok
}

// RegisterResponse installs s for kind, replacing any previous strategy.
func (r *Registry) RegisterResponse(kind ResponseKind, s ResponseStrategy) error {
	if kind == "" {
		return fmt.Errorf("register response: %w", ErrEmptyKind)
	}
	if s == nil {
		return fmt.Errorf("register response %q: %w", kind, ErrNilStrategy)
	}
	r.mu.Lock()
	r.responses[kind] = s
	r.mu.Unlock()
	return nil
}

// UnregisterResponse removes kind and reports whether it was present.
func (r *Registry) UnregisterResponse(kind ResponseKind) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.responses[kind]
	delete(r.responses, kind)
	return ok
}

func (r *Registry) Response(kind ResponseKind) (ResponseStrategy, bool) {
	r.mu.RLock()
	s, ok := r.responses[kind]
	r.mu.RUnlock()
	return s, ok
}

// ShapeKinds lists registered shape kinds in sorted order.
func (r *Registry) ShapeKinds() []ShapeKind {
	r.mu.RLock()
	out := make([]ShapeKind, 0, len(r.shapes))
	for k := range r.shapes {
		out = append(out, k)
	}
	r.mu.RUnlock()
	slices.Sort(out)
	return out
}

// ResponseKinds lists registered response kinds in sorted order.
func (r *Registry) ResponseKinds() []ResponseKind {
	r.mu.RLock()
	out := make([]ResponseKind, 0, len(r.responses))
	for k := range r.responses {
		out = append(out, k)
	}
	r.mu.RUnlock()
	slices.Sort(out)
	return out
}
