package collision

import "errors"

// Registry errors
var (
	ErrEmptyKind   = errors.New("strategy kind is empty")
	ErrNilStrategy = errors.New("strategy is nil")
)

// Pair skip reasons, reported through the logger. They never escape the resolver.
var (
	ErrShapeNotRegistered    = errors.New("shape kind not registered")
	ErrResponseNotRegistered = errors.New("response kind not registered")
	ErrIncompatibleShape     = errors.New("shape strategy cannot read object")
	ErrIncompatibleResponse  = errors.New("response strategy cannot read object")
)
