package server

import "errors"

var (
	ErrServerNotRunning     = errors.New("debug server is not running")
	ErrServerAlreadyRunning = errors.New("debug server is already running")
	ErrMaxClientsReached    = errors.New("viewer limit reached")
	ErrInvalidConfig        = errors.New("invalid debug server configuration")
	ErrListenerFailed       = errors.New("failed to create listener")
)
