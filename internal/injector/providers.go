package injector

import (
	"fmt"

	"github.com/google/wire"

	"github.com/zeusync/collide/internal/core/collision"
	"github.com/zeusync/collide/internal/core/collision/colliders"
	"github.com/zeusync/collide/internal/core/collision/resolvers"
	"github.com/zeusync/collide/internal/core/events/bus"
	"github.com/zeusync/collide/internal/core/observability/log"
	"github.com/zeusync/collide/internal/core/world"
	"github.com/zeusync/collide/internal/server"
)

// WorldSet builds a world over a private registry: logger, registry,
// resolver, scheduler, bus, world.
var WorldSet = wire.NewSet(
	ProvideLogger,
	ProvideRegistry,
	ProvideResolver,
	collision.NewScheduler,
	bus.New,
	world.New,
	wire.Bind(new(log.Log), new(*log.Logger)),
)

// DebugServerSet builds the websocket debug server.
var DebugServerSet = wire.NewSet(
	ProvideLogger,
	server.NewDebugServer,
	wire.Bind(new(log.Log), new(*log.Logger)),
)

func ProvideLogger(cfg world.Config) *log.Logger {
	return log.New(log.ParseLevel(cfg.LogLevel))
}

// ProvideRegistry returns a registry holding the built-in strategies, with
// the bouncy response tuned by cfg.
func ProvideRegistry(cfg world.Config) (*collision.Registry, error) {
	reg := collision.NewRegistry()
	if err := colliders.Register(reg); err != nil {
		return nil, fmt.Errorf("provide registry: %w", err)
	}
	if err := resolvers.Register(reg, cfg.Bouncy); err != nil {
		return nil, fmt.Errorf("provide registry: %w", err)
	}
	return reg, nil
}

func ProvideResolver(reg *collision.Registry, logger log.Log) *collision.Resolver {
	return collision.NewResolver(reg, logger)
}
