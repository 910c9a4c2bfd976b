//go:build wireinject
// +build wireinject

// The build tag makes sure the stub is not built in the final build.

package injector

import (
	"github.com/google/wire"

	"github.com/zeusync/collide/internal/core/world"
	"github.com/zeusync/collide/internal/server"
)

func InitializeWorld(cfg world.Config) (*world.World, error) {
	wire.Build(WorldSet)
	return nil, nil
}

func InitializeDebugServer(cfg world.Config, serverConfig server.Config) (*server.DebugServer, error) {
	wire.Build(DebugServerSet)
	return nil, nil
}
