package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/zeusync/collide/internal/core/observability/log"
	"github.com/zeusync/collide/internal/core/render"
	"github.com/zeusync/collide/internal/core/world"
	"github.com/zeusync/collide/internal/injector"
	"github.com/zeusync/collide/internal/server"
)

func main() {
	configPath := flag.String("config", "", "world config file (yaml)")
	addr := flag.String("addr", "", "listen address, overrides the default")
	fireEvery := flag.Uint64("fire-every", 30, "ticks between pilot shots, 0 disables")
	flag.Parse()

	cfg := world.DefaultConfig()
	if *configPath != "" {
		var err error
		if cfg, err = world.LoadConfigFile(*configPath); err != nil {
			fmt.Fprintln(os.Stderr, "load config:", err)
			os.Exit(1)
		}
	}

	serverConfig := server.DefaultConfig()
	if *addr != "" {
		serverConfig.ListenAddr = *addr
	}

	if err := run(cfg, serverConfig, world.Pilot{FireEvery: *fireEvery}); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cfg world.Config, serverConfig server.Config, pilot world.Pilot) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	w, err := injector.InitializeWorld(cfg)
	if err != nil {
		return fmt.Errorf("initialize world: %w", err)
	}
	srv, err := injector.InitializeDebugServer(cfg, serverConfig)
	if err != nil {
		return fmt.Errorf("initialize debug server: %w", err)
	}

	logger := log.Provide().Named("main")
	defer func() { _ = log.Provide().Sync() }()

	if err = srv.Start(ctx, serverConfig.ListenAddr); err != nil {
		return err
	}
	w.Populate()
	logger.Info("arena running",
		log.String("addr", srv.Addr().String()),
		log.Stringer("session", w.Session()),
		log.Int("entities", w.Len()),
	)

	ticker := time.NewTicker(cfg.TickDelta)
	defer ticker.Stop()

	rec := render.NewRecorder()
loop:
	for {
		select {
		case <-ctx.Done():
			break loop
		case <-ticker.C:
			stats := pilot.Step(w)
			w.DebugDraw(rec)
			frame := server.Frame{
				Session:  w.Session().String(),
				Tick:     w.Ticks(),
				Digest:   w.Digest(),
				Commands: rec.Reset(),
			}
			if err = srv.Broadcast(frame); err != nil {
				logger.Warn("broadcast failed", log.Error(err))
			}
			if stats.Contacts > 0 {
				logger.Debug("sweep", log.Uint64("tick", w.Ticks()), log.Int("contacts", stats.Contacts))
			}
		}
	}

	logger.Info("shutting down", log.Uint64("ticks", w.Ticks()))
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Stop(shutdownCtx)
}
