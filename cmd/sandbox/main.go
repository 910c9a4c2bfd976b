// Command sandbox runs the arena headless for a range of seeds and prints a
// digest per run. Equal digests across machines mean equal simulations.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/zeusync/collide/internal/core/render"
	"github.com/zeusync/collide/internal/core/world"
	"github.com/zeusync/collide/internal/injector"
	"github.com/zeusync/collide/pkg/concurrent"
)

type result struct {
	seed     uint64
	entities int
	enemies  int
	contacts int
	skipped  int
	digest   uint64
}

func main() {
	configPath := flag.String("config", "", "world config file (yaml)")
	ticks := flag.Int("ticks", 600, "ticks per run")
	seeds := flag.Int("seeds", 1, "number of consecutive seeds, starting at the configured seed")
	fireEvery := flag.Uint64("fire-every", 30, "ticks between pilot shots, 0 disables")
	pngDir := flag.String("png", "", "write the final frame of each run as a PNG into this directory")
	parallel := flag.Int("parallel", runtime.GOMAXPROCS(0), "runs in flight")
	flag.Parse()

	cfg := world.DefaultConfig()
	if *configPath != "" {
		var err error
		if cfg, err = world.LoadConfigFile(*configPath); err != nil {
			fmt.Fprintln(os.Stderr, "load config:", err)
			os.Exit(1)
		}
	}
	if cfg.LogLevel == world.DefaultConfig().LogLevel {
		cfg.LogLevel = "warn"
	}

	list, err := seedRange(cfg.Seed, *seeds)
	if err == nil {
		err = checkRun(*ticks, *parallel)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		flag.Usage()
		os.Exit(2)
	}

	pilot := world.Pilot{FireEvery: *fireEvery}
	results, err := concurrent.Map(context.Background(), list, *parallel, func(ctx context.Context, seed uint64) (result, error) {
		return simulate(ctx, cfg, seed, *ticks, pilot, *pngDir)
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	fmt.Printf("%-8s %8s %8s %9s %8s  %s\n", "seed", "entities", "enemies", "contacts", "skipped", "digest")
	for _, r := range results {
		fmt.Printf("%-8d %8d %8d %9d %8d  %016x\n", r.seed, r.entities, r.enemies, r.contacts, r.skipped, r.digest)
	}
}

var errBadFlag = errors.New("invalid flag")

// seedRange returns n consecutive seeds starting at first.
func seedRange(first uint64, n int) ([]uint64, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: -seeds must be at least 1, got %d", errBadFlag, n)
	}
	list := make([]uint64, 0, n)
	for i := range n {
		list = append(list, first+uint64(i))
	}
	return list, nil
}

func checkRun(ticks, parallel int) error {
	switch {
	case ticks < 0:
		return fmt.Errorf("%w: -ticks must not be negative, got %d", errBadFlag, ticks)
	case parallel < 1:
		return fmt.Errorf("%w: -parallel must be at least 1, got %d", errBadFlag, parallel)
	}
	return nil
}

func simulate(ctx context.Context, cfg world.Config, seed uint64, ticks int, pilot world.Pilot, pngDir string) (result, error) {
	cfg.Seed = seed
	w, err := injector.InitializeWorld(cfg)
	if err != nil {
		return result{}, fmt.Errorf("seed %d: %w", seed, err)
	}
	w.Populate()

	for range ticks {
		if err = ctx.Err(); err != nil {
			return result{}, err
		}
		pilot.Step(w)
	}

	m := w.Scheduler().Metrics()
	r := result{
		seed:     seed,
		entities: w.Len(),
		enemies:  w.Count(world.KindEnemy),
		contacts: int(m.Contacts),
		skipped:  int(m.Skipped),
		digest:   w.Digest(),
	}

	if pngDir != "" {
		dc := render.NewCanvas(int(cfg.Width), int(cfg.Height))
		w.DebugDraw(dc)
		path := filepath.Join(pngDir, fmt.Sprintf("seed-%d.png", seed))
		if err = dc.SavePNG(path); err != nil {
			return result{}, fmt.Errorf("seed %d: %w", seed, err)
		}
	}
	return r, nil
}
