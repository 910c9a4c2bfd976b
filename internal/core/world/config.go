package world

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/zeusync/collide/internal/core/collision/resolvers"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid world config")

// Range is an inclusive integer range.
type Range struct {
	Min int `json:"min" yaml:"min"`
	Max int `json:"max" yaml:"max"`
}

// Span is a half-open float range [Min, Max).
type Span struct {
	Min float64 `json:"min" yaml:"min"`
	Max float64 `json:"max" yaml:"max"`
}

// Config holds the arena, movement, projectile and level generation settings.
type Config struct {
	Width  float64 `json:"width" yaml:"width"`
	Height float64 `json:"height" yaml:"height"`
	Seed   uint64  `json:"seed" yaml:"seed"`

	TickDelta    time.Duration `json:"tick_delta" yaml:"tick_delta"`
	PlayerSpeed  float64       `json:"player_speed" yaml:"player_speed"`
	EnemySpeed   float64       `json:"enemy_speed" yaml:"enemy_speed"`
	EntityRadius float64       `json:"entity_radius" yaml:"entity_radius"`

	ProjectileSpeed    float64       `json:"projectile_speed" yaml:"projectile_speed"`
	ProjectileRadius   float64       `json:"projectile_radius" yaml:"projectile_radius"`
	ProjectileDamage   float64       `json:"projectile_damage" yaml:"projectile_damage"`
	ProjectileLifetime time.Duration `json:"projectile_lifetime" yaml:"projectile_lifetime"`
	SpawnDistance      float64       `json:"spawn_distance" yaml:"spawn_distance"`

	Obstacles           Range   `json:"obstacles" yaml:"obstacles"`
	Enemies             Range   `json:"enemies" yaml:"enemies"`
	ObstacleSize        Span    `json:"obstacle_size" yaml:"obstacle_size"`
	LargeObstacleSize   Span    `json:"large_obstacle_size" yaml:"large_obstacle_size"`
	LargeObstacleChance float64 `json:"large_obstacle_chance" yaml:"large_obstacle_chance"`
	ObstacleMargin      float64 `json:"obstacle_margin" yaml:"obstacle_margin"`
	EnemyMargin         float64 `json:"enemy_margin" yaml:"enemy_margin"`

	Bouncy   resolvers.Bouncy `json:"bouncy" yaml:"bouncy"`
	LogLevel string           `json:"log_level" yaml:"log_level"`
}

func DefaultConfig() Config {
	return Config{
		Width:  1280,
		Height: 720,
		Seed:   1,

		TickDelta:    16 * time.Millisecond,
		PlayerSpeed:  2,
		EnemySpeed:   1,
		EntityRadius: 20,

		ProjectileSpeed:    300,
		ProjectileRadius:   4,
		ProjectileDamage:   10,
		ProjectileLifetime: 3 * time.Second,
		SpawnDistance:      50,

		Obstacles:           Range{Min: 5, Max: 12},
		Enemies:             Range{Min: 3, Max: 8},
		ObstacleSize:        Span{Min: 50, Max: 200},
		LargeObstacleSize:   Span{Min: 50, Max: 400},
		LargeObstacleChance: 0.1,
		ObstacleMargin:      100,
		EnemyMargin:         50,

		Bouncy:   resolvers.DefaultBouncy(),
		LogLevel: "info",
	}
}

// LoadConfig overlays YAML from r onto DefaultConfig and validates the
// result. An empty document yields the defaults.
func LoadConfig(r io.Reader) (Config, error) {
	cfg := DefaultConfig()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("decode world config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadConfigFile is LoadConfig on the named file.
func LoadConfigFile(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("open world config: %w", err)
	}
	defer f.Close()
	return LoadConfig(f)
}

// Validate reports every problem at once, each wrapping ErrInvalidConfig.
func (c Config) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf("%w: %s", ErrInvalidConfig, fmt.Sprintf(format, args...)))
		}
	}

	check(c.Width > 2*c.ObstacleMargin && c.Width > 2*c.EnemyMargin, "width %v leaves no room inside the margins", c.Width)
	check(c.Height > 2*c.ObstacleMargin && c.Height > 2*c.EnemyMargin, "height %v leaves no room inside the margins", c.Height)
	check(c.ObstacleMargin >= 0 && c.EnemyMargin >= 0, "margins must not be negative")
	check(c.TickDelta > 0, "tick_delta must be positive")
	check(c.PlayerSpeed >= 0, "player_speed must not be negative")
	check(c.EnemySpeed >= 0, "enemy_speed must not be negative")
	check(c.EntityRadius > 0, "entity_radius must be positive")
	check(c.ProjectileSpeed > 0, "projectile_speed must be positive")
	check(c.ProjectileRadius > 0, "projectile_radius must be positive")
	check(c.ProjectileLifetime > 0, "projectile_lifetime must be positive")
	check(c.SpawnDistance >= 0, "spawn_distance must not be negative")
	check(c.Obstacles.Min >= 0 && c.Obstacles.Min <= c.Obstacles.Max, "obstacles range %d..%d", c.Obstacles.Min, c.Obstacles.Max)
	check(c.Enemies.Min >= 0 && c.Enemies.Min <= c.Enemies.Max, "enemies range %d..%d", c.Enemies.Min, c.Enemies.Max)
	check(c.ObstacleSize.Min > 0 && c.ObstacleSize.Min <= c.ObstacleSize.Max, "obstacle_size range %v..%v", c.ObstacleSize.Min, c.ObstacleSize.Max)
	check(c.LargeObstacleSize.Min > 0 && c.LargeObstacleSize.Min <= c.LargeObstacleSize.Max, "large_obstacle_size range %v..%v", c.LargeObstacleSize.Min, c.LargeObstacleSize.Max)
	check(c.LargeObstacleChance >= 0 && c.LargeObstacleChance <= 1, "large_obstacle_chance %v outside [0,1]", c.LargeObstacleChance)
	check(c.Bouncy.Damping >= 0 && c.Bouncy.Damping <= 1, "bouncy damping %v outside [0,1]", c.Bouncy.Damping)
	check(c.Bouncy.Friction >= 0 && c.Bouncy.Friction <= 1, "bouncy friction %v outside [0,1]", c.Bouncy.Friction)
	check(c.Bouncy.SnapX >= 0 && c.Bouncy.SnapY >= 0, "bouncy snap thresholds must not be negative")

	return errors.Join(errs...)
}
