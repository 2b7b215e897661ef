package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/specialistvlad/citytrail/internal/agent"
	"github.com/specialistvlad/citytrail/internal/citymap"
	"github.com/specialistvlad/citytrail/internal/config"
	"github.com/specialistvlad/citytrail/internal/ctxlog"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW   io.Writer
	logger *slog.Logger
	config *Config
	model  *config.Model
	cities *citymap.Map
	agents []*agent.Agent
	turns  int
	seed   int64
}

// NewApp is the constructor for the main application. Trace output goes to
// outW and logs to logW. With no loaders, the HCL and YAML loaders are used.
//
// A scenario that cannot be loaded or is invalid is a fatal startup error,
// and NewApp panics with it.
func NewApp(outW, logW io.Writer, cfg *Config, loaders ...config.Loader) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	if len(loaders) == 0 {
		loaders = defaultLoaders()
	}

	model, err := loadModel(ctx, loaders, cfg.MapPath)
	if err != nil {
		panic(fmt.Errorf("failed to load scenario: %w", err))
	}
	logger.Debug("Scenario loaded and validated.", "cities", model.Map.NumCities, "roads", len(model.Roads), "agents", len(model.Agents))

	cities, err := buildMap(model)
	if err != nil {
		panic(fmt.Errorf("failed to build map: %w", err))
	}

	turns := DefaultTurns
	var seed int64
	seeded := false
	if sim := model.Simulation; sim != nil {
		if sim.Turns != nil {
			turns = *sim.Turns
		}
		if sim.Seed != nil {
			seed, seeded = *sim.Seed, true
		}
	}
	if cfg.Turns != nil {
		turns = *cfg.Turns
	}
	if cfg.Seed != nil {
		seed, seeded = *cfg.Seed, true
	}
	if !seeded {
		seed = time.Now().UnixNano()
	}
	logger.Info("Scenario ready.", "cities", cities.NumCities(), "roads", cities.NumRoads(), "agents", len(model.Agents), "turns", turns, "seed", seed)

	return &App{
		outW:   outW,
		logger: logger,
		config: cfg,
		model:  model,
		cities: cities,
		agents: buildAgents(model, cities, seed),
		turns:  turns,
		seed:   seed,
	}
}

// Map returns the city map built from the scenario. This is primarily for testing.
func (a *App) Map() *citymap.Map {
	return a.cities
}

// Agents returns the agents built from the scenario. This is primarily for testing.
func (a *App) Agents() []*agent.Agent {
	return a.agents
}

// Seed returns the seed the agents' random sources were derived from.
func (a *App) Seed() int64 {
	return a.seed
}

// Turns returns the number of turns Run will play.
func (a *App) Turns() int {
	return a.turns
}
