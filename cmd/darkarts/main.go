package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/LarssonMartin1998/dark-arts-defens-ldjam55/internal/ai"
	"github.com/LarssonMartin1998/dark-arts-defens-ldjam55/internal/animation"
	"github.com/LarssonMartin1998/dark-arts-defens-ldjam55/internal/config"
	"github.com/LarssonMartin1998/dark-arts-defens-ldjam55/internal/model"
	"github.com/LarssonMartin1998/dark-arts-defens-ldjam55/internal/spawn"
	"github.com/LarssonMartin1998/dark-arts-defens-ldjam55/internal/units"
	"github.com/LarssonMartin1998/dark-arts-defens-ldjam55/internal/world"
)

const GameConfigPath = "config/game.yaml"

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		slog.Info("shutting down", "signal", sig)
		cancel()
	}()

	if err := run(ctx); err != nil {
		slog.Error("fatal", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfgPath := GameConfigPath
	if p := os.Getenv("DARKARTS_CONFIG"); p != "" {
		cfgPath = p
	}
	cfg, err := config.LoadGame(cfgPath)
	if err != nil {
		return fmt.Errorf("loading game config: %w", err)
	}

	logLevel := parseLogLevel(cfg.LogLevel)
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	})))

	ai.EnableDebugLogging(logLevel == slog.LevelDebug)

	slog.Info("dark arts defense starting",
		"log_level", cfg.LogLevel,
		"starting_mana", cfg.StartingMana)

	// Validate all static unit data before anything can spawn. An authoring
	// defect aborts startup here rather than surfacing mid-game.
	if err := units.LoadUnitData(); err != nil {
		return fmt.Errorf("loading unit data: %w", err)
	}

	registry, err := units.NewRegistry()
	if err != nil {
		return fmt.Errorf("building unit registry: %w", err)
	}

	w := world.New()
	aiMgr := ai.NewTickManager(cfg.AITickInterval)
	animator := animation.NewSpriteInstantiator(w)
	spawner := spawn.NewSpawner(w, animator, aiMgr)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := aiMgr.Start(gctx); err != nil {
			return fmt.Errorf("AI tick manager: %w", err)
		}
		return nil
	})

	// Opening arena state: one warrior for the player, one knight marching in.
	for _, req := range []struct {
		unitType model.UnitType
		team     model.Team
		position model.Position
	}{
		{model.UnitWarrior, model.TeamPlayer, model.Position{X: -200, Y: 0}},
		{model.UnitKnight, model.TeamEnemy, model.Position{X: 600, Y: 0}},
	} {
		entity, err := spawner.Spawn(req.unitType, req.team, req.position)
		if err != nil {
			return fmt.Errorf("spawning %s: %w", req.unitType, err)
		}
		slog.Info("unit spawned",
			"type", req.unitType,
			"team", req.team,
			"entity", entity,
			"cost", registry.Lookup(req.unitType).Cost)
	}

	slog.Info("arena initialized",
		"entities", w.EntityCount(),
		"controllers", aiMgr.Count())

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("game error: %w", err)
	}

	spawner.DespawnAll()
	return nil
}

// parseLogLevel converts string log level to slog.Level.
// Defaults to Info if invalid or empty.
func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
