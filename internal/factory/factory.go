package factory

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/mcoot/seabattle-go/internal/dependencies/clock"
	"github.com/mcoot/seabattle-go/internal/dependencies/random"
	"github.com/mcoot/seabattle-go/internal/services/board"
	"github.com/mcoot/seabattle-go/internal/services/bot"
	"github.com/mcoot/seabattle-go/internal/services/game"
	"github.com/mcoot/seabattle-go/internal/services/placement"
	"github.com/mcoot/seabattle-go/internal/storage"
	"github.com/mcoot/seabattle-go/internal/storage/memory"
	"github.com/mcoot/seabattle-go/internal/storage/redis"
)

// Storage backends
const (
	StorageMemory = "memory"
	StorageRedis  = "redis"
)

// App contains all wired application components
type App struct {
	// Storage
	Storage storage.Storage

	// External dependencies
	Clock  clock.Clock
	Random random.Random

	// Services
	BoardService   *board.Service
	Placer         *placement.RandomPlacer
	BotService     *bot.Service
	GameController *game.Controller

	Logger *slog.Logger
}

// Config holds configuration for the application factory
type Config struct {
	// Seed makes every random choice reproducible when non-zero.
	// If zero, crypto/rand is used.
	Seed int64
	// Board selects the grid size and fleet (optional)
	// If zero value, defaults to board.DefaultConfig()
	Board board.Config
	// Placement bounds automated fleet placement (optional)
	// If zero value, defaults to placement.DefaultConfig()
	Placement placement.Config
	// OpponentStrategy names the automated opponent's targeting policy (optional)
	// If empty, defaults to bot.StrategyShuffledPool
	OpponentStrategy string
	// Storage selects where running games and summaries are kept (optional)
	// If empty, defaults to StorageMemory
	Storage string
	// Redis configures the redis backend; ignored for StorageMemory
	Redis redis.Config
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	// Use no-op logger if not provided
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	// Create external dependencies
	clk := clock.New()
	var rnd random.Random = random.New()
	if cfg.Seed != 0 {
		rnd = random.NewSeeded(cfg.Seed)
	}

	store, err := newStorage(cfg)
	if err != nil {
		return nil, err
	}

	return newWithDependencies(store, clk, rnd, cfg, logger), nil
}

func newStorage(cfg Config) (storage.Storage, error) {
	switch cfg.Storage {
	case "", StorageMemory:
		return memory.New(), nil
	case StorageRedis:
		return redis.New(cfg.Redis)
	default:
		return nil, fmt.Errorf("unknown storage backend %q: must be %s or %s", cfg.Storage, StorageMemory, StorageRedis)
	}
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(store storage.Storage, clk clock.Clock, rnd random.Random, cfg Config, logger *slog.Logger) *App {
	if cfg.OpponentStrategy == "" {
		cfg.OpponentStrategy = bot.StrategyShuffledPool
	}

	boardService := board.New(cfg.Board, logger)
	placer := placement.NewRandomPlacer(boardService, rnd, cfg.Placement, logger)
	botService := bot.NewService(boardService.Size(), rnd, logger)
	gameController := game.NewController(store, boardService, botService, cfg.OpponentStrategy, clk, logger)

	return &App{
		Storage:        store,
		Clock:          clk,
		Random:         rnd,
		BoardService:   boardService,
		Placer:         placer,
		BotService:     botService,
		GameController: gameController,
		Logger:         logger,
	}
}

// Close releases the storage connection, if it holds one
func (a *App) Close() error {
	if closer, ok := a.Storage.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}

// InteractivePlacer returns a placer that takes ship positions from prompter
func (a *App) InteractivePlacer(prompter placement.Prompter) *placement.InteractivePlacer {
	return placement.NewInteractivePlacer(a.BoardService, prompter, a.Logger)
}
