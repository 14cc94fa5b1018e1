package bot

import (
	"fmt"
	"log/slog"

	"github.com/mcoot/seabattle-go/internal/dependencies/random"
	"github.com/mcoot/seabattle-go/internal/model"
)

// Strategy names accepted by NewStrategy
const (
	StrategyShuffledPool = "shuffled-pool"
)

// StrategyNames lists every strategy NewStrategy can build
func StrategyNames() []string {
	return []string{StrategyShuffledPool}
}

// DisplayName labels a strategy for the player; unknown names are returned as-is
func DisplayName(name string) string {
	switch name {
	case StrategyShuffledPool:
		return "Shuffled pool"
	default:
		return name
	}
}

// Strategy defines how a bot chooses where to shoot
type Strategy interface {
	// ChooseTarget returns the next coordinate to fire at
	ChooseTarget() model.Coordinate
}

// NewStrategy builds a fresh strategy by name for a board of the given size
func NewStrategy(name string, size int, rnd random.Random, logger *slog.Logger) (Strategy, error) {
	switch name {
	case StrategyShuffledPool:
		return NewShuffledPoolStrategy(size, rnd, logger), nil
	default:
		return nil, fmt.Errorf("%w: %s", model.ErrUnknownStrategy, name)
	}
}

// ShuffledPoolStrategy fires at every cell exactly once in a random order
type ShuffledPoolStrategy struct {
	size   int
	pool   []model.Coordinate
	random random.Random
	logger *slog.Logger
}

// NewShuffledPoolStrategy builds the pool of all size*size cells and shuffles it once
func NewShuffledPoolStrategy(size int, rnd random.Random, logger *slog.Logger) *ShuffledPoolStrategy {
	pool := make([]model.Coordinate, 0, size*size)
	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			pool = append(pool, model.Coordinate{Row: row, Col: col})
		}
	}
	random.Shuffle(rnd, len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})

	return &ShuffledPoolStrategy{
		size:   size,
		pool:   pool,
		random: rnd,
		logger: logger.With(slog.String("component", "shuffled-pool-strategy")),
	}
}

// ChooseTarget pops the last coordinate of the pool.
// An empty pool means the game should already be over; a uniform random cell is returned instead.
func (s *ShuffledPoolStrategy) ChooseTarget() model.Coordinate {
	if len(s.pool) == 0 {
		target := model.Coordinate{Row: s.random.Intn(s.size), Col: s.random.Intn(s.size)}
		s.logger.Warn("target pool exhausted, falling back to a random cell",
			slog.String("target", target.String()),
		)
		return target
	}

	last := len(s.pool) - 1
	target := s.pool[last]
	s.pool = s.pool[:last]
	return target
}

// Remaining returns how many untried coordinates are left in the pool
func (s *ShuffledPoolStrategy) Remaining() int {
	return len(s.pool)
}

var _ Strategy = (*ShuffledPoolStrategy)(nil)
