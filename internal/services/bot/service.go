package bot

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/mcoot/seabattle-go/internal/dependencies/random"
	"github.com/mcoot/seabattle-go/internal/model"
)

// seat identifies one automated side of one game
type seat struct {
	game model.GameID
	side model.Side
}

// Service hands out targeting strategies to the automated sides of running games
type Service struct {
	size   int
	random random.Random
	logger *slog.Logger

	mu    sync.Mutex
	seats map[seat]Strategy
}

// NewService creates a new bot Service for boards of the given size
func NewService(size int, rnd random.Random, logger *slog.Logger) *Service {
	return &Service{
		size:   size,
		random: rnd,
		logger: logger.With(slog.String("component", "bot-service")),
		seats:  make(map[seat]Strategy),
	}
}

// Assign gives side a fresh strategy for the game, replacing any previous one
func (s *Service) Assign(gameID model.GameID, side model.Side, strategy string) error {
	st, err := NewStrategy(strategy, s.size, s.random, s.logger)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.seats[seat{game: gameID, side: side}] = st
	s.mu.Unlock()

	s.logger.Debug("bot assigned",
		slog.String("game_id", string(gameID)),
		slog.String("side", string(side)),
		slog.String("strategy", strategy),
	)
	return nil
}

// IsAutomated reports whether side is played by a bot in the game
func (s *Service) IsAutomated(gameID model.GameID, side model.Side) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.seats[seat{game: gameID, side: side}]
	return ok
}

// ChooseTarget asks the strategy assigned to side for its next shot
func (s *Service) ChooseTarget(gameID model.GameID, side model.Side) (model.Coordinate, error) {
	s.mu.Lock()
	st, ok := s.seats[seat{game: gameID, side: side}]
	s.mu.Unlock()
	if !ok {
		return model.Coordinate{}, fmt.Errorf("%w: %s in game %s", model.ErrBotNotAssigned, side, gameID)
	}
	return st.ChooseTarget(), nil
}

// Release drops every strategy held for the game
func (s *Service) Release(gameID model.GameID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for k := range s.seats {
		if k.game == gameID {
			delete(s.seats, k)
		}
	}
}
