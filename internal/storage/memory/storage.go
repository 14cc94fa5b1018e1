package memory

import (
	"context"
	"sync"

	"github.com/mcoot/seabattle-go/internal/model"
	"github.com/mcoot/seabattle-go/internal/storage"
)

// Storage is an in-memory implementation of the storage interface
type Storage struct {
	mu sync.RWMutex

	games     map[model.GameID]*model.Game
	summaries []*model.GameSummary // completion order
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		games: make(map[model.GameID]*model.Game),
	}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Game operations

func (s *Storage) SaveGame(ctx context.Context, game *model.Game) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.games[game.ID] = game
	return nil
}

func (s *Storage) GetGame(ctx context.Context, id model.GameID) (*model.Game, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	game, ok := s.games[id]
	if !ok {
		return nil, model.ErrGameNotFound
	}
	return game, nil
}

func (s *Storage) DeleteGame(ctx context.Context, id model.GameID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.games, id)
	return nil
}

// Summary operations

func (s *Storage) SaveSummary(ctx context.Context, summary *model.GameSummary) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, existing := range s.summaries {
		if existing.ID == summary.ID {
			s.summaries[i] = summary
			return nil
		}
	}
	s.summaries = append(s.summaries, summary)
	return nil
}

func (s *Storage) ListSummaries(ctx context.Context) ([]*model.GameSummary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]*model.GameSummary, len(s.summaries))
	copy(result, s.summaries)
	return result, nil
}
