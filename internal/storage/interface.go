package storage

import (
	"context"

	"github.com/mcoot/seabattle-go/internal/model"
)

// Storage defines the interface for keeping games during a session
type Storage interface {
	// Game operations
	SaveGame(ctx context.Context, game *model.Game) error
	GetGame(ctx context.Context, id model.GameID) (*model.Game, error)
	DeleteGame(ctx context.Context, id model.GameID) error

	// Summary operations
	SaveSummary(ctx context.Context, summary *model.GameSummary) error
	ListSummaries(ctx context.Context) ([]*model.GameSummary, error)
}
