package board

import (
	"log/slog"

	"github.com/mcoot/seabattle-go/internal/model"
)

// Config describes the boards a game is played on
type Config struct {
	Size  int
	Fleet model.Fleet
}

// DefaultConfig returns the standard 6x6 board with the standard fleet
func DefaultConfig() Config {
	return Config{
		Size:  model.BoardSize,
		Fleet: model.StandardFleet(),
	}
}

// Service provides board operations
type Service struct {
	cfg    Config
	logger *slog.Logger
}

// New creates a new BoardService
func New(cfg Config, logger *slog.Logger) *Service {
	if cfg.Size == 0 {
		cfg.Size = model.BoardSize
	}
	if len(cfg.Fleet) == 0 {
		cfg.Fleet = model.StandardFleet()
	}
	return &Service{
		cfg:    cfg,
		logger: logger.With(slog.String("component", "board-service")),
	}
}

// Size returns the grid dimension of boards created by this service
func (s *Service) Size() int {
	return s.cfg.Size
}

// Fleet returns the ship lengths each board must hold, in placement order
func (s *Service) Fleet() model.Fleet {
	fleet := make(model.Fleet, len(s.cfg.Fleet))
	copy(fleet, s.cfg.Fleet)
	return fleet
}

// NewBoard creates an empty board sized for the configured fleet
func (s *Service) NewBoard() *model.Board {
	return model.NewBoard(s.cfg.Size, s.cfg.Fleet.Size())
}

// AddShip places a ship on the board
func (s *Service) AddShip(board *model.Board, ship *model.Ship) error {
	if err := board.AddShip(ship); err != nil {
		s.logger.Debug("ship rejected",
			slog.Int("length", ship.Length),
			slog.String("anchor", ship.Anchor.String()),
			slog.String("orientation", ship.Orientation.String()),
			slog.String("error", err.Error()),
		)
		return err
	}
	s.logger.Debug("ship placed",
		slog.Int("length", ship.Length),
		slog.String("anchor", ship.Anchor.String()),
		slog.String("orientation", ship.Orientation.String()),
	)
	return nil
}

// Shot fires at a coordinate on the board
func (s *Service) Shot(board *model.Board, target model.Coordinate) (model.ShotResult, error) {
	result, err := board.Shot(target)
	if err != nil {
		return "", err
	}
	s.logger.Debug("shot resolved",
		slog.String("target", target.String()),
		slog.String("result", string(result)),
		slog.Int("living_ships", board.LivingShips()),
	)
	return result, nil
}

// Interface for dependency injection
type ServiceInterface interface {
	Size() int
	Fleet() model.Fleet
	NewBoard() *model.Board
	AddShip(board *model.Board, ship *model.Ship) error
	Shot(board *model.Board, target model.Coordinate) (model.ShotResult, error)
}

var _ ServiceInterface = (*Service)(nil)
