package placement

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/mcoot/seabattle-go/internal/dependencies/random"
	"github.com/mcoot/seabattle-go/internal/model"
	"github.com/mcoot/seabattle-go/internal/services/board"
)

const (
	// DefaultAttemptsPerShip is how many random spots are tried for one ship before the board is discarded
	DefaultAttemptsPerShip = 3000
)

// Placer fills a fresh board with the configured fleet
type Placer interface {
	Place(ctx context.Context) (*model.Board, error)
}

// Config bounds the automated placement search
type Config struct {
	// AttemptsPerShip is the sampling budget per ship; <= 0 means DefaultAttemptsPerShip
	AttemptsPerShip int
	// MaxRestarts caps whole-board restarts; <= 0 means no cap
	MaxRestarts int
}

// DefaultConfig returns the placement settings used in normal play
func DefaultConfig() Config {
	return Config{
		AttemptsPerShip: DefaultAttemptsPerShip,
	}
}

// RandomPlacer places the whole fleet at random positions
type RandomPlacer struct {
	boards *board.Service
	random random.Random
	cfg    Config
	logger *slog.Logger
}

// NewRandomPlacer creates a RandomPlacer
func NewRandomPlacer(boards *board.Service, rnd random.Random, cfg Config, logger *slog.Logger) *RandomPlacer {
	if cfg.AttemptsPerShip <= 0 {
		cfg.AttemptsPerShip = DefaultAttemptsPerShip
	}
	return &RandomPlacer{
		boards: boards,
		random: rnd,
		cfg:    cfg,
		logger: logger.With(slog.String("component", "random-placer")),
	}
}

// Place samples anchors and orientations until every ship fits.
// A board where some ship ran out of attempts is thrown away and placement starts over.
func (p *RandomPlacer) Place(ctx context.Context) (*model.Board, error) {
	fleet := p.boards.Fleet()

	for restart := 0; ; restart++ {
		if p.cfg.MaxRestarts > 0 && restart > p.cfg.MaxRestarts {
			return nil, fmt.Errorf("%w: gave up after %d restarts", model.ErrPlacementExhausted, p.cfg.MaxRestarts)
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		b, err := p.tryPlace(fleet)
		if err == nil {
			p.logger.Debug("fleet placed",
				slog.Int("restarts", restart),
				slog.Int("ships", fleet.Size()),
			)
			return b, nil
		}
		if !errors.Is(err, model.ErrPlacementExhausted) {
			return nil, err
		}

		p.logger.Debug("restarting placement", slog.Int("restart", restart+1), slog.String("reason", err.Error()))
	}
}

// tryPlace makes one pass over the fleet on a fresh board
func (p *RandomPlacer) tryPlace(fleet model.Fleet) (*model.Board, error) {
	b := p.boards.NewBoard()
	size := b.Size()

	for _, length := range fleet {
		placed := false
		for attempt := 0; attempt < p.cfg.AttemptsPerShip; attempt++ {
			anchor := model.Coordinate{Row: p.random.Intn(size), Col: p.random.Intn(size)}
			orientation := model.Orientation(1 + p.random.Intn(2))

			err := b.AddShip(model.NewShip(length, anchor, orientation))
			if err == nil {
				placed = true
				break
			}
			if !errors.Is(err, model.ErrOutOfBounds) && !errors.Is(err, model.ErrCellOccupied) {
				return nil, err
			}
		}
		if !placed {
			return nil, fmt.Errorf("%w: no room for ship of length %d", model.ErrPlacementExhausted, length)
		}
	}

	return b, nil
}

// Prompter is the interactive side of placement: it supplies anchors and
// orientations and is told about the outcome of each attempt
type Prompter interface {
	// AskAnchor returns the anchor for the next ship
	AskAnchor(ctx context.Context, length int) (model.Coordinate, error)
	// AskOrientation is only called for ships longer than one cell
	AskOrientation(ctx context.Context, length int) (model.Orientation, error)
	// PlacementFailed reports a rejected attempt; the same ship is asked again
	PlacementFailed(length int, err error)
	// ShipPlaced reports a successful placement
	ShipPlaced(board *model.Board, ship *model.Ship)
	// BoardReset reports that the board filled up and placement starts over
	BoardReset(board *model.Board)
}

// InteractivePlacer places the fleet from player input
type InteractivePlacer struct {
	boards   *board.Service
	prompter Prompter
	logger   *slog.Logger
}

// NewInteractivePlacer creates an InteractivePlacer
func NewInteractivePlacer(boards *board.Service, prompter Prompter, logger *slog.Logger) *InteractivePlacer {
	return &InteractivePlacer{
		boards:   boards,
		prompter: prompter,
		logger:   logger.With(slog.String("component", "interactive-placer")),
	}
}

// Place asks for each ship in fleet order. Rejected ships are asked again on
// the same board; a board with no empty cell left before the fleet is done is
// discarded and placement restarts from the first ship.
func (p *InteractivePlacer) Place(ctx context.Context) (*model.Board, error) {
	fleet := p.boards.Fleet()

	for {
		b, complete, err := p.placeFleet(ctx, fleet)
		if err != nil {
			return nil, err
		}
		if complete {
			return b, nil
		}
		p.logger.Info("board saturated, restarting placement")
		p.prompter.BoardReset(b)
	}
}

// placeFleet returns complete=false when the board saturated early
func (p *InteractivePlacer) placeFleet(ctx context.Context, fleet model.Fleet) (*model.Board, bool, error) {
	b := p.boards.NewBoard()

	for i, length := range fleet {
		ship, err := p.placeShip(ctx, b, length)
		if err != nil {
			return nil, false, err
		}
		p.prompter.ShipPlaced(b, ship)

		if i < len(fleet)-1 && b.IsSaturated() {
			return b, false, nil
		}
	}

	return b, true, nil
}

// placeShip keeps asking until a ship of the given length is on the board
func (p *InteractivePlacer) placeShip(ctx context.Context, b *model.Board, length int) (*model.Ship, error) {
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		ship, err := p.askShip(ctx, length)
		if err == nil {
			err = p.boards.AddShip(b, ship)
		}
		if err == nil {
			return ship, nil
		}
		if !isRecoverable(err) {
			return nil, err
		}
		p.prompter.PlacementFailed(length, err)
	}
}

func (p *InteractivePlacer) askShip(ctx context.Context, length int) (*model.Ship, error) {
	anchor, err := p.prompter.AskAnchor(ctx, length)
	if err != nil {
		return nil, err
	}

	// Orientation is irrelevant for a single cell
	orientation := model.Vertical
	if length > 1 {
		orientation, err = p.prompter.AskOrientation(ctx, length)
		if err != nil {
			return nil, err
		}
	}

	return model.NewShip(length, anchor, orientation), nil
}

// isRecoverable reports whether a placement error should lead to a re-prompt
func isRecoverable(err error) bool {
	return errors.Is(err, model.ErrOutOfBounds) ||
		errors.Is(err, model.ErrCellOccupied) ||
		errors.Is(err, model.ErrInvalidOrientation) ||
		errors.Is(err, model.ErrCoordinateRange) ||
		errors.Is(err, model.ErrInvalidInput) ||
		errors.Is(err, model.ErrInvalidInputShape)
}

var (
	_ Placer = (*RandomPlacer)(nil)
	_ Placer = (*InteractivePlacer)(nil)
)
