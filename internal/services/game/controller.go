package game

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/mcoot/seabattle-go/internal/dependencies/clock"
	"github.com/mcoot/seabattle-go/internal/model"
	"github.com/mcoot/seabattle-go/internal/services/board"
	"github.com/mcoot/seabattle-go/internal/services/bot"
	"github.com/mcoot/seabattle-go/internal/storage"
)

const (
	// MaxOpponentShots is a safety limit for one automated turn
	MaxOpponentShots = 1000
)

// ShotOutcome describes one resolved shot and the state it left the game in
type ShotOutcome struct {
	Side   model.Side
	Target model.Coordinate
	Result model.ShotResult
	State  model.GameState
}

// NextState is the turn transition after a shot by the active side.
// Hits and non-final sinks keep the turn, a miss passes it, sinking the last ship ends the game.
func NextState(state model.GameState, result model.ShotResult, defenderDefeated bool) model.GameState {
	side := state.ActiveSide()
	if side == "" {
		return state
	}

	switch result {
	case model.ShotHit:
		return state
	case model.ShotSunk:
		if defenderDefeated {
			return model.WonState(side)
		}
		return state
	default:
		return model.TurnState(side.Other())
	}
}

// Controller manages the game state machine and turn flow
type Controller struct {
	storage          storage.Storage
	boardService     *board.Service
	botService       *bot.Service
	opponentStrategy string
	clock            clock.Clock
	logger           *slog.Logger
}

// NewController creates a new game Controller.
// Every game it creates gets an automated opponent playing opponentStrategy.
func NewController(
	storage storage.Storage,
	boardService *board.Service,
	botService *bot.Service,
	opponentStrategy string,
	clock clock.Clock,
	logger *slog.Logger,
) *Controller {
	return &Controller{
		storage:          storage,
		boardService:     boardService,
		botService:       botService,
		opponentStrategy: opponentStrategy,
		clock:            clock,
		logger:           logger.With(slog.String("component", "game-controller")),
	}
}

// CreateGame starts a game between two placed boards; the human shoots first
func (c *Controller) CreateGame(ctx context.Context, human, opponent *model.Board) (*model.Game, error) {
	if human == nil || opponent == nil {
		return nil, fmt.Errorf("%w: both boards are required", model.ErrInvariantViolation)
	}

	now := c.clock.Now()
	game := &model.Game{
		ID:    model.GameID(uuid.NewString()),
		State: model.GameStateHumanTurn,
		Boards: map[model.Side]*model.Board{
			model.SideHuman:    human,
			model.SideOpponent: opponent,
		},
		Shots:     make(map[model.Side]int),
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := c.botService.Assign(game.ID, model.SideOpponent, c.opponentStrategy); err != nil {
		return nil, err
	}

	if err := c.storage.SaveGame(ctx, game); err != nil {
		c.logger.Error("failed to save game",
			slog.String("game_id", string(game.ID)),
			slog.String("error", err.Error()),
		)
		c.botService.Release(game.ID)
		return nil, err
	}

	c.logger.Info("game created",
		slog.String("game_id", string(game.ID)),
		slog.String("opponent_strategy", bot.DisplayName(c.opponentStrategy)),
	)

	return game, nil
}

// GetGame retrieves a game by ID
func (c *Controller) GetGame(ctx context.Context, gameID model.GameID) (*model.Game, error) {
	return c.storage.GetGame(ctx, gameID)
}

// AutomateSide hands a side of a running game to a bot
func (c *Controller) AutomateSide(ctx context.Context, gameID model.GameID, side model.Side, strategy string) error {
	game, err := c.storage.GetGame(ctx, gameID)
	if err != nil {
		return err
	}
	if game.State.IsTerminal() {
		return model.ErrGameComplete
	}
	return c.botService.Assign(gameID, side, strategy)
}

// FireHuman resolves one shot chosen by the human.
// Board errors come back unchanged and leave the game untouched so the caller can ask again.
func (c *Controller) FireHuman(ctx context.Context, gameID model.GameID, target model.Coordinate) (*ShotOutcome, error) {
	game, err := c.storage.GetGame(ctx, gameID)
	if err != nil {
		return nil, err
	}

	if err := checkTurn(game, model.SideHuman); err != nil {
		return nil, err
	}

	return c.fire(ctx, game, model.SideHuman, target)
}

// PlayOpponentTurn lets the automated opponent shoot until the turn passes or the game ends
func (c *Controller) PlayOpponentTurn(ctx context.Context, gameID model.GameID) ([]ShotOutcome, error) {
	return c.PlayAutomatedTurn(ctx, gameID, model.SideOpponent)
}

// PlayAutomatedTurn shoots for a bot-controlled side until the turn passes or the game ends.
// Targets already resolved on the defender's board are skipped; a shot the board still rejects
// means the bot and the board disagree, which is fatal.
func (c *Controller) PlayAutomatedTurn(ctx context.Context, gameID model.GameID, side model.Side) ([]ShotOutcome, error) {
	game, err := c.storage.GetGame(ctx, gameID)
	if err != nil {
		return nil, err
	}

	if err := checkTurn(game, side); err != nil {
		return nil, err
	}

	var outcomes []ShotOutcome
	for range MaxOpponentShots {
		if err := ctx.Err(); err != nil {
			return outcomes, err
		}

		target, err := c.chooseTarget(game, side)
		if err != nil {
			return outcomes, err
		}

		outcome, err := c.fire(ctx, game, side, target)
		if err != nil {
			if errors.Is(err, model.ErrAlreadyShot) || errors.Is(err, model.ErrOutOfBoundsShot) {
				c.logger.Error("automated shot rejected",
					slog.String("game_id", string(gameID)),
					slog.String("side", string(side)),
					slog.String("target", target.String()),
					slog.String("error", err.Error()),
				)
				return outcomes, fmt.Errorf("%w: %s shot at %s: %w", model.ErrInvariantViolation, side, target, err)
			}
			return outcomes, err
		}

		outcomes = append(outcomes, *outcome)
		if outcome.State != model.TurnState(side) {
			return outcomes, nil
		}
	}

	return outcomes, fmt.Errorf("%w: %s fired %d shots without the turn ending", model.ErrInvariantViolation, side, MaxOpponentShots)
}

// chooseTarget asks the side's bot for a target, passing over cells that are already resolved.
// After size*size skips the last target is returned as-is and the shot is rejected by the board.
func (c *Controller) chooseTarget(game *model.Game, side model.Side) (model.Coordinate, error) {
	defender := game.TargetOf(side)
	limit := defender.Size() * defender.Size()

	for skipped := 0; ; skipped++ {
		target, err := c.botService.ChooseTarget(game.ID, side)
		if err != nil {
			return target, err
		}
		if skipped >= limit || !defender.Cell(target).IsResolved() {
			return target, nil
		}
		c.logger.Debug("skipping resolved target",
			slog.String("game_id", string(game.ID)),
			slog.String("side", string(side)),
			slog.String("target", target.String()),
			slog.String("cell", defender.Cell(target).String()),
		)
	}
}

// fire resolves one shot by side against the other side's board and advances the state machine
func (c *Controller) fire(ctx context.Context, game *model.Game, side model.Side, target model.Coordinate) (*ShotOutcome, error) {
	defender := game.TargetOf(side)

	result, err := c.boardService.Shot(defender, target)
	if err != nil {
		return nil, err
	}

	game.Shots[side]++
	next := NextState(game.State, result, defender.AllShipsSunk())
	if next != game.State && !next.IsTerminal() {
		game.Turn++
	}
	game.State = next
	game.UpdatedAt = c.clock.Now()

	if next.IsTerminal() {
		c.logger.Info("game completed",
			slog.String("game_id", string(game.ID)),
			slog.String("winner", string(next.Winner())),
			slog.Int("turns", game.Turn),
		)
	}

	if err := c.storage.SaveGame(ctx, game); err != nil {
		return nil, err
	}

	return &ShotOutcome{
		Side:   side,
		Target: target,
		Result: result,
		State:  next,
	}, nil
}

// Summarize records a finished game, then drops the game and its bots
func (c *Controller) Summarize(ctx context.Context, gameID model.GameID) (*model.GameSummary, error) {
	game, err := c.storage.GetGame(ctx, gameID)
	if err != nil {
		return nil, err
	}

	if !game.State.IsTerminal() {
		return nil, model.ErrGameInProgress
	}

	summary := &model.GameSummary{
		ID:            game.ID,
		Winner:        game.State.Winner(),
		Turns:         game.Turn,
		HumanShots:    game.Shots[model.SideHuman],
		OpponentShots: game.Shots[model.SideOpponent],
		HumanShips:    game.BoardOf(model.SideHuman).LivingShips(),
		OpponentShips: game.BoardOf(model.SideOpponent).LivingShips(),
		Duration:      game.UpdatedAt.Sub(game.CreatedAt),
		CompletedAt:   game.UpdatedAt,
	}

	if err := c.storage.SaveSummary(ctx, summary); err != nil {
		return nil, err
	}
	if err := c.storage.DeleteGame(ctx, gameID); err != nil {
		return nil, err
	}
	c.botService.Release(gameID)

	return summary, nil
}

// Abandon drops an unfinished game and releases its bots
func (c *Controller) Abandon(ctx context.Context, gameID model.GameID) error {
	c.botService.Release(gameID)
	if err := c.storage.DeleteGame(ctx, gameID); err != nil {
		return err
	}
	c.logger.Info("game abandoned", slog.String("game_id", string(gameID)))
	return nil
}

// ListSummaries returns the finished games of this session in completion order
func (c *Controller) ListSummaries(ctx context.Context) ([]*model.GameSummary, error) {
	return c.storage.ListSummaries(ctx)
}

func checkTurn(game *model.Game, side model.Side) error {
	if game.State.IsTerminal() {
		return model.ErrGameComplete
	}
	if game.State.ActiveSide() != side {
		return fmt.Errorf("%w: %s", model.ErrNotPlayerTurn, game.State)
	}
	return nil
}

// Interface for dependency injection
type ControllerInterface interface {
	CreateGame(ctx context.Context, human, opponent *model.Board) (*model.Game, error)
	GetGame(ctx context.Context, gameID model.GameID) (*model.Game, error)
	AutomateSide(ctx context.Context, gameID model.GameID, side model.Side, strategy string) error
	FireHuman(ctx context.Context, gameID model.GameID, target model.Coordinate) (*ShotOutcome, error)
	PlayOpponentTurn(ctx context.Context, gameID model.GameID) ([]ShotOutcome, error)
	PlayAutomatedTurn(ctx context.Context, gameID model.GameID, side model.Side) ([]ShotOutcome, error)
	Summarize(ctx context.Context, gameID model.GameID) (*model.GameSummary, error)
	Abandon(ctx context.Context, gameID model.GameID) error
	ListSummaries(ctx context.Context) ([]*model.GameSummary, error)
}

var _ ControllerInterface = (*Controller)(nil)
