package factory

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mcoot/seabattle-go/internal/model"
)

// SimulateGame plays one game with both sides automated and returns its summary.
// The human seat is driven by humanStrategy; the opponent uses the configured strategy.
func (a *App) SimulateGame(ctx context.Context, humanStrategy string) (*model.GameSummary, error) {
	started := a.Clock.Now()

	human, err := a.Placer.Place(ctx)
	if err != nil {
		return nil, fmt.Errorf("placing human fleet: %w", err)
	}
	opponent, err := a.Placer.Place(ctx)
	if err != nil {
		return nil, fmt.Errorf("placing opponent fleet: %w", err)
	}

	g, err := a.GameController.CreateGame(ctx, human, opponent)
	if err != nil {
		return nil, err
	}
	if err := a.playOut(ctx, g, humanStrategy); err != nil {
		a.Abandon(ctx, g.ID, err)
		return nil, err
	}

	summary, err := a.GameController.Summarize(ctx, g.ID)
	if err != nil {
		return nil, err
	}

	a.Logger.Debug("simulated game finished",
		slog.String("game_id", string(summary.ID)),
		slog.String("winner", string(summary.Winner)),
		slog.Int("turns", summary.Turns),
		slog.Duration("elapsed", a.Clock.Since(started)),
	)
	return summary, nil
}

func (a *App) playOut(ctx context.Context, g *model.Game, humanStrategy string) error {
	if err := a.GameController.AutomateSide(ctx, g.ID, model.SideHuman, humanStrategy); err != nil {
		return err
	}

	for !g.State.IsTerminal() {
		if _, err := a.GameController.PlayAutomatedTurn(ctx, g.ID, g.State.ActiveSide()); err != nil {
			return err
		}
		var err error
		if g, err = a.GameController.GetGame(ctx, g.ID); err != nil {
			return err
		}
	}
	return nil
}

// Abandon drops a game that failed part way; cause is only logged
func (a *App) Abandon(ctx context.Context, id model.GameID, cause error) {
	a.Logger.Info("abandoning game",
		slog.String("game_id", string(id)),
		slog.String("error", cause.Error()),
	)
	if err := a.GameController.Abandon(context.WithoutCancel(ctx), id); err != nil {
		a.Logger.Error("failed to abandon game",
			slog.String("game_id", string(id)),
			slog.String("error", err.Error()),
		)
	}
}
