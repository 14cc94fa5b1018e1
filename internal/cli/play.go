package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/mcoot/seabattle-go/internal/factory"
	"github.com/mcoot/seabattle-go/internal/model"
	"github.com/mcoot/seabattle-go/internal/services/bot"
	"github.com/mcoot/seabattle-go/internal/services/placement"
)

func newPlayCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "play",
		Short: "Play interactively against the computer",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s := newSession(app, cmd.InOrStdin(), cmd.OutOrStdout())
			s.opponent = bot.DisplayName(cfg.Strategy)
			return s.run(cmd.Context())
		},
	}
}

// session is one run of the play command, possibly spanning several games
type session struct {
	app      *factory.App
	input    *Input
	out      io.Writer
	opponent string
}

func newSession(a *factory.App, in io.Reader, out io.Writer) *session {
	return &session{
		app:   a,
		input: NewInput(in, out, a.BoardService.Size()),
		out:   out,
	}
}

// run plays games until the player declines another one or input ends, then prints the tally
func (s *session) run(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	Greeting(s.out)
	if s.opponent != "" {
		fmt.Fprintf(s.out, "Opponent strategy: %s\n", s.opponent)
	}

	for {
		err := s.playGame(ctx)
		if errors.Is(err, io.EOF) {
			fmt.Fprintln(s.out, "\nInput closed, leaving the game.")
			break
		}
		if err != nil {
			return err
		}

		again, err := s.input.Confirm(ctx, "\nPlay again?")
		if err != nil && !errors.Is(err, io.EOF) {
			return err
		}
		if !again {
			break
		}
	}

	summaries, err := s.app.GameController.ListSummaries(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintln(s.out)
	NewOutput(OutputText, s.out).Print(NewReport(summaries))
	return nil
}

func (s *session) playGame(ctx context.Context) error {
	opponent, err := s.app.Placer.Place(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintln(s.out, "\nOpponent board is ready!")

	fmt.Fprintln(s.out, "Place your ships:")
	RenderBoard(s.out, s.app.BoardService.NewBoard(), false)
	human, err := s.app.InteractivePlacer(&terminalPrompter{input: s.input, out: s.out}).Place(ctx)
	if err != nil {
		return err
	}

	g, err := s.app.GameController.CreateGame(ctx, human, opponent)
	if err != nil {
		return err
	}
	if err := s.playTurns(ctx, g.ID); err != nil {
		s.app.Abandon(ctx, g.ID, err)
		return err
	}

	_, err = s.app.GameController.Summarize(ctx, g.ID)
	return err
}

// playTurns alternates turns until the game ends and announces the winner
func (s *session) playTurns(ctx context.Context, id model.GameID) error {
	g, err := s.app.GameController.GetGame(ctx, id)
	if err != nil {
		return err
	}
	fmt.Fprintln(s.out, "\nThe game begins")

	for !g.State.IsTerminal() {
		switch g.State {
		case model.GameStateHumanTurn:
			err = s.humanTurn(ctx, g)
		case model.GameStateOpponentTurn:
			err = s.opponentTurn(ctx, g)
		}
		if err != nil {
			return err
		}
		if g, err = s.app.GameController.GetGame(ctx, g.ID); err != nil {
			return err
		}
	}

	if g.State.Winner() == model.SideHuman {
		fmt.Fprintln(s.out, "Congratulations! You won!")
	} else {
		fmt.Fprintln(s.out, "You lost!")
	}
	return nil
}

func (s *session) humanTurn(ctx context.Context, g *model.Game) error {
	fmt.Fprintln(s.out, "\n----------- YOUR TURN -----------")
	fmt.Fprintln(s.out, "Opponent board:")
	RenderBoard(s.out, g.BoardOf(model.SideOpponent), true)

	for state := g.State; state == model.GameStateHumanTurn; {
		target, err := s.input.AskShot(ctx)
		if err != nil {
			return err
		}

		outcome, err := s.app.GameController.FireHuman(ctx, g.ID, target)
		if errors.Is(err, model.ErrAlreadyShot) || errors.Is(err, model.ErrOutOfBoundsShot) {
			fmt.Fprintf(s.out, "Error: %s, try again\n", err)
			continue
		}
		if err != nil {
			return err
		}
		state = outcome.State

		if g, err = s.app.GameController.GetGame(ctx, g.ID); err != nil {
			return err
		}
		fmt.Fprintf(s.out, "Shot %s\n", outcome.Target)
		RenderBoard(s.out, g.BoardOf(model.SideOpponent), true)
		fmt.Fprintln(s.out, resultMessage(outcome.Result))
	}
	return nil
}

func (s *session) opponentTurn(ctx context.Context, g *model.Game) error {
	fmt.Fprintln(s.out, "\n-------- OPPONENT'S TURN --------")

	outcomes, err := s.app.GameController.PlayOpponentTurn(ctx, g.ID)
	if err != nil {
		return err
	}

	for _, outcome := range outcomes {
		fmt.Fprintf(s.out, "Shot %s: %s\n", outcome.Target, resultMessage(outcome.Result))
	}
	if g, err = s.app.GameController.GetGame(ctx, g.ID); err != nil {
		return err
	}
	fmt.Fprintln(s.out, "Your board:")
	RenderBoard(s.out, g.BoardOf(model.SideHuman), false)
	return nil
}

// terminalPrompter asks for ship positions on the terminal
type terminalPrompter struct {
	input *Input
	out   io.Writer
}

func (p *terminalPrompter) AskAnchor(ctx context.Context, length int) (model.Coordinate, error) {
	fmt.Fprintf(p.out, "\nPlacing a ship of length %d.\n", length)
	return p.input.AskCoordinate(ctx, fmt.Sprintf("Enter row and column separated by a space (1 to %d): ", p.input.size))
}

func (p *terminalPrompter) AskOrientation(ctx context.Context, length int) (model.Orientation, error) {
	line, err := p.input.ReadLine(ctx, "Orientation (1 - vertical, 2 - horizontal): ")
	if err != nil {
		return 0, err
	}
	return model.ParseOrientation(line)
}

func (p *terminalPrompter) PlacementFailed(length int, err error) {
	fmt.Fprintf(p.out, "Error: %s, try again\n", err)
}

func (p *terminalPrompter) ShipPlaced(board *model.Board, ship *model.Ship) {
	fmt.Fprintln(p.out, "Your board:")
	RenderBoard(p.out, board, false)
}

func (p *terminalPrompter) BoardReset(board *model.Board) {
	fmt.Fprintln(p.out, "\nThe board is full! Starting over.")
	RenderBoard(p.out, board, false)
}

var _ placement.Prompter = (*terminalPrompter)(nil)

// isInputError reports whether err came from parsing a typed answer
func isInputError(err error) bool {
	return errors.Is(err, model.ErrInvalidInput) ||
		errors.Is(err, model.ErrInvalidInputShape) ||
		errors.Is(err, model.ErrCoordinateRange)
}
