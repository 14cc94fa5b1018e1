package game

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"github.com/mcoot/seabattle-go/internal/dependencies/mocks"
	"github.com/mcoot/seabattle-go/internal/model"
	"github.com/mcoot/seabattle-go/internal/services/board"
	"github.com/mcoot/seabattle-go/internal/services/bot"
	"github.com/mcoot/seabattle-go/internal/storage/memory"
	"github.com/mcoot/seabattle-go/internal/testutil"
)

type ControllerSuite struct {
	suite.Suite
	storage      *memory.Storage
	boardService *board.Service
	botService   *bot.Service
	clock        *mocks.MockClock
	random       *mocks.MockRandom
	controller   *Controller
	ctx          context.Context
}

func TestControllerSuite(t *testing.T) {
	suite.Run(t, new(ControllerSuite))
}

func (s *ControllerSuite) SetupTest() {
	logger := testutil.NopLogger()
	s.storage = memory.New()
	s.boardService = board.New(board.DefaultConfig(), logger)
	s.clock = mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	// With an empty queue every shuffle swap draws 0, so the opponent fires at
	// (0,0), (5,5), (5,4), (5,3), ... in that order
	s.random = mocks.NewMockRandom()
	s.botService = bot.NewService(model.BoardSize, s.random, logger)
	s.controller = NewController(s.storage, s.boardService, s.botService, bot.StrategyShuffledPool, s.clock, logger)
	s.ctx = context.Background()
}

// boardWith places single-cell ships at the given coordinates
func (s *ControllerSuite) boardWith(ships ...*model.Ship) *model.Board {
	b := model.NewBoard(model.BoardSize, len(ships))
	for _, ship := range ships {
		s.Require().NoError(b.AddShip(ship))
	}
	return b
}

func single(row, col int) *model.Ship {
	return model.NewShip(1, model.Coordinate{Row: row, Col: col}, model.Vertical)
}

// createGame uses a human board with ships on the opponent's first two targets,
// and an opponent board with a 2-cell ship at (2,2)-(3,2) and a single at (0,5)
func (s *ControllerSuite) createGame() *model.Game {
	human := s.boardWith(single(0, 0), single(5, 5))
	opponent := s.boardWith(
		model.NewShip(2, model.Coordinate{Row: 2, Col: 2}, model.Vertical),
		single(0, 5),
	)
	game, err := s.controller.CreateGame(s.ctx, human, opponent)
	s.Require().NoError(err)
	return game
}

// NextState tests

func (s *ControllerSuite) TestNextState() {
	tests := []struct {
		name     string
		state    model.GameState
		result   model.ShotResult
		defeated bool
		want     model.GameState
	}{
		{"human hit keeps turn", model.GameStateHumanTurn, model.ShotHit, false, model.GameStateHumanTurn},
		{"human sunk keeps turn", model.GameStateHumanTurn, model.ShotSunk, false, model.GameStateHumanTurn},
		{"human sinks last ship", model.GameStateHumanTurn, model.ShotSunk, true, model.GameStateHumanWon},
		{"human miss passes turn", model.GameStateHumanTurn, model.ShotMiss, false, model.GameStateOpponentTurn},
		{"opponent hit keeps turn", model.GameStateOpponentTurn, model.ShotHit, false, model.GameStateOpponentTurn},
		{"opponent sinks last ship", model.GameStateOpponentTurn, model.ShotSunk, true, model.GameStateOpponentWon},
		{"opponent miss passes turn", model.GameStateOpponentTurn, model.ShotMiss, false, model.GameStateHumanTurn},
		{"human won is final", model.GameStateHumanWon, model.ShotMiss, false, model.GameStateHumanWon},
		{"opponent won is final", model.GameStateOpponentWon, model.ShotSunk, true, model.GameStateOpponentWon},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.Equal(tt.want, NextState(tt.state, tt.result, tt.defeated))
		})
	}
}

// CreateGame tests

func (s *ControllerSuite) TestCreateGameSucceeds() {
	game := s.createGame()

	_, err := uuid.Parse(string(game.ID))
	s.NoError(err)
	s.Equal(model.GameStateHumanTurn, game.State)
	s.Equal(0, game.Turn)
	s.Equal(s.clock.CurrentTime, game.CreatedAt)
	s.True(s.botService.IsAutomated(game.ID, model.SideOpponent))
	s.False(s.botService.IsAutomated(game.ID, model.SideHuman))

	stored, err := s.controller.GetGame(s.ctx, game.ID)
	s.Require().NoError(err)
	s.Same(game, stored)
}

func (s *ControllerSuite) TestCreateGameRequiresBoards() {
	_, err := s.controller.CreateGame(s.ctx, model.NewBoard(model.BoardSize, 1), nil)
	s.ErrorIs(err, model.ErrInvariantViolation)
}

func (s *ControllerSuite) TestCreateGameUnknownStrategy() {
	controller := NewController(s.storage, s.boardService, s.botService, "psychic", s.clock, testutil.NopLogger())

	_, err := controller.CreateGame(s.ctx, s.boardWith(single(0, 0)), s.boardWith(single(0, 0)))
	s.ErrorIs(err, model.ErrUnknownStrategy)
}

func (s *ControllerSuite) TestGetGameNotFound() {
	_, err := s.controller.GetGame(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrGameNotFound)
}

// FireHuman tests

func (s *ControllerSuite) TestFireHumanMissPassesTurn() {
	game := s.createGame()

	outcome, err := s.controller.FireHuman(s.ctx, game.ID, model.Coordinate{Row: 5, Col: 0})
	s.Require().NoError(err)

	s.Equal(model.SideHuman, outcome.Side)
	s.Equal(model.ShotMiss, outcome.Result)
	s.Equal(model.GameStateOpponentTurn, outcome.State)
	s.Equal(model.GameStateOpponentTurn, game.State)
	s.Equal(1, game.Turn)
	s.Equal(1, game.Shots[model.SideHuman])

	_, err = s.controller.FireHuman(s.ctx, game.ID, model.Coordinate{Row: 5, Col: 1})
	s.ErrorIs(err, model.ErrNotPlayerTurn)
}

func (s *ControllerSuite) TestFireHumanHitsKeepTurnUntilWin() {
	game := s.createGame()

	steps := []struct {
		target model.Coordinate
		result model.ShotResult
		state  model.GameState
	}{
		{model.Coordinate{Row: 2, Col: 2}, model.ShotHit, model.GameStateHumanTurn},
		{model.Coordinate{Row: 3, Col: 2}, model.ShotSunk, model.GameStateHumanTurn},
		{model.Coordinate{Row: 0, Col: 5}, model.ShotSunk, model.GameStateHumanWon},
	}
	for _, step := range steps {
		outcome, err := s.controller.FireHuman(s.ctx, game.ID, step.target)
		s.Require().NoError(err)
		s.Equal(step.result, outcome.Result, "target %s", step.target)
		s.Equal(step.state, outcome.State, "target %s", step.target)
	}

	s.Equal(0, game.Turn)
	s.Equal(3, game.Shots[model.SideHuman])

	_, err := s.controller.FireHuman(s.ctx, game.ID, model.Coordinate{Row: 5, Col: 0})
	s.ErrorIs(err, model.ErrGameComplete)
}

func (s *ControllerSuite) TestFireHumanBoardErrorsLeaveGameUntouched() {
	game := s.createGame()
	_, err := s.controller.FireHuman(s.ctx, game.ID, model.Coordinate{Row: 2, Col: 2})
	s.Require().NoError(err)
	updated := game.UpdatedAt

	_, err = s.controller.FireHuman(s.ctx, game.ID, model.Coordinate{Row: 2, Col: 2})
	s.ErrorIs(err, model.ErrAlreadyShot)

	_, err = s.controller.FireHuman(s.ctx, game.ID, model.Coordinate{Row: 6, Col: 0})
	s.ErrorIs(err, model.ErrOutOfBoundsShot)

	s.Equal(model.GameStateHumanTurn, game.State)
	s.Equal(1, game.Shots[model.SideHuman])
	s.Equal(updated, game.UpdatedAt)
}

func (s *ControllerSuite) TestFireHumanGameNotFound() {
	_, err := s.controller.FireHuman(s.ctx, "nonexistent", model.Coordinate{})
	s.ErrorIs(err, model.ErrGameNotFound)
}

// PlayOpponentTurn tests

func (s *ControllerSuite) TestPlayOpponentTurnNotItsTurn() {
	game := s.createGame()

	_, err := s.controller.PlayOpponentTurn(s.ctx, game.ID)
	s.ErrorIs(err, model.ErrNotPlayerTurn)
}

func (s *ControllerSuite) TestPlayOpponentTurnMissPassesTurn() {
	human := s.boardWith(single(2, 2), single(4, 4))
	opponent := s.boardWith(single(2, 2), single(4, 4))
	game, err := s.controller.CreateGame(s.ctx, human, opponent)
	s.Require().NoError(err)

	_, err = s.controller.FireHuman(s.ctx, game.ID, model.Coordinate{Row: 0, Col: 0})
	s.Require().NoError(err)

	outcomes, err := s.controller.PlayOpponentTurn(s.ctx, game.ID)
	s.Require().NoError(err)
	s.Require().Len(outcomes, 1)
	s.Equal(model.SideOpponent, outcomes[0].Side)
	s.Equal(model.Coordinate{Row: 0, Col: 0}, outcomes[0].Target)
	s.Equal(model.ShotMiss, outcomes[0].Result)
	s.Equal(model.GameStateHumanTurn, game.State)
	s.Equal(2, game.Turn)
}

func (s *ControllerSuite) TestPlayOpponentTurnKeepsShootingUntilWin() {
	game := s.createGame()
	_, err := s.controller.FireHuman(s.ctx, game.ID, model.Coordinate{Row: 5, Col: 0})
	s.Require().NoError(err)

	outcomes, err := s.controller.PlayOpponentTurn(s.ctx, game.ID)
	s.Require().NoError(err)
	s.Require().Len(outcomes, 2)

	s.Equal(model.Coordinate{Row: 0, Col: 0}, outcomes[0].Target)
	s.Equal(model.ShotSunk, outcomes[0].Result)
	s.Equal(model.GameStateOpponentTurn, outcomes[0].State)

	s.Equal(model.Coordinate{Row: 5, Col: 5}, outcomes[1].Target)
	s.Equal(model.ShotSunk, outcomes[1].Result)
	s.Equal(model.GameStateOpponentWon, outcomes[1].State)

	s.True(game.BoardOf(model.SideHuman).AllShipsSunk())
}

func (s *ControllerSuite) TestPlayOpponentTurnSkipsSunkContour() {
	// The opponent sinks (0,0) and (5,5); its next target (5,4) is then sunk contour
	human := s.boardWith(single(0, 0), single(5, 5), single(2, 2))
	game, err := s.controller.CreateGame(s.ctx, human, s.boardWith(single(2, 2)))
	s.Require().NoError(err)
	_, err = s.controller.FireHuman(s.ctx, game.ID, model.Coordinate{Row: 5, Col: 0})
	s.Require().NoError(err)

	outcomes, err := s.controller.PlayOpponentTurn(s.ctx, game.ID)
	s.Require().NoError(err)
	s.Require().Len(outcomes, 3)

	s.Equal(model.Coordinate{Row: 0, Col: 0}, outcomes[0].Target)
	s.Equal(model.ShotSunk, outcomes[0].Result)
	s.Equal(model.Coordinate{Row: 5, Col: 5}, outcomes[1].Target)
	s.Equal(model.ShotSunk, outcomes[1].Result)
	s.Equal(model.Coordinate{Row: 5, Col: 3}, outcomes[2].Target)
	s.Equal(model.ShotMiss, outcomes[2].Result)

	s.Equal(model.CellSunkContour, human.Cell(model.Coordinate{Row: 5, Col: 4}))
	s.Equal(model.GameStateHumanTurn, game.State)
	s.Equal(1, human.LivingShips())
	s.Equal(3, game.Shots[model.SideOpponent])
}

func (s *ControllerSuite) TestPlayOpponentTurnSkipsCellsShotBefore() {
	human := s.boardWith(single(2, 2))
	_, err := human.Shot(model.Coordinate{Row: 0, Col: 0})
	s.Require().NoError(err)

	game, err := s.controller.CreateGame(s.ctx, human, s.boardWith(single(2, 2)))
	s.Require().NoError(err)
	_, err = s.controller.FireHuman(s.ctx, game.ID, model.Coordinate{Row: 5, Col: 5})
	s.Require().NoError(err)

	outcomes, err := s.controller.PlayOpponentTurn(s.ctx, game.ID)
	s.Require().NoError(err)
	s.Require().Len(outcomes, 1)
	s.Equal(model.Coordinate{Row: 5, Col: 5}, outcomes[0].Target)
	s.Equal(model.ShotMiss, outcomes[0].Result)
}

func (s *ControllerSuite) TestPlayOpponentTurnRepeatedShotIsFatal() {
	// Two ships are expected but only one is placed, so sinking it leaves the
	// game running with every cell resolved and the pool empty
	human := model.NewBoard(model.BoardSize, 2)
	s.Require().NoError(human.AddShip(single(2, 2)))
	for row := range model.BoardSize {
		for col := range model.BoardSize {
			if row == 2 && col == 2 {
				continue
			}
			_, err := human.Shot(model.Coordinate{Row: row, Col: col})
			s.Require().NoError(err)
		}
	}

	game, err := s.controller.CreateGame(s.ctx, human, s.boardWith(single(2, 2)))
	s.Require().NoError(err)
	_, err = s.controller.FireHuman(s.ctx, game.ID, model.Coordinate{Row: 5, Col: 5})
	s.Require().NoError(err)

	outcomes, err := s.controller.PlayOpponentTurn(s.ctx, game.ID)
	s.ErrorIs(err, model.ErrInvariantViolation)
	s.ErrorIs(err, model.ErrAlreadyShot)
	s.Require().Len(outcomes, 1)
	s.Equal(model.Coordinate{Row: 2, Col: 2}, outcomes[0].Target)
	s.Equal(model.ShotSunk, outcomes[0].Result)
}

// PlayAutomatedTurn tests

func (s *ControllerSuite) TestPlayAutomatedTurnForHumanSide() {
	game := s.createGame()

	_, err := s.controller.PlayAutomatedTurn(s.ctx, game.ID, model.SideHuman)
	s.ErrorIs(err, model.ErrBotNotAssigned)

	s.Require().NoError(s.controller.AutomateSide(s.ctx, game.ID, model.SideHuman, bot.StrategyShuffledPool))

	outcomes, err := s.controller.PlayAutomatedTurn(s.ctx, game.ID, model.SideHuman)
	s.Require().NoError(err)
	s.Require().Len(outcomes, 1)
	s.Equal(model.Coordinate{Row: 0, Col: 0}, outcomes[0].Target)
	s.Equal(model.ShotMiss, outcomes[0].Result)
	s.Equal(model.GameStateOpponentTurn, game.State)
}

func (s *ControllerSuite) TestAutomateSideFinishedGame() {
	game := s.createGame()
	game.State = model.GameStateHumanWon

	err := s.controller.AutomateSide(s.ctx, game.ID, model.SideHuman, bot.StrategyShuffledPool)
	s.ErrorIs(err, model.ErrGameComplete)
}

// Abandon tests

func (s *ControllerSuite) TestAbandonDropsGameAndBots() {
	game := s.createGame()

	s.Require().NoError(s.controller.Abandon(s.ctx, game.ID))

	_, err := s.controller.GetGame(s.ctx, game.ID)
	s.ErrorIs(err, model.ErrGameNotFound)
	s.False(s.botService.IsAutomated(game.ID, model.SideOpponent))
}

// Summarize tests

func (s *ControllerSuite) TestSummarizeInProgress() {
	game := s.createGame()

	_, err := s.controller.Summarize(s.ctx, game.ID)
	s.ErrorIs(err, model.ErrGameInProgress)
}

func (s *ControllerSuite) TestSummarizeFinishedGame() {
	game := s.createGame()
	s.clock.Advance(time.Minute)

	_, err := s.controller.FireHuman(s.ctx, game.ID, model.Coordinate{Row: 5, Col: 0})
	s.Require().NoError(err)
	_, err = s.controller.PlayOpponentTurn(s.ctx, game.ID)
	s.Require().NoError(err)

	summary, err := s.controller.Summarize(s.ctx, game.ID)
	s.Require().NoError(err)

	s.Equal(game.ID, summary.ID)
	s.Equal(model.SideOpponent, summary.Winner)
	s.Equal(1, summary.Turns)
	s.Equal(1, summary.HumanShots)
	s.Equal(2, summary.OpponentShots)
	s.Equal(0, summary.HumanShips)
	s.Equal(2, summary.OpponentShips)
	s.Equal(time.Minute, summary.Duration)
	s.Equal(s.clock.CurrentTime, summary.CompletedAt)
	s.False(s.botService.IsAutomated(game.ID, model.SideOpponent))

	_, err = s.controller.GetGame(s.ctx, game.ID)
	s.ErrorIs(err, model.ErrGameNotFound)

	summaries, err := s.controller.ListSummaries(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(summaries, 1)
	s.Equal(summary, summaries[0])
}
