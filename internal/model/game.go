package model

import "time"

// GameID uniquely identifies a game within a session
type GameID string

// Side is one of the two players
type Side string

const (
	SideHuman    Side = "human"
	SideOpponent Side = "opponent"
)

// Other returns the opposing side
func (s Side) Other() Side {
	if s == SideHuman {
		return SideOpponent
	}
	return SideHuman
}

// GameState represents the current phase of a game
type GameState string

const (
	GameStateHumanTurn    GameState = "human_turn"    // Human picks the next target
	GameStateOpponentTurn GameState = "opponent_turn" // Automated opponent shoots
	GameStateHumanWon     GameState = "human_won"     // Opponent fleet destroyed
	GameStateOpponentWon  GameState = "opponent_won"  // Human fleet destroyed
)

// IsTerminal returns true once the game has a winner
func (s GameState) IsTerminal() bool {
	return s == GameStateHumanWon || s == GameStateOpponentWon
}

// ActiveSide returns whose turn it is, or "" for terminal states
func (s GameState) ActiveSide() Side {
	switch s {
	case GameStateHumanTurn:
		return SideHuman
	case GameStateOpponentTurn:
		return SideOpponent
	default:
		return ""
	}
}

// Winner returns the winning side, or "" while the game is running
func (s GameState) Winner() Side {
	switch s {
	case GameStateHumanWon:
		return SideHuman
	case GameStateOpponentWon:
		return SideOpponent
	default:
		return ""
	}
}

// TurnState returns the state in which side is shooting
func TurnState(side Side) GameState {
	if side == SideHuman {
		return GameStateHumanTurn
	}
	return GameStateOpponentTurn
}

// WonState returns the terminal state in which side has won
func WonState(side Side) GameState {
	if side == SideHuman {
		return GameStateHumanWon
	}
	return GameStateOpponentWon
}

// Game represents a single match between the human and the automated opponent
type Game struct {
	ID    GameID    `json:"id"`
	State GameState `json:"state"`

	// Each side's own board; the other side only shoots at it
	Boards map[Side]*Board `json:"boards"`

	// Turn management
	Turn  int          `json:"turn"`  // Number of times the turn has passed
	Shots map[Side]int `json:"shots"` // Shots fired by each side

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BoardOf returns the board owned by side
func (g *Game) BoardOf(side Side) *Board {
	return g.Boards[side]
}

// TargetOf returns the board side shoots at
func (g *Game) TargetOf(side Side) *Board {
	return g.Boards[side.Other()]
}

// GameSummary is a lightweight record of a completed game
type GameSummary struct {
	ID            GameID        `json:"id"`
	Winner        Side          `json:"winner"`
	Turns         int           `json:"turns"`
	HumanShots    int           `json:"human_shots"`
	OpponentShots int           `json:"opponent_shots"`
	HumanShips    int           `json:"human_ships_left"`
	OpponentShips int           `json:"opponent_ships_left"`
	Duration      time.Duration `json:"duration"`
	CompletedAt   time.Time     `json:"completed_at"`
}
