package model

import "errors"

// Common errors used across the application
var (
	// Placement errors
	ErrOutOfBounds        = errors.New("ship is outside the board")
	ErrInvalidShipLength  = errors.New("ship length must be positive")
	ErrCellOccupied       = errors.New("cell is already occupied")
	ErrInvalidOrientation = errors.New("orientation must be 1 (vertical) or 2 (horizontal)")
	ErrPlacementExhausted = errors.New("could not place the fleet")

	// Shot errors
	ErrOutOfBoundsShot = errors.New("shot is outside the board")
	ErrAlreadyShot     = errors.New("cell has already been shot")

	// Input errors
	ErrInvalidInputShape = errors.New("enter exactly two numbers")
	ErrInvalidInput      = errors.New("only numbers are allowed")
	ErrCoordinateRange   = errors.New("coordinates are out of range")

	// Game errors
	ErrGameNotFound       = errors.New("game not found")
	ErrNotPlayerTurn      = errors.New("not this side's turn")
	ErrGameComplete       = errors.New("game is already complete")
	ErrGameInProgress     = errors.New("game is in progress")
	ErrInvariantViolation = errors.New("invariant violation")

	// Bot errors
	ErrUnknownStrategy = errors.New("unknown bot strategy")
	ErrBotNotAssigned  = errors.New("no bot assigned to this side")
)
