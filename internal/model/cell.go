package model

// CellState is the state of a single grid cell
type CellState uint8

const (
	CellEmpty        CellState = iota // Nothing placed, never shot
	CellShip                          // Occupied by a ship, not yet hit
	CellContour                       // Next to a ship; blocks placement
	CellMiss                          // Shot, nothing there
	CellHit                           // Shot, ship segment destroyed
	CellSunkContour                   // Next to a sunk ship; known to be water
)

// String returns a readable name for the state
func (s CellState) String() string {
	switch s {
	case CellEmpty:
		return "empty"
	case CellShip:
		return "ship"
	case CellContour:
		return "contour"
	case CellMiss:
		return "miss"
	case CellHit:
		return "hit"
	case CellSunkContour:
		return "sunk_contour"
	default:
		return "unknown"
	}
}

// IsResolved returns true if shooting this cell again is a repeated shot
func (s CellState) IsResolved() bool {
	switch s {
	case CellMiss, CellHit, CellSunkContour:
		return true
	default:
		return false
	}
}

// ShotResult is the outcome of a shot that landed on the board
type ShotResult string

const (
	ShotMiss ShotResult = "miss"
	ShotHit  ShotResult = "hit"
	ShotSunk ShotResult = "sunk"
)
