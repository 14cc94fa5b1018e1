package model

import (
	"fmt"

	"github.com/dolthub/swiss"
)

// Board is one side's grid together with the ships placed on it
type Board struct {
	size   int
	cells  [][]CellState // Row-major: cells[row][col]
	ships  []*Ship
	index  *swiss.Map[Coordinate, *Ship] // occupied cell -> owning ship
	living int
}

// NewBoard creates an empty size x size board expecting fleetSize ships
func NewBoard(size, fleetSize int) *Board {
	cells := make([][]CellState, size)
	for i := range cells {
		cells[i] = make([]CellState, size)
	}
	return &Board{
		size:   size,
		cells:  cells,
		index:  swiss.NewMap[Coordinate, *Ship](uint32(size * size)),
		living: fleetSize,
	}
}

// Size returns the grid dimension
func (b *Board) Size() int {
	return b.size
}

// Cell returns the state at c, or CellEmpty if c is off the board
func (b *Board) Cell(c Coordinate) CellState {
	if !c.InBounds(b.size) {
		return CellEmpty
	}
	return b.cells[c.Row][c.Col]
}

// Cells returns a copy of the grid
func (b *Board) Cells() [][]CellState {
	result := make([][]CellState, b.size)
	for row := range b.cells {
		result[row] = make([]CellState, b.size)
		copy(result[row], b.cells[row])
	}
	return result
}

// Ships returns the placed ships in placement order
func (b *Board) Ships() []*Ship {
	result := make([]*Ship, len(b.ships))
	copy(result, b.ships)
	return result
}

// ShipAt returns the ship occupying c, if any
func (b *Board) ShipAt(c Coordinate) (*Ship, bool) {
	return b.index.Get(c)
}

// LivingShips returns how many ships are still afloat
func (b *Board) LivingShips() int {
	return b.living
}

// AllShipsSunk returns true once the board's owner has lost
func (b *Board) AllShipsSunk() bool {
	return b.living == 0
}

// Count returns the number of cells in the given state
func (b *Board) Count(state CellState) int {
	count := 0
	for row := 0; row < b.size; row++ {
		for col := 0; col < b.size; col++ {
			if b.cells[row][col] == state {
				count++
			}
		}
	}
	return count
}

// EmptyCount returns the number of cells a ship could still use
func (b *Board) EmptyCount() int {
	return b.Count(CellEmpty)
}

// IsSaturated returns true if no empty cell is left
func (b *Board) IsSaturated() bool {
	return b.EmptyCount() == 0
}

// AddShip places a ship and marks its contour. The board is unchanged on error.
func (b *Board) AddShip(ship *Ship) error {
	if ship.Length <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidShipLength, ship.Length)
	}
	if !ship.Orientation.IsValid() {
		return fmt.Errorf("%w: got %d", ErrInvalidOrientation, int(ship.Orientation))
	}

	coords, err := ship.Coordinates(b.size)
	if err != nil {
		return err
	}

	for _, c := range coords {
		if b.cells[c.Row][c.Col] != CellEmpty {
			return fmt.Errorf("%w: cell %s", ErrCellOccupied, c)
		}
	}

	for _, c := range coords {
		b.cells[c.Row][c.Col] = CellShip
		b.index.Put(c, ship)
	}
	b.ships = append(b.ships, ship)
	b.markContour(coords, CellContour)
	return nil
}

// Shot resolves a shot at c
func (b *Board) Shot(c Coordinate) (ShotResult, error) {
	if !c.InBounds(b.size) {
		return "", fmt.Errorf("%w: cell %s", ErrOutOfBoundsShot, c)
	}

	state := b.cells[c.Row][c.Col]
	if state.IsResolved() {
		return "", fmt.Errorf("%w: cell %s", ErrAlreadyShot, c)
	}

	switch state {
	case CellShip:
		b.cells[c.Row][c.Col] = CellHit
		ship, ok := b.index.Get(c)
		if !ok {
			return "", fmt.Errorf("%w: no ship indexed at %s", ErrInvariantViolation, c)
		}
		if !ship.RegisterHit() {
			return ShotHit, nil
		}
		b.living--
		coords, err := ship.Coordinates(b.size)
		if err != nil {
			return "", fmt.Errorf("%w: %v", ErrInvariantViolation, err)
		}
		b.markContour(coords, CellSunkContour)
		return ShotSunk, nil

	case CellEmpty, CellContour:
		b.cells[c.Row][c.Col] = CellMiss
		return ShotMiss, nil

	default:
		return "", fmt.Errorf("%w: cell %s in state %s", ErrInvariantViolation, c, state)
	}
}

// markContour marks every in-bounds neighbor of coords that is not a ship segment
func (b *Board) markContour(coords []Coordinate, marker CellState) {
	for _, c := range coords {
		for _, n := range c.Neighbors() {
			if !n.InBounds(b.size) {
				continue
			}
			if current := b.cells[n.Row][n.Col]; current == CellShip || current == CellHit {
				continue
			}
			b.cells[n.Row][n.Col] = marker
		}
	}
}
