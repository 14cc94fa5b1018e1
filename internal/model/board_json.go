package model

import (
	"encoding/json"
	"fmt"
)

type shipJSON struct {
	Length        int         `json:"length"`
	Anchor        Coordinate  `json:"anchor"`
	Orientation   Orientation `json:"orientation"`
	RemainingHits int         `json:"remaining_hits"`
}

type boardJSON struct {
	Size   int           `json:"size"`
	Living int           `json:"living"`
	Cells  [][]CellState `json:"cells"`
	Ships  []shipJSON    `json:"ships"`
}

// MarshalJSON encodes the grid and the fleet with its damage
func (b *Board) MarshalJSON() ([]byte, error) {
	out := boardJSON{
		Size:   b.size,
		Living: b.living,
		Cells:  b.Cells(),
		Ships:  make([]shipJSON, 0, len(b.ships)),
	}
	for _, s := range b.ships {
		out.Ships = append(out.Ships, shipJSON{
			Length:        s.Length,
			Anchor:        s.Anchor,
			Orientation:   s.Orientation,
			RemainingHits: s.remainingHits,
		})
	}
	return json.Marshal(out)
}

// UnmarshalJSON restores a board and rebuilds its coordinate index
func (b *Board) UnmarshalJSON(data []byte) error {
	var in boardJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	if in.Size <= 0 || len(in.Cells) != in.Size {
		return fmt.Errorf("%w: board has %d rows, want %d", ErrInvariantViolation, len(in.Cells), in.Size)
	}
	if in.Living < 0 {
		return fmt.Errorf("%w: negative living ship count %d", ErrInvariantViolation, in.Living)
	}

	restored := NewBoard(in.Size, in.Living)
	for row, cells := range in.Cells {
		if len(cells) != in.Size {
			return fmt.Errorf("%w: row %d has %d cells, want %d", ErrInvariantViolation, row+1, len(cells), in.Size)
		}
		for col, state := range cells {
			if state > CellSunkContour {
				return fmt.Errorf("%w: cell %s has unknown state %d", ErrInvariantViolation, Coordinate{Row: row, Col: col}, state)
			}
		}
		copy(restored.cells[row], cells)
	}

	for _, sj := range in.Ships {
		if sj.Length <= 0 || !sj.Orientation.IsValid() {
			return fmt.Errorf("%w: ship at %s has length %d and %s", ErrInvariantViolation, sj.Anchor, sj.Length, sj.Orientation)
		}
		if sj.RemainingHits < 0 || sj.RemainingHits > sj.Length {
			return fmt.Errorf("%w: ship at %s has %d of %d hits left", ErrInvariantViolation, sj.Anchor, sj.RemainingHits, sj.Length)
		}
		ship := NewShip(sj.Length, sj.Anchor, sj.Orientation)
		ship.remainingHits = sj.RemainingHits

		coords, err := ship.Coordinates(in.Size)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrInvariantViolation, err)
		}
		hits := 0
		for _, c := range coords {
			if restored.index.Has(c) {
				return fmt.Errorf("%w: ships overlap at %s", ErrInvariantViolation, c)
			}
			switch restored.cells[c.Row][c.Col] {
			case CellShip:
			case CellHit:
				hits++
			default:
				return fmt.Errorf("%w: ship cell %s is %s", ErrInvariantViolation, c, restored.cells[c.Row][c.Col])
			}
			restored.index.Put(c, ship)
		}
		if hits != sj.Length-sj.RemainingHits {
			return fmt.Errorf("%w: ship at %s has %d hit cells but %d of %d hits left", ErrInvariantViolation, sj.Anchor, hits, sj.RemainingHits, sj.Length)
		}
		restored.ships = append(restored.ships, ship)
	}

	// Every ship or hit cell must belong to a decoded ship
	for row := range in.Size {
		for col := range in.Size {
			c := Coordinate{Row: row, Col: col}
			state := restored.cells[row][col]
			if (state == CellShip || state == CellHit) && !restored.index.Has(c) {
				return fmt.Errorf("%w: cell %s is %s but no ship covers it", ErrInvariantViolation, c, state)
			}
		}
	}

	*b = *restored
	return nil
}
