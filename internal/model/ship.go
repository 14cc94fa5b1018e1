package model

import (
	"fmt"
	"strings"
)

// Orientation is the direction a ship extends from its anchor
type Orientation int

const (
	Vertical   Orientation = 1 // Extends down, row increases
	Horizontal Orientation = 2 // Extends right, column increases
)

// String returns a readable name for the orientation
func (o Orientation) String() string {
	switch o {
	case Vertical:
		return "vertical"
	case Horizontal:
		return "horizontal"
	default:
		return fmt.Sprintf("orientation(%d)", int(o))
	}
}

// IsValid returns true for the two allowed orientations
func (o Orientation) IsValid() bool {
	return o == Vertical || o == Horizontal
}

// ParseOrientation accepts "1", "v", "vertical", "2", "h" or "horizontal"
func ParseOrientation(s string) (Orientation, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "v", "vertical":
		return Vertical, nil
	case "2", "h", "horizontal":
		return Horizontal, nil
	default:
		return 0, fmt.Errorf("%w: got %q", ErrInvalidOrientation, s)
	}
}

// Ship is a fleet member placed on a board
type Ship struct {
	Length      int
	Anchor      Coordinate
	Orientation Orientation

	remainingHits int
	coords        []Coordinate // derived once, never modified
}

// NewShip creates a ship with all its hit points intact
func NewShip(length int, anchor Coordinate, orientation Orientation) *Ship {
	return &Ship{
		Length:        length,
		Anchor:        anchor,
		Orientation:   orientation,
		remainingHits: length,
	}
}

// Coordinates returns the cells the ship occupies, starting at the anchor.
// It fails with ErrOutOfBounds if any cell lies outside a size x size board.
func (s *Ship) Coordinates(size int) ([]Coordinate, error) {
	if s.coords == nil {
		coords := make([]Coordinate, 0, s.Length)
		for i := 0; i < s.Length; i++ {
			c := s.Anchor
			if s.Orientation == Vertical {
				c.Row += i
			} else {
				c.Col += i
			}
			coords = append(coords, c)
		}
		s.coords = coords
	}

	for _, c := range s.coords {
		if !c.InBounds(size) {
			return nil, fmt.Errorf("%w: cell %s", ErrOutOfBounds, c)
		}
	}

	result := make([]Coordinate, len(s.coords))
	copy(result, s.coords)
	return result, nil
}

// RegisterHit takes one hit point and returns true if the ship is now sunk.
// Hitting a ship that is already sunk is a caller bug and panics.
func (s *Ship) RegisterHit() bool {
	if s.remainingHits <= 0 {
		panic("model: RegisterHit on a sunk ship")
	}
	s.remainingHits--
	return s.remainingHits == 0
}

// RemainingHits returns the number of hits left before the ship sinks
func (s *Ship) RemainingHits() int {
	return s.remainingHits
}

// IsSunk returns true once every segment has been hit
func (s *Ship) IsSunk() bool {
	return s.remainingHits == 0
}
