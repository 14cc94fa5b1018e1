package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShipCoordinatesAreContiguous(t *testing.T) {
	for _, orientation := range []Orientation{Vertical, Horizontal} {
		for length := 1; length <= 4; length++ {
			ship := NewShip(length, Coordinate{Row: 1, Col: 2}, orientation)

			coords, err := ship.Coordinates(BoardSize)
			require.NoError(t, err)
			require.Len(t, coords, length)

			for i, c := range coords {
				if orientation == Vertical {
					assert.Equal(t, 2, c.Col, "vertical ship must keep its column")
					assert.Equal(t, 1+i, c.Row)
				} else {
					assert.Equal(t, 1, c.Row, "horizontal ship must keep its row")
					assert.Equal(t, 2+i, c.Col)
				}
			}
		}
	}
}

func TestShipCoordinatesOutOfBounds(t *testing.T) {
	ship := NewShip(3, Coordinate{Row: 4, Col: 0}, Vertical)
	_, err := ship.Coordinates(BoardSize)
	assert.ErrorIs(t, err, ErrOutOfBounds)

	ship = NewShip(2, Coordinate{Row: 0, Col: 5}, Horizontal)
	_, err = ship.Coordinates(BoardSize)
	assert.ErrorIs(t, err, ErrOutOfBounds)

	ship = NewShip(1, Coordinate{Row: -1, Col: 0}, Vertical)
	_, err = ship.Coordinates(BoardSize)
	assert.ErrorIs(t, err, ErrOutOfBounds)
}

func TestShipCoordinatesReturnsCopy(t *testing.T) {
	ship := NewShip(2, Coordinate{Row: 0, Col: 0}, Horizontal)

	first, err := ship.Coordinates(BoardSize)
	require.NoError(t, err)
	first[0] = Coordinate{Row: 5, Col: 5}

	second, err := ship.Coordinates(BoardSize)
	require.NoError(t, err)
	assert.Equal(t, Coordinate{Row: 0, Col: 0}, second[0])
}

func TestShipRegisterHit(t *testing.T) {
	ship := NewShip(2, Coordinate{Row: 0, Col: 0}, Vertical)
	assert.Equal(t, 2, ship.RemainingHits())

	assert.False(t, ship.RegisterHit())
	assert.False(t, ship.IsSunk())
	assert.True(t, ship.RegisterHit())
	assert.True(t, ship.IsSunk())
	assert.Equal(t, 0, ship.RemainingHits())

	assert.Panics(t, func() { ship.RegisterHit() })
}

func TestParseOrientation(t *testing.T) {
	for _, in := range []string{"1", "v", "V", " vertical "} {
		o, err := ParseOrientation(in)
		require.NoError(t, err, in)
		assert.Equal(t, Vertical, o)
	}
	for _, in := range []string{"2", "h", "Horizontal"} {
		o, err := ParseOrientation(in)
		require.NoError(t, err, in)
		assert.Equal(t, Horizontal, o)
	}
	for _, in := range []string{"", "3", "up"} {
		_, err := ParseOrientation(in)
		assert.ErrorIs(t, err, ErrInvalidOrientation, in)
	}
}

func TestCoordinateNeighbors(t *testing.T) {
	neighbors := Coordinate{Row: 2, Col: 2}.Neighbors()
	require.Len(t, neighbors, 8)
	assert.Contains(t, neighbors, Coordinate{Row: 1, Col: 1})
	assert.Contains(t, neighbors, Coordinate{Row: 3, Col: 3})
	assert.NotContains(t, neighbors, Coordinate{Row: 2, Col: 2})
}

func TestCoordinateString(t *testing.T) {
	assert.Equal(t, "[1, 6]", Coordinate{Row: 0, Col: 5}.String())
}
