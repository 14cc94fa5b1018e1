package model

import "fmt"

// Coordinate identifies a cell on a board
type Coordinate struct {
	Row int `json:"row"` // 0-indexed from top
	Col int `json:"col"` // 0-indexed from left
}

// neighborOffsets lists the 8 surrounding cells, orthogonal and diagonal
var neighborOffsets = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// Neighbors returns the 8 coordinates around c. Results are not bounds-checked.
func (c Coordinate) Neighbors() []Coordinate {
	result := make([]Coordinate, 0, len(neighborOffsets))
	for _, off := range neighborOffsets {
		result = append(result, Coordinate{Row: c.Row + off[0], Col: c.Col + off[1]})
	}
	return result
}

// InBounds returns true if the coordinate lies on a size x size grid
func (c Coordinate) InBounds(size int) bool {
	return c.Row >= 0 && c.Row < size && c.Col >= 0 && c.Col < size
}

// String formats the coordinate 1-based, the way players type it
func (c Coordinate) String() string {
	return fmt.Sprintf("[%d, %d]", c.Row+1, c.Col+1)
}
