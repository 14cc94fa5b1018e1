package model

// BoardSize is the standard grid dimension
const BoardSize = 6

// Fleet is the multiset of ship lengths each side places, in placement order
type Fleet []int

// StandardFleet returns the fleet both sides place in a standard game
func StandardFleet() Fleet {
	return Fleet{3, 2, 2, 1, 1, 1, 1}
}

// Size returns the number of ships in the fleet
func (f Fleet) Size() int {
	return len(f)
}

// Cells returns the number of cells the fleet occupies
func (f Fleet) Cells() int {
	total := 0
	for _, length := range f {
		total += length
	}
	return total
}
