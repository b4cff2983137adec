package mines

import "strconv"

// Tile is the ground truth of a single cell.
//
// The zero value is Empty, a negative value is a bomb and 1 to 8 is the
// number of bombs among the cell's neighbors.
type Tile int8

const (
	Bomb  Tile = -1
	Empty Tile = 0
)

// BombNeighbor returns the tile of a cell with count adjacent bombs. A count
// of zero is Empty.
func BombNeighbor(count uint8) Tile {
	if count > 8 {
		panic(AssertionError{"a cell has at most 8 neighbors"})
	}
	return Tile(count)
}

func (t Tile) IsBomb() bool {
	return t == Bomb
}

func (t Tile) IsEmpty() bool {
	return t == Empty
}

// BombCount reports the adjacent bomb count of a BombNeighbor tile.
func (t Tile) BombCount() (uint8, bool) {
	if t <= 0 {
		return 0, false
	}
	return uint8(t), true
}

// Tile implements [fmt.Stringer]
func (t Tile) String() string {
	switch {
	case t == Bomb:
		return "*"
	case t == Empty:
		return " "
	case 1 <= t && t <= 8:
		return strconv.Itoa(int(t))
	default:
		return "!"
	}
}
