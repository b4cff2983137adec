package mines

import (
	"fmt"
	"iter"
)

// Coordinates is a zero-based grid address.
type Coordinates struct {
	X, Y uint16
}

// Coordinates implements [fmt.Stringer]
func (c Coordinates) String() string {
	return fmt.Sprintf("(%d, %d)", c.X, c.Y)
}

// Compare orders coordinates row by row.
func (c Coordinates) Compare(o Coordinates) int {
	if c.Y < o.Y {
		return -1
	}
	if c.Y > o.Y {
		return 1
	}
	if c.X < o.X {
		return -1
	}
	if c.X > o.X {
		return 1
	}
	return 0
}

// neighbors yields the up to 8 cells around c that lie inside a width x
// height grid.
func neighbors(c Coordinates, width, height uint16) iter.Seq[Coordinates] {
	return func(yield func(Coordinates) bool) {
		x, y := int(c.X), int(c.Y)
		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				if dx == 0 && dy == 0 {
					continue
				}
				xx, yy := x+dx, y+dy
				if xx < 0 || xx >= int(width) || yy < 0 || yy >= int(height) {
					continue
				}
				if !yield(Coordinates{uint16(xx), uint16(yy)}) {
					return
				}
			}
		}
	}
}
