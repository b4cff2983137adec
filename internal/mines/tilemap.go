package mines

import (
	"fmt"
	"iter"
	"strings"
)

// Source supplies uniform random integers in [0, n). [*rand.Rand] from
// math/rand/v2 satisfies it.
type Source interface {
	IntN(n int) int
}

// TileMap is a write-once grid of tiles stored row-major, cell (x, y) at
// index y*width+x.
type TileMap struct {
	width, height uint16
	bombCount     int
	generated     bool
	tiles         []Tile
}

// NewTileMap returns a width x height map of Empty tiles.
func NewTileMap(width, height uint16) (*TileMap, error) {
	if width == 0 || height == 0 {
		return nil, fmt.Errorf("%w (width = %d, height = %d)", ErrEmptyGrid, width, height)
	}
	return &TileMap{
		width:  width,
		height: height,
		tiles:  make([]Tile, int(width)*int(height)),
	}, nil
}

func (m *TileMap) Width() uint16  { return m.width }
func (m *TileMap) Height() uint16 { return m.height }
func (m *TileMap) BombCount() int { return m.bombCount }

// Len is the number of cells of the map.
func (m *TileMap) Len() int { return len(m.tiles) }

func (m *TileMap) InBounds(c Coordinates) bool {
	return c.X < m.width && c.Y < m.height
}

func (m *TileMap) index(c Coordinates) int {
	return int(c.Y)*int(m.width) + int(c.X)
}

func (m *TileMap) coordinates(i int) Coordinates {
	return Coordinates{X: uint16(i % int(m.width)), Y: uint16(i / int(m.width))}
}

// At returns the tile at c. c must be inside the map.
func (m *TileMap) At(c Coordinates) Tile {
	if !m.InBounds(c) {
		panic(AssertionError{fmt.Sprintf("%s is outside of a %dx%d map", c, m.width, m.height)})
	}
	return m.tiles[m.index(c)]
}

// Neighbors yields the cells adjacent to c, clipped at the map edges.
func (m *TileMap) Neighbors(c Coordinates) iter.Seq[Coordinates] {
	return neighbors(c, m.width, m.height)
}

// All yields every cell of the map in row-major order.
func (m *TileMap) All() iter.Seq2[Coordinates, Tile] {
	return func(yield func(Coordinates, Tile) bool) {
		for i, t := range m.tiles {
			if !yield(m.coordinates(i), t) {
				return
			}
		}
	}
}

// SetBombs places count bombs on distinct cells chosen uniformly at random
// and derives the neighbor count of every other cell. It may only be called
// once per map.
func (m *TileMap) SetBombs(count int, r Source) error {
	if m.generated {
		return ErrAlreadyGenerated
	}
	if count < 0 || count > len(m.tiles) {
		return fmt.Errorf(
			"%w (bombs = %d, cells = %d)", ErrTooManyBombs, count, len(m.tiles),
		)
	}

	/*
	 * Pick the bombs off a list of candidate cells. Every pick swaps the
	 * last free candidate into the slot that was taken, so a cell is never
	 * drawn twice.
	 */
	candidates := make([]int, len(m.tiles))
	for i := range candidates {
		candidates[i] = i
	}
	k := len(candidates)
	for range count {
		i := r.IntN(k)
		m.tiles[candidates[i]] = Bomb
		k--
		candidates[i] = candidates[k]
	}

	for i, t := range m.tiles {
		if t.IsBomb() {
			continue
		}
		var n uint8
		for nc := range m.Neighbors(m.coordinates(i)) {
			if m.tiles[m.index(nc)].IsBomb() {
				n++
			}
		}
		m.tiles[i] = BombNeighbor(n)
	}

	m.bombCount = count
	m.generated = true

	Log.WithField("bombs", count).Debug("bombs set")

	return nil
}

// String renders the map one row per line, top row first.
func (m *TileMap) String() string {
	var b strings.Builder
	sep := strings.Repeat("-", int(m.width)+2)
	fmt.Fprintf(&b, "Map (%d, %d) with %d bombs:\n", m.width, m.height, m.bombCount)
	b.WriteString(sep + "\n")
	for y := int(m.height) - 1; y >= 0; y-- {
		b.WriteByte('|')
		for x := range int(m.width) {
			b.WriteString(m.tiles[y*int(m.width)+x].String())
		}
		b.WriteString("|\n")
	}
	b.WriteString(sep)
	return b.String()
}
