package mines

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func countBombs(m *TileMap) (n int) {
	for _, t := range m.All() {
		if t.IsBomb() {
			n++
		}
	}
	return
}

func assertAdjacency(t *testing.T, m *TileMap) {
	t.Helper()
	for c, tile := range m.All() {
		if tile.IsBomb() {
			continue
		}
		var want uint8
		for n := range m.Neighbors(c) {
			if m.At(n).IsBomb() {
				want++
			}
		}
		assert.Equal(t, BombNeighbor(want), tile, "tile at %s", c)
	}
}

func TestNewTileMap(t *testing.T) {
	m, err := NewTileMap(4, 3)
	require.NoError(t, err)
	assert.Equal(t, 12, m.Len())
	for _, tile := range m.All() {
		assert.Equal(t, Empty, tile)
	}

	_, err = NewTileMap(0, 3)
	assert.ErrorIs(t, err, ErrEmptyGrid)
	_, err = NewTileMap(3, 0)
	assert.ErrorIs(t, err, ErrEmptyGrid)
}

func TestSetBombsCounts(t *testing.T) {
	t.Parallel()

	sizes := []struct{ w, h uint16 }{{1, 1}, {3, 3}, {5, 2}, {9, 9}}
	for _, size := range sizes {
		t.Run(fmt.Sprintf("%dx%d", size.w, size.h), func(t *testing.T) {
			t.Parallel()
			r := newRand()
			for count := range int(size.w)*int(size.h) + 1 {
				m, err := NewTileMap(size.w, size.h)
				require.NoError(t, err)
				require.NoError(t, m.SetBombs(count, r))
				assert.Equal(t, count, countBombs(m))
				assert.Equal(t, count, m.BombCount())
				assertAdjacency(t, m)
			}
		})
	}
}

func TestSetBombsUniform(t *testing.T) {
	t.Parallel()

	const (
		rounds = 90000
		bombs  = 2
	)
	r := newRand()
	var hits [9]int
	for range rounds {
		m, err := NewTileMap(3, 3)
		require.NoError(t, err)
		require.NoError(t, m.SetBombs(bombs, r))
		for c, tile := range m.All() {
			if tile.IsBomb() {
				hits[m.index(c)]++
			}
		}
	}

	// every cell is a bomb in 2 of 9 maps, the standard deviation is ~125
	for i, n := range hits {
		assert.InDelta(t, rounds*bombs/9, n, 750, "bomb frequency of cell %d", i)
	}
}

func TestSetBombsRejectsBadCount(t *testing.T) {
	m, err := NewTileMap(3, 3)
	require.NoError(t, err)
	assert.ErrorIs(t, m.SetBombs(10, newRand()), ErrTooManyBombs)
	assert.ErrorIs(t, m.SetBombs(-1, newRand()), ErrTooManyBombs)
	assert.Equal(t, 0, countBombs(m))
}

func TestSetBombsOnce(t *testing.T) {
	m, err := NewTileMap(3, 3)
	require.NoError(t, err)
	require.NoError(t, m.SetBombs(2, newRand()))
	assert.ErrorIs(t, m.SetBombs(2, newRand()), ErrAlreadyGenerated)
	assert.Equal(t, 2, countBombs(m))
}

func TestSingleBombInCenter(t *testing.T) {
	m, err := NewTileMap(3, 3)
	require.NoError(t, err)
	require.NoError(t, m.SetBombs(1, newPickSource(9, 4)))

	for c, tile := range m.All() {
		if c == (Coordinates{1, 1}) {
			assert.Equal(t, Bomb, tile)
		} else {
			assert.Equal(t, BombNeighbor(1), tile, "tile at %s", c)
		}
	}
}

func TestNeighborsClipped(t *testing.T) {
	m, err := NewTileMap(3, 3)
	require.NoError(t, err)

	count := func(c Coordinates) (n int) {
		for range m.Neighbors(c) {
			n++
		}
		return
	}
	assert.Equal(t, 3, count(Coordinates{0, 0}))
	assert.Equal(t, 5, count(Coordinates{1, 0}))
	assert.Equal(t, 8, count(Coordinates{1, 1}))
	assert.Equal(t, 3, count(Coordinates{2, 2}))
}

func TestTileMapString(t *testing.T) {
	m, err := NewTileMap(2, 2)
	require.NoError(t, err)
	// bomb at (0, 1), the top-left cell
	require.NoError(t, m.SetBombs(1, newPickSource(4, 2)))

	want := "Map (2, 2) with 1 bombs:\n" +
		"----\n" +
		"|*1|\n" +
		"|11|\n" +
		"----"
	assert.Equal(t, want, m.String())
}

func TestAtOutOfBounds(t *testing.T) {
	m, err := NewTileMap(2, 2)
	require.NoError(t, err)
	assert.Panics(t, func() { m.At(Coordinates{2, 0}) })
}
