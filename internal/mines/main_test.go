package mines

import (
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/sirupsen/logrus"
)

func TestMain(m *testing.M) {
	Log.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
	})
	m.Run()
}

func newRand() *rand.Rand {
	return rand.New(rand.NewPCG(1, 2))
}

// pickSource mirrors the candidate list of SetBombs so a test can choose
// exactly which cells become bombs.
type pickSource struct {
	candidates []int
	picks      []int
}

func newPickSource(cells int, picks ...int) *pickSource {
	candidates := make([]int, cells)
	for i := range candidates {
		candidates[i] = i
	}
	return &pickSource{candidates: candidates, picks: picks}
}

func (s *pickSource) IntN(n int) int {
	want := s.picks[0]
	s.picks = s.picks[1:]
	i := slices.Index(s.candidates[:n], want)
	if i < 0 {
		panic("cell picked twice")
	}
	s.candidates[i] = s.candidates[n-1]
	return i
}

type spawnedTile struct {
	c       Coordinates
	t       Tile
	size    float32
	padding float32
}

type testSpawner struct {
	next     int
	root     Handle
	position Vec2
	size     Vec2
	tiles    []spawnedTile
}

func (s *testSpawner) SpawnBoard(position, size Vec2) Handle {
	s.position, s.size = position, size
	s.root = "board"
	return s.root
}

func (s *testSpawner) SpawnTile(root Handle, c Coordinates, t Tile, size, padding float32) Handle {
	if root != s.root {
		panic("tile spawned outside of the board")
	}
	s.tiles = append(s.tiles, spawnedTile{c, t, size, padding})
	s.next++
	return s.next
}

// newTestBoard builds a width x height board with bombs at the given cells,
// a fixed tile size of 10 and its anchor at the world origin.
func newTestBoard(width, height uint16, bombs ...Coordinates) *Board {
	picks := make([]int, len(bombs))
	for i, c := range bombs {
		picks[i] = int(c.Y)*int(width) + int(c.X)
	}
	opts := BoardOptions{
		Width:     width,
		Height:    height,
		BombCount: len(bombs),
		TileSize:  FixedTileSize(10),
		Position:  CustomPosition(Vec2{}),
	}
	b, err := Build(opts, Window{}, &testSpawner{}, newPickSource(int(width)*int(height), picks...))
	if err != nil {
		panic(err)
	}
	return b
}
