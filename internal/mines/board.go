package mines

import (
	"fmt"
	"math"

	"github.com/sirupsen/logrus"
)

// Handle is an opaque reference to a visual owned by the host. The board
// stores and forwards handles but never inspects them.
type Handle any

// Spawner is implemented by the host to create the visuals of a board while
// it is being built.
type Spawner interface {
	// SpawnBoard creates the board root anchored at position.
	SpawnBoard(position, size Vec2) Handle
	// SpawnTile creates the visuals of the tile at c under root and returns
	// the handle of its cover.
	SpawnTile(root Handle, c Coordinates, t Tile, size, padding float32) Handle
}

// TileSize is either a fixed world size or a range the size is fitted into
// from the window metrics.
type TileSize struct {
	Fixed    float32
	Adaptive bool
	Min, Max float32
}

func FixedTileSize(size float32) TileSize {
	return TileSize{Fixed: size}
}

func AdaptiveTileSize(minSize, maxSize float32) TileSize {
	return TileSize{Adaptive: true, Min: minSize, Max: maxSize}
}

// BoardPosition either centers the board at the world origin plus Offset or
// anchors its bottom-left corner at a Custom point.
type BoardPosition struct {
	Offset Vec2
	Custom *Vec2
}

func Centered(offset Vec2) BoardPosition {
	return BoardPosition{Offset: offset}
}

func CustomPosition(p Vec2) BoardPosition {
	return BoardPosition{Custom: &p}
}

type BoardOptions struct {
	Width, Height uint16
	BombCount     int
	TileSize      TileSize
	Position      BoardPosition
	TilePadding   float32
	SafeStart     bool
}

// DefaultBoardOptions is a 20x20 board with 40 bombs fitted into the window
// and opened by a safe start.
func DefaultBoardOptions() BoardOptions {
	return BoardOptions{
		Width:       20,
		Height:      20,
		BombCount:   40,
		TileSize:    AdaptiveTileSize(10, 50),
		Position:    Centered(Vec2{}),
		TilePadding: 3,
		SafeStart:   true,
	}
}

// validSize reports whether f is a positive finite size. NaN fails every
// comparison and so is rejected too.
func validSize(f float32) bool {
	return f > 0 && !math.IsInf(float64(f), 1)
}

// Validate reports configuration errors that must prevent a board from
// being built.
func (o BoardOptions) Validate() error {
	if o.Width == 0 || o.Height == 0 {
		return fmt.Errorf("%w (width = %d, height = %d)", ErrEmptyGrid, o.Width, o.Height)
	}
	if cells := int(o.Width) * int(o.Height); o.BombCount < 0 || o.BombCount > cells {
		return fmt.Errorf("%w (bombs = %d, cells = %d)", ErrTooManyBombs, o.BombCount, cells)
	}
	ts := o.TileSize
	if !ts.Adaptive && !validSize(ts.Fixed) ||
		ts.Adaptive && !(validSize(ts.Min) && validSize(ts.Max) && ts.Max >= ts.Min) {
		return fmt.Errorf("%w (tile size = %+v)", ErrInvalidTileSize, ts)
	}
	return nil
}

// Board is the state of one game: the generated map, where it lies in the
// world and which cells are still covered.
type Board struct {
	TileMap  *TileMap
	Bounds   Bounds2
	TileSize float32
	Root     Handle

	covered   map[Coordinates]Handle
	safeStart *Coordinates
	opening   Outcome
}

// Build generates a tile map from opts and lays it out in the window. The
// host's spawner is called once for the board and once per tile. When
// opts.SafeStart is set the first Empty cell is revealed before Build
// returns, see [Board.Opening].
func Build(opts BoardOptions, window Window, spawner Spawner, r Source) (*Board, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	tileMap, err := NewTileMap(opts.Width, opts.Height)
	if err != nil {
		return nil, err
	}
	if err := tileMap.SetBombs(opts.BombCount, r); err != nil {
		return nil, err
	}
	if Log.IsLevelEnabled(logrus.DebugLevel) {
		Log.Debug("\n" + tileMap.String())
	}

	tileSize := opts.TileSize.Fixed
	if opts.TileSize.Adaptive {
		tileSize = adaptiveTileSize(window, opts.TileSize.Min, opts.TileSize.Max, tileMap.width, tileMap.height)
	}

	size := Vec2{float32(tileMap.width), float32(tileMap.height)}.Scale(tileSize)
	Log.WithField("size", size).Info("board size")

	var position Vec2
	if opts.Position.Custom != nil {
		position = *opts.Position.Custom
	} else {
		position = size.Scale(-0.5).Add(opts.Position.Offset)
	}

	b := &Board{
		TileMap:  tileMap,
		Bounds:   Bounds2{Position: position, Size: size},
		TileSize: tileSize,
		covered:  make(map[Coordinates]Handle, tileMap.Len()),
	}

	b.Root = spawner.SpawnBoard(position, size)
	for c, t := range tileMap.All() {
		b.covered[c] = spawner.SpawnTile(b.Root, c, t, tileSize, opts.TilePadding)
		if opts.SafeStart && b.safeStart == nil && t.IsEmpty() {
			b.safeStart = &c
		}
	}

	if b.safeStart != nil {
		b.opening = Reveal(b, *b.safeStart)
		Log.WithFields(logrus.Fields{
			"start":    b.safeStart,
			"revealed": len(b.opening.Uncovered),
		}).Debug("safe start")
	}

	return b, nil
}

// adaptiveTileSize fits a width x height grid into the window and clamps the
// result to [minSize, maxSize].
func adaptiveTileSize(window Window, minSize, maxSize float32, width, height uint16) float32 {
	fit := min(window.Width/float32(width), window.Height/float32(height))
	if math.IsNaN(float64(fit)) {
		return minSize
	}
	return min(max(fit, minSize), maxSize)
}

// Covered reports whether c has not been revealed yet.
func (b *Board) Covered(c Coordinates) bool {
	_, ok := b.covered[c]
	return ok
}

// CoveredCount is the number of cells left to reveal, bombs included.
func (b *Board) CoveredCount() int {
	return len(b.covered)
}

// Cover returns the host handle of the cover over c.
func (b *Board) Cover(c Coordinates) (Handle, bool) {
	h, ok := b.covered[c]
	return h, ok
}

// SafeStart returns the cell revealed by the safe start: the first Empty
// cell of the map in row-major order. ok is false when the board was built
// without a safe start or the map has no Empty cell.
func (b *Board) SafeStart() (c Coordinates, ok bool) {
	if b.safeStart == nil {
		return Coordinates{}, false
	}
	return *b.safeStart, true
}

// Opening is the outcome of the safe-start reveal performed by [Build]; it
// is a NoOp when none took place.
func (b *Board) Opening() Outcome {
	return b.opening
}

// TileCenter is the center of the tile at c relative to the board anchor.
func (b *Board) TileCenter(c Coordinates) Vec2 {
	return Vec2{
		float32(c.X)*b.TileSize + b.TileSize/2,
		float32(c.Y)*b.TileSize + b.TileSize/2,
	}
}

// ScreenToCoordinates maps a world position to the grid cell under it. ok is
// false when p lies outside of the board.
func (b *Board) ScreenToCoordinates(p Vec2) (c Coordinates, ok bool) {
	offset, ok := b.Bounds.RelativePosition(p)
	if !ok {
		return Coordinates{}, false
	}
	x := clamp(floor32(offset.X/b.TileSize), 0, int(b.TileMap.width)-1)
	y := clamp(floor32(offset.Y/b.TileSize), 0, int(b.TileMap.height)-1)
	return Coordinates{uint16(x), uint16(y)}, true
}
