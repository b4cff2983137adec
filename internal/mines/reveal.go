package mines

import (
	"fmt"
	"maps"
	"slices"

	"github.com/sirupsen/logrus"
)

type OutcomeKind uint8

const (
	// NoOp means the start cell was already revealed.
	NoOp OutcomeKind = iota
	// Revealed means one or more safe cells were uncovered.
	Revealed
	// BombHit means the start cell was a bomb. The game is lost.
	BombHit
)

// OutcomeKind implements [fmt.Stringer]
func (k OutcomeKind) String() string {
	switch k {
	case NoOp:
		return "noop"
	case Revealed:
		return "revealed"
	case BombHit:
		return "bomb hit"
	default:
		return fmt.Sprintf("OutcomeKind(%d)", uint8(k))
	}
}

// Outcome is the result of a single [Reveal] call.
type Outcome struct {
	Kind OutcomeKind
	// Bomb is the exploded cell when Kind is BombHit.
	Bomb Coordinates
	// Uncovered maps every cell uncovered by the call to its former cover
	// handle, so the host can drop the cover visuals.
	Uncovered map[Coordinates]Handle
}

// Coordinates returns the uncovered cells in row-major order.
func (o Outcome) Coordinates() []Coordinates {
	return slices.SortedFunc(maps.Keys(o.Uncovered), Coordinates.Compare)
}

// Reveal uncovers start. A bomb ends the call at once; an Empty cell floods
// into its covered neighbors, stopping at numbered cells which are revealed
// without being expanded. start must be inside the board.
func Reveal(b *Board, start Coordinates) Outcome {
	if !b.TileMap.InBounds(start) {
		panic(AssertionError{fmt.Sprintf(
			"reveal of %s outside of a %dx%d board",
			start, b.TileMap.width, b.TileMap.height,
		)})
	}

	cover, ok := b.covered[start]
	if !ok {
		return Outcome{Kind: NoOp}
	}

	if b.TileMap.At(start).IsBomb() {
		delete(b.covered, start)
		Log.WithField("coordinates", start).Debug("bomb hit")
		return Outcome{
			Kind:      BombHit,
			Bomb:      start,
			Uncovered: map[Coordinates]Handle{start: cover},
		}
	}

	uncovered := make(map[Coordinates]Handle)
	queue := []Coordinates{start}
	for len(queue) > 0 {
		c := queue[0]
		queue = queue[1:]

		cover, ok := b.covered[c]
		if !ok {
			continue /* reached twice before being visited */
		}
		delete(b.covered, c)
		uncovered[c] = cover

		if !b.TileMap.At(c).IsEmpty() {
			continue
		}
		for n := range b.TileMap.Neighbors(c) {
			if _, ok := b.covered[n]; ok {
				queue = append(queue, n)
			}
		}
	}

	Log.WithFields(logrus.Fields{
		"start":    start,
		"revealed": len(uncovered),
	}).Debug("revealed")

	return Outcome{Kind: Revealed, Uncovered: uncovered}
}

// RemainingSafeCount is the number of covered cells that are not bombs. The
// game is won when it drops to zero.
func RemainingSafeCount(b *Board) int {
	n := 0
	for c := range b.covered {
		if !b.TileMap.At(c).IsBomb() {
			n++
		}
	}
	return n
}
