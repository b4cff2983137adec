package app

import (
	"fmt"
	"io"
	"strings"

	"github.com/vancomm/minesweeper-core/internal/mines"
	"github.com/vancomm/minesweeper-core/internal/session"
)

// render draws the board top row first with row and column labels. Covered
// cells are '#', except bombs once the game is lost.
func render(w io.Writer, board *mines.Board, st session.Status) {
	fmt.Fprintf(w, "state: %s, result: %s, remaining: %d\n", st.State, st.Result, st.Remaining)
	if board == nil {
		return
	}

	width, height := board.TileMap.Width(), board.TileMap.Height()
	var b strings.Builder
	for y := int(height) - 1; y >= 0; y-- {
		fmt.Fprintf(&b, "%3d ", y)
		for x := range width {
			c := mines.Coordinates{X: x, Y: uint16(y)}
			t := board.TileMap.At(c)
			switch {
			case board.Covered(c) && !(st.Result == session.Lost && t.IsBomb()):
				b.WriteString("# ")
			case t.IsEmpty():
				b.WriteString(". ")
			default:
				b.WriteString(t.String() + " ")
			}
		}
		b.WriteByte('\n')
	}
	b.WriteString("    ")
	for x := range width {
		fmt.Fprintf(&b, "%d ", x%10)
	}
	b.WriteByte('\n')

	io.WriteString(w, b.String())
}
