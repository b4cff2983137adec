package app

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/vancomm/minesweeper-core/internal/mines"
	"github.com/vancomm/minesweeper-core/internal/session"
)

var (
	ErrUnknownCommand = errors.New("unknown command")
	errQuit           = errors.New("quit")
)

type command struct {
	nargs int
	usage string
	run   func(a *App, args []string) error
}

var commands map[string]command

func init() {
	commands = map[string]command{
		"o": {2, "o <x> <y>     open the cell at grid coordinates", (*App).open},
		"t": {2, "t <px> <py>   touch the window at a pointer position", (*App).touch},
		"p": {0, "p             pause or resume", (*App).pause},
		"c": {0, "c             clear the game", (*App).clear},
		"g": {0, "g             load a new game", (*App).load},
		"s": {0, "s             show the board", (*App).show},
		"h": {0, "h             show this help", (*App).help},
		"q": {0, "q             quit", (*App).quit},
	}
}

// execute runs a single command line.
func (a *App) execute(line string) error {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}
	name, args := fields[0], fields[1:]

	cmd, ok := commands[name]
	if !ok {
		return fmt.Errorf("%w %q, type h for help", ErrUnknownCommand, name)
	}
	if len(args) != cmd.nargs {
		return fmt.Errorf("usage: %s", cmd.usage)
	}
	return cmd.run(a, args)
}

func parseXY(args []string) (x uint16, y uint16, err error) {
	xx, err := strconv.ParseUint(args[0], 10, 16)
	if err != nil {
		return 0, 0, fmt.Errorf("first argument must be a non-negative int")
	}
	yy, err := strconv.ParseUint(args[1], 10, 16)
	if err != nil {
		return 0, 0, fmt.Errorf("second argument must be a non-negative int")
	}
	return uint16(xx), uint16(yy), nil
}

func parsePoint(args []string) (mines.Vec2, error) {
	px, err := strconv.ParseFloat(args[0], 32)
	if err != nil {
		return mines.Vec2{}, fmt.Errorf("first argument must be a number")
	}
	py, err := strconv.ParseFloat(args[1], 32)
	if err != nil {
		return mines.Vec2{}, fmt.Errorf("second argument must be a number")
	}
	return mines.Vec2{X: float32(px), Y: float32(py)}, nil
}

func (a *App) open(args []string) error {
	x, y, err := parseXY(args)
	if err != nil {
		return err
	}
	out, err := a.session.Open(mines.Coordinates{X: x, Y: y})
	if err != nil {
		return err
	}
	a.handleOutcome(out)
	return nil
}

func (a *App) touch(args []string) error {
	p, err := parsePoint(args)
	if err != nil {
		return err
	}
	c, out, err := a.session.Click(p)
	if err != nil {
		return err
	}
	a.session.View(func(board *mines.Board, _ session.Status) {
		if board != nil {
			a.logger.Debug(
				"touched",
				slog.String("cell", c.String()),
				slog.String("center", board.TileCenter(c).String()),
			)
		}
	})
	a.handleOutcome(out)
	return nil
}

func (a *App) pause(_ []string) error {
	if err := a.session.TogglePause(); err != nil {
		return err
	}
	a.redraw()
	return nil
}

func (a *App) clear(_ []string) error {
	if err := a.session.Clear(); err != nil {
		return err
	}
	a.redraw()
	return nil
}

func (a *App) load(_ []string) error {
	out, err := a.session.Load()
	if err != nil {
		return err
	}
	a.handleOutcome(out)
	return nil
}

func (a *App) show(_ []string) error {
	a.redraw()
	return nil
}

func (a *App) help(_ []string) error {
	var b strings.Builder
	for _, name := range []string{"o", "t", "p", "c", "g", "s", "h", "q"} {
		b.WriteString(commands[name].usage + "\n")
	}
	a.frames <- b.String()
	return nil
}

func (a *App) quit(_ []string) error {
	return errQuit
}
