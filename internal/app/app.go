package app

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/vancomm/minesweeper-core/internal/config"
	"github.com/vancomm/minesweeper-core/internal/mines"
	"github.com/vancomm/minesweeper-core/internal/session"
)

// App is a terminal host: it reads commands line by line, dispatches them to
// a game session and prints the board after every change.
type App struct {
	logger  *slog.Logger
	session *session.Session
	host    *textHost
	in      io.Reader

	outMu  sync.Mutex
	out    io.Writer
	frames chan string
}

func New(logger *slog.Logger, cfg *config.Config, rnd mines.Source, in io.Reader, out io.Writer) (*App, error) {
	host := newTextHost(logger)

	s, err := session.New(cfg.Board.Options(), cfg.Window.Metrics(), host, rnd)
	if err != nil {
		return nil, fmt.Errorf("unable to create session: %w", err)
	}

	app := &App{
		logger:  logger,
		session: s,
		host:    host,
		in:      in,
		out:     out,
	}

	return app, nil
}

// Run loads a game and processes commands until the input ends, a quit
// command is read or ctx is done.
func (a *App) Run(ctx context.Context) error {
	a.frames = make(chan string, 16)
	lines := make(chan string)

	g, gCtx := errgroup.WithContext(ctx)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(a.in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-gCtx.Done():
				return
			}
		}
		if err := scanner.Err(); err != nil {
			a.logger.Error("unable to read input", slog.Any("error", err))
		}
	}()

	g.Go(func() error {
		defer close(a.frames)
		return a.dispatch(gCtx, lines)
	})
	g.Go(func() error {
		for frame := range a.frames {
			a.print(frame)
		}
		return nil
	})

	err := g.Wait()
	if errors.Is(err, errQuit) || errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func (a *App) dispatch(ctx context.Context, lines <-chan string) error {
	if err := a.load(nil); err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case line, ok := <-lines:
			if !ok {
				return nil
			}
			err := a.execute(line)
			if errors.Is(err, errQuit) {
				return err
			}
			if err != nil {
				a.logger.Debug("command failed", slog.String("line", line), slog.Any("error", err))
				a.frames <- "error: " + err.Error() + "\n"
			}
		}
	}
}

// handleOutcome updates the host entities after a reveal and redraws.
func (a *App) handleOutcome(out mines.Outcome) {
	a.host.uncover(out)
	a.logger.Debug(
		"reveal",
		slog.String("outcome", out.Kind.String()),
		slog.Int("uncovered", len(out.Uncovered)),
		slog.Int("covers", a.host.covers()),
	)

	var b strings.Builder
	switch out.Kind {
	case mines.BombHit:
		fmt.Fprintf(&b, "BOOM at %s\n", out.Bomb)
	case mines.Revealed:
		fmt.Fprintf(&b, "revealed %d cells\n", len(out.Uncovered))
	}
	a.session.View(func(board *mines.Board, st session.Status) {
		render(&b, board, st)
		if st.Result == session.Won {
			b.WriteString("board completed!\n")
		}
	})
	a.frames <- b.String()
}

func (a *App) redraw() {
	var b strings.Builder
	a.session.View(func(board *mines.Board, st session.Status) {
		render(&b, board, st)
	})
	a.frames <- b.String()
}

func (a *App) print(s string) {
	a.outMu.Lock()
	defer a.outMu.Unlock()
	if _, err := io.WriteString(a.out, s); err != nil {
		a.logger.Error("unable to write output", slog.Any("error", err))
	}
}
