package session

import (
	"errors"
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/vancomm/minesweeper-core/internal/mines"
)

var Log = logrus.New()

var (
	ErrNotRunning  = errors.New("game is not running")
	ErrGameOver    = errors.New("game is over")
	ErrOutOfBounds = errors.New("position is outside of the board")
	ErrTransition  = errors.New("invalid state transition")
)

// Host is the collaborator that owns the visuals of a board.
type Host interface {
	mines.Spawner
	// Despawn destroys the board root and everything under it.
	Despawn(root mines.Handle)
}

// Session owns the board of one game and serializes every access to it.
type Session struct {
	mu sync.Mutex

	opts   mines.BoardOptions
	window mines.Window
	host   Host
	rnd    mines.Source

	states stack
	board  *mines.Board
	result Result
}

// New returns a session in the Out state. Call [Session.Load] to start a
// game.
func New(opts mines.BoardOptions, window mines.Window, host Host, rnd mines.Source) (*Session, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	return &Session{
		opts:   opts,
		window: window,
		host:   host,
		rnd:    rnd,
		states: stack{Out},
	}, nil
}

// Status is a snapshot of a session.
type Status struct {
	State     State
	Result    Result
	Remaining int
	Covered   int
	Bombs     int
}

func (s *Session) Status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status()
}

// View calls fn with the current board while holding the session lock. fn
// must not retain the board nor call back into the session. board is nil
// when no game is loaded.
func (s *Session) View(fn func(board *mines.Board, status Status)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.board, s.status())
}

func (s *Session) status() Status {
	st := Status{State: s.states.current(), Result: s.result}
	if s.board != nil {
		st.Remaining = mines.RemainingSafeCount(s.board)
		st.Covered = s.board.CoveredCount()
		st.Bombs = s.board.TileMap.BombCount()
	}
	return st
}

// Load builds a new board and enters the InGame state. The returned outcome
// is the safe-start reveal, if any.
func (s *Session) Load() (mines.Outcome, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.states.current() != Out {
		return mines.Outcome{}, fmt.Errorf("%w: load from %s", ErrTransition, s.states.current())
	}

	Log.Info("loading game")
	board, err := mines.Build(s.opts, s.window, s.host, s.rnd)
	if err != nil {
		return mines.Outcome{}, fmt.Errorf("unable to build board: %w", err)
	}

	if c, ok := board.SafeStart(); ok {
		Log.WithFields(logrus.Fields{
			"start":    c,
			"revealed": len(board.Opening().Uncovered),
		}).Info("safe start")
	}

	s.board = board
	s.result = Playing
	s.states.set(InGame)
	s.updateResult(board.Opening())

	return board.Opening(), nil
}

// Clear leaves the game and destroys its board.
func (s *Session) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.states.current() != InGame {
		return fmt.Errorf("%w: clear from %s", ErrTransition, s.states.current())
	}

	Log.Info("clearing game")
	s.host.Despawn(s.board.Root)
	s.board = nil
	s.states.set(Out)
	return nil
}

// Pause pushes the Pause state over a running game.
func (s *Session) Pause() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pause()
}

// Resume pops the Pause state.
func (s *Session) Resume() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.resume()
}

// TogglePause pauses a running game or resumes a paused one.
func (s *Session) TogglePause() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.states.current() == Pause {
		return s.resume()
	}
	return s.pause()
}

func (s *Session) pause() error {
	if s.states.current() != InGame {
		return fmt.Errorf("%w: pause from %s", ErrTransition, s.states.current())
	}
	Log.Info("entering pause")
	s.states.push(Pause)
	return nil
}

func (s *Session) resume() error {
	if s.states.current() != Pause {
		return fmt.Errorf("%w: resume from %s", ErrTransition, s.states.current())
	}
	Log.Info("leaving pause")
	s.states.pop()
	return nil
}

// Click reveals the cell under a cursor given in window space.
func (s *Session) Click(cursor mines.Vec2) (mines.Coordinates, mines.Outcome, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkInput(); err != nil {
		return mines.Coordinates{}, mines.Outcome{}, err
	}

	position := s.window.WorldPosition(cursor)
	c, ok := s.board.ScreenToCoordinates(position)
	if !ok {
		Log.WithFields(logrus.Fields{
			"cursor":   cursor,
			"position": position,
		}).Debug("click outside of the board")
		return c, mines.Outcome{}, fmt.Errorf("%w: %s", ErrOutOfBounds, position)
	}

	return c, s.reveal(c), nil
}

// Open reveals the cell at c.
func (s *Session) Open(c mines.Coordinates) (mines.Outcome, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkInput(); err != nil {
		return mines.Outcome{}, err
	}
	if !s.board.TileMap.InBounds(c) {
		return mines.Outcome{}, fmt.Errorf("%w: %s", ErrOutOfBounds, c)
	}

	return s.reveal(c), nil
}

// checkInput reports whether the session accepts player input. Callers hold
// the lock.
func (s *Session) checkInput() error {
	if s.states.current() != InGame {
		return fmt.Errorf("%w (state = %s)", ErrNotRunning, s.states.current())
	}
	if s.result != Playing {
		return fmt.Errorf("%w (%s)", ErrGameOver, s.result)
	}
	return nil
}

func (s *Session) reveal(c mines.Coordinates) mines.Outcome {
	cover, _ := s.board.Cover(c)
	Log.WithFields(logrus.Fields{
		"coordinates": c,
		"cover":       cover,
	}).Debug("tile trigger")
	out := mines.Reveal(s.board, c)
	s.updateResult(out)
	return out
}

func (s *Session) updateResult(out mines.Outcome) {
	switch {
	case out.Kind == mines.BombHit:
		s.result = Lost
		Log.WithField("bomb", out.Bomb).Info("boom")
	case mines.RemainingSafeCount(s.board) == 0:
		s.result = Won
		Log.Info("board completed")
	}
}
