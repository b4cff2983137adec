package app

import (
	"log/slog"
	"sync"

	"github.com/vancomm/minesweeper-core/internal/mines"
)

type entityKind uint8

const (
	boardEntity entityKind = iota
	coverEntity
)

type entity struct {
	kind   entityKind
	parent int
	cell   mines.Coordinates
}

// textHost keeps the entities a graphical host would spawn for a board. The
// text view itself is drawn from the board, entities only track lifetimes.
type textHost struct {
	mu       sync.Mutex
	logger   *slog.Logger
	next     int
	entities map[int]entity
}

func newTextHost(logger *slog.Logger) *textHost {
	return &textHost{
		logger:   logger,
		entities: make(map[int]entity),
	}
}

func (h *textHost) spawn(e entity) int {
	h.next++
	h.entities[h.next] = e
	return h.next
}

func (h *textHost) SpawnBoard(position, size mines.Vec2) mines.Handle {
	h.mu.Lock()
	defer h.mu.Unlock()

	id := h.spawn(entity{kind: boardEntity})
	h.logger.Debug(
		"spawned board",
		slog.Int("id", id),
		slog.String("position", position.String()),
		slog.String("size", size.String()),
	)
	return id
}

func (h *textHost) SpawnTile(root mines.Handle, c mines.Coordinates, _ mines.Tile, _, _ float32) mines.Handle {
	h.mu.Lock()
	defer h.mu.Unlock()

	return h.spawn(entity{kind: coverEntity, parent: root.(int), cell: c})
}

func (h *textHost) Despawn(root mines.Handle) {
	h.mu.Lock()
	defer h.mu.Unlock()

	id := root.(int)
	for k, e := range h.entities {
		if e.parent == id && e.kind == coverEntity {
			delete(h.entities, k)
		}
	}
	delete(h.entities, id)
	h.logger.Debug("despawned board", slog.Int("id", id))
}

// uncover drops the cover entities of the cells revealed by out.
func (h *textHost) uncover(out mines.Outcome) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for _, cover := range out.Uncovered {
		delete(h.entities, cover.(int))
	}
}

func (h *textHost) covers() (n int) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for _, e := range h.entities {
		if e.kind == coverEntity {
			n++
		}
	}
	return
}
