package mines

import "errors"

// AssertionError is raised with panic when a caller breaks a contract, such
// as revealing a cell outside of the grid.
type AssertionError struct {
	message string
}

// [AssertionError] implements [error]
func (e AssertionError) Error() string {
	return "assertion failed: " + e.message
}

var (
	ErrEmptyGrid        = errors.New("grid must have a non-zero width and height")
	ErrTooManyBombs     = errors.New("bomb count exceeds grid capacity")
	ErrAlreadyGenerated = errors.New("tile map bombs are already set")
	ErrInvalidTileSize  = errors.New("tile size must be positive")
)
