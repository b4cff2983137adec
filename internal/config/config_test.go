package config

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vancomm/minesweeper-core/internal/mines"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	opts := cfg.Board.Options()
	assert.Equal(t, uint16(20), opts.Width)
	assert.Equal(t, uint16(20), opts.Height)
	assert.Equal(t, 40, opts.BombCount)
	assert.Equal(t, mines.AdaptiveTileSize(10, 50), opts.TileSize)
	assert.Equal(t, mines.Centered(mines.Vec2{}), opts.Position)
	assert.True(t, opts.SafeStart)
	assert.Equal(t, mines.Window{Width: 700, Height: 800}, cfg.Window.Metrics())
}

func TestLoadFile(t *testing.T) {
	path := writeFile(t, "mines.yaml", `
board:
  width: 9
  height: 8
  bomb_count: 10
  tile_size:
    fixed: 32
  position:
    custom: {x: -10, y: 5}
window:
  width: 320
  height: 240
seed: 42
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	opts := cfg.Board.Options()
	assert.Equal(t, uint16(9), opts.Width)
	assert.Equal(t, uint16(8), opts.Height)
	assert.Equal(t, 10, opts.BombCount)
	assert.Equal(t, mines.FixedTileSize(32), opts.TileSize)
	assert.Equal(t, mines.CustomPosition(mines.Vec2{X: -10, Y: 5}), opts.Position)
	assert.Equal(t, float32(3), opts.TilePadding, "unset keys keep their default")
	require.NotNil(t, cfg.Seed)
	assert.Equal(t, uint64(42), *cfg.Seed)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadEnv(t *testing.T) {
	t.Setenv("MINES_WIDTH", "30")
	t.Setenv("MINES_HEIGHT", "16")
	t.Setenv("MINES_BOMBS", "99")
	t.Setenv("MINES_SEED", "7")
	t.Setenv("MINES_SAFE_START", "0")
	t.Setenv("MINES_LOG_FILE", "/tmp/mines.log")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, uint16(30), cfg.Board.Width)
	assert.Equal(t, uint16(16), cfg.Board.Height)
	assert.Equal(t, 99, cfg.Board.BombCount)
	assert.Equal(t, uint64(7), *cfg.Seed)
	assert.False(t, cfg.Board.SafeStart)
	assert.Equal(t, "/tmp/mines.log", cfg.LogFile)
}

func TestLoadBadEnv(t *testing.T) {
	t.Setenv("MINES_WIDTH", "-1")
	_, err := Load("")
	assert.ErrorContains(t, err, "MINES_WIDTH")
}

func TestLoadInvalid(t *testing.T) {
	t.Setenv("MINES_BOMBS", "401")
	_, err := Load("")
	assert.ErrorIs(t, err, ErrInvalidConfig)
	assert.ErrorIs(t, err, mines.ErrTooManyBombs)
}

func TestLoadFileRejectsNonFiniteTileSize(t *testing.T) {
	for _, size := range []string{"{min: .nan, max: 50}", "{min: 10, max: .inf}", "{fixed: .nan}"} {
		t.Run(size, func(t *testing.T) {
			path := writeFile(t, "mines.yaml", "board:\n  tile_size: "+size+"\n")
			_, err := Load(path)
			assert.ErrorIs(t, err, ErrInvalidConfig)
			assert.ErrorIs(t, err, mines.ErrInvalidTileSize)
		})
	}
}

func TestValidateNeedsWindowForAdaptiveSize(t *testing.T) {
	cfg := Default()
	cfg.Window = Window{}
	assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)

	cfg.Window = Window{Width: float32(math.NaN()), Height: 800}
	assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)

	cfg.Board.TileSize.Fixed = 20
	assert.NoError(t, cfg.Validate())
}

func TestDevelopment(t *testing.T) {
	t.Setenv("DEVELOPMENT", "1")
	assert.True(t, Development())
	t.Setenv("DEVELOPMENT", "0")
	assert.False(t, Development())
}

func TestSetupCoreLogs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "core.log")
	log := logrus.New()

	require.NoError(t, SetupCoreLogs(true, path, log))
	assert.Equal(t, logrus.DebugLevel, log.GetLevel())

	log.WithField("bombs", 3).Debug("bombs set")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"bombs set"`)
	assert.Contains(t, string(data), `"bombs":3`)
}
