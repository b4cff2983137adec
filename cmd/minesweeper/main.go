// minesweeper plays a game of minesweeper in the terminal.
//
// Usage:
//
//	minesweeper [flags]
//
// Commands are read from stdin one per line, type h for the list.
package main

import (
	"context"
	"fmt"
	"hash/maphash"
	"log/slog"
	"math/rand/v2"
	"os"
	"os/signal"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vancomm/minesweeper-core/internal/app"
	"github.com/vancomm/minesweeper-core/internal/config"
	"github.com/vancomm/minesweeper-core/internal/mines"
	"github.com/vancomm/minesweeper-core/internal/session"
)

var (
	flagConfig  string
	flagPreset  string
	flagBoard   string
	flagSeed    uint64
	flagLogFile string
)

var rootCmd = &cobra.Command{
	Use:   "minesweeper",
	Short: "Play minesweeper in your terminal",
	Long: `Play minesweeper in your terminal.

Settings are read from the defaults, the --config YAML file, MINES_* env
variables and finally the flags below.

Examples:
  minesweeper --preset expert
  minesweeper --board "width=9&height=9&bomb_count=10&tile_size.fixed=30"
  minesweeper --seed 42 --log-file mines.log`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

func init() {
	rootCmd.Flags().StringVar(&flagConfig, "config", "", "Path to a YAML config file")
	rootCmd.Flags().StringVar(&flagPreset, "preset", "",
		"Difficulty preset: "+strings.Join(config.Presets(), ", "))
	rootCmd.Flags().StringVar(&flagBoard, "board", "", "Board overrides as a url query")
	rootCmd.Flags().Uint64Var(&flagSeed, "seed", 0, "RNG seed for reproducible boards")
	rootCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write game logs to a rotating file")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func createRand(seed *uint64) *rand.Rand {
	if seed != nil {
		return rand.New(rand.NewPCG(*seed, *seed))
	}
	return rand.New(rand.NewPCG(
		new(maphash.Hash).Sum64(), new(maphash.Hash).Sum64(),
	))
}

func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, err
	}

	if flagPreset != "" {
		if err := cfg.Board.ApplyPreset(flagPreset); err != nil {
			return nil, err
		}
	}
	if flagBoard != "" {
		if cfg.Board, err = config.ParseBoardQuery(flagBoard, cfg.Board); err != nil {
			return nil, err
		}
	}
	if cmd.Flags().Changed("seed") {
		cfg.Seed = &flagSeed
	}
	if flagLogFile != "" {
		cfg.LogFile = flagLogFile
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func run(cmd *cobra.Command, _ []string) error {
	development := config.Development()
	logger := config.NewLogger(development)

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	if err := config.SetupCoreLogs(development, cfg.LogFile, mines.Log, session.Log); err != nil {
		return err
	}

	ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer cancel()

	a, err := app.New(logger, cfg, createRand(cfg.Seed), os.Stdin, os.Stdout)
	if err != nil {
		return err
	}

	logger.Info(
		"game online",
		slog.Int("width", int(cfg.Board.Width)),
		slog.Int("height", int(cfg.Board.Height)),
		slog.Int("bombs", cfg.Board.BombCount),
	)

	return a.Run(ctx)
}
