package config

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"
	"github.com/sirupsen/logrus"
	"github.com/snowzach/rotatefilehook"
)

// NewLogger returns the host logger: colored debug output in development,
// JSON otherwise.
func NewLogger(development bool) *slog.Logger {
	if development {
		return slog.New(
			tint.NewHandler(os.Stderr, &tint.Options{Level: slog.LevelDebug}),
		)
	}
	return slog.New(slog.NewJSONHandler(os.Stderr, nil))
}

// SetupCoreLogs configures the loggers of the game packages and, when
// logFile is set, mirrors their output to a rotating file.
func SetupCoreLogs(development bool, logFile string, logs ...*logrus.Logger) error {
	level := logrus.InfoLevel
	if development {
		level = logrus.DebugLevel
	}

	var hook logrus.Hook
	if logFile != "" {
		var err error
		hook, err = rotatefilehook.NewRotateFileHook(rotatefilehook.RotateFileConfig{
			Filename:   logFile,
			MaxSize:    10, // megabytes
			MaxBackups: 3,
			MaxAge:     28, // days
			Level:      level,
			Formatter: &logrus.JSONFormatter{
				TimestampFormat: time.RFC3339,
			},
		})
		if err != nil {
			return fmt.Errorf("unable to open log file %s: %w", logFile, err)
		}
	}

	for _, log := range logs {
		log.SetLevel(level)
		log.SetFormatter(&logrus.TextFormatter{ForceColors: development})
		if hook != nil {
			log.AddHook(hook)
		}
	}

	return nil
}
