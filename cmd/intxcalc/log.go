package main

import (
	"os"

	"github.com/decred/slog"
)

// log is a logger that is initialized with no output filters. This means
// the package will not perform any logging by default until the caller
// requests it, matching the UseLogger idiom shared across decred-dcrd's
// subpackages.
var log = slog.Disabled

// UseLogger uses a specified Logger to output package logging info.
func UseLogger(logger slog.Logger) {
	log = logger
}

func initLogging(levelName string) error {
	level, ok := slog.LevelFromString(levelName)
	if !ok {
		level = slog.LevelInfo
	}
	backend := slog.NewBackend(os.Stderr)
	logger := backend.Logger("INTX")
	logger.SetLevel(level)
	UseLogger(logger)
	return nil
}
