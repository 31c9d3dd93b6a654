package main

import (
	"io"
	"log/slog"
	"os"
)

// log is the package-level logger. It discards everything until initLogger
// replaces it with a stderr logger, matching the "silent by default" logger pattern used
// throughout this generator.
var log *slog.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))

// initLogger configures log to write to stderr at level.
func initLogger(level slog.Level) {
	log = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
