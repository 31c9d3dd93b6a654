// Package config holds the generator's run-time options: the output
// directory the driver writes every artefact under, and the logging level
// derived from the root command's --verbose/--quiet flags via
// LevelFromFlags.
package config

import "log/slog"

// Options configures one driver run. The zero value is a valid, usable
// configuration (OutDir defaults to "generated", Level defaults to Info).
type Options struct {
	// OutDir is the directory every target artefact is written under.
	OutDir string
	// Level is the minimum slog level the driver's logger emits.
	Level slog.Level
	// List, when true, makes the driver print target paths and exit
	// without writing anything.
	List bool
}

// DefaultOutDir is used when Options.OutDir is left empty.
const DefaultOutDir = "generated"

// DefaultOptions returns the configuration used when the CLI is invoked
// with no flags: write under DefaultOutDir, log at Info level, list
// nothing.
func DefaultOptions() Options {
	return Options{
		OutDir: DefaultOutDir,
		Level:  slog.LevelInfo,
	}
}

// ResolveOutDir returns o.OutDir, or DefaultOutDir if it is unset.
func (o Options) ResolveOutDir() string {
	if o.OutDir == "" {
		return DefaultOutDir
	}
	return o.OutDir
}

// LevelFromFlags derives the logging level the root command's
// --verbose/--quiet flags select: quiet wins if both are set, otherwise
// verbose lowers the level to Debug, otherwise Info.
func LevelFromFlags(verbose, quiet bool) slog.Level {
	switch {
	case quiet:
		return slog.LevelError
	case verbose:
		return slog.LevelDebug
	default:
		return slog.LevelInfo
	}
}
