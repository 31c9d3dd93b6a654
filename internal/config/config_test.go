package config

import (
	"log/slog"
	"testing"
)

func TestResolveOutDir(t *testing.T) {
	cases := []struct {
		name string
		opts Options
		want string
	}{
		{"empty uses default", Options{}, DefaultOutDir},
		{"explicit overrides default", Options{OutDir: "out"}, "out"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := c.opts.ResolveOutDir(); got != c.want {
				t.Errorf("ResolveOutDir() = %q, want %q", got, c.want)
			}
		})
	}
}

func TestDefaultOptions(t *testing.T) {
	o := DefaultOptions()
	if o.OutDir != DefaultOutDir {
		t.Errorf("DefaultOptions().OutDir = %q, want %q", o.OutDir, DefaultOutDir)
	}
	if o.List {
		t.Error("DefaultOptions().List should be false")
	}
	if o.Level != slog.LevelInfo {
		t.Errorf("DefaultOptions().Level = %v, want %v", o.Level, slog.LevelInfo)
	}
}

func TestLevelFromFlags(t *testing.T) {
	cases := []struct {
		name           string
		verbose, quiet bool
		want           slog.Level
	}{
		{"neither flag", false, false, slog.LevelInfo},
		{"verbose only", true, false, slog.LevelDebug},
		{"quiet only", false, true, slog.LevelError},
		{"quiet wins over verbose", true, true, slog.LevelError},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := LevelFromFlags(c.verbose, c.quiet); got != c.want {
				t.Errorf("LevelFromFlags(%v, %v) = %v, want %v", c.verbose, c.quiet, got, c.want)
			}
		})
	}
}
