package main

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/vmguest/apigen/internal/config"
	"github.com/vmguest/apigen/internal/model"
)

func TestRunGenerate_WritesAllFifteenTargets(t *testing.T) {
	dir := t.TempDir()
	initLogger(slog.LevelError)

	if err := runGenerate(config.Options{OutDir: dir}); err != nil {
		t.Fatalf("runGenerate: %v", err)
	}

	targets := buildTargets(model.Calls(), model.Schemas())
	if len(targets) != 15 {
		t.Fatalf("expected 15 targets, got %d", len(targets))
	}

	for _, target := range targets {
		path := filepath.Join(dir, target.path)
		info, err := os.Stat(path)
		if err != nil {
			t.Errorf("target %s was not written: %v", target.path, err)
			continue
		}
		if info.Size() == 0 {
			t.Errorf("target %s is empty", target.path)
		}
	}
}

func TestRunGenerate_ListPrintsPathsWithoutWriting(t *testing.T) {
	dir := t.TempDir()
	initLogger(slog.LevelError)

	if err := runGenerate(config.Options{OutDir: dir, List: true}); err != nil {
		t.Fatalf("runGenerate with List: %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		// TempDir always exists; ReadDir erroring means something else broke.
		t.Fatalf("ReadDir: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("--list must not write any files, found %d entries", len(entries))
	}
}
