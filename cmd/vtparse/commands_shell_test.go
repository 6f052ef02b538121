package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/vtparse/vtparse/internal/config"
	"github.com/vtparse/vtparse/internal/debug"
)

func TestRunTraceFixturesReplaysEachFileIndependently(t *testing.T) {
	dir := t.TempDir()

	first := filepath.Join(dir, "first.txt")
	second := filepath.Join(dir, "second.txt")
	if err := os.WriteFile(first, []byte("hello"), 0o600); err != nil {
		t.Fatalf("write first fixture: %v", err)
	}
	if err := os.WriteFile(second, []byte("world"), 0o600); err != nil {
		t.Fatalf("write second fixture: %v", err)
	}

	state := &appState{
		cfg:    config.DefaultConfig(),
		logger: debug.New(false),
	}

	if err := runTraceFixtures(state, []string{first, second}, false); err != nil {
		t.Fatalf("runTraceFixtures: %v", err)
	}
}

func TestRunTraceFixturesFailsOnMissingFile(t *testing.T) {
	state := &appState{
		cfg:    config.DefaultConfig(),
		logger: debug.New(false),
	}

	err := runTraceFixtures(state, []string{filepath.Join(t.TempDir(), "missing.txt")}, false)
	if err == nil {
		t.Fatal("expected an error for a missing fixture file")
	}
}
