package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/SeamusWaldron/pocketcube"
)

func TestMissingFileUsesDefaults(t *testing.T) {
	f, err := NewFile(filepath.Join(t.TempDir(), "config.yaml"))
	if err != nil {
		t.Fatalf("NewFile: %v", err)
	}
	if f.Config() != Default() {
		t.Errorf("config = %+v, want defaults", f.Config())
	}
}

func TestDefaultMaxDepthFollowsSolver(t *testing.T) {
	if got := Default().MaxDepth; got != pocketcube.DefaultMaxDepth {
		t.Errorf("default max_depth = %d, want %d", got, pocketcube.DefaultMaxDepth)
	}
}

func TestLoadPartialFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := "log_level: debug\nmax_depth: 5\ntimeout: 30s\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	f, err := NewFile(path)
	if err != nil {
		t.Fatalf("NewFile: %v", err)
	}
	cfg := f.Config()
	if cfg.Level() != zerolog.DebugLevel {
		t.Errorf("level = %v, want debug", cfg.Level())
	}
	if cfg.MaxDepth != 5 {
		t.Errorf("max_depth = %d, want 5", cfg.MaxDepth)
	}
	if cfg.Timeout != 30*time.Second {
		t.Errorf("timeout = %s, want 30s", cfg.Timeout)
	}
	if !cfg.Parallel || cfg.ScrambleLen != 15 {
		t.Error("fields absent from the file should keep their defaults")
	}
}

func TestLoadInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("log_level: loud\n"), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if _, err := NewFile(path); err == nil {
		t.Error("unknown log level should be rejected")
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	f, err := NewFile(path)
	if err != nil {
		t.Fatalf("NewFile: %v", err)
	}

	cfg := f.Config()
	cfg.MaxDepth = 6
	cfg.Parallel = false
	if err := f.Set(cfg); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := f.SetLastSolve("abc"); err != nil {
		t.Fatalf("SetLastSolve: %v", err)
	}

	reloaded, err := NewFile(path)
	if err != nil {
		t.Fatalf("NewFile: %v", err)
	}
	got := reloaded.Config()
	if got.MaxDepth != 6 || got.Parallel || got.LastSolveID != "abc" {
		t.Errorf("reloaded config = %+v", got)
	}
}

func TestSetRejectsInvalid(t *testing.T) {
	f, err := NewFile(filepath.Join(t.TempDir(), "config.yaml"))
	if err != nil {
		t.Fatalf("NewFile: %v", err)
	}
	cfg := f.Config()
	cfg.MaxDepth = -1
	if err := f.Set(cfg); err == nil {
		t.Error("negative max_depth should be rejected")
	}
}
