package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := parse(DefaultYAML())
	if err != nil {
		t.Fatalf("embedded defaults failed to parse: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultConfig()) {
		t.Errorf("embedded defaults differ from DefaultConfig():\n%+v\n%+v", cfg, DefaultConfig())
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fruity.yaml")
	data := `
timing:
  settle_delay: 250ms
board:
  catalog: [fig, date, lime, plum, yuzu]
leaderboard:
  backend: file
  path: /tmp/fruity
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Timing.SettleDelay != 250*time.Millisecond {
		t.Errorf("SettleDelay = %s, expected 250ms", cfg.Timing.SettleDelay)
	}
	if cfg.Timing.TickInterval != time.Second {
		t.Errorf("TickInterval = %s, expected default 1s", cfg.Timing.TickInterval)
	}
	if !reflect.DeepEqual(cfg.Board.Catalog, []string{"fig", "date", "lime", "plum", "yuzu"}) {
		t.Errorf("Catalog = %v, expected custom catalog only", cfg.Board.Catalog)
	}
	if cfg.Leaderboard.Backend != "file" || cfg.Leaderboard.Key != "fruityMatchLeaderboard" {
		t.Errorf("Leaderboard = %+v", cfg.Leaderboard)
	}
	if cfg.Board.Glyph("apple") != "🍎" || cfg.Board.Glyph("fig") != "fig" {
		t.Errorf("Glyph() fallback wrong")
	}
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		content string
		errPart string
	}{
		{"bad yaml", "timing: [", "failed to parse"},
		{"bad backend", "leaderboard:\n  backend: redis\n", "leaderboard.backend"},
		{"zero tick", "timing:\n  tick_interval: 0s\n", "tick_interval"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(dir, strings.ReplaceAll(tc.name, " ", "_")+".yaml")
			if err := os.WriteFile(path, []byte(tc.content), 0o644); err != nil {
				t.Fatal(err)
			}
			_, err := Load(path)
			if err == nil || !strings.Contains(err.Error(), tc.errPart) {
				t.Errorf("Load() error = %v, expected it to mention %q", err, tc.errPart)
			}
		})
	}

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("Load() of missing custom path should fail")
	}
}
