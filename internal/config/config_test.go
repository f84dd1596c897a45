package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/vovakirdan/blockfall/internal/games/blockfall/core"
)

func TestEmbeddedDefaultsMatchBuiltin(t *testing.T) {
	cfg, err := Parse(defaultBlockfallYAML)
	if err != nil {
		t.Fatalf("Parse(embedded): %v", err)
	}
	if diff := cmp.Diff(DefaultBlockfallConfig(), cfg); diff != "" {
		t.Errorf("embedded YAML differs from DefaultBlockfallConfig (-builtin +embedded):\n%s", diff)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestParsePartialKeepsDefaults(t *testing.T) {
	cfg, err := Parse([]byte("pieces:\n  randomizer: bag\nrules:\n  rotate_into_locked: true\n"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	want := DefaultBlockfallConfig()
	want.Pieces.Randomizer = core.RandomBag
	want.Rules.RotateIntoLocked = true
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("Parse mismatch (-want +got):\n%s", diff)
	}
}

func TestParseEmpty(t *testing.T) {
	cfg, err := Parse(nil)
	if err != nil {
		t.Fatalf("Parse(nil): %v", err)
	}
	if diff := cmp.Diff(DefaultBlockfallConfig(), cfg); diff != "" {
		t.Errorf("empty input should give defaults:\n%s", diff)
	}
}

func TestParseRejectsUnknownKeys(t *testing.T) {
	if _, err := Parse([]byte("board:\n  widht: 12\n")); err == nil {
		t.Error("misspelled key should fail")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*BlockfallConfig)
		wantErr string
	}{
		{"defaults", func(*BlockfallConfig) {}, ""},
		{"narrow board", func(c *BlockfallConfig) { c.Board.Width = 2 }, "width"},
		{"zero gravity", func(c *BlockfallConfig) { c.Timing.GravityInterval = 0 }, "gravity"},
		{"negative hold", func(c *BlockfallConfig) { c.Timing.HoldWindow = -1 }, "hold_window"},
		{"unknown set", func(c *BlockfallConfig) { c.Pieces.Set = "pentomino" }, "pentomino"},
		{"unknown randomizer", func(c *BlockfallConfig) { c.Pieces.Randomizer = "loaded" }, "loaded"},
		{"unknown lookahead", func(c *BlockfallConfig) { c.Pieces.Lookahead = "peek" }, "peek"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultBlockfallConfig()
			tc.modify(&cfg)
			err := cfg.Validate()
			if tc.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() = %v, expected nil", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("Validate() = %v, expected error mentioning %q", err, tc.wantErr)
			}
		})
	}
}

func TestToOptions(t *testing.T) {
	cfg := DefaultBlockfallConfig()
	cfg.Board.Width = 12
	cfg.Pieces.Randomizer = ""
	cfg.Pieces.Lookahead = ""

	opts := cfg.ToOptions(99)

	want := core.DefaultOptions()
	want.Width = 12
	want.ShiftInterval = 0.1
	want.Seed = 99
	if diff := cmp.Diff(want, opts); diff != "" {
		t.Errorf("ToOptions mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadBlockfallCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	if err := os.WriteFile(path, []byte("board:\n  width: 8\n  height: 16\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadBlockfall(path)
	if err != nil {
		t.Fatalf("LoadBlockfall: %v", err)
	}
	if cfg.Board.Width != 8 || cfg.Board.Height != 16 {
		t.Errorf("board = %+v, expected 8x16", cfg.Board)
	}
}

func TestLoadBlockfallCustomPathErrors(t *testing.T) {
	dir := t.TempDir()
	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("timing:\n  gravity_interval: -1\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	for _, path := range []string{filepath.Join(dir, "missing.yaml"), invalid} {
		if _, err := LoadBlockfall(path); err == nil {
			t.Errorf("LoadBlockfall(%s) should fail", path)
		}
	}
}

func TestLoadBlockfallSearchOrder(t *testing.T) {
	home := t.TempDir()
	work := t.TempDir()
	t.Setenv("HOME", home)
	oldWD, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd: %v", err)
	}
	if err := os.Chdir(work); err != nil {
		t.Fatalf("Chdir: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(oldWD) })

	// Nothing on disk: embedded defaults.
	cfg, err := LoadBlockfall("")
	if err != nil {
		t.Fatalf("LoadBlockfall: %v", err)
	}
	if diff := cmp.Diff(DefaultBlockfallConfig(), cfg); diff != "" {
		t.Errorf("expected defaults:\n%s", diff)
	}

	// Local file.
	writeConfig(t, filepath.Join(work, "configs"), "board:\n  width: 6\n")
	cfg, _ = LoadBlockfall("")
	if cfg.Board.Width != 6 {
		t.Errorf("local config ignored, width = %d", cfg.Board.Width)
	}

	// User file wins over local.
	writeConfig(t, filepath.Join(home, ".blockfall", "configs"), "board:\n  width: 7\n")
	cfg, _ = LoadBlockfall("")
	if cfg.Board.Width != 7 {
		t.Errorf("user config ignored, width = %d", cfg.Board.Width)
	}

	// A broken user file falls through to the local one.
	writeConfig(t, filepath.Join(home, ".blockfall", "configs"), "board: [\n")
	cfg, _ = LoadBlockfall("")
	if cfg.Board.Width != 6 {
		t.Errorf("broken user config should be skipped, width = %d", cfg.Board.Width)
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	cfg := DefaultBlockfallConfig()
	cfg.Pieces.Set = core.SetReference

	data, err := Marshal(cfg)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	got, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if diff := cmp.Diff(cfg, got); diff != "" {
		t.Errorf("round trip mismatch:\n%s", diff)
	}
}

func writeConfig(t *testing.T, dir, body string) {
	t.Helper()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, blockfallFile), []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}
}
