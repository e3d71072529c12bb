package settings

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadFromMissingFileFails(t *testing.T) {
	_, err := loadFrom(filepath.Join(t.TempDir(), "nope.yaml"))
	var invalid *InvalidSettings
	if !errors.As(err, &invalid) {
		t.Fatalf("expected InvalidSettings, got %v", err)
	}
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")

	want := Default()
	want.FlipBoard = true
	want.LastFile = "/games/kasparov.pgn"
	want.Theme.WhiteGlyphs = "♔♕♖♗♘♙"

	if err := saveTo(want, path); err != nil {
		t.Fatalf("saveTo: %v", err)
	}
	got, err := loadFrom(path)
	if err != nil {
		t.Fatalf("loadFrom: %v", err)
	}
	if got != want {
		t.Fatalf("round trip mismatch:\n%+v\n%+v", got, want)
	}
}

func TestLoadFromPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	if err := os.WriteFile(path, []byte("flip_board: true\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := loadFrom(path)
	if err != nil {
		t.Fatalf("loadFrom: %v", err)
	}
	if !got.FlipBoard {
		t.Fatal("flip_board not applied")
	}
	if got.Theme != Default().Theme {
		t.Fatalf("theme should keep defaults, got %+v", got.Theme)
	}
}

func TestValidateRejectsShortGlyphSets(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	if err := os.WriteFile(path, []byte("theme:\n  white_glyphs: KQ\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := loadFrom(path); err == nil {
		t.Fatal("expected a validation error")
	}
}
