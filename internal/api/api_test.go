package api

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/zenrename/zenrename/internal/types"
)

func writeFile(t *testing.T, dir, name string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestAnimeOffline(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	dir := t.TempDir()
	writeFile(t, dir, "Raise wa Tanin ga Ii Episode 01 English Subbed at Site Name.mkv")

	ops, err := Anime(context.Background(), dir, WithSeason(2))
	if err != nil {
		t.Fatalf("Anime() error = %v", err)
	}
	if len(ops) != 1 || ops[0].Status != types.StatusSuccess {
		t.Fatalf("ops = %+v, want one success", ops)
	}
	if _, err := os.Stat(filepath.Join(dir, "Raise wa Tanin ga Ii - S02 - E01.mkv")); err != nil {
		t.Errorf("expected renamed file: %v", err)
	}
}

func TestAnimeBadPatternFallsBack(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	dir := t.TempDir()
	writeFile(t, dir, "My Show Episode 01.mkv")

	override := filepath.Join(t.TempDir(), "override.json")
	if err := os.WriteFile(override, []byte(`{"episode_patterns": [{"pattern": "(unclosed"}]}`), 0644); err != nil {
		t.Fatal(err)
	}

	var warnings []string
	_, err := Anime(context.Background(), dir,
		WithConfig(override),
		WithEvents(func(e types.Event) {
			if e.Type == types.EventWarning {
				warnings = append(warnings, e.Message)
			}
		}),
	)
	if err != nil {
		t.Fatalf("Anime() error = %v", err)
	}
	if len(warnings) == 0 {
		t.Fatal("expected a pattern warning")
	}
	if _, err := os.Stat(filepath.Join(dir, "My Show - E01.mkv")); err != nil {
		t.Errorf("expected the built-in patterns to still apply: %v", err)
	}
}

func TestMovies(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	dir := t.TempDir()
	writeFile(t, dir, "Some.Movie.2019.mkv")

	if _, err := Movies(context.Background(), dir); err != nil {
		t.Fatalf("Movies() error = %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "Some Movie 2019.mkv")); err != nil {
		t.Errorf("expected cleaned name: %v", err)
	}
}
