package renamer

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/zenrename/zenrename/internal/matcher"
	"github.com/zenrename/zenrename/internal/titles"
	"github.com/zenrename/zenrename/internal/types"
)

type stubSource struct {
	m   types.TitleMap
	err error
}

func (s stubSource) Titles(ctx context.Context, series string, season int) (types.TitleMap, error) {
	return s.m, s.err
}

func writeFiles(t *testing.T, dir string, names ...string) {
	t.Helper()
	for _, name := range names {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0644); err != nil {
			t.Fatal(err)
		}
	}
}

func listDir(t *testing.T, dir string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names
}

func TestMerge(t *testing.T) {
	m := types.TitleMap{}
	m.Add("My Show", 2, 1, "Homecoming")
	m.Add("My Show", 0, 3, "Stray")

	tests := []struct {
		name   string
		rec    types.EpisodeRecord
		season int
		title  string
		want   types.EpisodeRecord
	}{
		{
			name:   "override fills missing season",
			rec:    types.EpisodeRecord{Series: "My Show", Episode: 1},
			season: 2,
			want:   types.EpisodeRecord{Series: "My Show", Season: 2, Episode: 1, EpisodeTitle: "Homecoming"},
		},
		{
			name:   "extracted season wins over override",
			rec:    types.EpisodeRecord{Series: "My Show", Season: 3, Episode: 9},
			season: 2,
			want:   types.EpisodeRecord{Series: "My Show", Season: 3, Episode: 9},
		},
		{
			name:  "title override wins over extracted series",
			rec:   types.EpisodeRecord{Series: "my show rip", Episode: 3},
			title: "My Show",
			want:  types.EpisodeRecord{Series: "My Show", Episode: 3, EpisodeTitle: "Stray"},
		},
		{
			name: "seasoned lookup falls back to seasonless entry",
			rec:  types.EpisodeRecord{Series: "My Show", Season: 5, Episode: 3},
			want: types.EpisodeRecord{Series: "My Show", Season: 5, Episode: 3, EpisodeTitle: "Stray"},
		},
		{
			name: "no map entry leaves the title empty",
			rec:  types.EpisodeRecord{Series: "Other", Episode: 7},
			want: types.EpisodeRecord{Series: "Other", Episode: 7},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Merge(tt.rec, tt.season, tt.title, m)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Merge() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestApplySkipsEqualNames(t *testing.T) {
	// The file deliberately does not exist: equal names must short-circuit
	// before any filesystem call.
	op := Apply(t.TempDir(), "Show - E01.mkv", "Show - E01.mkv")
	if op.Status != types.StatusSkipped {
		t.Fatalf("Status = %q, want %q", op.Status, types.StatusSkipped)
	}
	if op.Reason != "already named correctly" {
		t.Errorf("Reason = %q, want %q", op.Reason, "already named correctly")
	}
}

func TestApplyRename(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "old.mkv")

	op := Apply(dir, "old.mkv", "new.mkv")
	if op.Status != types.StatusSuccess {
		t.Fatalf("Status = %q (reason %q), want %q", op.Status, op.Reason, types.StatusSuccess)
	}
	if _, err := os.Stat(filepath.Join(dir, "new.mkv")); err != nil {
		t.Errorf("renamed file missing: %v", err)
	}
}

func TestApplyFailureIsIsolated(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "b.mkv")

	first := Apply(dir, "a.mkv", "renamed-a.mkv")
	if first.Status != types.StatusFailed || first.Reason == "" {
		t.Fatalf("first = %+v, want failed with a reason", first)
	}

	second := Apply(dir, "b.mkv", "renamed-b.mkv")
	if second.Status != types.StatusSuccess {
		t.Errorf("second = %+v, want success", second)
	}
}

func TestRunRenamesBatch(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir,
		"Raise wa Tanin ga Ii Episode 01 English Subbed at Site Name.mkv",
		"random_video_file.mp4",
	)

	r := &Renamer{
		Registry:   matcher.NewRegistry(),
		Extensions: []string{".mkv", ".mp4"},
	}
	ops, err := r.Run(context.Background(), dir)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if len(ops) != 2 {
		t.Fatalf("len(ops) = %d, want 2", len(ops))
	}

	if ops[0].Status != types.StatusSuccess {
		t.Errorf("ops[0] = %+v, want success", ops[0])
	}
	if ops[1].Status != types.StatusSkipped || !strings.Contains(ops[1].Reason, "episode number") {
		t.Errorf("ops[1] = %+v, want skip naming the episode number", ops[1])
	}

	want := []string{"Raise wa Tanin ga Ii - E01.mkv", "random_video_file.mp4"}
	if diff := cmp.Diff(want, listDir(t, dir)); diff != "" {
		t.Errorf("directory mismatch (-want +got):\n%s", diff)
	}
}

func TestRunSeasonOverride(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "Raise wa Tanin ga Ii Episode 01 English Subbed at Site Name.mkv")

	r := &Renamer{Registry: matcher.NewRegistry(), Extensions: []string{".mkv"}, Season: 2}
	if _, err := r.Run(context.Background(), dir); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if _, err := os.Stat(filepath.Join(dir, "Raise wa Tanin ga Ii - S02 - E01.mkv")); err != nil {
		t.Errorf("expected seasoned name: %v", err)
	}
}

func TestRunTwiceIsNoOp(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "My Show Episode 05.mkv")

	r := &Renamer{Registry: matcher.NewRegistry(), Extensions: []string{".mkv"}}
	if _, err := r.Run(context.Background(), dir); err != nil {
		t.Fatalf("first Run() error = %v", err)
	}

	ops, err := r.Run(context.Background(), dir)
	if err != nil {
		t.Fatalf("second Run() error = %v", err)
	}
	if len(ops) != 1 || ops[0].Status != types.StatusSkipped || ops[0].Reason != "already named correctly" {
		t.Errorf("second run ops = %+v, want one clean skip", ops)
	}
}

func TestRunAmbiguousSeasonDeclined(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir,
		"Alpha Show Episode 01.mkv",
		"Beta Show Episode 01.mkv",
	)

	var asked []string
	r := &Renamer{
		Registry:   matcher.NewRegistry(),
		Extensions: []string{".mkv"},
		Season:     2,
		Confirm: func(series []string) bool {
			asked = series
			return false
		},
	}

	ops, err := r.Run(context.Background(), dir)
	var ambiguous types.ErrAmbiguousSeason
	if !errors.As(err, &ambiguous) {
		t.Fatalf("Run() error = %v, want ErrAmbiguousSeason", err)
	}
	if ops != nil {
		t.Errorf("ops = %+v, want none", ops)
	}
	if diff := cmp.Diff([]string{"Alpha Show", "Beta Show"}, asked); diff != "" {
		t.Errorf("confirm series mismatch (-want +got):\n%s", diff)
	}

	want := []string{"Alpha Show Episode 01.mkv", "Beta Show Episode 01.mkv"}
	if diff := cmp.Diff(want, listDir(t, dir)); diff != "" {
		t.Errorf("declined batch must not touch files (-want +got):\n%s", diff)
	}
}

func TestRunAmbiguousSeasonNoCallback(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir,
		"Alpha Show Episode 01.mkv",
		"Beta Show Episode 01.mkv",
	)

	// Without a confirm callback the gate cannot be passed.
	r := &Renamer{Registry: matcher.NewRegistry(), Extensions: []string{".mkv"}, Season: 2}
	_, err := r.Run(context.Background(), dir)
	var ambiguous types.ErrAmbiguousSeason
	if !errors.As(err, &ambiguous) {
		t.Fatalf("Run() error = %v, want ErrAmbiguousSeason", err)
	}
}

func TestRunAmbiguousSeasonConfirmed(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir,
		"Alpha Show Episode 01.mkv",
		"Beta Show Episode 01.mkv",
	)

	r := &Renamer{
		Registry:   matcher.NewRegistry(),
		Extensions: []string{".mkv"},
		Season:     2,
		Confirm:    func([]string) bool { return true },
	}
	if _, err := r.Run(context.Background(), dir); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	want := []string{"Alpha Show - S02 - E01.mkv", "Beta Show - S02 - E01.mkv"}
	if diff := cmp.Diff(want, listDir(t, dir)); diff != "" {
		t.Errorf("directory mismatch (-want +got):\n%s", diff)
	}
}

func TestRunOnlineTitles(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "My Show Episode 01.mkv")

	m := types.TitleMap{}
	m.Add("My Show", 0, 1, "Pilot")

	r := &Renamer{
		Registry:   matcher.NewRegistry(),
		Extensions: []string{".mkv"},
		Online:     true,
		Source:     stubSource{m: m},
	}
	if _, err := r.Run(context.Background(), dir); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if _, err := os.Stat(filepath.Join(dir, "My Show - E01 - Pilot.mkv")); err != nil {
		t.Errorf("expected titled name: %v", err)
	}
	if _, err := os.Stat(titles.CachePath(dir, "My Show")); err != nil {
		t.Errorf("expected cache file: %v", err)
	}
}

func TestRunFetchFailureDegrades(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "My Show Episode 01.mkv")

	var events []types.Event
	r := &Renamer{
		Registry:   matcher.NewRegistry(),
		Extensions: []string{".mkv"},
		Online:     true,
		Source:     stubSource{err: errors.New("boom")},
		Events:     func(e types.Event) { events = append(events, e) },
	}
	if _, err := r.Run(context.Background(), dir); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if _, err := os.Stat(filepath.Join(dir, "My Show - E01.mkv")); err != nil {
		t.Errorf("expected untitled rename: %v", err)
	}

	warned := false
	for _, e := range events {
		if e.Type == types.EventWarning && strings.Contains(e.Message, "failed to fetch") {
			warned = true
		}
	}
	if !warned {
		t.Error("expected a fetch warning event")
	}
}

func TestRunOfflineCache(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "My Show Episode 02.mkv")

	m := types.TitleMap{}
	m.Add("My Show", 0, 2, "The Rival")
	if err := titles.WriteFile(titles.CachePath(dir, "My Show"), m); err != nil {
		t.Fatal(err)
	}

	r := &Renamer{Registry: matcher.NewRegistry(), Extensions: []string{".mkv"}}
	if _, err := r.Run(context.Background(), dir); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if _, err := os.Stat(filepath.Join(dir, "My Show - E02 - The Rival.mkv")); err != nil {
		t.Errorf("expected cached title in name: %v", err)
	}
}

func TestListFileTarget(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "one.mkv")

	names, outDir, err := List(filepath.Join(dir, "one.mkv"), []string{".mkv"})
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if diff := cmp.Diff([]string{"one.mkv"}, names); diff != "" {
		t.Errorf("names mismatch (-want +got):\n%s", diff)
	}
	if outDir != dir {
		t.Errorf("dir = %q, want %q", outDir, dir)
	}
}

func TestListMissingTarget(t *testing.T) {
	if _, _, err := List(filepath.Join(t.TempDir(), "nope"), nil); err == nil {
		t.Fatal("List() expected an error for a missing target")
	}
}
