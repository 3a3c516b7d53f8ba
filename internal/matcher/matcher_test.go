package matcher

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/zenrename/zenrename/internal/types"
)

func TestExtract(t *testing.T) {
	reg := NewRegistry()

	tests := []struct {
		name     string
		filename string
		want     types.EpisodeRecord
	}{
		{
			name:     "episode keyword with trailing junk",
			filename: "Raise wa Tanin ga Ii Episode 01 English Subbed at Site Name.mkv",
			want: types.EpisodeRecord{
				Series:   "Raise wa Tanin ga Ii",
				Episode:  1,
				Ext:      ".mkv",
				Original: "Raise wa Tanin ga Ii Episode 01 English Subbed at Site Name.mkv",
			},
		},
		{
			name:     "watch prefix with ordinal season",
			filename: "Watch Example Show 2nd Season Episode 03 Subbed.mkv",
			want: types.EpisodeRecord{
				Series:   "Example Show",
				Season:   2,
				Episode:  3,
				Ext:      ".mkv",
				Original: "Watch Example Show 2nd Season Episode 03 Subbed.mkv",
			},
		},
		{
			name:     "season without watch prefix",
			filename: "Example Show 3rd Season Episode 12.avi",
			want: types.EpisodeRecord{
				Series:   "Example Show",
				Season:   3,
				Episode:  12,
				Ext:      ".avi",
				Original: "Example Show 3rd Season Episode 12.avi",
			},
		},
		{
			name:     "case insensitive match",
			filename: "watch example show episode 7.mkv",
			want: types.EpisodeRecord{
				Series:   "example show",
				Episode:  7,
				Ext:      ".mkv",
				Original: "watch example show episode 7.mkv",
			},
		},
		{
			name:     "canonical name with season",
			filename: "Example Show - S02 - E03.mkv",
			want: types.EpisodeRecord{
				Series:   "Example Show",
				Season:   2,
				Episode:  3,
				Ext:      ".mkv",
				Original: "Example Show - S02 - E03.mkv",
			},
		},
		{
			name:     "canonical name without season",
			filename: "Raise wa Tanin ga Ii - E01.mkv",
			want: types.EpisodeRecord{
				Series:   "Raise wa Tanin ga Ii",
				Episode:  1,
				Ext:      ".mkv",
				Original: "Raise wa Tanin ga Ii - E01.mkv",
			},
		},
		{
			name:     "subtitle extension preserved",
			filename: "Example Show Episode 04.ass",
			want: types.EpisodeRecord{
				Series:   "Example Show",
				Episode:  4,
				Ext:      ".ass",
				Original: "Example Show Episode 04.ass",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := reg.Extract(tt.filename)
			if err != nil {
				t.Fatalf("Extract(%q) error = %v", tt.filename, err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Extract(%q) mismatch (-want +got):\n%s", tt.filename, diff)
			}
		})
	}
}

func TestExtractPriority(t *testing.T) {
	// The seasoned watch rule must win over the plain watch rule, or the
	// ordinal would leak into the series name.
	reg := NewRegistry()

	got, err := reg.Extract("Watch Example Show 2nd Season Episode 03.mkv")
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}
	if got.Series != "Example Show" {
		t.Errorf("Series = %q, want %q", got.Series, "Example Show")
	}
	if got.Season != 2 {
		t.Errorf("Season = %d, want 2", got.Season)
	}
}

func TestExtractNoMatch(t *testing.T) {
	reg := NewRegistry()

	_, err := reg.Extract("random_video_file.mp4")
	var noMatch types.ErrNoMatch
	if !errors.As(err, &noMatch) {
		t.Fatalf("Extract() error = %v, want ErrNoMatch", err)
	}

	want := []string{"series name", "episode number"}
	if diff := cmp.Diff(want, noMatch.Missing); diff != "" {
		t.Errorf("Missing mismatch (-want +got):\n%s", diff)
	}
}

func TestExtractSeasonDefault(t *testing.T) {
	reg := NewRegistry()
	rejected := reg.Replace([]Rule{
		{Pattern: `^(?P<series>.*?)_ep(?P<episode>\d+)`, SeasonDefault: 4},
	})
	if len(rejected) != 0 {
		t.Fatalf("Replace() rejected %v", rejected)
	}

	got, err := reg.Extract("my_show_ep09.mkv")
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}
	if got.Season != 4 {
		t.Errorf("Season = %d, want season default 4", got.Season)
	}
	if got.Episode != 9 {
		t.Errorf("Episode = %d, want 9", got.Episode)
	}
}

func TestExtractUnusableSeasonCapture(t *testing.T) {
	// A season capture that is not an integer means "no season", even when
	// the rule carries a default.
	reg := NewRegistry()
	rejected := reg.Replace([]Rule{
		{Pattern: `^(?P<series>.*?) \[(?P<season>\w+)\] ep(?P<episode>\d+)`, SeasonDefault: 3},
	})
	if len(rejected) != 0 {
		t.Fatalf("Replace() rejected %v", rejected)
	}

	got, err := reg.Extract("My Show [final] ep02.mkv")
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}
	if got.Season != 0 {
		t.Errorf("Season = %d, want 0", got.Season)
	}
}

func TestReplaceValidation(t *testing.T) {
	reg := NewRegistry()

	t.Run("rejects invalid rules per item", func(t *testing.T) {
		rejected := reg.Replace([]Rule{
			{Pattern: `^(?P<series>.*?) #(?P<episode>\d+)`},
			{Pattern: `((`},
			{Pattern: ""},
			{Pattern: `no capture groups here`},
		})
		if len(rejected) != 3 {
			t.Fatalf("Replace() rejected %d rules, want 3: %v", len(rejected), rejected)
		}
		if reg.Len() != 1 {
			t.Errorf("registry has %d rules, want the 1 valid rule", reg.Len())
		}
	})

	t.Run("keeps previous rules when nothing survives", func(t *testing.T) {
		before := reg.Len()
		rejected := reg.Replace([]Rule{{Pattern: `((`}})
		if len(rejected) != 1 {
			t.Fatalf("Replace() rejected %d rules, want 1", len(rejected))
		}
		if reg.Len() != before {
			t.Errorf("registry has %d rules, want unchanged %d", reg.Len(), before)
		}
	})
}

func TestBuildName(t *testing.T) {
	tests := []struct {
		name string
		rec  types.EpisodeRecord
		want string
	}{
		{
			name: "no season segment when season is zero",
			rec:  types.EpisodeRecord{Series: "Raise wa Tanin ga Ii", Episode: 1, Ext: ".mkv"},
			want: "Raise wa Tanin ga Ii - E01.mkv",
		},
		{
			name: "season segment when season set",
			rec:  types.EpisodeRecord{Series: "Raise wa Tanin ga Ii", Season: 2, Episode: 1, Ext: ".mkv"},
			want: "Raise wa Tanin ga Ii - S02 - E01.mkv",
		},
		{
			name: "episode title appended",
			rec:  types.EpisodeRecord{Series: "My Show", Season: 1, Episode: 5, EpisodeTitle: "The Start", Ext: ".mkv"},
			want: "My Show - S01 - E05 - The Start.mkv",
		},
		{
			name: "title sanitized of invalid characters",
			rec:  types.EpisodeRecord{Series: "My Show", Episode: 5, EpisodeTitle: `Who? Me: "Yes"`, Ext: ".mkv"},
			want: "My Show - E05 - Who Me Yes.mkv",
		},
		{
			name: "title dropped when nothing survives sanitizing",
			rec:  types.EpisodeRecord{Series: "My Show", Episode: 5, EpisodeTitle: `???`, Ext: ".mkv"},
			want: "My Show - E05.mkv",
		},
		{
			name: "empty extension",
			rec:  types.EpisodeRecord{Series: "My Show", Episode: 12},
			want: "My Show - E12",
		},
		{
			name: "wide episode numbers keep their width",
			rec:  types.EpisodeRecord{Series: "Long Runner", Episode: 125, Ext: ".mkv"},
			want: "Long Runner - E125.mkv",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := BuildName(tt.rec); got != tt.want {
				t.Errorf("BuildName() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestExtractBuildRoundTrip(t *testing.T) {
	// A canonical name must re-extract and rebuild to itself, so repeat
	// runs are no-ops.
	reg := NewRegistry()

	for _, name := range []string{
		"Example Show - S02 - E03.mkv",
		"Raise wa Tanin ga Ii - E01.mkv",
	} {
		rec, err := reg.Extract(name)
		if err != nil {
			t.Fatalf("Extract(%q) error = %v", name, err)
		}
		if got := BuildName(rec); got != name {
			t.Errorf("BuildName(Extract(%q)) = %q, want unchanged", name, got)
		}
	}
}
