// Package titles stores externally sourced episode titles as CSV files
// kept next to the media they describe. The file layout is the exchange
// format for title data: one row per episode with the series title, an
// optional S## season label, an E## episode label, and the episode title.
package titles

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/zenrename/zenrename/internal/util"
)

// CachePath returns the deterministic cache file location for a series
// inside dir. The series title is sanitized so it is always usable as a
// filename.
func CachePath(dir, series string) string {
	return filepath.Join(dir, util.SanitizeFilename(series)+"_episodes.csv")
}

// FormatSeason renders a season label. Season zero renders empty, meaning
// "no season".
func FormatSeason(season int) string {
	if season == 0 {
		return ""
	}
	return fmt.Sprintf("S%02d", season)
}

// FormatEpisode renders an episode label.
func FormatEpisode(episode int) string {
	return fmt.Sprintf("E%02d", episode)
}

// ParseSeason reads a season label. Empty labels mean "no season"; bare
// integers are tolerated.
func ParseSeason(label string) (int, error) {
	label = strings.TrimSpace(label)
	if label == "" {
		return 0, nil
	}
	return parseLabel(label, "S")
}

// ParseEpisode reads an episode label, tolerating bare integers.
func ParseEpisode(label string) (int, error) {
	return parseLabel(strings.TrimSpace(label), "E")
}

func parseLabel(label, prefix string) (int, error) {
	trimmed := strings.TrimPrefix(strings.TrimPrefix(label, prefix), strings.ToLower(prefix))
	n, err := strconv.Atoi(trimmed)
	if err != nil {
		return 0, fmt.Errorf("invalid %s label %q", prefix, label)
	}
	return n, nil
}
