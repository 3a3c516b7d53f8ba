package renamer

import (
	"strings"

	"github.com/zenrename/zenrename/internal/types"
)

// Merge resolves the effective record for one file from the extracted
// record, the batch overrides and the episode-title map. A season found in
// the filename beats the override; an explicit series title beats the
// extracted name. Pure: same inputs, same record.
func Merge(rec types.EpisodeRecord, season int, title string, m types.TitleMap) types.EpisodeRecord {
	merged := rec
	if merged.Season == 0 {
		merged.Season = season
	}
	if t := strings.TrimSpace(title); t != "" {
		merged.Series = t
	}
	if m != nil && merged.EpisodeTitle == "" {
		if name, ok := m.Lookup(merged.Series, merged.Season, merged.Episode); ok {
			merged.EpisodeTitle = name
		}
	}
	return merged
}
