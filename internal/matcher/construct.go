package matcher

import (
	"fmt"
	"strings"

	"github.com/zenrename/zenrename/internal/types"
	"github.com/zenrename/zenrename/internal/util"
)

// BuildName constructs the canonical filename for a record:
//
//	Series - S01 - E05 - Episode Title.ext
//
// Season zero contributes no segment. The episode title is sanitized of
// characters invalid in filenames and dropped entirely if nothing
// survives. The extension is appended verbatim.
func BuildName(rec types.EpisodeRecord) string {
	parts := []string{strings.TrimSpace(rec.Series)}

	if rec.Season != 0 {
		parts = append(parts, fmt.Sprintf("S%02d", rec.Season))
	}
	parts = append(parts, fmt.Sprintf("E%02d", rec.Episode))

	if title := strings.TrimSpace(util.StripInvalid(rec.EpisodeTitle)); title != "" {
		parts = append(parts, title)
	}

	return strings.Join(parts, " - ") + rec.Ext
}
