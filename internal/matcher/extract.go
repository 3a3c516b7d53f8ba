package matcher

import (
	"path/filepath"
	"strconv"
	"strings"

	"github.com/zenrename/zenrename/internal/types"
)

// Extract parses a base filename into an EpisodeRecord. The extension is
// split off first and preserved verbatim; the rules run against the stem.
//
// The returned error is non-nil exactly when no episode number could be
// determined (no rule matched, or the capture was unusable). The record
// still carries whatever was found; a missing series name is left for the
// caller to resolve, since a title override can supply it.
func (r *Registry) Extract(filename string) (types.EpisodeRecord, error) {
	ext := filepath.Ext(filename)
	stem := strings.TrimSuffix(filename, ext)
	if stem == "" {
		// Dotfiles like ".srt" have no stem to parse.
		stem, ext = filename, ""
	}

	rec := types.EpisodeRecord{Ext: ext, Original: filename}

	for _, cr := range r.rules {
		m := cr.re.FindStringSubmatch(stem)
		if m == nil {
			continue
		}

		if cr.hasSeries {
			rec.Series = strings.TrimSpace(m[cr.re.SubexpIndex(GroupSeries)])
		}

		if cr.hasSeason {
			// An unusable season capture means "no season", not the
			// rule's default.
			if s, err := strconv.Atoi(m[cr.re.SubexpIndex(GroupSeason)]); err == nil {
				rec.Season = s
			}
		} else {
			rec.Season = cr.rule.SeasonDefault
		}

		// First matching rule wins; a match with an unusable episode
		// capture does not fall through to lower-priority rules.
		ep, err := strconv.Atoi(m[cr.re.SubexpIndex(GroupEpisode)])
		if err != nil {
			return rec, types.ErrNoMatch{Filename: filename, Missing: missingParts(rec.Series)}
		}
		rec.Episode = ep
		return rec, nil
	}

	return rec, types.ErrNoMatch{Filename: filename, Missing: missingParts(rec.Series)}
}

func missingParts(series string) []string {
	if series == "" {
		return []string{"series name", "episode number"}
	}
	return []string{"episode number"}
}
