package titles

import (
	"encoding/csv"
	"fmt"
	"os"
	"sort"

	"github.com/zenrename/zenrename/internal/types"
)

var header = []string{"Series", "Season", "Episode", "Title"}

// ReadFile loads a title map from a CSV file. Malformed rows are skipped
// and reported in the returned slice; they never fail the load. A leading
// header row is recognized and ignored.
func ReadFile(path string) (types.TitleMap, []error, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open title cache %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	rows, err := r.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read title cache %s: %w", path, err)
	}

	m := types.TitleMap{}
	var warnings []error

	for i, row := range rows {
		if len(row) != 4 {
			warnings = append(warnings, fmt.Errorf("row %d: expected 4 columns, got %d", i+1, len(row)))
			continue
		}

		season, serr := ParseSeason(row[1])
		episode, eerr := ParseEpisode(row[2])
		if serr != nil || eerr != nil {
			if i == 0 {
				// Header row.
				continue
			}
			if eerr != nil {
				warnings = append(warnings, fmt.Errorf("row %d: %w", i+1, eerr))
			} else {
				warnings = append(warnings, fmt.Errorf("row %d: %w", i+1, serr))
			}
			continue
		}

		m.Add(row[0], season, episode, row[3])
	}

	return m, warnings, nil
}

// WriteFile saves a title map as CSV, header first, rows ordered by
// series, season and episode so the output is deterministic.
func WriteFile(path string, m types.TitleMap) error {
	keys := make([]types.TitleKey, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].Series != keys[j].Series {
			return keys[i].Series < keys[j].Series
		}
		if keys[i].Season != keys[j].Season {
			return keys[i].Season < keys[j].Season
		}
		return keys[i].Episode < keys[j].Episode
	})

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create title cache %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		return fmt.Errorf("failed to write title cache %s: %w", path, err)
	}
	for _, k := range keys {
		row := []string{k.Series, FormatSeason(k.Season), FormatEpisode(k.Episode), m[k]}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("failed to write title cache %s: %w", path, err)
		}
	}

	w.Flush()
	return w.Error()
}
