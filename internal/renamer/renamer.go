// Package renamer drives a batch rename: listing, extraction, the
// season-ambiguity gate, metadata resolution and the per-file rename loop.
package renamer

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/zenrename/zenrename/internal/matcher"
	"github.com/zenrename/zenrename/internal/titles"
	"github.com/zenrename/zenrename/internal/types"
)

// Renamer orchestrates one batch over a target file or directory.
type Renamer struct {
	Registry   *matcher.Registry
	Extensions []string

	// Season is the fallback for files whose name carries no season.
	Season int

	// Title overrides the extracted series name for the whole batch.
	Title string

	// Online enables the metadata fetch through Source. Offline runs
	// read the CSV cache next to the files instead.
	Online bool

	// Source supplies episode titles when Online is set.
	Source types.TitleSource

	// Confirm gates a batch that spans several series while a season
	// override is in force. Nil counts as declined; proceeding needs an
	// explicit yes.
	Confirm func(series []string) bool

	// Events receives progress events. Nil discards them.
	Events types.EventHandler
}

type plan struct {
	name string
	rec  types.EpisodeRecord
	err  error
}

// Run processes the target and returns one operation per candidate file.
// A failed listing is the only fatal error; a declined season confirmation
// returns types.ErrAmbiguousSeason before any file is touched.
func (r *Renamer) Run(ctx context.Context, target string) ([]types.RenameOperation, error) {
	files, dir, err := List(target, r.Extensions)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		r.emit(types.EventWarning, "no media files found in %s", target)
		return nil, nil
	}

	plans := make([]plan, 0, len(files))
	for _, name := range files {
		rec, err := r.Registry.Extract(name)
		plans = append(plans, plan{name: name, rec: rec, err: err})
	}

	// Applying one season override across unrelated series is almost
	// always a mistake, so ask before touching anything.
	if r.Season != 0 {
		if series := distinctSeries(plans); len(series) > 1 {
			r.emit(types.EventWarning, "season %d would apply to %d different series: %s",
				r.Season, len(series), strings.Join(series, ", "))
			if r.Confirm == nil || !r.Confirm(series) {
				return nil, types.ErrAmbiguousSeason{Series: series, Season: r.Season}
			}
		}
	}

	titleMap := types.TitleMap{}
	if lookup := r.lookupSeries(plans); lookup != "" {
		titleMap = r.loadTitles(ctx, dir, lookup)
	}

	ops := make([]types.RenameOperation, 0, len(plans))
	for _, p := range plans {
		merged := Merge(p.rec, r.Season, r.Title, titleMap)

		if missing := missingParts(merged, p.err); len(missing) > 0 {
			op := types.RenameOperation{
				SourcePath: filepath.Join(dir, p.name),
				Status:     types.StatusSkipped,
				Reason:     fmt.Sprintf("could not determine %s", strings.Join(missing, ", ")),
			}
			ops = append(ops, op)
			r.emit(types.EventWarning, "skipping %s: %s", p.name, op.Reason)
			continue
		}

		op := Apply(dir, p.name, matcher.BuildName(merged))
		ops = append(ops, op)
		switch op.Status {
		case types.StatusSuccess:
			r.emit(types.EventSuccess, "%s -> %s", p.name, filepath.Base(op.TargetPath))
		case types.StatusSkipped:
			r.emit(types.EventInfo, "%s: %s", p.name, op.Reason)
		case types.StatusFailed:
			r.emit(types.EventError, "failed to rename %s: %s", p.name, op.Reason)
		}
	}

	return ops, nil
}

// lookupSeries picks the series title used for the metadata lookup: the
// batch override when given, else the first extracted series name.
func (r *Renamer) lookupSeries(plans []plan) string {
	if t := strings.TrimSpace(r.Title); t != "" {
		return t
	}
	for _, p := range plans {
		if s := strings.TrimSpace(p.rec.Series); s != "" {
			return s
		}
	}
	return ""
}

// loadTitles resolves the episode-title map for the batch. Online runs
// fetch through the source and refresh the CSV cache next to the files;
// offline runs read the cache if present. Failures degrade to an empty
// map and never abort the batch.
func (r *Renamer) loadTitles(ctx context.Context, dir, series string) types.TitleMap {
	cachePath := titles.CachePath(dir, series)

	if r.Online && r.Source != nil {
		m, err := r.Source.Titles(ctx, series, r.Season)
		if err != nil {
			r.emit(types.EventWarning, "failed to fetch episode titles for %s: %v", series, err)
			return types.TitleMap{}
		}
		r.emit(types.EventInfo, "fetched %d episode titles for %s", len(m), series)
		if err := titles.WriteFile(cachePath, m); err != nil {
			r.emit(types.EventWarning, "failed to write title cache %s: %v", cachePath, err)
		}
		return m
	}

	if _, err := os.Stat(cachePath); err != nil {
		return types.TitleMap{}
	}
	m, warnings, err := titles.ReadFile(cachePath)
	if err != nil {
		r.emit(types.EventWarning, "failed to read title cache %s: %v", cachePath, err)
		return types.TitleMap{}
	}
	for _, w := range warnings {
		r.emit(types.EventWarning, "%s: %v", cachePath, w)
	}
	r.emit(types.EventInfo, "loaded %d episode titles from %s", len(m), filepath.Base(cachePath))
	return m
}

// missingParts names what still blocks a rename once overrides are merged.
// Extraction errors only ever mean the episode number was not found.
func missingParts(rec types.EpisodeRecord, extractErr error) []string {
	var missing []string
	if strings.TrimSpace(rec.Series) == "" {
		missing = append(missing, "series name")
	}
	if extractErr != nil {
		missing = append(missing, "episode number")
	}
	return missing
}

// distinctSeries collects the unique extracted series names of a batch.
func distinctSeries(plans []plan) []string {
	seen := make(map[string]bool)
	var series []string
	for _, p := range plans {
		s := strings.TrimSpace(p.rec.Series)
		if s == "" || seen[s] {
			continue
		}
		seen[s] = true
		series = append(series, s)
	}
	sort.Strings(series)
	return series
}

// List resolves a target into the base names to process plus their
// directory. A directory is read non-recursively, regular files only; a
// file target stands alone when its extension qualifies. The extension
// filter is case-insensitive and an empty filter admits every file.
func List(target string, exts []string) ([]string, string, error) {
	info, err := os.Stat(target)
	if err != nil {
		return nil, "", fmt.Errorf("failed to access %s: %w", target, err)
	}

	allowed := make(map[string]bool, len(exts))
	for _, e := range exts {
		allowed[strings.ToLower(e)] = true
	}
	wanted := func(name string) bool {
		return len(allowed) == 0 || allowed[strings.ToLower(filepath.Ext(name))]
	}

	if !info.IsDir() {
		var names []string
		if wanted(info.Name()) {
			names = append(names, filepath.Base(target))
		}
		return names, filepath.Dir(target), nil
	}

	entries, err := os.ReadDir(target)
	if err != nil {
		return nil, "", fmt.Errorf("failed to read directory %s: %w", target, err)
	}

	var names []string
	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			continue
		}
		if wanted(entry.Name()) {
			names = append(names, entry.Name())
		}
	}
	return names, target, nil
}

func (r *Renamer) emit(t types.EventType, format string, args ...any) {
	if r.Events != nil {
		r.Events(types.Event{Type: t, Message: fmt.Sprintf(format, args...)})
	}
}
