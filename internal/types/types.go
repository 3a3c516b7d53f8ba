// Package types defines core domain types used throughout zenrename.
package types

// MediaKind selects which handler processes a target.
type MediaKind string

const (
	KindAnime    MediaKind = "anime"
	KindMovie    MediaKind = "movie"
	KindBook     MediaKind = "book"
	KindStandard MediaKind = "std"
)

// EpisodeRecord is the structured result of parsing one filename.
type EpisodeRecord struct {
	// Series is the series name, trimmed of surrounding whitespace.
	Series string `json:"series"`

	// Season is the season number. Zero means "no season": the canonical
	// filename carries no season segment.
	Season int `json:"season,omitempty"`

	// Episode is the episode number. A record only exists once an episode
	// number has been found; without one the file is unrenameable.
	Episode int `json:"episode"`

	// EpisodeTitle is only ever populated from external metadata, never
	// parsed out of the filename.
	EpisodeTitle string `json:"episode_title,omitempty"`

	// Ext is the file extension verbatim, leading dot included. May be
	// empty for extensionless files.
	Ext string `json:"ext,omitempty"`

	// Original is the base name the record was parsed from.
	Original string `json:"original"`
}

// TitleKey identifies one episode in a TitleMap. Season zero means the
// entry was recorded without a season.
type TitleKey struct {
	Series  string
	Season  int
	Episode int
}

// TitleMap holds externally sourced episode titles. It is built once per
// batch, either from a metadata fetch or from a local CSV cache.
type TitleMap map[TitleKey]string

// Add records a title under the given key.
func (m TitleMap) Add(series string, season, episode int, title string) {
	m[TitleKey{Series: series, Season: season, Episode: episode}] = title
}

// Lookup resolves an episode title. It tries the exact key first, then the
// seasonless key, and finally falls back to an episode-only match when the
// map holds a single series.
func (m TitleMap) Lookup(series string, season, episode int) (string, bool) {
	if t, ok := m[TitleKey{Series: series, Season: season, Episode: episode}]; ok {
		return t, true
	}
	if season != 0 {
		if t, ok := m[TitleKey{Series: series, Episode: episode}]; ok {
			return t, true
		}
	}
	if !m.singleSeries() {
		return "", false
	}
	for k, t := range m {
		if k.Episode == episode {
			return t, true
		}
	}
	return "", false
}

func (m TitleMap) singleSeries() bool {
	seen := ""
	for k := range m {
		if seen != "" && k.Series != seen {
			return false
		}
		seen = k.Series
	}
	return seen != ""
}

// SearchCandidate is one result from a metadata series search.
type SearchCandidate struct {
	MALID    int    `json:"mal_id"`
	Title    string `json:"title"`
	Year     int    `json:"year,omitempty"`
	Type     string `json:"type,omitempty"`
	Episodes int    `json:"episodes,omitempty"`
}

// OperationStatus represents the status of a rename operation
type OperationStatus string

const (
	StatusPending OperationStatus = "pending"
	StatusSuccess OperationStatus = "success"
	StatusSkipped OperationStatus = "skipped"
	StatusFailed  OperationStatus = "failed"
)

// RenameOperation represents a planned or completed file rename
type RenameOperation struct {
	SourcePath string          `json:"source_path"`
	TargetPath string          `json:"target_path"`
	Status     OperationStatus `json:"status"`
	Reason     string          `json:"reason,omitempty"`
}

// EventType represents the type of progress event
type EventType string

const (
	EventInfo    EventType = "info"
	EventSuccess EventType = "success"
	EventWarning EventType = "warning"
	EventError   EventType = "error"
)

// Event represents a progress event during operations
type Event struct {
	Type    EventType `json:"type"`
	Message string    `json:"message"`
	Data    any       `json:"data,omitempty"`
}

// EventHandler receives progress events during operations
type EventHandler func(Event)
