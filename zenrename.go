// Package zenrename provides high-level functions for renaming media
// files into a standardized naming scheme.
//
// This package mirrors the CLI functionality and provides a compatible
// API for integrating zenrename into other Go applications.
package zenrename

import (
	"github.com/zenrename/zenrename/internal/api"
	"github.com/zenrename/zenrename/internal/types"
)

// Re-export the core types
type (
	Option          = api.Option
	Options         = api.Options
	EpisodeRecord   = types.EpisodeRecord
	TitleKey        = types.TitleKey
	TitleMap        = types.TitleMap
	TitleSource     = types.TitleSource
	SearchCandidate = types.SearchCandidate
	RenameOperation = types.RenameOperation
	OperationStatus = types.OperationStatus
	Event           = types.Event
	EventType       = types.EventType
	EventHandler    = types.EventHandler
)

// Re-export the operation statuses
const (
	StatusPending = types.StatusPending
	StatusSuccess = types.StatusSuccess
	StatusSkipped = types.StatusSkipped
	StatusFailed  = types.StatusFailed
)

// Re-export all option constructors
var (
	WithSeason      = api.WithSeason
	WithTitle       = api.WithTitle
	WithOnline      = api.WithOnline
	WithCreative    = api.WithCreative
	WithConfig      = api.WithConfig
	WithEvents      = api.WithEvents
	WithConfirm     = api.WithConfirm
	WithTitleSource = api.WithTitleSource
	WithPicker      = api.WithPicker
	WithProgress    = api.WithProgress
)

// Re-export all core functions
var (
	Anime    = api.Anime
	Movies   = api.Movies
	Books    = api.Books
	Standard = api.Standard
)
