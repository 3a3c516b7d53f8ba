// Package api provides the core implementation for zenrename operations.
// This package is used by both the CLI and the public library API.
package api

import (
	"context"
	"fmt"

	"github.com/zenrename/zenrename/internal/config"
	"github.com/zenrename/zenrename/internal/fetcher"
	"github.com/zenrename/zenrename/internal/handler"
	"github.com/zenrename/zenrename/internal/matcher"
	"github.com/zenrename/zenrename/internal/renamer"
	"github.com/zenrename/zenrename/internal/types"
)

// Option is a functional option for configuring operations
type Option func(*Options)

// Options holds configuration for zenrename operations
type Options struct {
	Season     int
	Title      string
	Online     bool
	Creative   bool
	ConfigPath string
	Events     types.EventHandler
	Confirm    func(series []string) bool
	Source     types.TitleSource
	Picker     fetcher.PickFunc
	Progress   bool
}

// WithSeason sets the fallback season for files without one in the name
func WithSeason(season int) Option {
	return func(o *Options) { o.Season = season }
}

// WithTitle overrides the extracted series name for the whole batch
func WithTitle(title string) Option {
	return func(o *Options) { o.Title = title }
}

// WithOnline enables the episode-title fetch from the metadata service
func WithOnline() Option {
	return func(o *Options) { o.Online = true }
}

// WithCreative renames standard files to generated names
func WithCreative() Option {
	return func(o *Options) { o.Creative = true }
}

// WithConfig specifies a custom config override file path
func WithConfig(path string) Option {
	return func(o *Options) { o.ConfigPath = path }
}

// WithEvents registers a handler for progress events
func WithEvents(h types.EventHandler) Option {
	return func(o *Options) { o.Events = h }
}

// WithConfirm sets the callback deciding an ambiguous-season batch
func WithConfirm(f func(series []string) bool) Option {
	return func(o *Options) { o.Confirm = f }
}

// WithTitleSource replaces the default Jikan client as metadata source
func WithTitleSource(s types.TitleSource) Option {
	return func(o *Options) { o.Source = s }
}

// WithPicker sets the callback choosing among metadata search candidates
func WithPicker(f fetcher.PickFunc) Option {
	return func(o *Options) { o.Picker = f }
}

// WithProgress shows a progress bar while fetching paginated metadata
func WithProgress() Option {
	return func(o *Options) { o.Progress = true }
}

// Anime renames anime episodes in the target file or directory.
func Anime(ctx context.Context, target string, opts ...Option) ([]types.RenameOperation, error) {
	options := build(opts)
	cfg := loadConfig(options)

	registry := matcher.NewRegistry()
	for _, err := range registry.Replace(cfg.EpisodePatterns) {
		emit(options, types.EventWarning, "%v", err)
	}

	source := options.Source
	if source == nil && options.Online {
		client := fetcher.New(cfg.API)
		client.Pick = options.Picker
		client.Progress = options.Progress
		source = client
	}

	r := &renamer.Renamer{
		Registry:   registry,
		Extensions: cfg.AnimeExtensions(),
		Season:     options.Season,
		Title:      options.Title,
		Online:     options.Online,
		Source:     source,
		Confirm:    options.Confirm,
		Events:     options.Events,
	}
	return r.Run(ctx, target)
}

// Movies cleans up movie filenames in the target.
func Movies(ctx context.Context, target string, opts ...Option) ([]types.RenameOperation, error) {
	options := build(opts)
	cfg := loadConfig(options)
	return handler.Movies(target, cfg.VideoExtensions, options.Events)
}

// Books cleans up book filenames in the target.
func Books(ctx context.Context, target string, opts ...Option) ([]types.RenameOperation, error) {
	options := build(opts)
	cfg := loadConfig(options)
	return handler.Books(target, cfg.BookExtensions, options.Events)
}

// Standard renames arbitrary files in the target.
func Standard(ctx context.Context, target string, opts ...Option) ([]types.RenameOperation, error) {
	options := build(opts)
	return handler.Standard(target, options.Creative, options.Events)
}

func build(opts []Option) *Options {
	options := &Options{}
	for _, opt := range opts {
		opt(options)
	}
	return options
}

// loadConfig resolves the run configuration; loader warnings surface as
// events and never abort the run.
func loadConfig(o *Options) config.Config {
	cfg, warnings := config.Load(o.ConfigPath)
	for _, w := range warnings {
		emit(o, types.EventWarning, "%v", w)
	}
	return cfg
}

func emit(o *Options, t types.EventType, format string, args ...any) {
	if o.Events != nil {
		o.Events(types.Event{Type: t, Message: fmt.Sprintf(format, args...)})
	}
}
