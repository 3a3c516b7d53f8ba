// Package types defines interfaces for zenrename components.
package types

import "context"

// TitleSource supplies externally sourced episode titles for a series.
// Implementations fetch from a metadata service or read a local cache; the
// batch orchestrator calls it at most once per run.
type TitleSource interface {
	// Titles returns the episode-title map for the series. Season is the
	// season hint the batch is running under; zero means unknown.
	Titles(ctx context.Context, series string, season int) (TitleMap, error)
}
