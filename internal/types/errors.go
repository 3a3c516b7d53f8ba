// Package types defines custom error types for zenrename.
package types

import (
	"fmt"
	"strings"
)

// ErrNoMatch indicates a filename could not be parsed into a renameable
// record. Missing lists the parts that could not be determined, in the
// order series name, episode number.
type ErrNoMatch struct {
	Filename string
	Missing  []string
}

func (e ErrNoMatch) Error() string {
	return fmt.Sprintf("could not determine %s for %s", strings.Join(e.Missing, ", "), e.Filename)
}

// ErrConfigInvalid indicates a configuration error
type ErrConfigInvalid struct {
	Path   string
	Reason string
}

func (e ErrConfigInvalid) Error() string {
	return fmt.Sprintf("invalid config %s: %s", e.Path, e.Reason)
}

// ErrAmbiguousSeason indicates a non-zero season override would apply to
// more than one series and the batch was not confirmed.
type ErrAmbiguousSeason struct {
	Series []string
	Season int
}

func (e ErrAmbiguousSeason) Error() string {
	return fmt.Sprintf("season override %d spans %d series; batch not confirmed", e.Season, len(e.Series))
}

// ErrAPIError indicates an error from an external API
type ErrAPIError struct {
	Service    string
	StatusCode int
	Message    string
}

func (e ErrAPIError) Error() string {
	return fmt.Sprintf("%s API error (%d): %s", e.Service, e.StatusCode, e.Message)
}
