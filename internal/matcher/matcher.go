// Package matcher parses release-style filenames into episode records and
// builds canonical filenames back out of them.
//
// Extraction is driven by an ordered registry of regex rules with named
// capture groups (series, season, episode). Rules are tried in priority
// order with case-insensitive search-anywhere semantics; the first rule
// that matches wins.
package matcher

import (
	"fmt"
	"regexp"

	"github.com/zenrename/zenrename/internal/types"
)

// Group names recognized in rule patterns.
const (
	GroupSeries  = "series"
	GroupSeason  = "season"
	GroupEpisode = "episode"
)

// Rule is one extraction pattern. Pattern must contain an `episode` named
// group; `series` and `season` groups are optional. SeasonDefault is used
// when the pattern captures no season.
type Rule struct {
	Pattern       string `json:"pattern" yaml:"pattern"`
	SeasonDefault int    `json:"season_default,omitempty" yaml:"season_default,omitempty"`
}

type compiledRule struct {
	rule       Rule
	re         *regexp.Regexp
	hasSeries  bool
	hasSeason  bool
	hasEpisode bool
}

// compile validates and compiles a rule case-insensitively.
func compile(r Rule) (*compiledRule, error) {
	if r.Pattern == "" {
		return nil, types.ErrConfigInvalid{Path: "episode_patterns", Reason: "rule has no pattern"}
	}

	re, err := regexp.Compile("(?i)" + r.Pattern)
	if err != nil {
		return nil, types.ErrConfigInvalid{Path: "episode_patterns", Reason: fmt.Sprintf("pattern %q does not compile: %v", r.Pattern, err)}
	}

	cr := &compiledRule{rule: r, re: re}
	for _, name := range re.SubexpNames() {
		switch name {
		case GroupSeries:
			cr.hasSeries = true
		case GroupSeason:
			cr.hasSeason = true
		case GroupEpisode:
			cr.hasEpisode = true
		}
	}
	if !cr.hasEpisode {
		return nil, types.ErrConfigInvalid{Path: "episode_patterns", Reason: fmt.Sprintf("pattern %q has no episode group", r.Pattern)}
	}
	return cr, nil
}

// DefaultRules returns the built-in rule set, most specific first. The two
// trailing rules accept the canonical output format so a second run over
// renamed files resolves to the same names.
func DefaultRules() []Rule {
	return []Rule{
		{Pattern: `Watch\s+(?P<series>.*?) (?P<season>\d+)(?:st|nd|rd|th)? Season Episode\s+(?P<episode>\d+)`},
		{Pattern: `^(?P<series>.*?) (?P<season>\d+)(?:st|nd|rd|th)? Season Episode\s+(?P<episode>\d+)`},
		{Pattern: `Watch\s+(?P<series>.*?) Episode\s+(?P<episode>\d+)`},
		{Pattern: `^(?P<series>.*?) Episode\s+(?P<episode>\d+)`},
		{Pattern: `^(?P<series>.*?) - S(?P<season>\d+) - E(?P<episode>\d+)`},
		{Pattern: `^(?P<series>.*?) - E(?P<episode>\d+)`},
	}
}

// Registry holds the active rules in priority order.
type Registry struct {
	rules []*compiledRule
}

// NewRegistry returns a registry loaded with the built-in rules.
func NewRegistry() *Registry {
	r := &Registry{}
	// The built-in rules always compile.
	r.Replace(DefaultRules())
	return r
}

// Replace swaps the active rules for the given set. Rules are validated
// per item; invalid ones are rejected and reported in the returned slice.
// If no rule survives validation the registry keeps its previous rules.
func (r *Registry) Replace(rules []Rule) []error {
	var (
		compiled []*compiledRule
		rejected []error
	)
	for _, rule := range rules {
		cr, err := compile(rule)
		if err != nil {
			rejected = append(rejected, err)
			continue
		}
		compiled = append(compiled, cr)
	}
	if len(compiled) > 0 {
		r.rules = compiled
	}
	return rejected
}

// Len returns the number of active rules.
func (r *Registry) Len() int {
	return len(r.rules)
}
