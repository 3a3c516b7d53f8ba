// Package config loads zenrename configuration: built-in defaults, an
// optional global YAML file, and an optional per-run JSON override.
// Configuration problems are never fatal; every bad key degrades to the
// corresponding default and is reported as a warning.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/zenrename/zenrename/internal/matcher"
)

// Config is the effective configuration for one run. It is assembled once
// and passed down by value; nothing mutates it afterwards.
type Config struct {
	VideoExtensions    []string       `json:"video_extensions" yaml:"video_extensions"`
	SubtitleExtensions []string       `json:"subtitle_extensions" yaml:"subtitle_extensions"`
	BookExtensions     []string       `json:"book_extensions" yaml:"book_extensions"`
	EpisodePatterns    []matcher.Rule `json:"episode_patterns" yaml:"episode_patterns"`
	API                APIConfig      `json:"-" yaml:"api"`
}

// APIConfig holds metadata service settings.
type APIConfig struct {
	BaseURL     string  `yaml:"base_url"`
	RateLimit   float64 `yaml:"rate_limit"` // Seconds between consecutive requests
	SearchLimit int     `yaml:"search_limit"`
	Timeout     int     `yaml:"timeout"` // Seconds
}

// AnimeExtensions returns the combined video and subtitle extension set.
func (c Config) AnimeExtensions() []string {
	return append(append([]string{}, c.VideoExtensions...), c.SubtitleExtensions...)
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		VideoExtensions:    []string{".mp4", ".mkv", ".ts", ".avi"},
		SubtitleExtensions: []string{".srt", ".vtt", ".ass", ".sub"},
		BookExtensions:     []string{".pdf", ".epub", ".mobi", ".azw", ".txt"},
		EpisodePatterns:    matcher.DefaultRules(),
		API: APIConfig{
			BaseURL:     "https://api.jikan.moe/v4",
			RateLimit:   2,
			SearchLimit: 10,
			Timeout:     30,
		},
	}
}

// Load assembles the effective configuration: defaults, then the global
// YAML file if one exists, then the per-run JSON override. Problems are
// returned as warnings alongside a usable configuration.
func Load(overridePath string) (Config, []error) {
	cfg := Default()
	var warnings []error

	if path := findGlobalConfig(); path != "" {
		if err := loadGlobal(&cfg, path); err != nil {
			cfg = Default()
			warnings = append(warnings, err)
		}
	}

	if overridePath != "" {
		warnings = append(warnings, applyOverride(&cfg, overridePath)...)
	}

	cfg.VideoExtensions = normalizeExtensions(cfg.VideoExtensions)
	cfg.SubtitleExtensions = normalizeExtensions(cfg.SubtitleExtensions)
	cfg.BookExtensions = normalizeExtensions(cfg.BookExtensions)

	return cfg, warnings
}

// loadGlobal overlays the global YAML file onto cfg. Only present keys
// overwrite; list keys replace wholesale.
func loadGlobal(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read global config at %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to parse global config at %s: %w", path, err)
	}
	return nil
}

// findGlobalConfig searches for the global config file in standard locations.
func findGlobalConfig() string {
	xdgConfig := os.Getenv("XDG_CONFIG_HOME")
	if xdgConfig == "" {
		home, _ := os.UserHomeDir()
		if home != "" {
			xdgConfig = filepath.Join(home, ".config")
		}
	}

	if xdgConfig != "" {
		path := filepath.Join(xdgConfig, "zenrename", "config.yml")
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	etcPath := "/etc/zenrename/config.yml"
	if _, err := os.Stat(etcPath); err == nil {
		return etcPath
	}

	return ""
}

// applyOverride overlays a JSON override file key by key, so one bad key
// degrades to its default without discarding the rest of the file.
func applyOverride(cfg *Config, path string) []error {
	data, err := os.ReadFile(path)
	if err != nil {
		return []error{fmt.Errorf("failed to read config override at %s: %w", path, err)}
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return []error{fmt.Errorf("failed to parse config override at %s: %w", path, err)}
	}

	var warnings []error
	overrideList := func(key string, dst *[]string) {
		msg, ok := raw[key]
		if !ok {
			return
		}
		var list []string
		if err := json.Unmarshal(msg, &list); err != nil {
			warnings = append(warnings, fmt.Errorf("config override %s: %s must be a list of strings, keeping defaults", path, key))
			return
		}
		*dst = list
	}

	overrideList("video_extensions", &cfg.VideoExtensions)
	overrideList("subtitle_extensions", &cfg.SubtitleExtensions)
	overrideList("book_extensions", &cfg.BookExtensions)

	if msg, ok := raw["episode_patterns"]; ok {
		var rules []matcher.Rule
		if err := json.Unmarshal(msg, &rules); err != nil {
			warnings = append(warnings, fmt.Errorf("config override %s: episode_patterns must be a list of rule objects, keeping defaults", path))
		} else {
			// Rule-level validation happens when the registry loads
			// them; an all-invalid list falls back there too.
			cfg.EpisodePatterns = rules
		}
	}

	return warnings
}

// normalizeExtensions lowercases entries and guarantees a leading dot.
func normalizeExtensions(exts []string) []string {
	out := make([]string, 0, len(exts))
	for _, e := range exts {
		e = strings.ToLower(strings.TrimSpace(e))
		if e == "" {
			continue
		}
		if !strings.HasPrefix(e, ".") {
			e = "." + e
		}
		out = append(out, e)
	}
	return out
}
