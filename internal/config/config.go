// Package config loads ghostq settings. Values come from built-in defaults,
// then an optional TOML file, then GHOSTQ_* environment variables; command
// line flags are applied on top by the caller.
package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
)

// ErrInvalid is wrapped by every error about a bad configuration value.
var ErrInvalid = errors.New("invalid configuration")

// MinWidth is the narrowest output width allowed.
const MinWidth = 20

// Environment variables that override file settings.
const (
	EnvWorld    = "GHOSTQ_WORLD"
	EnvWidth    = "GHOSTQ_WIDTH"
	EnvLogLevel = "GHOSTQ_LOG_LEVEL"
	EnvLogFile  = "GHOSTQ_LOG_FILE"
	EnvDebug    = "GHOSTQ_DEBUG"
)

// Config is the complete set of ghostq settings.
type Config struct {
	// World is the path to the GQW file to load.
	World string `toml:"world"`

	// Title is the name of the game.
	Title string `toml:"title"`

	// Width is the column that output is wrapped at.
	Width int `toml:"width"`

	Verbose bool `toml:"verbose"`
	Sound   bool `toml:"sound"`
	Debug   bool `toml:"debug"`

	Matcher  Matcher  `toml:"matcher"`
	Messages Messages `toml:"messages"`
	Log      Log      `toml:"log"`
}

// Matcher holds the object matcher's thresholds.
type Matcher struct {
	ReverseThreshold  int `toml:"reverse_threshold"`
	ClearWinnerMargin int `toml:"clear_winner_margin"`
	MaxCandidates     int `toml:"max_candidates"`
}

// Messages holds the texts shown around starting and ending the game.
type Messages struct {
	Welcome         string `toml:"welcome"`
	Quit            string `toml:"quit"`
	Restart         string `toml:"restart"`
	Continue        string `toml:"continue"`
	VersionFallback string `toml:"version_fallback"`
}

// Log configures the log file. Logging is off when File is empty.
type Log struct {
	Level      string `toml:"level"`
	File       string `toml:"file"`
	MaxSizeMB  int    `toml:"max_size_mb"`
	MaxBackups int    `toml:"max_backups"`
	MaxAgeDays int    `toml:"max_age_days"`
	Compress   bool   `toml:"compress"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		World: "world.toml",
		Title: "Ghost Quest",
		Width: 80,
		Sound: true,
		Matcher: Matcher{
			ReverseThreshold:  90,
			ClearWinnerMargin: 20,
			MaxCandidates:     5,
		},
		Messages: Messages{
			Welcome:         "Welcome to the haunted adventure! Type HELP for a list of commands.",
			Quit:            "Thanks for playing! Goodbye.",
			Restart:         "Restarting the haunted adventure...",
			Continue:        "Good! Continue your haunted adventure...",
			VersionFallback: "unknown",
		},
		Log: Log{
			Level:      "info",
			MaxSizeMB:  10,
			MaxBackups: 3,
			MaxAgeDays: 28,
		},
	}
}

// Load returns the defaults overlaid with the TOML file at path. An empty path
// gives just the defaults. Keys in the file that ghostq does not know are an
// error.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return cfg, fmt.Errorf("read config %q: %w", path, err)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i := range undecoded {
			keys[i] = undecoded[i].String()
		}
		return cfg, fmt.Errorf("config %q: %w: unknown keys: %s", path, ErrInvalid, strings.Join(keys, ", "))
	}

	return cfg, nil
}

// ApplyEnv overrides settings with environment variables. lookup is normally
// os.LookupEnv.
func (cfg *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvWorld); ok && v != "" {
		cfg.World = v
	}
	if v, ok := lookup(EnvWidth); ok && v != "" {
		w, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w: %q is not a number", EnvWidth, ErrInvalid, v)
		}
		cfg.Width = w
	}
	if v, ok := lookup(EnvLogLevel); ok && v != "" {
		cfg.Log.Level = v
	}
	if v, ok := lookup(EnvLogFile); ok && v != "" {
		cfg.Log.File = v
	}
	if v, ok := lookup(EnvDebug); ok && v != "" {
		d, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s: %w: %q is not true or false", EnvDebug, ErrInvalid, v)
		}
		cfg.Debug = d
	}
	return nil
}

// Validate checks that every setting is usable.
func (cfg Config) Validate() error {
	if cfg.World == "" {
		return fmt.Errorf("world: %w: must not be empty", ErrInvalid)
	}
	if cfg.Width < MinWidth {
		return fmt.Errorf("width: %w: must be at least %d", ErrInvalid, MinWidth)
	}
	if cfg.Matcher.ReverseThreshold < 1 {
		return fmt.Errorf("matcher.reverse_threshold: %w: must be positive", ErrInvalid)
	}
	if cfg.Matcher.ClearWinnerMargin < 1 {
		return fmt.Errorf("matcher.clear_winner_margin: %w: must be positive", ErrInvalid)
	}
	if cfg.Matcher.MaxCandidates < 1 {
		return fmt.Errorf("matcher.max_candidates: %w: must be positive", ErrInvalid)
	}

	switch strings.ToLower(cfg.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level: %w: %q is not one of debug, info, warn, or error", ErrInvalid, cfg.Log.Level)
	}
	if cfg.Log.MaxSizeMB < 0 || cfg.Log.MaxBackups < 0 || cfg.Log.MaxAgeDays < 0 {
		return fmt.Errorf("log: %w: sizes and counts must not be negative", ErrInvalid)
	}

	return nil
}
