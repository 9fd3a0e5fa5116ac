package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Load(t *testing.T) {
	testCases := []struct {
		name      string
		content   string
		expect    func() Config
		expectErr bool
	}{
		{
			name:    "empty file gives defaults",
			content: "",
			expect:  Default,
		},
		{
			name: "partial file keeps other defaults",
			content: `
world = "worlds/haunted/manifest.toml"
width = 100

[matcher]
clear_winner_margin = 15

[log]
file = "ghostq.log"
`,
			expect: func() Config {
				cfg := Default()
				cfg.World = "worlds/haunted/manifest.toml"
				cfg.Width = 100
				cfg.Matcher.ClearWinnerMargin = 15
				cfg.Log.File = "ghostq.log"
				return cfg
			},
		},
		{
			name: "messages",
			content: `
[messages]
quit = "Farewell."
`,
			expect: func() Config {
				cfg := Default()
				cfg.Messages.Quit = "Farewell."
				return cfg
			},
		},
		{
			name:      "unknown key",
			content:   "colour = \"red\"\n",
			expectErr: true,
		},
		{
			name:      "bad toml",
			content:   "width = = 3\n",
			expectErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)
			path := filepath.Join(t.TempDir(), "ghostq.toml")
			require.NoError(t, os.WriteFile(path, []byte(tc.content), 0644))

			actual, err := Load(path)
			if tc.expectErr {
				assert.Error(err)
				return
			}
			assert.NoError(err)
			assert.Equal(tc.expect(), actual)
		})
	}
}

func Test_Load_noPath(t *testing.T) {
	assert := assert.New(t)

	actual, err := Load("")

	assert.NoError(err)
	assert.Equal(Default(), actual)
}

func Test_Load_unknownKeyIsInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ghostq.toml")
	require.NoError(t, os.WriteFile(path, []byte("[matcher]\nthreshold = 3\n"), 0644))

	_, err := Load(path)

	assert.ErrorIs(t, err, ErrInvalid)
}

func Test_Config_ApplyEnv(t *testing.T) {
	testCases := []struct {
		name      string
		env       map[string]string
		expect    func() Config
		expectErr bool
	}{
		{
			name:   "nothing set",
			env:    map[string]string{},
			expect: Default,
		},
		{
			name: "everything set",
			env: map[string]string{
				EnvWorld:    "other.toml",
				EnvWidth:    "60",
				EnvLogLevel: "debug",
				EnvLogFile:  "/tmp/ghostq.log",
				EnvDebug:    "true",
			},
			expect: func() Config {
				cfg := Default()
				cfg.World = "other.toml"
				cfg.Width = 60
				cfg.Log.Level = "debug"
				cfg.Log.File = "/tmp/ghostq.log"
				cfg.Debug = true
				return cfg
			},
		},
		{
			name:   "empty values are ignored",
			env:    map[string]string{EnvWorld: ""},
			expect: Default,
		},
		{
			name:      "bad width",
			env:       map[string]string{EnvWidth: "wide"},
			expectErr: true,
		},
		{
			name:      "bad debug",
			env:       map[string]string{EnvDebug: "sorta"},
			expectErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)
			cfg := Default()
			lookup := func(key string) (string, bool) {
				v, ok := tc.env[key]
				return v, ok
			}

			err := cfg.ApplyEnv(lookup)
			if tc.expectErr {
				assert.ErrorIs(err, ErrInvalid)
				return
			}
			assert.NoError(err)
			assert.Equal(tc.expect(), cfg)
		})
	}
}

func Test_Config_Validate(t *testing.T) {
	testCases := []struct {
		name      string
		modify    func(cfg *Config)
		expectErr bool
	}{
		{name: "defaults", modify: func(cfg *Config) {}},
		{name: "no world", modify: func(cfg *Config) { cfg.World = "" }, expectErr: true},
		{name: "narrow", modify: func(cfg *Config) { cfg.Width = MinWidth - 1 }, expectErr: true},
		{name: "minimum width", modify: func(cfg *Config) { cfg.Width = MinWidth }},
		{name: "zero threshold", modify: func(cfg *Config) { cfg.Matcher.ReverseThreshold = 0 }, expectErr: true},
		{name: "negative margin", modify: func(cfg *Config) { cfg.Matcher.ClearWinnerMargin = -5 }, expectErr: true},
		{name: "no candidates", modify: func(cfg *Config) { cfg.Matcher.MaxCandidates = 0 }, expectErr: true},
		{name: "log level case", modify: func(cfg *Config) { cfg.Log.Level = "WARN" }},
		{name: "unknown log level", modify: func(cfg *Config) { cfg.Log.Level = "chatty" }, expectErr: true},
		{name: "negative backups", modify: func(cfg *Config) { cfg.Log.MaxBackups = -1 }, expectErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)
			cfg := Default()
			tc.modify(&cfg)

			err := cfg.Validate()
			if tc.expectErr {
				assert.ErrorIs(err, ErrInvalid)
			} else {
				assert.NoError(err)
			}
		})
	}
}
