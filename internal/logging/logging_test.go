package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/dekarrin/ghostq/internal/config"
)

func Test_New(t *testing.T) {
	testCases := []struct {
		name        string
		level       string
		logDebug    bool
		expectInLog []string
		expectNot   []string
		expectErr   bool
	}{
		{
			name:        "info level drops debug",
			level:       "info",
			expectInLog: []string{"room entered", `"room":"FOYER"`},
			expectNot:   []string{"matcher scores"},
		},
		{
			name:        "debug level keeps debug",
			level:       "DEBUG",
			expectInLog: []string{"room entered", "matcher scores"},
		},
		{
			name:      "bad level",
			level:     "chatty",
			expectErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)
			path := filepath.Join(t.TempDir(), "ghostq.log")
			cfg := config.Default().Log
			cfg.File = path
			cfg.Level = tc.level

			lg, err := New(cfg)
			if tc.expectErr {
				assert.Error(err)
				return
			}
			require.NoError(t, err)

			lg.Info("room entered", zap.String("room", "FOYER"))
			lg.Debug("matcher scores")
			require.NoError(t, lg.Close())

			data, err := os.ReadFile(path)
			require.NoError(t, err)
			for _, s := range tc.expectInLog {
				assert.Contains(string(data), s)
			}
			for _, s := range tc.expectNot {
				assert.NotContains(string(data), s)
			}
		})
	}
}

func Test_New_noFile(t *testing.T) {
	assert := assert.New(t)

	lg, err := New(config.Log{Level: "info"})
	require.NoError(t, err)

	assert.NotPanics(func() { lg.Info("nowhere") })
	assert.NoError(lg.Close())
}
