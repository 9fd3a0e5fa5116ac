// Package logging builds the zap logger ghostq writes its diagnostics to.
// The terminal belongs to the game, so logs only ever go to a rotated file.
package logging

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/dekarrin/ghostq/internal/config"
)

// Logger is a zap logger along with the file it writes to.
type Logger struct {
	*zap.Logger

	file *lumberjack.Logger
}

// New returns a logger configured by cfg. When cfg.File is empty the logger
// discards everything.
func New(cfg config.Log) (*Logger, error) {
	if cfg.File == "" {
		return &Logger{Logger: zap.NewNop()}, nil
	}

	level, err := zapcore.ParseLevel(strings.ToLower(cfg.Level))
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}

	file := &lumberjack.Logger{
		Filename:   cfg.File,
		MaxSize:    cfg.MaxSizeMB,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAgeDays,
		Compress:   cfg.Compress,
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	core := zapcore.NewCore(zapcore.NewJSONEncoder(encCfg), zapcore.AddSync(file), level)

	return &Logger{Logger: zap.New(core), file: file}, nil
}

// Close flushes pending entries and closes the log file.
func (lg *Logger) Close() error {
	// Sync on a file-backed core only fails for unusual files; the close error
	// is the one worth reporting.
	_ = lg.Logger.Sync()
	if lg.file == nil {
		return nil
	}
	return lg.file.Close()
}
