// Package logging builds the application's zap logger. Logs go to a rotating
// file because the TUI owns stdout.
package logging

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Off disables file logging when used as the log file.
const Off = "off"

// Config controls logger construction.
type Config struct {
	Level      string // debug, info, warn, error
	File       string // log file path, or Off
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
}

// ConfigFromEnv reads LEGACYREADY_LOG_LEVEL and LEGACYREADY_LOG_FILE.
func ConfigFromEnv() Config {
	cfg := Config{
		Level:      os.Getenv("LEGACYREADY_LOG_LEVEL"),
		File:       os.Getenv("LEGACYREADY_LOG_FILE"),
		MaxSizeMB:  10,
		MaxBackups: 3,
		MaxAgeDays: 28,
	}
	if cfg.Level == "" {
		cfg.Level = "info"
	}
	if cfg.File == "" {
		cfg.File = DefaultLogPath()
	}
	return cfg
}

// DefaultLogPath returns $XDG_STATE_HOME/legacyready/legacyready.log,
// falling back to ~/.local/state.
func DefaultLogPath() string {
	stateHome := os.Getenv("XDG_STATE_HOME")
	if stateHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return filepath.Join(os.TempDir(), "legacyready.log")
		}
		stateHome = filepath.Join(home, ".local", "state")
	}
	return filepath.Join(stateHome, "legacyready", "legacyready.log")
}

// New creates a JSON file logger from cfg. It returns a no-op logger when
// logging is turned off.
func New(cfg Config) (*zap.Logger, error) {
	if cfg.File == Off || cfg.File == "" {
		return zap.NewNop(), nil
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("parse log level: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(cfg.File), 0o755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}

	encoderConfig := zapcore.EncoderConfig{
		TimeKey:        "time",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "caller",
		MessageKey:     "msg",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.LowercaseLevelEncoder,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.MillisDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}

	writer := zapcore.AddSync(&lumberjack.Logger{
		Filename:   cfg.File,
		MaxSize:    cfg.MaxSizeMB,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAgeDays,
	})

	core := zapcore.NewCore(zapcore.NewJSONEncoder(encoderConfig), writer, level)
	return zap.New(core, zap.AddCaller(), zap.AddStacktrace(zap.ErrorLevel)), nil
}
