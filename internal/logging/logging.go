package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// Config contains logging configuration.
type Config struct {
	// Level is the minimum log level (debug, info, warn, error).
	Level string
	// Output receives the log records (default: os.Stderr).
	Output io.Writer
	// OmitTime drops the time attribute so records are reproducible.
	OmitTime bool
}

// DefaultConfig returns the configuration used by the CLI.
func DefaultConfig() Config {
	return Config{
		Level:    "warn",
		Output:   os.Stderr,
		OmitTime: true,
	}
}

// New builds a text logger, one record per line.
func New(cfg Config) *slog.Logger {
	output := cfg.Output
	if output == nil {
		output = os.Stderr
	}

	opts := &slog.HandlerOptions{
		Level: LevelFromString(cfg.Level),
	}
	if cfg.OmitTime {
		opts.ReplaceAttr = dropTime
	}

	return slog.New(slog.NewTextHandler(output, opts))
}

// Setup builds a logger from cfg and installs it as the slog default.
// The returned function restores the previous default.
func Setup(cfg Config) (*slog.Logger, func()) {
	prev := slog.Default()
	logger := New(cfg)
	slog.SetDefault(logger)
	return logger, func() { slog.SetDefault(prev) }
}

func dropTime(groups []string, a slog.Attr) slog.Attr {
	if len(groups) == 0 && a.Key == slog.TimeKey {
		return slog.Attr{}
	}
	return a
}

// LevelFromString converts string level to slog.Level.
// Unknown names map to info.
func LevelFromString(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
