// Package log builds the slog.Logger and raw byte logger used by ps2scan.
//
// Console logs always go to stderr. stdout belongs to the scan code output
// of break, make and table, so it can be piped without log lines mixed in.
package log

import (
	"context"
	"io"
	"log/slog"
	"os"
)

// LevelTrace defines a custom slog level below Debug for raw byte output.
const LevelTrace slog.Level = -8

// Config carries the logging flags shared by all commands.
type Config struct {
	Level   string `help:"Log level" enum:"trace,debug,info,warn,error" default:"info" env:"PS2SCAN_LOG_LEVEL"`
	File    string `help:"Also write logs to this file" env:"PS2SCAN_LOG_FILE"`
	RawFile string `help:"Write a hex dump of every byte chunk sent to this file" env:"PS2SCAN_LOG_RAW_FILE"`
}

func ParseLevel(s string) slog.Level {
	switch s {
	case "trace":
		return LevelTrace
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// MultiHandler fans out records to every handler enabled for their level.
type MultiHandler struct{ hs []slog.Handler }

func (m MultiHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, h := range m.hs {
		if h.Enabled(ctx, level) {
			return true
		}
	}
	return false
}
func (m MultiHandler) Handle(ctx context.Context, r slog.Record) error {
	for _, h := range m.hs {
		if h.Enabled(ctx, r.Level) {
			_ = h.Handle(ctx, r.Clone())
		}
	}
	return nil
}
func (m MultiHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	out := make([]slog.Handler, len(m.hs))
	for i, h := range m.hs {
		out[i] = h.WithAttrs(attrs)
	}
	return MultiHandler{hs: out}
}
func (m MultiHandler) WithGroup(name string) slog.Handler {
	out := make([]slog.Handler, len(m.hs))
	for i, h := range m.hs {
		out[i] = h.WithGroup(name)
	}
	return MultiHandler{hs: out}
}

// Setup builds the logger and raw logger described by cfg. The returned
// close func releases any files opened for them.
func Setup(cfg Config) (*slog.Logger, RawLogger, func(), error) {
	return setup(cfg, os.Stderr)
}

func setup(cfg Config, console io.Writer) (*slog.Logger, RawLogger, func(), error) {
	level := ParseLevel(cfg.Level)
	var files []io.Closer
	closeAll := func() {
		for _, f := range files {
			_ = f.Close()
		}
	}

	handlers := []slog.Handler{slog.NewTextHandler(console, &slog.HandlerOptions{Level: level})}
	if cfg.File != "" {
		f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, nil, nil, err
		}
		files = append(files, f)
		handlers = append(handlers, slog.NewTextHandler(f, &slog.HandlerOptions{Level: level}))
	}
	logger := slog.New(MultiHandler{hs: handlers})

	var raw io.Writer
	switch {
	case cfg.RawFile != "":
		f, err := os.OpenFile(cfg.RawFile, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
		if err != nil {
			logger.Error("failed to open raw log file", "file", cfg.RawFile, "error", err)
			break
		}
		files = append(files, f)
		raw = f
	case level <= LevelTrace:
		raw = console
	}
	return logger, NewRaw(raw), closeAll, nil
}
