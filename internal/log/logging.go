// Package log provides helpers for creating a configured slog.Logger.
//
// Console output goes to stdout for non-error levels and to stderr for
// errors. Interactive commands that own the terminal disable the console
// and log to a file only.
package log

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"
)

// LevelTrace defines a custom slog level below Debug for very verbose output.
const LevelTrace slog.Level = -8

// Config is the logging section shared by all commands.
type Config struct {
	Level     string `help:"Log level: trace, debug, info, warn, error" default:"info" enum:"trace,debug,info,warn,error" env:"CTRLBIND_LOG_LEVEL"`
	File      string `help:"Write logs to this file in addition to the console" env:"CTRLBIND_LOG_FILE"`
	TraceFile string `help:"Write a raw-in / semantic-out event trace to this file" env:"CTRLBIND_LOG_TRACE_FILE"`
}

func ParseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "trace":
		return LevelTrace
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// fanout sends records to every handler that accepts their level.
type fanout []slog.Handler

func (f fanout) Enabled(ctx context.Context, level slog.Level) bool {
	for _, h := range f {
		if h.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (f fanout) Handle(ctx context.Context, r slog.Record) error {
	for _, h := range f {
		if h.Enabled(ctx, r.Level) {
			_ = h.Handle(ctx, r.Clone())
		}
	}
	return nil
}

func (f fanout) WithAttrs(attrs []slog.Attr) slog.Handler {
	out := make(fanout, len(f))
	for i, h := range f {
		out[i] = h.WithAttrs(attrs)
	}
	return out
}

func (f fanout) WithGroup(name string) slog.Handler {
	out := make(fanout, len(f))
	for i, h := range f {
		out[i] = h.WithGroup(name)
	}
	return out
}

// levelRange passes records in [min, max) to h.
type levelRange struct {
	min, max slog.Level
	h        slog.Handler
}

func (r levelRange) pass(l slog.Level) bool { return l >= r.min && l < r.max }

func (r levelRange) Enabled(ctx context.Context, level slog.Level) bool {
	return r.pass(level) && r.h.Enabled(ctx, level)
}

func (r levelRange) Handle(ctx context.Context, rec slog.Record) error {
	if !r.pass(rec.Level) {
		return nil
	}
	return r.h.Handle(ctx, rec)
}

func (r levelRange) WithAttrs(attrs []slog.Attr) slog.Handler {
	return levelRange{min: r.min, max: r.max, h: r.h.WithAttrs(attrs)}
}

func (r levelRange) WithGroup(name string) slog.Handler {
	return levelRange{min: r.min, max: r.max, h: r.h.WithGroup(name)}
}

// SetupLogger builds a slog.Logger from cfg. With console false nothing is
// written to stdout or stderr. The returned closers own any opened files.
func SetupLogger(cfg Config, console bool) (*slog.Logger, []io.Closer, error) {
	level := ParseLevel(cfg.Level)
	var handlers fanout
	var closers []io.Closer

	if console {
		handlers = append(handlers,
			levelRange{min: LevelTrace, max: slog.LevelError, h: slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})},
			levelRange{min: slog.LevelError, max: slog.LevelError + 100, h: slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError})},
		)
	}
	if cfg.File != "" {
		f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, nil, err
		}
		closers = append(closers, f)
		handlers = append(handlers, slog.NewTextHandler(f, &slog.HandlerOptions{Level: level}))
	}
	if len(handlers) == 0 {
		return slog.New(slog.DiscardHandler), closers, nil
	}
	return slog.New(handlers), closers, nil
}
