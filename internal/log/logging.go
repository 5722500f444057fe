// Package log builds the slog.Logger used across the CLI and carries the
// raw scancode tracer (see RawLogger). A custom trace level below debug is
// reserved for wire-level output: per-byte scancode dumps and command/ack
// chatter that would drown the debug stream.
//
// Without a log file, records below error go to stdout and errors to
// stderr, so event output can be piped while failures stay visible.
package log

import (
	"context"
	"io"
	"log/slog"
	"os"
)

// LevelTrace is the wire-tracing level, below slog.LevelDebug.
const LevelTrace slog.Level = -8

func parseLevel(s string) slog.Level {
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

// renameTrace relabels the custom trace level, which slog would otherwise
// render as "DEBUG-4".
func renameTrace(_ []string, a slog.Attr) slog.Attr {
	if a.Key == slog.LevelKey {
		if level, ok := a.Value.Any().(slog.Level); ok && level == LevelTrace {
			a.Value = slog.StringValue("TRACE")
		}
	}
	return a
}

func textHandler(w io.Writer, level slog.Level) slog.Handler {
	return slog.NewTextHandler(w, &slog.HandlerOptions{
		Level:       level,
		ReplaceAttr: renameTrace,
	})
}

// fanoutHandler duplicates records to every wrapped handler.
type fanoutHandler struct{ hs []slog.Handler }

func (m fanoutHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, h := range m.hs {
		if h.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (m fanoutHandler) Handle(ctx context.Context, r slog.Record) error {
	for _, h := range m.hs {
		_ = h.Handle(ctx, r)
	}
	return nil
}

func (m fanoutHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	out := make([]slog.Handler, len(m.hs))
	for i, h := range m.hs {
		out[i] = h.WithAttrs(attrs)
	}
	return fanoutHandler{hs: out}
}

func (m fanoutHandler) WithGroup(name string) slog.Handler {
	out := make([]slog.Handler, len(m.hs))
	for i, h := range m.hs {
		out[i] = h.WithGroup(name)
	}
	return fanoutHandler{hs: out}
}

// levelSplit routes records at or above the threshold to high, the rest to
// low. This is what keeps errors on stderr while events stream on stdout.
type levelSplit struct {
	threshold slog.Level
	low, high slog.Handler
}

func (s levelSplit) pick(level slog.Level) slog.Handler {
	if level >= s.threshold {
		return s.high
	}
	return s.low
}

func (s levelSplit) Enabled(ctx context.Context, level slog.Level) bool {
	return s.pick(level).Enabled(ctx, level)
}

func (s levelSplit) Handle(ctx context.Context, r slog.Record) error {
	return s.pick(r.Level).Handle(ctx, r)
}

func (s levelSplit) WithAttrs(attrs []slog.Attr) slog.Handler {
	return levelSplit{threshold: s.threshold, low: s.low.WithAttrs(attrs), high: s.high.WithAttrs(attrs)}
}

func (s levelSplit) WithGroup(name string) slog.Handler {
	return levelSplit{threshold: s.threshold, low: s.low.WithGroup(name), high: s.high.WithGroup(name)}
}

// SetupLogger builds the CLI logger. With logFile empty the output is the
// stdout/stderr split; otherwise console output moves wholly to stderr and
// a handler writing to logFile is added. Returned closers own any opened
// files.
func SetupLogger(logLevel, logFile string) (*slog.Logger, []io.Closer, error) {
	level := parseLevel(logLevel)

	var handlers []slog.Handler
	var closeFiles []io.Closer

	if logFile == "" {
		handlers = append(handlers, levelSplit{
			threshold: slog.LevelError,
			low:       textHandler(os.Stdout, level),
			high:      textHandler(os.Stderr, slog.LevelError),
		})
	} else {
		handlers = append(handlers, textHandler(os.Stderr, level))
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, nil, err
		}
		closeFiles = append(closeFiles, f)
		handlers = append(handlers, textHandler(f, level))
	}

	return slog.New(fanoutHandler{hs: handlers}), closeFiles, nil
}
