// Package log builds the slog.Logger of the enumtry command.
//
// Without a log file, records below error level go to stdout and errors go to
// stderr, so generator failures can be redirected on their own. With a log
// file, the console only receives errors and the file receives every record.
package log

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// LevelTrace is a custom level below Debug, used to dump reflected models.
const LevelTrace slog.Level = -8

// Levels lists the accepted level names.
var Levels = []string{"trace", "debug", "info", "warn", "error"}

// ParseLevel parses a level name. Unknown names are an error.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "trace":
		return LevelTrace, nil
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level %q (known: %s)", s, strings.Join(Levels, ", "))
	}
}

// Options configure Setup.
type Options struct {
	Level string
	// File receives every record when set. It is truncated on open.
	File string
	// Stdout and Stderr default to os.Stdout and os.Stderr.
	Stdout io.Writer
	Stderr io.Writer
}

// Setup builds a logger from opts. The returned closers release the log file.
func Setup(opts Options) (*slog.Logger, []io.Closer, error) {
	level, err := ParseLevel(opts.Level)
	if err != nil {
		return nil, nil, err
	}

	stdout, stderr := opts.Stdout, opts.Stderr
	if stdout == nil {
		stdout = os.Stdout
	}

	if stderr == nil {
		stderr = os.Stderr
	}

	handlerOpts := &slog.HandlerOptions{Level: level, ReplaceAttr: replaceLevel}
	isError := func(l slog.Level) bool { return l >= slog.LevelError }

	var (
		handlers []slog.Handler
		closers  []io.Closer
	)

	if opts.File == "" {
		handlers = append(handlers,
			LevelFilter{
				pass: func(l slog.Level) bool { return !isError(l) },
				h:    slog.NewTextHandler(stdout, handlerOpts),
			},
			LevelFilter{pass: isError, h: slog.NewTextHandler(stderr, handlerOpts)},
		)
	} else {
		f, err := os.OpenFile(opts.File, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("opening log file: %w", err)
		}

		closers = append(closers, f)
		handlers = append(handlers,
			LevelFilter{pass: isError, h: slog.NewTextHandler(stderr, handlerOpts)},
			slog.NewTextHandler(f, handlerOpts),
		)
	}

	return slog.New(MultiHandler{hs: handlers}), closers, nil
}

// replaceLevel prints LevelTrace as "TRACE" instead of "DEBUG-4".
func replaceLevel(_ []string, a slog.Attr) slog.Attr {
	if a.Key == slog.LevelKey {
		if l, ok := a.Value.Any().(slog.Level); ok && l == LevelTrace {
			a.Value = slog.StringValue("TRACE")
		}
	}

	return a
}

// MultiHandler fans out records to multiple handlers.
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
	var first error

	for _, h := range m.hs {
		if !h.Enabled(ctx, r.Level) {
			continue
		}

		if err := h.Handle(ctx, r.Clone()); err != nil && first == nil {
			first = err
		}
	}

	return first
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

// LevelFilter passes to h only the records whose level satisfies pass.
type LevelFilter struct {
	pass func(slog.Level) bool
	h    slog.Handler
}

func (f LevelFilter) Enabled(ctx context.Context, level slog.Level) bool {
	return f.pass(level) && f.h.Enabled(ctx, level)
}

func (f LevelFilter) Handle(ctx context.Context, r slog.Record) error {
	if !f.pass(r.Level) {
		return nil
	}

	return f.h.Handle(ctx, r)
}

func (f LevelFilter) WithAttrs(attrs []slog.Attr) slog.Handler {
	return LevelFilter{pass: f.pass, h: f.h.WithAttrs(attrs)}
}

func (f LevelFilter) WithGroup(name string) slog.Handler {
	return LevelFilter{pass: f.pass, h: f.h.WithGroup(name)}
}
