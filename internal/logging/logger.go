// Package logging is the developer-facing diagnostic log.
//
// The terminal belongs to the UI while the program runs, so records go to a
// rotating JSON file instead of stderr.
package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Component names used with ForComponent
const (
	CompApp     = "app"
	CompRewrite = "rewrite"
	CompUI      = "ui"
	CompConfig  = "config"
)

// Config holds logging configuration
type Config struct {
	// Path is the log file; empty discards all records
	Path string

	// Level is the minimum level: "debug", "info", "warn", "error"
	Level string

	// Debug forces debug level
	Debug bool

	// MaxSizeMB is the size before rotation (default: 5)
	MaxSizeMB int

	// MaxBackups is the number of rotated files to keep (default: 3)
	MaxBackups int
}

var (
	globalLogger *slog.Logger
	globalMu     sync.RWMutex
	writer       *lumberjack.Logger
)

// Init sets up the global logger. When the log directory cannot be created
// the records go to a file of the same name under os.TempDir and the
// directory error is returned; Path reports where they end up.
func Init(cfg Config) error {
	globalMu.Lock()
	defer globalMu.Unlock()

	if cfg.MaxSizeMB <= 0 {
		cfg.MaxSizeMB = 5
	}
	if cfg.MaxBackups <= 0 {
		cfg.MaxBackups = 3
	}

	if cfg.Path == "" {
		globalLogger = discardLogger()
		return nil
	}

	var initErr error
	if err := os.MkdirAll(filepath.Dir(cfg.Path), 0755); err != nil {
		initErr = fmt.Errorf("failed to create log directory: %w", err)
		cfg.Path = filepath.Join(os.TempDir(), filepath.Base(cfg.Path))
	}

	writer = &lumberjack.Logger{
		Filename:   cfg.Path,
		MaxSize:    cfg.MaxSizeMB,
		MaxBackups: cfg.MaxBackups,
		Compress:   true,
	}

	level := ParseLevel(cfg.Level)
	if cfg.Debug {
		level = slog.LevelDebug
	}

	globalLogger = slog.New(slog.NewJSONHandler(writer, &slog.HandlerOptions{Level: level}))
	return initErr
}

// Path returns the file records are written to, or "" when they are
// discarded
func Path() string {
	globalMu.RLock()
	defer globalMu.RUnlock()
	if writer == nil {
		return ""
	}
	return writer.Filename
}

// ParseLevel maps a level name to a slog level, defaulting to info
func ParseLevel(name string) slog.Level {
	switch name {
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

// Logger returns the global logger. Safe to call before Init.
func Logger() *slog.Logger {
	globalMu.RLock()
	defer globalMu.RUnlock()
	if globalLogger == nil {
		return discardLogger()
	}
	return globalLogger
}

// ForComponent returns a logger tagged with a component name.
// Loggers created before Init pick up the real handler once Init runs.
func ForComponent(name string) *slog.Logger {
	return slog.New(&dynamicHandler{component: name})
}

// Shutdown closes the log file
func Shutdown() {
	globalMu.Lock()
	defer globalMu.Unlock()

	if writer != nil {
		writer.Close()
		writer = nil
	}
	globalLogger = nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

// dynamicHandler resolves the global handler at log time
type dynamicHandler struct {
	component string
	ops       []handlerOp // WithAttrs/WithGroup calls, in order
}

// handlerOp is one WithAttrs (group == "") or WithGroup call
type handlerOp struct {
	attrs []slog.Attr
	group string
}

func (h *dynamicHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return Logger().Handler().Enabled(ctx, level)
}

func (h *dynamicHandler) Handle(ctx context.Context, r slog.Record) error {
	handler := Logger().Handler()
	handler = handler.WithAttrs([]slog.Attr{slog.String("component", h.component)})
	for _, op := range h.ops {
		if op.group != "" {
			handler = handler.WithGroup(op.group)
		} else {
			handler = handler.WithAttrs(op.attrs)
		}
	}
	return handler.Handle(ctx, r)
}

func (h *dynamicHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}
	return h.with(handlerOp{attrs: attrs})
}

func (h *dynamicHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	return h.with(handlerOp{group: name})
}

func (h *dynamicHandler) with(op handlerOp) *dynamicHandler {
	ops := make([]handlerOp, len(h.ops), len(h.ops)+1)
	copy(ops, h.ops)
	return &dynamicHandler{component: h.component, ops: append(ops, op)}
}
