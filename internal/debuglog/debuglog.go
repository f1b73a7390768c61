// Package debuglog provides the structured loggers used by the CLI, the TUI
// and the HTTP server.
package debuglog

import (
	"fmt"
	"strings"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/javiermolinar/afazeres/internal/dateexpr"
	"github.com/javiermolinar/afazeres/internal/extract"
)

// Config describes a logger.
type Config struct {
	Level    string // "debug", "info", "warn", "error"
	Encoding string // "json" or "console"
	Path     string // output file; empty means stderr
}

// New builds a zap logger from cfg.
func New(cfg Config) (*zap.Logger, error) {
	level := zapcore.InfoLevel
	if cfg.Level != "" {
		l, err := zapcore.ParseLevel(strings.ToLower(cfg.Level))
		if err != nil {
			return nil, fmt.Errorf("parsing log level: %w", err)
		}
		level = l
	}

	encoding := cfg.Encoding
	if encoding == "" {
		encoding = "json"
	}

	output := cfg.Path
	if output == "" {
		output = "stderr"
	}

	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(level)
	zc.Encoding = encoding
	zc.OutputPaths = []string{output}
	zc.ErrorOutputPaths = []string{"stderr"}
	zc.EncoderConfig.TimeKey = "ts"
	zc.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	zc.Sampling = nil

	logger, err := zc.Build()
	if err != nil {
		return nil, fmt.Errorf("building logger: %w", err)
	}
	return logger, nil
}

var (
	mu     sync.Mutex
	global = zap.NewNop()
)

// Init sets up the global debug logger. When enabled, JSON events are
// written to path; otherwise logging is a no-op.
func Init(enabled bool, path string) error {
	mu.Lock()
	defer mu.Unlock()

	if !enabled {
		global = zap.NewNop()
		return nil
	}

	logger, err := New(Config{Level: "debug", Encoding: "json", Path: path})
	if err != nil {
		return fmt.Errorf("creating debug log: %w", err)
	}
	global = logger
	global.Debug("debug_start", zap.String("log_file", path))
	return nil
}

// Close flushes the global logger.
func Close() {
	mu.Lock()
	defer mu.Unlock()

	global.Debug("debug_end")
	_ = global.Sync()
	global = zap.NewNop()
}

// L returns the global logger.
func L() *zap.Logger {
	mu.Lock()
	defer mu.Unlock()
	return global
}

// Fields returns the log fields describing an extraction result.
func Fields(r extract.Result) []zap.Field {
	fields := []zap.Field{zap.String("text", r.Text)}
	if m := r.DateMatch; m != nil {
		fields = append(fields,
			zap.String("date_text", m.Text),
			zap.Stringer("date_shape", m.Shape),
		)
		if m.Shape == dateexpr.ShapeRelative {
			fields = append(fields, zap.String("date_rule", dateexpr.RuleName(m.Phrase)))
		}
	}
	switch {
	case r.HasDate():
		fields = append(fields, zap.Time("date", r.Date))
	case r.DateErr != nil:
		fields = append(fields, zap.NamedError("date_err", r.DateErr))
	}
	if r.Time != nil {
		fields = append(fields, zap.Stringer("time", *r.Time))
	}
	if r.Action != "" {
		fields = append(fields, zap.String("action", r.Action))
	}
	if r.URL != "" {
		fields = append(fields, zap.String("url", r.URL))
	}
	if r.Email != "" {
		fields = append(fields, zap.String("email", r.Email))
	}
	if len(r.Tags) > 0 {
		fields = append(fields, zap.Strings("tags", r.Tags))
	}
	return append(fields, zap.Bool("empty", r.Empty()))
}

// LogExtract records an extraction on the global logger.
func LogExtract(source string, r extract.Result) {
	L().Debug("extract", append([]zap.Field{zap.String("source", source)}, Fields(r)...)...)
}

// LogError records an error on the global logger.
func LogError(context string, err error) {
	L().Error("error", zap.String("context", context), zap.Error(err))
}
