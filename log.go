package iso8583

import (
	"os"

	"github.com/rs/zerolog"
)

// DiagnosticSink receives non-fatal schema-declaration warnings, per
// spec.md §4.1's "unknown options are reported to a diagnostic sink but
// do not abort schema construction". Grounded on Forest33-tapir's
// pkg/logger wrapper around zerolog.
type DiagnosticSink interface {
	Warn(msg string, kv ...string)
}

// Logger wraps a zerolog.Logger the way Forest33-tapir/pkg/logger does,
// with fields passed as alternating key/value pairs rather than a
// zerolog.Context builder, so callers outside this package never import
// zerolog directly.
type Logger struct {
	zl zerolog.Logger
}

// NewDefault returns a Logger writing pretty console output to stderr,
// matching Forest33-tapir's NewDefault() convenience constructor.
func NewDefault() *Logger {
	w := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}
	return &Logger{zl: zerolog.New(w).With().Timestamp().Logger()}
}

// New wraps an already-configured zerolog.Logger.
func New(zl zerolog.Logger) *Logger {
	return &Logger{zl: zl}
}

func (l *Logger) Warn(msg string, kv ...string) {
	ev := l.zl.Warn()
	for i := 0; i+1 < len(kv); i += 2 {
		ev = ev.Str(kv[i], kv[i+1])
	}
	ev.Msg(msg)
}

func (l *Logger) Debug(msg string, kv ...string) {
	ev := l.zl.Debug()
	for i := 0; i+1 < len(kv); i += 2 {
		ev = ev.Str(kv[i], kv[i+1])
	}
	ev.Msg(msg)
}

func (l *Logger) Info(msg string, kv ...string) {
	ev := l.zl.Info()
	for i := 0; i+1 < len(kv); i += 2 {
		ev = ev.Str(kv[i], kv[i+1])
	}
	ev.Msg(msg)
}

// defaultSink is used by FamilyBuilder when no DiagnosticSink is
// supplied via WithDiagnosticSink.
var defaultSink DiagnosticSink = NewDefault()
