// Package logger is the site's structured logger. Fields are given as
// alternating key/value pairs.
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Options configure a Logger. Level is a zerolog level name; empty means info.
type Options struct {
	Level         string
	HumanReadable bool
	Writer        io.Writer
}

// Logger is nil-safe: every method on a nil *Logger is a no-op.
type Logger struct {
	zl zerolog.Logger
}

func New(opts Options) (*Logger, error) {
	level, err := parseLevel(opts.Level)
	if err != nil {
		return nil, err
	}
	zl := zerolog.New(sink(opts)).Level(level).With().Timestamp().Logger()
	return &Logger{zl: zl}, nil
}

// Nop discards everything.
func Nop() *Logger {
	return &Logger{zl: zerolog.Nop()}
}

func parseLevel(name string) (zerolog.Level, error) {
	if name == "" {
		return zerolog.InfoLevel, nil
	}
	level, err := zerolog.ParseLevel(strings.ToLower(name))
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("log level %q: %w", name, err)
	}
	return level, nil
}

func sink(opts Options) io.Writer {
	w := opts.Writer
	if w == nil {
		w = os.Stdout
	}
	if !opts.HumanReadable {
		return w
	}
	return zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen}
}

// With returns a child logger that adds kv to every entry.
func (l *Logger) With(kv ...any) *Logger {
	if l == nil {
		return nil
	}
	return &Logger{zl: l.zl.With().Fields(kv).Logger()}
}

func (l *Logger) Debug(msg string, kv ...any) {
	if l != nil {
		l.zl.Debug().Fields(kv).Msg(msg)
	}
}

func (l *Logger) Info(msg string, kv ...any) {
	if l != nil {
		l.zl.Info().Fields(kv).Msg(msg)
	}
}

// Warn is for conditions the site degrades around, like a missing resume.
func (l *Logger) Warn(msg string, kv ...any) {
	if l != nil {
		l.zl.Warn().Fields(kv).Msg(msg)
	}
}

func (l *Logger) Error(err error, msg string, kv ...any) {
	if l != nil {
		l.zl.Error().Err(err).Fields(kv).Msg(msg)
	}
}

// Request writes the access log line for one HTTP request. client carries
// the optional visitor fields and is empty for DNT requests.
func (l *Logger) Request(method, path string, status int, latency time.Duration, client map[string]string) {
	if l == nil {
		return
	}
	ev := l.zl.Info().
		Str("method", method).
		Str("path", path).
		Int("status", status).
		Dur("latency", latency)
	for k, v := range client {
		ev.Str(k, v)
	}
	ev.Msg("request")
}
