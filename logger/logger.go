// Package logger routes leveled log messages to one of the two console
// streams of an embedded target. The streams are carried by the
// device's debug-link transport and observed with an external viewer,
// so each line is written and flushed immediately; a crash right after
// a log call still leaves the line visible on the host side.
//
// A process installs exactly one routing configuration, early in its
// life, and logs through the standard slog facade (or the package-level
// helpers) from then on:
//
//	cfg := logger.NewConfig(logger.LevelDebug).
//		WithDebugStream(logger.Stdout).
//		WithInfoStream(logger.Stdout)
//	if err := logger.Install(cfg); err != nil {
//		// a logger was already active
//	}
//	slog.Info("hello from the device")
package logger

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"sync/atomic"

	"go.uber.org/multierr"
)

// ErrAlreadyInstalled is returned by Install when a logger is already
// active for the process.
var ErrAlreadyInstalled = errors.New("logger already installed")

// Logger routes leveled messages to one of the two console streams
// according to its Config. Construct one with New for direct use, or
// let Install wire one into the process-wide slot.
type Logger struct {
	cfg     Config
	stdout  sink
	stderr  sink
	dropped atomic.Uint64
}

// New returns a Logger writing to the process's standard streams.
func New(cfg Config) *Logger {
	return NewWithWriters(cfg, os.Stdout, os.Stderr)
}

// NewWithWriters returns a Logger writing to the given sinks instead of
// the process streams. Used by tests and by hosts that redirect the
// console transport.
func NewWithWriters(cfg Config, stdout, stderr io.Writer) *Logger {
	l := &Logger{cfg: cfg}
	l.stdout.w = stdout
	l.stderr.w = stderr
	return l
}

// Enabled reports whether messages at the given level pass the
// configured threshold.
func (l *Logger) Enabled(lvl Level) bool {
	return lvl >= l.cfg.threshold
}

// Log writes one line carrying msg to the stream configured for lvl.
// Messages below the threshold are dropped without any side effect.
// Delivery failures are swallowed and counted; logging never fails or
// panics on behalf of the caller.
func (l *Logger) Log(lvl Level, msg string) {
	if !l.Enabled(lvl) {
		return
	}

	label := lvl.label()
	line := make([]byte, 0, len(label)+len(msg)+2)
	line = append(line, label...)
	line = append(line, ' ')
	line = append(line, msg...)
	line = append(line, '\n')

	s := &l.stdout
	if l.cfg.stream(lvl) == Stderr {
		s = &l.stderr
	}
	if err := s.writeLine(line); err != nil {
		l.dropped.Add(1)
	}
}

// Trace logs msg at trace level.
func (l *Logger) Trace(msg string) { l.Log(LevelTrace, msg) }

// Debug logs msg at debug level.
func (l *Logger) Debug(msg string) { l.Log(LevelDebug, msg) }

// Info logs msg at info level.
func (l *Logger) Info(msg string) { l.Log(LevelInfo, msg) }

// Warn logs msg at warn level.
func (l *Logger) Warn(msg string) { l.Log(LevelWarn, msg) }

// Error logs msg at error level.
func (l *Logger) Error(msg string) { l.Log(LevelError, msg) }

// Dropped reports how many lines were lost to sink write failures since
// the Logger was created.
func (l *Logger) Dropped() uint64 {
	return l.dropped.Load()
}

// Sync flushes both sinks.
func (l *Logger) Sync() error {
	return multierr.Append(l.stdout.flush(), l.stderr.flush())
}

// active is the process-wide logger slot. Written once by Install and
// read-only afterwards.
var active atomic.Pointer[Logger]

// Install wires cfg in as the process-wide logger and registers it as
// the default slog handler. At most one logger can be installed per
// process; later calls return ErrAlreadyInstalled and leave the active
// logger untouched. Install is expected to run once, before any logging
// activity.
func Install(cfg Config) error {
	return install(New(cfg))
}

func install(l *Logger) error {
	if !active.CompareAndSwap(nil, l) {
		return ErrAlreadyInstalled
	}
	slog.SetDefault(slog.New(NewHandler(l)))
	return nil
}

// Active returns the installed logger, or nil before Install.
func Active() *Logger {
	return active.Load()
}

// Trace logs msg at trace level through the installed logger.
// A no-op before Install, like the other package-level helpers.
func Trace(msg string) {
	if l := active.Load(); l != nil {
		l.Log(LevelTrace, msg)
	}
}

// Debug logs msg at debug level through the installed logger.
func Debug(msg string) {
	if l := active.Load(); l != nil {
		l.Log(LevelDebug, msg)
	}
}

// Info logs msg at info level through the installed logger.
func Info(msg string) {
	if l := active.Load(); l != nil {
		l.Log(LevelInfo, msg)
	}
}

// Warn logs msg at warn level through the installed logger.
func Warn(msg string) {
	if l := active.Load(); l != nil {
		l.Log(LevelWarn, msg)
	}
}

// Error logs msg at error level through the installed logger.
func Error(msg string) {
	if l := active.Load(); l != nil {
		l.Log(LevelError, msg)
	}
}
