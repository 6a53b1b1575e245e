package logger

import (
	"fmt"
	"log/slog"
	"strings"
)

// Level is the severity of a log message.
// Levels are totally ordered: Trace < Debug < Info < Warn < Error.
type Level int8

const (
	LevelTrace Level = iota
	LevelDebug
	LevelInfo
	LevelWarn
	LevelError
)

// SlogLevelTrace is the slog level used for trace messages; slog has no
// trace level of its own, so trace sits below debug by the same distance
// debug sits below info.
const SlogLevelTrace = slog.LevelDebug - 4

func (l Level) String() string {
	switch l {
	case LevelTrace:
		return "trace"
	case LevelDebug:
		return "debug"
	case LevelInfo:
		return "info"
	case LevelWarn:
		return "warn"
	case LevelError:
		return "error"
	default:
		return fmt.Sprintf("level(%d)", int8(l))
	}
}

// label is the upper-case form written at the start of each output line.
func (l Level) label() string {
	switch l {
	case LevelTrace:
		return "TRACE"
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return strings.ToUpper(l.String())
	}
}

// ParseLevel converts a level name as it appears in configuration files.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "trace":
		return LevelTrace, nil
	case "debug":
		return LevelDebug, nil
	case "info":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	default:
		return LevelInfo, fmt.Errorf("unknown log level %q", s)
	}
}

func levelFromSlog(sl slog.Level) Level {
	switch {
	case sl < slog.LevelDebug:
		return LevelTrace
	case sl < slog.LevelInfo:
		return LevelDebug
	case sl < slog.LevelWarn:
		return LevelInfo
	case sl < slog.LevelError:
		return LevelWarn
	default:
		return LevelError
	}
}

// Stream identifies which of the two console streams a line is written
// to. On the target device both streams are carried by the debug-link
// transport and shown separately by the external viewer.
type Stream int8

const (
	Stdout Stream = iota
	Stderr
)

func (s Stream) String() string {
	if s == Stderr {
		return "stderr"
	}
	return "stdout"
}

// ParseStream converts a stream name as it appears in configuration files.
func ParseStream(s string) (Stream, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "stdout":
		return Stdout, nil
	case "stderr":
		return Stderr, nil
	default:
		return Stdout, fmt.Errorf("unknown output stream %q", s)
	}
}
