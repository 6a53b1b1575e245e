package logger

// Config selects the minimum level that is emitted at all and, for each
// level, which console stream carries it.
//
// Build one with NewConfig and chain the With*Stream methods:
//
//	cfg := logger.NewConfig(logger.LevelDebug).
//		WithDebugStream(logger.Stdout).
//		WithInfoStream(logger.Stdout)
//
// Config is a value; every With*Stream call returns an updated copy, so
// a Config handed to Install can never change afterwards.
type Config struct {
	threshold Level
	streams   [5]Stream
}

// NewConfig returns a Config with the given threshold and the default
// stream mapping: trace, debug and info to stdout, warn and error to
// stderr.
func NewConfig(threshold Level) Config {
	return Config{
		threshold: threshold,
		streams: [5]Stream{
			LevelTrace: Stdout,
			LevelDebug: Stdout,
			LevelInfo:  Stdout,
			LevelWarn:  Stderr,
			LevelError: Stderr,
		},
	}
}

// Threshold reports the minimum level that is emitted.
func (c Config) Threshold() Level { return c.threshold }

// WithTraceStream maps trace messages to the given stream.
func (c Config) WithTraceStream(s Stream) Config {
	c.streams[LevelTrace] = s
	return c
}

// WithDebugStream maps debug messages to the given stream.
func (c Config) WithDebugStream(s Stream) Config {
	c.streams[LevelDebug] = s
	return c
}

// WithInfoStream maps info messages to the given stream.
func (c Config) WithInfoStream(s Stream) Config {
	c.streams[LevelInfo] = s
	return c
}

// WithWarnStream maps warn messages to the given stream.
func (c Config) WithWarnStream(s Stream) Config {
	c.streams[LevelWarn] = s
	return c
}

// WithErrorStream maps error messages to the given stream.
func (c Config) WithErrorStream(s Stream) Config {
	c.streams[LevelError] = s
	return c
}

func (c Config) stream(l Level) Stream {
	return c.streams[l]
}
