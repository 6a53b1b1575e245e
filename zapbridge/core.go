// Package zapbridge exposes the console routing backend as a
// zapcore.Core, so zap-based hosts reuse the same threshold and stream
// mapping as everything else on the device:
//
//	log := zap.New(zapbridge.NewCore(logger.NewConfig(logger.LevelInfo)))
//	log.Info("hello from the device")
package zapbridge

import (
	"go.uber.org/zap/zapcore"

	"github.com/tarbeck/debuglink/logger"
)

var _ zapcore.Core = (*Core)(nil)

// Core routes zap entries through a debug-link logger. The backend
// emits plain level-tagged lines, so fields are dropped. Zap has no
// trace level; everything below debug takes the debug route, and
// DPanic and above take the error route.
type Core struct {
	logger *logger.Logger
}

// NewCore returns a Core writing to the process's standard streams.
func NewCore(cfg logger.Config) *Core {
	return NewCoreFor(logger.New(cfg))
}

// NewCoreFor returns a Core dispatching into an existing logger, for
// hosts that already built one (or tests with injected sinks).
func NewCoreFor(l *logger.Logger) *Core {
	return &Core{logger: l}
}

func (c *Core) Enabled(lvl zapcore.Level) bool {
	return c.logger.Enabled(levelFromZap(lvl))
}

// With returns c unchanged; fields are not part of the line format.
func (c *Core) With([]zapcore.Field) zapcore.Core { return c }

func (c *Core) Check(ent zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if c.Enabled(ent.Level) {
		return ce.AddCore(ent, c)
	}
	return ce
}

// Write never returns an error: delivery failures are swallowed by the
// logger and surface only on its drop counter.
func (c *Core) Write(ent zapcore.Entry, _ []zapcore.Field) error {
	c.logger.Log(levelFromZap(ent.Level), ent.Message)
	return nil
}

func (c *Core) Sync() error {
	return c.logger.Sync()
}

func levelFromZap(lvl zapcore.Level) logger.Level {
	switch {
	case lvl <= zapcore.DebugLevel:
		return logger.LevelDebug
	case lvl == zapcore.InfoLevel:
		return logger.LevelInfo
	case lvl == zapcore.WarnLevel:
		return logger.LevelWarn
	default:
		return logger.LevelError
	}
}
