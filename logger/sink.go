package logger

import (
	"io"
	"sync"
)

// flusher is implemented by sinks that buffer output. Every line is
// flushed as it is written so it reaches the debug-link viewer even if
// the process dies right after.
type flusher interface {
	Flush() error
}

// sink serializes writes to a single console stream. The mutex is held
// for the duration of one write plus flush, so concurrent callers may
// interleave whole lines but never parts of them.
type sink struct {
	mu sync.Mutex
	w  io.Writer
}

func (s *sink) writeLine(line []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, err := s.w.Write(line); err != nil {
		return err
	}
	if f, ok := s.w.(flusher); ok {
		return f.Flush()
	}
	return nil
}

func (s *sink) flush() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if f, ok := s.w.(flusher); ok {
		return f.Flush()
	}
	return nil
}
