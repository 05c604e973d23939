package console

import (
	"log/slog"
	"sync"
)

// Sink is a write-only diagnostic channel. Log never fails and never blocks
// the caller on delivery.
type Sink interface {
	Log(message string)
}

// Discard drops every entry.
var Discard Sink = discard{}

type discard struct{}

func (discard) Log(string) {}

// SlogSink forwards entries to a slog.Logger at Info level.
type SlogSink struct {
	logger *slog.Logger
}

var _ Sink = (*SlogSink)(nil)

func NewSlogSink(logger *slog.Logger) *SlogSink {
	if logger == nil {
		logger = slog.Default()
	}
	return &SlogSink{logger: logger.With("source", "console")}
}

func (s *SlogSink) Log(message string) {
	s.logger.Info(message)
}

// Recorder keeps entries in arrival order. Used by tests.
type Recorder struct {
	mu      sync.Mutex
	entries []string
}

var _ Sink = (*Recorder)(nil)

func (r *Recorder) Log(message string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, message)
}

// Entries returns a copy of everything logged so far.
func (r *Recorder) Entries() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.entries))
	copy(out, r.entries)
	return out
}
