// internal/event/log.go
package event

import (
	"log/slog"
	"slices"
)

// Log is an append-only in-memory record of every event it receives.
type Log struct {
	events []Event
}

func NewLog() *Log {
	return &Log{}
}

func (l *Log) OnEvent(e Event) {
	l.events = append(l.events, e)
}

// All returns a copy of the recorded events in arrival order.
func (l *Log) All() []Event {
	return slices.Clone(l.events)
}

// Drain returns the recorded events and empties the log.
func (l *Log) Drain() []Event {
	out := l.events
	l.events = nil
	return out
}

func (l *Log) Len() int {
	return len(l.events)
}

// SlogListener пишет каждое событие в лог на уровне Debug.
type SlogListener struct {
	Logger *slog.Logger
}

func (s SlogListener) OnEvent(e Event) {
	logger := s.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger.Debug("event", "type", string(e.Type()), "payload", e)
}
