package simplestrings

import (
	"context"
	"log/slog"
)

// NoopEventSink is a no-operation implementation of EventSink
type NoopEventSink struct{}

// NewNoopEventSink creates a new no-operation event sink
func NewNoopEventSink() EventSink {
	return &NoopEventSink{}
}

// RecordCreated does nothing and returns nil
func (n *NoopEventSink) RecordCreated(ctx context.Context, record *StringRecord) error {
	return nil
}

// RecordDeleted does nothing and returns nil
func (n *NoopEventSink) RecordDeleted(ctx context.Context, id string) error {
	return nil
}

// LoggingEventSink is an event sink that logs events but takes no other action
type LoggingEventSink struct {
	logger *slog.Logger
}

// NewLoggingEventSink creates a new logging event sink. A nil logger uses slog.Default().
func NewLoggingEventSink(logger *slog.Logger) EventSink {
	if logger == nil {
		logger = slog.Default()
	}
	return &LoggingEventSink{logger: logger}
}

// RecordCreated logs the creation event
func (l *LoggingEventSink) RecordCreated(ctx context.Context, record *StringRecord) error {
	l.logger.InfoContext(ctx, "String created",
		"id", record.ID,
		"length", record.Properties.Length,
		"is_palindrome", record.Properties.IsPalindrome,
	)
	return nil
}

// RecordDeleted logs the deletion event
func (l *LoggingEventSink) RecordDeleted(ctx context.Context, id string) error {
	l.logger.InfoContext(ctx, "String deleted", "id", id)
	return nil
}
