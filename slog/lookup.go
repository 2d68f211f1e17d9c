package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/docsearch"
	"github.com/google/uuid"
)

var _ docsearch.Lookup = (*LoggingLookup)(nil)

// LoggingLookup wraps a Lookup with invocation logging. Every call is
// logged under a fresh invocation ID.
type LoggingLookup struct {
	next    docsearch.Lookup
	command string
	logger  *slog.Logger
}

// NewLoggingLookup creates a new LoggingLookup for the named command.
func NewLoggingLookup(next docsearch.Lookup, command string, logger *slog.Logger) *LoggingLookup {
	return &LoggingLookup{next: next, command: command, logger: logger}
}

// Lookup delegates to the wrapped lookup and logs the command, the query
// and the outcome.
func (l *LoggingLookup) Lookup(ctx context.Context, query string) (e *docsearch.Embed, err error) {
	invocation := uuid.NewString()
	defer func(begin time.Time) {
		l.logger.InfoContext(ctx, "lookup",
			"invocation", invocation,
			"command", l.command,
			"query", query,
			"fields", fieldCount(e),
			"code", docsearch.ErrorCode(err),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return l.next.Lookup(ctx, query)
}

func fieldCount(e *docsearch.Embed) int {
	if e == nil {
		return 0
	}
	return len(e.Fields)
}
