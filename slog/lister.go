// Package slog provides logging decorators for the core interfaces.
// Each wrapper delegates to an inner implementation and records the
// operation, its outcome, and its duration via log/slog.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/zinebox"
)

// Ensure LoggingLister implements zinebox.LinkLister.
var _ zinebox.LinkLister = (*LoggingLister)(nil)

// LoggingLister wraps a LinkLister with operation logging.
type LoggingLister struct {
	next   zinebox.LinkLister
	logger *slog.Logger
}

// NewLoggingLister creates a new LoggingLister.
func NewLoggingLister(next zinebox.LinkLister, logger *slog.Logger) *LoggingLister {
	return &LoggingLister{next: next, logger: logger}
}

// ListLinks delegates to the wrapped lister and logs the operation.
func (l *LoggingLister) ListLinks(ctx context.Context, baseURL string) (candidates []zinebox.Candidate, err error) {
	defer func(begin time.Time) {
		l.logger.Info("link discovery",
			"url", baseURL,
			"count", len(candidates),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return l.next.ListLinks(ctx, baseURL)
}
