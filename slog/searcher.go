package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/zinebox"
)

// Ensure LoggingSearcher implements zinebox.Searcher.
var _ zinebox.Searcher = (*LoggingSearcher)(nil)

// LoggingSearcher wraps a Searcher with operation logging.
type LoggingSearcher struct {
	next   zinebox.Searcher
	logger *slog.Logger
}

// NewLoggingSearcher creates a new LoggingSearcher.
func NewLoggingSearcher(next zinebox.Searcher, logger *slog.Logger) *LoggingSearcher {
	return &LoggingSearcher{next: next, logger: logger}
}

// Search delegates to the wrapped searcher and logs the operation.
func (s *LoggingSearcher) Search(ctx context.Context, keyword string) (found []string, err error) {
	defer func(begin time.Time) {
		s.logger.Info("search",
			"keyword", keyword,
			"hits", len(found),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Search(ctx, keyword)
}
