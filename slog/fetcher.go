package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/zinebox"
)

// Ensure LoggingFetcher implements zinebox.Fetcher.
var _ zinebox.Fetcher = (*LoggingFetcher)(nil)

// LoggingFetcher wraps a Fetcher with operation logging.
type LoggingFetcher struct {
	next   zinebox.Fetcher
	logger *slog.Logger
}

// NewLoggingFetcher creates a new LoggingFetcher.
func NewLoggingFetcher(next zinebox.Fetcher, logger *slog.Logger) *LoggingFetcher {
	return &LoggingFetcher{next: next, logger: logger}
}

// Fetch delegates to the wrapped fetcher and logs the operation.
func (f *LoggingFetcher) Fetch(ctx context.Context, url string) (body []byte, err error) {
	defer func(begin time.Time) {
		f.logger.Info("fetch",
			"url", url,
			"bytes", len(body),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return f.next.Fetch(ctx, url)
}
