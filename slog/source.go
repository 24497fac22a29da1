package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/gmdocs"
)

// Ensure LoggingPageSource implements gmdocs.PageSource.
var _ gmdocs.PageSource = (*LoggingPageSource)(nil)

// LoggingPageSource wraps a PageSource with logging. Name labels the
// source in log output.
type LoggingPageSource struct {
	next   gmdocs.PageSource
	name   string
	logger *slog.Logger
}

// NewLoggingPageSource creates a new LoggingPageSource.
func NewLoggingPageSource(next gmdocs.PageSource, name string, logger *slog.Logger) *LoggingPageSource {
	return &LoggingPageSource{next: next, name: name, logger: logger}
}

// Pages delegates to the wrapped source and logs the page count.
func (s *LoggingPageSource) Pages(ctx context.Context) (pages []string, err error) {
	defer func(begin time.Time) {
		if err != nil {
			s.logger.Error("list pages",
				"source", s.name,
				"duration", time.Since(begin),
				"error", err,
			)
			return
		}
		s.logger.Info("list pages",
			"source", s.name,
			"pages", len(pages),
			"duration", time.Since(begin),
		)
	}(time.Now())

	return s.next.Pages(ctx)
}
