// Package slog provides logging decorators for gmdocs services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/gmdocs"
)

// Ensure LoggingPageParser implements gmdocs.PageParser.
var _ gmdocs.PageParser = (*LoggingPageParser)(nil)

// LoggingPageParser wraps a PageParser with per-page logging.
type LoggingPageParser struct {
	next   gmdocs.PageParser
	logger *slog.Logger
}

// NewLoggingPageParser creates a new LoggingPageParser.
func NewLoggingPageParser(next gmdocs.PageParser, logger *slog.Logger) *LoggingPageParser {
	return &LoggingPageParser{next: next, logger: logger}
}

// ParsePage delegates to the wrapped parser and logs the outcome.
func (p *LoggingPageParser) ParsePage(ctx context.Context, path string) (result *gmdocs.PageResult, err error) {
	defer func(begin time.Time) {
		if err != nil {
			p.logger.Error("parse page",
				"page", path,
				"duration", time.Since(begin),
				"error", err,
			)
			return
		}
		attrs := []any{
			"page", path,
			"constants", len(result.Constants),
			"duration", time.Since(begin),
		}
		switch {
		case result.Function != nil:
			attrs = append(attrs, "function", result.Function.Name)
		case result.Variable != nil:
			attrs = append(attrs, "variable", result.Variable.Name)
		}
		if len(result.Missing) > 0 {
			attrs = append(attrs, "missing", result.Missing)
		}
		p.logger.Debug("parse page", attrs...)
	}(time.Now())

	return p.next.ParsePage(ctx, path)
}
