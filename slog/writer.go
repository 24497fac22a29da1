package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/gmdocs"
)

// Ensure LoggingManualWriter implements gmdocs.ManualWriter.
var _ gmdocs.ManualWriter = (*LoggingManualWriter)(nil)

// LoggingManualWriter wraps a ManualWriter with logging.
type LoggingManualWriter struct {
	next   gmdocs.ManualWriter
	logger *slog.Logger
}

// NewLoggingManualWriter creates a new LoggingManualWriter.
func NewLoggingManualWriter(next gmdocs.ManualWriter, logger *slog.Logger) *LoggingManualWriter {
	return &LoggingManualWriter{next: next, logger: logger}
}

// WriteManual delegates to the wrapped writer and logs record counts.
func (w *LoggingManualWriter) WriteManual(ctx context.Context, m *gmdocs.Manual) (err error) {
	defer func(begin time.Time) {
		attrs := []any{
			"functions", len(m.Functions),
			"variables", len(m.Variables),
			"constants", len(m.Constants),
			"duration", time.Since(begin),
		}
		if err != nil {
			w.logger.Error("write manual", append(attrs, "error", err)...)
			return
		}
		w.logger.Info("write manual", attrs...)
	}(time.Now())

	return w.next.WriteManual(ctx, m)
}
