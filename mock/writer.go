package mock

import (
	"context"

	"github.com/fwojciec/gmdocs"
)

var _ gmdocs.ManualWriter = (*ManualWriter)(nil)

// ManualWriter is a mock implementation of gmdocs.ManualWriter.
type ManualWriter struct {
	WriteManualFn func(ctx context.Context, m *gmdocs.Manual) error
}

func (w *ManualWriter) WriteManual(ctx context.Context, m *gmdocs.Manual) error {
	return w.WriteManualFn(ctx, m)
}
