package slog_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/fwojciec/gmdocs"
	"github.com/fwojciec/gmdocs/mock"
	gmslog "github.com/fwojciec/gmdocs/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingManualWriter_WriteManual(t *testing.T) {
	t.Parallel()

	t.Run("logs record counts", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		var written *gmdocs.Manual
		inner := &mock.ManualWriter{
			WriteManualFn: func(ctx context.Context, m *gmdocs.Manual) error {
				written = m
				return nil
			},
		}

		m := gmdocs.NewManual()
		m.Variables["x"] = &gmdocs.Variable{Name: "x"}

		writer := gmslog.NewLoggingManualWriter(inner, logger)
		require.NoError(t, writer.WriteManual(context.Background(), m))

		assert.Same(t, m, written)
		output := buf.String()
		assert.Contains(t, output, "write manual")
		assert.Contains(t, output, "functions=0")
		assert.Contains(t, output, "variables=1")
	})

	t.Run("logs error on failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.ManualWriter{
			WriteManualFn: func(ctx context.Context, m *gmdocs.Manual) error {
				return errors.New("disk full")
			},
		}

		writer := gmslog.NewLoggingManualWriter(inner, logger)
		err := writer.WriteManual(context.Background(), gmdocs.NewManual())

		require.Error(t, err)
		assert.Contains(t, buf.String(), `error="disk full"`)
	})
}
