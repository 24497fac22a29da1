package mock

import (
	"context"

	"github.com/fwojciec/gmdocs"
)

var _ gmdocs.PageSource = (*PageSource)(nil)

// PageSource is a mock implementation of gmdocs.PageSource.
type PageSource struct {
	PagesFn func(ctx context.Context) ([]string, error)
}

func (s *PageSource) Pages(ctx context.Context) ([]string, error) {
	return s.PagesFn(ctx)
}
