package mock

import (
	"context"

	"github.com/fwojciec/gmdocs"
)

var _ gmdocs.PageParser = (*PageParser)(nil)

// PageParser is a mock implementation of gmdocs.PageParser.
type PageParser struct {
	ParsePageFn func(ctx context.Context, path string) (*gmdocs.PageResult, error)
}

func (p *PageParser) ParsePage(ctx context.Context, path string) (*gmdocs.PageResult, error) {
	return p.ParsePageFn(ctx, path)
}
