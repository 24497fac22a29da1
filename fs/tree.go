package fs

import (
	"context"
	iofs "io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/fwojciec/gmdocs"
)

// Ensure TreeSource implements gmdocs.PageSource at compile time.
var _ gmdocs.PageSource = (*TreeSource)(nil)

// TreeSource lists every page under a directory.
type TreeSource struct {
	root string
}

// NewTreeSource creates a TreeSource rooted at root.
func NewTreeSource(root string) *TreeSource {
	return &TreeSource{root: root}
}

// Pages walks the tree and returns all page paths, sorted.
func (s *TreeSource) Pages(ctx context.Context) ([]string, error) {
	var pages []string
	err := filepath.WalkDir(s.root, func(p string, d iofs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if d.Type().IsRegular() && strings.EqualFold(filepath.Ext(p), PageExt) {
			pages = append(pages, p)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(pages)
	return pages, nil
}
