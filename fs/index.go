// Package fs provides file-based page discovery and manual output.
package fs

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"
	"unicode"

	"github.com/fwojciec/gmdocs"
)

// DefaultIndexFile is the keyword index shipped at the manual root.
const DefaultIndexFile = "helpdocs_keywords.json"

// ReferenceMarker is the path segment every reference page lives under.
const ReferenceMarker = "GameMaker_Language/GML_Reference"

// PageExt is the extension of manual pages.
const PageExt = ".htm"

// Ensure IndexSource implements gmdocs.PageSource at compile time.
var _ gmdocs.PageSource = (*IndexSource)(nil)

// IndexSource lists reference pages named by the manual's keyword index.
type IndexSource struct {
	root  string
	index string
}

// NewIndexSource creates an IndexSource for the manual at root. The index
// path is relative to root.
func NewIndexSource(root, index string) *IndexSource {
	if index == "" {
		index = DefaultIndexFile
	}
	return &IndexSource{root: root, index: index}
}

// Pages reads the index and returns the filtered page paths.
func (s *IndexSource) Pages(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(filepath.Join(s.root, s.index))
	if errors.Is(err, os.ErrNotExist) {
		return nil, gmdocs.Errorf(gmdocs.ENOTFOUND, "keyword index %q not found", s.index)
	}
	if err != nil {
		return nil, err
	}

	var entries map[string]string
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, gmdocs.Errorf(gmdocs.EINVALID, "invalid keyword index %q: %v", s.index, err)
	}

	return FilterIndex(s.root, entries), nil
}

// FilterIndex turns keyword index entries into sorted, unique page paths.
// An entry is dropped when its keyword or file name contains an
// uppercase letter, or when its path is outside the reference section.
// Surviving paths get the page extension and are joined to root.
func FilterIndex(root string, entries map[string]string) []string {
	seen := make(map[string]struct{})
	for keyword, rel := range entries {
		rel = filepath.ToSlash(rel)
		if hasUpper(keyword) || hasUpper(path.Base(rel)) {
			continue
		}
		if !strings.Contains(rel, ReferenceMarker) {
			continue
		}
		rel = strings.TrimSuffix(rel, path.Ext(rel)) + PageExt
		seen[filepath.Join(root, filepath.FromSlash(rel))] = struct{}{}
	}

	pages := make([]string, 0, len(seen))
	for p := range seen {
		pages = append(pages, p)
	}
	sort.Strings(pages)
	return pages
}

func hasUpper(s string) bool {
	return strings.IndexFunc(s, unicode.IsUpper) >= 0
}
