package gmdocs

import (
	"net/url"
	"path/filepath"
	"strings"
)

// DefaultBaseURL is where the online copy of the manual is hosted.
const DefaultBaseURL = "https://manual.yoyogames.com/"

// Linker maps files under the manual root to canonical external URLs.
// It is immutable and safe to share between goroutines.
type Linker struct {
	root string
	base *url.URL
}

// NewLinker returns a Linker for the manual rooted at root.
func NewLinker(root, baseURL string) (*Linker, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, Errorf(EINVALID, "invalid base URL: %v", err)
	}
	if !base.IsAbs() {
		return nil, Errorf(EINVALID, "base URL %q must be absolute", baseURL)
	}
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, Errorf(EINVALID, "invalid root %q: %v", root, err)
	}
	return &Linker{root: abs, base: base}, nil
}

// Root returns the absolute manual root.
func (l *Linker) Root() string {
	return l.root
}

// PageLink returns the canonical URL of the page at path. Paths outside
// the root are returned as slash paths unchanged.
func (l *Linker) PageLink(path string) string {
	rel, ok := l.rel(path)
	if !ok {
		return filepath.ToSlash(path)
	}
	return l.join(rel, "", "")
}

// Resolve maps a hyperlink destination found in a page living in
// pageDir. Absolute URLs, fragment-only references and destinations
// that leave the root are returned as written.
func (l *Linker) Resolve(pageDir, dest string) string {
	if dest == "" {
		return ""
	}
	u, err := url.Parse(dest)
	if err != nil || u.Scheme != "" || u.Host != "" || u.Path == "" {
		return dest
	}

	var target string
	if strings.HasPrefix(u.Path, "/") {
		target = filepath.Join(l.root, filepath.FromSlash(u.Path))
	} else {
		target = filepath.Join(pageDir, filepath.FromSlash(u.Path))
	}

	rel, ok := l.rel(target)
	if !ok {
		return dest
	}
	return l.join(rel, u.RawQuery, u.Fragment)
}

func (l *Linker) rel(path string) (string, bool) {
	if !filepath.IsAbs(path) {
		path = filepath.Join(l.root, path)
	}
	rel, err := filepath.Rel(l.root, path)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", false
	}
	return filepath.ToSlash(rel), true
}

func (l *Linker) join(rel, query, fragment string) string {
	u := l.base.JoinPath(rel)
	u.RawQuery = query
	u.Fragment = fragment
	return u.String()
}
