package goquery

import (
	"log/slog"
	"strings"

	"github.com/fwojciec/gmdocs"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Flattener reduces an HTML subtree to styled runs. A Flattener is bound
// to one page: relative hyperlink destinations are resolved against the
// page's directory through the read-only Linker.
type Flattener struct {
	linker  *gmdocs.Linker
	pageDir string
	logger  *slog.Logger
}

// NewFlattener creates a Flattener for a page living in pageDir.
// A nil logger discards anomaly reports.
func NewFlattener(linker *gmdocs.Linker, pageDir string, logger *slog.Logger) *Flattener {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Flattener{linker: linker, pageDir: pageDir, logger: logger}
}

// Flatten returns the runs of n. Every direct child becomes one run in
// n's style; element children are rendered to markup first.
func (f *Flattener) Flatten(n *html.Node) []gmdocs.Run {
	switch n.Type {
	case html.TextNode:
		return []gmdocs.Run{{Text: n.Data, Style: gmdocs.PlainStyle}}
	case html.ElementNode:
	default:
		return nil
	}

	style := f.style(n)
	runs := f.children(n, style)

	if len(runs) == 0 && style.Kind == gmdocs.Hyperlink {
		if alt, ok := attr(n, "alt"); ok {
			runs = append(runs, gmdocs.Run{
				Text:  "[" + alt + "](" + style.Payload + ")",
				Style: gmdocs.PlainStyle,
			})
		} else if n.DataAtom == atom.Img {
			f.logger.Debug("image without alt text", "src", style.Payload)
		}
	}
	return runs
}

// Markup flattens n and renders the simplified runs.
func (f *Flattener) Markup(n *html.Node) string {
	return gmdocs.Markup(f.Flatten(n))
}

// Contents renders the children of n as plain runs, ignoring n's own
// tag. Table cells and headings go through here.
func (f *Flattener) Contents(n *html.Node) string {
	return gmdocs.Markup(f.children(n, gmdocs.PlainStyle))
}

func (f *Flattener) children(n *html.Node, style gmdocs.Style) []gmdocs.Run {
	var runs []gmdocs.Run
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		switch c.Type {
		case html.TextNode:
			runs = append(runs, gmdocs.Run{Text: c.Data, Style: style})
		case html.ElementNode:
			text := f.Markup(c)
			if text == "" {
				continue
			}
			runs = append(runs, gmdocs.Run{Text: text, Style: style})
		}
	}
	return runs
}

// style resolves the rendering style of an element from its tag and
// attributes.
func (f *Flattener) style(n *html.Node) gmdocs.Style {
	switch n.DataAtom {
	case atom.I, atom.Em:
		return gmdocs.ItalicStyle
	case atom.B, atom.Strong, atom.H4:
		return gmdocs.BoldStyle
	case atom.A:
		if href, ok := attr(n, "href"); ok {
			return gmdocs.HyperlinkStyle(f.linker.Resolve(f.pageDir, href))
		}
		if class, ok := attr(n, "class"); ok && class == "tooltip" {
			return gmdocs.TooltipStyle(class)
		}
		f.logger.Debug("anchor without href or tooltip class")
		return gmdocs.PlainStyle
	case atom.Img:
		if src, ok := attr(n, "src"); ok {
			return gmdocs.HyperlinkStyle(f.linker.Resolve(f.pageDir, src))
		}
		f.logger.Warn("image without src")
		return gmdocs.PlainStyle
	case atom.P:
		if class, _ := attr(n, "class"); class == "code" {
			return gmdocs.CodeBlockStyle
		}
		return gmdocs.PlainStyle
	case atom.Tt:
		return gmdocs.CodeSnippetStyle
	case atom.Td, atom.Br, atom.Span, atom.Font:
		return gmdocs.PlainStyle
	default:
		f.logger.Warn("unrecognized tag", "tag", n.Data)
		return gmdocs.PlainStyle
	}
}

// recognized reports whether n's tag is part of the flattening table.
func recognized(n *html.Node) bool {
	switch n.DataAtom {
	case atom.I, atom.Em, atom.B, atom.Strong, atom.H4, atom.A, atom.Img,
		atom.P, atom.Tt, atom.Td, atom.Br, atom.Span, atom.Font:
		return true
	}
	return false
}

func attr(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

func isWhitespace(n *html.Node) bool {
	return n.Type == html.TextNode && strings.TrimSpace(n.Data) == ""
}
