package goquery

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Heading keywords that open the semantic sections of a page.
const (
	keywordSyntax  = "syntax"
	keywordReturns = "returns"
	keywordExample = "example"
)

// locate scans headings from cursor for the first one whose rendered
// text, lowercased, contains keyword. It returns the heading's index.
func (f *Flattener) locate(headings []*html.Node, cursor int, keyword string) (int, bool) {
	for i := max(cursor, 0); i < len(headings); i++ {
		if strings.Contains(strings.ToLower(f.Contents(headings[i])), keyword) {
			return i, true
		}
	}
	return -1, false
}

// siblingsAfter lists the nodes following n under the same parent,
// skipping comments.
func siblingsAfter(n *html.Node) []*html.Node {
	var out []*html.Node
	for s := n.NextSibling; s != nil; s = s.NextSibling {
		if s.Type == html.CommentNode {
			continue
		}
		out = append(out, s)
	}
	return out
}

// nextContent returns the index of the first sibling at or after cursor
// that is not whitespace.
func nextContent(siblings []*html.Node, cursor int) (int, bool) {
	for i := max(cursor, 0); i < len(siblings); i++ {
		if !isWhitespace(siblings[i]) {
			return i, true
		}
	}
	return -1, false
}

// nextElement returns the index of the first element at or after cursor
// with the given tag. Scanning stops at the next heading.
func nextElement(siblings []*html.Node, cursor int, tag atom.Atom) (int, bool) {
	for i := max(cursor, 0); i < len(siblings); i++ {
		s := siblings[i]
		if s.Type != html.ElementNode {
			continue
		}
		if s.DataAtom == tag {
			return i, true
		}
		if isHeading(s) {
			break
		}
	}
	return -1, false
}

func isHeading(n *html.Node) bool {
	if n.Type != html.ElementNode {
		return false
	}
	switch n.DataAtom {
	case atom.H1, atom.H2, atom.H3, atom.H4, atom.H5, atom.H6:
		return true
	}
	return false
}

// body renders the first non-whitespace content following heading.
func (f *Flattener) body(heading *html.Node) (string, bool) {
	siblings := siblingsAfter(heading)
	i, ok := nextContent(siblings, 0)
	if !ok {
		return "", false
	}
	return strings.TrimSpace(f.Markup(siblings[i])), true
}

// example renders the body of an example section. Unlike other sections
// an example keeps collecting following siblings: blank text becomes a
// line break, other text is trimmed, and collection stops at a heading,
// an element outside the flattening table, or an element that renders
// empty.
func (f *Flattener) example(heading *html.Node) (string, bool) {
	siblings := siblingsAfter(heading)
	i, ok := nextContent(siblings, 0)
	if !ok {
		return "", false
	}

	var b strings.Builder
	b.WriteString(f.Markup(siblings[i]))

	for _, s := range siblings[i+1:] {
		if s.Type == html.TextNode {
			if text := strings.TrimSpace(s.Data); text == "" {
				b.WriteByte('\n')
			} else {
				b.WriteString(text)
			}
			continue
		}
		if s.Type != html.ElementNode || isHeading(s) || !recognized(s) {
			break
		}
		text := f.Markup(s)
		if strings.TrimSpace(text) == "" {
			break
		}
		b.WriteString(text)
	}

	return strings.TrimSpace(b.String()), true
}
