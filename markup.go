package gmdocs

import (
	"strings"
)

// StyleKind identifies how a run of text is rendered.
type StyleKind int

// StyleKind constants. Plain through CodeBlock are combinatorial;
// Hyperlink and Tooltip carry a payload and are not.
const (
	Plain StyleKind = iota
	Bold
	Italic
	CodeSnippet
	CodeBlock
	Hyperlink
	Tooltip
)

var styleKindNames = [...]string{
	Plain:       "plain",
	Bold:        "bold",
	Italic:      "italic",
	CodeSnippet: "code-snippet",
	CodeBlock:   "code-block",
	Hyperlink:   "hyperlink",
	Tooltip:     "tooltip",
}

func (k StyleKind) String() string {
	if k < 0 || int(k) >= len(styleKindNames) {
		return "unknown"
	}
	return styleKindNames[k]
}

// Style is a rendering style with optional per-variant data.
// Payload holds the destination of a Hyperlink and the label of a
// Tooltip; it is empty for every other kind.
type Style struct {
	Kind    StyleKind
	Payload string
}

// Predefined payload-free styles.
var (
	PlainStyle       = Style{Kind: Plain}
	BoldStyle        = Style{Kind: Bold}
	ItalicStyle      = Style{Kind: Italic}
	CodeSnippetStyle = Style{Kind: CodeSnippet}
	CodeBlockStyle   = Style{Kind: CodeBlock}
)

// HyperlinkStyle returns a Hyperlink style pointing at dest.
func HyperlinkStyle(dest string) Style {
	return Style{Kind: Hyperlink, Payload: dest}
}

// TooltipStyle returns a Tooltip style with the given label.
func TooltipStyle(label string) Style {
	return Style{Kind: Tooltip, Payload: label}
}

// Combinatorial reports whether adjacent runs of this style can be merged
// without losing information.
func (s Style) Combinatorial() bool {
	switch s.Kind {
	case Hyperlink, Tooltip:
		return false
	default:
		return true
	}
}

// Run is a contiguous span of text rendered in one style.
type Run struct {
	Text  string
	Style Style
}

// Render formats the run as markup text.
func (r Run) Render() string {
	switch r.Style.Kind {
	case Bold:
		return "**" + r.Text + "**"
	case Italic:
		return "*" + r.Text + "*"
	case CodeSnippet:
		return "`" + r.Text + "`"
	case CodeBlock:
		return "```\n" + strings.TrimSpace(r.Text) + "\n```"
	case Hyperlink:
		return "[" + r.Text + "](" + r.Style.Payload + ")"
	case Tooltip:
		return r.Text + " (" + r.Style.Payload + ")"
	default:
		return r.Text
	}
}

// Simplify merges adjacent runs that share a combinatorial style.
// Non-combinatorial runs are never merged, even with an identical
// neighbour. The result is a fixed point: simplifying it again returns
// an equal sequence.
func Simplify(runs []Run) []Run {
	if len(runs) == 0 {
		return nil
	}

	out := make([]Run, 0, len(runs))
	acc := runs[0]
	for _, r := range runs[1:] {
		if r.Style == acc.Style && r.Style.Combinatorial() {
			acc.Text += r.Text
			continue
		}
		out = append(out, acc)
		acc = r
	}
	return append(out, acc)
}

// Render concatenates the rendered form of every run.
func Render(runs []Run) string {
	var b strings.Builder
	for _, r := range runs {
		b.WriteString(r.Render())
	}
	return b.String()
}

// Markup simplifies runs and renders the result.
func Markup(runs []Run) string {
	return Render(Simplify(runs))
}
