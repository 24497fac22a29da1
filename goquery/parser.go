// Package goquery extracts manual records from HTML pages using goquery
// and the golang.org/x/net/html node tree.
package goquery

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/gmdocs"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Ensure PageParser implements gmdocs.PageParser at compile time.
var _ gmdocs.PageParser = (*PageParser)(nil)

// PageParser extracts the function or variable described by a manual
// page, plus every constant listed in its tables.
type PageParser struct {
	linker *gmdocs.Linker
	logger *slog.Logger
}

// Option configures a PageParser.
type Option func(*PageParser)

// WithLogger sets the logger that receives markup anomalies.
func WithLogger(logger *slog.Logger) Option {
	return func(p *PageParser) {
		p.logger = logger
	}
}

// NewPageParser creates a PageParser that builds links with linker.
func NewPageParser(linker *gmdocs.Linker, opts ...Option) *PageParser {
	p := &PageParser{
		linker: linker,
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// ParsePage reads the page at path and extracts its records.
func (p *PageParser) ParsePage(ctx context.Context, path string) (*gmdocs.PageResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return p.Parse(path, bytes.NewReader(data))
}

// Parse extracts records from page content read from r. The path is
// used to build links and resolve relative destinations.
func (p *PageParser) Parse(path string, r io.Reader) (*gmdocs.PageResult, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, gmdocs.Errorf(gmdocs.EINVALID, "failed to parse HTML: %v", err)
	}

	if !filepath.IsAbs(path) {
		path = filepath.Join(p.linker.Root(), path)
	}
	f := NewFlattener(p.linker, filepath.Dir(path), p.logger.With("page", path))

	result := &gmdocs.PageResult{
		Path: path,
		Link: p.linker.PageLink(path),
	}

	doc.Find("table").Each(func(_ int, sel *goquery.Selection) {
		result.Constants = append(result.Constants, f.constants(sel.Get(0), result.Link)...)
	})

	name, description, ok := f.nameAndDescription(doc)
	if !ok {
		result.Missing = append(result.Missing, gmdocs.SectionName)
	}

	headings := doc.Find("h4").Nodes

	var (
		args     gmdocs.Arguments
		callable bool
	)
	if i, found := f.locate(headings, 0, keywordSyntax); found {
		args, callable, found = f.syntax(headings[i])
		if !found {
			result.Missing = append(result.Missing, gmdocs.SectionSyntax)
		}
	} else {
		result.Missing = append(result.Missing, gmdocs.SectionSyntax)
	}

	var returns string
	if i, found := f.locate(headings, 0, keywordReturns); found {
		returns, found = f.body(headings[i])
		if !found {
			result.Missing = append(result.Missing, gmdocs.SectionReturns)
		}
	} else {
		result.Missing = append(result.Missing, gmdocs.SectionReturns)
	}

	var example string
	if i, found := f.locate(headings, 0, keywordExample); found {
		example, found = f.example(headings[i])
		if !found {
			result.Missing = append(result.Missing, gmdocs.SectionExample)
		}
	} else {
		result.Missing = append(result.Missing, gmdocs.SectionExample)
	}

	if len(result.Missing) > 0 {
		return result, nil
	}

	if !callable {
		result.Variable = &gmdocs.Variable{
			Name:        name,
			Example:     example,
			Description: description,
			Returns:     returns,
			Link:        result.Link,
		}
		return result, nil
	}

	parameters := args.Parameters
	if parameters == nil {
		parameters = []gmdocs.Parameter{}
	}
	result.Function = &gmdocs.Function{
		Name:               name,
		Parameters:         parameters,
		RequiredParameters: args.RequiredParameters,
		IsVariadic:         args.Variadic,
		Example:            example,
		Description:        description,
		Returns:            returns,
		Link:               result.Link,
	}
	return result, nil
}

// nameAndDescription reads the name from the text of the first h1 and
// the description from the content that follows it.
func (f *Flattener) nameAndDescription(doc *goquery.Document) (name, description string, ok bool) {
	title := doc.Find("h1").First()
	if title.Length() == 0 {
		return "", "", false
	}
	h1 := title.Get(0)
	if h1.FirstChild == nil || h1.FirstChild.Type != html.TextNode {
		return "", "", false
	}
	name = strings.TrimSpace(h1.FirstChild.Data)
	if name == "" {
		return "", "", false
	}

	description, ok = f.body(h1)
	return name, description, ok
}

// syntax parses the signature following a syntax heading and, for
// callables, the parameter table after it. callable is false when the
// signature has no parameter list; ok is false when the heading is not
// followed by any content.
func (f *Flattener) syntax(heading *html.Node) (args gmdocs.Arguments, callable, ok bool) {
	siblings := siblingsAfter(heading)
	i, ok := nextContent(siblings, 0)
	if !ok {
		return gmdocs.Arguments{}, false, false
	}

	sig := gmdocs.ParseSignature(f.Markup(siblings[i]))
	if !sig.Callable {
		return gmdocs.Arguments{}, false, true
	}

	var rows []gmdocs.Parameter
	if j, found := nextElement(siblings, i+1, atom.Table); found {
		rows = f.parameterRows(siblings[j])
	}
	return gmdocs.ReconcileParameters(sig, rows), true, true
}
