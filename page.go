package gmdocs

import "context"

// Section names a semantic block of a manual page.
type Section string

// Section constants.
const (
	SectionName    Section = "name"
	SectionSyntax  Section = "syntax"
	SectionReturns Section = "returns"
	SectionExample Section = "example"
)

// PageResult holds everything extracted from one page.
//
// At most one of Function and Variable is set. Both are nil when any
// section in Missing could not be located. Constants are collected
// independently of the other sections.
type PageResult struct {
	Path      string
	Link      string
	Function  *Function
	Variable  *Variable
	Constants []*Constant
	Missing   []Section
}

// OK reports whether the page produced a function or variable.
func (r *PageResult) OK() bool {
	return r.Function != nil || r.Variable != nil
}

// PageParser extracts records from a single manual page.
type PageParser interface {
	// ParsePage reads and parses the page at path. A missing section is
	// not an error: it is reported in PageResult.Missing. An error is
	// returned only when the page cannot be read or parsed at all.
	ParsePage(ctx context.Context, path string) (*PageResult, error)
}

// PageSource lists the pages to extract.
type PageSource interface {
	// Pages returns absolute page paths in a stable, sorted order.
	Pages(ctx context.Context) ([]string, error)
}

// ManualWriter persists a finished manual. The write is all or nothing.
type ManualWriter interface {
	WriteManual(ctx context.Context, m *Manual) error
}
