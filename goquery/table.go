package goquery

import (
	"strings"

	"github.com/fwojciec/gmdocs"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// tableRows returns the rows of table in order, without descending into
// nested tables.
func tableRows(table *html.Node) []*html.Node {
	var rows []*html.Node
	for c := table.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode {
			continue
		}
		switch c.DataAtom {
		case atom.Tr:
			rows = append(rows, c)
		case atom.Thead, atom.Tbody, atom.Tfoot:
			for r := c.FirstChild; r != nil; r = r.NextSibling {
				if r.Type == html.ElementNode && r.DataAtom == atom.Tr {
					rows = append(rows, r)
				}
			}
		}
	}
	return rows
}

// rowCells returns the th and td children of a row.
func rowCells(row *html.Node) []*html.Node {
	var cells []*html.Node
	for c := row.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && (c.DataAtom == atom.Td || c.DataAtom == atom.Th) {
			cells = append(cells, c)
		}
	}
	return cells
}

// isDataRow reports whether every element child of row is a td.
func isDataRow(row *html.Node) bool {
	has := false
	for c := row.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode {
			continue
		}
		if c.DataAtom != atom.Td {
			return false
		}
		has = true
	}
	return has
}

func (f *Flattener) cellText(cell *html.Node) string {
	return strings.TrimSpace(f.Contents(cell))
}

// headerIndex returns the index of the first header cell whose text,
// lowercased, contains keyword.
func (f *Flattener) headerIndex(headers []*html.Node, keyword string) int {
	for i, h := range headers {
		if strings.Contains(strings.ToLower(f.cellText(h)), keyword) {
			return i
		}
	}
	return -1
}

// parameterRows extracts the name and description cells of a parameter
// table. Tables without an "argument" header are unrelated and yield no
// rows.
func (f *Flattener) parameterRows(table *html.Node) []gmdocs.Parameter {
	rows := tableRows(table)
	if len(rows) == 0 || f.headerIndex(rowCells(rows[0]), "argument") < 0 {
		return nil
	}

	var params []gmdocs.Parameter
	for _, row := range rows[1:] {
		if !isDataRow(row) {
			continue
		}
		cells := rowCells(row)
		if len(cells) < 2 {
			continue
		}
		params = append(params, gmdocs.Parameter{
			Parameter:   f.cellText(cells[0]),
			Description: f.cellText(cells[1]),
		})
	}
	return params
}

// column is one entry of a constant table's column scheme.
type column struct {
	kind   columnKind
	header string
}

type columnKind int

const (
	columnOther columnKind = iota
	columnConstant
	columnDescription
)

// constants extracts every constant listed in table. Tables without a
// "constant" header cell are skipped.
func (f *Flattener) constants(table *html.Node, link string) []*gmdocs.Constant {
	rows := tableRows(table)
	if len(rows) == 0 {
		return nil
	}
	headers := rowCells(rows[0])
	nameIdx := f.headerIndex(headers, "constant")
	if nameIdx < 0 {
		return nil
	}

	scheme := make([]column, len(headers))
	for i, h := range headers {
		text := f.cellText(h)
		switch {
		case i == nameIdx:
			scheme[i] = column{kind: columnConstant}
		case strings.Contains(strings.ToLower(text), "description"):
			scheme[i] = column{kind: columnDescription}
		default:
			scheme[i] = column{kind: columnOther, header: text}
		}
	}

	var out []*gmdocs.Constant
	for _, row := range rows[1:] {
		c := &gmdocs.Constant{Link: link}
		for i, cell := range rowCells(row) {
			if i >= len(scheme) {
				break
			}
			text := f.cellText(cell)
			switch scheme[i].kind {
			case columnConstant:
				c.Name = text
			case columnDescription:
				c.Description = text
			default:
				if c.SecondaryDescriptors == nil {
					c.SecondaryDescriptors = make(map[string]string)
				}
				c.SecondaryDescriptors[scheme[i].header] = text
			}
		}
		if gmdocs.CleanConstant(c) {
			out = append(out, c)
		}
	}
	return out
}
