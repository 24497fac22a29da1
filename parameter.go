package gmdocs

import "strings"

// Arguments is the reconciled parameter list of a callable page.
type Arguments struct {
	Parameters         []Parameter
	Positions          []Arity
	RequiredParameters int
	Variadic           bool
}

// ReconcileParameters combines the bracket-derived classes of sig with
// the per-row hints of a parameter table. A row mentioning "optional"
// upgrades its position to Optional; nothing downgrades a position back
// to Required. Positions without a signature counterpart default to
// Required, and signature positions without a row are dropped.
func ReconcileParameters(sig Signature, rows []Parameter) Arguments {
	args := Arguments{
		Parameters: rows,
		Positions:  make([]Arity, len(rows)),
		Variadic:   sig.Variadic,
	}
	copy(args.Positions, sig.Positions)

	for i, row := range rows {
		if IsOptionalRow(row) {
			args.Positions[i] = Optional
		}
		if IsVariadicRow(row) {
			args.Variadic = true
		}
	}

	args.RequiredParameters = len(rows)
	for i, a := range args.Positions {
		if a == Optional {
			args.RequiredParameters = i
			break
		}
	}
	return args
}

// IsOptionalRow reports whether either cell of a parameter row marks it
// as optional.
func IsOptionalRow(row Parameter) bool {
	return mentionsOptional(row.Parameter) || mentionsOptional(row.Description)
}

func mentionsOptional(s string) bool {
	return strings.Contains(s, "optional") || strings.Contains(s, "Optional")
}

// IsVariadicRow reports whether either cell of a parameter row contains
// an ellipsis that is not merely trailing the text.
func IsVariadicRow(row Parameter) bool {
	return hasInnerEllipsis(row.Parameter) || hasInnerEllipsis(row.Description)
}

// hasInnerEllipsis ignores dots at the very end of s, which authors use
// to trail off a sentence.
func hasInnerEllipsis(s string) bool {
	s = strings.TrimRight(strings.TrimSpace(s), ".")
	return strings.Contains(s, "..")
}
