package gmdocs

import "strings"

// Arity classifies one parameter position.
type Arity int

// Arity constants.
const (
	Required Arity = iota
	Optional
)

func (a Arity) String() string {
	if a == Optional {
		return "optional"
	}
	return "required"
}

// Signature is the result of parsing the syntax line of a page.
type Signature struct {
	// Positions holds the bracket-derived class of every parameter.
	Positions []Arity

	// Variadic is set when a parameter token contains "..".
	Variadic bool

	// Callable is false when the syntax line has no parameter list,
	// which marks the page as describing a variable.
	Callable bool
}

// ParseSignature classifies the parameters of a syntax line such as
// "ds_list_add(id, val1 [, val2, ... max_val]);".
//
// Optionality is tracked as running state across comma separated
// tokens so a bracket opened in one token covers every following token
// until the one that closes it.
func ParseSignature(text string) Signature {
	start := strings.IndexByte(text, '(')
	end := strings.IndexByte(text, ')')
	if start < 0 || end < 0 || end < start {
		return Signature{}
	}

	sig := Signature{Callable: true}
	inner := text[start+1 : end]
	if strings.TrimSpace(inner) == "" {
		return sig
	}

	optional := false
	for _, tok := range strings.Split(inner, ",") {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}
		if strings.HasPrefix(tok, "[") {
			optional = true
		}
		if optional {
			sig.Positions = append(sig.Positions, Optional)
		} else {
			sig.Positions = append(sig.Positions, Required)
		}
		if strings.Contains(tok, "[") {
			optional = true
		}
		if strings.Contains(tok, "]") {
			optional = false
		}
		if strings.Contains(tok, "..") {
			sig.Variadic = true
		}
	}
	return sig
}
