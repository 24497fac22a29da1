package gmdocs

// Parameter is one row of a function's parameter table, in markup.
type Parameter struct {
	Parameter   string `json:"parameter"`
	Description string `json:"description"`
}

// Function is a built-in function scraped from the manual.
type Function struct {
	Name       string      `json:"name"`
	Parameters []Parameter `json:"parameters"`

	// RequiredParameters is the index of the first optional parameter,
	// or len(Parameters) when none is optional.
	RequiredParameters int `json:"requiredParameters"`

	// IsVariadic is set when the final parameter accepts an unbounded
	// number of trailing arguments, as in ds_list_add(list, 1, 2, 3).
	IsVariadic bool `json:"isVariadic"`

	Example     string `json:"example"`
	Description string `json:"description"`
	Returns     string `json:"returns"`
	Link        string `json:"link"`
}

// Validate returns an error if the function contains invalid fields.
func (f *Function) Validate() error {
	if f.Name == "" {
		return Errorf(EINVALID, "function name required")
	}
	if f.RequiredParameters < 0 || f.RequiredParameters > len(f.Parameters) {
		return Errorf(EINVALID, "function %q requires %d of %d parameters", f.Name, f.RequiredParameters, len(f.Parameters))
	}
	return nil
}

// Variable is a built-in variable scraped from the manual. Returns holds
// the documented type.
type Variable struct {
	Name        string `json:"name"`
	Example     string `json:"example"`
	Description string `json:"description"`
	Returns     string `json:"returns"`
	Link        string `json:"link"`
}

// Validate returns an error if the variable contains invalid fields.
func (v *Variable) Validate() error {
	if v.Name == "" {
		return Errorf(EINVALID, "variable name required")
	}
	return nil
}

// Constant is a constant scraped from a table on any manual page.
//
// Only Name is guaranteed to be non-empty. Extra table columns are kept
// in SecondaryDescriptors keyed by column header; the map is nil when
// there are none, and always nil when Description is empty.
type Constant struct {
	Name                 string            `json:"name"`
	Description          string            `json:"description"`
	Link                 string            `json:"link"`
	SecondaryDescriptors map[string]string `json:"secondaryDescriptors"`
}

// Record categories used when reporting collisions.
const (
	CategoryFunction = "function"
	CategoryVariable = "variable"
	CategoryConstant = "constant"
)

// Collision reports a record that replaced an earlier one with the same
// name in the same category.
type Collision struct {
	Category string
	Name     string
	Previous string // link of the replaced record
	Current  string // link of the record that replaced it
}

// Manual is the whole extracted reference manual.
type Manual struct {
	Functions map[string]*Function `json:"functions"`
	Variables map[string]*Variable `json:"variables"`
	Constants map[string]*Constant `json:"constants"`
}

// NewManual returns an empty Manual.
func NewManual() *Manual {
	return &Manual{
		Functions: make(map[string]*Function),
		Variables: make(map[string]*Variable),
		Constants: make(map[string]*Constant),
	}
}

// Merge folds the records of one page into the manual. Later records
// replace earlier ones with the same name; every replacement is
// returned as a Collision.
func (m *Manual) Merge(page *PageResult) []Collision {
	var collisions []Collision

	if f := page.Function; f != nil {
		if prev, ok := m.Functions[f.Name]; ok {
			collisions = append(collisions, Collision{CategoryFunction, f.Name, prev.Link, f.Link})
		}
		m.Functions[f.Name] = f
	}
	if v := page.Variable; v != nil {
		if prev, ok := m.Variables[v.Name]; ok {
			collisions = append(collisions, Collision{CategoryVariable, v.Name, prev.Link, v.Link})
		}
		m.Variables[v.Name] = v
	}
	for _, c := range page.Constants {
		if prev, ok := m.Constants[c.Name]; ok {
			collisions = append(collisions, Collision{CategoryConstant, c.Name, prev.Link, c.Link})
		}
		m.Constants[c.Name] = c
	}

	return collisions
}
