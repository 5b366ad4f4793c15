package sparql

// Value is one typed cell of a SPARQL SELECT result table.
type Value struct {
	Type  string `json:"type,omitempty"`
	Value string `json:"value"`
}

// Binding is one result row: query variable name to value.
type Binding map[string]Value

// Str returns the string value bound to name, or "" when the variable is
// absent from this row.
func (b Binding) Str(name string) string {
	return b[name].Value
}

// Has reports whether the variable is bound in this row.
func (b Binding) Has(name string) bool {
	_, ok := b[name]
	return ok
}

type Head struct {
	Vars []string `json:"vars"`
}

type Results struct {
	Bindings []Binding `json:"bindings"`
}

// QueryResult is the standard SPARQL JSON results shape. The zero value is
// a valid empty result, which is what the gateway hands back for any
// non-success or malformed upstream response.
type QueryResult struct {
	Head    Head    `json:"head"`
	Results Results `json:"results"`
}

func (r QueryResult) Bindings() []Binding {
	return r.Results.Bindings
}
