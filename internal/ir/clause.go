package ir

// AttributeInline is the reserved clause attribute that selects inline
// packaging. It carries a boolean and never filters.
const AttributeInline = "inline"

// Attribute is one key=value pair of a clause, in written order.
type Attribute struct {
	Key   string `json:"key" yaml:"key"`
	Value string `json:"value" yaml:"value"`
}

// Clause is one rule of an Embed-Dependency directive: a primary pattern
// matched against the artifact identifier plus attributes that narrow it.
type Clause struct {
	Pattern    string      `json:"pattern" yaml:"pattern"`       // "commons-*", "!junit"
	Attributes []Attribute `json:"attributes" yaml:"attributes"` // applied in order
}

// Lookup returns the value of the first attribute named key.
func (c Clause) Lookup(key string) (string, bool) {
	for _, attr := range c.Attributes {
		if attr.Key == key {
			return attr.Value, true
		}
	}
	return "", false
}

// Directive is the ordered clause list of an Embed-Dependency header.
type Directive []Clause
