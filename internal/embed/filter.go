package embed

import (
	"github.com/roach88/embedder/internal/instruction"
	"github.com/roach88/embedder/internal/ir"
)

// filter narrows a candidate set by one attribute.
type filter struct {
	inst *instruction.Instruction
	attr attribute
}

// newFilter compiles expr against attr. Compile errors are returned as is;
// callers attach clause context.
func newFilter(expr string, attr attribute) (*filter, error) {
	inst, err := instruction.Compile(expr)
	if err != nil {
		return nil, err
	}
	return &filter{inst: inst, attr: attr}, nil
}

// matches substitutes the default for an absent value before matching.
func (f *filter) matches(dep ir.Dependency) bool {
	value := f.attr.extract(dep)
	if value == "" {
		value = f.attr.fallback
	}
	return f.inst.Accepts(value)
}

// apply keeps the candidates that match, preserving order.
func (f *filter) apply(candidates []ir.Dependency) []ir.Dependency {
	kept := candidates[:0]
	for _, dep := range candidates {
		if f.matches(dep) {
			kept = append(kept, dep)
		}
	}
	return kept
}
