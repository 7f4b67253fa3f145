package embed

import (
	"slices"
	"strings"

	"github.com/roach88/embedder/internal/ir"
)

// depSet is a set of dependencies keyed by identity.
type depSet map[string]ir.Dependency

func (s depSet) addAll(deps []ir.Dependency) {
	for _, d := range deps {
		s[d.Key()] = d
	}
}

// sorted returns the members ordered by (groupId, artifactId, version).
func (s depSet) sorted() []ir.Dependency {
	out := make([]ir.Dependency, 0, len(s))
	for _, d := range s {
		out = append(out, d)
	}
	slices.SortFunc(out, func(a, b ir.Dependency) int {
		switch {
		case a.Less(b):
			return -1
		case b.Less(a):
			return 1
		default:
			return 0
		}
	})
	return out
}

// Classification holds the outcome of Resolve.
type Classification struct {
	inlined  depSet
	embedded depSet
}

func newClassification() *Classification {
	return &Classification{inlined: depSet{}, embedded: depSet{}}
}

// Inlined returns the inlined dependencies in coordinate order.
func (c *Classification) Inlined() []ir.Dependency {
	return c.inlined.sorted()
}

// Embedded returns the embedded dependencies in coordinate order.
func (c *Classification) Embedded() []ir.Dependency {
	return c.embedded.sorted()
}

// IsInlined reports whether dep was classified as inlined.
func (c *Classification) IsInlined(dep ir.Dependency) bool {
	_, ok := c.inlined[dep.Key()]
	return ok
}

// IsEmbedded reports whether dep was classified as embedded.
func (c *Classification) IsEmbedded(dep ir.Dependency) bool {
	_, ok := c.embedded[dep.Key()]
	return ok
}

// Resolve classifies deps according to directive.
//
// Each clause starts from a fresh copy of deps, filters on the artifact
// identifier with its primary pattern, then narrows by every attribute in
// order. Survivors join the inlined set when the clause says inline=true,
// the embedded set otherwise. Finally inlined members are removed from the
// embedded set.
//
// On a ConfigurationError, Resolve returns the classification committed by
// the clauses before the failing one, without the inline precedence pass.
// The failing clause contributes nothing.
func Resolve(deps []ir.Dependency, directive ir.Directive) (*Classification, error) {
	c := newClassification()

	for _, clause := range directive {
		inline, survivors, err := resolveClause(deps, clause)
		if err != nil {
			return c, err
		}
		if inline {
			c.inlined.addAll(survivors)
		} else {
			c.embedded.addAll(survivors)
		}
	}

	for key := range c.inlined {
		delete(c.embedded, key)
	}

	return c, nil
}

// resolveClause runs one clause's filter chain over a fresh copy of deps.
func resolveClause(deps []ir.Dependency, clause ir.Clause) (bool, []ir.Dependency, error) {
	candidates := slices.Clone(deps)

	primary, err := newFilter(clause.Pattern, attributes[AttrArtifactID])
	if err != nil {
		return false, nil, NewInvalidPatternError(clause.Pattern, "", err)
	}
	candidates = primary.apply(candidates)

	inline := false
	for _, attr := range clause.Attributes {
		if attr.Key == AttrInline {
			inline = strings.EqualFold(strings.TrimSpace(attr.Value), "true")
			continue
		}

		def, ok := attributes[attr.Key]
		if !ok {
			return false, nil, NewUnknownAttributeError(clause.Pattern, attr.Key)
		}

		f, err := newFilter(attr.Value, def)
		if err != nil {
			return false, nil, NewInvalidPatternError(clause.Pattern, attr.Key, err)
		}
		candidates = f.apply(candidates)
	}

	return inline, candidates, nil
}
