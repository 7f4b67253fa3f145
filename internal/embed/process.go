package embed

import (
	"strings"

	"github.com/roach88/embedder/internal/header"
	"github.com/roach88/embedder/internal/ir"
)

// Input is everything one embedding pass reads.
type Input struct {
	Dependencies []ir.Dependency
	Directive    ir.Directive
	Settings     Settings

	// Existing header values to extend; empty means none.
	Existing ir.Headers

	// Exists overrides the source file check; nil uses os.Stat.
	Exists func(path string) bool
}

// Result is the outcome of one embedding pass.
type Result struct {
	Inlined    []ir.Dependency `json:"inlined"`
	Embedded   []ir.Dependency `json:"embedded"`
	Placements []ir.Placement  `json:"placements"`
	Headers    ir.Headers      `json:"headers"`
}

// InputFromProperties builds an Input from bundle instructions.
// Returns ok=false when Embed-Dependency is absent or empty, in which case
// no pass should run and the headers stay untouched.
func InputFromProperties(deps []ir.Dependency, props ir.Properties) (Input, bool, error) {
	raw := props.Get(ir.HeaderEmbedDependency)
	if raw == "" {
		return Input{}, false, nil
	}

	directive, err := header.Parse(raw)
	if err != nil {
		return Input{}, false, &ConfigurationError{
			Code:    ErrCodeMalformedHeader,
			Message: err.Error(),
		}
	}

	return Input{
		Dependencies: deps,
		Directive:    directive,
		Settings:     SettingsFromProperties(props),
		Existing:     props.Headers(),
	}, true, nil
}

// SettingsFromProperties reads Embed-Directory, Embed-StripGroup (default
// true) and Embed-StripVersion (default false).
func SettingsFromProperties(props ir.Properties) Settings {
	return Settings{
		EmbedDirectory: props.Get(ir.HeaderEmbedDirectory),
		StripGroup:     ParseFlag(props.GetOr(ir.HeaderEmbedStripGroup, "true")),
		StripVersion:   ParseFlag(props.Get(ir.HeaderEmbedStripVersion)),
	}
}

// ParseFlag is true only for "true", ignoring case.
func ParseFlag(s string) bool {
	return strings.EqualFold(strings.TrimSpace(s), "true")
}

// Process resolves the directive and emits every inlined dependency, then
// every embedded one. On error nothing is emitted.
func Process(in Input) (*Result, error) {
	c, err := Resolve(in.Dependencies, in.Directive)
	if err != nil {
		return nil, err
	}

	em := NewEmitter(in.Settings, in.Existing)
	if in.Exists != nil {
		em.Exists = in.Exists
	}

	result := &Result{
		Inlined:  c.Inlined(),
		Embedded: c.Embedded(),
	}
	for _, dep := range result.Inlined {
		em.Inline(dep)
	}
	for _, dep := range result.Embedded {
		em.Embed(dep)
	}

	result.Placements = em.Placements()
	if result.Placements == nil {
		result.Placements = []ir.Placement{}
	}
	result.Headers = em.Headers()
	return result, nil
}
