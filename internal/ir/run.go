package ir

// PlacementMode distinguishes merged contents from nested files.
type PlacementMode string

const (
	// ModeInline merges the dependency contents into the bundle.
	ModeInline PlacementMode = "inline"

	// ModeEmbed places the dependency as a nested file on the bundle classpath.
	ModeEmbed PlacementMode = "embed"
)

// Placement records one emitted header entry.
type Placement struct {
	Mode       PlacementMode `json:"mode"`
	Dependency Dependency    `json:"dependency"`
	Target     string        `json:"target,omitempty"` // empty for inline
	Source     string        `json:"source"`
}

// Resource returns the Include-Resource entry for the placement.
func (p Placement) Resource() string {
	if p.Mode == ModeInline {
		return "@" + p.Source
	}
	return p.Target + "=" + p.Source
}

// Run is a recorded resolution pass.
type Run struct {
	ID         string      `json:"id"`        // UUIDv7
	Seq        int64       `json:"seq"`       // logical clock
	Project    string      `json:"project"`   // project file the run was loaded from
	Directive  string      `json:"directive"` // raw Embed-Dependency value
	Headers    Headers     `json:"headers"`
	Placements []Placement `json:"placements"`
}
