package embed

import (
	"os"
	"path/filepath"

	"golang.org/x/text/unicode/norm"

	"github.com/roach88/embedder/internal/ir"
)

// classPathRoot is the bundle root entry seeded into an empty Bundle-ClassPath.
const classPathRoot = "."

// Settings controls where embedded dependencies are placed.
type Settings struct {
	// EmbedDirectory is the directory inside the bundle; "" and "." mean the root.
	EmbedDirectory string

	// StripGroup drops the groupId directory level when true.
	StripGroup bool

	// StripVersion names targets artifactId.extension instead of the source file name.
	StripVersion bool
}

// DefaultSettings returns the settings used when no Embed-* properties are set.
func DefaultSettings() Settings {
	return Settings{StripGroup: true}
}

// Emitter appends placements to a pair of running header values.
// An Emitter is not safe for concurrent use.
type Emitter struct {
	// Exists reports whether a source file is present. Defaults to os.Stat.
	Exists func(path string) bool

	settings   Settings
	classPath  string
	resources  string
	placements []ir.Placement
}

// NewEmitter returns an Emitter that extends the existing header values.
func NewEmitter(settings Settings, existing ir.Headers) *Emitter {
	return &Emitter{
		Exists:    fileExists,
		settings:  settings,
		classPath: existing.BundleClassPath,
		resources: existing.IncludeResource,
	}
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// Embed places dep as a nested file and appends it to both headers.
// Returns false, without touching the headers, when dep has no source file.
func (e *Emitter) Embed(dep ir.Dependency) (ir.Placement, bool) {
	if !e.hasSource(dep) {
		return ir.Placement{}, false
	}

	p := ir.Placement{
		Mode:       ir.ModeEmbed,
		Dependency: dep,
		Target:     e.TargetPath(dep),
		Source:     dep.File,
	}

	if e.classPath == "" {
		e.classPath = classPathRoot
	}
	e.classPath = appendEntry(e.classPath, p.Target)
	e.resources = appendEntry(e.resources, p.Resource())
	e.placements = append(e.placements, p)

	return p, true
}

// Inline appends dep to Include-Resource as merged contents.
// Returns false, without touching the headers, when dep has no source file.
func (e *Emitter) Inline(dep ir.Dependency) (ir.Placement, bool) {
	if !e.hasSource(dep) {
		return ir.Placement{}, false
	}

	p := ir.Placement{
		Mode:       ir.ModeInline,
		Dependency: dep,
		Source:     dep.File,
	}

	e.resources = appendEntry(e.resources, p.Resource())
	e.placements = append(e.placements, p)

	return p, true
}

// TargetPath computes the in-bundle path of an embedded dependency.
// The result always uses "/" separators.
func (e *Emitter) TargetPath(dep ir.Dependency) string {
	dir := e.settings.EmbedDirectory
	if dir == "." {
		dir = ""
	}

	if !e.settings.StripGroup {
		dir = filepath.Join(dir, dep.GroupID)
	}

	var name string
	if e.settings.StripVersion {
		name = dep.ArtifactID
		if dep.Extension != "" {
			name += "." + dep.Extension
		}
	} else {
		name = filepath.Base(dep.File)
	}

	return norm.NFC.String(filepath.ToSlash(filepath.Join(dir, name)))
}

// Headers returns the current header values.
func (e *Emitter) Headers() ir.Headers {
	return ir.Headers{
		BundleClassPath: e.classPath,
		IncludeResource: e.resources,
	}
}

// Placements returns the emitted placements in emission order.
func (e *Emitter) Placements() []ir.Placement {
	return e.placements
}

func (e *Emitter) hasSource(dep ir.Dependency) bool {
	if dep.File == "" {
		return false
	}
	exists := e.Exists
	if exists == nil {
		exists = fileExists
	}
	return exists(dep.File)
}

// appendEntry joins entry onto value with the header delimiter.
func appendEntry(value, entry string) string {
	if value == "" {
		return entry
	}
	return value + ir.HeaderDelimiter + entry
}
