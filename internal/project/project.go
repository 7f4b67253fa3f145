// Package project loads the resolved dependency set and bundle instructions
// the embedder runs against.
//
// A project file is YAML (.yaml, .yml) or CUE (.cue). Both carry the same
// fields:
//
//	name: demo
//	properties:
//	  Embed-Dependency: "*;scope=compile|runtime"
//	  Embed-Directory: lib
//	dependencies:
//	  - group_id: com.acme
//	    artifact_id: widget
//	    version: 1.2.0
//	    file: repo/widget-1.2.0.jar
//
// Relative dependency file paths are resolved against the project file's
// directory.
package project

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"gopkg.in/yaml.v3"

	"github.com/roach88/embedder/internal/ir"
)

//go:embed schema.cue
var schemaCUE string

// Project is a loaded project file.
type Project struct {
	Name         string          `yaml:"name" json:"name"`
	Properties   ir.Properties   `yaml:"properties" json:"properties"`
	Dependencies []ir.Dependency `yaml:"dependencies" json:"dependencies"`

	// Path is the file the project was loaded from.
	Path string `yaml:"-" json:"-"`
}

// Load reads a project file, choosing the decoder by extension.
func Load(path string) (*Project, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read project file: %w", err)
	}

	var p *Project
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		p, err = parseYAML(data)
	case ".cue":
		p, err = parseCUE(path, data)
	default:
		return nil, fmt.Errorf("unsupported project file extension %q", ext)
	}
	if err != nil {
		return nil, err
	}

	if err := validate(p); err != nil {
		return nil, fmt.Errorf("invalid project: %w", err)
	}

	p.Path = path
	p.resolveFiles(filepath.Dir(path))
	return p, nil
}

// parseYAML decodes with strict field validation so typos are rejected.
func parseYAML(data []byte) (*Project, error) {
	var p Project
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&p); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	return &p, nil
}

// parseCUE unifies the file with the #Project schema before decoding.
func parseCUE(path string, data []byte) (*Project, error) {
	ctx := cuecontext.New()

	schema := ctx.CompileString(schemaCUE)
	if err := schema.Err(); err != nil {
		return nil, fmt.Errorf("compiling project schema: %w", err)
	}

	v := ctx.CompileBytes(data, cue.Filename(path))
	if err := v.Err(); err != nil {
		return nil, fmt.Errorf("failed to parse CUE: %w", err)
	}

	unified := schema.LookupPath(cue.ParsePath("#Project")).Unify(v)
	if err := unified.Validate(cue.Concrete(true)); err != nil {
		return nil, fmt.Errorf("project does not match schema: %w", err)
	}

	var p Project
	if err := unified.Decode(&p); err != nil {
		return nil, fmt.Errorf("decoding CUE project: %w", err)
	}
	return &p, nil
}

// validate checks fields every decoder must agree on.
func validate(p *Project) error {
	if p.Properties == nil {
		p.Properties = ir.Properties{}
	}
	for i, dep := range p.Dependencies {
		if dep.ArtifactID == "" {
			return fmt.Errorf("dependencies[%d]: artifact_id is required", i)
		}
	}
	return nil
}

// resolveFiles makes relative dependency file paths relative to base.
func (p *Project) resolveFiles(base string) {
	for i, dep := range p.Dependencies {
		if dep.File != "" && !filepath.IsAbs(dep.File) {
			p.Dependencies[i].File = filepath.Join(base, dep.File)
		}
	}
}

// Save writes the project back out as YAML.
func (p *Project) Save(path string) error {
	data, err := yaml.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshaling project: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing file: %w", err)
	}
	return nil
}
