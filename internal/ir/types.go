package ir

import (
	"errors"
	"strings"
)

// ErrNoSelectedVersion is returned by ResolvedVersion when a dependency has
// no symbolic version.
var ErrNoSelectedVersion = errors.New("no selected version")

// Dependency is a resolved build artifact.
//
// Every string attribute may be empty, meaning absent. Matching substitutes a
// per-attribute default for absent values.
type Dependency struct {
	GroupID         string `json:"group_id" yaml:"group_id"`
	ArtifactID      string `json:"artifact_id" yaml:"artifact_id"`
	Version         string `json:"version" yaml:"version"`
	SelectedVersion string `json:"selected_version,omitempty" yaml:"selected_version,omitempty"` // e.g. "1.0.0-SNAPSHOT" for a timestamped build
	Scope           string `json:"scope,omitempty" yaml:"scope,omitempty"`
	Type            string `json:"type,omitempty" yaml:"type,omitempty"`
	Classifier      string `json:"classifier,omitempty" yaml:"classifier,omitempty"`
	Optional        bool   `json:"optional,omitempty" yaml:"optional,omitempty"`
	File            string `json:"file,omitempty" yaml:"file,omitempty"`           // source path on disk
	Extension       string `json:"extension,omitempty" yaml:"extension,omitempty"` // "jar", "zip"; empty when unknown
}

// Key returns the identity of the dependency:
// groupId:artifactId:type:classifier:version.
func (d Dependency) Key() string {
	return strings.Join([]string{d.GroupID, d.ArtifactID, d.Type, d.Classifier, d.Version}, ":")
}

// ResolvedVersion returns the symbolic version of the dependency.
// Returns ErrNoSelectedVersion when none was resolved.
func (d Dependency) ResolvedVersion() (string, error) {
	if d.SelectedVersion == "" {
		return "", ErrNoSelectedVersion
	}
	return d.SelectedVersion, nil
}

// String renders the dependency as Maven-style coordinates.
func (d Dependency) String() string {
	parts := []string{d.GroupID, d.ArtifactID}
	if d.Type != "" {
		parts = append(parts, d.Type)
	}
	if d.Classifier != "" {
		parts = append(parts, d.Classifier)
	}
	parts = append(parts, d.Version)
	return strings.Join(parts, ":")
}

// Less orders dependencies by (groupId, artifactId, version), then type and
// classifier so that distinct identities never compare equal.
func (d Dependency) Less(other Dependency) bool {
	if d.GroupID != other.GroupID {
		return d.GroupID < other.GroupID
	}
	if d.ArtifactID != other.ArtifactID {
		return d.ArtifactID < other.ArtifactID
	}
	if d.Version != other.Version {
		return d.Version < other.Version
	}
	if d.Type != other.Type {
		return d.Type < other.Type
	}
	return d.Classifier < other.Classifier
}
