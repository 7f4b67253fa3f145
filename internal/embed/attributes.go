package embed

import (
	"strconv"

	"github.com/roach88/embedder/internal/ir"
)

// Recognized clause attribute keys.
const (
	AttrGroupID    = "groupId"
	AttrArtifactID = "artifactId"
	AttrVersion    = "version"
	AttrScope      = "scope"
	AttrType       = "type"
	AttrClassifier = "classifier"
	AttrOptional   = "optional"
	AttrInline     = ir.AttributeInline
)

// extractor returns the value of one dependency attribute; "" means absent.
type extractor func(ir.Dependency) string

// attribute pairs an extractor with the value substituted when absent.
type attribute struct {
	extract  extractor
	fallback string
}

// attributes maps every filtering attribute key to its extractor. A key
// missing from the table (other than inline) is a configuration error.
var attributes = map[string]attribute{
	AttrGroupID:    {extract: func(d ir.Dependency) string { return d.GroupID }},
	AttrArtifactID: {extract: func(d ir.Dependency) string { return d.ArtifactID }},
	AttrVersion:    {extract: versionOf},
	AttrScope:      {extract: func(d ir.Dependency) string { return d.Scope }, fallback: "compile"},
	AttrType:       {extract: func(d ir.Dependency) string { return d.Type }, fallback: "jar"},
	AttrClassifier: {extract: func(d ir.Dependency) string { return d.Classifier }},
	AttrOptional:   {extract: func(d ir.Dependency) string { return strconv.FormatBool(d.Optional) }, fallback: "false"},
}

// versionOf prefers the symbolic version (e.g. 1.0.0-SNAPSHOT) and falls back
// to the raw version string when none was resolved.
func versionOf(d ir.Dependency) string {
	if v, err := d.ResolvedVersion(); err == nil {
		return v
	}
	return d.Version
}

// RecognizedAttributes lists the accepted clause attribute keys.
func RecognizedAttributes() []string {
	return []string{AttrGroupID, AttrArtifactID, AttrVersion, AttrScope, AttrType, AttrClassifier, AttrOptional, AttrInline}
}
