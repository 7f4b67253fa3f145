package embed

import (
	"github.com/roach88/embedder/internal/ir"
)

var (
	depCommonsLang = ir.Dependency{
		GroupID: "org.apache.commons", ArtifactID: "commons-lang3", Version: "3.12.0",
		Scope: "compile", Type: "jar", Extension: "jar",
		File: "repo/commons-lang3-3.12.0.jar",
	}
	depWidget = ir.Dependency{
		GroupID: "com.acme", ArtifactID: "widget", Version: "1.2.0",
		Scope: "compile", Type: "jar", Extension: "jar",
		File: "repo/widget-1.2.0.jar",
	}
	depWidgetAPI = ir.Dependency{
		GroupID: "com.acme", ArtifactID: "widget-api", Version: "1.2.0",
		Scope: "provided", Optional: true, Extension: "jar",
		File: "repo/widget-api-1.2.0.jar",
	}
	depSnapshot = ir.Dependency{
		GroupID: "com.acme", ArtifactID: "snapshot-lib", Version: "1.0.0-20240101.120000-3",
		SelectedVersion: "1.0.0-SNAPSHOT", Extension: "jar",
		File: "repo/snapshot-lib-1.0.0-20240101.120000-3.jar",
	}
	depJUnit = ir.Dependency{
		GroupID: "junit", ArtifactID: "junit", Version: "4.13.2",
		Scope: "test", Type: "jar", Extension: "jar",
		File: "repo/junit-4.13.2.jar",
	}
)

// testDeps returns a fresh fixture set.
func testDeps() []ir.Dependency {
	return []ir.Dependency{depCommonsLang, depWidget, depWidgetAPI, depSnapshot, depJUnit}
}

// clause builds a clause from a pattern and key/value pairs.
func clause(pattern string, kv ...string) ir.Clause {
	c := ir.Clause{Pattern: pattern}
	for i := 0; i+1 < len(kv); i += 2 {
		c.Attributes = append(c.Attributes, ir.Attribute{Key: kv[i], Value: kv[i+1]})
	}
	return c
}

// artifactIDs projects dependencies onto their artifact identifiers.
func artifactIDs(deps []ir.Dependency) []string {
	ids := make([]string, len(deps))
	for i, d := range deps {
		ids[i] = d.ArtifactID
	}
	return ids
}

func alwaysExists(string) bool { return true }
