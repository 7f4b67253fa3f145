package store

import (
	"path/filepath"
	"testing"

	"github.com/roach88/embedder/internal/ir"
)

// createTestStore creates a new store in a temp directory for testing.
func createTestStore(t *testing.T) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")
	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

// createTestRun creates a run with one inline and one embed placement.
func createTestRun(project string) ir.Run {
	widget := ir.Dependency{GroupID: "com.acme", ArtifactID: "widget", Version: "1.2.0", File: "/repo/widget-1.2.0.jar"}
	api := ir.Dependency{GroupID: "com.acme", ArtifactID: "widget-api", Version: "1.2.0", File: "/repo/widget-api-1.2.0.jar"}

	return ir.Run{
		Project:   project,
		Directive: "widget;inline=true, widget-api",
		Headers: ir.Headers{
			BundleClassPath: ".,widget-api-1.2.0.jar",
			IncludeResource: "@/repo/widget-1.2.0.jar,widget-api-1.2.0.jar=/repo/widget-api-1.2.0.jar",
		},
		Placements: []ir.Placement{
			{Mode: ir.ModeInline, Dependency: widget, Source: widget.File},
			{Mode: ir.ModeEmbed, Dependency: api, Target: "widget-api-1.2.0.jar", Source: api.File},
		},
	}
}
