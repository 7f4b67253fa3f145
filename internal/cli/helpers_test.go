package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
)

// projectTemplate lists commons-lang3 and widget at compile scope and junit
// at test scope, all with source files under repo/.
const projectTemplate = `name: demo
properties:
  Embed-Dependency: "DIRECTIVE"
PROPERTIES
dependencies:
  - group_id: org.apache.commons
    artifact_id: commons-lang3
    version: 3.12.0
    scope: compile
    extension: jar
    file: repo/commons-lang3-3.12.0.jar
  - group_id: com.acme
    artifact_id: widget
    version: 1.2.0
    scope: compile
    extension: jar
    file: repo/widget-1.2.0.jar
  - group_id: junit
    artifact_id: junit
    version: 4.13.2
    scope: test
    extension: jar
    file: repo/junit-4.13.2.jar
`

// writeProject creates a project directory with the fixture jars and returns
// the project file path. props are extra "Name: value" property lines.
func writeProject(t *testing.T, directive string, props ...string) string {
	t.Helper()
	dir := t.TempDir()

	require.NoError(t, os.MkdirAll(filepath.Join(dir, "repo"), 0755))
	for _, jar := range []string{"commons-lang3-3.12.0.jar", "widget-1.2.0.jar", "junit-4.13.2.jar"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, "repo", jar), []byte("PK"), 0644))
	}

	var lines []string
	for _, p := range props {
		lines = append(lines, "  "+p)
	}
	content := strings.Replace(projectTemplate, "DIRECTIVE", directive, 1)
	content = strings.Replace(content, "PROPERTIES\n", strings.Join(append(lines, ""), "\n"), 1)

	path := filepath.Join(dir, "project.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

// execute runs cmd with args and returns stdout and stderr.
func execute(cmd *cobra.Command, args ...string) (string, string, error) {
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}
