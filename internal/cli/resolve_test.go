package cli

import (
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/embedder/internal/ir"
	"github.com/roach88/embedder/internal/project"
)

const testDirective = "*;scope=compile|runtime;inline=false, widget;inline=true"

func TestResolveText(t *testing.T) {
	path := writeProject(t, testDirective, "Embed-Directory: libs")
	repo := filepath.Join(filepath.Dir(path), "repo")

	out, _, err := execute(NewResolveCommand(&RootOptions{Format: "text"}), path)
	require.NoError(t, err)

	assert.Contains(t, out, "✓ Resolved 1 inlined, 1 embedded dependency(ies)")
	assert.Contains(t, out, "Bundle-ClassPath: .,libs/commons-lang3-3.12.0.jar\n")
	assert.Contains(t, out, "Include-Resource: @"+filepath.Join(repo, "widget-1.2.0.jar")+
		",libs/commons-lang3-3.12.0.jar="+filepath.Join(repo, "commons-lang3-3.12.0.jar")+"\n")
	assert.NotContains(t, out, "junit")
}

func TestResolveJSON(t *testing.T) {
	path := writeProject(t, testDirective)

	out, _, err := execute(NewResolveCommand(&RootOptions{Format: "json"}), path)
	require.NoError(t, err)

	var resp struct {
		Status string        `json:"status"`
		Data   ResolveOutput `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "ok", resp.Status)
	require.Len(t, resp.Data.Inlined, 1)
	assert.Equal(t, "widget", resp.Data.Inlined[0].ArtifactID)
	require.Len(t, resp.Data.Embedded, 1)
	assert.Equal(t, "commons-lang3", resp.Data.Embedded[0].ArtifactID)

	require.Len(t, resp.Data.Placements, 2)
	assert.Equal(t, ir.ModeInline, resp.Data.Placements[0].Mode)
	assert.Equal(t, ir.ModeEmbed, resp.Data.Placements[1].Mode)
	assert.Equal(t, "commons-lang3-3.12.0.jar", resp.Data.Placements[1].Target)
	assert.Equal(t, ".,commons-lang3-3.12.0.jar", resp.Data.Headers.BundleClassPath)
	assert.Empty(t, resp.Data.RunID)
}

func TestResolveNoDirective(t *testing.T) {
	path := writeProject(t, "", "Bundle-ClassPath: existing.jar")

	out, _, err := execute(NewResolveCommand(&RootOptions{Format: "text"}), path)
	require.NoError(t, err)
	assert.Contains(t, out, "✓ No Embed-Dependency header, headers unchanged")
	assert.Contains(t, out, "Bundle-ClassPath: existing.jar\n")
	assert.NotContains(t, out, "Include-Resource")
}

func TestResolveSettingsPrecedence(t *testing.T) {
	tests := []struct {
		name string
		env  string
		args []string
		want string
	}{
		{
			name: "project_property",
			want: "Bundle-ClassPath: .,from-project/commons-lang3-3.12.0.jar\n",
		},
		{
			name: "env_overrides_property",
			env:  "from-env",
			want: "Bundle-ClassPath: .,from-env/commons-lang3-3.12.0.jar\n",
		},
		{
			name: "flag_overrides_env",
			env:  "from-env",
			args: []string{"--embed-directory", "from-flag"},
			want: "Bundle-ClassPath: .,from-flag/commons-lang3-3.12.0.jar\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.env != "" {
				t.Setenv("EMBEDDER_EMBED_DIRECTORY", tt.env)
			}
			path := writeProject(t, "commons-lang3", "Embed-Directory: from-project")

			out, _, err := execute(NewResolveCommand(&RootOptions{Format: "text"}), append(tt.args, path)...)
			require.NoError(t, err)
			assert.Contains(t, out, tt.want)
		})
	}
}

func TestResolveStripFlags(t *testing.T) {
	path := writeProject(t, "commons-lang3")

	out, _, err := execute(NewResolveCommand(&RootOptions{Format: "text"}),
		"--strip-group=false", "--strip-version", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Bundle-ClassPath: .,org.apache.commons/commons-lang3.jar\n")
}

func TestResolveStripVersionFromProperty(t *testing.T) {
	path := writeProject(t, "commons-lang3", "Embed-StripVersion: \"TRUE\"")

	out, _, err := execute(NewResolveCommand(&RootOptions{Format: "text"}), path)
	require.NoError(t, err)
	assert.Contains(t, out, "Bundle-ClassPath: .,commons-lang3.jar\n")
}

func TestResolveUnknownAttribute(t *testing.T) {
	path := writeProject(t, "*;colour=red")

	out, _, err := execute(NewResolveCommand(&RootOptions{Format: "text"}), path)
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, err.Error(), ErrCodeUnknownAttribute)
	assert.Contains(t, out, "unexpected attribute colour")
	assert.NotContains(t, out, "Bundle-ClassPath")
}

func TestResolveMalformedHeaderJSON(t *testing.T) {
	path := writeProject(t, "widget;scope='compile")

	out, _, err := execute(NewResolveCommand(&RootOptions{Format: "json"}), path)
	require.Error(t, err)

	var resp CLIResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "error", resp.Status)
	require.NotNil(t, resp.Error)
	assert.Equal(t, ErrCodeMalformedHeader, resp.Error.Code)
}

func TestResolveNonExistentProject(t *testing.T) {
	out, _, err := execute(NewResolveCommand(&RootOptions{Format: "text"}), "/nonexistent/project.yaml")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, err.Error(), ErrCodeNotFound)
	assert.Contains(t, out, "not found")
}

func TestResolveWritesOutput(t *testing.T) {
	path := writeProject(t, testDirective, "Bundle-ClassPath: ., classes")
	outPath := filepath.Join(t.TempDir(), "merged.yaml")

	_, _, err := execute(NewResolveCommand(&RootOptions{Format: "text"}), "--output", outPath, path)
	require.NoError(t, err)

	merged, err := project.Load(outPath)
	require.NoError(t, err)
	assert.Equal(t, "., classes,commons-lang3-3.12.0.jar", merged.Properties[ir.HeaderBundleClassPath])
	assert.Contains(t, merged.Properties[ir.HeaderIncludeResource], "@")
	assert.Equal(t, testDirective, merged.Properties[ir.HeaderEmbedDependency])
}

func TestResolveRecordsRun(t *testing.T) {
	path := writeProject(t, testDirective)
	dbPath := filepath.Join(t.TempDir(), "embedder.db")

	out, _, err := execute(NewResolveCommand(&RootOptions{Format: "json"}), "--db", dbPath, path)
	require.NoError(t, err)

	var resp struct {
		Data ResolveOutput `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.NotEmpty(t, resp.Data.RunID)
}

func TestResolveVerboseLogsToStderr(t *testing.T) {
	path := writeProject(t, testDirective)

	out, errOut, err := execute(NewResolveCommand(&RootOptions{Format: "json", Verbose: true}), path)
	require.NoError(t, err)

	var resp CLIResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Contains(t, errOut, "directive parsed")
	assert.Contains(t, errOut, "placed")
}
