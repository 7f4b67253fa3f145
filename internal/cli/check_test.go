package cli

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckValidDirective(t *testing.T) {
	path := writeProject(t, testDirective)

	out, _, err := execute(NewCheckCommand(&RootOptions{Format: "text"}), path)
	require.NoError(t, err)

	assert.Contains(t, out, "✓ Directive valid: 2 clause(s)")
	assert.Contains(t, out, "Inlined:\n  com.acme:widget:1.2.0\n")
	assert.Contains(t, out, "Embedded:\n  org.apache.commons:commons-lang3:3.12.0\n")
	assert.NotContains(t, out, "Bundle-ClassPath")
}

func TestCheckNoMatches(t *testing.T) {
	path := writeProject(t, "nothing-matches")

	out, _, err := execute(NewCheckCommand(&RootOptions{Format: "text"}), path)
	require.NoError(t, err)
	assert.Contains(t, out, "Inlined:\n  (none)\n")
	assert.Contains(t, out, "Embedded:\n  (none)\n")
}

func TestCheckNoDirective(t *testing.T) {
	path := writeProject(t, "")

	out, _, err := execute(NewCheckCommand(&RootOptions{Format: "text"}), path)
	require.NoError(t, err)
	assert.Contains(t, out, "✓ No Embed-Dependency header")
}

func TestCheckJSON(t *testing.T) {
	path := writeProject(t, testDirective)

	out, _, err := execute(NewCheckCommand(&RootOptions{Format: "json"}), path)
	require.NoError(t, err)

	var resp struct {
		Status string      `json:"status"`
		Data   CheckResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.True(t, resp.Data.Valid)
	assert.Equal(t, 2, resp.Data.Clauses)
	require.Len(t, resp.Data.Inlined, 1)
	require.Len(t, resp.Data.Embedded, 1)
}

func TestCheckInvalidDirective(t *testing.T) {
	tests := []struct {
		name      string
		directive string
		code      string
	}{
		{"unknown_attribute", "*;colour=red", ErrCodeUnknownAttribute},
		{"invalid_pattern", "*;groupId=com.(acme", ErrCodeInvalidPattern},
		{"malformed_header", "widget;=compile", ErrCodeMalformedHeader},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeProject(t, tt.directive)

			out, _, err := execute(NewCheckCommand(&RootOptions{Format: "text"}), path)
			require.Error(t, err)
			assert.Equal(t, ExitFailure, GetExitCode(err))
			assert.Contains(t, out, "✗ Directive invalid")
			assert.Contains(t, out, tt.code)
		})
	}
}

func TestCheckInvalidDirectiveJSON(t *testing.T) {
	path := writeProject(t, "*;colour=red")

	out, _, err := execute(NewCheckCommand(&RootOptions{Format: "json"}), path)
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))

	var resp CLIResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "error", resp.Status)
	require.NotNil(t, resp.Error)
	assert.Equal(t, ErrCodeUnknownAttribute, resp.Error.Code)
}

func TestCheckNonExistentProject(t *testing.T) {
	_, _, err := execute(NewCheckCommand(&RootOptions{Format: "text"}), "/nonexistent/project.yaml")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, err.Error(), ErrCodeNotFound)
}
