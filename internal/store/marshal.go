package store

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/roach88/embedder/internal/ir"
)

// marshalDependency converts a Dependency to JSON TEXT for storage.
// HTML escaping is disabled so paths and versions are stored verbatim.
func marshalDependency(dep ir.Dependency) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(dep); err != nil {
		return "", fmt.Errorf("marshal dependency: %w", err)
	}
	// Encoder adds a trailing newline, remove it
	return strings.TrimSpace(buf.String()), nil
}

// unmarshalDependency parses JSON TEXT back into a Dependency.
func unmarshalDependency(data string) (ir.Dependency, error) {
	var dep ir.Dependency
	if err := json.Unmarshal([]byte(data), &dep); err != nil {
		return ir.Dependency{}, fmt.Errorf("unmarshal dependency: %w", err)
	}
	return dep, nil
}
