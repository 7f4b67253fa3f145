package ir

// Version constants for the run record schema and tool.
const (
	// SchemaVersion is the run record schema version.
	SchemaVersion = "1"

	// ToolVersion is the embedder version.
	ToolVersion = "0.1.0"
)
