package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/roach88/embedder/internal/embed"
	"github.com/roach88/embedder/internal/ir"
	"github.com/roach88/embedder/internal/project"
	"github.com/roach88/embedder/internal/store"
)

// ResolveOptions holds flags for the resolve command.
type ResolveOptions struct {
	*RootOptions
	Database string // record the run in this SQLite database
	Output   string // write the merged project here
}

// ResolveOutput is the JSON payload of a successful resolve.
type ResolveOutput struct {
	RunID      string          `json:"run_id,omitempty"`
	Skipped    bool            `json:"skipped,omitempty"` // no Embed-Dependency header
	Inlined    []ir.Dependency `json:"inlined"`
	Embedded   []ir.Dependency `json:"embedded"`
	Placements []ir.Placement  `json:"placements"`
	Headers    ir.Headers      `json:"headers"`
}

// NewResolveCommand creates the resolve command.
func NewResolveCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ResolveOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "resolve <project-file>",
		Short: "Emit bundle headers for a project",
		Long: `Resolve the project's Embed-Dependency directive and emit the
Bundle-ClassPath and Include-Resource header values.

Embed-Directory, Embed-StripGroup and Embed-StripVersion can be overridden
with flags or EMBEDDER_* environment variables.

Example:
  embedder resolve project.yaml
  embedder resolve project.cue --strip-version --db ./embedder.db
  EMBEDDER_EMBED_DIRECTORY=lib embedder resolve project.yaml --format json`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true, // Don't print usage on errors - we handle our own error output
		SilenceErrors: true, // Don't print errors - we handle our own error output
		RunE: func(cmd *cobra.Command, args []string) error {
			return runResolve(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Database, "db", "", "record the run in this SQLite database")
	cmd.Flags().StringVarP(&opts.Output, "output", "o", "", "write the project with merged headers to this YAML file")
	addSettingsFlags(cmd)

	return cmd
}

func runResolve(opts *ResolveOptions, path string, cmd *cobra.Command) error {
	formatter := newFormatter(opts.RootOptions, cmd)

	proj, code, err := loadProject(path)
	if err != nil {
		return outputCommandError(formatter, code, err.Error())
	}
	formatter.VerboseLog("loaded project", "path", path, "dependencies", len(proj.Dependencies))

	props, err := layerSettings(cmd, proj.Properties)
	if err != nil {
		return outputCommandError(formatter, ErrCodeGeneric, err.Error())
	}

	in, ok, err := embed.InputFromProperties(proj.Dependencies, props)
	if err != nil {
		return outputCommandError(formatter, MapConfigErrorToCode(err), err.Error())
	}
	if !ok {
		formatter.VerboseLog("no Embed-Dependency header; headers unchanged")
		return outputResolveSuccess(formatter, &ResolveOutput{
			Skipped:    true,
			Inlined:    []ir.Dependency{},
			Embedded:   []ir.Dependency{},
			Placements: []ir.Placement{},
			Headers:    props.Headers(),
		})
	}
	formatter.VerboseLog("directive parsed",
		"clauses", len(in.Directive),
		"embed_directory", in.Settings.EmbedDirectory,
		"strip_group", in.Settings.StripGroup,
		"strip_version", in.Settings.StripVersion)

	result, err := embed.Process(in)
	if err != nil {
		return outputCommandError(formatter, MapConfigErrorToCode(err), err.Error())
	}
	logPlacements(formatter, result)

	out := &ResolveOutput{
		Inlined:    result.Inlined,
		Embedded:   result.Embedded,
		Placements: result.Placements,
		Headers:    result.Headers,
	}

	if opts.Database != "" {
		runID, err := recordRun(cmd.Context(), opts.Database, path, props.Get(ir.HeaderEmbedDependency), result)
		if err != nil {
			return outputCommandError(formatter, ErrCodeStoreFailed, err.Error())
		}
		out.RunID = runID
		formatter.VerboseLog("run recorded", "db", opts.Database, "run_id", runID)
	}

	if opts.Output != "" {
		proj.Properties.Apply(result.Headers)
		if err := proj.Save(opts.Output); err != nil {
			return outputCommandError(formatter, ErrCodeWriteFailed, fmt.Sprintf("writing output file: %v", err))
		}
	}

	return outputResolveSuccess(formatter, out)
}

// loadProject maps load failures onto CLI error codes.
func loadProject(path string) (*project.Project, string, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, ErrCodeNotFound, fmt.Errorf("project file not found: %s", path)
	}
	proj, err := project.Load(path)
	if err != nil {
		return nil, ErrCodeLoadFailed, err
	}
	return proj, "", nil
}

// logPlacements reports every emitted entry and every classified dependency
// that was skipped for lack of a source file.
func logPlacements(formatter *OutputFormatter, result *embed.Result) {
	if !formatter.Verbose {
		return
	}

	placed := make(map[string]bool, len(result.Placements))
	for _, p := range result.Placements {
		placed[p.Dependency.Key()] = true
		formatter.VerboseLog("placed", "mode", p.Mode, "dependency", p.Dependency.String(), "entry", p.Resource())
	}

	for _, group := range [][]ir.Dependency{result.Inlined, result.Embedded} {
		for _, dep := range group {
			if !placed[dep.Key()] {
				formatter.Logger().Warn("skipped, no source file", "dependency", dep.String(), "file", dep.File)
			}
		}
	}
}

// recordRun stores the result and returns the new run ID.
func recordRun(ctx context.Context, dbPath, projectPath, directive string, result *embed.Result) (string, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	st, err := store.Open(dbPath)
	if err != nil {
		return "", err
	}
	defer st.Close()

	run, err := st.WriteRun(ctx, ir.Run{
		Project:    projectPath,
		Directive:  directive,
		Headers:    result.Headers,
		Placements: result.Placements,
	})
	if err != nil {
		return "", err
	}
	return run.ID, nil
}

// outputResolveSuccess prints the headers.
func outputResolveSuccess(formatter *OutputFormatter, out *ResolveOutput) error {
	if formatter.Format == "json" {
		return formatter.Success(out)
	}

	if out.Skipped {
		fmt.Fprintln(formatter.Writer, "✓ No Embed-Dependency header, headers unchanged")
	} else {
		fmt.Fprintf(formatter.Writer, "✓ Resolved %d inlined, %d embedded dependency(ies)\n",
			len(out.Inlined), len(out.Embedded))
	}
	fmt.Fprintln(formatter.Writer)

	printHeaders(formatter, out.Headers)

	if out.RunID != "" {
		fmt.Fprintf(formatter.Writer, "\nRecorded run %s\n", out.RunID)
	}
	return nil
}

// printHeaders writes headers as manifest lines, omitting empty ones.
func printHeaders(formatter *OutputFormatter, h ir.Headers) {
	if h.BundleClassPath != "" {
		fmt.Fprintf(formatter.Writer, "%s: %s\n", ir.HeaderBundleClassPath, h.BundleClassPath)
	}
	if h.IncludeResource != "" {
		fmt.Fprintf(formatter.Writer, "%s: %s\n", ir.HeaderIncludeResource, h.IncludeResource)
	}
}

// outputCommandError outputs a single error as a command-level failure (exit code 2).
func outputCommandError(formatter *OutputFormatter, code, message string) error {
	_ = formatter.Error(code, message, nil)
	return NewExitError(ExitCommandError, fmt.Sprintf("%s: %s", code, message))
}
