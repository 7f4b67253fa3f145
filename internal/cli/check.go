package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/embedder/internal/embed"
	"github.com/roach88/embedder/internal/ir"
)

// CheckResult holds the classification preview.
type CheckResult struct {
	Valid    bool            `json:"valid"`
	Clauses  int             `json:"clauses"`
	Inlined  []ir.Dependency `json:"inlined"`
	Embedded []ir.Dependency `json:"embedded"`
}

// NewCheckCommand creates the check command.
func NewCheckCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check <project-file>",
		Short: "Validate the directive and preview classification",
		Long: `Parse and resolve the project's Embed-Dependency directive without
emitting headers. Reports which dependencies would be inlined and which
embedded, or the first configuration error.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(rootOpts, args[0], cmd)
		},
	}

	return cmd
}

func runCheck(opts *RootOptions, path string, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd)

	proj, code, err := loadProject(path)
	if err != nil {
		return outputCommandError(formatter, code, err.Error())
	}

	in, ok, err := embed.InputFromProperties(proj.Dependencies, proj.Properties)
	if err != nil {
		return outputCheckFailure(formatter, err)
	}
	if !ok {
		return outputCheckSuccess(formatter, &CheckResult{
			Valid:    true,
			Inlined:  []ir.Dependency{},
			Embedded: []ir.Dependency{},
		})
	}

	for i, clause := range in.Directive {
		formatter.VerboseLog("checking clause", "index", i, "pattern", clause.Pattern, "attributes", len(clause.Attributes))
	}

	c, err := embed.Resolve(in.Dependencies, in.Directive)
	if err != nil {
		return outputCheckFailure(formatter, err)
	}

	return outputCheckSuccess(formatter, &CheckResult{
		Valid:    true,
		Clauses:  len(in.Directive),
		Inlined:  c.Inlined(),
		Embedded: c.Embedded(),
	})
}

// outputCheckSuccess outputs the classification preview.
func outputCheckSuccess(formatter *OutputFormatter, result *CheckResult) error {
	if formatter.Format == "json" {
		return formatter.Success(result)
	}

	if result.Clauses == 0 {
		fmt.Fprintln(formatter.Writer, "✓ No Embed-Dependency header")
		return nil
	}

	fmt.Fprintf(formatter.Writer, "✓ Directive valid: %d clause(s)\n\n", result.Clauses)
	printDependencies(formatter, "Inlined", result.Inlined)
	printDependencies(formatter, "Embedded", result.Embedded)
	return nil
}

func printDependencies(formatter *OutputFormatter, title string, deps []ir.Dependency) {
	fmt.Fprintf(formatter.Writer, "%s:\n", title)
	if len(deps) == 0 {
		fmt.Fprintln(formatter.Writer, "  (none)")
	}
	for _, dep := range deps {
		fmt.Fprintf(formatter.Writer, "  %s\n", dep)
	}
	fmt.Fprintln(formatter.Writer)
}

// outputCheckFailure reports a directive error (exit code 1).
func outputCheckFailure(formatter *OutputFormatter, err error) error {
	code := MapConfigErrorToCode(err)

	if formatter.Format == "json" {
		_ = formatter.Error(code, err.Error(), nil)
	} else {
		fmt.Fprintln(formatter.Writer, "✗ Directive invalid")
		fmt.Fprintln(formatter.Writer)
		fmt.Fprintf(formatter.Writer, "  %s: %s\n", code, err.Error())
	}

	return WrapExitError(ExitFailure, "directive check failed", err)
}
