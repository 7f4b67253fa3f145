package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/roach88/embedder/internal/ir"
	"github.com/roach88/embedder/internal/store"
)

// HistoryOptions holds flags for the history command.
type HistoryOptions struct {
	*RootOptions
	Database string
	Limit    int
}

// NewHistoryCommand creates the history command.
func NewHistoryCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &HistoryOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "history [run-id]",
		Short: "List recorded runs or show one",
		Long: `List runs recorded by 'embedder resolve --db', newest first, or show
the headers and placements of a single run.

Example:
  embedder history --db ./embedder.db
  embedder history --db ./embedder.db 0190a5e4-7c1e-7b3a-9f1e-2d3c4b5a6978`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			runID := ""
			if len(args) == 1 {
				runID = args[0]
			}
			return runHistory(opts, runID, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Database, "db", "", "path to SQLite database (required)")
	cmd.Flags().IntVarP(&opts.Limit, "limit", "n", 20, "maximum number of runs to list (0 = all)")
	_ = cmd.MarkFlagRequired("db")

	return cmd
}

func runHistory(opts *HistoryOptions, runID string, cmd *cobra.Command) error {
	formatter := newFormatter(opts.RootOptions, cmd)

	if _, err := os.Stat(opts.Database); os.IsNotExist(err) {
		return outputCommandError(formatter, ErrCodeNotFound, fmt.Sprintf("database not found: %s", opts.Database))
	}

	st, err := store.Open(opts.Database)
	if err != nil {
		return outputCommandError(formatter, ErrCodeStoreFailed, err.Error())
	}
	defer st.Close()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	if runID != "" {
		run, err := st.ReadRun(ctx, runID)
		if errors.Is(err, store.ErrRunNotFound) {
			return outputCommandError(formatter, ErrCodeNotFound, err.Error())
		}
		if err != nil {
			return outputCommandError(formatter, ErrCodeStoreFailed, err.Error())
		}
		return outputRun(formatter, run)
	}

	runs, err := st.ListRuns(ctx, opts.Limit)
	if err != nil {
		return outputCommandError(formatter, ErrCodeStoreFailed, err.Error())
	}
	formatter.VerboseLog("listed runs", "db", opts.Database, "count", len(runs))
	return outputRuns(formatter, runs)
}

func outputRuns(formatter *OutputFormatter, runs []ir.Run) error {
	if formatter.Format == "json" {
		return formatter.Success(runs)
	}

	if len(runs) == 0 {
		fmt.Fprintln(formatter.Writer, "No runs recorded")
		return nil
	}

	for _, run := range runs {
		fmt.Fprintf(formatter.Writer, "#%d  %s  %s\n", run.Seq, run.ID, run.Project)
		fmt.Fprintf(formatter.Writer, "    %s: %s\n", ir.HeaderEmbedDependency, run.Directive)
	}
	return nil
}

func outputRun(formatter *OutputFormatter, run ir.Run) error {
	if formatter.Format == "json" {
		return formatter.Success(run)
	}

	fmt.Fprintf(formatter.Writer, "Run #%d %s\n", run.Seq, run.ID)
	fmt.Fprintf(formatter.Writer, "Project: %s\n", run.Project)
	fmt.Fprintf(formatter.Writer, "%s: %s\n\n", ir.HeaderEmbedDependency, run.Directive)

	printHeaders(formatter, run.Headers)

	if len(run.Placements) > 0 {
		fmt.Fprintln(formatter.Writer)
		fmt.Fprintln(formatter.Writer, "Placements:")
		for _, p := range run.Placements {
			fmt.Fprintf(formatter.Writer, "  %-6s %s  %s\n", p.Mode, p.Dependency, p.Resource())
		}
	}
	return nil
}
