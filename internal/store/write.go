package store

import (
	"context"
	"fmt"

	"github.com/roach88/embedder/internal/ir"
)

// WriteRun inserts a run and its placements in one transaction.
//
// An empty run.ID is replaced by a fresh UUIDv7. The run's Seq is assigned
// from the store's logical clock (MAX(seq)+1) and any caller value is
// ignored. Returns the stored run.
func (s *Store) WriteRun(ctx context.Context, run ir.Run) (ir.Run, error) {
	if run.ID == "" {
		run.ID = NewRunID()
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return ir.Run{}, fmt.Errorf("write run: %w", err)
	}
	defer tx.Rollback()

	if err := tx.QueryRowContext(ctx, `SELECT COALESCE(MAX(seq), 0) + 1 FROM runs`).Scan(&run.Seq); err != nil {
		return ir.Run{}, fmt.Errorf("write run: next seq: %w", err)
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO runs
		(id, seq, project, directive, bundle_classpath, include_resource, tool_version)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`,
		run.ID,
		run.Seq,
		run.Project,
		run.Directive,
		run.Headers.BundleClassPath,
		run.Headers.IncludeResource,
		ir.ToolVersion,
	)
	if err != nil {
		return ir.Run{}, fmt.Errorf("write run: %w", err)
	}

	for i, p := range run.Placements {
		depJSON, err := marshalDependency(p.Dependency)
		if err != nil {
			return ir.Run{}, fmt.Errorf("write run: placement %d: %w", i, err)
		}

		_, err = tx.ExecContext(ctx, `
			INSERT INTO placements
			(run_id, position, mode, dependency, target, source)
			VALUES (?, ?, ?, ?, ?, ?)
		`,
			run.ID,
			i,
			string(p.Mode),
			depJSON,
			p.Target,
			p.Source,
		)
		if err != nil {
			return ir.Run{}, fmt.Errorf("write run: placement %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return ir.Run{}, fmt.Errorf("write run: commit: %w", err)
	}

	return run, nil
}
