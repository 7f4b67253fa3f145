package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/roach88/embedder/internal/ir"
)

// ListRuns returns up to limit runs, newest first, without placements.
// A limit <= 0 returns every run.
//
// Returns an empty slice (not nil) if no runs exist.
func (s *Store) ListRuns(ctx context.Context, limit int) ([]ir.Run, error) {
	query := `
		SELECT id, seq, project, directive, bundle_classpath, include_resource
		FROM runs
		ORDER BY seq DESC
	`
	var args []any
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	runs := []ir.Run{}
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate runs: %w", err)
	}

	return runs, nil
}

// ReadRun returns a run with its placements in emission order.
// Returns ErrRunNotFound if id does not exist.
func (s *Store) ReadRun(ctx context.Context, id string) (ir.Run, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, seq, project, directive, bundle_classpath, include_resource
		FROM runs
		WHERE id = ?
	`, id)

	run, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return ir.Run{}, fmt.Errorf("%w: %s", ErrRunNotFound, id)
	}
	if err != nil {
		return ir.Run{}, err
	}

	run.Placements, err = s.readPlacements(ctx, id)
	if err != nil {
		return ir.Run{}, err
	}

	return run, nil
}

// readPlacements returns the placements of a run ordered by position.
func (s *Store) readPlacements(ctx context.Context, runID string) ([]ir.Placement, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT mode, dependency, target, source
		FROM placements
		WHERE run_id = ?
		ORDER BY position ASC
	`, runID)
	if err != nil {
		return nil, fmt.Errorf("query placements: %w", err)
	}
	defer rows.Close()

	placements := []ir.Placement{}
	for rows.Next() {
		var p ir.Placement
		var mode, depJSON string
		if err := rows.Scan(&mode, &depJSON, &p.Target, &p.Source); err != nil {
			return nil, fmt.Errorf("scan placement: %w", err)
		}
		p.Mode = ir.PlacementMode(mode)
		p.Dependency, err = unmarshalDependency(depJSON)
		if err != nil {
			return nil, err
		}
		placements = append(placements, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate placements: %w", err)
	}

	return placements, nil
}

// scanner is satisfied by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanRun(sc scanner) (ir.Run, error) {
	var run ir.Run
	err := sc.Scan(
		&run.ID,
		&run.Seq,
		&run.Project,
		&run.Directive,
		&run.Headers.BundleClassPath,
		&run.Headers.IncludeResource,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return ir.Run{}, err
	}
	if err != nil {
		return ir.Run{}, fmt.Errorf("scan run: %w", err)
	}
	return run, nil
}
