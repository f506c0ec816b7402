package redshift

import (
	"context"
	"fmt"
	"time"

	"github.com/stevedore-data/stevedore/lib/frame"
	"github.com/stevedore-data/stevedore/lib/typing"
)

// Query runs a statement and returns the result set as a frame. Column names
// come from the result descriptor and kinds are inferred from the returned
// values.
func (s *Store) Query(ctx context.Context, query string, args ...any) (*frame.Frame, error) {
	rows, err := s.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to run query: %w", err)
	}

	defer rows.Close()

	columnNames, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("failed to read the result descriptor: %w", err)
	}

	columns := make([]frame.Column, len(columnNames))
	for idx, name := range columnNames {
		columns[idx] = frame.Column{Name: name, Kind: typing.Invalid}
	}

	f := frame.New(columns)
	for rows.Next() {
		values := make([]any, len(columnNames))
		pointers := make([]any, len(columnNames))
		for idx := range values {
			pointers[idx] = &values[idx]
		}

		if err = rows.Scan(pointers...); err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}

		if err = f.AddRow(values); err != nil {
			return nil, err
		}
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate over rows: %w", err)
	}

	f.InferKinds()
	return f, nil
}

// Load returns the full contents of table as a frame.
func (s *Store) Load(ctx context.Context, table string) (*frame.Frame, error) {
	start := time.Now()
	tags := map[string]string{
		"what":  "success",
		"table": table,
	}
	defer func() {
		s.metricsClient.Timing("load", time.Since(start), tags)
	}()

	f, err := s.Query(ctx, s.dialect().BuildSelectAllQuery(s.identifierFor(table)))
	if err != nil {
		tags["what"] = "query_fail"
		return nil, err
	}

	s.metricsClient.Count("load.rows", int64(f.NumRows()), tags)
	return f, nil
}

// Exists reports whether table is present in the configured schema.
func (s *Store) Exists(ctx context.Context, table string) (bool, error) {
	query, args := s.dialect().BuildTableExistsQuery(s.identifierFor(table))
	rows, err := s.QueryContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("failed to check whether the table exists: %w", err)
	}

	defer rows.Close()

	var exists bool
	if rows.Next() {
		if err = rows.Scan(&exists); err != nil {
			return false, fmt.Errorf("failed to scan the existence check: %w", err)
		}
	}

	return exists, rows.Err()
}
