package db

import (
	"context"
	"fmt"
	"log/slog"
)

// ExecStatements runs the statements in order inside one transaction, so they
// either all commit or none do. A single statement skips the transaction.
func ExecStatements(ctx context.Context, store Store, statements []string) error {
	switch len(statements) {
	case 0:
		return fmt.Errorf("statements is empty")
	case 1:
		slog.Debug("Executing...", slog.String("query", statements[0]))
		if _, err := store.ExecContext(ctx, statements[0]); err != nil {
			return fmt.Errorf("failed to execute statement: %w", err)
		}

		return nil
	default:
		tx, err := store.Begin()
		if err != nil {
			return fmt.Errorf("failed to start tx: %w", err)
		}

		var committed bool
		defer func() {
			if !committed {
				if rollbackErr := tx.Rollback(); rollbackErr != nil {
					slog.Warn("Unable to rollback", slog.Any("err", rollbackErr))
				}
			}
		}()

		for _, statement := range statements {
			slog.Debug("Executing...", slog.String("query", statement))
			if _, err = tx.ExecContext(ctx, statement); err != nil {
				return fmt.Errorf("failed to execute statement: %q, err: %w", statement, err)
			}
		}

		if err = tx.Commit(); err != nil {
			return fmt.Errorf("failed to commit statements: %v, err: %w", statements, err)
		}

		committed = true
		return nil
	}
}
