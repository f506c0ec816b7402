package redshift

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/stevedore-data/stevedore/clients/redshift/dialect"
	"github.com/stevedore-data/stevedore/lib/redact"
)

// copyInto runs the COPY statement in its own transaction. On failure the
// transaction is rolled back and the execution error is returned to the
// caller with the statement logged, credentials masked.
func (s *Store) copyInto(ctx context.Context, tableID dialect.TableIdentifier, s3URI string, settings dialect.CopySettings) error {
	copyStmt := s.dialect().BuildCopyStatement(tableID, s3URI, settings)
	slog.Info("Loading the staged file", slog.String("statement", s.maskStatement(copyStmt)))

	tx, err := s.Begin()
	if err != nil {
		return fmt.Errorf("failed to start a transaction: %w", err)
	}

	if _, err = tx.ExecContext(ctx, copyStmt); err != nil {
		slog.Error("Failed to run COPY", slog.String("statement", s.maskStatement(copyStmt)), slog.Any("err", err))
		if rollbackErr := tx.Rollback(); rollbackErr != nil {
			slog.Warn("Unable to rollback", slog.Any("err", rollbackErr))
		}

		return fmt.Errorf("failed to run COPY: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit COPY: %w", err)
	}

	return nil
}

func (s *Store) maskStatement(statement string) string {
	if s.config.Redshift.UnmaskCredentials {
		return statement
	}

	return redact.MaskCredentials(statement)
}
