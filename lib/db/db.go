package db

import (
	"context"
	"database/sql"
	"fmt"

	// Redshift speaks the postgres wire protocol.
	_ "github.com/jackc/pgx/v5/stdlib"
)

type Store interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	Begin() (*sql.Tx, error)
	Close() error
}

// Open starts a SQL client and validates the connection with a ping.
// A store that fails the ping is closed and never handed back.
func Open(ctx context.Context, dsn string) (Store, error) {
	database, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to start a SQL client: %w", err)
	}

	if err = database.PingContext(ctx); err != nil {
		_ = database.Close()
		return nil, fmt.Errorf("failed to validate the DB connection: %w", err)
	}

	return database, nil
}
