package redshift

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/stevedore-data/stevedore/clients/redshift/dialect"
	"github.com/stevedore-data/stevedore/lib/awslib"
	"github.com/stevedore-data/stevedore/lib/config"
	"github.com/stevedore-data/stevedore/lib/db"
	"github.com/stevedore-data/stevedore/lib/telemetry/metrics/base"
)

// Store owns one warehouse connection and at most one S3 client. It is not
// safe for concurrent use without external serialization.
type Store struct {
	config        config.Config
	uploader      uploader
	metricsClient base.Client

	db.Store
}

func (s *Store) dialect() dialect.RedshiftDialect {
	return dialect.RedshiftDialect{}
}

func (s *Store) identifierFor(table string) dialect.TableIdentifier {
	return dialect.ParseTableIdentifier(s.config.Redshift.Schema, table)
}

// LoadStore connects to Redshift and, if S3 settings are present, builds the
// staging client as well.
func LoadStore(ctx context.Context, cfg config.Config, metricsClient base.Client) (*Store, error) {
	store, err := db.Open(ctx, cfg.Redshift.DSN())
	if err != nil {
		return nil, err
	}

	s := &Store{
		config:        cfg,
		metricsClient: metricsClient,
		Store:         store,
	}

	if cfg.S3 != nil {
		awsCfg, err := awslib.BuildConfig(ctx, cfg.S3)
		if err != nil {
			_ = store.Close()
			return nil, fmt.Errorf("failed to build the staging client: %w", err)
		}

		s.uploader = awslib.NewS3Client(awsCfg)
	}

	return s, nil
}

// Close releases the underlying connection. Calling it more than once is a no-op.
func (s *Store) Close() error {
	if s.Store == nil {
		return nil
	}

	err := s.Store.Close()
	s.Store = nil
	return err
}

// WithStore opens a store, invokes fn with it and closes the store on every
// exit path. fn's error is returned to the caller after cleanup.
func WithStore(ctx context.Context, cfg config.Config, metricsClient base.Client, fn func(*Store) error) error {
	store, err := LoadStore(ctx, cfg, metricsClient)
	if err != nil {
		return err
	}

	return withStore(store, fn)
}

func withStore(store *Store, fn func(*Store) error) error {
	defer func() {
		if closeErr := store.Close(); closeErr != nil {
			slog.Warn("Failed to close the store", slog.Any("err", closeErr))
		}
	}()

	return fn(store)
}
