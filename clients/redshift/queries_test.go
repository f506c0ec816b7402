package redshift

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"

	"github.com/stevedore-data/stevedore/lib/config"
	"github.com/stevedore-data/stevedore/lib/telemetry/metrics"
	"github.com/stevedore-data/stevedore/lib/typing"
)

func queryStore(t *testing.T) (*Store, sqlmock.Sqlmock) {
	mockDB, mock, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })

	return &Store{
		config:        config.Config{Redshift: &config.Redshift{Schema: "public"}},
		metricsClient: metrics.NullMetricsProvider{},
		Store:         mockDB,
	}, mock
}

func TestStoreLoad(t *testing.T) {
	store, mock := queryStore(t)
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM public.users`)).WillReturnRows(
		sqlmock.NewRows([]string{"name", "age"}).
			AddRow("bob", int64(42)).
			AddRow("alice", int64(29)),
	)

	f, err := store.Load(context.Background(), "users")
	assert.NoError(t, err)
	assert.Equal(t, []string{"name", "age"}, f.ColumnNames())
	assert.Equal(t, [][]any{{"bob", int64(42)}, {"alice", int64(29)}}, f.Rows())

	// Kinds are inferred from the returned values.
	assert.Equal(t, typing.String, f.Columns()[0].Kind)
	assert.Equal(t, typing.BuildIntegerKind(typing.BigIntegerKind), f.Columns()[1].Kind)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStoreQueryError(t *testing.T) {
	store, mock := queryStore(t)
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM public.users`)).WillReturnError(assert.AnError)

	_, err := store.Query(context.Background(), `SELECT * FROM public.users`)
	assert.ErrorContains(t, err, "failed to run query")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStoreExists(t *testing.T) {
	existsQuery := `SELECT EXISTS (SELECT 1 FROM information_schema.tables WHERE LOWER(table_schema) = LOWER($1) AND LOWER(table_name) = LOWER($2))`
	{
		store, mock := queryStore(t)
		mock.ExpectQuery(regexp.QuoteMeta(existsQuery)).
			WithArgs("public", "users").
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

		exists, err := store.Exists(context.Background(), "users")
		assert.NoError(t, err)
		assert.True(t, exists)
		assert.NoError(t, mock.ExpectationsWereMet())
	}
	{
		store, mock := queryStore(t)
		mock.ExpectQuery(regexp.QuoteMeta(existsQuery)).
			WithArgs("public", "missing").
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))

		exists, err := store.Exists(context.Background(), "missing")
		assert.NoError(t, err)
		assert.False(t, exists)
		assert.NoError(t, mock.ExpectationsWereMet())
	}
}
