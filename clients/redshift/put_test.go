package redshift

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"

	"github.com/stevedore-data/stevedore/clients/redshift/dialect"
	"github.com/stevedore-data/stevedore/lib/config"
	"github.com/stevedore-data/stevedore/lib/telemetry/metrics"
)

func putStore(t *testing.T, uploader *fakeUploader) (*Store, sqlmock.Sqlmock) {
	mockDB, mock, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })

	store := &Store{
		config: config.Config{
			Redshift: &config.Redshift{Schema: "public"},
			S3: &config.S3Settings{
				Bucket:             "warehouse-staging",
				Subdirectory:       "stage/",
				AwsAccessKeyID:     "AKIAEXAMPLE",
				AwsSecretAccessKey: "super-secret",
			},
		},
		uploader:      uploader,
		metricsClient: metrics.NullMetricsProvider{},
		Store:         mockDB,
	}

	return store, mock
}

// The staged key embeds a random id, so the COPY expectation needs a pattern.
func copyPattern() string {
	return regexp.QuoteMeta(`COPY public.users FROM 's3://warehouse-staging/stage/users-`) +
		`[0-9a-f-]{36}` +
		regexp.QuoteMeta(`.csv' DELIMITER ',' IGNOREHEADER 1 CSV QUOTE AS '"' DATEFORMAT 'auto' TIMEFORMAT 'auto' ACCESS_KEY_ID 'AKIAEXAMPLE' SECRET_ACCESS_KEY 'super-secret'`)
}

func TestStorePut(t *testing.T) {
	{
		// No staging config
		store := &Store{config: config.Config{Redshift: &config.Redshift{Schema: "public"}}}
		assert.ErrorIs(t, store.Put(context.Background(), "users", usersFrame(t), PutArgs{}), ErrNoStagingConfig)
	}
	{
		// Replace: stage, drop and recreate, then COPY
		uploader := &fakeUploader{}
		store, mock := putStore(t, uploader)

		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta(`DROP TABLE IF EXISTS public.users`)).WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectExec(regexp.QuoteMeta(`CREATE TABLE public.users (name VARCHAR(256), age BIGINT) DISTSTYLE EVEN`)).WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectCommit()
		mock.ExpectBegin()
		mock.ExpectExec(copyPattern()).WillReturnResult(sqlmock.NewResult(0, 2))
		mock.ExpectCommit()

		assert.NoError(t, store.Put(context.Background(), "users", usersFrame(t), PutArgs{}))
		assert.Regexp(t, `^stage/users-[0-9a-f-]{36}\.csv$`, uploader.key)
		assert.Equal(t, "name,age\nbob,42\nalice,29\n", string(uploader.body))
		assert.NoError(t, mock.ExpectationsWereMet())
	}
	{
		// Append skips provisioning
		uploader := &fakeUploader{}
		store, mock := putStore(t, uploader)

		mock.ExpectBegin()
		mock.ExpectExec(copyPattern()).WillReturnResult(sqlmock.NewResult(0, 2))
		mock.ExpectCommit()

		assert.NoError(t, store.Put(context.Background(), "users", usersFrame(t), PutArgs{Append: true}))
		assert.NoError(t, mock.ExpectationsWereMet())
	}
	{
		// A reserved column name stops the call before anything is staged
		uploader := &fakeUploader{}
		store, mock := putStore(t, uploader)

		var nameConflictErr NameConflictError
		err := store.Put(context.Background(), "users", buildFrame("select"), PutArgs{})
		assert.ErrorAs(t, err, &nameConflictErr)
		assert.Empty(t, uploader.key)
		assert.NoError(t, mock.ExpectationsWereMet())
	}
	{
		// An invalid diststyle fails after staging, before any statement
		uploader := &fakeUploader{}
		store, mock := putStore(t, uploader)

		err := store.Put(context.Background(), "users", usersFrame(t), PutArgs{Diststyle: "key"})
		assert.ErrorIs(t, err, dialect.ErrInvalidDiststyle)
		assert.NotEmpty(t, uploader.key)
		assert.NoError(t, mock.ExpectationsWereMet())
	}
}
