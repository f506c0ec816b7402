package redshift

import (
	"context"
	"fmt"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"

	"github.com/stevedore-data/stevedore/clients/redshift/dialect"
	"github.com/stevedore-data/stevedore/lib/config"
)

func TestStoreCopyInto(t *testing.T) {
	tableID := dialect.NewTableIdentifier("public", "users")
	s3URI := "s3://warehouse-staging/stage/users-abc.csv"
	copyStmt := fmt.Sprintf(`COPY public.users FROM '%s' DELIMITER ',' IGNOREHEADER 1 CSV QUOTE AS '"' DATEFORMAT 'auto' TIMEFORMAT 'auto' IAM_ROLE 'arn:aws:iam::123:role/loader'`, s3URI)
	settings := dialect.CopySettings{IamRole: "arn:aws:iam::123:role/loader"}

	{
		// Commits on success
		mockDB, mock, err := sqlmock.New()
		assert.NoError(t, err)
		defer mockDB.Close()

		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta(copyStmt)).WillReturnResult(sqlmock.NewResult(0, 2))
		mock.ExpectCommit()

		store := &Store{config: config.Config{Redshift: &config.Redshift{}}, Store: mockDB}
		assert.NoError(t, store.copyInto(context.Background(), tableID, s3URI, settings))
		assert.NoError(t, mock.ExpectationsWereMet())
	}
	{
		// Rolls back and surfaces the original error
		mockDB, mock, err := sqlmock.New()
		assert.NoError(t, err)
		defer mockDB.Close()

		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta(copyStmt)).WillReturnError(fmt.Errorf("S3ServiceException: access denied"))
		mock.ExpectRollback()

		store := &Store{config: config.Config{Redshift: &config.Redshift{}}, Store: mockDB}
		err = store.copyInto(context.Background(), tableID, s3URI, settings)
		assert.ErrorContains(t, err, "failed to run COPY: S3ServiceException: access denied")
		assert.NoError(t, mock.ExpectationsWereMet())
	}
}

func TestStoreMaskStatement(t *testing.T) {
	statement := `COPY public.users FROM 's3://b/k' ACCESS_KEY_ID 'AKIA123' SECRET_ACCESS_KEY 'shh'`
	{
		// Masked by default
		store := &Store{config: config.Config{Redshift: &config.Redshift{}}}
		assert.Equal(t, `COPY public.users FROM 's3://b/k' ACCESS_KEY_ID '********' SECRET_ACCESS_KEY '********'`, store.maskStatement(statement))
	}
	{
		// Opt-out for debugging
		store := &Store{config: config.Config{Redshift: &config.Redshift{UnmaskCredentials: true}}}
		assert.Equal(t, statement, store.maskStatement(statement))
	}
}
