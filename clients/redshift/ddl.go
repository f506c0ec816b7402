package redshift

import (
	"context"
	"fmt"

	"github.com/stevedore-data/stevedore/clients/redshift/dialect"
	"github.com/stevedore-data/stevedore/lib/db"
	"github.com/stevedore-data/stevedore/lib/frame"
	"github.com/stevedore-data/stevedore/lib/typing"
)

// columnSQLParts pairs every column with its warehouse type. An explicit
// columnTypes list overrides inference positionally and must cover the index
// column too when one is requested.
func (s *Store) columnSQLParts(f *frame.Frame, includeIndex bool, columnTypes []string) ([]string, error) {
	names := f.ColumnNames()
	if includeIndex {
		names = append([]string{f.IndexName()}, names...)
	}

	if len(columnTypes) == 0 {
		columnTypes = s.columnDataTypes(f, includeIndex)
	}

	if len(columnTypes) != len(names) {
		return nil, fmt.Errorf("received %d column types, expected %d", len(columnTypes), len(names))
	}

	parts := make([]string, len(names))
	for idx, name := range names {
		parts[idx] = fmt.Sprintf("%s %s", name, columnTypes[idx])
	}

	return parts, nil
}

func (s *Store) columnDataTypes(f *frame.Frame, includeIndex bool) []string {
	var dataTypes []string
	if includeIndex {
		// The index is ordinal, so it's always a BIGINT.
		dataTypes = append(dataTypes, s.dialect().DataTypeForKind(typing.BuildIntegerKind(typing.BigIntegerKind)))
	}

	for _, col := range f.Columns() {
		dataTypes = append(dataTypes, s.dialect().DataTypeForKind(col.Kind))
	}

	return dataTypes
}

// provisionTable drops and recreates the target table, committing both
// statements together.
func (s *Store) provisionTable(ctx context.Context, tableID dialect.TableIdentifier, colSQLParts []string, settings dialect.TableSettings) error {
	createQuery, err := s.dialect().BuildCreateTableQuery(tableID, colSQLParts, settings)
	if err != nil {
		return err
	}

	return db.ExecStatements(ctx, s.Store, []string{
		s.dialect().BuildDropTableQuery(tableID),
		createQuery,
	})
}
