package dialect

import (
	"cmp"
	"errors"
	"fmt"
	"strings"
)

var ErrInvalidDiststyle = errors.New("diststyle must be either even or all")

// TableSettings shape the physical layout of a created table.
type TableSettings struct {
	// Diststyle must be even or all, defaulting to even. It is ignored when Distkey is set.
	Diststyle string
	Distkey   string
	// SortInterleaved prefixes the sortkey with INTERLEAVED.
	SortInterleaved bool
	Sortkey         string
}

// BuildCreateTableQuery returns the CREATE TABLE statement for the column definitions
// and layout settings. An unusable diststyle fails here, before anything executes.
func (RedshiftDialect) BuildCreateTableQuery(tableID TableIdentifier, colSQLParts []string, settings TableSettings) (string, error) {
	query := fmt.Sprintf("CREATE TABLE %s (%s)", tableID.FullyQualifiedName(), strings.Join(colSQLParts, ", "))

	if settings.Distkey != "" {
		query += fmt.Sprintf(" DISTKEY(%s)", settings.Distkey)
	} else {
		diststyle := strings.ToLower(cmp.Or(settings.Diststyle, "even"))
		if diststyle != "even" && diststyle != "all" {
			return "", fmt.Errorf("%w, got: %q", ErrInvalidDiststyle, settings.Diststyle)
		}

		query += fmt.Sprintf(" DISTSTYLE %s", strings.ToUpper(diststyle))
	}

	if settings.Sortkey != "" {
		if settings.SortInterleaved {
			query += " INTERLEAVED"
		}

		query += fmt.Sprintf(" SORTKEY(%s)", settings.Sortkey)
	}

	return query, nil
}

func (RedshiftDialect) BuildDropTableQuery(tableID TableIdentifier) string {
	return "DROP TABLE IF EXISTS " + tableID.FullyQualifiedName()
}
