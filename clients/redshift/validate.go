package redshift

import (
	"strings"

	"github.com/stevedore-data/stevedore/clients/redshift/dialect"
	"github.com/stevedore-data/stevedore/lib/frame"
)

// ValidateColumns rewrites f's column names in place so every name is a legal
// Redshift identifier. Names are lower-cased first, then checked against the
// reserved word list and then quoted if they contain whitespace. The frame is
// returned for chaining.
//
// If a reserved word is found, the lower-casing already applied to f is not
// rolled back.
func ValidateColumns(f *frame.Frame) (*frame.Frame, error) {
	_dialect := dialect.RedshiftDialect{}
	for idx, name := range f.ColumnNames() {
		f.SetColumnName(idx, strings.ToLower(name))
	}

	for _, name := range f.ColumnNames() {
		if _dialect.IsReservedWord(name) {
			return nil, NameConflictError{Column: name}
		}
	}

	for idx, name := range f.ColumnNames() {
		f.SetColumnName(idx, _dialect.QuoteIdentifier(name))
	}

	return f, nil
}
