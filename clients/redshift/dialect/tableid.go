package dialect

import (
	"fmt"
	"strings"
)

var _dialect = RedshiftDialect{}

type TableIdentifier struct {
	schema string
	table  string
}

func NewTableIdentifier(schema, table string) TableIdentifier {
	return TableIdentifier{schema: schema, table: table}
}

// ParseTableIdentifier splits a possibly schema-qualified name, falling back to
// defaultSchema when the name is bare.
func ParseTableIdentifier(defaultSchema, name string) TableIdentifier {
	if schema, table, found := strings.Cut(name, "."); found {
		return NewTableIdentifier(schema, table)
	}

	return NewTableIdentifier(defaultSchema, name)
}

func (ti TableIdentifier) Schema() string {
	return ti.schema
}

func (ti TableIdentifier) Table() string {
	return ti.table
}

func (ti TableIdentifier) EscapedTable() string {
	return _dialect.QuoteIdentifier(ti.table)
}

func (ti TableIdentifier) FullyQualifiedName() string {
	// The database is fixed when the connection is established, so schema and table are enough.
	return fmt.Sprintf("%s.%s", ti.schema, ti.EscapedTable())
}
