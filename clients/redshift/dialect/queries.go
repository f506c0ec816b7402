package dialect

func (RedshiftDialect) BuildSelectAllQuery(tableID TableIdentifier) string {
	return "SELECT * FROM " + tableID.FullyQualifiedName()
}

func (RedshiftDialect) BuildTableExistsQuery(tableID TableIdentifier) (string, []any) {
	query := `SELECT EXISTS (SELECT 1 FROM information_schema.tables WHERE LOWER(table_schema) = LOWER($1) AND LOWER(table_name) = LOWER($2))`
	return query, []any{tableID.Schema(), tableID.Table()}
}
