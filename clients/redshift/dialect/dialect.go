package dialect

import (
	"fmt"
	"regexp"

	"github.com/stevedore-data/stevedore/lib/typing"
)

type RedshiftDialect struct{}

var whitespacePattern = regexp.MustCompile(`\s`)

// QuoteIdentifier wraps an identifier in double quotes when it contains whitespace.
// Redshift lowercases unquoted identifiers, so plain names are left bare and resolve
// to themselves after validation has lowercased them.
func (RedshiftDialect) QuoteIdentifier(identifier string) string {
	if whitespacePattern.MatchString(identifier) {
		return fmt.Sprintf(`"%s"`, identifier)
	}

	return identifier
}

// DataTypeForKind is total: anything we cannot map lands on VARCHAR(256).
func (RedshiftDialect) DataTypeForKind(kd typing.KindDetails) string {
	switch kd.Kind {
	case typing.Integer.Kind:
		if kd.OptionalIntegerKind != nil {
			switch *kd.OptionalIntegerKind {
			case typing.SmallIntegerKind, typing.IntegerKind:
				return "INTEGER"
			}
		}

		// int4 is 2^31, whereas int8 is 2^63.
		// we're using a larger data type to not have an integer overflow.
		return "BIGINT"
	case typing.Float.Kind:
		return "REAL"
	case typing.Timestamp.Kind:
		return "TIMESTAMP"
	case typing.Boolean.Kind:
		return "BOOLEAN"
	default:
		return "VARCHAR(256)"
	}
}
