package values

import (
	"fmt"
	"time"

	"github.com/stevedore-data/stevedore/lib/typing"
)

// ToString casts a value into the text form it should take in a staged delimited file.
// The zero-value string is returned for errors, so callers must check the error.
func ToString(colVal any, colKind typing.KindDetails) (string, error) {
	if colVal == nil {
		return "", fmt.Errorf("colVal is nil")
	}

	switch colKind.Kind {
	case typing.Timestamp.Kind:
		switch extractedVal := colVal.(type) {
		case time.Time:
			return extractedVal.Format("2006-01-02 15:04:05.999999"), nil
		case string:
			ts, err := typing.ParseDateTime(extractedVal)
			if err != nil {
				return "", fmt.Errorf("failed to cast %q as a timestamp: %w", extractedVal, err)
			}

			return ts.Format("2006-01-02 15:04:05.999999"), nil
		default:
			return "", fmt.Errorf("unexpected type %T for a timestamp column", colVal)
		}
	default:
		return fmt.Sprint(colVal), nil
	}
}
