package typing

import (
	"fmt"
	"strings"
	"time"
)

var supportedDateTimeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02 15:04:05.999999",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseDateTime parses a string against the layouts Redshift's auto date and time formats accept.
func ParseDateTime(value string) (time.Time, error) {
	for _, layout := range supportedDateTimeLayouts {
		if ts, err := time.Parse(layout, value); err == nil {
			return ts, nil
		}
	}

	return time.Time{}, fmt.Errorf("unsupported value: %q", value)
}

// KindForValue infers the kind of a single value. Strings that look like timestamps
// are probed against the supported layouts so date-shaped text lands in a timestamp column.
func KindForValue(val any) KindDetails {
	if val == nil {
		return Invalid
	}

	switch convertedVal := val.(type) {
	case float32, float64:
		return Float
	case int8, int16, int32, uint8, uint16, uint32:
		return BuildIntegerKind(IntegerKind)
	case int, int64, uint, uint64:
		return BuildIntegerKind(BigIntegerKind)
	case bool:
		return Boolean
	case time.Time:
		return Timestamp
	case string:
		if strings.Contains(convertedVal, ":") || strings.Contains(convertedVal, "-") {
			if _, err := ParseDateTime(convertedVal); err == nil {
				return Timestamp
			}
		}

		return String
	default:
		return String
	}
}
