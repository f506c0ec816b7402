package values

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/stevedore-data/stevedore/lib/typing"
)

func TestToString(t *testing.T) {
	{
		// Nil
		_, err := ToString(nil, typing.String)
		assert.ErrorContains(t, err, "colVal is nil")
	}
	{
		// Timestamps
		value, err := ToString(time.Date(2023, time.September, 12, 14, 3, 57, 123456000, time.UTC), typing.Timestamp)
		assert.NoError(t, err)
		assert.Equal(t, "2023-09-12 14:03:57.123456", value)

		value, err = ToString("2023-09-12T14:03:57Z", typing.Timestamp)
		assert.NoError(t, err)
		assert.Equal(t, "2023-09-12 14:03:57", value)

		_, err = ToString("not a timestamp", typing.Timestamp)
		assert.ErrorContains(t, err, `failed to cast "not a timestamp" as a timestamp`)

		_, err = ToString(12345, typing.Timestamp)
		assert.ErrorContains(t, err, "unexpected type int for a timestamp column")
	}
	{
		// Integers
		value, err := ToString(int64(42), typing.BuildIntegerKind(typing.BigIntegerKind))
		assert.NoError(t, err)
		assert.Equal(t, "42", value)
	}
	{
		// Floats
		value, err := ToString(7.44, typing.Float)
		assert.NoError(t, err)
		assert.Equal(t, "7.44", value)
	}
	{
		// Booleans
		value, err := ToString(true, typing.Boolean)
		assert.NoError(t, err)
		assert.Equal(t, "true", value)
	}
	{
		// Strings
		value, err := ToString("driver", typing.String)
		assert.NoError(t, err)
		assert.Equal(t, "driver", value)
	}
}
