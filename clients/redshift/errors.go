package redshift

import (
	"errors"
	"fmt"
)

// ErrNoStagingConfig is returned by [Store.Put] when no S3 settings were
// provided, since there is nowhere to stage the data.
var ErrNoStagingConfig = errors.New("s3 settings are required to stage data")

// NameConflictError is returned when a column name collides with a Redshift
// reserved word.
type NameConflictError struct {
	Column string
}

func (n NameConflictError) Error() string {
	return fmt.Sprintf("column %q is a reserved word", n.Column)
}
