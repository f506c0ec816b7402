package redshift

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/stevedore-data/stevedore/clients/redshift/dialect"
	"github.com/stevedore-data/stevedore/lib/awslib"
	"github.com/stevedore-data/stevedore/lib/frame"
)

// PutArgs carries the per-load options for [Store.Put]. The zero value
// replaces the table, uses a comma delimiter with double-quote quoting and
// lets Redshift parse date and time values on its own.
type PutArgs struct {
	// Append keeps the existing table and schema so rows land on top of
	// whatever is already there.
	Append bool
	// IncludeIndex writes the row index as the leading column.
	IncludeIndex bool
	// SaveLocal also writes the staged file to the working directory.
	SaveLocal bool

	// ColumnTypes overrides type inference positionally. When IncludeIndex is
	// set, the first entry covers the index column.
	ColumnTypes []string

	Delimiter  string
	Quote      string
	DateFormat string
	TimeFormat string

	Diststyle       string
	Distkey         string
	SortInterleaved bool
	Sortkey         string

	// Region is only needed when the staging bucket lives in a different
	// region than the cluster.
	Region string
	// ExtraParameters is appended verbatim to the COPY statement.
	ExtraParameters string

	S3PutOptions awslib.PutOptions
}

// Put stages f to S3 and bulk-loads it into table. Unless appending, the
// table is dropped and recreated first. The whole call is a single attempt,
// retry policy belongs to the caller.
func (s *Store) Put(ctx context.Context, table string, f *frame.Frame, args PutArgs) error {
	if s.config.S3 == nil || s.uploader == nil {
		return ErrNoStagingConfig
	}

	start := time.Now()
	tags := map[string]string{
		"what":  "success",
		"table": table,
	}
	defer func() {
		s.metricsClient.Timing("put", time.Since(start), tags)
	}()

	if _, err := ValidateColumns(f); err != nil {
		tags["what"] = "validate_fail"
		return err
	}

	tableID := s.identifierFor(table)
	s3URI, err := s.stageFrame(ctx, f, stageArgs{
		FileName:     fmt.Sprintf("%s-%s.csv", tableID.Table(), uuid.New().String()),
		IncludeIndex: args.IncludeIndex,
		SaveLocal:    args.SaveLocal,
		Delimiter:    args.Delimiter,
		PutOptions:   args.S3PutOptions,
	})
	if err != nil {
		tags["what"] = "staging_fail"
		return err
	}

	if !args.Append {
		colSQLParts, err := s.columnSQLParts(f, args.IncludeIndex, args.ColumnTypes)
		if err != nil {
			tags["what"] = "provision_fail"
			return err
		}

		if err = s.provisionTable(ctx, tableID, colSQLParts, dialect.TableSettings{
			Diststyle:       args.Diststyle,
			Distkey:         args.Distkey,
			SortInterleaved: args.SortInterleaved,
			Sortkey:         args.Sortkey,
		}); err != nil {
			tags["what"] = "provision_fail"
			return err
		}
	}

	if err = s.copyInto(ctx, tableID, s3URI, dialect.CopySettings{
		Delimiter:       args.Delimiter,
		Quote:           args.Quote,
		DateFormat:      args.DateFormat,
		TimeFormat:      args.TimeFormat,
		AccessKeyID:     s.config.S3.AwsAccessKeyID,
		SecretAccessKey: s.config.S3.AwsSecretAccessKey,
		SessionToken:    s.config.S3.AwsSessionToken,
		IamRole:         s.config.S3.IamRole,
		ExtraParameters: args.ExtraParameters,
		Region:          args.Region,
	}); err != nil {
		tags["what"] = "copy_fail"
		return err
	}

	s.metricsClient.Count("put.rows", int64(f.NumRows()), tags)
	return nil
}
