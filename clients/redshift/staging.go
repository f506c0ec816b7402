package redshift

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/stevedore-data/stevedore/lib/awslib"
	"github.com/stevedore-data/stevedore/lib/config/constants"
	"github.com/stevedore-data/stevedore/lib/csvwriter"
	"github.com/stevedore-data/stevedore/lib/frame"
)

// uploader is satisfied by [awslib.S3Client].
type uploader interface {
	UploadBytes(ctx context.Context, bucket string, key string, body []byte, opts awslib.PutOptions) (string, error)
}

type stageArgs struct {
	FileName     string
	IncludeIndex bool
	SaveLocal    bool
	Delimiter    string
	PutOptions   awslib.PutOptions
}

// stageFrame serializes f as delimited text and uploads it to the configured
// bucket under <subdirectory><fileName>. The local copy, if requested, is
// written from the same buffer so both copies are byte-identical. Returns the
// staged object's S3 URI.
func (s *Store) stageFrame(ctx context.Context, f *frame.Frame, args stageArgs) (string, error) {
	var buf bytes.Buffer
	writer := csvwriter.New(&buf, delimiterRune(args.Delimiter))
	if err := f.WriteDelimited(writer, args.IncludeIndex); err != nil {
		return "", fmt.Errorf("failed to serialize rows: %w", err)
	}

	if args.SaveLocal {
		if err := os.WriteFile(args.FileName, buf.Bytes(), 0o644); err != nil {
			return "", fmt.Errorf("failed to save a local copy: %w", err)
		}

		slog.Info("Saved a local copy", slog.String("filePath", args.FileName))
	}

	key := s.config.S3.Subdirectory + args.FileName
	s3URI, err := s.uploader.UploadBytes(ctx, s.config.S3.Bucket, key, buf.Bytes(), args.PutOptions)
	if err != nil {
		return "", fmt.Errorf("failed to stage %q: %w", key, err)
	}

	slog.Info("Staged the file", slog.String("s3URI", s3URI), slog.Int("numRows", f.NumRows()))
	return s3URI, nil
}

func delimiterRune(delimiter string) rune {
	if delimiter == "" {
		delimiter = constants.DefaultDelimiter
	}

	return []rune(delimiter)[0]
}
