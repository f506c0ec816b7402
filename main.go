package main

import (
	"context"
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/getsentry/sentry-go"

	"github.com/stevedore-data/stevedore/clients/redshift"
	"github.com/stevedore-data/stevedore/lib/awslib"
	"github.com/stevedore-data/stevedore/lib/config"
	"github.com/stevedore-data/stevedore/lib/csvwriter"
	"github.com/stevedore-data/stevedore/lib/frame"
	"github.com/stevedore-data/stevedore/lib/logger"
	"github.com/stevedore-data/stevedore/lib/telemetry/metrics"
)

func main() {
	settings, err := config.LoadSettings(os.Args, true)
	if err != nil {
		logger.Fatal("Failed to initialize config", slog.Any("err", err))
	}

	_logger, usingSentry := logger.NewLogger(settings)
	slog.SetDefault(_logger)
	if usingSentry {
		defer sentry.Flush(2 * time.Second)
		slog.Info("Sentry logger enabled")
	}

	ctx := context.Background()
	metricsClient := metrics.LoadExporter(settings.Config)

	err = redshift.WithStore(ctx, settings.Config, metricsClient, func(store *redshift.Store) error {
		switch {
		case settings.PutFile != "":
			if settings.Table == "" {
				return fmt.Errorf("--put requires --table")
			}

			return putFile(ctx, store, settings)
		case settings.LoadTable != "":
			return loadTable(ctx, store, settings.LoadTable)
		default:
			return fmt.Errorf("nothing to do, pass --put with --table, or --load")
		}
	})
	if err != nil {
		logger.Fatal("Run failed", slog.Any("err", err))
	}
}

func putFile(ctx context.Context, store *redshift.Store, settings *config.Settings) error {
	file, err := os.Open(settings.PutFile)
	if err != nil {
		return fmt.Errorf("failed to open %q: %w", settings.PutFile, err)
	}

	defer file.Close()

	records, err := csv.NewReader(file).ReadAll()
	if err != nil {
		return fmt.Errorf("failed to read %q: %w", settings.PutFile, err)
	}

	f, err := frame.FromRecords(records)
	if err != nil {
		return err
	}

	args := redshift.PutArgs{Append: settings.Append}
	if s3Settings := settings.Config.S3; s3Settings != nil {
		args.S3PutOptions = awslib.PutOptionsFromMap(s3Settings.PutOptions)
	}

	if err = store.Put(ctx, settings.Table, f, args); err != nil {
		return err
	}

	slog.Info("Loaded the file",
		slog.String("table", settings.Table),
		slog.Int("numRows", f.NumRows()),
	)
	return nil
}

func loadTable(ctx context.Context, store *redshift.Store, table string) error {
	f, err := store.Load(ctx, table)
	if err != nil {
		return err
	}

	return f.WriteDelimited(csvwriter.New(os.Stdout, ','), false)
}
