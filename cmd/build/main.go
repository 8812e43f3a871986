package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/Rabelo83/rts-backend.schedules.agent/gtfsdb"
	"github.com/Rabelo83/rts-backend.schedules.agent/internal/appconf"
	"github.com/Rabelo83/rts-backend.schedules.agent/internal/logging"
)

// cmd/build loads a static GTFS feed into the schedule store and builds the
// auxiliary indexes. Run once per schedule version; the answering side only
// ever reads the result.
func main() {
	_ = godotenv.Load()

	var source, dbPath, exportPath string
	var validate, verbose bool

	flag.StringVar(&source, "gtfs", os.Getenv("GTFS_SOURCE"), "GTFS zip file path or URL")
	flag.StringVar(&dbPath, "db", envOrDefault("SCHEDULE_DB", "schedule.sqlite"), "Path to the schedule SQLite database")
	flag.StringVar(&exportPath, "export-stops", "", "Write a stops summary CSV to this path after import")
	flag.BoolVar(&validate, "validate", false, "Validate the store after import")
	flag.BoolVar(&verbose, "verbose", false, "Verbose import logging")
	flag.Parse()

	logger := logging.NewStructuredLogger(os.Stdout, slog.LevelInfo)

	if source == "" {
		logger.Error("no GTFS source given, use -gtfs")
		os.Exit(1)
	}

	store, err := gtfsdb.NewClient(gtfsdb.NewConfig(dbPath, appconf.Development, verbose))
	if err != nil {
		logger.Error("failed to create schedule store", "error", err)
		os.Exit(1)
	}
	defer logging.SafeCloseWithLogging(store, logger, "schedule_store")

	ctx := context.Background()

	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		err = store.DownloadAndStore(ctx, source)
	} else {
		err = store.ImportFromFile(ctx, source)
	}
	if err != nil {
		logger.Error("import failed", "error", err)
		os.Exit(1)
	}
	logger.Info("import complete", "db", dbPath)

	if validate {
		report, err := store.Validate(ctx)
		if err != nil {
			logger.Error("validation failed", "error", err)
			os.Exit(1)
		}
		for table, count := range report.TableCounts {
			logger.Info("table", "name", table, "rows", count)
		}
		logger.Info("validation",
			"orphaned_stop_times", report.OrphanedStopTimes,
			"uncovered_trips", report.UncoveredTrips,
			"unindexed_stops", report.UnindexedStops,
			"ok", report.OK(),
		)
		if !report.OK() {
			os.Exit(1)
		}
	}

	if exportPath != "" {
		f, err := os.Create(exportPath)
		if err != nil {
			logger.Error("failed to create export file", "error", err)
			os.Exit(1)
		}
		defer logging.SafeCloseWithLogging(f, logger, "stops_export")

		if err := store.ExportStopsSummary(ctx, f); err != nil {
			logger.Error("export failed", "error", err)
			os.Exit(1)
		}
		logger.Info("stops summary written", "path", exportPath)
	}
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
