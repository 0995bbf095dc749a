package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	swimdeck "github.com/claude/swimdeck"
	"github.com/claude/swimdeck/internal/config"
	"github.com/claude/swimdeck/internal/importer"
	"github.com/claude/swimdeck/internal/storage"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	workoutPath := flag.String("path", "", "path to workout file directory (required)")
	dryRun := flag.Bool("dry-run", false, "report counts without inserting into database")
	flag.Parse()

	log := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	if *workoutPath == "" {
		fmt.Fprintf(os.Stderr, "Usage: swimdeck-import -config config.yaml -path /path/to/workouts [-dry-run]\n")
		flag.PrintDefaults()
		os.Exit(1)
	}

	// Verify workout directory exists
	info, err := os.Stat(*workoutPath)
	if err != nil || !info.IsDir() {
		log.Error("workout path does not exist or is not a directory", "path", *workoutPath)
		os.Exit(1)
	}

	// Load config
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	dsn := cfg.Database.DSN()

	// Run migrations
	if err := storage.RunMigrations(dsn, swimdeck.MigrationsFS); err != nil {
		log.Error("migration failed", "error", err)
		os.Exit(1)
	}
	log.Info("migrations applied")

	ctx := context.Background()

	if *dryRun {
		log.Info("DRY RUN mode — no data will be written to the database")
	}

	// Connect database
	db, err := storage.New(ctx, dsn)
	if err != nil {
		log.Error("failed to connect database", "error", err)
		os.Exit(1)
	}
	defer db.Close()
	log.Info("database connected")

	// Run import
	imp := importer.New(db, log, *dryRun)
	stats, err := imp.Import(ctx, *workoutPath)
	if err != nil {
		log.Error("import failed", "error", err)
		printStats(log, stats)
		os.Exit(1)
	}

	printStats(log, stats)
	log.Info("import complete")
}

func printStats(log *slog.Logger, stats *importer.Stats) {
	log.Info("import stats",
		"files_processed", stats.FilesProcessed,
		"files_skipped", stats.FilesSkipped,
		"files_errored", stats.FilesErrored,
		"templates_inserted", stats.TemplatesInserted,
		"parse_warnings", stats.ParseWarnings,
	)
}
