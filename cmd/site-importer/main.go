// Разовый загрузчик каталога: читает CSV и наполняет таблицу cultural_sites.
//
// Использование: CONFIG_PATH=./config/local.yaml site-importer <path-to-csv>
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/edakaya/heritage-api/internal/config"
	"github.com/edakaya/heritage-api/internal/importer"
	"github.com/edakaya/heritage-api/internal/lib/sl"
	"github.com/edakaya/heritage-api/internal/migrations"
	"github.com/edakaya/heritage-api/internal/storage/repository"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	if len(os.Args) < 2 {
		logger.Error("usage: site-importer <path-to-csv>")
		os.Exit(1)
	}
	csvPath := os.Args[1]

	cfg := config.MustLoad()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := repository.New(cfg.StorageConnectionString)
	if err != nil {
		logger.Error("failed to connect to storage", sl.Err(err))
		os.Exit(1)
	}
	defer db.DB.Close()

	if err := migrations.Run(db.DB, cfg.MigrationsPath); err != nil {
		logger.Error("failed to run migrations", sl.Err(err))
		os.Exit(1)
	}

	file, err := os.Open(csvPath)
	if err != nil {
		logger.Error("failed to open csv file", slog.String("path", csvPath), sl.Err(err))
		os.Exit(1)
	}
	defer file.Close()

	logger.Info("import started", slog.String("path", csvPath))

	stats, err := importer.Run(ctx, logger, db, file)
	if err != nil {
		logger.Error("import failed", sl.Err(err))
		os.Exit(1)
	}

	logger.Info("import finished",
		slog.Int("created", stats.Created),
		slog.Int("skipped", stats.Skipped),
		slog.Int("errors", stats.Errors))
}
