// cmd/seed/main.go
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"

	"opic_practice_portal/internal/catalog"
	"opic_practice_portal/internal/config"
	"opic_practice_portal/internal/logging"
	"opic_practice_portal/internal/repository"
)

func main() {
	configPath := flag.String("config", "./configs", "directory containing config.yaml")
	workbook := flag.String("workbook", "", "path to the question catalog workbook (.xlsx)")
	language := flag.String("language", "", "catalog language (defaults to app.target_language)")
	flag.Parse()

	tempLogger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(tempLogger)
	log.Println("Log Config Loading...")

	if err := config.LoadConfig(*configPath); err != nil {
		slog.Error("Error loading configuration", slog.Any("error", err))
		os.Exit(1)
	}

	logger := logging.NewLogger(config.Cfg.Log)
	slog.SetDefault(logger)

	if *workbook == "" {
		slog.Error("Missing required -workbook flag")
		flag.Usage()
		os.Exit(2)
	}
	lang := *language
	if lang == "" {
		lang = config.Cfg.App.TargetLanguage
	}

	db, err := repository.NewDB(config.Cfg.Database.URL, logger)
	if err != nil {
		slog.Error("Error initializing database", slog.Any("error", err))
		os.Exit(1)
	}
	sqlDB, err := db.DB()
	if err != nil {
		slog.Error("Error getting underlying sql.DB from GORM", slog.Any("error", err))
		os.Exit(1)
	}
	defer sqlDB.Close()

	if err := repository.AutoMigrate(db); err != nil {
		slog.Error("Error migrating database schema", slog.Any("error", err))
		os.Exit(1)
	}

	ctx := logging.NewContext(context.Background(), logger)
	questionRepo := repository.NewGormQuestionRepository()
	importer := catalog.NewImporter(db, questionRepo, lang)

	stats, err := importer.ImportWorkbook(ctx, *workbook)
	if err != nil {
		slog.Error("Import failed", slog.Any("error", err))
		os.Exit(1)
	}

	total, err := questionRepo.CountAll(ctx, db)
	if err != nil {
		slog.Error("Error counting questions", slog.Any("error", err))
		os.Exit(1)
	}
	slog.Info("Seed complete",
		slog.Int("created", stats.Created),
		slog.Int("skipped", stats.Skipped),
		slog.Int("invalid", stats.Invalid),
		slog.Int64("catalog_total", total),
	)
}
