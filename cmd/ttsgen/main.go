// cmd/ttsgen/main.go
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"path/filepath"

	"opic_practice_portal/internal/ai"
	"opic_practice_portal/internal/config"
	"opic_practice_portal/internal/logging"
	"opic_practice_portal/internal/repository"
)

// ttsgen backfills question audio: it finds catalog questions without an
// audio URL, synthesizes each one, writes the mp3 under -outdir and
// records the file path on the question.
func main() {
	configPath := flag.String("config", "./configs", "directory containing config.yaml")
	outDir := flag.String("outdir", "./audio", "directory to write generated mp3 files")
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

	lang := *language
	if lang == "" {
		lang = config.Cfg.App.TargetLanguage
	}

	synth, err := ai.NewOpenAIClient(config.Cfg.OpenAI)
	if err != nil {
		slog.Error("Error creating OpenAI client", slog.Any("error", err))
		os.Exit(1)
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

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		slog.Error("Error creating output directory", slog.Any("error", err))
		os.Exit(1)
	}

	ctx := logging.NewContext(context.Background(), logger)
	questionRepo := repository.NewGormQuestionRepository()

	questions, err := questionRepo.FindMissingAudio(ctx, db, lang)
	if err != nil {
		slog.Error("Error finding questions without audio", slog.Any("error", err))
		os.Exit(1)
	}
	slog.Info("Questions pending audio", slog.Int("count", len(questions)))

	generated, failed := 0, 0
	for _, q := range questions {
		audio, err := synth.Synthesize(ctx, q.Text)
		if err != nil {
			slog.Warn("Synthesis failed, skipping question",
				slog.String("question_id", q.QuestionID.String()),
				slog.Any("error", err),
			)
			failed++
			continue
		}

		path := filepath.Join(*outDir, fmt.Sprintf("%s.mp3", q.QuestionID))
		if err := os.WriteFile(path, audio, 0o644); err != nil {
			slog.Error("Error writing audio file", slog.String("path", path), slog.Any("error", err))
			os.Exit(1)
		}
		if err := questionRepo.UpdateAudioURL(ctx, db, q.QuestionID, path); err != nil {
			slog.Error("Error recording audio URL",
				slog.String("question_id", q.QuestionID.String()),
				slog.Any("error", err),
			)
			os.Exit(1)
		}
		generated++
	}

	slog.Info("Audio generation complete", slog.Int("generated", generated), slog.Int("failed", failed))
}
