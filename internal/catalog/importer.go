// internal/catalog/importer.go
package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"

	"opic_practice_portal/internal/logging"
	"opic_practice_portal/internal/model"
	"opic_practice_portal/internal/repository"
)

// ImportStats summarizes one workbook import run.
type ImportStats struct {
	Created int
	Skipped int
	Invalid int
}

// Importer loads question catalogs from Excel workbooks. Each sheet is
// named after a topic; rows hold level and question text.
type Importer struct {
	db           *gorm.DB
	questionRepo repository.QuestionRepository
	language     string
}

func NewImporter(db *gorm.DB, questionRepo repository.QuestionRepository, language string) *Importer {
	return &Importer{
		db:           db,
		questionRepo: questionRepo,
		language:     language,
	}
}

// ImportWorkbook reads every sheet of the workbook at path and inserts
// the questions it does not already have. Existing topic+text pairs are
// skipped, so re-running an import is safe.
func (im *Importer) ImportWorkbook(ctx context.Context, path string) (*ImportStats, error) {
	logger := logging.GetLogger(ctx)

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("catalog.ImportWorkbook: open %s: %w", path, err)
	}
	defer f.Close()

	stats := &ImportStats{}
	for _, sheet := range f.GetSheetList() {
		rows, err := f.GetRows(sheet)
		if err != nil {
			return nil, fmt.Errorf("catalog.ImportWorkbook: sheet %s: %w", sheet, err)
		}
		if err := im.importSheet(ctx, sheet, rows, stats); err != nil {
			return nil, err
		}
	}

	logger.Info("Workbook imported",
		"path", path,
		"created", stats.Created,
		"skipped", stats.Skipped,
		"invalid", stats.Invalid,
	)
	return stats, nil
}

// importSheet expects a header row followed by rows of [level, text].
func (im *Importer) importSheet(ctx context.Context, topic string, rows [][]string, stats *ImportStats) error {
	logger := logging.GetLogger(ctx).With("topic", topic)

	for i, row := range rows {
		if i == 0 {
			continue // header
		}
		if len(row) < 2 {
			stats.Invalid++
			continue
		}
		level := strings.TrimSpace(row[0])
		text := strings.TrimSpace(row[1])
		if text == "" || !model.ValidLevel(level) {
			logger.Warn("Skipping invalid catalog row", "row", i+1, "level", level)
			stats.Invalid++
			continue
		}

		_, err := im.questionRepo.FindByTopicText(ctx, im.db, topic, text)
		if err == nil {
			stats.Skipped++
			continue
		}
		if !errors.Is(err, model.ErrNotFound) {
			return fmt.Errorf("catalog.importSheet: lookup: %w", err)
		}

		question := &model.Question{
			QuestionID: uuid.New(),
			Topic:      topic,
			Language:   im.language,
			Level:      model.Level(level),
			Text:       text,
		}
		if err := im.questionRepo.Create(ctx, im.db, question); err != nil {
			return fmt.Errorf("catalog.importSheet: create: %w", err)
		}
		stats.Created++
	}
	return nil
}
