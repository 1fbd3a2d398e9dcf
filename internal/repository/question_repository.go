//go:generate mockery --name QuestionRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"opic_practice_portal/internal/logging"
	"opic_practice_portal/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// QuestionRepository handles access to the question catalog.
type QuestionRepository interface {
	Create(ctx context.Context, tx *gorm.DB, question *model.Question) error
	FindByID(ctx context.Context, db *gorm.DB, questionID uuid.UUID) (*model.Question, error)
	// FindByTopicLanguage matches the topic either exactly or with an
	// ordinal prefix ("07. Work" matches "Work"), case-insensitively.
	FindByTopicLanguage(ctx context.Context, db *gorm.DB, topic, language string, limit int) ([]*model.Question, error)
	FindByLevelLanguage(ctx context.Context, db *gorm.DB, level model.Level, language string, limit int) ([]*model.Question, error)
	RandomSample(ctx context.Context, db *gorm.DB, level model.Level, language string, limit int) ([]*model.Question, error)
	ListTopics(ctx context.Context, db *gorm.DB, language string) ([]string, error)
	FindByTopicText(ctx context.Context, db *gorm.DB, topic, text string) (*model.Question, error)
	FindMissingAudio(ctx context.Context, db *gorm.DB, language string) ([]*model.Question, error)
	UpdateAudioURL(ctx context.Context, tx *gorm.DB, questionID uuid.UUID, audioURL string) error
	CountAll(ctx context.Context, db *gorm.DB) (int64, error)
}

type gormQuestionRepository struct{}

func NewGormQuestionRepository() QuestionRepository {
	return &gormQuestionRepository{}
}

func (r *gormQuestionRepository) Create(ctx context.Context, tx *gorm.DB, question *model.Question) error {
	logger := logging.GetLogger(ctx)
	result := tx.WithContext(ctx).Create(question)
	if result.Error != nil {
		logger.Error("Error creating question in DB",
			"error", result.Error,
			"topic", question.Topic,
		)
		return fmt.Errorf("gormQuestionRepository.Create: %w", result.Error)
	}
	return nil
}

func (r *gormQuestionRepository) FindByID(ctx context.Context, db *gorm.DB, questionID uuid.UUID) (*model.Question, error) {
	logger := logging.GetLogger(ctx)
	var question model.Question
	result := db.WithContext(ctx).Where("question_id = ?", questionID).First(&question)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding question by ID in DB",
			"error", result.Error,
			"question_id", questionID.String(),
		)
		return nil, fmt.Errorf("gormQuestionRepository.FindByID: %w", result.Error)
	}
	return &question, nil
}

func (r *gormQuestionRepository) FindByTopicLanguage(ctx context.Context, db *gorm.DB, topic, language string, limit int) ([]*model.Question, error) {
	logger := logging.GetLogger(ctx)
	var questions []*model.Question
	// Catalog topics may carry an ordinal prefix ("07. Work") while survey
	// interests do not, so match the suffix form as well.
	query := db.WithContext(ctx).
		Where("language = ?", language).
		Where("LOWER(topic) = LOWER(?) OR LOWER(topic) LIKE LOWER(?)", topic, "%. "+topic)
	if limit > 0 {
		query = query.Limit(limit)
	}
	result := query.Find(&questions)
	if result.Error != nil {
		logger.Error("Error finding questions by topic in DB",
			"error", result.Error,
			"topic", topic,
			"language", language,
		)
		return nil, fmt.Errorf("gormQuestionRepository.FindByTopicLanguage: %w", result.Error)
	}
	return questions, nil
}

func (r *gormQuestionRepository) FindByLevelLanguage(ctx context.Context, db *gorm.DB, level model.Level, language string, limit int) ([]*model.Question, error) {
	logger := logging.GetLogger(ctx)
	var questions []*model.Question
	query := db.WithContext(ctx).Where("level = ? AND language = ?", level, language)
	if limit > 0 {
		query = query.Limit(limit)
	}
	result := query.Find(&questions)
	if result.Error != nil {
		logger.Error("Error finding questions by level in DB",
			"error", result.Error,
			"level", string(level),
			"language", language,
		)
		return nil, fmt.Errorf("gormQuestionRepository.FindByLevelLanguage: %w", result.Error)
	}
	return questions, nil
}

func (r *gormQuestionRepository) RandomSample(ctx context.Context, db *gorm.DB, level model.Level, language string, limit int) ([]*model.Question, error) {
	logger := logging.GetLogger(ctx)
	var questions []*model.Question
	result := db.WithContext(ctx).
		Where("level = ? AND language = ?", level, language).
		Order("RANDOM()").
		Limit(limit).
		Find(&questions)
	if result.Error != nil {
		logger.Error("Error sampling random questions in DB",
			"error", result.Error,
			"level", string(level),
			"language", language,
		)
		return nil, fmt.Errorf("gormQuestionRepository.RandomSample: %w", result.Error)
	}
	return questions, nil
}

func (r *gormQuestionRepository) ListTopics(ctx context.Context, db *gorm.DB, language string) ([]string, error) {
	logger := logging.GetLogger(ctx)
	var topics []string
	result := db.WithContext(ctx).
		Model(&model.Question{}).
		Where("language = ?", language).
		Distinct().
		Pluck("topic", &topics)
	if result.Error != nil {
		logger.Error("Error listing topics in DB",
			"error", result.Error,
			"language", language,
		)
		return nil, fmt.Errorf("gormQuestionRepository.ListTopics: %w", result.Error)
	}
	seen := make(map[string]struct{}, len(topics))
	names := make([]string, 0, len(topics))
	for _, t := range topics {
		name := model.StripTopicPrefix(t)
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

func (r *gormQuestionRepository) FindByTopicText(ctx context.Context, db *gorm.DB, topic, text string) (*model.Question, error) {
	logger := logging.GetLogger(ctx)
	var question model.Question
	result := db.WithContext(ctx).Where("topic = ? AND text = ?", topic, text).First(&question)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding question by topic and text in DB",
			"error", result.Error,
			"topic", topic,
		)
		return nil, fmt.Errorf("gormQuestionRepository.FindByTopicText: %w", result.Error)
	}
	return &question, nil
}

func (r *gormQuestionRepository) FindMissingAudio(ctx context.Context, db *gorm.DB, language string) ([]*model.Question, error) {
	logger := logging.GetLogger(ctx)
	var questions []*model.Question
	result := db.WithContext(ctx).
		Where("language = ?", language).
		Where("audio_url IS NULL OR audio_url = ''").
		Find(&questions)
	if result.Error != nil {
		logger.Error("Error finding questions without audio in DB",
			"error", result.Error,
			"language", language,
		)
		return nil, fmt.Errorf("gormQuestionRepository.FindMissingAudio: %w", result.Error)
	}
	return questions, nil
}

func (r *gormQuestionRepository) UpdateAudioURL(ctx context.Context, tx *gorm.DB, questionID uuid.UUID, audioURL string) error {
	logger := logging.GetLogger(ctx)
	result := tx.WithContext(ctx).
		Model(&model.Question{}).
		Where("question_id = ?", questionID).
		Update("audio_url", audioURL)
	if result.Error != nil {
		logger.Error("Error updating question audio URL in DB",
			"error", result.Error,
			"question_id", questionID.String(),
		)
		return fmt.Errorf("gormQuestionRepository.UpdateAudioURL: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *gormQuestionRepository) CountAll(ctx context.Context, db *gorm.DB) (int64, error) {
	logger := logging.GetLogger(ctx)
	var count int64
	result := db.WithContext(ctx).Model(&model.Question{}).Count(&count)
	if result.Error != nil {
		logger.Error("Error counting questions in DB", "error", result.Error)
		return 0, fmt.Errorf("gormQuestionRepository.CountAll: %w", result.Error)
	}
	return count, nil
}
