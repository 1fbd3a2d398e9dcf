//go:generate mockery --name SurveyRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"fmt"

	"opic_practice_portal/internal/logging"
	"opic_practice_portal/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SurveyRepository handles persistence of background surveys.
type SurveyRepository interface {
	Create(ctx context.Context, tx *gorm.DB, survey *model.Survey) error
	// FindLatestByUser returns the most recent survey for the user, or
	// model.ErrNotFound when they never submitted one.
	FindLatestByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID) (*model.Survey, error)
	UpdateAnswers(ctx context.Context, tx *gorm.DB, surveyID uuid.UUID, answers []byte) error
}

type gormSurveyRepository struct{}

func NewGormSurveyRepository() SurveyRepository {
	return &gormSurveyRepository{}
}

func (r *gormSurveyRepository) Create(ctx context.Context, tx *gorm.DB, survey *model.Survey) error {
	logger := logging.GetLogger(ctx)
	result := tx.WithContext(ctx).Create(survey)
	if result.Error != nil {
		logger.Error("Error creating survey in DB",
			"error", result.Error,
			"user_id", survey.UserID.String(),
		)
		return fmt.Errorf("gormSurveyRepository.Create: %w", result.Error)
	}
	return nil
}

func (r *gormSurveyRepository) FindLatestByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID) (*model.Survey, error) {
	logger := logging.GetLogger(ctx)
	var survey model.Survey
	result := db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		First(&survey)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding latest survey in DB",
			"error", result.Error,
			"user_id", userID.String(),
		)
		return nil, fmt.Errorf("gormSurveyRepository.FindLatestByUser: %w", result.Error)
	}
	return &survey, nil
}

func (r *gormSurveyRepository) UpdateAnswers(ctx context.Context, tx *gorm.DB, surveyID uuid.UUID, answers []byte) error {
	logger := logging.GetLogger(ctx)
	result := tx.WithContext(ctx).
		Model(&model.Survey{}).
		Where("survey_id = ?", surveyID).
		Update("answers", answers)
	if result.Error != nil {
		logger.Error("Error updating survey answers in DB",
			"error", result.Error,
			"survey_id", surveyID.String(),
		)
		return fmt.Errorf("gormSurveyRepository.UpdateAnswers: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}
