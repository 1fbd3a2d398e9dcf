//go:generate mockery --name ResponseRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"fmt"

	"opic_practice_portal/internal/logging"
	"opic_practice_portal/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// ResponseRepository handles persistence of user responses.
type ResponseRepository interface {
	Create(ctx context.Context, tx *gorm.DB, response *model.Response) error
	FindByID(ctx context.Context, db *gorm.DB, userID, responseID uuid.UUID) (*model.Response, error)
	// FindByUser returns the user's responses oldest first with the
	// question preloaded.
	FindByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID) ([]*model.Response, error)
	UpdateFeedback(ctx context.Context, tx *gorm.DB, responseID uuid.UUID, updates map[string]interface{}) error
	CountByUserMode(ctx context.Context, db *gorm.DB, userID uuid.UUID, mode model.ResponseMode) (int64, error)
}

type gormResponseRepository struct{}

func NewGormResponseRepository() ResponseRepository {
	return &gormResponseRepository{}
}

func (r *gormResponseRepository) Create(ctx context.Context, tx *gorm.DB, response *model.Response) error {
	logger := logging.GetLogger(ctx)
	result := tx.WithContext(ctx).Create(response)
	if result.Error != nil {
		var pgErr *pgconn.PgError
		if errors.As(result.Error, &pgErr) {
			switch pgErr.Code {
			case "23503": // foreign_key_violation: user or question does not exist
				return model.ErrNotFound
			case "23505": // unique_violation
				return model.ErrConflict
			}
		}
		logger.Error("Error creating response in DB",
			"error", result.Error,
			"user_id", response.UserID.String(),
			"question_id", response.QuestionID.String(),
		)
		return fmt.Errorf("gormResponseRepository.Create: %w", result.Error)
	}
	return nil
}

func (r *gormResponseRepository) FindByID(ctx context.Context, db *gorm.DB, userID, responseID uuid.UUID) (*model.Response, error) {
	logger := logging.GetLogger(ctx)
	var response model.Response
	result := db.WithContext(ctx).
		Preload("Question").
		Where("user_id = ? AND response_id = ?", userID, responseID).
		First(&response)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding response by ID in DB",
			"error", result.Error,
			"user_id", userID.String(),
			"response_id", responseID.String(),
		)
		return nil, fmt.Errorf("gormResponseRepository.FindByID: %w", result.Error)
	}
	return &response, nil
}

func (r *gormResponseRepository) FindByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID) ([]*model.Response, error) {
	logger := logging.GetLogger(ctx)
	var responses []*model.Response
	result := db.WithContext(ctx).
		Preload("Question").
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&responses)
	if result.Error != nil {
		logger.Error("Error finding responses by user in DB",
			"error", result.Error,
			"user_id", userID.String(),
		)
		return nil, fmt.Errorf("gormResponseRepository.FindByUser: %w", result.Error)
	}
	return responses, nil
}

func (r *gormResponseRepository) UpdateFeedback(ctx context.Context, tx *gorm.DB, responseID uuid.UUID, updates map[string]interface{}) error {
	logger := logging.GetLogger(ctx)
	if len(updates) == 0 {
		return nil
	}
	result := tx.WithContext(ctx).
		Model(&model.Response{}).
		Where("response_id = ?", responseID).
		Updates(updates)
	if result.Error != nil {
		logger.Error("Error updating response feedback in DB",
			"error", result.Error,
			"response_id", responseID.String(),
		)
		return fmt.Errorf("gormResponseRepository.UpdateFeedback: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *gormResponseRepository) CountByUserMode(ctx context.Context, db *gorm.DB, userID uuid.UUID, mode model.ResponseMode) (int64, error) {
	logger := logging.GetLogger(ctx)
	var count int64
	query := db.WithContext(ctx).Model(&model.Response{}).Where("user_id = ?", userID)
	if mode != "" {
		query = query.Where("mode = ?", mode)
	}
	result := query.Count(&count)
	if result.Error != nil {
		logger.Error("Error counting responses in DB",
			"error", result.Error,
			"user_id", userID.String(),
		)
		return 0, fmt.Errorf("gormResponseRepository.CountByUserMode: %w", result.Error)
	}
	return count, nil
}
