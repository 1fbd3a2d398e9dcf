package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"opic_practice_portal/internal/ai"
	"opic_practice_portal/internal/config"
	"opic_practice_portal/internal/logging"
	"opic_practice_portal/internal/model"
	"opic_practice_portal/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ResponseService records responses and attaches AI feedback.
type ResponseService interface {
	RecordResponse(ctx context.Context, req *model.RecordResponseRequest) (*model.Response, error)
	GetResponse(ctx context.Context, userID, responseID uuid.UUID) (*model.Response, error)
	// AttachFeedback scores the response with the AI collaborator and
	// persists the result. It retries transient failures; when every
	// attempt fails the response stays unscored and the caller gets
	// model.ErrAIUnavailable.
	AttachFeedback(ctx context.Context, userID, responseID uuid.UUID) (*model.Response, error)
	UserStatistics(ctx context.Context, userID uuid.UUID) (*model.UserStatistics, error)
}

type responseService struct {
	db            *gorm.DB
	responseRepo  repository.ResponseRepository
	questionRepo  repository.QuestionRepository
	userRepo      repository.UserRepository
	streakService StreakService
	scorer        ai.Scorer
	cfg           *config.Config
	validate      *validator.Validate
}

func NewResponseService(db *gorm.DB, responseRepo repository.ResponseRepository, questionRepo repository.QuestionRepository, userRepo repository.UserRepository, streakService StreakService, scorer ai.Scorer, cfg *config.Config) ResponseService {
	return &responseService{
		db:            db,
		responseRepo:  responseRepo,
		questionRepo:  questionRepo,
		userRepo:      userRepo,
		streakService: streakService,
		scorer:        scorer,
		cfg:           cfg,
		validate:      validator.New(),
	}
}

func (s *responseService) RecordResponse(ctx context.Context, req *model.RecordResponseRequest) (*model.Response, error) {
	logger := logging.GetLogger(ctx).With("user_id", req.UserID)

	if err := s.validate.Struct(req); err != nil {
		logger.Warn("Response request failed validation", "error", err)
		return nil, fmt.Errorf("%w: %v", model.ErrInvalidInput, err)
	}

	mode := req.Mode
	if mode == "" {
		mode = model.ModePractice
	}

	response := &model.Response{
		ResponseID:  uuid.New(),
		UserID:      req.UserID,
		QuestionID:  req.QuestionID,
		AudioURL:    req.AudioURL,
		DurationSec: req.DurationSec,
		Transcript:  req.Transcript,
		Mode:        mode,
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := s.questionRepo.FindByID(ctx, tx, req.QuestionID); err != nil {
			return err
		}
		return s.responseRepo.Create(ctx, tx, response)
	})
	if err != nil {
		if errors.Is(err, model.ErrNotFound) || errors.Is(err, model.ErrConflict) {
			return nil, err
		}
		logger.Error("Failed to record response", "error", err)
		return nil, model.ErrInternalServer
	}

	// Practice counts toward the daily streak. The response itself is
	// already committed, so a streak failure only gets logged.
	if mode == model.ModePractice {
		if _, sErr := s.streakService.RecordActivity(ctx, req.UserID); sErr != nil {
			logger.Warn("Failed to update streak after response", "error", sErr)
		}
	}

	logger.Info("Response recorded",
		"response_id", response.ResponseID,
		"question_id", req.QuestionID,
		"mode", string(mode),
	)
	return response, nil
}

func (s *responseService) GetResponse(ctx context.Context, userID, responseID uuid.UUID) (*model.Response, error) {
	return s.responseRepo.FindByID(ctx, s.db, userID, responseID)
}

func (s *responseService) AttachFeedback(ctx context.Context, userID, responseID uuid.UUID) (*model.Response, error) {
	logger := logging.GetLogger(ctx).With("user_id", userID, "response_id", responseID)

	response, err := s.responseRepo.FindByID(ctx, s.db, userID, responseID)
	if err != nil {
		return nil, err
	}
	if response.Transcript == nil || *response.Transcript == "" {
		return nil, fmt.Errorf("%w: response has no transcript", model.ErrInvalidInput)
	}

	questionText := ""
	if response.Question != nil {
		questionText = response.Question.Text
	}
	features := ai.AudioFeatures{}
	if response.DurationSec != nil {
		features.DurationSec = *response.DurationSec
	}

	var result *ai.ScoreResult
	attempts := s.cfg.OpenAI.MaxAttempts
	for attempt := 1; attempt <= attempts; attempt++ {
		result, err = s.scorer.Score(ctx, questionText, *response.Transcript, features)
		if err == nil {
			break
		}
		logger.Warn("Scoring attempt failed", "attempt", attempt, "error", err)
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
	}
	if result == nil {
		return nil, model.ErrAIUnavailable
	}

	data, mErr := json.Marshal(model.FeedbackData{
		Strengths:   result.Strengths,
		Suggestions: result.Suggestions,
	})
	if mErr != nil {
		return nil, fmt.Errorf("responseService.AttachFeedback: marshal: %w", mErr)
	}

	updates := map[string]interface{}{
		"ai_score":    result.Score,
		"ai_feedback": result.Feedback,
		"ai_data":     data,
	}
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return s.responseRepo.UpdateFeedback(ctx, tx, responseID, updates)
	})
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Failed to persist feedback", "error", err)
		return nil, model.ErrInternalServer
	}

	response.AIScore = &result.Score
	response.AIFeedback = &result.Feedback
	response.AIData = data

	logger.Info("Feedback attached", "score", result.Score)
	return response, nil
}

func (s *responseService) UserStatistics(ctx context.Context, userID uuid.UUID) (*model.UserStatistics, error) {
	logger := logging.GetLogger(ctx).With("user_id", userID)

	user, err := s.userRepo.FindByID(ctx, s.db, userID)
	if err != nil {
		return nil, err
	}

	practice, err := s.responseRepo.CountByUserMode(ctx, s.db, userID, model.ModePractice)
	if err != nil {
		logger.Error("Failed to count practice responses", "error", err)
		return nil, model.ErrInternalServer
	}
	test, err := s.responseRepo.CountByUserMode(ctx, s.db, userID, model.ModeTest)
	if err != nil {
		logger.Error("Failed to count test responses", "error", err)
		return nil, model.ErrInternalServer
	}

	return &model.UserStatistics{
		TotalResponses:    practice + test,
		PracticeResponses: practice,
		TestResponses:     test,
		StreakCount:       user.StreakCount,
		LastActiveDate:    user.LastActiveDate,
	}, nil
}
