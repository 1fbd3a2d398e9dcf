package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"opic_practice_portal/internal/config"
	"opic_practice_portal/internal/logging"
	"opic_practice_portal/internal/model"
	"opic_practice_portal/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SurveyService manages background surveys and derived profiles.
type SurveyService interface {
	CreateSurvey(ctx context.Context, userID uuid.UUID, req *model.CreateSurveyRequest) (*model.Survey, error)
	SetSelfAssessment(ctx context.Context, userID uuid.UUID, level int) error
	// ProfileForUser derives the selection inputs from the user's latest
	// survey. A missing or malformed survey yields the default profile
	// instead of an error.
	ProfileForUser(ctx context.Context, userID uuid.UUID) (*model.SurveyProfile, error)
}

type surveyService struct {
	db         *gorm.DB
	surveyRepo repository.SurveyRepository
	userRepo   repository.UserRepository
	cfg        *config.Config
	validate   *validator.Validate
}

func NewSurveyService(db *gorm.DB, surveyRepo repository.SurveyRepository, userRepo repository.UserRepository, cfg *config.Config) SurveyService {
	return &surveyService{
		db:         db,
		surveyRepo: surveyRepo,
		userRepo:   userRepo,
		cfg:        cfg,
		validate:   validator.New(),
	}
}

func (s *surveyService) CreateSurvey(ctx context.Context, userID uuid.UUID, req *model.CreateSurveyRequest) (*model.Survey, error) {
	logger := logging.GetLogger(ctx).With("user_id", userID)

	if err := s.validate.Struct(req); err != nil {
		logger.Warn("Survey request failed validation", "error", err)
		return nil, fmt.Errorf("%w: %v", model.ErrInvalidInput, err)
	}

	answers := model.SurveyAnswers{
		Interests: req.Interests,
		Extra:     req.Extra,
	}
	raw, err := json.Marshal(answers)
	if err != nil {
		return nil, fmt.Errorf("surveyService.CreateSurvey: marshal: %w", err)
	}

	survey := &model.Survey{
		SurveyID: uuid.New(),
		UserID:   userID,
		Answers:  raw,
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := s.userRepo.FindByID(ctx, tx, userID); err != nil {
			return err
		}
		return s.surveyRepo.Create(ctx, tx, survey)
	})
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Failed to create survey", "error", err)
		return nil, model.ErrInternalServer
	}

	logger.Info("Survey created", "survey_id", survey.SurveyID, "interests", len(req.Interests))
	return survey, nil
}

func (s *surveyService) SetSelfAssessment(ctx context.Context, userID uuid.UUID, level int) error {
	logger := logging.GetLogger(ctx).With("user_id", userID)

	clamped := clampSelfAssessment(level, s.cfg.Selection.TargetCounts)
	if clamped != level {
		logger.Warn("Self-assessment level out of range, clamped", "requested", level, "used", clamped)
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		survey, err := s.surveyRepo.FindLatestByUser(ctx, tx, userID)
		if errors.Is(err, model.ErrNotFound) {
			// Self-assessment before the interest survey: start a fresh
			// snapshot holding only the level.
			answers := model.SurveyAnswers{SelfAssessmentLevel: json.Number(fmt.Sprint(clamped))}
			raw, mErr := json.Marshal(answers)
			if mErr != nil {
				return fmt.Errorf("surveyService.SetSelfAssessment: marshal: %w", mErr)
			}
			return s.surveyRepo.Create(ctx, tx, &model.Survey{
				SurveyID: uuid.New(),
				UserID:   userID,
				Answers:  raw,
			})
		}
		if err != nil {
			logger.Error("Failed to load latest survey", "error", err)
			return model.ErrInternalServer
		}

		var answers model.SurveyAnswers
		if uErr := json.Unmarshal(survey.Answers, &answers); uErr != nil {
			logger.Warn("Survey answers unreadable, rewriting", "survey_id", survey.SurveyID, "error", uErr)
			answers = model.SurveyAnswers{}
		}
		answers.SelfAssessmentLevel = json.Number(fmt.Sprint(clamped))
		raw, mErr := json.Marshal(answers)
		if mErr != nil {
			return fmt.Errorf("surveyService.SetSelfAssessment: marshal: %w", mErr)
		}
		return s.surveyRepo.UpdateAnswers(ctx, tx, survey.SurveyID, raw)
	})
}

func (s *surveyService) ProfileForUser(ctx context.Context, userID uuid.UUID) (*model.SurveyProfile, error) {
	logger := logging.GetLogger(ctx).With("user_id", userID)

	survey, err := s.surveyRepo.FindLatestByUser(ctx, s.db, userID)
	if errors.Is(err, model.ErrNotFound) {
		logger.Info("No survey on file, using default profile")
		return s.defaultProfile(), nil
	}
	if err != nil {
		logger.Error("Failed to load latest survey", "error", err)
		return nil, model.ErrInternalServer
	}

	var answers model.SurveyAnswers
	if uErr := json.Unmarshal(survey.Answers, &answers); uErr != nil {
		logger.Warn("Survey answers unreadable, using default profile", "survey_id", survey.SurveyID, "error", uErr)
		return s.defaultProfile(), nil
	}

	level := 0
	if answers.SelfAssessmentLevel != "" {
		if v, cErr := answers.SelfAssessmentLevel.Int64(); cErr == nil {
			level = int(v)
		}
	}
	level = clampSelfAssessment(level, s.cfg.Selection.TargetCounts)

	return &model.SurveyProfile{
		Interests:           answers.Interests,
		SelfAssessmentLevel: level,
		Level:               model.LevelForSelfAssessment(level),
		TargetCount:         s.cfg.Selection.TargetCounts[level],
	}, nil
}

func (s *surveyService) defaultProfile() *model.SurveyProfile {
	level := clampSelfAssessment(0, s.cfg.Selection.TargetCounts)
	return &model.SurveyProfile{
		Interests:           nil,
		SelfAssessmentLevel: level,
		Level:               model.LevelForSelfAssessment(level),
		TargetCount:         s.cfg.Selection.TargetCounts[level],
	}
}

// clampSelfAssessment forces a declared level into the range the target
// table covers. Unknown values land on mid-scale level 3.
func clampSelfAssessment(level int, targets map[int]int) int {
	if _, ok := targets[level]; ok {
		return level
	}
	return 3
}
