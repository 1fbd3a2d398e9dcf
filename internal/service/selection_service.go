package service

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"opic_practice_portal/internal/config"
	"opic_practice_portal/internal/logging"
	"opic_practice_portal/internal/model"
	"opic_practice_portal/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SelectionService assembles question sets from the survey profile.
type SelectionService interface {
	// BuildTest assembles a personalized test for the user: interest
	// topics first, then level fill, then random fill. The result may be
	// shorter than the target when the catalog is thin; that is not an
	// error.
	BuildTest(ctx context.Context, userID uuid.UUID) ([]*model.Question, error)
	SelectQuestions(ctx context.Context, profile *model.SurveyProfile, language string) ([]*model.Question, error)
	ListTopics(ctx context.Context, language string) ([]string, error)
}

type selectionService struct {
	db            *gorm.DB
	questionRepo  repository.QuestionRepository
	surveyService SurveyService
	userRepo      repository.UserRepository
	cfg           *config.Config

	mu  sync.Mutex
	rng *rand.Rand
}

func NewSelectionService(db *gorm.DB, questionRepo repository.QuestionRepository, userRepo repository.UserRepository, surveyService SurveyService, cfg *config.Config) SelectionService {
	return &selectionService{
		db:            db,
		questionRepo:  questionRepo,
		surveyService: surveyService,
		userRepo:      userRepo,
		cfg:           cfg,
		rng:           rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func (s *selectionService) BuildTest(ctx context.Context, userID uuid.UUID) ([]*model.Question, error) {
	logger := logging.GetLogger(ctx).With("user_id", userID)

	user, err := s.userRepo.FindByID(ctx, s.db, userID)
	if err != nil {
		return nil, err
	}

	profile, err := s.surveyService.ProfileForUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	questions, err := s.SelectQuestions(ctx, profile, user.TargetLanguage)
	if err != nil {
		return nil, err
	}

	logger.Info("Test assembled",
		"level", string(profile.Level),
		"target", profile.TargetCount,
		"selected", len(questions),
	)
	return questions, nil
}

func (s *selectionService) SelectQuestions(ctx context.Context, profile *model.SurveyProfile, language string) ([]*model.Question, error) {
	logger := logging.GetLogger(ctx)

	target := profile.TargetCount
	if target <= 0 {
		return []*model.Question{}, nil
	}

	selected := make(map[uuid.UUID]struct{}, target)
	topicCounts := make(map[string]int)
	picked := make([]*model.Question, 0, target)

	// The quota and duplicate filters apply in every stage.
	add := func(q *model.Question) bool {
		if _, dup := selected[q.QuestionID]; dup {
			return false
		}
		if topicCounts[q.TopicName()] >= s.cfg.Selection.QuestionsPerTopic {
			return false
		}
		selected[q.QuestionID] = struct{}{}
		topicCounts[q.TopicName()]++
		picked = append(picked, q)
		return true
	}

	// Stage 1: interest topics, capped per topic so one interest cannot
	// dominate the test.
	interests := profile.Interests
	if len(interests) > s.cfg.Selection.MaxInterests {
		interests = interests[:s.cfg.Selection.MaxInterests]
	}
	for _, topic := range interests {
		if len(picked) >= target {
			break
		}
		questions, err := s.questionRepo.FindByTopicLanguage(ctx, s.db, topic, language, 0)
		if err != nil {
			return nil, err
		}
		for _, q := range questions {
			if len(picked) >= target {
				break
			}
			add(q)
		}
	}

	// Stage 2: fill from the difficulty bucket the self-assessment maps to.
	if len(picked) < target {
		questions, err := s.questionRepo.FindByLevelLanguage(ctx, s.db, profile.Level, language, 0)
		if err != nil {
			return nil, err
		}
		for _, q := range questions {
			if len(picked) >= target {
				break
			}
			add(q)
		}
	}

	// Stage 3: random fill, oversampled since the sample may collide with
	// questions already picked.
	if len(picked) < target {
		limit := (target - len(picked)) * s.cfg.Selection.RandomOversample
		questions, err := s.questionRepo.RandomSample(ctx, s.db, profile.Level, language, limit)
		if err != nil {
			return nil, err
		}
		for _, q := range questions {
			if len(picked) >= target {
				break
			}
			add(q)
		}
	}

	if len(picked) < target {
		logger.Warn("Catalog too thin for requested test size",
			"target", target,
			"selected", len(picked),
		)
	}

	s.mu.Lock()
	s.rng.Shuffle(len(picked), func(i, j int) {
		picked[i], picked[j] = picked[j], picked[i]
	})
	s.mu.Unlock()

	if len(picked) > target {
		picked = picked[:target]
	}
	return picked, nil
}

func (s *selectionService) ListTopics(ctx context.Context, language string) ([]string, error) {
	return s.questionRepo.ListTopics(ctx, s.db, language)
}
