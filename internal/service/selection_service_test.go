// internal/service/selection_service_test.go
package service

import (
	"context"
	"fmt"
	"math/rand"
	"testing"

	"opic_practice_portal/internal/model"
	"opic_practice_portal/internal/repository/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestSelectionService(questionRepo *mocks.QuestionRepository) *selectionService {
	return &selectionService{
		db:           setupTestDB(),
		questionRepo: questionRepo,
		cfg:          testConfig(),
		rng:          rand.New(rand.NewSource(1)),
	}
}

func makeQuestions(topic string, level model.Level, n int) []*model.Question {
	questions := make([]*model.Question, 0, n)
	for i := 0; i < n; i++ {
		questions = append(questions, &model.Question{
			QuestionID: uuid.New(),
			Topic:      topic,
			Language:   "english",
			Level:      level,
		})
	}
	return questions
}

// makeSpreadQuestions gives every question its own topic so the
// per-topic quota never interferes with the case under test.
func makeSpreadQuestions(prefix string, level model.Level, n int) []*model.Question {
	questions := make([]*model.Question, 0, n)
	for i := 0; i < n; i++ {
		questions = append(questions, &model.Question{
			QuestionID: uuid.New(),
			Topic:      fmt.Sprintf("%s %d", prefix, i),
			Language:   "english",
			Level:      level,
		})
	}
	return questions
}

func questionIDs(questions []*model.Question) map[uuid.UUID]int {
	ids := make(map[uuid.UUID]int, len(questions))
	for _, q := range questions {
		ids[q.QuestionID]++
	}
	return ids
}

func Test_selectionService_SelectQuestions_InterestQuota(t *testing.T) {
	ctx := context.Background()
	questionRepo := new(mocks.QuestionRepository)
	svc := newTestSelectionService(questionRepo)

	// 6 questions on one interest topic; only 3 may come from it.
	workQuestions := makeQuestions("07. Work", model.LevelIM, 6)
	levelQuestions := makeSpreadQuestions("Filler", model.LevelIM, 20)

	questionRepo.On("FindByTopicLanguage", ctx, mock.Anything, "Work", "english", 0).
		Return(workQuestions, nil).Once()
	questionRepo.On("FindByLevelLanguage", ctx, mock.Anything, model.LevelIM, "english", 0).
		Return(levelQuestions, nil).Once()

	profile := &model.SurveyProfile{
		Interests:           []string{"Work"},
		SelfAssessmentLevel: 3,
		Level:               model.LevelIM,
		TargetCount:         12,
	}
	got, err := svc.SelectQuestions(ctx, profile, "english")
	require.NoError(t, err)
	assert.Len(t, got, 12)

	fromWork := 0
	for _, q := range got {
		if q.TopicName() == "Work" {
			fromWork++
		}
	}
	assert.Equal(t, 3, fromWork, "per-topic quota should cap interest questions")
	questionRepo.AssertExpectations(t)
}

func Test_selectionService_SelectQuestions_NoDuplicates(t *testing.T) {
	ctx := context.Background()
	questionRepo := new(mocks.QuestionRepository)
	svc := newTestSelectionService(questionRepo)

	// The same questions show up in every stage; each may be used once.
	shared := makeSpreadQuestions("Travel", model.LevelIM, 4)

	questionRepo.On("FindByTopicLanguage", ctx, mock.Anything, "Travel", "english", 0).
		Return(shared[:3], nil).Once()
	questionRepo.On("FindByLevelLanguage", ctx, mock.Anything, model.LevelIM, "english", 0).
		Return(shared, nil).Once()
	questionRepo.On("RandomSample", ctx, mock.Anything, model.LevelIM, "english", mock.AnythingOfType("int")).
		Return(shared, nil).Once()

	profile := &model.SurveyProfile{
		Interests:   []string{"Travel"},
		Level:       model.LevelIM,
		TargetCount: 10,
	}
	got, err := svc.SelectQuestions(ctx, profile, "english")
	require.NoError(t, err)

	for id, count := range questionIDs(got) {
		assert.Equalf(t, 1, count, "question %s selected more than once", id)
	}
	assert.Len(t, got, 4, "only 4 distinct questions exist")
}

func Test_selectionService_SelectQuestions_MaxInterests(t *testing.T) {
	ctx := context.Background()
	questionRepo := new(mocks.QuestionRepository)
	svc := newTestSelectionService(questionRepo)

	interests := []string{"A", "B", "C", "D", "E", "F", "G"}
	for _, topic := range interests[:5] {
		questionRepo.On("FindByTopicLanguage", ctx, mock.Anything, topic, "english", 0).
			Return(makeQuestions(topic, model.LevelIM, 3), nil).Once()
	}
	// Topics beyond the first five must never be queried.

	profile := &model.SurveyProfile{
		Interests:   interests,
		Level:       model.LevelIM,
		TargetCount: 15,
	}
	got, err := svc.SelectQuestions(ctx, profile, "english")
	require.NoError(t, err)
	assert.Len(t, got, 15)
	questionRepo.AssertNotCalled(t, "FindByTopicLanguage", ctx, mock.Anything, "F", "english", 0)
	questionRepo.AssertNotCalled(t, "FindByTopicLanguage", ctx, mock.Anything, "G", "english", 0)
	questionRepo.AssertExpectations(t)
}

func Test_selectionService_SelectQuestions_RandomOversample(t *testing.T) {
	ctx := context.Background()
	questionRepo := new(mocks.QuestionRepository)
	svc := newTestSelectionService(questionRepo)

	levelQuestions := makeSpreadQuestions("Food", model.LevelIH, 4)

	questionRepo.On("FindByLevelLanguage", ctx, mock.Anything, model.LevelIH, "english", 0).
		Return(levelQuestions, nil).Once()
	// 12 - 4 = 8 missing, oversampled x2.
	questionRepo.On("RandomSample", ctx, mock.Anything, model.LevelIH, "english", 16).
		Return(makeSpreadQuestions("Misc", model.LevelIH, 16), nil).Once()

	profile := &model.SurveyProfile{
		Level:       model.LevelIH,
		TargetCount: 12,
	}
	got, err := svc.SelectQuestions(ctx, profile, "english")
	require.NoError(t, err)
	assert.Len(t, got, 12)
	questionRepo.AssertExpectations(t)
}

func Test_selectionService_SelectQuestions_ThinCatalog(t *testing.T) {
	ctx := context.Background()
	questionRepo := new(mocks.QuestionRepository)
	svc := newTestSelectionService(questionRepo)

	questionRepo.On("FindByLevelLanguage", ctx, mock.Anything, model.LevelIM, "english", 0).
		Return([]*model.Question{}, nil).Once()
	questionRepo.On("RandomSample", ctx, mock.Anything, model.LevelIM, "english", 20).
		Return([]*model.Question{}, nil).Once()

	profile := &model.SurveyProfile{
		Level:       model.LevelIM,
		TargetCount: 10,
	}
	got, err := svc.SelectQuestions(ctx, profile, "english")
	require.NoError(t, err)
	assert.Empty(t, got, "an empty catalog yields an empty, valid test")
}

func Test_selectionService_SelectQuestions_ZeroTarget(t *testing.T) {
	ctx := context.Background()
	questionRepo := new(mocks.QuestionRepository)
	svc := newTestSelectionService(questionRepo)

	got, err := svc.SelectQuestions(ctx, &model.SurveyProfile{TargetCount: 0}, "english")
	require.NoError(t, err)
	assert.Empty(t, got)
	questionRepo.AssertNotCalled(t, "FindByLevelLanguage", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

// fixedProfileSurveyService returns a canned profile for BuildTest tests.
type fixedProfileSurveyService struct {
	SurveyService
	profile *model.SurveyProfile
}

func (f *fixedProfileSurveyService) ProfileForUser(ctx context.Context, userID uuid.UUID) (*model.SurveyProfile, error) {
	return f.profile, nil
}

func Test_selectionService_BuildTest(t *testing.T) {
	ctx := context.Background()
	questionRepo := new(mocks.QuestionRepository)
	userRepo := new(mocks.UserRepository)

	svc := newTestSelectionService(questionRepo)
	svc.userRepo = userRepo
	svc.surveyService = &fixedProfileSurveyService{profile: &model.SurveyProfile{
		Interests:   []string{"Music"},
		Level:       model.LevelIM,
		TargetCount: 10,
	}}

	userID := uuid.New()
	userRepo.On("FindByID", ctx, mock.Anything, userID).
		Return(&model.User{UserID: userID, TargetLanguage: "english"}, nil).Once()
	questionRepo.On("FindByTopicLanguage", ctx, mock.Anything, "Music", "english", 0).
		Return(makeQuestions("Music", model.LevelIM, 3), nil).Once()
	questionRepo.On("FindByLevelLanguage", ctx, mock.Anything, model.LevelIM, "english", 0).
		Return(makeSpreadQuestions("Filler", model.LevelIM, 10), nil).Once()

	got, err := svc.BuildTest(ctx, userID)
	require.NoError(t, err)
	assert.Len(t, got, 10)
	userRepo.AssertExpectations(t)
	questionRepo.AssertExpectations(t)
}

func Test_selectionService_BuildTest_UserNotFound(t *testing.T) {
	ctx := context.Background()
	questionRepo := new(mocks.QuestionRepository)
	userRepo := new(mocks.UserRepository)

	svc := newTestSelectionService(questionRepo)
	svc.userRepo = userRepo

	userID := uuid.New()
	userRepo.On("FindByID", ctx, mock.Anything, userID).
		Return(nil, model.ErrNotFound).Once()

	_, err := svc.BuildTest(ctx, userID)
	assert.ErrorIs(t, err, model.ErrNotFound)
}
