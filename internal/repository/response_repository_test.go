// internal/repository/response_repository_test.go
package repository

import (
	"context"
	"testing"
	"time"

	"opic_practice_portal/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedUser(t *testing.T, db *gorm.DB, username string) *model.User {
	t.Helper()
	u := &model.User{
		UserID:         uuid.New(),
		Username:       username,
		TargetLanguage: "english",
	}
	require.NoError(t, db.Create(u).Error)
	return u
}

func seedResponse(t *testing.T, db *gorm.DB, userID, questionID uuid.UUID, mode model.ResponseMode, createdAt time.Time) *model.Response {
	t.Helper()
	r := &model.Response{
		ResponseID: uuid.New(),
		UserID:     userID,
		QuestionID: questionID,
		AudioURL:   "s3://bucket/a.webm",
		Mode:       mode,
		CreatedAt:  createdAt,
	}
	require.NoError(t, db.Create(r).Error)
	return r
}

func Test_gormResponseRepository_CreateAndFind(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	repo := NewGormResponseRepository()

	user := seedUser(t, db, "alice")
	question := seedQuestion(t, db, "Work", model.LevelIM, "english", "q1")

	duration := 45.5
	response := &model.Response{
		ResponseID:  uuid.New(),
		UserID:      user.UserID,
		QuestionID:  question.QuestionID,
		AudioURL:    "s3://bucket/r1.webm",
		DurationSec: &duration,
		Mode:        model.ModePractice,
	}
	require.NoError(t, repo.Create(ctx, db, response))

	got, err := repo.FindByID(ctx, db, user.UserID, response.ResponseID)
	require.NoError(t, err)
	assert.Equal(t, response.ResponseID, got.ResponseID)
	require.NotNil(t, got.Question, "question should be preloaded")
	assert.Equal(t, question.QuestionID, got.Question.QuestionID)

	// Another user cannot see it.
	_, err = repo.FindByID(ctx, db, uuid.New(), response.ResponseID)
	assert.ErrorIs(t, err, model.ErrNotFound)
}

func Test_gormResponseRepository_FindByUser_Order(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	repo := NewGormResponseRepository()

	user := seedUser(t, db, "bob")
	question := seedQuestion(t, db, "Work", model.LevelIM, "english", "q1")

	base := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	second := seedResponse(t, db, user.UserID, question.QuestionID, model.ModeTest, base.Add(time.Hour))
	first := seedResponse(t, db, user.UserID, question.QuestionID, model.ModeTest, base)

	got, err := repo.FindByUser(ctx, db, user.UserID)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, first.ResponseID, got[0].ResponseID, "oldest first")
	assert.Equal(t, second.ResponseID, got[1].ResponseID)
}

func Test_gormResponseRepository_UpdateFeedback(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	repo := NewGormResponseRepository()

	user := seedUser(t, db, "carol")
	question := seedQuestion(t, db, "Work", model.LevelIM, "english", "q1")
	response := seedResponse(t, db, user.UserID, question.QuestionID, model.ModePractice, time.Now())

	updates := map[string]interface{}{
		"ai_score":    88,
		"ai_feedback": "Well organized answer.",
		"ai_data":     []byte(`{"strengths":["clear"],"suggestions":[]}`),
	}
	require.NoError(t, repo.UpdateFeedback(ctx, db, response.ResponseID, updates))

	got, err := repo.FindByID(ctx, db, user.UserID, response.ResponseID)
	require.NoError(t, err)
	require.NotNil(t, got.AIScore)
	assert.Equal(t, 88, *got.AIScore)
	require.NotNil(t, got.AIFeedback)
	assert.Equal(t, "Well organized answer.", *got.AIFeedback)

	assert.ErrorIs(t, repo.UpdateFeedback(ctx, db, uuid.New(), updates), model.ErrNotFound)
}

func Test_gormResponseRepository_CountByUserMode(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	repo := NewGormResponseRepository()

	user := seedUser(t, db, "dave")
	question := seedQuestion(t, db, "Work", model.LevelIM, "english", "q1")

	now := time.Now()
	seedResponse(t, db, user.UserID, question.QuestionID, model.ModePractice, now)
	seedResponse(t, db, user.UserID, question.QuestionID, model.ModePractice, now)
	seedResponse(t, db, user.UserID, question.QuestionID, model.ModeTest, now)

	practice, err := repo.CountByUserMode(ctx, db, user.UserID, model.ModePractice)
	require.NoError(t, err)
	assert.Equal(t, int64(2), practice)

	test, err := repo.CountByUserMode(ctx, db, user.UserID, model.ModeTest)
	require.NoError(t, err)
	assert.Equal(t, int64(1), test)

	all, err := repo.CountByUserMode(ctx, db, user.UserID, "")
	require.NoError(t, err)
	assert.Equal(t, int64(3), all)
}
