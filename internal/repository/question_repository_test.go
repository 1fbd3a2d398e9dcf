// internal/repository/question_repository_test.go
package repository

import (
	"context"
	"testing"

	"opic_practice_portal/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB opens a fresh in-memory sqlite database with the portal
// schema migrated.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err, "failed to connect database for testing")
	require.NoError(t, AutoMigrate(db))
	return db
}

func seedQuestion(t *testing.T, db *gorm.DB, topic string, level model.Level, language, text string) *model.Question {
	t.Helper()
	q := &model.Question{
		QuestionID: uuid.New(),
		Topic:      topic,
		Language:   language,
		Level:      level,
		Text:       text,
	}
	require.NoError(t, db.Create(q).Error)
	return q
}

func Test_gormQuestionRepository_FindByTopicLanguage(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	repo := NewGormQuestionRepository()

	seedQuestion(t, db, "07. Work", model.LevelIM, "english", "Describe your workplace.")
	seedQuestion(t, db, "Work", model.LevelIH, "english", "Tell me about a project.")
	seedQuestion(t, db, "Travel", model.LevelIM, "english", "Describe your last trip.")
	seedQuestion(t, db, "Work", model.LevelIM, "korean", "직장을 묘사해 주세요.")

	t.Run("matches plain and prefixed topic labels", func(t *testing.T) {
		got, err := repo.FindByTopicLanguage(ctx, db, "Work", "english", 0)
		require.NoError(t, err)
		assert.Len(t, got, 2)
	})

	t.Run("is case-insensitive", func(t *testing.T) {
		got, err := repo.FindByTopicLanguage(ctx, db, "wOrK", "english", 0)
		require.NoError(t, err)
		assert.Len(t, got, 2)
	})

	t.Run("respects the language", func(t *testing.T) {
		got, err := repo.FindByTopicLanguage(ctx, db, "Work", "korean", 0)
		require.NoError(t, err)
		assert.Len(t, got, 1)
	})

	t.Run("applies the limit", func(t *testing.T) {
		got, err := repo.FindByTopicLanguage(ctx, db, "Work", "english", 1)
		require.NoError(t, err)
		assert.Len(t, got, 1)
	})

	t.Run("unknown topic yields empty slice", func(t *testing.T) {
		got, err := repo.FindByTopicLanguage(ctx, db, "Gardening", "english", 0)
		require.NoError(t, err)
		assert.Empty(t, got)
	})
}

func Test_gormQuestionRepository_FindByLevelLanguage(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	repo := NewGormQuestionRepository()

	seedQuestion(t, db, "Work", model.LevelIM, "english", "q1")
	seedQuestion(t, db, "Travel", model.LevelIM, "english", "q2")
	seedQuestion(t, db, "Travel", model.LevelAL, "english", "q3")

	got, err := repo.FindByLevelLanguage(ctx, db, model.LevelIM, "english", 0)
	require.NoError(t, err)
	assert.Len(t, got, 2)

	got, err = repo.FindByLevelLanguage(ctx, db, model.LevelAL, "english", 0)
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func Test_gormQuestionRepository_RandomSample(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	repo := NewGormQuestionRepository()

	for i := 0; i < 10; i++ {
		seedQuestion(t, db, "Misc", model.LevelIM, "english", uuid.NewString())
	}
	seedQuestion(t, db, "Misc", model.LevelAL, "english", "wrong level")

	got, err := repo.RandomSample(ctx, db, model.LevelIM, "english", 4)
	require.NoError(t, err)
	assert.Len(t, got, 4)

	seen := make(map[uuid.UUID]struct{})
	for _, q := range got {
		_, dup := seen[q.QuestionID]
		assert.False(t, dup, "sample must not repeat rows")
		seen[q.QuestionID] = struct{}{}
		assert.Equal(t, model.LevelIM, q.Level)
	}
}

func Test_gormQuestionRepository_ListTopics(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	repo := NewGormQuestionRepository()

	seedQuestion(t, db, "07. Work", model.LevelIM, "english", "q1")
	seedQuestion(t, db, "Work", model.LevelIH, "english", "q2")
	seedQuestion(t, db, "01. Travel", model.LevelIM, "english", "q3")
	seedQuestion(t, db, "Food", model.LevelIM, "korean", "q4")

	got, err := repo.ListTopics(ctx, db, "english")
	require.NoError(t, err)
	// Prefixed and plain forms collapse to one display name, sorted.
	assert.Equal(t, []string{"Travel", "Work"}, got)
}

func Test_gormQuestionRepository_FindByID(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	repo := NewGormQuestionRepository()

	q := seedQuestion(t, db, "Work", model.LevelIM, "english", "q1")

	got, err := repo.FindByID(ctx, db, q.QuestionID)
	require.NoError(t, err)
	assert.Equal(t, q.QuestionID, got.QuestionID)

	_, err = repo.FindByID(ctx, db, uuid.New())
	assert.ErrorIs(t, err, model.ErrNotFound)
}

func Test_gormQuestionRepository_AudioBackfill(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	repo := NewGormQuestionRepository()

	withAudio := seedQuestion(t, db, "Work", model.LevelIM, "english", "q1")
	require.NoError(t, db.Model(withAudio).Update("audio_url", "audio/a.mp3").Error)
	missing := seedQuestion(t, db, "Work", model.LevelIM, "english", "q2")

	pending, err := repo.FindMissingAudio(ctx, db, "english")
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, missing.QuestionID, pending[0].QuestionID)

	require.NoError(t, repo.UpdateAudioURL(ctx, db, missing.QuestionID, "audio/b.mp3"))

	pending, err = repo.FindMissingAudio(ctx, db, "english")
	require.NoError(t, err)
	assert.Empty(t, pending)

	assert.ErrorIs(t, repo.UpdateAudioURL(ctx, db, uuid.New(), "audio/x.mp3"), model.ErrNotFound)
}

func Test_gormQuestionRepository_FindByTopicText(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	repo := NewGormQuestionRepository()

	q := seedQuestion(t, db, "Work", model.LevelIM, "english", "Describe your workplace.")

	got, err := repo.FindByTopicText(ctx, db, "Work", "Describe your workplace.")
	require.NoError(t, err)
	assert.Equal(t, q.QuestionID, got.QuestionID)

	_, err = repo.FindByTopicText(ctx, db, "Work", "Unseen text")
	assert.ErrorIs(t, err, model.ErrNotFound)
}
