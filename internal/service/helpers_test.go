// internal/service/helpers_test.go
package service

import (
	"opic_practice_portal/internal/config"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB opens a shared in-memory sqlite database for transaction
// plumbing in service tests. Repository calls are mocked, so no schema
// is migrated here.
func setupTestDB() *gorm.DB {
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		panic("failed to connect database for testing: " + err.Error())
	}
	return db
}

// testConfig returns a config with the documented defaults filled in.
func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.App.StreakTimezone = "UTC"
	cfg.App.SessionGapMinutes = config.DefaultSessionGapMinutes
	cfg.App.TargetLanguage = "english"
	cfg.Selection.QuestionsPerTopic = config.DefaultQuestionsPerTopic
	cfg.Selection.MaxInterests = config.DefaultMaxInterests
	cfg.Selection.RandomOversample = config.DefaultRandomOversample
	cfg.Selection.TargetCounts = config.DefaultTargetCounts
	cfg.OpenAI.MaxAttempts = config.DefaultOpenAIMaxAttempts
	return cfg
}
