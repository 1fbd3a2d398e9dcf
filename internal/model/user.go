// internal/model/user.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// User holds the portal user fields the assessment core touches.
// Profile/auth columns belong to the surrounding app.
type User struct {
	UserID         uuid.UUID  `gorm:"type:uuid;primaryKey" json:"user_id"`
	Username       string     `gorm:"uniqueIndex;not null" json:"username"`
	Name           string     `json:"name"`
	TargetLanguage string     `gorm:"not null;default:english" json:"target_language"`
	StreakCount    int        `gorm:"not null;default:0" json:"streak_count"`
	LastActiveDate *time.Time `json:"last_active_date"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}

// StreakState is the slice of User the streak tracker reads and writes.
// It is passed by value through the transition function so callers decide
// when (and inside which transaction) to persist the result.
type StreakState struct {
	LastActiveDate *time.Time
	StreakCount    int
}

// StreakState returns the user's current streak fields as a value.
func (u *User) StreakState() StreakState {
	return StreakState{
		LastActiveDate: u.LastActiveDate,
		StreakCount:    u.StreakCount,
	}
}

// UserStatistics is the dashboard summary DTO.
type UserStatistics struct {
	TotalResponses    int64      `json:"total_responses"`
	PracticeResponses int64      `json:"practice_responses"`
	TestResponses     int64      `json:"test_responses"`
	StreakCount       int        `json:"streak_count"`
	LastActiveDate    *time.Time `json:"last_active_date"`
}
