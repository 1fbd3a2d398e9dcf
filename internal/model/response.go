// internal/model/response.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// ResponseMode distinguishes a standalone practice answer from one
// recorded inside a timed test.
type ResponseMode string

const (
	ModePractice ResponseMode = "practice"
	ModeTest     ResponseMode = "test"
)

// Response is an append-only record of one spoken answer. Only the
// transcript and AI feedback columns are ever written after creation.
type Response struct {
	ResponseID  uuid.UUID      `gorm:"type:uuid;primaryKey" json:"response_id"`
	UserID      uuid.UUID      `gorm:"type:uuid;not null;index" json:"user_id"`
	QuestionID  uuid.UUID      `gorm:"type:uuid;not null;index" json:"question_id"`
	AudioURL    string         `gorm:"not null" json:"audio_url"`
	DurationSec *float64       `json:"duration_sec,omitempty"`
	Transcript  *string        `json:"transcript,omitempty"`
	Mode        ResponseMode   `gorm:"type:varchar(10);not null;default:practice;index" json:"mode"`
	AIScore     *int           `json:"ai_score,omitempty"`
	AIFeedback  *string        `json:"ai_feedback,omitempty"`
	AIData      datatypes.JSON `gorm:"column:ai_data" json:"ai_data,omitempty"`
	CreatedAt   time.Time      `gorm:"index" json:"created_at"`

	// for Preload
	Question *Question `gorm:"foreignKey:QuestionID;references:QuestionID" json:"question,omitempty"`
}

func (Response) TableName() string {
	return "responses"
}

// RecordResponseRequest is the DTO for appending a response.
type RecordResponseRequest struct {
	UserID      uuid.UUID    `json:"user_id" validate:"required"`
	QuestionID  uuid.UUID    `json:"question_id" validate:"required"`
	AudioURL    string       `json:"audio_url" validate:"required"`
	DurationSec *float64     `json:"duration_sec,omitempty" validate:"omitempty,gte=0"`
	Transcript  *string      `json:"transcript,omitempty"`
	Mode        ResponseMode `json:"mode" validate:"omitempty,oneof=practice test"`
}

// FeedbackData is the structured part of an AI evaluation, stored as JSON
// alongside the scalar score and feedback columns.
type FeedbackData struct {
	Strengths   []string `json:"strengths"`
	Suggestions []string `json:"suggestions"`
}
