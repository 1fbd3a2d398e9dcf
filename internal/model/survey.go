// internal/model/survey.go
package model

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Survey is the per-test-attempt snapshot of a user's declared interests
// and, once the self-assessment step completes, their declared level.
type Survey struct {
	SurveyID  uuid.UUID      `gorm:"type:uuid;primaryKey" json:"survey_id"`
	UserID    uuid.UUID      `gorm:"type:uuid;not null;index" json:"user_id"`
	Answers   datatypes.JSON `gorm:"not null" json:"answers"`
	CreatedAt time.Time      `json:"created_at"`
}

func (Survey) TableName() string {
	return "surveys"
}

// SurveyAnswers is the decoded shape of Survey.Answers. The payload comes
// from user-facing forms, so every field is optional and decoding is
// tolerant; missing or malformed parts fall back to defaults during
// profile derivation rather than failing.
type SurveyAnswers struct {
	Interests           []string          `json:"interests,omitempty"`
	SelfAssessmentLevel json.Number       `json:"self_assessment_level,omitempty"`
	EnglishLevel        string            `json:"english_level,omitempty"`
	Extra               map[string]string `json:"extra,omitempty"`
}

// CreateSurveyRequest is the DTO for storing a new survey snapshot.
type CreateSurveyRequest struct {
	Interests []string          `json:"interests" validate:"omitempty,max=20,dive,min=1,max=100"`
	Extra     map[string]string `json:"extra,omitempty"`
}

// SurveyProfile is the derived, read-only input to question selection.
type SurveyProfile struct {
	Interests           []string `json:"interests"`
	SelfAssessmentLevel int      `json:"self_assessment_level"`
	Level               Level    `json:"level"`
	TargetCount         int      `json:"target_count"`
}

// LevelForSelfAssessment maps the 1..6 self-assessment scale onto a
// difficulty bucket. Out-of-range values get the mid-scale default.
func LevelForSelfAssessment(level int) Level {
	switch level {
	case 1, 2, 3:
		return LevelIM
	case 4, 5:
		return LevelIH
	case 6:
		return LevelAL
	}
	return LevelIM
}
