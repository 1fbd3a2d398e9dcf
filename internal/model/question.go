// internal/model/question.go
package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Level is the difficulty bucket used to filter question pools.
type Level string

const (
	LevelIM Level = "IM" // Intermediate Mid
	LevelIH Level = "IH" // Intermediate High
	LevelAL Level = "AL" // Advanced Low
)

// Question is a single speaking prompt in the catalog. The assessment
// core never mutates questions; writes happen only through the import
// tooling.
type Question struct {
	QuestionID uuid.UUID      `gorm:"type:uuid;primaryKey" json:"question_id"`
	Topic      string         `gorm:"not null;index" json:"topic"` // may carry a legacy ordinal prefix, e.g. "07. Work"
	Language   string         `gorm:"not null;default:english;index" json:"language"`
	Level      Level          `gorm:"type:varchar(10);index" json:"level"`
	Text       string         `json:"text"`
	AudioURL   string         `json:"audio_url"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Question) TableName() string {
	return "questions"
}

// TopicName returns the topic with any leading ordinal prefix removed,
// e.g. "07. Work" -> "Work". Topics without a prefix come back unchanged.
func (q *Question) TopicName() string {
	return StripTopicPrefix(q.Topic)
}

// StripTopicPrefix removes a "NN. " style ordinal prefix from a topic label.
func StripTopicPrefix(topic string) string {
	i := strings.Index(topic, ". ")
	if i <= 0 {
		return topic
	}
	for _, r := range topic[:i] {
		if r < '0' || r > '9' {
			return topic
		}
	}
	return topic[i+2:]
}

// ValidLevel reports whether s is one of the known difficulty buckets.
func ValidLevel(s string) bool {
	switch Level(s) {
	case LevelIM, LevelIH, LevelAL:
		return true
	}
	return false
}
