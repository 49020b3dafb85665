package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// AttemptAnswer stores one submitted answer. Weights is a denormalized copy of
// the per-chronotype contributions, recomputed server-side before persisting;
// anything the client sent in that field is discarded.
type AttemptAnswer struct {
	ID          uint           `json:"id" gorm:"primaryKey"`
	AttemptID   uint           `json:"attempt_id" gorm:"not null;index"`
	QuestionID  uint           `json:"question_id" gorm:"not null"`
	AnswerValue string         `json:"answer_value" gorm:"not null"`
	ElapsedMS   *int           `json:"elapsed_ms"`
	Weights     datatypes.JSON `json:"weights"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `json:"-" gorm:"index"`

	// Relationships
	Attempt  QuizAttempt `json:"attempt,omitempty"`
	Question Question    `json:"question,omitempty"`
}
