package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// QuizAttempt is the immutable record of one scored submission. Summary holds
// the classification artifacts (label, confidence, normalized and raw scores,
// per-question breakdown) exactly as computed at submission time; it is never
// re-derived from storage.
type QuizAttempt struct {
	ID          uint           `json:"id" gorm:"primaryKey"`
	PublicID    string         `json:"public_id" gorm:"uniqueIndex;not null"`
	QuizID      uint           `json:"quiz_id" gorm:"not null"`
	QuizVersion int            `json:"quiz_version" gorm:"not null"`
	UserID      uint           `json:"user_id" gorm:"not null;index"`
	Summary     datatypes.JSON `json:"summary"`
	SubmittedAt time.Time      `json:"submitted_at"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `json:"-" gorm:"index"`

	// Relationships
	Quiz    Quiz            `json:"quiz,omitempty"`
	Answers []AttemptAnswer `json:"answers,omitempty" gorm:"foreignKey:AttemptID"`
}
