package models

import (
	"time"

	"gorm.io/gorm"
)

// Question belongs to one quiz revision. QuestionKey is the stable semantic
// key the weight table is indexed by; ID is storage-scoped and may differ
// between revisions of the same question.
type Question struct {
	ID           uint           `json:"id" gorm:"primaryKey"`
	QuizID       uint           `json:"quiz_id" gorm:"not null"`
	QuestionKey  string         `json:"question_key" gorm:"not null;index"`
	Prompt       string         `json:"prompt" gorm:"not null"`
	QuestionType string         `json:"question_type" gorm:"not null;default:'single_choice'"`
	Points       float64        `json:"points" gorm:"not null;default:1"`
	OrderIndex   int            `json:"order_index" gorm:"not null"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `json:"-" gorm:"index"`

	// Relationships
	Quiz    Quiz     `json:"quiz,omitempty"`
	Options []Option `json:"options,omitempty" gorm:"foreignKey:QuestionID"`
}
