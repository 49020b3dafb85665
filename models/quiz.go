package models

import (
	"time"

	"gorm.io/gorm"
)

// Quiz is one published revision of the chronotype questionnaire. Revisions
// never mutate in place; publishing bumps Version and submissions carry the
// version they were answered against.
type Quiz struct {
	ID        uint           `json:"id" gorm:"primaryKey"`
	PublicID  string         `json:"public_id" gorm:"uniqueIndex;not null"`
	Title     string         `json:"title" gorm:"not null"`
	Version   int            `json:"version" gorm:"not null;default:1"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`

	// Relationships
	Questions []Question `json:"questions,omitempty" gorm:"foreignKey:QuizID"`
}
