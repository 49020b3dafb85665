package models

import (
	"time"

	"gorm.io/gorm"
)

// Option is an allowed answer for a choice-type question. Value is what gets
// submitted and matched against the weight table; Text and Icon are display.
type Option struct {
	ID         uint           `json:"id" gorm:"primaryKey"`
	QuestionID uint           `json:"question_id" gorm:"not null"`
	Value      string         `json:"value" gorm:"not null"`
	Text       string         `json:"text" gorm:"not null"`
	Icon       string         `json:"icon"`
	Order      int            `json:"order" gorm:"not null"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `json:"-" gorm:"index"`

	// Relationships
	Question Question `json:"question,omitempty"`
}
