package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	ID                  uint           `json:"id" gorm:"primaryKey"`
	Email               string         `json:"email" gorm:"uniqueIndex;not null"`
	PasswordHash        string         `json:"-" gorm:"not null"`
	FirstName           string         `json:"first_name"`
	LastName            string         `json:"last_name"`
	Timezone            string         `json:"timezone"`
	OnboardingCompleted bool           `json:"onboarding_completed" gorm:"not null;default:false"`
	CreatedAt           time.Time      `json:"created_at"`
	UpdatedAt           time.Time      `json:"updated_at"`
	DeletedAt           gorm.DeletedAt `json:"-" gorm:"index"`

	// Relationships
	Attempts   []QuizAttempt   `json:"attempts,omitempty" gorm:"foreignKey:UserID"`
	Chronotype *UserChronotype `json:"chronotype,omitempty" gorm:"foreignKey:UserID"`
}
