package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// UserChronotype is the user's current classification plus its derived
// guidance. Re-taking the quiz replaces the curve and focus windows rather
// than mutating old points.
type UserChronotype struct {
	ID          uint           `json:"id" gorm:"primaryKey"`
	PublicID    string         `json:"public_id" gorm:"uniqueIndex;not null"`
	UserID      uint           `json:"user_id" gorm:"not null;index"`
	Label       string         `json:"label" gorm:"not null"`
	Description string         `json:"description"`
	Source      string         `json:"source" gorm:"not null;default:'quiz'"`
	Confidence  float64        `json:"confidence" gorm:"not null;default:0"`
	Guidance    datatypes.JSON `json:"guidance"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `json:"-" gorm:"index"`

	// Relationships
	EnergyCurve  []EnergyCurvePoint `json:"energy_curve,omitempty" gorm:"foreignKey:UserChronotypeID"`
	FocusWindows []FocusWindow      `json:"focus_windows,omitempty" gorm:"foreignKey:UserChronotypeID"`
}

// EnergyCurvePoint is one time-of-day sample of the energy curve. Seed points
// from a quiz submission have ActualEnergy equal to PredictedEnergy and a zero
// Difference; the feedback path overwrites ActualEnergy and Difference later.
type EnergyCurvePoint struct {
	ID               uint           `json:"id" gorm:"primaryKey"`
	UserChronotypeID uint           `json:"user_chronotype_id" gorm:"not null;index"`
	Hour             int            `json:"hour" gorm:"not null"`
	PredictedEnergy  float64        `json:"predicted_energy" gorm:"not null"`
	ActualEnergy     float64        `json:"actual_energy" gorm:"not null"`
	Difference       float64        `json:"difference" gorm:"not null;default:0"` // predicted minus actual
	Context          datatypes.JSON `json:"context"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
	DeletedAt        gorm.DeletedAt `json:"-" gorm:"index"`
}

type FocusWindow struct {
	ID               uint           `json:"id" gorm:"primaryKey"`
	UserChronotypeID uint           `json:"user_chronotype_id" gorm:"not null;index"`
	WindowType       string         `json:"window_type" gorm:"not null"`
	StartHour        int            `json:"start_hour" gorm:"not null"`
	EndHour          int            `json:"end_hour" gorm:"not null"`
	Recommendation   string         `json:"recommendation"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
	DeletedAt        gorm.DeletedAt `json:"-" gorm:"index"`
}
