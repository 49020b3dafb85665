package services

import (
	"encoding/json"
	"errors"

	"sero-backend/chronotype"
	"sero-backend/models"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var (
	ErrChronotypeNotFound = errors.New("chronotype not found")
	ErrCurvePointNotFound = errors.New("energy curve point not found")
	ErrInvalidEnergyLevel = errors.New("energy level must be within [0, 1]")
	ErrInvalidLabel       = errors.New("unknown chronotype label")
)

type ChronotypeService struct {
	db *gorm.DB
}

func NewChronotypeService(db *gorm.DB) *ChronotypeService {
	return &ChronotypeService{db: db}
}

type CreateChronotypeRequest struct {
	Label       string             `json:"label" binding:"required"`
	Description string             `json:"description"`
	Source      string             `json:"source"`
	DataPoints  []CurvePointCreate `json:"data_points"`
}

type CurvePointCreate struct {
	Hour            int               `json:"hour" binding:"min=0,max=23"`
	PredictedEnergy float64           `json:"predicted_energy" binding:"min=0,max=1"`
	ActualEnergy    *float64          `json:"actual_energy"`
	Context         map[string]string `json:"context"`
}

type UpdateChronotypeRequest struct {
	Description *string            `json:"description"`
	DataPoints  []CurvePointCreate `json:"data_points"`
}

type EnergyFeedbackRequest struct {
	ActualEnergy float64           `json:"actual_energy"`
	Context      map[string]string `json:"context"`
}

// Create stores a chronotype record with caller-supplied curve points. This
// is the manual path; the quiz submission path seeds records itself.
func (s *ChronotypeService) Create(userID uint, req *CreateChronotypeRequest) (*models.UserChronotype, error) {
	label := chronotype.Label(req.Label)
	if !label.Valid() {
		return nil, ErrInvalidLabel
	}

	source := req.Source
	if source == "" {
		source = "manual"
	}

	ct := models.UserChronotype{
		PublicID:    uuid.NewString(),
		UserID:      userID,
		Label:       string(label),
		Description: req.Description,
		Source:      source,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&ct).Error; err != nil {
			return err
		}
		return s.createCurvePoints(tx, ct.ID, req.DataPoints)
	})
	if err != nil {
		return nil, err
	}

	return s.getByPublicID(ct.PublicID, userID)
}

func (s *ChronotypeService) createCurvePoints(tx *gorm.DB, chronotypeID uint, points []CurvePointCreate) error {
	for _, p := range points {
		actual := p.PredictedEnergy
		if p.ActualEnergy != nil {
			actual = *p.ActualEnergy
		}
		if actual < 0 || actual > 1 || p.PredictedEnergy < 0 || p.PredictedEnergy > 1 {
			return ErrInvalidEnergyLevel
		}

		contextJSON, err := json.Marshal(p.Context)
		if err != nil {
			return err
		}

		row := models.EnergyCurvePoint{
			UserChronotypeID: chronotypeID,
			Hour:             p.Hour,
			PredictedEnergy:  p.PredictedEnergy,
			ActualEnergy:     actual,
			Difference:       p.PredictedEnergy - actual,
			Context:          datatypes.JSON(contextJSON),
		}
		if err := tx.Create(&row).Error; err != nil {
			return err
		}
	}
	return nil
}

func (s *ChronotypeService) getByPublicID(publicID string, userID uint) (*models.UserChronotype, error) {
	var ct models.UserChronotype
	err := s.db.Where("public_id = ? AND user_id = ?", publicID, userID).
		Preload("EnergyCurve", func(db *gorm.DB) *gorm.DB {
			return db.Order("energy_curve_points.hour")
		}).
		Preload("FocusWindows", func(db *gorm.DB) *gorm.DB {
			return db.Order("focus_windows.start_hour")
		}).
		First(&ct).Error
	if err != nil {
		return nil, ErrChronotypeNotFound
	}
	return &ct, nil
}

func (s *ChronotypeService) Get(publicID string, userID uint) (*models.UserChronotype, error) {
	return s.getByPublicID(publicID, userID)
}

// GetByUser returns the caller's current chronotype record.
func (s *ChronotypeService) GetByUser(userID uint) (*models.UserChronotype, error) {
	var ct models.UserChronotype
	err := s.db.Where("user_id = ?", userID).
		Preload("EnergyCurve", func(db *gorm.DB) *gorm.DB {
			return db.Order("energy_curve_points.hour")
		}).
		Preload("FocusWindows", func(db *gorm.DB) *gorm.DB {
			return db.Order("focus_windows.start_hour")
		}).
		First(&ct).Error
	if err != nil {
		return nil, ErrChronotypeNotFound
	}
	return &ct, nil
}

// Update changes the description and/or replaces the curve points of a
// chronotype record.
func (s *ChronotypeService) Update(publicID string, userID uint, req *UpdateChronotypeRequest) (*models.UserChronotype, error) {
	ct, err := s.getByPublicID(publicID, userID)
	if err != nil {
		return nil, err
	}

	if req.Description == nil && req.DataPoints == nil {
		return nil, errors.New("no fields to update")
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if req.Description != nil {
			ct.Description = *req.Description
			if err := tx.Save(ct).Error; err != nil {
				return err
			}
		}

		if req.DataPoints != nil {
			if err := tx.Where("user_chronotype_id = ?", ct.ID).Delete(&models.EnergyCurvePoint{}).Error; err != nil {
				return err
			}
			return s.createCurvePoints(tx, ct.ID, req.DataPoints)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.getByPublicID(publicID, userID)
}

func (s *ChronotypeService) Delete(publicID string, userID uint) error {
	ct, err := s.getByPublicID(publicID, userID)
	if err != nil {
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_chronotype_id = ?", ct.ID).Delete(&models.EnergyCurvePoint{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_chronotype_id = ?", ct.ID).Delete(&models.FocusWindow{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.UserChronotype{}, ct.ID).Error
	})
}

// GetEnergyCurve returns the curve points ordered by hour, ownership-checked.
func (s *ChronotypeService) GetEnergyCurve(publicID string, userID uint) ([]models.EnergyCurvePoint, error) {
	ct, err := s.getByPublicID(publicID, userID)
	if err != nil {
		return nil, err
	}

	var points []models.EnergyCurvePoint
	err = s.db.Where("user_chronotype_id = ?", ct.ID).Order("hour").Find(&points).Error
	return points, err
}

// GetFocusWindows returns the focus windows ordered by start hour.
func (s *ChronotypeService) GetFocusWindows(publicID string, userID uint) ([]models.FocusWindow, error) {
	ct, err := s.getByPublicID(publicID, userID)
	if err != nil {
		return nil, err
	}

	var windows []models.FocusWindow
	err = s.db.Where("user_chronotype_id = ?", ct.ID).Order("start_hour").Find(&windows).Error
	return windows, err
}

// RecordEnergyFeedback overwrites the actual energy of one curve point with a
// real observation. The point keeps its predicted value; the signed
// difference and the context source are updated, and connected clients get an
// energy_update push.
func (s *ChronotypeService) RecordEnergyFeedback(publicID string, userID uint, hour int, req *EnergyFeedbackRequest, hub *Hub) (*models.EnergyCurvePoint, error) {
	if req.ActualEnergy < 0 || req.ActualEnergy > 1 {
		return nil, ErrInvalidEnergyLevel
	}

	ct, err := s.getByPublicID(publicID, userID)
	if err != nil {
		return nil, err
	}

	var point models.EnergyCurvePoint
	if err := s.db.Where("user_chronotype_id = ? AND hour = ?", ct.ID, hour).First(&point).Error; err != nil {
		return nil, ErrCurvePointNotFound
	}

	context := map[string]string{"source": "feedback", "chronotype": ct.Label}
	for k, v := range req.Context {
		context[k] = v
	}
	contextJSON, err := json.Marshal(context)
	if err != nil {
		return nil, err
	}

	point.ActualEnergy = req.ActualEnergy
	point.Difference = point.PredictedEnergy - req.ActualEnergy
	point.Context = datatypes.JSON(contextJSON)
	if err := s.db.Save(&point).Error; err != nil {
		return nil, err
	}

	if hub != nil {
		hub.BroadcastToUser(userID, "energy_update", map[string]any{
			"chronotype_id":    ct.PublicID,
			"hour":             point.Hour,
			"predicted_energy": point.PredictedEnergy,
			"actual_energy":    point.ActualEnergy,
			"difference":       point.Difference,
		})
	}

	return &point, nil
}
