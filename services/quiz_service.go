package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strconv"
	"time"

	"sero-backend/chronotype"
	"sero-backend/models"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	activeQuizCacheKey = "quiz:active"
	activeQuizCacheTTL = 10 * time.Minute
)

var (
	ErrQuizNotFound         = errors.New("quiz not found")
	ErrVersionMismatch      = errors.New("quiz version mismatch")
	ErrIncompleteSubmission = errors.New("every question must be answered")
)

type QuizService struct {
	db    *gorm.DB
	redis *redis.Client
}

func NewQuizService(db *gorm.DB, redis *redis.Client) *QuizService {
	return &QuizService{db: db, redis: redis}
}

type AnswerPayload struct {
	QuestionID  uint `json:"question_id" binding:"required"`
	AnswerValue any  `json:"answer_value" binding:"required"`
	ElapsedMS   *int `json:"elapsed_ms"`
	// Weights may arrive as a denormalized copy from the client; it is
	// ignored and recomputed server-side before anything is persisted.
	Weights map[string]float64 `json:"weights"`
}

type SubmitRequest struct {
	QuizID      string          `json:"quiz_id" binding:"required"`
	QuizVersion int             `json:"quiz_version" binding:"required"`
	Responses   []AnswerPayload `json:"responses" binding:"required,min=1"`
}

type ChronotypeSummary struct {
	ChronotypeType           string                 `json:"chronotype_type"`
	ConfidenceScore          float64                `json:"confidence_score"`
	RecommendedSleepSchedule chronotype.SleepWindow `json:"recommended_sleep_schedule"`
	AnalysisDetails          map[string]any         `json:"analysis_details"`
}

type SubmitResult struct {
	Attempt           *models.QuizAttempt                     `json:"attempt"`
	Responses         []models.AttemptAnswer                  `json:"responses"`
	Chronotype        ChronotypeSummary                       `json:"chronotype"`
	NormalizedScores  chronotype.Scores                       `json:"normalized_scores"`
	RawScores         chronotype.Scores                       `json:"raw_scores"`
	QuestionBreakdown map[string]map[chronotype.Label]float64 `json:"question_breakdown"`
}

// GetActiveDefinition returns the highest published quiz revision with its
// questions in display order. Served from Redis when the cached copy is
// fresh; a miss falls through to the database.
func (s *QuizService) GetActiveDefinition() (*models.Quiz, error) {
	if quiz := s.getCachedDefinition(); quiz != nil {
		return quiz, nil
	}

	quiz, err := s.fetchDefinition("")
	if err != nil {
		return nil, err
	}

	s.cacheDefinition(quiz)
	return quiz, nil
}

func (s *QuizService) fetchDefinition(publicID string) (*models.Quiz, error) {
	query := s.db.
		Preload("Questions", func(db *gorm.DB) *gorm.DB {
			return db.Order("questions.order_index")
		}).
		Preload("Questions.Options", func(db *gorm.DB) *gorm.DB {
			return db.Order(`options."order"`)
		})
	if publicID != "" {
		query = query.Where("public_id = ?", publicID)
	}

	var quiz models.Quiz
	if err := query.Order("version DESC").First(&quiz).Error; err != nil {
		return nil, ErrQuizNotFound
	}
	return &quiz, nil
}

// Submit runs the strict submission path: the answered version must match the
// active definition, every question must be answered exactly once, and each
// answer must resolve to a question in the definition. On success the attempt,
// its answers, the user's chronotype, the energy-curve seed and the focus
// windows are written in one transaction.
func (s *QuizService) Submit(userID uint, req *SubmitRequest, hub *Hub) (*SubmitResult, error) {
	quiz, err := s.fetchDefinition(req.QuizID)
	if err != nil {
		return nil, err
	}

	if req.QuizVersion != quiz.Version {
		return nil, fmt.Errorf("%w: active version is %d", ErrVersionMismatch, quiz.Version)
	}
	if len(req.Responses) != len(quiz.Questions) {
		return nil, ErrIncompleteSubmission
	}

	def := definitionFromModel(quiz)
	answers := make([]chronotype.Answer, len(req.Responses))
	for i, r := range req.Responses {
		answers[i] = chronotype.Answer{
			QuestionID: strconv.FormatUint(uint64(r.QuestionID), 10),
			Value:      r.AnswerValue,
			ElapsedMS:  r.ElapsedMS,
		}
	}

	scored, err := chronotype.Score(def, answers)
	if err != nil {
		return nil, err
	}

	label, confidence := chronotype.Classify(scored.Normalized)
	profile := chronotype.Synthesize(label)

	summary := ChronotypeSummary{
		ChronotypeType:           label.Display(),
		ConfidenceScore:          confidence,
		RecommendedSleepSchedule: profile.SleepWindow,
		AnalysisDetails: map[string]any{
			"scores":             scored.Normalized,
			"raw_scores":         scored.Raw,
			"question_breakdown": scored.Breakdown,
			"recommendations":    profile.Recommendations,
		},
	}

	summaryJSON, err := json.Marshal(map[string]any{
		"chronotype":                 summary.ChronotypeType,
		"confidence":                 summary.ConfidenceScore,
		"scores":                     scored.Normalized,
		"raw_scores":                 scored.Raw,
		"question_breakdown":         scored.Breakdown,
		"recommended_sleep_schedule": profile.SleepWindow,
		"recommendations":            profile.Recommendations,
	})
	if err != nil {
		return nil, err
	}

	questionsByID := make(map[uint]models.Question, len(quiz.Questions))
	for _, q := range quiz.Questions {
		questionsByID[q.ID] = q
	}

	attempt := models.QuizAttempt{
		PublicID:    uuid.NewString(),
		QuizID:      quiz.ID,
		QuizVersion: quiz.Version,
		UserID:      userID,
		Summary:     datatypes.JSON(summaryJSON),
		SubmittedAt: time.Now().UTC(),
	}

	var userChronotype models.UserChronotype

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&attempt).Error; err != nil {
			return err
		}

		for _, r := range req.Responses {
			question := questionsByID[r.QuestionID]
			weights := chronotype.WeightsFor(question.QuestionKey, fmt.Sprint(r.AnswerValue))
			weightsJSON, err := json.Marshal(weights)
			if err != nil {
				return err
			}

			answer := models.AttemptAnswer{
				AttemptID:   attempt.ID,
				QuestionID:  r.QuestionID,
				AnswerValue: fmt.Sprint(r.AnswerValue),
				ElapsedMS:   r.ElapsedMS,
				Weights:     datatypes.JSON(weightsJSON),
			}
			if err := tx.Create(&answer).Error; err != nil {
				return err
			}
			attempt.Answers = append(attempt.Answers, answer)
		}

		ct, err := s.replaceChronotype(tx, userID, label, confidence, profile)
		if err != nil {
			return err
		}
		userChronotype = *ct

		return tx.Model(&models.User{}).Where("id = ?", userID).
			Update("onboarding_completed", true).Error
	})
	if err != nil {
		return nil, err
	}

	if hub != nil {
		hub.BroadcastToUser(userID, "chronotype_updated", map[string]any{
			"chronotype_id": userChronotype.PublicID,
			"label":         label,
			"confidence":    confidence,
		})
	}

	return &SubmitResult{
		Attempt:           &attempt,
		Responses:         attempt.Answers,
		Chronotype:        summary,
		NormalizedScores:  scored.Normalized,
		RawScores:         scored.Raw,
		QuestionBreakdown: scored.Breakdown,
	}, nil
}

// replaceChronotype swaps out the user's chronotype record and its derived
// rows. Old curve points and focus windows are removed rather than mutated;
// each submission produces a fresh seed.
func (s *QuizService) replaceChronotype(tx *gorm.DB, userID uint, label chronotype.Label, confidence float64, profile chronotype.Profile) (*models.UserChronotype, error) {
	guidanceJSON, err := json.Marshal(profile.Recommendations)
	if err != nil {
		return nil, err
	}

	var ct models.UserChronotype
	err = tx.Where("user_id = ?", userID).First(&ct).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		ct = models.UserChronotype{
			PublicID: uuid.NewString(),
			UserID:   userID,
		}
	case err != nil:
		return nil, err
	default:
		if err := tx.Where("user_chronotype_id = ?", ct.ID).Delete(&models.EnergyCurvePoint{}).Error; err != nil {
			return nil, err
		}
		if err := tx.Where("user_chronotype_id = ?", ct.ID).Delete(&models.FocusWindow{}).Error; err != nil {
			return nil, err
		}
	}

	ct.Label = string(label)
	ct.Source = "quiz"
	ct.Confidence = confidence
	ct.Guidance = datatypes.JSON(guidanceJSON)
	if err := tx.Save(&ct).Error; err != nil {
		return nil, err
	}

	for _, point := range profile.EnergyCurve {
		contextJSON, err := json.Marshal(point.Context)
		if err != nil {
			return nil, err
		}
		row := models.EnergyCurvePoint{
			UserChronotypeID: ct.ID,
			Hour:             point.Hour,
			PredictedEnergy:  point.Predicted,
			ActualEnergy:     point.Actual,
			Difference:       point.Difference,
			Context:          datatypes.JSON(contextJSON),
		}
		if err := tx.Create(&row).Error; err != nil {
			return nil, err
		}
	}

	for _, window := range profile.FocusWindows {
		row := models.FocusWindow{
			UserChronotypeID: ct.ID,
			WindowType:       window.Type,
			StartHour:        window.StartHour,
			EndHour:          window.EndHour,
			Recommendation:   window.Recommendation,
		}
		if err := tx.Create(&row).Error; err != nil {
			return nil, err
		}
	}

	return &ct, nil
}

// GetLatestAttempt returns the user's most recent attempt with its answers.
func (s *QuizService) GetLatestAttempt(userID uint) (*models.QuizAttempt, error) {
	var attempt models.QuizAttempt
	err := s.db.Where("user_id = ?", userID).
		Preload("Answers").
		Order("submitted_at DESC").
		First(&attempt).Error
	if err != nil {
		return nil, err
	}
	return &attempt, nil
}

func definitionFromModel(quiz *models.Quiz) *chronotype.Definition {
	def := &chronotype.Definition{
		ID:        quiz.PublicID,
		Version:   quiz.Version,
		Questions: make([]chronotype.Question, len(quiz.Questions)),
	}
	for i, q := range quiz.Questions {
		def.Questions[i] = chronotype.Question{
			ID:         strconv.FormatUint(uint64(q.ID), 10),
			Key:        q.QuestionKey,
			Prompt:     q.Prompt,
			Type:       q.QuestionType,
			Points:     q.Points,
			OrderIndex: q.OrderIndex,
		}
	}
	return def
}

func (s *QuizService) cacheDefinition(quiz *models.Quiz) {
	if s.redis == nil {
		return
	}

	data, err := json.Marshal(quiz)
	if err != nil {
		log.Printf("Failed to marshal quiz definition for cache: %v", err)
		return
	}

	if err := s.redis.Set(context.Background(), activeQuizCacheKey, data, activeQuizCacheTTL).Err(); err != nil {
		log.Printf("Failed to cache quiz definition: %v", err)
	}
}

func (s *QuizService) getCachedDefinition() *models.Quiz {
	if s.redis == nil {
		return nil
	}

	data, err := s.redis.Get(context.Background(), activeQuizCacheKey).Result()
	if err != nil {
		if err != redis.Nil {
			log.Printf("Redis error getting quiz definition: %v", err)
		}
		return nil
	}

	var quiz models.Quiz
	if err := json.Unmarshal([]byte(data), &quiz); err != nil {
		log.Printf("Failed to unmarshal cached quiz definition: %v", err)
		return nil
	}
	return &quiz
}
