package services

import (
	"errors"
	"testing"

	"sero-backend/chronotype"
	"sero-backend/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB opens a per-test in-memory database. The shared-cache DSN keyed
// by test name keeps every pooled connection on the same database.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := "file:" + t.Name() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.Quiz{},
		&models.Question{},
		&models.Option{},
		&models.QuizAttempt{},
		&models.AttemptAnswer{},
		&models.UserChronotype{},
		&models.EnergyCurvePoint{},
		&models.FocusWindow{},
	)
	if err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return db
}

func createTestUser(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()

	user := models.User{Email: email, PasswordHash: "x"}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return &user
}

// lionAnswers answers every seeded question with the strongest morning option.
func lionAnswers(t *testing.T, quiz *models.Quiz) []AnswerPayload {
	t.Helper()

	byKey := map[string]string{
		"welcome":                       "energy-cycles",
		"sleep_deprivation_performance": "very-poorly",
		"preferred_wake_time":           "5am",
		"preferred_bed_time":            "8pm",
		"morning_alertness":             "very-alert",
		"exam_time_preference":          "8am-test",
		"bedtime_tiredness":             "very-tired",
		"late_night_recovery":           "wake-later",
	}

	answers := make([]AnswerPayload, 0, len(quiz.Questions))
	for _, q := range quiz.Questions {
		value, ok := byKey[q.QuestionKey]
		if !ok {
			t.Fatalf("no test answer for question key %q", q.QuestionKey)
		}
		answers = append(answers, AnswerPayload{QuestionID: q.ID, AnswerValue: value})
	}
	return answers
}

func TestSeedAndGetActiveDefinition(t *testing.T) {
	db := setupTestDB(t)
	if err := SeedDefaultQuiz(db); err != nil {
		t.Fatalf("SeedDefaultQuiz returned error: %v", err)
	}
	// Seeding twice must not duplicate the quiz.
	if err := SeedDefaultQuiz(db); err != nil {
		t.Fatalf("second SeedDefaultQuiz returned error: %v", err)
	}

	svc := NewQuizService(db, nil)
	quiz, err := svc.GetActiveDefinition()
	if err != nil {
		t.Fatalf("GetActiveDefinition returned error: %v", err)
	}

	if quiz.Version != 1 {
		t.Fatalf("active version = %d, want 1", quiz.Version)
	}
	if len(quiz.Questions) != 8 {
		t.Fatalf("got %d questions, want 8", len(quiz.Questions))
	}
	for i, q := range quiz.Questions {
		if q.OrderIndex != i {
			t.Fatalf("question %d has order index %d", i, q.OrderIndex)
		}
		if len(q.Options) == 0 {
			t.Fatalf("question %q has no options", q.QuestionKey)
		}
	}
	if quiz.Questions[0].QuestionKey != "welcome" {
		t.Fatalf("first question is %q, want welcome", quiz.Questions[0].QuestionKey)
	}

	var count int64
	db.Model(&models.Quiz{}).Count(&count)
	if count != 1 {
		t.Fatalf("quiz count = %d after double seed, want 1", count)
	}
}

func TestSubmitLionProfile(t *testing.T) {
	db := setupTestDB(t)
	if err := SeedDefaultQuiz(db); err != nil {
		t.Fatalf("SeedDefaultQuiz returned error: %v", err)
	}

	svc := NewQuizService(db, nil)
	user := createTestUser(t, db, "lion@example.com")

	quiz, err := svc.GetActiveDefinition()
	if err != nil {
		t.Fatalf("GetActiveDefinition returned error: %v", err)
	}

	res, err := svc.Submit(user.ID, &SubmitRequest{
		QuizID:      quiz.PublicID,
		QuizVersion: quiz.Version,
		Responses:   lionAnswers(t, quiz),
	}, nil)
	if err != nil {
		t.Fatalf("Submit returned error: %v", err)
	}

	if res.Chronotype.ChronotypeType != "Lion" {
		t.Fatalf("chronotype = %q, want Lion", res.Chronotype.ChronotypeType)
	}
	if res.Chronotype.ConfidenceScore <= 0.5 {
		t.Fatalf("confidence = %v, want a clear lead", res.Chronotype.ConfidenceScore)
	}
	if res.NormalizedScores[chronotype.Lion] <= res.NormalizedScores[chronotype.Bear] {
		t.Fatalf("lion did not lead: %v", res.NormalizedScores)
	}
	if len(res.Responses) != 8 {
		t.Fatalf("persisted %d answers, want 8", len(res.Responses))
	}

	var ct models.UserChronotype
	if err := db.Where("user_id = ?", user.ID).First(&ct).Error; err != nil {
		t.Fatalf("chronotype record not written: %v", err)
	}
	if ct.Label != "lion" || ct.Source != "quiz" {
		t.Fatalf("chronotype record = %s/%s, want lion/quiz", ct.Label, ct.Source)
	}

	var points int64
	db.Model(&models.EnergyCurvePoint{}).Where("user_chronotype_id = ?", ct.ID).Count(&points)
	if points != 6 {
		t.Fatalf("seeded %d curve points, want 6", points)
	}
	var windows int64
	db.Model(&models.FocusWindow{}).Where("user_chronotype_id = ?", ct.ID).Count(&windows)
	if windows == 0 {
		t.Fatal("no focus windows seeded")
	}

	var refreshed models.User
	if err := db.First(&refreshed, user.ID).Error; err != nil {
		t.Fatalf("failed to reload user: %v", err)
	}
	if !refreshed.OnboardingCompleted {
		t.Fatal("onboarding_completed not set after submission")
	}

	attempt, err := svc.GetLatestAttempt(user.ID)
	if err != nil {
		t.Fatalf("GetLatestAttempt returned error: %v", err)
	}
	if attempt.PublicID != res.Attempt.PublicID {
		t.Fatalf("latest attempt %s, want %s", attempt.PublicID, res.Attempt.PublicID)
	}
}

func TestSubmitReplacesChronotype(t *testing.T) {
	db := setupTestDB(t)
	if err := SeedDefaultQuiz(db); err != nil {
		t.Fatalf("SeedDefaultQuiz returned error: %v", err)
	}

	svc := NewQuizService(db, nil)
	user := createTestUser(t, db, "retake@example.com")

	quiz, err := svc.GetActiveDefinition()
	if err != nil {
		t.Fatalf("GetActiveDefinition returned error: %v", err)
	}

	req := &SubmitRequest{QuizID: quiz.PublicID, QuizVersion: quiz.Version, Responses: lionAnswers(t, quiz)}
	if _, err := svc.Submit(user.ID, req, nil); err != nil {
		t.Fatalf("first Submit returned error: %v", err)
	}
	if _, err := svc.Submit(user.ID, req, nil); err != nil {
		t.Fatalf("second Submit returned error: %v", err)
	}

	var chronotypes int64
	db.Model(&models.UserChronotype{}).Where("user_id = ?", user.ID).Count(&chronotypes)
	if chronotypes != 1 {
		t.Fatalf("chronotype count = %d after retake, want 1", chronotypes)
	}

	var ct models.UserChronotype
	db.Where("user_id = ?", user.ID).First(&ct)
	var points int64
	db.Model(&models.EnergyCurvePoint{}).Where("user_chronotype_id = ?", ct.ID).Count(&points)
	if points != 6 {
		t.Fatalf("curve points = %d after retake, want 6", points)
	}

	var attempts int64
	db.Model(&models.QuizAttempt{}).Where("user_id = ?", user.ID).Count(&attempts)
	if attempts != 2 {
		t.Fatalf("attempt count = %d, want 2", attempts)
	}
}

func TestSubmitRejections(t *testing.T) {
	db := setupTestDB(t)
	if err := SeedDefaultQuiz(db); err != nil {
		t.Fatalf("SeedDefaultQuiz returned error: %v", err)
	}

	svc := NewQuizService(db, nil)
	user := createTestUser(t, db, "reject@example.com")

	quiz, err := svc.GetActiveDefinition()
	if err != nil {
		t.Fatalf("GetActiveDefinition returned error: %v", err)
	}
	answers := lionAnswers(t, quiz)

	_, err = svc.Submit(user.ID, &SubmitRequest{
		QuizID: "no-such-quiz", QuizVersion: 1, Responses: answers,
	}, nil)
	if !errors.Is(err, ErrQuizNotFound) {
		t.Fatalf("unknown quiz err = %v, want ErrQuizNotFound", err)
	}

	_, err = svc.Submit(user.ID, &SubmitRequest{
		QuizID: quiz.PublicID, QuizVersion: quiz.Version + 1, Responses: answers,
	}, nil)
	if !errors.Is(err, ErrVersionMismatch) {
		t.Fatalf("stale version err = %v, want ErrVersionMismatch", err)
	}

	_, err = svc.Submit(user.ID, &SubmitRequest{
		QuizID: quiz.PublicID, QuizVersion: quiz.Version, Responses: answers[:3],
	}, nil)
	if !errors.Is(err, ErrIncompleteSubmission) {
		t.Fatalf("partial answers err = %v, want ErrIncompleteSubmission", err)
	}

	bogus := make([]AnswerPayload, len(answers))
	copy(bogus, answers)
	bogus[0].QuestionID = 99999
	_, err = svc.Submit(user.ID, &SubmitRequest{
		QuizID: quiz.PublicID, QuizVersion: quiz.Version, Responses: bogus,
	}, nil)
	if !errors.Is(err, chronotype.ErrUnknownQuestion) {
		t.Fatalf("unknown question err = %v, want ErrUnknownQuestion", err)
	}

	// Nothing should have been written by the rejected submissions.
	var attempts int64
	db.Model(&models.QuizAttempt{}).Where("user_id = ?", user.ID).Count(&attempts)
	if attempts != 0 {
		t.Fatalf("attempt count = %d after rejections, want 0", attempts)
	}
}
