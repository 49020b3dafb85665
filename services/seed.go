package services

import (
	"errors"
	"log"

	"sero-backend/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type seedOption struct {
	value string
	text  string
	icon  string
}

type seedQuestion struct {
	key     string
	prompt  string
	options []seedOption
}

// The published v1 questionnaire. The welcome question carries no weight-table
// coverage and exists for onboarding context only.
var defaultQuestions = []seedQuestion{
	{
		key:    "welcome",
		prompt: "Welcome! What brings you to Sero?",
		options: []seedOption{
			{"work-life-balance", "Finding better work-life balance", "🏃‍♂️"},
			{"energy-cycles", "Understanding my energy cycles better", "⚡"},
			{"productivity", "Increasing my productivity", "📚"},
		},
	},
	{
		key:    "sleep_deprivation_performance",
		prompt: "Suppose you had to stay up 4 hours later than usual for some reason. How would you perform the next day?",
		options: []seedOption{
			{"very-poorly", "Very poorly", "😴"},
			{"poorly", "Poorly", "😵"},
			{"neither", "Neither poorly nor well", "😐"},
			{"well", "Well", "😊"},
		},
	},
	{
		key:    "preferred_wake_time",
		prompt: "What time would you prefer to wake up if you had complete freedom to plan your day?",
		options: []seedOption{
			{"5am", "5:00 AM", "🌅"},
			{"6am", "6:00 AM", "🌄"},
			{"7am", "7:00 AM", "☀️"},
			{"8am", "8:00 AM", "🌞"},
			{"9am", "9:00 AM", "🌤️"},
			{"10am", "10:00 AM or later", "🌥️"},
		},
	},
	{
		key:    "preferred_bed_time",
		prompt: "What time would you prefer to go to bed if you had complete freedom to plan your evening?",
		options: []seedOption{
			{"8pm", "8:00 PM", "🌆"},
			{"9pm", "9:00 PM", "🌇"},
			{"10pm", "10:00 PM", "🌃"},
			{"11pm", "11:00 PM", "🌌"},
			{"12am", "12:00 AM", "🌙"},
			{"1am", "1:00 AM or later", "🌚"},
		},
	},
	{
		key:    "morning_alertness",
		prompt: "How alert do you feel during the first half hour after waking up in the morning?",
		options: []seedOption{
			{"not-alert", "Not at all alert", "😴"},
			{"slightly-alert", "Slightly alert", "😑"},
			{"fairly-alert", "Fairly alert", "😊"},
			{"very-alert", "Very alert", "😄"},
		},
	},
	{
		key:    "exam_time_preference",
		prompt: "You have to take a test that you know will be mentally exhausting and will last 2 hours. Which ONE of the four testing times would you choose?",
		options: []seedOption{
			{"8am-test", "8:00 AM - 10:00 AM", "🌅"},
			{"11am-test", "11:00 AM - 1:00 PM", "☀️"},
			{"3pm-test", "3:00 PM - 5:00 PM", "🌤️"},
			{"7pm-test", "7:00 PM - 9:00 PM", "🌆"},
		},
	},
	{
		key:    "bedtime_tiredness",
		prompt: "If you went to bed at 11:00 PM, what level of tiredness would you be?",
		options: []seedOption{
			{"not-tired", "Not at all tired", "😄"},
			{"slightly-tired", "A little tired", "😊"},
			{"fairly-tired", "Fairly tired", "😐"},
			{"very-tired", "Very tired", "😴"},
		},
	},
	{
		key:    "late_night_recovery",
		prompt: "You have gone to bed several hours later than usual, but there is no need to get up at any particular time the next morning. Which ONE of the following are you most likely to do?",
		options: []seedOption{
			{"wake-later", "Wake up at the usual time, but not fall back asleep", "⏰"},
			{"wake-later-sleep", "Wake up at the usual time, feel drowsy, then fall back asleep", "😴"},
			{"wake-much-later", "Wake up much later than usual", "😪"},
		},
	},
}

// SeedDefaultQuiz publishes version 1 of the questionnaire if no quiz exists
// yet. Later revisions are editorial content and arrive through migrations,
// not through code.
func SeedDefaultQuiz(db *gorm.DB) error {
	var existing models.Quiz
	err := db.First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	return db.Transaction(func(tx *gorm.DB) error {
		quiz := models.Quiz{
			PublicID: uuid.NewString(),
			Title:    "Chronotype Assessment",
			Version:  1,
		}
		if err := tx.Create(&quiz).Error; err != nil {
			return err
		}

		for i, q := range defaultQuestions {
			question := models.Question{
				QuizID:       quiz.ID,
				QuestionKey:  q.key,
				Prompt:       q.prompt,
				QuestionType: "single_choice",
				Points:       1.0,
				OrderIndex:   i,
			}
			if err := tx.Create(&question).Error; err != nil {
				return err
			}

			for j, opt := range q.options {
				option := models.Option{
					QuestionID: question.ID,
					Value:      opt.value,
					Text:       opt.text,
					Icon:       opt.icon,
					Order:      j,
				}
				if err := tx.Create(&option).Error; err != nil {
					return err
				}
			}
		}

		log.Printf("Seeded quiz definition %q version %d", quiz.Title, quiz.Version)
		return nil
	})
}
