package chronotype

import "errors"

// Alternate fixed-question scoring policy preserved from the first version of
// the questionnaire: integer morningness points over the original eight
// questions, collapsed to three bands. Kept as a documented policy choice;
// the submission path runs the table-driven four-way model and the two label
// sets are never merged.

// Band is a legacy three-way classification.
type Band string

const (
	EarlyBird        Band = "Early Bird"
	IntermediateBand Band = "Intermediate"
	NightOwl         Band = "Night Owl"
)

// ErrNoValidAnswers is returned when no submitted answer produced any scoring
// signal. The legacy path treats that as a client error instead of returning
// a meaningless classification.
var ErrNoValidAnswers = errors.New("no valid answers")

// welcomeKey is the onboarding question shown first in the original quiz. It
// carries no chronotype signal and is excluded from scoring.
const welcomeKey = "welcome"

// legacyPoints maps (question key, answer value) to morningness points.
// Higher totals lean early-bird, lower totals lean night-owl.
var legacyPoints = map[string]map[string]int{
	"sleep_deprivation_performance": {
		"very-poorly": 4, "poorly": 3, "neither": 2, "well": 0,
	},
	"preferred_wake_time": {
		"5am": 5, "6am": 4, "7am": 3, "8am": 2, "9am": 1, "10am": 0,
	},
	"preferred_bed_time": {
		"8pm": 5, "9pm": 4, "10pm": 3, "11pm": 2, "12am": 1, "1am": 0,
	},
	"morning_alertness": {
		"not-alert": 0, "slightly-alert": 1, "fairly-alert": 3, "very-alert": 4,
	},
	"exam_time_preference": {
		"8am-test": 4, "11am-test": 3, "3pm-test": 1, "7pm-test": 0,
	},
	"bedtime_tiredness": {
		"not-tired": 0, "slightly-tired": 1, "fairly-tired": 3, "very-tired": 4,
	},
	"late_night_recovery": {
		"wake-later": 4, "wake-later-sleep": 2, "wake-much-later": 0,
	},
}

// legacyMax is the best possible total per question, used to place the sum on
// a fixed scale regardless of how many questions were answered.
var legacyMax = map[string]int{
	"sleep_deprivation_performance": 4,
	"preferred_wake_time":           5,
	"preferred_bed_time":            5,
	"morning_alertness":             4,
	"exam_time_preference":          4,
	"bedtime_tiredness":             4,
	"late_night_recovery":           4,
}

// LegacyScore classifies answers keyed by question key under the fixed-question
// policy. The welcome sentinel is skipped; unrecognized keys or values are
// skipped too, and if nothing at all matched the result is ErrNoValidAnswers.
func LegacyScore(answers map[string]string) (Band, error) {
	total := 0
	possible := 0
	matched := 0

	for key, value := range answers {
		if key == welcomeKey {
			continue
		}
		points, ok := legacyPoints[key][value]
		if !ok {
			continue
		}
		total += points
		possible += legacyMax[key]
		matched++
	}

	if matched == 0 {
		return "", ErrNoValidAnswers
	}

	ratio := float64(total) / float64(possible)
	switch {
	case ratio >= 0.65:
		return EarlyBird, nil
	case ratio <= 0.35:
		return NightOwl, nil
	default:
		return IntermediateBand, nil
	}
}

var legacyCurves = map[Band][]curveAnchor{
	EarlyBird:        {{6, 0.90}, {9, 0.95}, {12, 0.70}, {15, 0.50}, {18, 0.35}, {21, 0.20}},
	IntermediateBand: {{6, 0.45}, {9, 0.70}, {12, 0.80}, {15, 0.65}, {18, 0.55}, {21, 0.35}},
	NightOwl:         {{6, 0.20}, {9, 0.35}, {12, 0.50}, {15, 0.70}, {18, 0.85}, {21, 0.90}},
}

// LegacyCurve returns the six-anchor baseline energy curve for a legacy band,
// seeded the same way as the four-way curves.
func LegacyCurve(band Band) []CurvePoint {
	anchors := legacyCurves[band]
	curve := make([]CurvePoint, len(anchors))
	for i, a := range anchors {
		curve[i] = CurvePoint{
			Hour:       a.hour,
			Predicted:  a.energy,
			Actual:     a.energy,
			Difference: 0.0,
			Context: map[string]string{
				"source":     "initial_quiz",
				"chronotype": string(band),
			},
		}
	}
	return curve
}
