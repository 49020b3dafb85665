package chronotype

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
)

// ErrUnknownQuestion is returned when an answer references a question id that
// is not part of the definition being scored.
var ErrUnknownQuestion = errors.New("unknown question")

// Question is one entry of a quiz definition as the scorer sees it. Key is
// the weight-table lookup key, stable across revisions; ID is whatever the
// storage layer uses and only needs to match the answers' QuestionID.
type Question struct {
	ID         string
	Key        string
	Prompt     string
	Type       string
	Points     float64
	OrderIndex int
}

// Definition is an immutable snapshot of one quiz revision.
type Definition struct {
	ID        string
	Version   int
	Questions []Question
}

// Answer is one submitted response. Value accepts the scalar forms clients
// send (string or number); it is coerced to the string lookup key once, at
// the scorer boundary.
type Answer struct {
	QuestionID string
	Value      any
	ElapsedMS  *int
}

// Scores maps every label in the closed set to a value.
type Scores map[Label]float64

// Breakdown records the per-question weight contributions, keyed by question
// key, kept for explainability.
type Breakdown map[string]map[Label]float64

// Result is the full output of one scoring pass.
type Result struct {
	Raw        Scores
	Normalized Scores
	Breakdown  Breakdown
}

// Score accumulates weighted contributions per label across all answers and
// normalizes them. Pure function: identical inputs always produce identical
// output. Answers whose (key, value) pair is absent from the weight table
// contribute nothing; an answer whose question id does not resolve fails with
// ErrUnknownQuestion.
func Score(def *Definition, answers []Answer) (*Result, error) {
	raw := make(Scores, len(Labels))
	for _, label := range Labels {
		raw[label] = 0.0
	}
	breakdown := make(Breakdown)

	byID := make(map[string]Question, len(def.Questions))
	for _, q := range def.Questions {
		byID[q.ID] = q
	}

	for _, answer := range answers {
		question, ok := byID[answer.QuestionID]
		if !ok {
			return nil, fmt.Errorf("%w: id %s", ErrUnknownQuestion, answer.QuestionID)
		}

		weights := WeightsFor(question.Key, answerKey(answer.Value))
		breakdown[question.Key] = weights
		for label, w := range weights {
			raw[label] += w
		}
	}

	return &Result{
		Raw:        raw,
		Normalized: normalize(raw),
		Breakdown:  breakdown,
	}, nil
}

// normalize divides each score by the total across labels. A zero total (no
// answer produced any signal) keeps the divisor at 1.0 so the result is an
// all-zero distribution instead of a division error.
func normalize(raw Scores) Scores {
	total := 0.0
	for _, v := range raw {
		total += v
	}
	if total == 0 {
		total = 1.0
	}

	normalized := make(Scores, len(raw))
	for label, v := range raw {
		normalized[label] = round4(v / total)
	}
	return normalized
}

// answerKey coerces a submitted answer value to its weight-table key. The
// accepted variants are string and the numeric forms JSON decoding produces.
func answerKey(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case json.Number:
		return v.String()
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	default:
		return fmt.Sprint(v)
	}
}

// round4 rounds to 4 decimal places for presentation stability of persisted
// and compared scores.
func round4(v float64) float64 {
	return math.Round(v*10000) / 10000
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
