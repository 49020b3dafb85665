package chronotype

import (
	"errors"
	"math"
	"reflect"
	"testing"
)

func testDefinition() *Definition {
	return &Definition{
		ID:      "quiz-1",
		Version: 1,
		Questions: []Question{
			{ID: "1", Key: "preferred_wake_time", Points: 1, OrderIndex: 0},
			{ID: "2", Key: "morning_alertness", Points: 1, OrderIndex: 1},
			{ID: "3", Key: "preferred_bed_time", Points: 1, OrderIndex: 2},
		},
	}
}

func TestScoreEarlyRiser(t *testing.T) {
	def := testDefinition()
	answers := []Answer{
		{QuestionID: "1", Value: "5am"},
		{QuestionID: "2", Value: "very-alert"},
	}

	res, err := Score(def, answers)
	if err != nil {
		t.Fatalf("Score returned error: %v", err)
	}

	wantRaw := Scores{Lion: 1.9, Bear: 0, Wolf: 0, Dolphin: 0}
	if !reflect.DeepEqual(res.Raw, wantRaw) {
		t.Fatalf("raw scores = %v, want %v", res.Raw, wantRaw)
	}

	wantNorm := Scores{Lion: 1.0, Bear: 0, Wolf: 0, Dolphin: 0}
	if !reflect.DeepEqual(res.Normalized, wantNorm) {
		t.Fatalf("normalized scores = %v, want %v", res.Normalized, wantNorm)
	}

	label, confidence := Classify(res.Normalized)
	if label != Lion {
		t.Fatalf("label = %s, want %s", label, Lion)
	}
	if confidence != 1.0 {
		t.Fatalf("confidence = %v, want 1.0", confidence)
	}
}

func TestScoreDeterministic(t *testing.T) {
	def := testDefinition()
	answers := []Answer{
		{QuestionID: "1", Value: "7am"},
		{QuestionID: "2", Value: "fairly-alert"},
		{QuestionID: "3", Value: "10pm"},
	}

	first, err := Score(def, answers)
	if err != nil {
		t.Fatalf("Score returned error: %v", err)
	}
	second, err := Score(def, answers)
	if err != nil {
		t.Fatalf("Score returned error: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("identical inputs produced different results: %v vs %v", first, second)
	}
}

func TestScoreNormalizedSum(t *testing.T) {
	def := testDefinition()
	answers := []Answer{
		{QuestionID: "1", Value: "9am"},
		{QuestionID: "2", Value: "slightly-alert"},
		{QuestionID: "3", Value: "11pm"},
	}

	res, err := Score(def, answers)
	if err != nil {
		t.Fatalf("Score returned error: %v", err)
	}

	sum := 0.0
	for _, v := range res.Normalized {
		if v < 0 {
			t.Fatalf("negative normalized score: %v", res.Normalized)
		}
		sum += v
	}
	if math.Abs(sum-1.0) > 0.001 {
		t.Fatalf("normalized sum = %v, want 1.0", sum)
	}
}

func TestScoreAllLabelsPresent(t *testing.T) {
	res, err := Score(testDefinition(), []Answer{{QuestionID: "1", Value: "5am"}})
	if err != nil {
		t.Fatalf("Score returned error: %v", err)
	}
	for _, label := range Labels {
		if _, ok := res.Raw[label]; !ok {
			t.Fatalf("raw scores missing label %s: %v", label, res.Raw)
		}
		if _, ok := res.Normalized[label]; !ok {
			t.Fatalf("normalized scores missing label %s: %v", label, res.Normalized)
		}
	}
}

func TestScoreEmptyAnswers(t *testing.T) {
	res, err := Score(testDefinition(), nil)
	if err != nil {
		t.Fatalf("Score returned error: %v", err)
	}
	for label, v := range res.Normalized {
		if v != 0 {
			t.Fatalf("label %s = %v, want all-zero distribution", label, v)
		}
	}

	label, confidence := Classify(res.Normalized)
	if label != Bear || confidence != 0 {
		t.Fatalf("Classify(all-zero) = (%s, %v), want (bear, 0)", label, confidence)
	}
}

func TestScoreUnknownQuestionID(t *testing.T) {
	_, err := Score(testDefinition(), []Answer{{QuestionID: "99", Value: "5am"}})
	if !errors.Is(err, ErrUnknownQuestion) {
		t.Fatalf("err = %v, want ErrUnknownQuestion", err)
	}
}

func TestScoreUnrecognizedValueIgnored(t *testing.T) {
	res, err := Score(testDefinition(), []Answer{{QuestionID: "1", Value: "noon"}})
	if err != nil {
		t.Fatalf("Score returned error: %v", err)
	}
	for label, v := range res.Raw {
		if v != 0 {
			t.Fatalf("unrecognized value contributed %v to %s", v, label)
		}
	}
}

func TestAnswerKeyCoercion(t *testing.T) {
	cases := []struct {
		value any
		want  string
	}{
		{"5am", "5am"},
		{float64(3), "3"},
		{3.5, "3.5"},
		{int(7), "7"},
		{int64(7), "7"},
		{true, "true"},
	}
	for _, c := range cases {
		if got := answerKey(c.value); got != c.want {
			t.Fatalf("answerKey(%v)=%q, want %q", c.value, got, c.want)
		}
	}
}

func TestWeightsForUnknownPair(t *testing.T) {
	weights := WeightsFor("no_such_question", "5am")
	if len(weights) != 0 {
		t.Fatalf("unknown question returned weights: %v", weights)
	}
	weights = WeightsFor("preferred_wake_time", "noon")
	if len(weights) != 0 {
		t.Fatalf("unknown value returned weights: %v", weights)
	}
}

func TestWeightsForReturnsCopy(t *testing.T) {
	first := WeightsFor("preferred_wake_time", "5am")
	first[Lion] = 0
	second := WeightsFor("preferred_wake_time", "5am")
	if second[Lion] != 1.0 {
		t.Fatalf("mutating a returned map leaked into the table: %v", second)
	}
}

func TestWeightTableInRange(t *testing.T) {
	for key, byValue := range questionWeights {
		for value, weights := range byValue {
			for label, w := range weights {
				if w < 0 || w > 1 {
					t.Fatalf("weight out of range: %s/%s/%s = %v", key, value, label, w)
				}
				if !label.Valid() {
					t.Fatalf("weight table references unknown label %q", label)
				}
			}
		}
	}
}
