package chronotype

import "testing"

func TestClassify(t *testing.T) {
	cases := []struct {
		name           string
		scores         Scores
		wantLabel      Label
		wantConfidence float64
	}{
		{
			name:           "clear leader",
			scores:         Scores{Lion: 0.6, Bear: 0.2, Wolf: 0.1, Dolphin: 0.1},
			wantLabel:      Lion,
			wantConfidence: 0.6,
		},
		{
			name:           "wolf leader",
			scores:         Scores{Lion: 0.05, Bear: 0.25, Wolf: 0.55, Dolphin: 0.15},
			wantLabel:      Wolf,
			wantConfidence: 0.55,
		},
		{
			name:   "tie collapses to bear with bear's own score",
			scores: Scores{Lion: 0.35, Wolf: 0.30, Bear: 0.20, Dolphin: 0.15},
			// lion leads wolf by 0.05, inside the margin
			wantLabel:      Bear,
			wantConfidence: 0.2,
		},
		{
			name:           "lead just past the margin",
			scores:         Scores{Lion: 0.5, Bear: 0.35, Wolf: 0.1, Dolphin: 0.05},
			wantLabel:      Lion,
			wantConfidence: 0.5,
		},
		{
			name:           "all zero",
			scores:         Scores{Lion: 0, Bear: 0, Wolf: 0, Dolphin: 0},
			wantLabel:      Bear,
			wantConfidence: 0,
		},
		{
			name:           "empty",
			scores:         Scores{},
			wantLabel:      Bear,
			wantConfidence: 0,
		},
	}

	for _, c := range cases {
		label, confidence := Classify(c.scores)
		if label != c.wantLabel || confidence != c.wantConfidence {
			t.Fatalf("%s: Classify=%s/%v, want %s/%v", c.name, label, confidence, c.wantLabel, c.wantConfidence)
		}
	}
}

func TestClassifyConfidenceRounded(t *testing.T) {
	label, confidence := Classify(Scores{Lion: 0.66667, Bear: 0.33333, Wolf: 0, Dolphin: 0})
	if label != Lion {
		t.Fatalf("label = %s, want lion", label)
	}
	if confidence != 0.667 {
		t.Fatalf("confidence = %v, want 0.667", confidence)
	}
}

func TestLabelDisplay(t *testing.T) {
	cases := []struct {
		label Label
		want  string
	}{
		{Lion, "Lion"},
		{Bear, "Bear"},
		{Wolf, "Wolf"},
		{Dolphin, "Dolphin"},
		{"", ""},
	}
	for _, c := range cases {
		if got := c.label.Display(); got != c.want {
			t.Fatalf("Display(%q)=%q, want %q", c.label, got, c.want)
		}
	}
}
