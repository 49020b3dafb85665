package chronotype

import (
	"errors"
	"testing"
)

func TestLegacyScoreBands(t *testing.T) {
	cases := []struct {
		name    string
		answers map[string]string
		want    Band
	}{
		{
			name: "full morning profile",
			answers: map[string]string{
				"preferred_wake_time": "5am",
				"preferred_bed_time":  "8pm",
				"morning_alertness":   "very-alert",
			},
			want: EarlyBird,
		},
		{
			name: "full evening profile",
			answers: map[string]string{
				"preferred_wake_time": "10am",
				"preferred_bed_time":  "1am",
				"morning_alertness":   "not-alert",
				"bedtime_tiredness":   "not-tired",
			},
			want: NightOwl,
		},
		{
			name: "middle of the road",
			answers: map[string]string{
				"preferred_wake_time": "8am",
				"preferred_bed_time":  "10pm",
				"morning_alertness":   "slightly-alert",
			},
			want: IntermediateBand,
		},
	}

	for _, c := range cases {
		band, err := LegacyScore(c.answers)
		if err != nil {
			t.Fatalf("%s: LegacyScore returned error: %v", c.name, err)
		}
		if band != c.want {
			t.Fatalf("%s: band = %s, want %s", c.name, band, c.want)
		}
	}
}

func TestLegacyScoreNoValidAnswers(t *testing.T) {
	cases := []map[string]string{
		{},
		{"welcome": "start"},
		{"no_such_question": "5am"},
		{"preferred_wake_time": "noon"},
	}
	for _, answers := range cases {
		if _, err := LegacyScore(answers); !errors.Is(err, ErrNoValidAnswers) {
			t.Fatalf("LegacyScore(%v) err = %v, want ErrNoValidAnswers", answers, err)
		}
	}
}

func TestLegacyScoreWelcomeExcluded(t *testing.T) {
	withWelcome := map[string]string{
		"welcome":             "start",
		"preferred_wake_time": "5am",
		"preferred_bed_time":  "8pm",
	}
	without := map[string]string{
		"preferred_wake_time": "5am",
		"preferred_bed_time":  "8pm",
	}

	a, err := LegacyScore(withWelcome)
	if err != nil {
		t.Fatalf("LegacyScore returned error: %v", err)
	}
	b, err := LegacyScore(without)
	if err != nil {
		t.Fatalf("LegacyScore returned error: %v", err)
	}
	if a != b {
		t.Fatalf("welcome answer changed the band: %s vs %s", a, b)
	}
}

func TestLegacyCurve(t *testing.T) {
	for _, band := range []Band{EarlyBird, IntermediateBand, NightOwl} {
		curve := LegacyCurve(band)
		if len(curve) != 6 {
			t.Fatalf("%s curve has %d anchors, want 6", band, len(curve))
		}
		for _, p := range curve {
			if p.Actual != p.Predicted || p.Difference != 0 {
				t.Fatalf("%s hour %d seeded with actual=%v diff=%v", band, p.Hour, p.Actual, p.Difference)
			}
		}
	}

	early := LegacyCurve(EarlyBird)
	owl := LegacyCurve(NightOwl)
	if early[0].Predicted <= owl[0].Predicted {
		t.Fatalf("early bird morning energy %v not above night owl %v", early[0].Predicted, owl[0].Predicted)
	}
	if early[5].Predicted >= owl[5].Predicted {
		t.Fatalf("early bird evening energy %v not below night owl %v", early[5].Predicted, owl[5].Predicted)
	}
}
