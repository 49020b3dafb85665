package chronotype

import "fmt"

// SleepWindow is the recommended bedtime/wake-time range for a label.
type SleepWindow struct {
	Bedtime  string `json:"bedtime"`
	WakeTime string `json:"wake_time"`
}

// CurvePoint is one anchor of the baseline 24-hour energy curve. Seed points
// carry Actual == Predicted and Difference == 0 until real feedback arrives.
type CurvePoint struct {
	Hour       int               `json:"hour"`
	Predicted  float64           `json:"predicted_energy"`
	Actual     float64           `json:"actual_energy"`
	Difference float64           `json:"difference"` // predicted minus actual
	Context    map[string]string `json:"context"`
}

// TimeOfDay formats the anchor hour as HH:MM for display.
func (p CurvePoint) TimeOfDay() string {
	return fmt.Sprintf("%02d:00", p.Hour)
}

// FocusWindow is a recommended block of the day for a given kind of work.
type FocusWindow struct {
	Type           string `json:"window_type"`
	StartHour      int    `json:"start_hour"`
	EndHour        int    `json:"end_hour"`
	Recommendation string `json:"recommendation"`
}

// Profile is everything derived from a classified label.
type Profile struct {
	SleepWindow     SleepWindow       `json:"sleep_window"`
	Recommendations map[string]string `json:"recommendations"`
	EnergyCurve     []CurvePoint      `json:"energy_curve"`
	FocusWindows    []FocusWindow     `json:"focus_windows"`
}

var sleepWindows = map[Label]SleepWindow{
	Lion:    {Bedtime: "9:00 PM - 10:00 PM", WakeTime: "5:00 AM - 6:00 AM"},
	Bear:    {Bedtime: "10:30 PM - 11:30 PM", WakeTime: "7:00 AM - 8:00 AM"},
	Wolf:    {Bedtime: "11:30 PM - 12:30 AM", WakeTime: "7:30 AM - 8:30 AM"},
	Dolphin: {Bedtime: "11:00 PM - 12:00 AM", WakeTime: "6:30 AM - 7:30 AM"},
}

var recommendations = map[Label]map[string]string{
	Lion: {
		"focus":   "Schedule demanding work before noon when your energy peaks.",
		"evening": "Wind down with relaxing routines to protect early bedtime.",
	},
	Bear: {
		"focus":   "Anchor deep work mid-morning and maintain consistent sleep windows.",
		"evening": "Plan lighter tasks after 6 PM as energy tapers.",
	},
	Wolf: {
		"focus":   "Reserve creative/problem-solving sessions late afternoon or evening.",
		"morning": "Give yourself gradual ramp-up mornings with light tasks first.",
	},
	Dolphin: {
		"focus":   "Use structured routines and micro-rests to manage lighter sleep.",
		"evening": "Avoid heavy stimulation before bed to improve sleep quality.",
	},
}

type curveAnchor struct {
	hour   int
	energy float64
}

// Six anchors per label. Lion peaks mid-morning and troughs in the evening,
// wolf the reverse, bear peaks at midday, dolphin is bimodal and flatter.
var baselineCurves = map[Label][]curveAnchor{
	Lion:    {{6, 0.85}, {9, 0.95}, {12, 0.75}, {15, 0.55}, {18, 0.40}, {21, 0.25}},
	Bear:    {{6, 0.40}, {9, 0.75}, {12, 0.85}, {15, 0.70}, {18, 0.55}, {21, 0.35}},
	Wolf:    {{6, 0.20}, {9, 0.35}, {12, 0.55}, {15, 0.70}, {18, 0.90}, {21, 0.80}},
	Dolphin: {{6, 0.45}, {9, 0.70}, {12, 0.50}, {15, 0.65}, {18, 0.55}, {21, 0.35}},
}

var focusWindows = map[Label][]FocusWindow{
	Lion: {
		{Type: "deep_work", StartHour: 8, EndHour: 12, Recommendation: "Tackle the hardest problems right after your morning peak starts."},
		{Type: "wind_down", StartHour: 20, EndHour: 22, Recommendation: "Keep evenings screen-light to protect the early bedtime."},
	},
	Bear: {
		{Type: "deep_work", StartHour: 10, EndHour: 14, Recommendation: "Block late morning for focused work; energy follows daylight."},
		{Type: "wind_down", StartHour: 21, EndHour: 23, Recommendation: "Taper to light tasks in the late evening."},
	},
	Wolf: {
		{Type: "ramp_up", StartHour: 9, EndHour: 11, Recommendation: "Start with routine tasks while energy is still climbing."},
		{Type: "deep_work", StartHour: 16, EndHour: 20, Recommendation: "Save creative and analytical work for the late-day peak."},
	},
	Dolphin: {
		{Type: "deep_work", StartHour: 10, EndHour: 13, Recommendation: "Use the mid-morning spike; take micro-rests between blocks."},
		{Type: "wind_down", StartHour: 21, EndHour: 23, Recommendation: "Avoid heavy stimulation before bed to improve sleep quality."},
	},
}

// Synthesize derives the user-facing profile for a classified label: sleep
// window, recommendations, baseline curve and focus windows. Total function
// with empty-structure fallbacks for labels outside the closed set (which
// cannot occur through Classify).
func Synthesize(label Label) Profile {
	anchors := baselineCurves[label]
	curve := make([]CurvePoint, len(anchors))
	for i, a := range anchors {
		curve[i] = CurvePoint{
			Hour:       a.hour,
			Predicted:  a.energy,
			Actual:     a.energy,
			Difference: 0.0,
			Context: map[string]string{
				"source":     "initial_quiz",
				"chronotype": string(label),
			},
		}
	}

	recs := make(map[string]string, len(recommendations[label]))
	for k, v := range recommendations[label] {
		recs[k] = v
	}

	windows := make([]FocusWindow, len(focusWindows[label]))
	copy(windows, focusWindows[label])

	return Profile{
		SleepWindow:     sleepWindows[label],
		Recommendations: recs,
		EnergyCurve:     curve,
		FocusWindows:    windows,
	}
}
