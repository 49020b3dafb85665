package chronotype

// questionWeights maps (question key, answer value) to per-label score
// contributions. Static authored data: adding a question or answer is a table
// edit, scoring logic never changes. Authored values stay within [0, 1].
var questionWeights = map[string]map[string]map[Label]float64{
	"sleep_deprivation_performance": {
		"very-poorly": {Lion: 0.9, Bear: 0.6},
		"poorly":      {Lion: 0.7, Bear: 0.5},
		"neither":     {Bear: 0.5, Dolphin: 0.4},
		"well":        {Wolf: 0.7, Dolphin: 0.6},
	},
	"preferred_wake_time": {
		"5am":  {Lion: 1.0},
		"6am":  {Lion: 0.9},
		"7am":  {Bear: 0.8, Lion: 0.5},
		"8am":  {Bear: 0.7, Dolphin: 0.4},
		"9am":  {Wolf: 0.7, Bear: 0.4},
		"10am": {Wolf: 1.0, Dolphin: 0.5},
	},
	"preferred_bed_time": {
		"8pm":  {Lion: 0.9},
		"9pm":  {Lion: 0.8},
		"10pm": {Bear: 0.7, Dolphin: 0.4},
		"11pm": {Bear: 0.6, Wolf: 0.4},
		"12am": {Wolf: 0.7, Dolphin: 0.5},
		"1am":  {Wolf: 0.9, Dolphin: 0.6},
	},
	"morning_alertness": {
		"not-alert":      {Wolf: 0.8, Dolphin: 0.6},
		"slightly-alert": {Bear: 0.4, Wolf: 0.6, Dolphin: 0.4},
		"fairly-alert":   {Bear: 0.7, Lion: 0.6},
		"very-alert":     {Lion: 0.9},
	},
	"exam_time_preference": {
		"8am-test":  {Lion: 0.9, Bear: 0.6},
		"11am-test": {Bear: 0.8, Lion: 0.5},
		"3pm-test":  {Bear: 0.6, Wolf: 0.6, Dolphin: 0.4},
		"7pm-test":  {Wolf: 0.9, Dolphin: 0.7},
	},
	"bedtime_tiredness": {
		"not-tired":      {Wolf: 0.7, Dolphin: 0.5},
		"slightly-tired": {Bear: 0.7, Wolf: 0.4},
		"fairly-tired":   {Bear: 0.8},
		"very-tired":     {Lion: 0.8, Dolphin: 0.4},
	},
	"late_night_recovery": {
		"wake-later":       {Lion: 0.6, Dolphin: 0.4},
		"wake-later-sleep": {Bear: 0.6, Lion: 0.4},
		"wake-much-later":  {Wolf: 0.9, Bear: 0.5},
	},
}

// WeightsFor looks up the per-label contributions for one answered question.
// Unrecognized pairs contribute nothing and return an empty map, never an
// error. The returned map is a copy; callers may keep it.
func WeightsFor(questionKey, answerValue string) map[Label]float64 {
	weights := questionWeights[questionKey][answerValue]
	out := make(map[Label]float64, len(weights))
	for label, w := range weights {
		out[label] = w
	}
	return out
}
