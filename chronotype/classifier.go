package chronotype

import "sort"

// tieMargin is the minimum lead the top label needs over the runner-up.
// Anything closer collapses to the default label: two near-equal archetypes
// should not produce a confident classification.
const tieMargin = 0.1

// Classify picks the final label and its confidence from a normalized score
// distribution. Total and deterministic: an empty score set yields the
// default label with confidence 0, and the forced-tie case reports the
// default label's own normalized score, not the nominal leader's.
func Classify(normalized Scores) (Label, float64) {
	if len(normalized) == 0 {
		return DefaultLabel, 0
	}

	type entry struct {
		label Label
		score float64
	}
	ordered := make([]entry, 0, len(normalized))
	for label, score := range normalized {
		ordered = append(ordered, entry{label, score})
	}
	sort.Slice(ordered, func(i, j int) bool {
		if ordered[i].score != ordered[j].score {
			return ordered[i].score > ordered[j].score
		}
		return ordered[i].label < ordered[j].label
	})

	top := ordered[0]
	if len(ordered) > 1 && top.score-ordered[1].score < tieMargin {
		return DefaultLabel, round3(normalized[DefaultLabel])
	}

	return top.label, round3(top.score)
}
