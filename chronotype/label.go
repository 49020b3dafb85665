package chronotype

import "strings"

// Label is one of the four sleep/energy archetypes.
type Label string

const (
	Lion    Label = "lion"
	Bear    Label = "bear"
	Wolf    Label = "wolf"
	Dolphin Label = "dolphin"
)

// Labels is the closed label set in canonical order. Score results always
// contain an entry for every member, including zero-contribution ones.
var Labels = []Label{Lion, Bear, Wolf, Dolphin}

// DefaultLabel is the balanced archetype used when no label clearly leads.
const DefaultLabel = Bear

// Display returns the capitalized form used in API responses.
func (l Label) Display() string {
	if l == "" {
		return ""
	}
	return strings.ToUpper(string(l[:1])) + string(l[1:])
}

// Valid reports whether l is a member of the closed label set.
func (l Label) Valid() bool {
	switch l {
	case Lion, Bear, Wolf, Dolphin:
		return true
	}
	return false
}
