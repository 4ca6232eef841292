package domain

// Stats holds the number of persisted responses per label.
// Every label is a field, so all four keys are always serialised.
type Stats struct {
	Secure   int64 `json:"secure"`
	Anxious  int64 `json:"anxious"`
	Avoidant int64 `json:"avoidant"`
	Fearful  int64 `json:"fearful"`
}

// LabelCount is one row of a group-by-label query over stored responses.
type LabelCount struct {
	Label string
	Count int64
}

// Aggregate folds grouped counts into Stats. Unknown or empty labels and
// non-positive counts are skipped. Rows may arrive in any order, and repeated
// labels are summed.
func Aggregate(groups []LabelCount) Stats {
	var stats Stats
	for _, g := range groups {
		t, ok := ParseResultType(g.Label)
		if !ok || g.Count <= 0 {
			continue
		}
		stats.add(t, g.Count)
	}
	return stats
}

// Tally counts a raw stream of stored labels in a single pass.
func Tally(labels []string) Stats {
	var stats Stats
	for _, label := range labels {
		if t, ok := ParseResultType(label); ok {
			stats.add(t, 1)
		}
	}
	return stats
}

// Count returns the number recorded for t.
func (s Stats) Count(t ResultType) int64 {
	switch t {
	case Secure:
		return s.Secure
	case Anxious:
		return s.Anxious
	case Avoidant:
		return s.Avoidant
	case Fearful:
		return s.Fearful
	default:
		return 0
	}
}

// Total sums all four labels.
func (s Stats) Total() int64 {
	return s.Secure + s.Anxious + s.Avoidant + s.Fearful
}

func (s *Stats) add(t ResultType, n int64) {
	switch t {
	case Secure:
		s.Secure += n
	case Anxious:
		s.Anxious += n
	case Avoidant:
		s.Avoidant += n
	case Fearful:
		s.Fearful += n
	}
}
