package gap

import (
	"sort"

	"skill-evolution/internal/domain/lexicon"
)

// DemandEntry is one row of a market-demand snapshot: a skill and its
// importance score in [0,100]. Snapshots are ordered; ties in the gap output
// keep snapshot order.
type DemandEntry struct {
	Skill      string
	Importance float64
}

// Entry is a skill the demand snapshot wants that the user does not have.
type Entry struct {
	Skill      string  `json:"skill"`
	Importance float64 `json:"importance"`
	Status     string  `json:"status"`
}

const StatusMissing = "missing"

// Analyze compares a skill set against a demand snapshot and returns the
// missing skills ranked by importance descending. Comparison is
// case-insensitive. Full coverage yields an empty result.
func Analyze(skills []string, demand []DemandEntry) []Entry {
	have := make(map[string]struct{}, len(skills))
	for _, s := range skills {
		have[lexicon.Normalize(s)] = struct{}{}
	}

	missing := make([]Entry, 0, len(demand))
	for _, d := range demand {
		if _, ok := have[lexicon.Normalize(d.Skill)]; ok {
			continue
		}
		missing = append(missing, Entry{
			Skill:      d.Skill,
			Importance: d.Importance,
			Status:     StatusMissing,
		})
	}

	sort.SliceStable(missing, func(i, j int) bool {
		return missing[i].Importance > missing[j].Importance
	})
	return missing
}
