// Package suggest offers "did you mean" corrections for dangling links,
// fuzzy-matching a dangling name against the set of logical names that do
// resolve in the graph. This has no counterpart in the original Python
// implementation; it is a SPEC_FULL.md domain-stack addition that gives
// github.com/hbollon/go-edlib a home (string-distance algorithms for typo
// correction are exactly what the library is for).
package suggest

import (
	"sort"

	"github.com/hbollon/go-edlib"
)

// Match is one candidate correction for a dangling link name.
type Match struct {
	Name       string
	Similarity float32
}

// Threshold is the minimum Jaro-Winkler similarity (0..1) for a candidate
// to be offered as a correction. Below this, two names are considered
// unrelated rather than a likely typo.
const Threshold = 0.85

// MaxCandidates caps how many suggestions are returned per dangling name.
const MaxCandidates = 3

// Suggest returns up to MaxCandidates names from known that are likely
// typo-corrections of name, ranked by descending similarity. known should
// exclude name itself.
func Suggest(name string, known []string) []Match {
	if name == "" || len(known) == 0 {
		return nil
	}

	var matches []Match
	for _, candidate := range known {
		if candidate == name {
			continue
		}
		sim, err := edlib.StringsSimilarity(name, candidate, edlib.JaroWinkler)
		if err != nil || sim < Threshold {
			continue
		}
		matches = append(matches, Match{Name: candidate, Similarity: sim})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Similarity > matches[j].Similarity
	})
	if len(matches) > MaxCandidates {
		matches = matches[:MaxCandidates]
	}
	return matches
}

// SuggestAll runs Suggest for every dangling name against known, returning
// only entries that produced at least one candidate.
func SuggestAll(danglingNames []string, known []string) map[string][]Match {
	out := make(map[string][]Match)
	for _, name := range danglingNames {
		if m := Suggest(name, known); len(m) > 0 {
			out[name] = m
		}
	}
	return out
}
