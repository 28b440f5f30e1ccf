// Package patterns implements the compile-time pattern registry of spec
// §4.A: a set of regex families, each with an "all" pattern and a
// prioritized list of specific sub-patterns, plus the generic cascade
// classifier that applies them (process_pattern_hierarchy in the prior
// Python implementation).
//
// Go's regexp package (RE2) does not support look-around assertions, which
// the original patterns leaned on heavily (negative lookbehind for "not
// preceded by #", lookahead for "not followed by [["). Where a pattern
// needs that, this package matches a broader form and filters by
// inspecting the surrounding bytes after the fact, rather than attempting
// to express the assertion inside the regex itself.
package patterns

import (
	"regexp"
	"sort"
	"strings"

	"github.com/logseq-analyzer/lga/internal/types"
)

// Member is one specific pattern within a family, tried in priority order.
type Member struct {
	Category types.Category
	Pattern  *regexp.Regexp
}

// Family is a compiled regex family: an "all" pattern that finds every
// candidate span, and a prioritized list of members that classify each
// span. Spans matching no member fall back to Fallback.
type Family struct {
	Name     string
	All      *regexp.Regexp
	Members  []Member
	Fallback types.Category

	// NotPrecededBy, when set, excludes a match whose immediately
	// preceding text (case-insensitively) ends with this string. Go's
	// RE2 engine has no look-behind assertion, so families that need one
	// (external links not preceded by "!", double-parens not preceded by
	// "{{embed ") filter by inspecting the byte span before the match
	// instead of encoding the assertion in the regex itself.
	NotPrecededBy string
}

// Process applies the family's cascade to text, in match order: the All
// pattern finds every occurrence, then each occurrence is classified by
// the first matching Member, or Fallback if none match.
func (f Family) Process(text string) types.FeatureMap {
	out := types.FeatureMap{}
	if f.All == nil {
		return out
	}
	if f.NotPrecededBy == "" {
		for _, match := range f.All.FindAllString(text, -1) {
			out.Add(f.classify(match), match)
		}
		return out
	}
	exclude := strings.ToLower(f.NotPrecededBy)
	for _, loc := range f.All.FindAllStringIndex(text, -1) {
		start, end := loc[0], loc[1]
		prefix := strings.ToLower(text[:start])
		if strings.HasSuffix(prefix, exclude) {
			continue
		}
		match := text[start:end]
		out.Add(f.classify(match), match)
	}
	return out
}

// ClassifyBlocks classifies already-extracted spans (e.g. the blocks
// returned by Mask) through the family's member cascade directly, without
// re-running All against the text. This is how spec §4.D step 4's
// multiline-code and advanced-command categories get populated: those two
// families are masked out before the rest of the cascade runs, so their
// spans must be classified from the MaskedBlock.Original text captured at
// mask time, not from a second pass over the now-placeholder'd text.
func (f Family) ClassifyBlocks(blocks []MaskedBlock) types.FeatureMap {
	out := types.FeatureMap{}
	for _, b := range blocks {
		out.Add(f.classify(b.Original), b.Original)
	}
	return out
}

func (f Family) classify(match string) types.Category {
	for _, m := range f.Members {
		if m.Pattern.MatchString(match) {
			return m.Category
		}
	}
	return f.Fallback
}

// uuidPattern is the 8-4-4-4-12 hex form used by block refs/embeds (spec
// §4.A "UUID form").
var uuidPattern = `[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}`

// MustCompile is a thin alias kept local so every family file in this
// package compiles its patterns the same way; it panics at init time on a
// malformed pattern, which is acceptable only because these patterns are
// compile-time constants, never user input.
func MustCompile(expr string) *regexp.Regexp {
	return regexp.MustCompile(expr)
}

// MergeFeatureMaps combines several FeatureMaps produced by different
// families into one, used by the content extractor after running each
// family over the (progressively masked) text.
func MergeFeatureMaps(maps ...types.FeatureMap) types.FeatureMap {
	out := types.FeatureMap{}
	for _, m := range maps {
		for cat, vals := range m {
			out[cat] = append(out[cat], vals...)
		}
	}
	return out
}

// SortByCountDesc sorts a found-in style multiset's keys by descending
// count, breaking ties by insertion order, per spec §4.F "Tie-breaking".
type Counted struct {
	Name  string
	Count int
}

func SortByCountDesc(items []Counted) {
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Count > items[j].Count
	})
}
