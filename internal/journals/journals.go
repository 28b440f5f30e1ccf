// Package journals implements the journal timeline reconstructor of spec
// §4.H, grounded on logseq_analyzer/analysis/journals.py's
// LogseqJournals.build_complete_timeline /
// get_dangling_journals_outside_range.
package journals

import (
	"sort"
	"time"

	"github.com/logseq-analyzer/lga/internal/config"
	"github.com/logseq-analyzer/lga/internal/datefmt"
	"github.com/logseq-analyzer/lga/internal/fileindex"
	"github.com/logseq-analyzer/lga/internal/types"
)

// Stats are the aggregate facts spec §3 requires for every date list:
// first, last, and span in days/weeks/months/years.
type Stats struct {
	First  time.Time
	Last   time.Time
	Days   int
	Weeks  int
	Months int
	Years  int
}

func computeStats(dates []time.Time) Stats {
	if len(dates) == 0 {
		return Stats{}
	}
	first, last := dates[0], dates[len(dates)-1]
	days := int(last.Sub(first).Hours() / 24)
	return Stats{
		First:  first,
		Last:   last,
		Days:   days,
		Weeks:  days / 7,
		Months: days / 30,
		Years:  days / 365,
	}
}

// Timeline is the JournalTimeline of spec §3.
type Timeline struct {
	Existing    []time.Time
	Timeline    []time.Time
	Missing     []time.Time
	Dangling    []time.Time
	AllJournals []time.Time

	DanglingPast   []time.Time
	DanglingFuture []time.Time
	DanglingInside []time.Time

	ExistingStats Stats
	TimelineStats Stats
	MissingStats  Stats
	DanglingStats Stats
}

// Build reconstructs the journal timeline per spec §4.H: parse every
// journal file's logical name and every dangling link against the
// page-title format, sort, and walk the existing dates filling gaps.
func Build(idx *fileindex.Index, danglingNames []string, formats config.JournalFormats) *Timeline {
	var existing []time.Time
	for _, f := range idx.All() {
		if f.Type != types.FileTypeJournal {
			continue
		}
		if t, ok := datefmt.Parse(f.LogicalName, formats.PageTitleFormat); ok {
			existing = append(existing, t)
		}
	}
	sort.Slice(existing, func(i, j int) bool { return existing[i].Before(existing[j]) })

	danglingCandidates := map[time.Time]struct{}{}
	for _, name := range danglingNames {
		if t, ok := datefmt.Parse(name, formats.PageTitleFormat); ok {
			danglingCandidates[t] = struct{}{}
		}
	}

	tl := &Timeline{Existing: existing}
	if len(existing) == 0 {
		return tl
	}

	full := []time.Time{existing[0]}
	var missing []time.Time
	var insideDangling []time.Time
	for i := 0; i < len(existing)-1; i++ {
		cur, next := existing[i], existing[i+1]
		for d := cur.AddDate(0, 0, 1); d.Before(next); d = d.AddDate(0, 0, 1) {
			full = append(full, d)
			if _, ok := danglingCandidates[d]; ok {
				insideDangling = append(insideDangling, d)
			} else {
				missing = append(missing, d)
			}
		}
		full = append(full, next)
	}

	var past, future []time.Time
	start, end := existing[0], existing[len(existing)-1]
	for d := range danglingCandidates {
		if d.Before(start) {
			past = append(past, d)
		} else if d.After(end) {
			future = append(future, d)
		}
	}
	sort.Slice(past, func(i, j int) bool { return past[i].Before(past[j]) })
	sort.Slice(future, func(i, j int) bool { return future[i].Before(future[j]) })
	sort.Slice(insideDangling, func(i, j int) bool { return insideDangling[i].Before(insideDangling[j]) })

	dangling := append(append(append([]time.Time{}, past...), insideDangling...), future...)
	sort.Slice(dangling, func(i, j int) bool { return dangling[i].Before(dangling[j]) })

	all := append(append([]time.Time{}, full...), dangling...)
	sort.Slice(all, func(i, j int) bool { return all[i].Before(all[j]) })
	all = dedupe(all)

	tl.Timeline = full
	tl.Missing = missing
	tl.Dangling = dangling
	tl.AllJournals = all
	tl.DanglingPast = past
	tl.DanglingFuture = future
	tl.DanglingInside = insideDangling

	tl.ExistingStats = computeStats(existing)
	tl.TimelineStats = computeStats(full)
	tl.MissingStats = computeStats(missing)
	tl.DanglingStats = computeStats(dangling)

	return tl
}

func dedupe(dates []time.Time) []time.Time {
	if len(dates) == 0 {
		return dates
	}
	out := dates[:1]
	for _, d := range dates[1:] {
		if !d.Equal(out[len(out)-1]) {
			out = append(out, d)
		}
	}
	return out
}
