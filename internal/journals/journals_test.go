package journals

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/logseq-analyzer/lga/internal/config"
	"github.com/logseq-analyzer/lga/internal/fileindex"
	"github.com/logseq-analyzer/lga/internal/types"
)

var testFormats = config.JournalFormats{
	FileNameFormat:  "yyyy_MM_dd",
	PageTitleFormat: "yyyy-MM-dd",
}

func journalFile(name string) *types.File {
	var id types.FileID
	for _, c := range name {
		id = id*31 + types.FileID(c)
	}
	return &types.File{
		ID:          id,
		Path:        "journals/" + name + ".md",
		LogicalName: name,
		Type:        types.FileTypeJournal,
	}
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestBuildFillsGapFromDanglingCandidate(t *testing.T) {
	idx := fileindex.New()
	idx.Insert(journalFile("2024-01-01"))
	idx.Insert(journalFile("2024-01-03"))

	tl := Build(idx, []string{"2024-01-02"}, testFormats)

	require.Len(t, tl.Timeline, 3)
	assert.True(t, tl.Timeline[1].Equal(date(2024, 1, 2)))
	assert.Empty(t, tl.Missing)
	assert.Contains(t, tl.DanglingInside, date(2024, 1, 2))
}

func TestBuildMarksGapMissingWithoutCandidate(t *testing.T) {
	idx := fileindex.New()
	idx.Insert(journalFile("2024-01-01"))
	idx.Insert(journalFile("2024-01-03"))

	tl := Build(idx, nil, testFormats)

	require.Len(t, tl.Missing, 1)
	assert.True(t, tl.Missing[0].Equal(date(2024, 1, 2)))
}

func TestBuildClassifiesPastAndFutureDangling(t *testing.T) {
	idx := fileindex.New()
	idx.Insert(journalFile("2024-01-05"))
	idx.Insert(journalFile("2024-01-10"))

	tl := Build(idx, []string{"2024-01-01", "2024-01-20"}, testFormats)

	require.Len(t, tl.DanglingPast, 1)
	assert.True(t, tl.DanglingPast[0].Equal(date(2024, 1, 1)))
	require.Len(t, tl.DanglingFuture, 1)
	assert.True(t, tl.DanglingFuture[0].Equal(date(2024, 1, 20)))
}

func TestBuildEmptyIndexReturnsZeroTimeline(t *testing.T) {
	idx := fileindex.New()
	tl := Build(idx, []string{"2024-01-01"}, testFormats)
	assert.Empty(t, tl.Existing)
	assert.Nil(t, tl.Timeline)
}

func TestBuildIgnoresNonJournalFiles(t *testing.T) {
	idx := fileindex.New()
	idx.Insert(journalFile("2024-01-01"))
	page := journalFile("2024-01-02")
	page.Type = types.FileTypePage
	idx.Insert(page)

	tl := Build(idx, nil, testFormats)
	require.Len(t, tl.Existing, 1)
}

func TestComputeStatsSpansExpectedDays(t *testing.T) {
	stats := computeStats([]time.Time{date(2024, 1, 1), date(2024, 1, 8)})
	assert.Equal(t, 7, stats.Days)
	assert.Equal(t, 1, stats.Weeks)
}

func TestDedupeRemovesAdjacentDuplicates(t *testing.T) {
	in := []time.Time{date(2024, 1, 1), date(2024, 1, 1), date(2024, 1, 2)}
	out := dedupe(in)
	assert.Len(t, out, 2)
}
