package datefmt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCljsToGoLayout(t *testing.T) {
	tests := []struct {
		cljs     string
		expected string
	}{
		{"yyyy_MM_dd", "2006_01_02"},
		{"yyyy-MM-dd", "2006-01-02"},
		{"MMM, yyyy", "Jan, 2006"},
		{"MMMM d, yyyy", "January 2, 2006"},
	}
	for _, tc := range tests {
		t.Run(tc.cljs, func(t *testing.T) {
			assert.Equal(t, tc.expected, CljsToGoLayout(tc.cljs))
		})
	}
}

func TestHasOrdinalAndStrip(t *testing.T) {
	assert.True(t, HasOrdinal("MMM do, yyyy"))
	assert.False(t, HasOrdinal("MMM d, yyyy"))
	assert.Equal(t, "MMM d, yyyy", StripOrdinal("MMM do, yyyy"))
}

func TestParseRoundTripsSimpleFormat(t *testing.T) {
	parsed, ok := Parse("2024-03-07", "yyyy-MM-dd")
	assert.True(t, ok)
	assert.Equal(t, time.Date(2024, 3, 7, 0, 0, 0, 0, time.UTC), parsed)
}

func TestParseRejectsMismatchedValue(t *testing.T) {
	_, ok := Parse("not-a-date", "yyyy-MM-dd")
	assert.False(t, ok)
}

func TestFormatWithoutOrdinal(t *testing.T) {
	d := time.Date(2024, 3, 7, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "2024_03_07", Format(d, "yyyy_MM_dd"))
}

func TestFormatWithOrdinal(t *testing.T) {
	d := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "Mar 1st, 2024", Format(d, "MMM do, yyyy"))

	d2 := time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "Mar 11th, 2024", Format(d2, "MMM do, yyyy"))
}

func TestOrdinalSuffix(t *testing.T) {
	tests := []struct {
		day      int
		expected string
	}{
		{1, "st"}, {2, "nd"}, {3, "rd"}, {4, "th"},
		{11, "th"}, {12, "th"}, {13, "th"},
		{21, "st"}, {22, "nd"}, {23, "rd"}, {24, "th"},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.expected, OrdinalSuffix(tc.day), "day %d", tc.day)
	}
}
