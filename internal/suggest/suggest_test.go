package suggest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSuggestFindsCloseMatch(t *testing.T) {
	known := []string{"project management", "projects", "unrelated topic"}
	matches := Suggest("project managment", known)
	require.NotEmpty(t, matches)
	assert.Equal(t, "project management", matches[0].Name)
	assert.GreaterOrEqual(t, matches[0].Similarity, float32(Threshold))
}

func TestSuggestExcludesExactSelf(t *testing.T) {
	matches := Suggest("same name", []string{"same name"})
	assert.Empty(t, matches)
}

func TestSuggestNoMatchBelowThreshold(t *testing.T) {
	matches := Suggest("xyz", []string{"completely different", "another page"})
	assert.Empty(t, matches)
}

func TestSuggestEmptyInputs(t *testing.T) {
	assert.Nil(t, Suggest("", []string{"a"}))
	assert.Nil(t, Suggest("a", nil))
}

func TestSuggestCapsAtMaxCandidates(t *testing.T) {
	known := []string{"alpha", "alpha1", "alpha2", "alpha3", "alpha4"}
	matches := Suggest("alph", known)
	assert.LessOrEqual(t, len(matches), MaxCandidates)
}

func TestSuggestAllOnlyReturnsNonEmpty(t *testing.T) {
	known := []string{"project management"}
	out := SuggestAll([]string{"project managment", "zzz completely unrelated"}, known)
	assert.Contains(t, out, "project managment")
	assert.NotContains(t, out, "zzz completely unrelated")
}
