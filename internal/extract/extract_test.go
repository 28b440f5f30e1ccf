package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/logseq-analyzer/lga/internal/types"
)

func TestExtractPageProperties(t *testing.T) {
	text := "title:: My Page\ntags:: foo, bar\n- body text"
	features := Extract(text)
	assert.Contains(t, features[types.CategoryPropertiesPageBuiltin], "title")
	assert.Contains(t, features[types.CategoryPropertiesPageBuiltin], "tags")
}

func TestExtractBlockProperties(t *testing.T) {
	text := "- first bullet\n  custom-key:: value\n"
	features := Extract(text)
	assert.Contains(t, features[types.CategoryPropertiesBlockUser], "custom-key")
}

func TestExtractAliasesSplitsOnComma(t *testing.T) {
	text := "alias:: One, Two\n- body"
	features := Extract(text)
	assert.ElementsMatch(t, []string{"One", "Two"}, features[types.CategoryAliases])
}

func TestExtractPageReferencesLowercased(t *testing.T) {
	text := "- see [[Some Page]] for details"
	features := Extract(text)
	assert.Contains(t, features[types.CategoryPageReferences], "some page")
}

func TestExtractTaggedBacklinksLowercased(t *testing.T) {
	text := "- tagging #[[Project X]]"
	features := Extract(text)
	assert.Contains(t, features[types.CategoryTaggedBacklinks], "project x")
}

func TestExtractTagsLowercased(t *testing.T) {
	text := "- a #SomeTag here"
	features := Extract(text)
	assert.Contains(t, features[types.CategoryTags], "sometag")
}

func TestExtractDoesNotClassifyInsideCodeFence(t *testing.T) {
	text := "- ```\n[[Not A Reference]]\n```"
	features := Extract(text)
	assert.NotContains(t, features[types.CategoryPageReferences], "not a reference")
}

func TestExtractClassifiesMultilineCodeFence(t *testing.T) {
	text := "- ```go\nfmt.Println(\"hi\")\n```"
	features := Extract(text)
	assert.Len(t, features[types.CategoryMultilineCodeLang], 1)
}

func TestExtractClassifiesAdvancedCommandQuote(t *testing.T) {
	text := "- #+BEGIN_QUOTE\nsome words\n#+END_QUOTE"
	features := Extract(text)
	assert.Len(t, features[types.CategoryAdvancedCommandQuote], 1)
}

func TestExtractAssetsAndURLs(t *testing.T) {
	text := "- see assets/diagram.png and https://example.com/page"
	features := Extract(text)
	assert.Contains(t, features[types.CategoryAssets], "assets/diagram.png")
	assert.NotEmpty(t, features[types.CategoryAnyLinks])
}

func TestExtractInlineCodeCategory(t *testing.T) {
	text := "- use `fmt.Println` here"
	features := Extract(text)
	assert.Contains(t, features[types.CategoryInlineCode], "`fmt.Println`")
}

func TestExtractBlockRefAndExternalLink(t *testing.T) {
	text := "- ((12345678-1234-1234-1234-123456789abc)) and [Go](https://golang.org)"
	features := Extract(text)
	assert.Len(t, features[types.CategoryBlockRefs], 1)
	assert.Len(t, features[types.CategoryExternalLinksInternet], 1)
}

func TestSplitAliasValueRespectsBracketDepth(t *testing.T) {
	got := SplitAliasValue("[[X,Y]],Z")
	assert.Equal(t, []string{"X,Y", "Z"}, got)
}

func TestSplitAliasValueSingleEntry(t *testing.T) {
	got := SplitAliasValue("Solo")
	assert.Equal(t, []string{"Solo"}, got)
}

func TestIsBuiltInKnownAndUnknown(t *testing.T) {
	assert.True(t, IsBuiltIn("alias"))
	assert.True(t, IsBuiltIn("title"))
	assert.False(t, IsBuiltIn("custom-field"))
}

func TestHasBacklinksFiredTrueWhenPresent(t *testing.T) {
	features := types.FeatureMap{}
	features.Add(types.CategoryPageReferences, "page")
	assert.True(t, HasBacklinksFired(features))
}

func TestHasBacklinksFiredFalseWhenEmpty(t *testing.T) {
	assert.False(t, HasBacklinksFired(types.FeatureMap{}))
}
