package patterns

import "github.com/logseq-analyzer/lga/internal/types"

// DoubleCurly family: "{{...}}" macros, per spec §4.A. Members are tried
// in priority order; the more specific embed/page-embed/block-embed forms
// must precede the bare "embeds" fallback semantics, and page/block embed
// must precede the generic embed member.
var DoubleCurly = Family{
	Name: "double_curly",
	All:  MustCompile(`(?s)\{\{.*?\}\}`),
	Members: []Member{
		{Category: types.CategoryBlockEmbeds, Pattern: MustCompile(`(?is)^\{\{embed\s*\(\(` + uuidPattern + `\)\)\s*\}\}`)},
		{Category: types.CategoryPageEmbeds, Pattern: MustCompile(`(?is)^\{\{embed\s*\[\[.*?\]\]\s*\}\}`)},
		{Category: types.CategoryEmbeds, Pattern: MustCompile(`(?is)^\{\{embed\b`)},
		{Category: types.CategoryNamespaceQueries, Pattern: MustCompile(`(?is)^\{\{namespace\b`)},
		{Category: types.CategoryCards, Pattern: MustCompile(`(?is)^\{\{cards?\b`)},
		{Category: types.CategoryClozes, Pattern: MustCompile(`(?is)^\{\{cloze\b`)},
		{Category: types.CategoryQueryFunctions, Pattern: MustCompile(`(?is)^\{\{function\b`)},
		{Category: types.CategorySimpleQueries, Pattern: MustCompile(`(?is)^\{\{query\b`)},
		{Category: types.CategoryVideoURLs, Pattern: MustCompile(`(?is)^\{\{video\b`)},
		{Category: types.CategoryTwitterTweets, Pattern: MustCompile(`(?is)^\{\{tweet\b`)},
		{Category: types.CategoryYoutubeTimestamps, Pattern: MustCompile(`(?is)^\{\{youtube-timestamp\b`)},
		{Category: types.CategoryRenderers, Pattern: MustCompile(`(?is)^\{\{renderer\b`)},
	},
	Fallback: types.CategoryMacros,
}
