package patterns

import "github.com/logseq-analyzer/lga/internal/types"

// AdvCmd family: Org-mode-style "#+BEGIN_X ... #+END_X" blocks, per spec
// §4.A. Member order matches the listed category set; EXPORT_ASCII and
// EXPORT_LATEX must be tried before the bare EXPORT member since
// "export ascii"/"export latex" both start with "export".
var AdvCmd = Family{
	Name: "adv_cmd",
	All:  MustCompile(`(?is)#\+BEGIN_(\w+(?:\s+\w+)?).*?#\+END_\w+`),
	Members: []Member{
		{Category: types.CategoryAdvancedCommandExportASCII, Pattern: MustCompile(`(?i)^#\+BEGIN_EXPORT\s+ascii`)},
		{Category: types.CategoryAdvancedCommandExportLatex, Pattern: MustCompile(`(?i)^#\+BEGIN_EXPORT\s+latex`)},
		{Category: types.CategoryAdvancedCommandExport, Pattern: MustCompile(`(?i)^#\+BEGIN_EXPORT\b`)},
		{Category: types.CategoryAdvancedCommandCaution, Pattern: MustCompile(`(?i)^#\+BEGIN_CAUTION\b`)},
		{Category: types.CategoryAdvancedCommandCenter, Pattern: MustCompile(`(?i)^#\+BEGIN_CENTER\b`)},
		{Category: types.CategoryAdvancedCommandComment, Pattern: MustCompile(`(?i)^#\+BEGIN_COMMENT\b`)},
		{Category: types.CategoryAdvancedCommandExample, Pattern: MustCompile(`(?i)^#\+BEGIN_EXAMPLE\b`)},
		{Category: types.CategoryAdvancedCommandImportant, Pattern: MustCompile(`(?i)^#\+BEGIN_IMPORTANT\b`)},
		{Category: types.CategoryAdvancedCommandNote, Pattern: MustCompile(`(?i)^#\+BEGIN_NOTE\b`)},
		{Category: types.CategoryAdvancedCommandPinned, Pattern: MustCompile(`(?i)^#\+BEGIN_PINNED\b`)},
		{Category: types.CategoryAdvancedCommandQuery, Pattern: MustCompile(`(?i)^#\+BEGIN_QUERY\b`)},
		{Category: types.CategoryAdvancedCommandQuote, Pattern: MustCompile(`(?i)^#\+BEGIN_QUOTE\b`)},
		{Category: types.CategoryAdvancedCommandTip, Pattern: MustCompile(`(?i)^#\+BEGIN_TIP\b`)},
		{Category: types.CategoryAdvancedCommandVerse, Pattern: MustCompile(`(?i)^#\+BEGIN_VERSE\b`)},
		{Category: types.CategoryAdvancedCommandWarning, Pattern: MustCompile(`(?i)^#\+BEGIN_WARNING\b`)},
	},
	Fallback: types.CategoryAdvancedCommand,
}
