package patterns

import "github.com/logseq-analyzer/lga/internal/types"

// Code family: multiline triple-backtick blocks (optionally language-
// tagged or a calc block), and inline single-backtick spans. Spec §4.A.
var Code = Family{
	Name: "code",
	All:  MustCompile("(?s)```.*?```"),
	Members: []Member{
		{Category: types.CategoryMultilineCodeCalc, Pattern: MustCompile("(?is)^```calc")},
		{Category: types.CategoryMultilineCodeLang, Pattern: MustCompile("(?s)^```[A-Za-z][A-Za-z0-9_+-]*\\s")},
	},
	Fallback: types.CategoryMultilineCode,
}

// InlineCode matches single-backtick spans; it is not a cascade (no
// sub-categories), so it is applied directly rather than through Family.
var InlineCode = MustCompile("`[^`\n]+`")

// ExtractInlineCode returns every inline-code span found in text.
func ExtractInlineCode(text string) []string {
	return InlineCode.FindAllString(text, -1)
}
