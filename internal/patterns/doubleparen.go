package patterns

import "github.com/logseq-analyzer/lga/internal/types"

// DoubleParen family: "((anything))" block references, except the form
// immediately preceded by "{{embed " (that belongs to the block-embed
// member of DoubleCurly instead). Spec §4.A.
var DoubleParen = Family{
	Name:          "double_parentheses",
	All:           MustCompile(`\(\([^()]*\)\)`),
	NotPrecededBy: "{{embed ",
	Members: []Member{
		{Category: types.CategoryBlockRefs, Pattern: MustCompile(`^\(\(` + uuidPattern + `\)\)$`)},
	},
	Fallback: types.CategoryAllRefs,
}
