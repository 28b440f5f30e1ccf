package patterns

import "github.com/logseq-analyzer/lga/internal/types"

// ExternalLink family: "[text](url)" not preceded by "!" (that's an
// embedded link instead). Spec §4.A.
var ExternalLink = Family{
	Name:          "external_link",
	All:           MustCompile(`\[[^\]]*\]\([^)]*\)`),
	NotPrecededBy: "!",
	Members: []Member{
		{Category: types.CategoryExternalLinksInternet, Pattern: MustCompile(`(?i)\((?:https?|ftp)://[^)]+\)$`)},
		{Category: types.CategoryExternalLinksAlias, Pattern: MustCompile(`\((?:\[\[.*?\]\]|\(\(.*?\)\))\)$`)},
	},
	Fallback: types.CategoryExternalLinksOther,
}

// EmbeddedLink family: "![text](url)". Spec §4.A.
var EmbeddedLink = Family{
	Name: "embedded_link",
	All:  MustCompile(`!\[[^\]]*\]\([^)]*\)`),
	Members: []Member{
		{Category: types.CategoryEmbeddedLinksInternet, Pattern: MustCompile(`(?i)\((?:https?|ftp)://[^)]+\)$`)},
		{Category: types.CategoryEmbeddedLinksAsset, Pattern: MustCompile(`(?i)\([^)]*assets/[^)]*\)$`)},
	},
	Fallback: types.CategoryEmbeddedLinksOther,
}
