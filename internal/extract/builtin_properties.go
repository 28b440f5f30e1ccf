package extract

// BuiltInProperties is the closed set of ~55 reserved property keys the
// Logseq engine itself uses, taken verbatim from
// logseq_analyzer/utils/helpers.py's BUILT_IN_PROPERTIES frozenset (spec
// SUPPLEMENTED FEATURES).
var BuiltInProperties = map[string]struct{}{
	"alias": {}, "aliases": {},
	"background-color": {}, "background_color": {},
	"collapsed":  {},
	"created-at": {}, "created_at": {},
	"custom-id":             {},
	"doing":                 {},
	"done":                  {},
	"exclude-from-graph-view": {},
	"filetags":              {},
	"filters":               {},
	"heading":               {},
	"hl-color":              {},
	"hl-page":                {},
	"hl-stamp":               {},
	"hl-type":                {},
	"icon":                  {},
	"id":                    {},
	"last-modified-at": {}, "last_modified_at": {},
	"later":                             {},
	"logseq.color":                      {},
	"logseq.macro-arguments":            {},
	"logseq.macro-name":                 {},
	"logseq.order-list-type":            {},
	"logseq.query/nlp-date":             {},
	"logseq.table.borders":              {},
	"logseq.table.compact":              {},
	"logseq.table.headers":              {},
	"logseq.table.hover":                {},
	"logseq.table.max-width":            {},
	"logseq.table.stripes":              {},
	"logseq.table.version":              {},
	"logseq.tldraw.page":                {},
	"logseq.tldraw.shape":               {},
	"ls-type":                           {},
	"macro":                             {},
	"now":                               {},
	"public":                            {},
	"query-properties":                  {},
	"query-sort-by":                     {},
	"query-sort-desc":                   {},
	"query-table":                       {},
	"tags":                              {},
	"template":                          {},
	"template-including-parent":         {},
	"title":                             {},
	"todo":                              {},
	"updated-at":                        {},
}

// IsBuiltIn reports whether key (lowercased by the caller) is one of the
// reserved built-in property names.
func IsBuiltIn(key string) bool {
	_, ok := BuiltInProperties[key]
	return ok
}
