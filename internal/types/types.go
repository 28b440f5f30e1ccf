// Package types defines the shared vocabulary of the Logseq graph analyzer:
// the enumerations and small value types that every other package reads or
// produces. Nothing here touches the filesystem or regular expressions.
package types

import "time"

// Limits mirror the teacher's documented-constant style: every default
// carries the reasoning for its value.
const (
	// DefaultMaxFileSize is a size bound for a single Markdown file.
	// Rationale: Logseq pages are short; anything past this is either a
	// pasted export or a misplaced binary. No code in the analyzer reads
	// this constant, so files of any size are loaded.
	DefaultMaxFileSize = 5 * 1024 * 1024

	// DefaultMaxFileCount is a bound on files processed in a single run.
	// Rationale: guards against pointing the analyzer at a non-graph
	// directory by mistake. No code in the analyzer reads this constant,
	// so the number of files is not capped.
	DefaultMaxFileCount = 200_000
)

// FileID is the stable identity key assigned to a File on insertion into
// the index. It is the xxhash of the file's content, computed by
// internal/analysis before insertion, not its path, so a renamed-but-unchanged file keeps its
// identity across runs.
type FileID uint64

// FileType classifies a path by which of Logseq's five graph subdirectories
// it lives under, per spec §3/§4.B. A file nested deeper than the immediate
// child of a target directory gets the corresponding sub_* variant.
type FileType uint8

const (
	FileTypeOther FileType = iota
	FileTypeAsset
	FileTypeDraw
	FileTypeJournal
	FileTypePage
	FileTypeWhiteboard
	FileTypeSubAsset
	FileTypeSubDraw
	FileTypeSubJournal
	FileTypeSubPage
	FileTypeSubWhiteboard
)

func (t FileType) String() string {
	switch t {
	case FileTypeAsset:
		return "asset"
	case FileTypeDraw:
		return "draw"
	case FileTypeJournal:
		return "journal"
	case FileTypePage:
		return "page"
	case FileTypeWhiteboard:
		return "whiteboard"
	case FileTypeSubAsset:
		return "sub_asset"
	case FileTypeSubDraw:
		return "sub_draw"
	case FileTypeSubJournal:
		return "sub_journal"
	case FileTypeSubPage:
		return "sub_page"
	case FileTypeSubWhiteboard:
		return "sub_whiteboard"
	default:
		return "other"
	}
}

// IsAsset reports whether the type is the asset or sub_asset variant. The
// asset resolver (4.I) takes these and also draw and sub_draw files as
// candidates for backlink matching.
func (t FileType) IsAsset() bool {
	return t == FileTypeAsset || t == FileTypeSubAsset
}

// NodeType is the per-file classification produced by the graph analyzer's
// node-classification pass (spec §4.F.3).
type NodeType uint8

const (
	NodeTypeOther NodeType = iota
	NodeTypeRoot
	NodeTypeLeaf
	NodeTypeBranch
	NodeTypeOrphanTrue
	NodeTypeOrphanGraph
	NodeTypeOrphanNamespace
	NodeTypeOrphanNamespaceTrue
)

func (t NodeType) String() string {
	switch t {
	case NodeTypeRoot:
		return "root"
	case NodeTypeLeaf:
		return "leaf"
	case NodeTypeBranch:
		return "branch"
	case NodeTypeOrphanTrue:
		return "orphan_true"
	case NodeTypeOrphanGraph:
		return "orphan_graph"
	case NodeTypeOrphanNamespace:
		return "orphan_namespace"
	case NodeTypeOrphanNamespaceTrue:
		return "orphan_namespace_true"
	default:
		return "other"
	}
}

// ClassifyNodeType implements the truth table of spec §4.F.3 on
// (has_content, has_backlinks, backlinked, backlinked_ns_only).
func ClassifyNodeType(hasContent, hasBacklinks, backlinked, backlinkedNSOnly bool) NodeType {
	switch {
	case hasContent && hasBacklinks && backlinked:
		return NodeTypeBranch
	case hasContent && hasBacklinks && !backlinked && backlinkedNSOnly:
		return NodeTypeBranch
	case hasContent && hasBacklinks && !backlinked && !backlinkedNSOnly:
		return NodeTypeRoot
	case hasContent && !hasBacklinks && backlinked:
		return NodeTypeLeaf
	case hasContent && !hasBacklinks && !backlinked && backlinkedNSOnly:
		return NodeTypeOrphanNamespace
	case hasContent && !hasBacklinks && !backlinked && !backlinkedNSOnly:
		return NodeTypeOrphanGraph
	case !hasContent && backlinked:
		return NodeTypeLeaf
	case !hasContent && !backlinked && backlinkedNSOnly:
		return NodeTypeOrphanNamespaceTrue
	default:
		return NodeTypeOrphanTrue
	}
}

// SizeInfo carries the byte-size facts of spec §3 "size info".
type SizeInfo struct {
	Size        int64
	HasContent  bool
	HumanSize   string
}

// TimestampInfo carries the creation/modification facts of spec §3
// "timestamp info".
type TimestampInfo struct {
	CreatedAt      time.Time
	ModifiedAt     time.Time
	TimeExisted    time.Duration
	TimeUnmodified time.Duration
}

// NamespaceInfo carries the namespace facts of spec §3 "namespace info".
type NamespaceInfo struct {
	IsNamespace bool
	Parts       map[string]int // part -> 1-based level
	Order       []string       // parts in order, for Root/Stem/ParentFull derivation
	Root        string
	Parent      string
	ParentFull  string
	Stem        string
	Children    map[string]struct{}
}

// BulletInfo carries the bullet-density facts of spec §3 "bullet info" and
// §8 scenario 1.
type BulletInfo struct {
	Chars         int
	Bullets       int
	EmptyBullets  int
	CharPerBullet *float64 // nil when Bullets == 0
}

// Category is the closed enumeration of feature-map keys from spec §6,
// represented as tagged variants rather than strings per the Design Notes
// in spec §9 ("Dynamic dispatch over category names → tagged variants").
type Category uint8

const (
	CategoryUnknown Category = iota
	CategoryAliases
	CategoryAnyLinks
	CategoryAssets
	CategoryBlockquotes
	CategoryDraws
	CategoryDynamicVariables
	CategoryFlashcards
	CategoryPageReferences
	CategoryTaggedBacklinks
	CategoryTags
	CategoryPropertiesBlockBuiltin
	CategoryPropertiesBlockUser
	CategoryPropertiesPageBuiltin
	CategoryPropertiesPageUser
	CategoryPropertiesValues
	CategoryInlineCode
	CategoryMultilineCode
	CategoryMultilineCodeCalc
	CategoryMultilineCodeLang
	CategoryAdvancedCommand
	CategoryAdvancedCommandCaution
	CategoryAdvancedCommandCenter
	CategoryAdvancedCommandComment
	CategoryAdvancedCommandExample
	CategoryAdvancedCommandExport
	CategoryAdvancedCommandExportASCII
	CategoryAdvancedCommandExportLatex
	CategoryAdvancedCommandImportant
	CategoryAdvancedCommandNote
	CategoryAdvancedCommandPinned
	CategoryAdvancedCommandQuery
	CategoryAdvancedCommandQuote
	CategoryAdvancedCommandTip
	CategoryAdvancedCommandVerse
	CategoryAdvancedCommandWarning
	CategoryBlockRefs
	CategoryAllRefs
	CategoryMacros
	CategoryEmbeds
	CategoryPageEmbeds
	CategoryBlockEmbeds
	CategoryNamespaceQueries
	CategoryCards
	CategoryClozes
	CategorySimpleQueries
	CategoryQueryFunctions
	CategoryVideoURLs
	CategoryTwitterTweets
	CategoryYoutubeTimestamps
	CategoryRenderers
	CategoryExternalLinksInternet
	CategoryExternalLinksAlias
	CategoryExternalLinksOther
	CategoryEmbeddedLinksInternet
	CategoryEmbeddedLinksAsset
	CategoryEmbeddedLinksOther

	categoryCount // sentinel; keep last
)

// categoryNames are the stable string identifiers report consumers see,
// verbatim from spec §6.
var categoryNames = [...]string{
	CategoryUnknown:                    "unknown",
	CategoryAliases:                    "aliases",
	CategoryAnyLinks:                   "any_links",
	CategoryAssets:                     "assets",
	CategoryBlockquotes:                "blockquotes",
	CategoryDraws:                      "draws",
	CategoryDynamicVariables:           "dynamic_variables",
	CategoryFlashcards:                 "flashcards",
	CategoryPageReferences:             "page_references",
	CategoryTaggedBacklinks:            "tagged_backlinks",
	CategoryTags:                       "tags",
	CategoryPropertiesBlockBuiltin:     "properties_block_builtin",
	CategoryPropertiesBlockUser:        "properties_block_user",
	CategoryPropertiesPageBuiltin:      "properties_page_builtin",
	CategoryPropertiesPageUser:         "properties_page_user",
	CategoryPropertiesValues:           "properties_values",
	CategoryInlineCode:                 "inline_code",
	CategoryMultilineCode:              "multiline_code",
	CategoryMultilineCodeCalc:          "multiline_code_calc",
	CategoryMultilineCodeLang:          "multiline_code_lang",
	CategoryAdvancedCommand:            "advanced_command",
	CategoryAdvancedCommandCaution:     "advanced_command_caution",
	CategoryAdvancedCommandCenter:      "advanced_command_center",
	CategoryAdvancedCommandComment:     "advanced_command_comment",
	CategoryAdvancedCommandExample:     "advanced_command_example",
	CategoryAdvancedCommandExport:      "advanced_command_export",
	CategoryAdvancedCommandExportASCII: "advanced_command_export_ascii",
	CategoryAdvancedCommandExportLatex: "advanced_command_export_latex",
	CategoryAdvancedCommandImportant:   "advanced_command_important",
	CategoryAdvancedCommandNote:        "advanced_command_note",
	CategoryAdvancedCommandPinned:      "advanced_command_pinned",
	CategoryAdvancedCommandQuery:       "advanced_command_query",
	CategoryAdvancedCommandQuote:       "advanced_command_quote",
	CategoryAdvancedCommandTip:         "advanced_command_tip",
	CategoryAdvancedCommandVerse:       "advanced_command_verse",
	CategoryAdvancedCommandWarning:     "advanced_command_warning",
	CategoryBlockRefs:                  "block_refs",
	CategoryAllRefs:                    "all_refs",
	CategoryMacros:                     "macros",
	CategoryEmbeds:                     "embeds",
	CategoryPageEmbeds:                 "page_embeds",
	CategoryBlockEmbeds:                "block_embeds",
	CategoryNamespaceQueries:           "namespace_queries",
	CategoryCards:                      "cards",
	CategoryClozes:                     "clozes",
	CategorySimpleQueries:              "simple_queries",
	CategoryQueryFunctions:             "query_functions",
	CategoryVideoURLs:                  "video_urls",
	CategoryTwitterTweets:              "twitter_tweets",
	CategoryYoutubeTimestamps:          "youtube_timestamps",
	CategoryRenderers:                  "renderers",
	CategoryExternalLinksInternet:      "external_links_internet",
	CategoryExternalLinksAlias:         "external_links_alias",
	CategoryExternalLinksOther:         "external_links_other",
	CategoryEmbeddedLinksInternet:      "embedded_links_internet",
	CategoryEmbeddedLinksAsset:         "embedded_links_asset",
	CategoryEmbeddedLinksOther:         "embedded_links_other",
}

func (c Category) String() string {
	if int(c) < len(categoryNames) && categoryNames[c] != "" {
		return categoryNames[c]
	}
	return "unknown"
}

// FeatureMap is a File's extracted feature map (spec §3), indexed by the
// closed Category enumeration instead of a string key.
type FeatureMap map[Category][]string

// Add appends an occurrence under a category, creating the slice on first
// use. Absent keys mean the category did not appear, per spec §3.
func (m FeatureMap) Add(cat Category, value string) {
	m[cat] = append(m[cat], value)
}

// BacklinkCategories are the categories whose presence sets
// File.HasBacklinks, per spec §4.D.
var BacklinkCategories = [...]Category{
	CategoryPropertiesBlockBuiltin,
	CategoryPropertiesBlockUser,
	CategoryPropertiesPageBuiltin,
	CategoryPropertiesPageUser,
	CategoryPropertiesValues,
	CategoryPageReferences,
	CategoryTaggedBacklinks,
	CategoryTags,
}
