// Package classify implements the path classifier of spec §4.B: mapping a
// filesystem path to a file type and a normalized logical name, grounded
// on logseq_analyzer/logseq_file/name.py's LogseqFilename pipeline
// (process_filename -> determine_file_type -> process_logseq_filename ->
// check_is_hls -> check_is_namespace -> get_namespace_name_data).
package classify

import (
	"net/url"
	"path/filepath"
	"strings"

	"github.com/logseq-analyzer/lga/internal/config"
	"github.com/logseq-analyzer/lga/internal/datefmt"
	"github.com/logseq-analyzer/lga/internal/types"
)

// Result is everything the classifier derives from one path.
type Result struct {
	FileType      types.FileType
	LogicalName   string
	IsHLS         bool
	Namespace     types.NamespaceInfo
	ExternalURL   string
}

// Classify maps path (absolute, inside cfg.GraphFolder) to a Result.
func Classify(path string, cfg *config.Config) Result {
	ft := determineFileType(path, cfg.Dirs)
	stem := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))

	var name string
	if ft == types.FileTypeJournal || ft == types.FileTypeSubJournal {
		name = journalLogicalName(stem, cfg.JournalFormats)
	} else {
		name = nonJournalLogicalName(stem, cfg.NameFormat.Separator())
	}

	res := Result{
		FileType:    ft,
		LogicalName: name,
		IsHLS:       strings.HasPrefix(strings.ToLower(filepath.Base(path)), "hls__"),
		ExternalURL: externalURL(path),
	}
	res.Namespace = namespaceInfo(name)
	return res
}

// determineFileType implements spec §4.B "File type": immediate parent
// match -> that type; any ancestor match -> sub_* variant; else other.
func determineFileType(path string, dirs config.AnalyzerDirs) types.FileType {
	dir := filepath.Dir(path)
	parent := filepath.Base(dir)

	if t, ok := targetDirType(parent, dirs); ok {
		return t
	}

	for d := filepath.Dir(dir); d != "." && d != string(filepath.Separator) && d != "/"; d = filepath.Dir(d) {
		name := filepath.Base(d)
		if t, ok := targetDirType(name, dirs); ok {
			return subVariant(t)
		}
		if filepath.Dir(d) == d {
			break
		}
	}
	return types.FileTypeOther
}

func targetDirType(name string, dirs config.AnalyzerDirs) (types.FileType, bool) {
	switch name {
	case dirs.Assets:
		return types.FileTypeAsset, true
	case dirs.Draws:
		return types.FileTypeDraw, true
	case dirs.Journals:
		return types.FileTypeJournal, true
	case dirs.Pages:
		return types.FileTypePage, true
	case dirs.Whiteboards:
		return types.FileTypeWhiteboard, true
	default:
		return types.FileTypeOther, false
	}
}

func subVariant(t types.FileType) types.FileType {
	switch t {
	case types.FileTypeAsset:
		return types.FileTypeSubAsset
	case types.FileTypeDraw:
		return types.FileTypeSubDraw
	case types.FileTypeJournal:
		return types.FileTypeSubJournal
	case types.FileTypePage:
		return types.FileTypeSubPage
	case types.FileTypeWhiteboard:
		return types.FileTypeSubWhiteboard
	default:
		return types.FileTypeOther
	}
}

// journalLogicalName implements spec §4.B's journal-name reformatting:
// parse the stem against the file-name format; on success, reformat with
// the page-title format (with ordinal suffix handling); on failure, keep
// the stem.
func journalLogicalName(stem string, formats config.JournalFormats) string {
	t, ok := datefmt.Parse(stem, formats.FileNameFormat)
	if !ok {
		return stem
	}
	return datefmt.Format(t, formats.PageTitleFormat)
}

// nonJournalLogicalName percent-decodes the stem and replaces the
// namespace separator with "/", stripping any trailing separator first.
func nonJournalLogicalName(stem, separator string) string {
	stem = strings.TrimSuffix(stem, separator)
	if decoded, err := url.QueryUnescape(stem); err == nil {
		stem = decoded
	}
	return strings.ReplaceAll(stem, separator, "/")
}

// externalURL implements spec §4.B: a URL is only constructed when the
// path lies within a subdirectory literally named "page" or "block-id".
func externalURL(path string) string {
	for d := filepath.Dir(path); ; d = filepath.Dir(d) {
		base := filepath.Base(d)
		if base == "page" || base == "block-id" {
			rel := strings.TrimPrefix(filepath.ToSlash(path), filepath.ToSlash(d))
			return "logseq://graph/" + strings.TrimPrefix(rel, "/")
		}
		if filepath.Dir(d) == d {
			break
		}
	}
	return ""
}

// namespaceInfo derives the namespace facts of spec §3 from a logical
// name: ordered parts mapped to 1-based levels, root, parent, parent_full,
// stem.
func namespaceInfo(name string) types.NamespaceInfo {
	if !strings.Contains(name, "/") {
		return types.NamespaceInfo{IsNamespace: false}
	}
	order := strings.Split(name, "/")
	parts := make(map[string]int, len(order))
	for i, p := range order {
		parts[p] = i + 1
	}
	ns := types.NamespaceInfo{
		IsNamespace: true,
		Parts:       parts,
		Order:       order,
		Root:        order[0],
		Stem:        order[len(order)-1],
		ParentFull:  strings.Join(order[:len(order)-1], "/"),
		Children:    map[string]struct{}{},
	}
	if len(order) == 2 {
		ns.Parent = ns.Root
	} else {
		ns.Parent = order[len(order)-2]
	}
	return ns
}
