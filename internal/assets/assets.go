// Package assets implements the asset/draw backlink resolver and the HLS
// (highlight) pipeline of spec §4.I, grounded on
// logseq_analyzer/analysis/assets.py's LogseqAssets.
package assets

import (
	"strings"

	"github.com/logseq-analyzer/lga/internal/fileindex"
	"github.com/logseq-analyzer/lga/internal/patterns"
	"github.com/logseq-analyzer/lga/internal/types"
)

// Report is the output of one asset analysis pass.
type Report struct {
	// Backlinked holds the logical names of every asset/draw file that is
	// referenced from at least one Assets/Draws/EmbeddedLinksAsset
	// feature occurrence elsewhere in the graph.
	Backlinked map[string]struct{}

	// Unbacklinked is every asset/sub_asset/draw/sub_draw file with no
	// reference anywhere in the graph, candidates for the
	// move_unlinked_assets feature flag (spec §6).
	Unbacklinked []*types.File

	// Highlights is every HLS key discovered across hls__ files, keyed by
	// "{hl-page}_{id}_{hl-stamp}" per spec §4.I.
	Highlights map[string]Highlight
}

// Highlight is one reconstructed highlight entry.
type Highlight struct {
	Key      string
	Page     string
	ID       string
	Stamp    string
	FoundIn  string
	RawBlock string
}

var assetRefCategories = []types.Category{
	types.CategoryAssets,
	types.CategoryDraws,
	types.CategoryEmbeddedLinksAsset,
}

// Analyze resolves asset/draw backlinks and extracts HLS highlights from
// idx, per spec §4.I.
func Analyze(idx *fileindex.Index) *Report {
	files := idx.All()

	referenced := map[string]struct{}{}
	for _, f := range files {
		for _, cat := range assetRefCategories {
			for _, raw := range f.Features[cat] {
				referenced[normalizeAssetRef(raw)] = struct{}{}
			}
		}
	}

	backlinked := map[string]struct{}{}
	var unbacklinked []*types.File
	for _, f := range files {
		if !f.Type.IsAsset() && f.Type != types.FileTypeDraw && f.Type != types.FileTypeSubDraw {
			continue
		}
		name := strings.ToLower(f.LogicalName)
		matched := false
		for ref := range referenced {
			if strings.Contains(ref, name) || strings.Contains(name, ref) {
				matched = true
				break
			}
		}
		if matched {
			backlinked[f.LogicalName] = struct{}{}
		} else {
			unbacklinked = append(unbacklinked, f)
		}
	}

	highlights := extractHighlights(files)

	// Cross-reference HLS highlight pages against asset/sub_asset logical
	// names: a PDF highlighted in an .hls file is backlinked even though
	// nothing in the graph's prose references its path directly, matching
	// logseq_analyzer's asset_names.intersection(self.hls_bullets) ->
	// node.backlinked.
	hlPages := make(map[string]struct{}, len(highlights))
	for _, hl := range highlights {
		hlPages[strings.ToLower(hl.Page)] = struct{}{}
	}
	remaining := unbacklinked[:0]
	for _, f := range unbacklinked {
		if _, hit := hlPages[strings.ToLower(f.LogicalName)]; hit {
			backlinked[f.LogicalName] = struct{}{}
			continue
		}
		remaining = append(remaining, f)
	}
	unbacklinked = remaining

	return &Report{
		Backlinked:   backlinked,
		Unbacklinked: unbacklinked,
		Highlights:   highlights,
	}
}

func normalizeAssetRef(raw string) string {
	raw = strings.TrimPrefix(raw, "assets/")
	raw = strings.ToLower(raw)
	if i := strings.LastIndex(raw, "."); i >= 0 {
		raw = raw[:i]
	}
	return raw
}

// hlSpanBullet matches a ":span" bullet body carrying hl-page/id/hl-stamp
// property lines, the Logseq HLS fixture format read by
// logseq_analyzer/analysis/assets.py's highlight scan.
var hlSpanBullet = patterns.MustCompile(`(?s):span\b.*?hl-page::\s*(\S+).*?\bid::\s*(\S+).*?\bhl-stamp::\s*(\S+)`)

func extractHighlights(files []*types.File) map[string]Highlight {
	out := map[string]Highlight{}
	for _, f := range files {
		if !f.IsHLS {
			continue
		}
		for _, m := range hlSpanBullet.FindAllStringSubmatch(f.RawText, -1) {
			page, id, stamp := m[1], m[2], m[3]
			key := page + "_" + id + "_" + stamp
			out[key] = Highlight{
				Key:      key,
				Page:     page,
				ID:       id,
				Stamp:    stamp,
				FoundIn:  f.LogicalName,
				RawBlock: m[0],
			}
		}
	}
	return out
}
