package assets

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/logseq-analyzer/lga/internal/fileindex"
	"github.com/logseq-analyzer/lga/internal/types"
)

func newFile(name string, ft types.FileType) *types.File {
	return &types.File{
		ID:          types.FileID(len(name) + int(ft)),
		Path:        name,
		LogicalName: name,
		Type:        ft,
		Features:    types.FeatureMap{},
	}
}

func TestAnalyzeMarksReferencedAssetBacklinked(t *testing.T) {
	idx := fileindex.New()

	page := newFile("page.md", types.FileTypePage)
	page.Features.Add(types.CategoryAssets, "assets/diagram.png")
	idx.Insert(page)

	asset := newFile("diagram", types.FileTypeAsset)
	idx.Insert(asset)

	report := Analyze(idx)
	_, ok := report.Backlinked["diagram"]
	assert.True(t, ok)
	assert.Empty(t, report.Unbacklinked)
}

func TestAnalyzeFlagsUnreferencedAssetAsUnbacklinked(t *testing.T) {
	idx := fileindex.New()
	asset := newFile("orphaned", types.FileTypeAsset)
	idx.Insert(asset)

	report := Analyze(idx)
	require.Len(t, report.Unbacklinked, 1)
	assert.Equal(t, "orphaned", report.Unbacklinked[0].LogicalName)
}

func TestAnalyzeIgnoresNonAssetFiles(t *testing.T) {
	idx := fileindex.New()
	idx.Insert(newFile("notes.md", types.FileTypePage))

	report := Analyze(idx)
	assert.Empty(t, report.Unbacklinked)
	assert.Empty(t, report.Backlinked)
}

func TestExtractHighlightsParsesHLSSpanBullet(t *testing.T) {
	hls := newFile("hls__book", types.FileTypeAsset)
	hls.IsHLS = true
	hls.RawText = "- :span\n  hl-page:: 12\n  id:: abc123\n  hl-stamp:: 1700000000000\n  some highlighted text"

	idx := fileindex.New()
	idx.Insert(hls)

	report := Analyze(idx)
	require.Len(t, report.Highlights, 1)
	h, ok := report.Highlights["12_abc123_1700000000000"]
	require.True(t, ok)
	assert.Equal(t, "12", h.Page)
	assert.Equal(t, "abc123", h.ID)
	assert.Equal(t, "hls__book", h.FoundIn)
}

func TestExtractHighlightsSkipsNonHLSFiles(t *testing.T) {
	f := newFile("plain", types.FileTypeAsset)
	f.RawText = ":span\nhl-page:: 1\nid:: x\nhl-stamp:: 1"

	idx := fileindex.New()
	idx.Insert(f)

	report := Analyze(idx)
	assert.Empty(t, report.Highlights)
}

func TestAnalyzeMarksAssetBacklinkedViaHighlight(t *testing.T) {
	idx := fileindex.New()

	asset := newFile("12", types.FileTypeAsset)
	idx.Insert(asset)

	hls := newFile("hls__book", types.FileTypeAsset)
	hls.IsHLS = true
	hls.RawText = "- :span\n  hl-page:: 12\n  id:: abc123\n  hl-stamp:: 1700000000000\n  some highlighted text"
	idx.Insert(hls)

	report := Analyze(idx)
	_, ok := report.Backlinked["12"]
	assert.True(t, ok)
	for _, f := range report.Unbacklinked {
		assert.NotEqual(t, "12", f.LogicalName)
	}
}

func TestNormalizeAssetRef(t *testing.T) {
	assert.Equal(t, "diagram", normalizeAssetRef("assets/diagram.png"))
	assert.Equal(t, "diagram", normalizeAssetRef("DIAGRAM.PNG"))
}
