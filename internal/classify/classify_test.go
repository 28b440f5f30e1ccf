package classify

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/logseq-analyzer/lga/internal/config"
	"github.com/logseq-analyzer/lga/internal/types"
)

func testConfig() *config.Config {
	return config.Default("/graph")
}

func TestClassifyPage(t *testing.T) {
	res := Classify(filepath.Join("/graph", "pages", "My Page.md"), testConfig())
	assert.Equal(t, types.FileTypePage, res.FileType)
	assert.Equal(t, "My Page", res.LogicalName)
	assert.False(t, res.IsHLS)
}

func TestClassifySubPage(t *testing.T) {
	res := Classify(filepath.Join("/graph", "pages", "nested", "deep.md"), testConfig())
	assert.Equal(t, types.FileTypeSubPage, res.FileType)
}

func TestClassifyJournalReformatsName(t *testing.T) {
	res := Classify(filepath.Join("/graph", "journals", "2024_03_07.md"), testConfig())
	assert.Equal(t, types.FileTypeJournal, res.FileType)
	assert.Equal(t, "Mar 7th, 2024", res.LogicalName)
}

func TestClassifyJournalKeepsStemOnParseFailure(t *testing.T) {
	res := Classify(filepath.Join("/graph", "journals", "not-a-date.md"), testConfig())
	assert.Equal(t, "not-a-date", res.LogicalName)
}

func TestClassifyHLSPrefix(t *testing.T) {
	res := Classify(filepath.Join("/graph", "assets", "hls__book.md"), testConfig())
	assert.True(t, res.IsHLS)
}

func TestClassifyNamespaceName(t *testing.T) {
	res := Classify(filepath.Join("/graph", "pages", "parent%2Fchild.md"), testConfig())
	assert.True(t, res.Namespace.IsNamespace)
	assert.Equal(t, "parent", res.Namespace.Root)
	assert.Equal(t, "child", res.Namespace.Stem)
	assert.Equal(t, []string{"parent", "child"}, res.Namespace.Order)
}

func TestClassifyNonNamespaceName(t *testing.T) {
	res := Classify(filepath.Join("/graph", "pages", "solo.md"), testConfig())
	assert.False(t, res.Namespace.IsNamespace)
}

func TestClassifyTripleLowbarSeparator(t *testing.T) {
	cfg := testConfig()
	cfg.NameFormat = config.NameFormatTripleLowbar
	res := Classify(filepath.Join("/graph", "pages", "parent___child.md"), cfg)
	assert.True(t, res.Namespace.IsNamespace)
	assert.Equal(t, "parent", res.Namespace.Root)
}

func TestClassifyThreeLevelNamespaceParent(t *testing.T) {
	res := Classify(filepath.Join("/graph", "pages", "a%2Fb%2Fc.md"), testConfig())
	assert.Equal(t, "a", res.Namespace.Root)
	assert.Equal(t, "b", res.Namespace.Parent)
	assert.Equal(t, "c", res.Namespace.Stem)
	assert.Equal(t, "a/b", res.Namespace.ParentFull)
}

func TestClassifyExternalURL(t *testing.T) {
	res := Classify(filepath.Join("/graph", "pages", "page", "abc123.md"), testConfig())
	assert.Equal(t, "logseq://graph/abc123.md", res.ExternalURL)
}

func TestClassifyOtherType(t *testing.T) {
	res := Classify(filepath.Join("/graph", "random-dir", "notes.md"), testConfig())
	assert.Equal(t, types.FileTypeOther, res.FileType)
}
