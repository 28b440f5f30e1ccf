package types

// File is the central entity of spec §3: one processed Logseq file, fully
// classified and extracted, ready for insertion into the FileIndex.
type File struct {
	ID FileID

	// path info
	Path        string
	ParentDir   string
	Suffix      string
	LogicalName string
	Type        FileType
	ExternalURL string
	IsHLS       bool

	Size      SizeInfo
	Timestamp TimestampInfo
	Namespace NamespaceInfo
	Bullets   BulletInfo

	Features FeatureMap

	// node state
	HasBacklinks     bool
	Backlinked       bool
	BacklinkedNSOnly bool
	NodeType         NodeType

	// RawText is populated only when the run was configured with
	// write_graph (spec §6), so the report can embed source text.
	RawText string
}

// HasFeature reports whether any of cats fired for this file.
func (f *File) HasFeature(cats ...Category) bool {
	for _, c := range cats {
		if len(f.Features[c]) > 0 {
			return true
		}
	}
	return false
}

// SetBacklinked applies spec §3's mutual-exclusion invariant: setting
// Backlinked clears BacklinkedNSOnly and vice versa, resolving the open
// question in spec §9 ("the invariant in §3 is the intended behavior;
// implementers should unify").
func (f *File) SetBacklinked() {
	f.Backlinked = true
	f.BacklinkedNSOnly = false
}

func (f *File) SetBacklinkedNSOnly() {
	f.BacklinkedNSOnly = true
	f.Backlinked = false
}
