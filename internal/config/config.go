// Package config loads and merges the analyzer's configuration, adapting
// the teacher's internal/config Load/LoadWithRoot/merge pattern
// (standardbeagle-lci) to spec §6's configuration inputs: defaults, then
// an optional global override file, then the in-graph logseq/config.edn.
package config

import (
	"path/filepath"

	lcierrors "github.com/logseq-analyzer/lga/internal/errors"
)

// NameFormat is the namespace filename separator scheme, config key
// :file/name-format (spec §4.B).
type NameFormat string

const (
	NameFormatLegacy       NameFormat = "legacy"
	NameFormatTripleLowbar NameFormat = "triple-lowbar"
)

// Separator returns the literal separator string used in on-disk
// filenames for this scheme.
func (f NameFormat) Separator() string {
	if f == NameFormatTripleLowbar {
		return "___"
	}
	return "%2F"
}

// AnalyzerDirs names the five target subdirectories of a Logseq graph,
// defaulted per spec §6 and overridable from config.edn's
// :pages-directory / :journals-directory / :whiteboards-directory keys
// (assets/draws are not read from config.edn or from the global config
// file, so they always keep their conventional names).
type AnalyzerDirs struct {
	Assets      string
	Draws       string
	Journals    string
	Pages       string
	Whiteboards string
}

// DefaultAnalyzerDirs mirrors spec §6's defaults.
func DefaultAnalyzerDirs() AnalyzerDirs {
	return AnalyzerDirs{
		Assets:      "assets",
		Draws:       "draws",
		Journals:    "journals",
		Pages:       "pages",
		Whiteboards: "whiteboards",
	}
}

// JournalFormats holds the two Clojure-style date format strings that
// drive the path classifier (4.B) and journal reconstructor (4.H).
type JournalFormats struct {
	FileNameFormat  string // :journal/file-name-format
	PageTitleFormat string // :journal/page-title-format
}

// DefaultJournalFormats matches Logseq's own out-of-the-box config.
func DefaultJournalFormats() JournalFormats {
	return JournalFormats{
		FileNameFormat:  "yyyy_MM_dd",
		PageTitleFormat: "MMM do, yyyy",
	}
}

// FeatureFlags carries the boolean configuration inputs of spec §6 that
// are not structural (those live in AnalyzerDirs/JournalFormats).
type FeatureFlags struct {
	GraphCache        bool
	WriteGraph        bool
	MoveUnlinkedAssets bool
	MoveBak           bool
	MoveRecycle       bool
}

// ReportFormat is the external serializer's output kind, spec §6
// report_format. The core never renders one itself; this is carried only
// so the thin CLI/report adapter has somewhere to read the user's choice
// from.
type ReportFormat string

const (
	ReportFormatText ReportFormat = "txt"
	ReportFormatMD   ReportFormat = "md"
	ReportFormatJSON ReportFormat = "json"
	ReportFormatHTML ReportFormat = "html"
)

// Config is the fully resolved configuration for one analysis run.
type Config struct {
	GraphFolder    string
	GlobalConfig   string
	Dirs           AnalyzerDirs
	NameFormat     NameFormat
	JournalFormats JournalFormats
	Flags          FeatureFlags
	ReportFormat   ReportFormat
	Exclude        []string
}

// Default returns a Config populated entirely with defaults; callers then
// merge in an optional global config and the in-graph config.edn.
func Default(graphFolder string) *Config {
	return &Config{
		GraphFolder:    graphFolder,
		Dirs:           DefaultAnalyzerDirs(),
		NameFormat:     NameFormatLegacy,
		JournalFormats: DefaultJournalFormats(),
		ReportFormat:   ReportFormatText,
		Exclude:        DefaultExcludes(),
	}
}

// Load resolves a Config for graphFolder: defaults, then globalConfigPath
// (if non-empty), then <graphFolder>/logseq/config.edn. It never returns a
// nil Config — on a missing graph folder or logseq/config.edn it returns
// the fatal ConfigMissing error described in spec §7, but the caller still
// gets defaults back so partial diagnostics can reference the attempted
// paths.
func Load(graphFolder, globalConfigPath string) (*Config, error) {
	return LoadWithRoot(graphFolder, globalConfigPath, graphFolder)
}

// LoadWithRoot is Load with an explicit root used to resolve config.edn,
// mirroring the teacher's LoadWithRoot signature for callers that analyze
// a subdirectory of a larger graph checkout.
func LoadWithRoot(graphFolder, globalConfigPath, rootDir string) (*Config, error) {
	cfg := Default(graphFolder)

	logseqDir := filepath.Join(rootDir, "logseq")
	configPath := filepath.Join(logseqDir, "config.edn")
	if !pathExists(rootDir) || !pathExists(logseqDir) || !pathExists(configPath) {
		return cfg, lcierrors.New(lcierrors.KindConfigMissing, "graph folder missing logseq/config.edn").WithFile(configPath)
	}

	if globalConfigPath != "" {
		if global, err := ReadEDNFile(globalConfigPath); err != nil {
			// Non-fatal: ConfigParseWarning, defaults stand.
			_ = lcierrors.Wrap(lcierrors.KindConfigParseWarning, "global config unreadable, using defaults", err).WithFile(globalConfigPath)
		} else {
			mergeEDN(cfg, global)
		}
	}

	graphEDN, err := ReadEDNFile(configPath)
	if err != nil {
		_ = lcierrors.Wrap(lcierrors.KindConfigParseWarning, "config.edn unreadable, using defaults", err).WithFile(configPath)
		return cfg, nil
	}
	mergeEDN(cfg, graphEDN)

	cfg.Exclude = mergeExcludes(cfg.Exclude, graphEDN)
	return cfg, nil
}

func pathExists(p string) bool {
	_, err := osStat(p)
	return err == nil
}
