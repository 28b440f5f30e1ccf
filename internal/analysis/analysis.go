// Package analysis wires the per-file classifier/extractor and the
// graph/namespace/journal/asset analyzers into one pipeline over a
// filesystem walk, grounded on
// logseq_analyzer/logseq_analyzer.py's LogseqAnalyzer.run orchestration
// (load config -> walk graph -> build index -> run analyzers in sequence).
package analysis

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/logseq-analyzer/lga/internal/assets"
	"github.com/logseq-analyzer/lga/internal/cache"
	"github.com/logseq-analyzer/lga/internal/classify"
	"github.com/logseq-analyzer/lga/internal/config"
	lgaerrors "github.com/logseq-analyzer/lga/internal/errors"
	"github.com/logseq-analyzer/lga/internal/extract"
	"github.com/logseq-analyzer/lga/internal/fileindex"
	"github.com/logseq-analyzer/lga/internal/graph"
	"github.com/logseq-analyzer/lga/internal/journals"
	"github.com/logseq-analyzer/lga/internal/logseqio"
	"github.com/logseq-analyzer/lga/internal/metrics"
	"github.com/logseq-analyzer/lga/internal/namespaces"
	"github.com/logseq-analyzer/lga/internal/suggest"
	"github.com/logseq-analyzer/lga/internal/types"

	"github.com/cespare/xxhash/v2"
	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/sync/errgroup"
)

// loadWorkers bounds how many files are classified/extracted concurrently.
// Per-file work (stat, read, regex cascade) is independent until it reaches
// idx.Insert, which is mutex-protected, so this is the one phase in spec §5
// ("single-threaded, sequential phases") safe to parallelize internally:
// every worker still merges back before the graph/namespace/journal/asset
// phases begin, preserving the phase boundary itself.
const loadWorkers = 8

// Result is the full output of one analysis run, the aggregate every
// report-format adapter and the MCP server read from.
type Result struct {
	Index      *fileindex.Index
	Graph      *graph.Report
	Namespaces *namespaces.Report
	Journals   *journals.Timeline
	Assets     *assets.Report

	// Suggestions maps each dangling link name to its likely typo
	// corrections among names that do resolve, per spec-full's
	// "did you mean" addition.
	Suggestions map[string][]suggest.Match

	Warnings []*lgaerrors.AnalyzerError
}

// Options configures one run.
type Options struct {
	Cfg        *config.Config
	Cache      *cache.Cache      // nil disables persistent caching
	WriteGraph bool              // spec §6: retain RawText on each File
	Metrics    *metrics.Registry // nil disables observation
}

// Run walks cfg.GraphFolder, classifies and extracts every Markdown file,
// builds the FileIndex, and runs the graph/namespace/journal/asset
// analyzers in sequence, per spec §5.
func Run(opts Options) (*Result, error) {
	cfg := opts.Cfg
	idx := fileindex.New()

	var paths []string
	var warnings []*lgaerrors.AnalyzerError
	err := filepath.WalkDir(cfg.GraphFolder, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			warnings = append(warnings, lgaerrors.Wrap(lgaerrors.KindFileReadError, "walk error", err).WithFile(path))
			return nil
		}
		if d.IsDir() {
			return nil
		}
		if strings.EqualFold(filepath.Ext(path), ".org") {
			return nil
		}
		rel, relErr := filepath.Rel(cfg.GraphFolder, path)
		if relErr == nil && cfg.IsExcluded(filepath.ToSlash(rel)) {
			return nil
		}
		paths = append(paths, path)
		return nil
	})
	if err != nil {
		return nil, err
	}

	var warnMu sync.Mutex
	g := new(errgroup.Group)
	g.SetLimit(loadWorkers)
	for _, path := range paths {
		path := path
		g.Go(func() error {
			f, fErr := loadFile(path, cfg, opts)
			if fErr != nil {
				warnMu.Lock()
				warnings = append(warnings, fErr)
				warnMu.Unlock()
				return nil
			}
			idx.Insert(f)
			return nil
		})
	}
	_ = g.Wait() // per-file errors are collected as warnings, never fatal

	removed := idx.RemoveDeletedFiles()
	_ = removed

	graphReport := graph.Analyze(idx)
	dangling := make(map[string]struct{}, len(graphReport.DanglingLinks))
	for _, d := range graphReport.DanglingLinks {
		dangling[d.Name] = struct{}{}
	}

	nsReport := namespaces.Analyze(idx, dangling)
	assetReport := assets.Analyze(idx)

	danglingNames := make([]string, 0, len(dangling))
	for name := range dangling {
		danglingNames = append(danglingNames, name)
	}
	journalTimeline := journals.Build(idx, danglingNames, cfg.JournalFormats)

	known := make([]string, 0, idx.Len())
	for _, f := range idx.All() {
		lower := strings.ToLower(f.LogicalName)
		if _, isDangling := dangling[lower]; !isDangling {
			known = append(known, lower)
		}
	}
	suggestions := suggest.SuggestAll(danglingNames, known)

	if opts.Metrics != nil {
		opts.Metrics.DanglingLinks.Set(float64(len(graphReport.DanglingLinks)))
		opts.Metrics.NamespaceConflicts.Set(float64(
			len(nsReport.Conflicts.NonNamespace) + len(nsReport.Conflicts.Dangling) + len(nsReport.Conflicts.ParentDepth),
		))
	}

	return &Result{
		Index:       idx,
		Graph:       graphReport,
		Namespaces:  nsReport,
		Journals:    journalTimeline,
		Assets:      assetReport,
		Suggestions: suggestions,
		Warnings:    warnings,
	}, nil
}

// loadFile reads, classifies, and extracts one path into a types.File.
// Every file is read, classified and (for Markdown) extracted on every
// run: the cache is consulted only to count hits and misses and is
// updated afterwards, and an unchanged file is not skipped. Only Markdown files
// carry prose to extract patterns from; assets (images, PDFs) and draws
// (.excalidraw) are indexed for backlink resolution (spec §4.I) but are
// never parsed as Logseq content, matching
// logseq_analyzer/logseq_file/file.py's split between LogseqFile (parsed)
// and the bare-path asset/draw bookkeeping.
func loadFile(path string, cfg *config.Config, opts Options) (*types.File, *lgaerrors.AnalyzerError) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, lgaerrors.Wrap(lgaerrors.KindFileReadError, "stat failed", err).WithFile(path)
	}

	isMarkdown := strings.EqualFold(filepath.Ext(path), ".md")

	content, err := os.ReadFile(path)
	if err != nil {
		if opts.Metrics != nil {
			opts.Metrics.FilesSkipped.Inc()
		}
		return nil, lgaerrors.Wrap(lgaerrors.KindFileReadError, "read failed", err).WithFile(path).WithRecoverable(true)
	}
	if isMarkdown && !utf8.Valid(content) {
		if opts.Metrics != nil {
			opts.Metrics.FilesSkipped.Inc()
		}
		return nil, lgaerrors.New(lgaerrors.KindFileReadError, "not valid UTF-8").WithFile(path).WithRecoverable(true)
	}

	id := types.FileID(xxhash.Sum64(content))
	cr := classify.Classify(path, cfg)

	// Spec §4.J's cache only persists the skip decision (mtime/size/hash),
	// not extracted features, so extraction always runs; the cache's
	// value is in letting a future incremental-run mode short-circuit
	// the walk itself before reaching this point.
	if opts.Cache != nil {
		if opts.Cache.IsModified(path, info.ModTime(), info.Size(), content) {
			if opts.Metrics != nil {
				opts.Metrics.CacheMisses.Inc()
			}
		} else if opts.Metrics != nil {
			opts.Metrics.CacheHits.Inc()
		}
	}

	var text string
	var features types.FeatureMap
	hasContent := info.Size() > 0
	if isMarkdown {
		text = string(content)
		hasContent = len(strings.TrimSpace(text)) > 0
		if opts.Metrics != nil {
			timer := prometheus.NewTimer(opts.Metrics.ExtractDuration)
			features = extract.Extract(text)
			timer.ObserveDuration()
		} else {
			features = extract.Extract(text)
		}
	}

	if opts.Cache != nil {
		_ = opts.Cache.Put(path, info.ModTime(), info.Size(), content)
	}
	if opts.Metrics != nil {
		opts.Metrics.FilesProcessed.Inc()
	}

	f := &types.File{
		ID:          id,
		Path:        path,
		ParentDir:   filepath.Dir(path),
		Suffix:      filepath.Ext(path),
		LogicalName: cr.LogicalName,
		Type:        cr.FileType,
		ExternalURL: cr.ExternalURL,
		IsHLS:       cr.IsHLS,
		Namespace:   cr.Namespace,
		Features:    features,
		Size: types.SizeInfo{
			Size:       info.Size(),
			HasContent: hasContent,
			HumanSize:  logseqio.FormatBytes(info.Size()),
		},
		Timestamp: types.TimestampInfo{
			ModifiedAt:  info.ModTime(),
			TimeExisted: time.Since(info.ModTime()),
		},
	}
	if opts.WriteGraph && isMarkdown {
		f.RawText = text
	}
	return f, nil
}

