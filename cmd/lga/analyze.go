package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/urfave/cli/v2"

	"github.com/logseq-analyzer/lga/internal/analysis"
	"github.com/logseq-analyzer/lga/internal/cache"
	"github.com/logseq-analyzer/lga/internal/config"
	"github.com/logseq-analyzer/lga/internal/metrics"
)

var analyzeCommand = &cli.Command{
	Name:  "analyze",
	Usage: "Run a full analysis pass and print a summary report",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:  "format",
			Usage: "Output format: txt, json",
			Value: "txt",
		},
		&cli.BoolFlag{
			Name:  "write-graph",
			Usage: "Retain each Markdown file's raw text during analysis, enabling HLS highlight extraction; the text is not printed (spec write_graph)",
		},
		&cli.BoolFlag{
			Name:  "no-cache",
			Usage: "Disable the persistent mtime cache for this run",
		},
		&cli.BoolFlag{
			Name:  "reset-cache",
			Usage: "Wipe the persistent cache before running",
		},
		&cli.StringFlag{
			Name:  "metrics-addr",
			Usage: "Serve Prometheus metrics on this address (e.g. :9090) while analyzing; empty disables it",
		},
	},
	Action: runAnalyze,
}

func loadConfig(c *cli.Context) (*config.Config, error) {
	graphFolder := c.String("graph")
	abs, err := filepath.Abs(graphFolder)
	if err != nil {
		return nil, fmt.Errorf("resolving graph path: %w", err)
	}
	cfg, err := config.Load(abs, c.String("global-config"))
	if err != nil {
		return cfg, err
	}
	v := config.NewValidator()
	if err := v.ValidateAndSetDefaults(cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func openCache(c *cli.Context, cfg *config.Config) (*cache.Cache, error) {
	if c.Bool("no-cache") {
		return nil, nil
	}
	dbPath := filepath.Join(cfg.GraphFolder, "logseq", ".lga-cache")
	return cache.Open(dbPath, c.Bool("reset-cache"))
}

func runAnalyze(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	ch, err := openCache(c, cfg)
	if err != nil {
		return fmt.Errorf("opening cache: %w", err)
	}
	if ch != nil {
		defer ch.Close()
	}

	var reg *metrics.Registry
	if addr := c.String("metrics-addr"); addr != "" {
		reg = metrics.New()
		promReg := prometheus.NewRegistry()
		reg.MustRegister(promReg)
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.HandlerFor(promReg, promhttp.HandlerOpts{}))
		srv := &http.Server{Addr: addr, Handler: mux}
		go func() {
			if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				fmt.Fprintf(os.Stderr, "lga: metrics server: %v\n", err)
			}
		}()
		defer srv.Close()
	}

	result, err := analysis.Run(analysis.Options{
		Cfg:        cfg,
		Cache:      ch,
		WriteGraph: c.Bool("write-graph"),
		Metrics:    reg,
	})
	if err != nil {
		return fmt.Errorf("analysis failed: %w", err)
	}

	switch c.String("format") {
	case "json":
		return printJSON(result)
	default:
		printSummary(result)
		return nil
	}
}

func printJSON(result *analysis.Result) error {
	summary := map[string]any{
		"files_indexed":       result.Index.Len(),
		"dangling_links":      result.Graph.DanglingLinks,
		"namespace_conflicts": result.Namespaces.Conflicts,
		"warnings":            result.Warnings,
		"suggestions":         result.Suggestions,
	}
	if result.Journals != nil {
		summary["journal_missing_count"] = len(result.Journals.Missing)
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(summary)
}

func printSummary(result *analysis.Result) {
	fmt.Printf("Files indexed: %d\n", result.Index.Len())
	fmt.Printf("Dangling links: %d\n", len(result.Graph.DanglingLinks))
	for i, d := range result.Graph.DanglingLinks {
		if i >= 10 {
			fmt.Printf("  ... and %d more\n", len(result.Graph.DanglingLinks)-10)
			break
		}
		line := fmt.Sprintf("  %-40s %d", d.Name, d.Count)
		if matches := result.Suggestions[d.Name]; len(matches) > 0 {
			line += fmt.Sprintf("  (did you mean: %s?)", matches[0].Name)
		}
		fmt.Println(line)
	}
	fmt.Printf("Namespace conflicts: non_namespace=%d dangling=%d parent_depth=%d\n",
		len(result.Namespaces.Conflicts.NonNamespace),
		len(result.Namespaces.Conflicts.Dangling),
		len(result.Namespaces.Conflicts.ParentDepth))
	if result.Journals != nil {
		fmt.Printf("Journal gaps: %d missing, %d dangling\n", len(result.Journals.Missing), len(result.Journals.Dangling))
	}
	if result.Assets != nil {
		fmt.Printf("Unbacklinked assets/draws: %d\n", len(result.Assets.Unbacklinked))
		fmt.Printf("Highlights reconstructed: %d\n", len(result.Assets.Highlights))
	}
	if len(result.Warnings) > 0 {
		fmt.Printf("Warnings: %d\n", len(result.Warnings))
		for _, w := range result.Warnings {
			fmt.Printf("  %s\n", w.Error())
		}
	}
}
