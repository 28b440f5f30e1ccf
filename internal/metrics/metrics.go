// Package metrics exposes the analyzer's run counters through
// prometheus/client_golang, the ambient observability library named in the
// DOMAIN STACK section of the expanded spec. Nothing in the core packages
// (extract, graph, namespaces, ...) imports this package directly; the CLI
// wires it around the phases it wants observed, keeping the domain logic
// free of metrics concerns per spec §5.
package metrics

import "github.com/prometheus/client_golang/prometheus"

// Registry bundles the analyzer's collectors behind one constructor so the
// CLI can register them with a single prometheus.Registerer.
type Registry struct {
	FilesProcessed     prometheus.Counter
	FilesSkipped       prometheus.Counter
	CacheHits          prometheus.Counter
	CacheMisses        prometheus.Counter
	ExtractDuration    prometheus.Histogram
	DanglingLinks      prometheus.Gauge
	NamespaceConflicts prometheus.Gauge
}

// New builds a fresh Registry with unregistered collectors.
func New() *Registry {
	return &Registry{
		FilesProcessed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "lga",
			Name:      "files_processed_total",
			Help:      "Files successfully classified and extracted.",
		}),
		FilesSkipped: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "lga",
			Name:      "files_skipped_total",
			Help:      "Files skipped because they could not be read or were not valid UTF-8.",
		}),
		CacheHits: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "lga",
			Name:      "cache_hits_total",
			Help:      "Path lookups satisfied by the persisted mtime cache.",
		}),
		CacheMisses: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "lga",
			Name:      "cache_misses_total",
			Help:      "Path lookups with no cached entry or a changed one.",
		}),
		ExtractDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "lga",
			Name:      "extract_duration_seconds",
			Help:      "Per-file content extraction latency.",
			Buckets:   prometheus.DefBuckets,
		}),
		DanglingLinks: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "lga",
			Name:      "dangling_links",
			Help:      "Dangling links found in the most recent graph analysis.",
		}),
		NamespaceConflicts: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "lga",
			Name:      "namespace_conflicts",
			Help:      "Namespace parts involved in a conflict in the most recent analysis.",
		}),
	}
}

// MustRegister registers every collector against reg, panicking on a
// duplicate-registration error, matching prometheus's own idiom for
// process-lifetime singletons.
func (r *Registry) MustRegister(reg prometheus.Registerer) {
	reg.MustRegister(
		r.FilesProcessed,
		r.FilesSkipped,
		r.CacheHits,
		r.CacheMisses,
		r.ExtractDuration,
		r.DanglingLinks,
		r.NamespaceConflicts,
	)
}
