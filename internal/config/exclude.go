package config

import "github.com/bmatcuk/doublestar/v4"

// DefaultExcludes are the directories the analyzer never walks into, per
// spec §6: logseq/bak and logseq/.recycle are "ignored by analysis;
// eligible for relocation" by the external mover. Adapted from the
// teacher's large default Exclude glob list (internal/config/config.go)
// down to the handful this domain actually needs, using the same
// doublestar "**/..." glob convention.
func DefaultExcludes() []string {
	return []string{
		"**/logseq/bak/**",
		"**/logseq/.recycle/**",
		"**/.git/**",
		"**/.DS_Store",
	}
}

// mergeExcludes appends any user-configured ignore patterns found in the
// EDN document, de-duplicating against the defaults the way the teacher's
// mergeConfigs dedups Exclude slices via a seen-set.
func mergeExcludes(base []string, doc EDNDocument) []string {
	seen := make(map[string]struct{}, len(base))
	for _, p := range base {
		seen[p] = struct{}{}
	}
	if extra, ok := doc["ignored-paths"]; ok && extra != "" {
		if _, dup := seen[extra]; !dup {
			base = append(base, extra)
			seen[extra] = struct{}{}
		}
	}
	return base
}

// IsExcluded reports whether relPath (slash-separated, relative to the
// graph root) matches any of cfg's exclude globs.
func (c *Config) IsExcluded(relPath string) bool {
	for _, pattern := range c.Exclude {
		if ok, _ := doublestar.Match(pattern, relPath); ok {
			return true
		}
	}
	return false
}
