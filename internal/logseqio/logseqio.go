// Package logseqio implements the filesystem lifecycle types of spec §6's
// supplemented feature set, grounded on
// logseq_analyzer/io/filesystem.py's File/OutputDirectory/GraphDirectory/
// LogseqDirectory/ConfigFile/DeleteBakDirectory/DeleteRecycleDirectory/
// DeleteAssetsDirectory hierarchy. The Python dataclass-plus-subclass
// hierarchy is flattened to one struct configured by construction options,
// following the teacher's preference for composition over deep embedding.
package logseqio

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
)

// Entry is one filesystem path the analyzer manages across its lifecycle:
// validated on startup, optionally cleaned, and created if missing.
type Entry struct {
	Path        string
	IsDir       bool
	MustExist   bool
	CleanOnInit bool
}

// NewFile mirrors logseq_analyzer.io.filesystem.File: validated lazily
// unless MustExist or CleanOnInit is set, in which case Startup validates
// or cleans immediately.
func NewFile(path string) *Entry {
	return &Entry{Path: path}
}

// NewOutputDirectory mirrors OutputDirectory: a directory wiped and
// recreated on every run.
func NewOutputDirectory(path string) *Entry {
	return &Entry{Path: path, IsDir: true, CleanOnInit: true}
}

// NewGraphDirectory mirrors GraphDirectory: must already exist.
func NewGraphDirectory(path string) *Entry {
	return &Entry{Path: path, IsDir: true, MustExist: true}
}

// NewLogseqDirectory mirrors LogseqDirectory: must already exist.
func NewLogseqDirectory(path string) *Entry {
	return &Entry{Path: path, IsDir: true, MustExist: true}
}

// NewConfigFile mirrors ConfigFile: must already exist.
func NewConfigFile(path string) *Entry {
	return &Entry{Path: path, MustExist: true}
}

// NewDeleteBakDirectory mirrors DeleteBakDirectory, the directory named
// for the move_bak feature flag (spec §6). Startup creates it when it is
// missing; nothing in the analyzer empties it.
func NewDeleteBakDirectory(path string) *Entry {
	return &Entry{Path: path, IsDir: true}
}

// NewDeleteRecycleDirectory mirrors DeleteRecycleDirectory, named for the
// move_recycle flag. Startup creates it when it is missing; nothing in the
// analyzer empties it.
func NewDeleteRecycleDirectory(path string) *Entry {
	return &Entry{Path: path, IsDir: true}
}

// NewDeleteAssetsDirectory mirrors DeleteAssetsDirectory, named for the
// move_unlinked_assets flag. Startup creates it when it is missing;
// nothing in the analyzer moves assets into it.
func NewDeleteAssetsDirectory(path string) *Entry {
	return &Entry{Path: path, IsDir: true}
}

// Startup runs the Python __post_init__ sequence: validate first when
// required, clean when requested, create if missing, and validate
// afterward if neither of the first two already did.
func (e *Entry) Startup() error {
	if e.MustExist {
		if err := e.Validate(); err != nil {
			return err
		}
	}
	if e.CleanOnInit {
		if pathExists(e.Path) {
			e.Clean()
		}
	}
	e.MakeIfMissing()
	if !e.MustExist && !e.CleanOnInit {
		return e.Validate()
	}
	return nil
}

// Validate checks the path exists and matches IsDir.
func (e *Entry) Validate() error {
	info, err := os.Stat(e.Path)
	if err != nil {
		return fmt.Errorf("path does not exist: %s", e.Path)
	}
	if e.IsDir && !info.IsDir() {
		return fmt.Errorf("path is not a directory: %s", e.Path)
	}
	if !e.IsDir && info.IsDir() {
		return fmt.Errorf("path is not a file: %s", e.Path)
	}
	return nil
}

// Clean removes the path, logging but not failing the run on error,
// mirroring the Python implementation's log-and-continue behavior.
func (e *Entry) Clean() {
	var err error
	if e.IsDir {
		err = os.RemoveAll(e.Path)
	} else {
		err = os.Remove(e.Path)
	}
	if err != nil {
		log.Printf("logseqio: error deleting path %s: %v", e.Path, err)
		return
	}
	log.Printf("logseqio: deleted %s", e.Path)
}

// MakeIfMissing creates the path (and parents) if absent.
func (e *Entry) MakeIfMissing() {
	if pathExists(e.Path) {
		return
	}
	var err error
	if e.IsDir {
		err = os.MkdirAll(e.Path, 0o755)
	} else {
		if mkErr := os.MkdirAll(filepath.Dir(e.Path), 0o755); mkErr != nil {
			err = mkErr
		} else {
			var f *os.File
			f, err = os.OpenFile(e.Path, os.O_CREATE, 0o644)
			if f != nil {
				_ = f.Close()
			}
		}
	}
	if err != nil {
		log.Printf("logseqio: error creating path %s: %v", e.Path, err)
		return
	}
	log.Printf("logseqio: created %s", e.Path)
}

func pathExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// FormatBytes renders n bytes using IEC binary prefixes (KiB/MiB/...),
// matching the original helpers.format_bytes used throughout the size
// report (spec §3 "size info" HumanSize field).
func FormatBytes(n int64) string {
	const unit = 1024.0
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := float64(unit), 0
	for f := float64(n) / unit; f >= unit; f /= unit {
		div *= unit
		exp++
	}
	suffixes := []string{"KiB", "MiB", "GiB", "TiB", "PiB"}
	return fmt.Sprintf("%.1f %s", float64(n)/div, suffixes[exp])
}
