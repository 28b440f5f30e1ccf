// Package errors defines the analyzer's error kinds (spec §7) following the
// teacher's ErrorType-enum-plus-struct pattern: a typed kind, a builder for
// optional context, and a standard error/Unwrap implementation so callers
// can use errors.As across phase boundaries.
package errors

import "fmt"

// ErrorKind is the closed set of error kinds from spec §7.
type ErrorKind string

const (
	// KindConfigMissing: graph folder, logseq/, or config.edn not found.
	// Fatal — the run aborts before the cache phase.
	KindConfigMissing ErrorKind = "config_missing"

	// KindConfigParseWarning: EDN parse failure on an optional global
	// config. Non-fatal — defaults are used.
	KindConfigParseWarning ErrorKind = "config_parse_warning"

	// KindFileReadError: a single file is unreadable or non-UTF-8.
	// Non-fatal — a warning is recorded and the file is left out of the
	// index; no zero-content record is made for it.
	KindFileReadError ErrorKind = "file_read_error"

	// KindDateParseWarning: a journal filename or dangling link that
	// doesn't match the configured date format. Non-fatal.
	KindDateParseWarning ErrorKind = "date_parse_warning"

	// KindQueryShapeWarning: a {{namespace ...}} query with zero or
	// multiple page references. Non-fatal — the query is skipped.
	KindQueryShapeWarning ErrorKind = "query_shape_warning"

	// KindCacheCorruption: the persisted cache file can't be read. No code
	// raises this kind: cache.Open returns its error as is, `lga analyze`
	// stops with it, and the cache is not discarded or rebuilt.
	KindCacheCorruption ErrorKind = "cache_corruption"
)

// Fatal reports whether errors of this kind must abort the run, per spec
// §7: "Only ConfigMissing is unrecoverable."
func (k ErrorKind) Fatal() bool {
	return k == KindConfigMissing
}

// AnalyzerError is the single error type the analyzer raises; every kind in
// spec §7 is represented as a value of this struct rather than a distinct
// Go type, keeping errors.As matching cheap for callers that only care
// about the kind.
type AnalyzerError struct {
	Kind        ErrorKind
	Message     string
	File        string
	Recoverable bool
	cause       error
}

// New constructs an AnalyzerError. Recoverable defaults to !Kind.Fatal().
func New(kind ErrorKind, message string) *AnalyzerError {
	return &AnalyzerError{
		Kind:        kind,
		Message:     message,
		Recoverable: !kind.Fatal(),
	}
}

// Wrap constructs an AnalyzerError around an underlying cause.
func Wrap(kind ErrorKind, message string, cause error) *AnalyzerError {
	e := New(kind, message)
	e.cause = cause
	return e
}

// WithFile attaches the file path this error pertains to and returns the
// receiver, mirroring the teacher's builder-method style.
func (e *AnalyzerError) WithFile(path string) *AnalyzerError {
	e.File = path
	return e
}

// WithRecoverable overrides the default recoverability.
func (e *AnalyzerError) WithRecoverable(recoverable bool) *AnalyzerError {
	e.Recoverable = recoverable
	return e
}

func (e *AnalyzerError) Error() string {
	if e.File != "" {
		return fmt.Sprintf("%s: %s (file=%s)", e.Kind, e.Message, e.File)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *AnalyzerError) Unwrap() error {
	return e.cause
}

// IsFatal reports whether this error must abort the run.
func (e *AnalyzerError) IsFatal() bool {
	return e.Kind.Fatal() && !e.Recoverable
}
