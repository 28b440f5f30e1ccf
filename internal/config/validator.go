package config

import "fmt"

// Validator validates a resolved Config and fills in any remaining smart
// defaults, adapted from the teacher's internal/config/validator.go
// ValidateAndSetDefaults pattern.
type Validator struct{}

// NewValidator creates a Validator.
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateAndSetDefaults validates cfg, returning an error describing the
// first problem found.
func (v *Validator) ValidateAndSetDefaults(cfg *Config) error {
	if cfg.GraphFolder == "" {
		return fmt.Errorf("graph folder cannot be empty")
	}
	if cfg.JournalFormats.FileNameFormat == "" || cfg.JournalFormats.PageTitleFormat == "" {
		return fmt.Errorf("journal formats cannot be empty")
	}
	if cfg.Dirs.Pages == "" || cfg.Dirs.Journals == "" {
		return fmt.Errorf("pages/journals directory names cannot be empty")
	}
	if cfg.ReportFormat == "" {
		cfg.ReportFormat = ReportFormatText
	}
	return nil
}
