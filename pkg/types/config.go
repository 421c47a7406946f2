package types

// SplitConfig holds the resolved settings for one batch run.
type SplitConfig struct {
	// Dir is the directory scanned for 4-up PDFs (non-recursive).
	Dir string `json:"dir" yaml:"dir"`

	// SkipExisting leaves an existing <stem>_split.pdf untouched instead of
	// overwriting it. Overwriting is the default.
	SkipExisting bool `json:"skip_existing" yaml:"skip_existing"`

	// DryRun prints the planned conversions without writing anything.
	DryRun bool `json:"dry_run" yaml:"dry_run"`

	// ReportPath, when set, receives a YAML report of the run.
	ReportPath string `json:"report,omitempty" yaml:"report,omitempty"`

	// Verbose enables debug-level diagnostic logging.
	Verbose bool `json:"verbose" yaml:"verbose"`
}
