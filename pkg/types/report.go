// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// SplitStatus is the outcome of processing one input file.
type SplitStatus string

const (
	SplitConverted SplitStatus = "converted"
	SplitSkipped   SplitStatus = "skipped"
	SplitFailed    SplitStatus = "failed"
	SplitPlanned   SplitStatus = "planned"
)

// FileReport records what happened to one input PDF.
type FileReport struct {
	// Input is the path of the 4-up source file.
	Input string `json:"input" yaml:"input"`

	// Output is the path of the generated <stem>_split.pdf.
	Output string `json:"output" yaml:"output"`

	Status SplitStatus `json:"status" yaml:"status"`

	// SourcePages and OutputPages are zero unless Status is converted.
	SourcePages int `json:"source_pages,omitempty" yaml:"source_pages,omitempty"`
	OutputPages int `json:"output_pages,omitempty" yaml:"output_pages,omitempty"`

	// Error holds the failure message for failed files.
	Error string `json:"error,omitempty" yaml:"error,omitempty"`

	// Elapsed is the wall time spent on this file.
	Elapsed time.Duration `json:"elapsed" yaml:"elapsed"`
}

// Report summarizes a batch run over one directory.
type Report struct {
	RunID     string    `json:"run_id" yaml:"run_id"`
	StartedAt time.Time `json:"started_at" yaml:"started_at"`
	Dir       string    `json:"dir" yaml:"dir"`
	DryRun    bool      `json:"dry_run,omitempty" yaml:"dry_run,omitempty"`

	// Found counts every *.pdf in Dir, including earlier outputs.
	Found     int `json:"found" yaml:"found"`
	Converted int `json:"converted" yaml:"converted"`
	Skipped   int `json:"skipped" yaml:"skipped"`
	Failed    int `json:"failed" yaml:"failed"`

	Files []FileReport `json:"files" yaml:"files"`
}
