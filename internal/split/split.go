// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package split turns 4-up slide PDFs into one-slide-per-page PDFs and
// drives that conversion over a directory.
//
// Each source page becomes four output pages, one per quadrant in the
// order top-left, top-right, bottom-left, bottom-right. For an input
// name.pdf the result is written next to it as name_split.pdf.
package split

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/pdiddy/quadsplit/pkg/types"
)

// Splitter converts one 4-up PDF into a single-slide PDF. PDFSplitter is
// the production implementation; tests substitute fakes.
type Splitter interface {
	// Split reads inPath and writes the split document to outPath,
	// replacing any existing file there.
	Split(inPath, outPath string) (Stats, error)
}

// Stats reports the page counts of one conversion.
type Stats struct {
	SourcePages int
	OutputPages int
}

// Result is the outcome of processing a single input file.
type Result struct {
	Input   string
	Output  string
	Status  types.SplitStatus
	Stats   Stats
	Err     error
	Elapsed time.Duration
}

// BatchResult holds the outcome of a batch run.
type BatchResult struct {
	// Found counts every *.pdf in the directory before filtering.
	Found     int
	Converted int
	Skipped   int
	Failed    int
	Planned   int
	Results   []Result
}

// Total returns the number of inputs the batch handled.
func (r BatchResult) Total() int {
	return r.Converted + r.Skipped + r.Failed + r.Planned
}

// Attempted returns the number of inputs handed to the splitter.
func (r BatchResult) Attempted() int {
	return r.Converted + r.Failed
}

// HasFailures reports whether any file failed.
func (r BatchResult) HasFailures() bool {
	return r.Failed > 0
}

// SplitFile converts a single input, printing one status line to w. A
// failure is reported in the Result and never returned as an error so the
// caller can move on to the next file.
func SplitFile(s Splitter, inPath string, cfg types.SplitConfig, w io.Writer) Result {
	res := Result{Input: inPath, Output: OutputPath(inPath)}

	if cfg.DryRun {
		fmt.Fprintf(w, "would split: %s -> %s\n", res.Input, res.Output)
		res.Status = types.SplitPlanned
		return res
	}

	if cfg.SkipExisting {
		if _, err := os.Stat(res.Output); err == nil {
			fmt.Fprintf(w, "skipped: %s (%s exists)\n", res.Input, res.Output)
			res.Status = types.SplitSkipped
			return res
		}
	}

	start := time.Now()
	stats, err := s.Split(res.Input, res.Output)
	res.Elapsed = time.Since(start)
	res.Stats = stats
	if err != nil {
		fmt.Fprintf(w, "failed:  %s (%v)\n", res.Input, err)
		res.Status = types.SplitFailed
		res.Err = err
		return res
	}

	fmt.Fprintf(w, "converted: %s (%d pages -> %d pages)\n", res.Output, stats.SourcePages, stats.OutputPages)
	res.Status = types.SplitConverted
	return res
}

// SplitBatch processes inputs in order, printing per-file status and a
// closing summary. It continues after individual failures.
func SplitBatch(s Splitter, inputs []string, cfg types.SplitConfig, w io.Writer) BatchResult {
	var result BatchResult
	for _, in := range inputs {
		res := SplitFile(s, in, cfg, w)
		switch res.Status {
		case types.SplitConverted:
			result.Converted++
		case types.SplitSkipped:
			result.Skipped++
		case types.SplitFailed:
			result.Failed++
		case types.SplitPlanned:
			result.Planned++
		}
		result.Results = append(result.Results, res)
	}

	if cfg.DryRun {
		fmt.Fprintf(w, "\nDry run: %d file(s) would be split\n", result.Planned)
		return result
	}
	fmt.Fprintf(w, "\nBatch summary: %d converted, %d skipped, %d failed (total: %d)\n",
		result.Converted, result.Skipped, result.Failed, result.Total())
	return result
}

// SplitDir lists the PDFs in cfg.Dir, reports how many were found, and
// splits every one that is not itself a split output. A directory with no
// PDFs is not an error. Only a failure to read the directory is returned.
func SplitDir(s Splitter, cfg types.SplitConfig, w io.Writer) (BatchResult, error) {
	dir := cfg.Dir
	if dir == "" {
		dir = "."
	}

	found, err := ListPDFs(dir)
	if err != nil {
		return BatchResult{}, err
	}
	if len(found) == 0 {
		fmt.Fprintf(w, "No PDF files found in %s.\n", dir)
		return BatchResult{}, nil
	}

	fmt.Fprintf(w, "Found %d PDF file(s) in %s\n\n", len(found), dir)

	result := SplitBatch(s, SelectInputs(found), cfg, w)
	result.Found = len(found)
	return result, nil
}
