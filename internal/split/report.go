// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package split

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/quadsplit/pkg/types"
)

// NewReport builds the run report for a finished batch.
func NewReport(cfg types.SplitConfig, result BatchResult, started time.Time) types.Report {
	r := types.Report{
		RunID:     uuid.NewString(),
		StartedAt: started.UTC(),
		Dir:       cfg.Dir,
		DryRun:    cfg.DryRun,
		Found:     result.Found,
		Converted: result.Converted,
		Skipped:   result.Skipped,
		Failed:    result.Failed,
		Files:     make([]types.FileReport, 0, len(result.Results)),
	}
	for _, res := range result.Results {
		fr := types.FileReport{
			Input:   res.Input,
			Output:  res.Output,
			Status:  res.Status,
			Elapsed: res.Elapsed,
		}
		if res.Status == types.SplitConverted {
			fr.SourcePages = res.Stats.SourcePages
			fr.OutputPages = res.Stats.OutputPages
		}
		if res.Err != nil {
			fr.Error = res.Err.Error()
		}
		r.Files = append(r.Files, fr)
	}
	return r
}

// WriteReport writes report to path as YAML.
func WriteReport(path string, report types.Report) error {
	data, err := yaml.Marshal(report)
	if err != nil {
		return fmt.Errorf("marshaling report: %w", err)
	}
	if err := writeFileAtomic(path, data); err != nil {
		return fmt.Errorf("writing report %s: %w", path, err)
	}
	return nil
}
