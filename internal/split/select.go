// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package split

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const (
	pdfExt = ".pdf"
	// outputMarker tags generated files; inputs carrying it are never split
	// again.
	outputMarker = "_split"
)

// ListPDFs returns the paths of the regular entries in dir whose name ends
// in ".pdf" in any letter case, sorted by name. Subdirectories are not
// searched.
func ListPDFs(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading directory %s: %w", dir, err)
	}

	var paths []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if !hasPDFExt(entry.Name()) {
			continue
		}
		paths = append(paths, filepath.Join(dir, entry.Name()))
	}
	return paths, nil
}

// IsSplitOutput reports whether the file name marks a previous output.
func IsSplitOutput(path string) bool {
	return strings.Contains(filepath.Base(path), outputMarker)
}

// SelectInputs drops earlier outputs from paths, keeping order.
func SelectInputs(paths []string) []string {
	inputs := make([]string, 0, len(paths))
	for _, p := range paths {
		if IsSplitOutput(p) {
			continue
		}
		inputs = append(inputs, p)
	}
	return inputs
}

// OutputPath returns the sibling path name_split.pdf for input name.pdf.
func OutputPath(inPath string) string {
	dir := filepath.Dir(inPath)
	base := filepath.Base(inPath)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	return filepath.Join(dir, stem+outputMarker+pdfExt)
}

func hasPDFExt(name string) bool {
	return len(name) >= len(pdfExt) && strings.EqualFold(name[len(name)-len(pdfExt):], pdfExt)
}
