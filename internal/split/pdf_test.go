// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package split

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/pdiddy/quadsplit/internal/quadrant"
)

var approxBoxes = cmpopts.EquateApprox(0, 1e-6)

func TestPDFSplitter_PageCount(t *testing.T) {
	tests := []struct {
		name  string
		pages []testPage
	}{
		{"single page", []testPage{{w: 1000, h: 800}}},
		{"three pages", []testPage{{w: 612, h: 792}, {w: 612, h: 792}, {w: 612, h: 792}}},
		{"mixed sizes", []testPage{{w: 1000, h: 800}, {w: 595, h: 842}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			in := writePDF(t, dir, "deck.pdf", tt.pages...)
			out := filepath.Join(dir, "deck_split.pdf")

			stats, err := NewPDFSplitter(nil).Split(in, out)
			require.NoError(t, err)
			assert.Equal(t, len(tt.pages), stats.SourcePages)
			assert.Equal(t, 4*len(tt.pages), stats.OutputPages)

			n, err := api.PageCountFile(out)
			require.NoError(t, err)
			assert.Equal(t, 4*len(tt.pages), n)
		})
	}
}

func TestPDFSplitter_CropBoxesInZOrder(t *testing.T) {
	dir := t.TempDir()
	in := writePDF(t, dir, "deck.pdf", testPage{w: 1000, h: 800}, testPage{w: 600, h: 400})
	out := filepath.Join(dir, "deck_split.pdf")

	_, err := NewPDFSplitter(nil).Split(in, out)
	require.NoError(t, err)

	want := []quadrant.Box{
		// Page 1, 1000x800.
		{LLX: 0, LLY: 400, URX: 500, URY: 800},
		{LLX: 500, LLY: 400, URX: 1000, URY: 800},
		{LLX: 0, LLY: 0, URX: 500, URY: 400},
		{LLX: 500, LLY: 0, URX: 1000, URY: 400},
		// Page 2, 600x400.
		{LLX: 0, LLY: 200, URX: 300, URY: 400},
		{LLX: 300, LLY: 200, URX: 600, URY: 400},
		{LLX: 0, LLY: 0, URX: 300, URY: 200},
		{LLX: 300, LLY: 0, URX: 600, URY: 200},
	}
	if diff := cmp.Diff(want, readCropBoxes(t, out), approxBoxes); diff != "" {
		t.Errorf("crop boxes mismatch (-want +got):\n%s", diff)
	}
}

func TestPDFSplitter_RotatedPage(t *testing.T) {
	dir := t.TempDir()
	in := writePDF(t, dir, "rotated.pdf", testPage{w: 600, h: 800, rotate: 90})
	out := filepath.Join(dir, "rotated_split.pdf")

	_, err := NewPDFSplitter(nil).Split(in, out)
	require.NoError(t, err)

	want, err := quadrant.ForPage(quadrant.Box{URX: 600, URY: 800}, 90)
	require.NoError(t, err)
	if diff := cmp.Diff(want[:], readCropBoxes(t, out), approxBoxes); diff != "" {
		t.Errorf("crop boxes mismatch (-want +got):\n%s", diff)
	}
}

func TestPDFSplitter_Deterministic(t *testing.T) {
	dir := t.TempDir()
	in := writePDF(t, dir, "deck.pdf", testPage{w: 960, h: 540}, testPage{w: 960, h: 540})

	first := filepath.Join(dir, "first.pdf")
	second := filepath.Join(dir, "second.pdf")
	s := NewPDFSplitter(nil)
	_, err := s.Split(in, first)
	require.NoError(t, err)
	_, err = s.Split(in, second)
	require.NoError(t, err)

	assert.Equal(t, readCropBoxes(t, first), readCropBoxes(t, second))
}

func TestPDFSplitter_LeavesSourceUntouched(t *testing.T) {
	dir := t.TempDir()
	in := writePDF(t, dir, "deck.pdf", testPage{w: 1000, h: 800})
	before, err := os.ReadFile(in)
	require.NoError(t, err)

	_, err = NewPDFSplitter(nil).Split(in, filepath.Join(dir, "deck_split.pdf"))
	require.NoError(t, err)

	after, err := os.ReadFile(in)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestPDFSplitter_OverwritesExistingOutput(t *testing.T) {
	dir := t.TempDir()
	in := writePDF(t, dir, "deck.pdf", testPage{w: 1000, h: 800})
	out := filepath.Join(dir, "deck_split.pdf")
	require.NoError(t, os.WriteFile(out, []byte("stale"), 0o644))

	_, err := NewPDFSplitter(nil).Split(in, out)
	require.NoError(t, err)

	n, err := api.PageCountFile(out)
	require.NoError(t, err)
	assert.Equal(t, 4, n)
}

func TestPDFSplitter_Errors(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(t *testing.T, dir string) string
		wantErr string
	}{
		{
			name: "missing file",
			setup: func(t *testing.T, dir string) string {
				return filepath.Join(dir, "absent.pdf")
			},
			wantErr: "opening source",
		},
		{
			name: "not a pdf",
			setup: func(t *testing.T, dir string) string {
				path := filepath.Join(dir, "corrupt.pdf")
				require.NoError(t, os.WriteFile(path, []byte("this is not a pdf"), 0o644))
				return path
			},
			wantErr: "reading source",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			in := tt.setup(t, dir)
			out := filepath.Join(dir, "out_split.pdf")

			core, logs := observer.New(zap.ErrorLevel)
			_, err := NewPDFSplitter(zap.New(core).Sugar()).Split(in, out)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)

			_, statErr := os.Stat(out)
			assert.True(t, os.IsNotExist(statErr), "no output should be written on failure")
			assert.Equal(t, 1, logs.FilterMessage("split failed").Len())
			assertNoTempFiles(t, dir)
		})
	}
}

func TestPDFSplitter_SplitReader(t *testing.T) {
	src := buildPDF([]testPage{{w: 1000, h: 800}})

	var out bytes.Buffer
	stats, err := NewPDFSplitter(nil).SplitReader(bytes.NewReader(src), &out)
	require.NoError(t, err)
	assert.Equal(t, Stats{SourcePages: 1, OutputPages: 4}, stats)

	n, err := api.PageCount(bytes.NewReader(out.Bytes()), nil)
	require.NoError(t, err)
	assert.Equal(t, 4, n)
}

func TestPDFSplitter_LogsGeometry(t *testing.T) {
	dir := t.TempDir()
	in := writePDF(t, dir, "deck.pdf", testPage{w: 1000, h: 800}, testPage{w: 1000, h: 800})

	core, logs := observer.New(zap.DebugLevel)
	_, err := NewPDFSplitter(zap.New(core).Sugar()).Split(in, filepath.Join(dir, "deck_split.pdf"))
	require.NoError(t, err)

	assert.Equal(t, 2, logs.FilterMessage("page geometry").Len())
	done := logs.FilterMessage("split complete").All()
	require.Len(t, done, 1)
	assert.EqualValues(t, 8, done[0].ContextMap()["output_pages"])
}

func assertNoTempFiles(t *testing.T, dir string) {
	t.Helper()
	matches, err := filepath.Glob(filepath.Join(dir, ".quadsplit-*.tmp"))
	require.NoError(t, err)
	assert.Empty(t, matches)
}
