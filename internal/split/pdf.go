// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package split

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"
	"go.uber.org/zap"

	"github.com/pdiddy/quadsplit/internal/quadrant"
)

// PDFSplitter implements Splitter with pdfcpu. Every output page is a full
// copy of its source page whose /CropBox is narrowed to one quadrant; the
// content stream is not touched.
type PDFSplitter struct {
	log *zap.SugaredLogger
}

// NewPDFSplitter returns a splitter that logs to log. A nil logger
// discards everything.
func NewPDFSplitter(log *zap.SugaredLogger) *PDFSplitter {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &PDFSplitter{log: log}
}

// Split reads inPath and writes the quadrant-split document to outPath.
func (s *PDFSplitter) Split(inPath, outPath string) (Stats, error) {
	start := time.Now()

	stats, err := s.splitFile(inPath, outPath)
	if err != nil {
		s.log.Errorw("split failed", "input", inPath, "error", err)
		return stats, err
	}

	s.log.Infow("split complete",
		"input", inPath,
		"output", outPath,
		"source_pages", stats.SourcePages,
		"output_pages", stats.OutputPages,
		"elapsed", time.Since(start),
	)
	return stats, nil
}

func (s *PDFSplitter) splitFile(inPath, outPath string) (Stats, error) {
	f, err := os.Open(inPath)
	if err != nil {
		return Stats{}, fmt.Errorf("opening source: %w", err)
	}
	defer f.Close()

	var buf bytes.Buffer
	stats, err := s.SplitReader(f, &buf)
	if err != nil {
		return stats, err
	}
	if err := writeFileAtomic(outPath, buf.Bytes()); err != nil {
		return stats, fmt.Errorf("writing output: %w", err)
	}
	return stats, nil
}

// SplitReader splits the document read from rs and writes the result to w.
// Nothing is written to w unless the whole document was processed.
func (s *PDFSplitter) SplitReader(rs io.ReadSeeker, w io.Writer) (Stats, error) {
	ctx, err := api.ReadValidateAndOptimize(rs, newConfiguration())
	if err != nil {
		return Stats{}, fmt.Errorf("reading source: %w", err)
	}
	if err := ctx.EnsurePageCount(); err != nil {
		return Stats{}, fmt.Errorf("counting pages: %w", err)
	}
	if ctx.PageCount == 0 {
		return Stats{}, errors.New("source has no pages")
	}

	stats := Stats{SourcePages: ctx.PageCount}
	segments := make([]io.ReadSeeker, 0, 4*ctx.PageCount)

	for pageNr := 1; pageNr <= ctx.PageCount; pageNr++ {
		boxes, err := s.pageQuadrants(ctx, pageNr)
		if err != nil {
			return stats, fmt.Errorf("page %d: %w", pageNr, err)
		}
		for i, box := range boxes {
			seg, err := croppedCopy(ctx, pageNr, box)
			if err != nil {
				return stats, fmt.Errorf("copying page %d (%s): %w", pageNr, quadrant.Order[i], err)
			}
			segments = append(segments, bytes.NewReader(seg))
		}
	}

	var out bytes.Buffer
	if err := api.MergeRaw(segments, &out, false, newConfiguration()); err != nil {
		return stats, fmt.Errorf("merging pages: %w", err)
	}
	if _, err := out.WriteTo(w); err != nil {
		return stats, fmt.Errorf("writing document: %w", err)
	}

	stats.OutputPages = len(segments)
	return stats, nil
}

// pageQuadrants returns the four crop boxes for page pageNr, relative to
// its visible box and honoring its rotation.
func (s *PDFSplitter) pageQuadrants(ctx *model.Context, pageNr int) ([4]quadrant.Box, error) {
	_, _, inh, err := ctx.PageDict(pageNr, false)
	if err != nil {
		return [4]quadrant.Box{}, err
	}
	if inh == nil {
		return [4]quadrant.Box{}, errors.New("missing page attributes")
	}

	ref := inh.CropBox
	if ref == nil {
		ref = inh.MediaBox
	}
	if ref == nil {
		return [4]quadrant.Box{}, errors.New("no media box")
	}

	box := boxFromRect(ref)
	boxes, err := quadrant.ForPage(box, inh.Rotate)
	if err != nil {
		return boxes, err
	}
	s.log.Debugw("page geometry",
		"page", pageNr,
		"box", box.String(),
		"rotate", inh.Rotate,
		"quadrants", boxes,
	)
	return boxes, nil
}

// croppedCopy extracts page pageNr of ctx into a standalone one-page
// document whose crop box is box.
func croppedCopy(ctx *model.Context, pageNr int, box quadrant.Box) ([]byte, error) {
	pageCtx, err := pdfcpu.ExtractPages(ctx, []int{pageNr}, false)
	if err != nil {
		return nil, fmt.Errorf("extracting: %w", err)
	}
	if err := pageCtx.EnsurePageCount(); err != nil {
		return nil, err
	}

	d, _, _, err := pageCtx.PageDict(1, false)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, errors.New("extracted page is empty")
	}
	d["CropBox"] = rectFromBox(box).Array()

	var buf bytes.Buffer
	if err := api.WriteContext(pageCtx, &buf); err != nil {
		return nil, fmt.Errorf("serializing: %w", err)
	}
	return buf.Bytes(), nil
}

// newConfiguration returns a relaxed-mode pdfcpu configuration for a
// single read or merge.
func newConfiguration() *model.Configuration {
	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed
	return conf
}

func boxFromRect(r *types.Rectangle) quadrant.Box {
	return quadrant.Box{LLX: r.LL.X, LLY: r.LL.Y, URX: r.UR.X, URY: r.UR.Y}
}

func rectFromBox(b quadrant.Box) *types.Rectangle {
	return types.NewRectangle(b.LLX, b.LLY, b.URX, b.URY)
}
