// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package quadrant computes the 2x2 grid geometry of a 4-up page and maps
// each cell onto a PDF page box.
//
// Two coordinate systems are involved. Rect lives in visual space: the page
// as a viewer displays it (after /Rotate), origin top-left, y growing down.
// Box lives in PDF user space: origin bottom-left, y growing up, unrotated.
package quadrant

import "fmt"

// Position identifies one cell of the 2x2 grid.
type Position int

// Positions in reading ("Z") order.
const (
	TopLeft Position = iota
	TopRight
	BottomLeft
	BottomRight
)

// Order is the fixed sequence in which quadrants are emitted.
var Order = [4]Position{TopLeft, TopRight, BottomLeft, BottomRight}

func (p Position) String() string {
	switch p {
	case TopLeft:
		return "top-left"
	case TopRight:
		return "top-right"
	case BottomLeft:
		return "bottom-left"
	case BottomRight:
		return "bottom-right"
	default:
		return fmt.Sprintf("Position(%d)", int(p))
	}
}

// Rect is a rectangle in visual space.
type Rect struct {
	Left, Top, Right, Bottom float64
}

// Width returns the horizontal extent of r.
func (r Rect) Width() float64 { return r.Right - r.Left }

// Height returns the vertical extent of r.
func (r Rect) Height() float64 { return r.Bottom - r.Top }

// Area returns the area of r, or zero for degenerate rectangles.
func (r Rect) Area() float64 {
	w, h := r.Width(), r.Height()
	if w <= 0 || h <= 0 {
		return 0
	}
	return w * h
}

// Intersect returns the overlap of r and o. The result has zero area
// when they do not overlap.
func (r Rect) Intersect(o Rect) Rect {
	return Rect{
		Left:   max(r.Left, o.Left),
		Top:    max(r.Top, o.Top),
		Right:  min(r.Right, o.Right),
		Bottom: min(r.Bottom, o.Bottom),
	}
}

func (r Rect) String() string {
	return fmt.Sprintf("(%g,%g,%g,%g)", r.Left, r.Top, r.Right, r.Bottom)
}

// Quadrants splits a w x h page into four equal cells in Z order. The
// boundaries are exactly {0, w/2, w} x {0, h/2, h}.
func Quadrants(w, h float64) [4]Rect {
	mx, my := w/2, h/2
	return [4]Rect{
		TopLeft:     {Left: 0, Top: 0, Right: mx, Bottom: my},
		TopRight:    {Left: mx, Top: 0, Right: w, Bottom: my},
		BottomLeft:  {Left: 0, Top: my, Right: mx, Bottom: h},
		BottomRight: {Left: mx, Top: my, Right: w, Bottom: h},
	}
}
