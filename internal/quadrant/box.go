// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package quadrant

import "fmt"

// Box is a rectangle in PDF user space, given by its lower-left and
// upper-right corners.
type Box struct {
	LLX, LLY, URX, URY float64
}

// Width returns the horizontal extent of b.
func (b Box) Width() float64 { return b.URX - b.LLX }

// Height returns the vertical extent of b.
func (b Box) Height() float64 { return b.URY - b.LLY }

func (b Box) String() string {
	return fmt.Sprintf("[%g %g %g %g]", b.LLX, b.LLY, b.URX, b.URY)
}

// NormalizeRotation reduces a /Rotate value to one of 0, 90, 180 or 270.
// PDF only permits multiples of 90; anything else is an error.
func NormalizeRotation(rotate int) (int, error) {
	if rotate%90 != 0 {
		return 0, fmt.Errorf("page rotation %d is not a multiple of 90", rotate)
	}
	r := rotate % 360
	if r < 0 {
		r += 360
	}
	return r, nil
}

// VisualSize returns the displayed width and height of page box b under
// the given (normalized) rotation.
func VisualSize(b Box, rotate int) (w, h float64) {
	if rotate == 90 || rotate == 270 {
		return b.Height(), b.Width()
	}
	return b.Width(), b.Height()
}

// toUser maps a visual-space point onto user space for page box b.
// Rotation is clockwise, as /Rotate is defined.
func toUser(b Box, rotate int, vx, vy float64) (x, y float64) {
	switch rotate {
	case 90:
		return b.LLX + vy, b.LLY + vx
	case 180:
		return b.URX - vx, b.LLY + vy
	case 270:
		return b.URX - vy, b.URY - vx
	default:
		return b.LLX + vx, b.URY - vy
	}
}

// MapRect converts visual rectangle r onto page box b.
func MapRect(b Box, rotate int, r Rect) Box {
	x0, y0 := toUser(b, rotate, r.Left, r.Top)
	x1, y1 := toUser(b, rotate, r.Right, r.Bottom)
	return Box{
		LLX: min(x0, x1),
		LLY: min(y0, y1),
		URX: max(x0, x1),
		URY: max(y0, y1),
	}
}

// ForPage returns the four quadrant crop boxes of a page in Z order as the
// page is displayed. box is the page's visible box (CropBox, or MediaBox
// when no CropBox is set) and rotate its /Rotate value.
func ForPage(box Box, rotate int) ([4]Box, error) {
	var out [4]Box
	if box.Width() <= 0 || box.Height() <= 0 {
		return out, fmt.Errorf("degenerate page box %s", box)
	}
	rot, err := NormalizeRotation(rotate)
	if err != nil {
		return out, err
	}
	w, h := VisualSize(box, rot)
	for i, r := range Quadrants(w, h) {
		out[i] = MapRect(box, rot, r)
	}
	return out, nil
}
