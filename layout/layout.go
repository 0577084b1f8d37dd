// Package layout resolves geometry expressed as fractions of an enclosing box
// into absolute pixel coordinates.
//
// The same helpers serve canvas-relative layout (the box is the whole canvas)
// and glyph-relative layout (the box is a glyph's own bounding box), so nested
// proportions scale with their parent. Every conversion truncates toward zero,
// and each coordinate is truncated exactly once: derived regions such as
// mirrored brackets are computed in fraction space before being resolved.
package layout

import "image"

// Frac is a point given as fractions of an enclosing box, usually in [0,1].
type Frac struct {
	X, Y float64
}

// Region is a rectangle given as fractions of an enclosing box.
type Region struct {
	Min, Max Frac
}

// Pt returns the Frac (x, y).
func Pt(x, y float64) Frac { return Frac{X: x, Y: y} }

// Rect returns the Region spanning (x0, y0) to (x1, y1).
func Rect(x0, y0, x1, y1 float64) Region {
	return Region{Min: Frac{X: x0, Y: y0}, Max: Frac{X: x1, Y: y1}}
}

// epsilon absorbs representation error so that fractions derived by
// arithmetic, like 0.84-0.12, land on the same pixel as the literal 0.72.
const epsilon = 1e-9

// Scale converts the fraction f of length n into whole pixels.
func Scale(n int, f float64) int {
	return int(float64(n)*f + epsilon)
}

// Extent is Scale floored at minPx, used for thicknesses that must stay visible.
func Extent(n int, f float64, minPx int) int {
	if px := Scale(n, f); px > minPx {
		return px
	}
	return minPx
}

// Canvas returns the box of a square canvas with the given side.
func Canvas(size int) image.Rectangle {
	return image.Rect(0, 0, size, size)
}

// In resolves p against box, truncating to whole pixels.
func (p Frac) In(box image.Rectangle) image.Point {
	return image.Point{
		X: box.Min.X + Scale(box.Dx(), p.X),
		Y: box.Min.Y + Scale(box.Dy(), p.Y),
	}
}

// At resolves p against box without rounding, for sub-pixel rasterization.
func (p Frac) At(box image.Rectangle) (float32, float32) {
	return float32(float64(box.Min.X) + float64(box.Dx())*p.X),
		float32(float64(box.Min.Y) + float64(box.Dy())*p.Y)
}

// In resolves r against box, truncating to whole pixels.
func (r Region) In(box image.Rectangle) image.Rectangle {
	return Normalize(image.Rectangle{Min: r.Min.In(box), Max: r.Max.In(box)})
}

// Square returns the size×size square whose top-left corner is origin.
func Square(origin image.Point, size int) image.Rectangle {
	return image.Rect(origin.X, origin.Y, origin.X+size, origin.Y+size)
}

// Normalize ensures Min is <= Max on both axes.
func Normalize(rect image.Rectangle) image.Rectangle {
	if rect.Min.X > rect.Max.X {
		rect.Min.X, rect.Max.X = rect.Max.X, rect.Min.X
	}
	if rect.Min.Y > rect.Max.Y {
		rect.Min.Y, rect.Max.Y = rect.Max.Y, rect.Min.Y
	}
	return rect
}

// Cover resolves r against box like In, then grows each axis to at least
// minPx so hairline regions stay visible on small canvases.
func (r Region) Cover(box image.Rectangle, minPx int) image.Rectangle {
	rect := r.In(box)
	if rect.Dx() < minPx {
		rect.Max.X = rect.Min.X + minPx
	}
	if rect.Dy() < minPx {
		rect.Max.Y = rect.Min.Y + minPx
	}
	return rect
}

// MirrorX reflects r across the vertical midline of frame.
func (r Region) MirrorX(frame Region) Region {
	sum := frame.Min.X + frame.Max.X
	return Rect(sum-r.Max.X, r.Min.Y, sum-r.Min.X, r.Max.Y)
}

// MirrorY reflects r across the horizontal midline of frame.
func (r Region) MirrorY(frame Region) Region {
	sum := frame.Min.Y + frame.Max.Y
	return Rect(r.Min.X, sum-r.Max.Y, r.Max.X, sum-r.Min.Y)
}

// Band returns the horizontal strip of r with the given thickness centered on y.
func (r Region) Band(y, thickness float64) Region {
	return Rect(r.Min.X, y-thickness/2, r.Max.X, y+thickness/2)
}

// Inset shrinks rect by paddingPx on all sides.
func Inset(rect image.Rectangle, paddingPx int) image.Rectangle {
	if paddingPx <= 0 {
		return rect
	}
	out := image.Rect(rect.Min.X+paddingPx, rect.Min.Y+paddingPx, rect.Max.X-paddingPx, rect.Max.Y-paddingPx)
	if out.Dx() <= 0 || out.Dy() <= 0 {
		return image.Rectangle{Min: out.Min, Max: out.Min}
	}
	return out
}
