package scanicon

import (
	"image"

	"github.com/scanicon/scanicon/layout"
	"github.com/scanicon/scanicon/utils"
)

// Corner indexes for Geometry.Brackets.
const (
	TopLeft = iota
	TopRight
	BottomLeft
	BottomRight
)

// Point is a sub-pixel canvas coordinate.
type Point struct {
	X, Y float32
}

// Bracket is one L-shaped viewfinder corner: a horizontal and a vertical arm.
type Bracket struct {
	Horizontal image.Rectangle
	Vertical   image.Rectangle
}

// Geometry is a Layout resolved to absolute pixels for one canvas size.
// Size is the side of the canvas the geometry was resolved for.
type Geometry struct {
	Size     int
	Bars     []image.Rectangle
	Frame    image.Rectangle
	Brackets [4]Bracket
	ScanLine image.Rectangle
	Box      image.Rectangle
	Outline  int
	Fold     [3]Point
	Check    image.Rectangle
	Mark     [3]Point
	Stroke   int
}

// Resolve converts the layout proportions to pixels for a size×size canvas.
// The caller is expected to have validated both the size and the layout.
func (l Layout) Resolve(size int) Geometry {
	return l.ResolveScaled(size, 1)
}

// ResolveScaled resolves the layout for a size×size icon drawn on a canvas
// scale times larger. Pixel floors are multiplied by scale, so they still
// hold once the canvas is downsampled to size.
func (l Layout) ResolveScaled(size, scale int) Geometry {
	n := size * scale
	canvas := layout.Canvas(n)
	g := Geometry{Size: n}

	for i, pos := range l.Barcode.Positions {
		bar := layout.Rect(pos, l.BarTop, pos+l.Barcode.Widths[i], l.BarBottom)
		g.Bars = append(g.Bars, bar.Cover(canvas, scale))
	}

	frame := layout.Rect(l.FrameMargin, l.FrameTop, 1-l.FrameMargin, l.FrameBottom)
	g.Frame = frame.In(canvas)

	// Only the top-left corner is laid out; the others are its reflections
	// across the frame midlines.
	tl := bracket{
		horizontal: layout.Rect(frame.Min.X, frame.Min.Y,
			frame.Min.X+l.BracketLength, frame.Min.Y+l.BracketThickness),
		vertical: layout.Rect(frame.Min.X, frame.Min.Y,
			frame.Min.X+l.BracketThickness, frame.Min.Y+l.BracketLength),
	}
	g.Brackets[TopLeft] = tl.resolve(canvas, scale)
	g.Brackets[TopRight] = tl.mirrorX(frame).resolve(canvas, scale)
	g.Brackets[BottomLeft] = tl.mirrorY(frame).resolve(canvas, scale)
	g.Brackets[BottomRight] = tl.mirrorX(frame).mirrorY(frame).resolve(canvas, scale)

	span := layout.Rect(frame.Min.X, 0, frame.Max.X, 1)
	g.ScanLine = span.Band(l.ScanLineY, l.ScanLineThickness).Cover(canvas, scale)

	glyph := layout.Extent(n, l.GlyphSize, scale)

	g.Box = layout.Square(l.BoxOrigin.In(canvas), glyph)
	// The outline never eats more than the whole box.
	g.Outline = utils.Min(layout.Extent(n, l.BoxOutline, l.MinBoxOutline*scale), glyph/2)
	for i, p := range l.Fold {
		g.Fold[i] = point(p, g.Box)
	}

	g.Check = layout.Square(l.CheckOrigin.In(canvas), glyph)
	for i, p := range l.CheckPath {
		g.Mark[i] = point(p, g.Check)
	}
	g.Stroke = layout.Extent(n, l.CheckStroke, l.MinCheckStroke*scale)

	return g
}

// bracket is a corner still expressed in canvas fractions.
type bracket struct {
	horizontal, vertical layout.Region
}

func (b bracket) mirrorX(frame layout.Region) bracket {
	return bracket{b.horizontal.MirrorX(frame), b.vertical.MirrorX(frame)}
}

func (b bracket) mirrorY(frame layout.Region) bracket {
	return bracket{b.horizontal.MirrorY(frame), b.vertical.MirrorY(frame)}
}

func (b bracket) resolve(canvas image.Rectangle, minPx int) Bracket {
	return Bracket{
		Horizontal: b.horizontal.Cover(canvas, minPx),
		Vertical:   b.vertical.Cover(canvas, minPx),
	}
}

func point(f layout.Frac, box image.Rectangle) Point {
	x, y := f.At(box)
	return Point{X: x, Y: y}
}
