package scanicon

import (
	"fmt"
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
)

// similarRects returns the rectangles which must keep their proportions
// across sizes, keyed by a readable name.
func similarRects(g Geometry) map[string]image.Rectangle {
	rects := map[string]image.Rectangle{
		"frame":     g.Frame,
		"scan line": g.ScanLine,
	}
	for i, b := range g.Brackets {
		rects[fmt.Sprintf("bracket %d horizontal", i)] = b.Horizontal
		rects[fmt.Sprintf("bracket %d vertical", i)] = b.Vertical
	}
	for i, bar := range g.Bars {
		rects[fmt.Sprintf("bar %d", i)] = bar
	}
	return rects
}

func TestGeometry_SimilarAcrossSizes(t *testing.T) {
	l := DefaultLayout()

	for _, small := range DefaultSizes {
		for _, large := range DefaultSizes {
			if large <= small {
				continue
			}
			ratio := float64(large) / float64(small)
			sg, lg := similarRects(l.Resolve(small)), similarRects(l.Resolve(large))

			for name, s := range sg {
				b := lg[name]
				// Compare in pixels of the smaller icon, where truncation allows one pixel.
				msg := fmt.Sprintf("%s at %d and %d px", name, small, large)
				assert.InDelta(t, float64(s.Min.X), float64(b.Min.X)/ratio, 1, msg)
				assert.InDelta(t, float64(s.Min.Y), float64(b.Min.Y)/ratio, 1, msg)
				assert.InDelta(t, float64(s.Max.X), float64(b.Max.X)/ratio, 1, msg)
				assert.InDelta(t, float64(s.Max.Y), float64(b.Max.Y)/ratio, 1, msg)
			}
		}
	}
}

func TestGeometry_BracketsAreMirrored(t *testing.T) {
	for _, size := range DefaultSizes {
		g := DefaultLayout().Resolve(size)
		f := g.Frame
		tl, tr := g.Brackets[TopLeft], g.Brackets[TopRight]
		bl, br := g.Brackets[BottomLeft], g.Brackets[BottomRight]

		t.Run(fmt.Sprintf("%dpx", size), func(t *testing.T) {
			assert := assert.New(t)

			// Every corner is anchored on its own corner of the frame.
			assert.Equal(f.Min, tl.Horizontal.Min)
			assert.Equal(f.Min, tl.Vertical.Min)
			assert.Equal(image.Pt(f.Max.X, f.Min.Y), image.Pt(tr.Horizontal.Max.X, tr.Horizontal.Min.Y))
			assert.Equal(image.Pt(f.Min.X, f.Max.Y), image.Pt(bl.Vertical.Min.X, bl.Vertical.Max.Y))
			assert.Equal(f.Max, br.Horizontal.Max)
			assert.Equal(f.Max, br.Vertical.Max)

			for _, b := range []Bracket{tr, bl, br} {
				assert.InDelta(tl.Horizontal.Dx(), b.Horizontal.Dx(), 1)
				assert.InDelta(tl.Horizontal.Dy(), b.Horizontal.Dy(), 1)
				assert.InDelta(tl.Vertical.Dx(), b.Vertical.Dx(), 1)
				assert.InDelta(tl.Vertical.Dy(), b.Vertical.Dy(), 1)
				assert.True(b.Horizontal.In(f))
				assert.True(b.Vertical.In(f))
			}
		})
	}
}

func TestGeometry_ChangingBracketParamsKeepsSymmetry(t *testing.T) {
	l := DefaultLayout()
	l.BracketLength = 0.2
	l.BracketThickness = 0.05

	g := l.Resolve(200)
	assert.Equal(t, image.Rect(24, 24, 64, 34), g.Brackets[TopLeft].Horizontal)
	assert.Equal(t, image.Rect(136, 24, 176, 34), g.Brackets[TopRight].Horizontal)
	assert.Equal(t, image.Rect(24, 104, 34, 144), g.Brackets[BottomLeft].Vertical)
	assert.Equal(t, image.Rect(166, 104, 176, 144), g.Brackets[BottomRight].Vertical)
}

func TestGeometry_ThicknessFloors(t *testing.T) {
	assert := assert.New(t)

	g := DefaultLayout().Resolve(48)
	assert.Equal(2, g.Stroke)
	assert.Equal(2, g.Outline)
	assert.Equal(1, g.ScanLine.Dy())
	for _, bar := range g.Bars {
		assert.GreaterOrEqual(bar.Dx(), 1)
	}

	g = DefaultLayout().Resolve(512)
	assert.Equal(10, g.Stroke)
	assert.Equal(2, g.Outline)
}

func TestGeometry_ScaledFloorsHoldAfterDownsampling(t *testing.T) {
	assert := assert.New(t)
	l := DefaultLayout()

	g := l.ResolveScaled(48, 4)
	assert.Equal(192, g.Size)
	assert.Equal(8, g.Stroke)
	assert.Equal(8, g.Outline)
	assert.Equal(image.Rect(23, 79, 168, 83), g.ScanLine)
	for _, bar := range g.Bars {
		assert.GreaterOrEqual(bar.Dx(), 4)
	}
	for _, b := range g.Brackets {
		assert.GreaterOrEqual(b.Horizontal.Dy(), 4)
		assert.GreaterOrEqual(b.Vertical.Dx(), 4)
	}

	// Above the floors a scaled geometry is the plain one at the larger size.
	big, plain := l.ResolveScaled(128, 4), l.Resolve(512)
	assert.Equal(plain.Bars, big.Bars)
	assert.Equal(plain.Brackets, big.Brackets)
	assert.Equal(plain.ScanLine, big.ScanLine)
	assert.Equal(plain.Stroke, big.Stroke)
	// The 2 px outline floor becomes 8 px on the 4x canvas.
	assert.Equal(2, plain.Outline)
	assert.Equal(8, big.Outline)

	assert.Equal(l.Resolve(96), l.ResolveScaled(96, 1))
}

func TestGeometry_OutlineIsClampedToTheBox(t *testing.T) {
	l := DefaultLayout()
	l.MinBoxOutline = 10

	g := l.Resolve(48)
	assert.Equal(t, 4, g.Box.Dx())
	assert.Equal(t, 2, g.Outline)
}

func TestGeometry_GlyphPointsFollowTheirBox(t *testing.T) {
	assert := assert.New(t)

	g := DefaultLayout().Resolve(512)
	assert.Equal(image.Rect(179, 399, 230, 450), g.Box)
	assert.Equal(image.Rect(281, 399, 332, 450), g.Check)

	// The fold apex sits on the box's vertical center line.
	assert.InDelta(float64(g.Box.Min.X)+float64(g.Box.Dx())/2, float64(g.Fold[1].X), 1e-3)
	for _, p := range g.Mark {
		assert.True(image.Pt(int(p.X), int(p.Y)).In(g.Check))
	}
}
