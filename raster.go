package scanicon

import (
	"image"
	"image/color"
	"math"

	"github.com/scanicon/scanicon/imop"
	"github.com/srwiley/rasterx"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

// miterLimit is unused by round joins but required by the stroker.
const miterLimit = 4

// painter rasterizes anti-aliased shapes onto a layer. Every shape is first
// rendered as a coverage mask, which the layer then takes with its ink.
type painter struct {
	layer  *imop.Bitmap
	mask   *image.Alpha
	z      *vector.Rasterizer
	filler *rasterx.Filler
	dasher *rasterx.Dasher
}

func newPainter(layer *imop.Bitmap) *painter {
	b := layer.Img.Bounds()
	mask := image.NewAlpha(b)
	scanner := rasterx.NewScannerGV(b.Dx(), b.Dy(), mask, b)

	return &painter{
		layer:  layer,
		mask:   mask,
		z:      vector.NewRasterizer(b.Dx(), b.Dy()),
		filler: rasterx.NewFiller(b.Dx(), b.Dy(), scanner),
		dasher: rasterx.NewDasher(b.Dx(), b.Dy(), scanner),
	}
}

// polygon fills the closed polygon through pts.
func (p *painter) polygon(col color.NRGBA, pts ...Point) {
	if len(pts) < 3 {
		return
	}
	b := p.mask.Bounds()
	p.z.Reset(b.Dx(), b.Dy())
	p.z.MoveTo(pts[0].X, pts[0].Y)
	for _, pt := range pts[1:] {
		p.z.LineTo(pt.X, pt.Y)
	}
	p.z.ClosePath()
	p.z.Draw(p.mask, b, image.Opaque, image.Point{})
	p.paint(col, bounds(1, pts...))
}

// ellipse fills the ellipse inscribed in rect.
func (p *painter) ellipse(col color.NRGBA, rect image.Rectangle) {
	if rect.Empty() {
		return
	}
	rx := float64(rect.Dx()) / 2
	ry := float64(rect.Dy()) / 2

	p.filler.Clear()
	rasterx.AddEllipse(float64(rect.Min.X)+rx, float64(rect.Min.Y)+ry, rx, ry, 0, p.filler)
	p.filler.SetColor(color.Opaque)
	p.filler.Draw()
	p.filler.Clear()
	p.paint(col, bounds(1,
		Point{X: float32(rect.Min.X), Y: float32(rect.Min.Y)},
		Point{X: float32(rect.Max.X), Y: float32(rect.Max.Y)}))
}

// polyline strokes the open path through pts with the given width, using
// butt caps and round joins.
func (p *painter) polyline(col color.NRGBA, width float64, pts ...Point) {
	if len(pts) < 2 || width <= 0 {
		return
	}

	p.dasher.Clear()
	p.dasher.SetStroke(fixed.Int26_6(width*64), miterLimit*64,
		rasterx.ButtCap, rasterx.ButtCap, rasterx.RoundGap, rasterx.Round, nil, 0)
	p.dasher.Start(toFixed(pts[0]))
	for _, pt := range pts[1:] {
		p.dasher.Line(toFixed(pt))
	}
	p.dasher.Stop(false)
	p.dasher.SetColor(color.Opaque)
	p.dasher.Draw()
	p.dasher.Clear()
	p.paint(col, bounds(width/2+1, pts...))
}

// paint hands the coverage inside rect to the layer and clears it again.
func (p *painter) paint(col color.NRGBA, rect image.Rectangle) {
	rect = rect.Intersect(p.mask.Bounds())
	p.layer.Paint(p.mask, rect, col)

	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		i := p.mask.PixOffset(rect.Min.X, y)
		row := p.mask.Pix[i : i+rect.Dx()]
		for j := range row {
			row[j] = 0
		}
	}
}

func toFixed(pt Point) fixed.Point26_6 {
	return rasterx.ToFixedP(float64(pt.X), float64(pt.Y))
}

// bounds returns the smallest pixel rectangle covering pts, grown by pad
// pixels on every side.
func bounds(pad float64, pts ...Point) image.Rectangle {
	minX, minY := float64(pts[0].X), float64(pts[0].Y)
	maxX, maxY := minX, minY
	for _, pt := range pts[1:] {
		minX = math.Min(minX, float64(pt.X))
		minY = math.Min(minY, float64(pt.Y))
		maxX = math.Max(maxX, float64(pt.X))
		maxY = math.Max(maxY, float64(pt.Y))
	}
	return image.Rect(
		int(math.Floor(minX-pad)), int(math.Floor(minY-pad)),
		int(math.Ceil(maxX+pad)), int(math.Ceil(maxY+pad)),
	)
}
