package scanicon

import (
	"fmt"
	"image"
	"image/color"

	"github.com/disintegration/imaging"
	"github.com/scanicon/scanicon/imop"
	"github.com/scanicon/scanicon/layout"
	"github.com/scanicon/scanicon/utils"
)

// maxSupersample caps the oversized intermediate canvas.
const maxSupersample = 8

// Renderer composes the scanner icon. The zero value is not usable; start
// from NewRenderer and adjust the fields.
type Renderer struct {
	Theme  Theme
	Layout Layout
	// Supersample renders at Supersample times the requested size and
	// downsamples the result. Values below 2 render the exact pixel grid.
	// Pixel floors such as the minimum check stroke hold in output pixels.
	Supersample int
	// Composite is the imop operator used to lay each overlay onto the canvas.
	// The default, copy, writes the painted ink as is, translucency included.
	Composite string
}

// NewRenderer returns a Renderer with the default theme and layout.
func NewRenderer() *Renderer {
	return &Renderer{
		Theme:       DefaultTheme(),
		Layout:      DefaultLayout(),
		Supersample: 1,
		Composite:   imop.Copy,
	}
}

// layerFn paints one overlay onto a transparent layer.
type layerFn func(*painter, Geometry)

// Render returns a size×size icon. It fails before allocating anything if
// the size is not positive or the configuration is inconsistent.
func (r *Renderer) Render(size int) (*image.NRGBA, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidSize, size)
	}
	if err := r.Layout.Validate(); err != nil {
		return nil, err
	}
	op := imop.InitOp()
	comp := r.Composite
	if comp == "" {
		comp = imop.Copy
	}
	if err := op.Set(comp); err != nil {
		return nil, err
	}

	ss := utils.Clamp(r.Supersample, 1, maxSupersample)
	img := r.compose(r.Layout.ResolveScaled(size, ss), op)
	if ss > 1 {
		img = imaging.Resize(img, size, size, imaging.Lanczos)
	}
	return img, nil
}

// compose paints the background and then every overlay, back to front.
func (r *Renderer) compose(g Geometry, op *imop.Composite) *image.NRGBA {
	canvas := image.NewNRGBA(layout.Canvas(g.Size))
	r.drawGradient(canvas)

	layer := imop.NewBitmap(canvas.Bounds())
	p := newPainter(layer)
	for _, draw := range []layerFn{
		r.drawBarcode,
		r.drawBrackets,
		r.drawScanLine,
		r.drawBox,
		r.drawCheck,
	} {
		draw(p, g)
		op.DrawBitmap(canvas, layer)
		layer.Reset()
	}
	return canvas
}

// drawGradient fills every row with the linear interpolation between the top
// and bottom colors at t = y/size. Channels are truncated.
func (r *Renderer) drawGradient(canvas *image.NRGBA) {
	size := canvas.Bounds().Dy()
	top, bottom := r.Theme.GradientTop, r.Theme.GradientBottom

	for y := 0; y < size; y++ {
		t := float64(y) / float64(size)
		c := color.NRGBA{
			R: lerp(top.R, bottom.R, t),
			G: lerp(top.G, bottom.G, t),
			B: lerp(top.B, bottom.B, t),
			A: lerp(top.A, bottom.A, t),
		}
		i := canvas.PixOffset(0, y)
		row := canvas.Pix[i : i+4*canvas.Bounds().Dx()]
		for x := 0; x < len(row); x += 4 {
			row[x+0] = c.R
			row[x+1] = c.G
			row[x+2] = c.B
			row[x+3] = c.A
		}
	}
}

func (r *Renderer) drawBarcode(p *painter, g Geometry) {
	for _, bar := range g.Bars {
		p.layer.Fill(bar, r.Theme.Bars)
	}
}

func (r *Renderer) drawBrackets(p *painter, g Geometry) {
	for _, b := range g.Brackets {
		p.layer.Fill(b.Horizontal, r.Theme.Brackets)
		p.layer.Fill(b.Vertical, r.Theme.Brackets)
	}
}

func (r *Renderer) drawScanLine(p *painter, g Geometry) {
	p.layer.Fill(g.ScanLine, r.Theme.ScanLine)
}

// drawBox draws the outlined parcel glyph with its folded lid.
func (r *Renderer) drawBox(p *painter, g Geometry) {
	p.layer.Fill(g.Box, r.Theme.BoxOutline)
	p.layer.Fill(layout.Inset(g.Box, g.Outline), r.Theme.BoxFill)
	p.polygon(r.Theme.Fold, g.Fold[:]...)
}

// drawCheck draws the confirmation disc and its checkmark.
func (r *Renderer) drawCheck(p *painter, g Geometry) {
	p.ellipse(r.Theme.CheckDisc, g.Check)
	p.polyline(r.Theme.CheckMark, float64(g.Stroke), g.Mark[:]...)
}

// lerp interpolates between two channel values, truncating the result.
func lerp(a, b uint8, t float64) uint8 {
	v := float64(a) + (float64(b)-float64(a))*t
	return uint8(utils.Clamp(int(v), 0, 255))
}
