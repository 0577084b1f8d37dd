// Package imop implements the Porter-Duff composition operations
// used for mixing a painted layer with its backdrop.
// Porter and Duff presented in their paper 12 different composition operation,
// but the image/draw core package implements only the source-over-destination and source.
// This package is aimed to overcome the missing composite operations.
//
// Every overlay of an icon is painted onto its own transparent Bitmap and then
// composited onto the canvas with the active operator.
package imop

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/scanicon/scanicon/utils"
)

const (
	Copy    = "copy"
	SrcOver = "src_over"
	DstOver = "dst_over"
	SrcIn   = "src_in"
	DstIn   = "dst_in"
	SrcOut  = "src_out"
	DstOut  = "dst_out"
	SrcAtop = "src_atop"
	DstAtop = "dst_atop"
	Xor     = "xor"
)

// Bitmap is a transparent layer which remembers the area painted on it.
// Img holds the ink of every painted pixel and Mask how much of the pixel
// the painted shapes cover.
type Bitmap struct {
	Img   *image.NRGBA
	Mask  *image.Alpha
	Dirty image.Rectangle
}

// NewBitmap returns a fully transparent bitmap.
func NewBitmap(rect image.Rectangle) *Bitmap {
	return &Bitmap{
		Img:  image.NewNRGBA(rect),
		Mask: image.NewAlpha(rect),
	}
}

// Mark extends the dirty area with rect, clipped to the bitmap bounds.
func (b *Bitmap) Mark(rect image.Rectangle) {
	rect = rect.Intersect(b.Img.Bounds())
	if rect.Empty() {
		return
	}
	b.Dirty = b.Dirty.Union(rect)
}

// Fill paints rect with col, replacing whatever the layer held there.
func (b *Bitmap) Fill(rect image.Rectangle, col color.NRGBA) {
	rect = rect.Intersect(b.Img.Bounds())
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		for x := rect.Min.X; x < rect.Max.X; x++ {
			b.Img.SetNRGBA(x, y, col)
			b.Mask.SetAlpha(x, y, color.Alpha{A: 0xff})
		}
	}
	b.Mark(rect)
}

// Paint lays col over the layer inside rect, weighted by the coverage of
// cov. Fully covered pixels take col unchanged.
func (b *Bitmap) Paint(cov *image.Alpha, rect image.Rectangle, col color.NRGBA) {
	rect = rect.Intersect(b.Img.Bounds()).Intersect(cov.Bounds())
	ink := [4]float64{float64(col.R), float64(col.G), float64(col.B), float64(col.A)}

	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		for x := rect.Min.X; x < rect.Max.X; x++ {
			c := float64(cov.AlphaAt(x, y).A) / 255
			if c == 0 {
				continue
			}
			m := float64(b.Mask.AlphaAt(x, y).A) / 255
			old := b.Img.NRGBAAt(x, y)
			prev := [4]float64{float64(old.R), float64(old.G), float64(old.B), float64(old.A)}

			cover := c + (1-c)*m
			var out [4]uint8
			for i := range out {
				v := (c*ink[i] + (1-c)*m*prev[i]) / cover
				out[i] = uint8(utils.Clamp(math.Round(v), 0, 255))
			}
			b.Img.SetNRGBA(x, y, color.NRGBA{R: out[0], G: out[1], B: out[2], A: out[3]})
			b.Mask.SetAlpha(x, y, color.Alpha{A: toByte(cover)})
		}
	}
	b.Mark(rect)
}

// Reset clears the dirty area, making the bitmap fully transparent again.
func (b *Bitmap) Reset() {
	for y := b.Dirty.Min.Y; y < b.Dirty.Max.Y; y++ {
		i := b.Img.PixOffset(b.Dirty.Min.X, y)
		row := b.Img.Pix[i : i+4*b.Dirty.Dx()]
		for j := range row {
			row[j] = 0
		}
		i = b.Mask.PixOffset(b.Dirty.Min.X, y)
		mask := b.Mask.Pix[i : i+b.Dirty.Dx()]
		for j := range mask {
			mask[j] = 0
		}
	}
	b.Dirty = image.Rectangle{}
}

// Composite holds the currently active composition operator.
type Composite struct {
	current string
	ops     []string
}

// InitOp returns a Composite with source-over as the active operator.
func InitOp() *Composite {
	return &Composite{
		current: SrcOver,
		ops: []string{
			Copy,
			SrcOver,
			DstOver,
			SrcIn,
			DstIn,
			SrcOut,
			DstOut,
			SrcAtop,
			DstAtop,
			Xor,
		},
	}
}

// Set activates one of the supported composition operators.
func (op *Composite) Set(cop string) error {
	if !utils.Contains(op.ops, cop) {
		return fmt.Errorf("unsupported composite operation: %q", cop)
	}
	op.current = cop
	return nil
}

// Get returns the active composition operator.
func (op *Composite) Get() string {
	return op.current
}

// Ops lists the supported composition operators.
func (op *Composite) Ops() []string {
	return append([]string(nil), op.ops...)
}

// DrawBitmap composites the painted area of the layer onto dst.
// Pixels the layer does not cover are left untouched, whatever the operator.
func (op *Composite) DrawBitmap(dst *image.NRGBA, layer *Bitmap) {
	op.DrawMask(dst, layer.Img, layer.Mask, layer.Dirty)
}

// Draw composites src onto dst in place, restricted to rect.
// Operators which clear the backdrop (copy, src_in, ...) only do so inside rect.
func (op *Composite) Draw(dst, src *image.NRGBA, rect image.Rectangle) {
	op.DrawMask(dst, src, nil, rect)
}

// DrawMask is Draw with the result blended back into dst by the coverage of
// mask. A nil mask covers the whole rect.
func (op *Composite) DrawMask(dst, src *image.NRGBA, mask *image.Alpha, rect image.Rectangle) {
	rect = rect.Intersect(dst.Bounds()).Intersect(src.Bounds())
	if mask != nil {
		rect = rect.Intersect(mask.Bounds())
	}

	var rn, gn, bn, an float64

	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		for x := rect.Min.X; x < rect.Max.X; x++ {
			cov := 1.0
			if mask != nil {
				cov = float64(mask.AlphaAt(x, y).A) / 255
				if cov == 0 {
					continue
				}
			}
			s := src.NRGBAAt(x, y)
			b := dst.NRGBAAt(x, y)

			rsn := float64(s.R) / 255
			gsn := float64(s.G) / 255
			bsn := float64(s.B) / 255
			asn := float64(s.A) / 255

			rbn := float64(b.R) / 255
			gbn := float64(b.G) / 255
			bbn := float64(b.B) / 255
			abn := float64(b.A) / 255

			// applying the alpha composition formula (premultiplied results)
			switch op.current {
			case Copy:
				rn = asn * rsn
				gn = asn * gsn
				bn = asn * bsn
				an = asn
			case SrcOver:
				rn = asn*rsn + abn*rbn*(1-asn)
				gn = asn*gsn + abn*gbn*(1-asn)
				bn = asn*bsn + abn*bbn*(1-asn)
				an = asn + abn*(1-asn)
			case DstOver:
				rn = asn*rsn*(1-abn) + abn*rbn
				gn = asn*gsn*(1-abn) + abn*gbn
				bn = asn*bsn*(1-abn) + abn*bbn
				an = asn*(1-abn) + abn
			case SrcIn:
				rn = asn * rsn * abn
				gn = asn * gsn * abn
				bn = asn * bsn * abn
				an = asn * abn
			case DstIn:
				rn = abn * rbn * asn
				gn = abn * gbn * asn
				bn = abn * bbn * asn
				an = abn * asn
			case SrcOut:
				rn = asn * rsn * (1 - abn)
				gn = asn * gsn * (1 - abn)
				bn = asn * bsn * (1 - abn)
				an = asn * (1 - abn)
			case DstOut:
				rn = abn * rbn * (1 - asn)
				gn = abn * gbn * (1 - asn)
				bn = abn * bbn * (1 - asn)
				an = abn * (1 - asn)
			case SrcAtop:
				rn = asn*rsn*abn + (1-asn)*abn*rbn
				gn = asn*gsn*abn + (1-asn)*abn*gbn
				bn = asn*bsn*abn + (1-asn)*abn*bbn
				an = asn*abn + abn*(1-asn)
			case DstAtop:
				rn = asn*rsn*(1-abn) + abn*rbn*asn
				gn = asn*gsn*(1-abn) + abn*gbn*asn
				bn = asn*bsn*(1-abn) + abn*bbn*asn
				an = asn*(1-abn) + abn*asn
			case Xor:
				rn = asn*rsn*(1-abn) + abn*rbn*(1-asn)
				gn = asn*gsn*(1-abn) + abn*gbn*(1-asn)
				bn = asn*bsn*(1-abn) + abn*bbn*(1-asn)
				an = asn*(1-abn) + abn*(1-asn)
			}

			if cov < 1 {
				rn = cov*rn + (1-cov)*abn*rbn
				gn = cov*gn + (1-cov)*abn*gbn
				bn = cov*bn + (1-cov)*abn*bbn
				an = cov*an + (1-cov)*abn
			}
			dst.SetNRGBA(x, y, unpremultiply(rn, gn, bn, an))
		}
	}
}

// unpremultiply converts normalized premultiplied components to a straight NRGBA color.
func unpremultiply(r, g, b, a float64) color.NRGBA {
	if a <= 0 {
		return color.NRGBA{}
	}
	return color.NRGBA{
		R: toByte(r / a),
		G: toByte(g / a),
		B: toByte(b / a),
		A: toByte(a),
	}
}

func toByte(v float64) uint8 {
	return uint8(utils.Clamp(math.Round(v*255), 0, 255))
}
