package scanicon

import (
	"errors"
	"fmt"

	"github.com/scanicon/scanicon/layout"
)

var (
	// ErrInvalidSize is returned when the requested edge length is not positive.
	ErrInvalidSize = errors.New("icon size must be positive")
	// ErrInvalidLayout is returned when the layout proportions are inconsistent.
	ErrInvalidLayout = errors.New("invalid icon layout")
)

// BarcodeSpec describes the barcode bars as two parallel lists of fractions
// of the canvas width: the left edge and the width of every bar.
type BarcodeSpec struct {
	Positions []float64
	Widths    []float64
}

// Validate checks that every bar has both a position and a width.
func (b BarcodeSpec) Validate() error {
	if len(b.Positions) != len(b.Widths) {
		return fmt.Errorf("%w: %d bar positions but %d bar widths",
			ErrInvalidLayout, len(b.Positions), len(b.Widths))
	}
	for i := range b.Positions {
		if !isFraction(b.Positions[i]) || !isFraction(b.Widths[i]) {
			return fmt.Errorf("%w: bar %d is outside the canvas", ErrInvalidLayout, i)
		}
	}
	return nil
}

// Layout holds every proportion of the icon. Values are fractions of the
// canvas side, except Fold and CheckPath which are fractions of the box and
// disc bounding boxes respectively.
type Layout struct {
	BarTop    float64
	BarBottom float64
	Barcode   BarcodeSpec

	FrameMargin      float64
	FrameTop         float64
	FrameBottom      float64
	BracketLength    float64
	BracketThickness float64

	ScanLineY         float64
	ScanLineThickness float64

	GlyphSize float64
	BoxOrigin layout.Frac

	// BoxOutline scales the outline with the icon but never below
	// MinBoxOutline pixels, which keeps the store icons at a 2 px outline.
	BoxOutline    float64
	MinBoxOutline int
	Fold          [3]layout.Frac

	CheckOrigin    layout.Frac
	CheckPath      [3]layout.Frac
	CheckStroke    float64
	MinCheckStroke int
}

// DefaultLayout returns the proportions of the store icon.
func DefaultLayout() Layout {
	return Layout{
		BarTop:    0.20,
		BarBottom: 0.65,
		Barcode: BarcodeSpec{
			Positions: []float64{0.15, 0.22, 0.28, 0.35, 0.42, 0.48, 0.55, 0.62, 0.68, 0.75, 0.82},
			Widths:    []float64{0.03, 0.02, 0.04, 0.02, 0.03, 0.02, 0.04, 0.02, 0.03, 0.02, 0.03},
		},

		FrameMargin:      0.12,
		FrameTop:         0.12,
		FrameBottom:      0.72,
		BracketLength:    0.12,
		BracketThickness: 0.02,

		ScanLineY:         0.42,
		ScanLineThickness: 0.015,

		GlyphSize:     0.10,
		BoxOrigin:     layout.Pt(0.35, 0.78),
		BoxOutline:    0.004,
		MinBoxOutline: 2,
		Fold:          [3]layout.Frac{layout.Pt(0.08, 1.0/3), layout.Pt(0.5, 0.08), layout.Pt(0.92, 1.0/3)},

		CheckOrigin:    layout.Pt(0.55, 0.78),
		CheckPath:      [3]layout.Frac{layout.Pt(0.25, 0.5), layout.Pt(0.42, 0.68), layout.Pt(0.75, 0.32)},
		CheckStroke:    0.02,
		MinCheckStroke: 2,
	}
}

// Validate reports inconsistent proportions before anything is drawn.
func (l Layout) Validate() error {
	if err := l.Barcode.Validate(); err != nil {
		return err
	}

	fractions := []struct {
		name  string
		value float64
	}{
		{"bar top", l.BarTop},
		{"bar bottom", l.BarBottom},
		{"frame margin", l.FrameMargin},
		{"frame top", l.FrameTop},
		{"frame bottom", l.FrameBottom},
		{"bracket length", l.BracketLength},
		{"bracket thickness", l.BracketThickness},
		{"scan line", l.ScanLineY},
		{"scan line thickness", l.ScanLineThickness},
		{"glyph size", l.GlyphSize},
		{"box outline", l.BoxOutline},
		{"check stroke", l.CheckStroke},
	}
	for _, f := range fractions {
		if !isFraction(f.value) {
			return fmt.Errorf("%w: %s %v is not a fraction", ErrInvalidLayout, f.name, f.value)
		}
	}

	points := append([]layout.Frac{l.BoxOrigin, l.CheckOrigin}, l.Fold[:]...)
	points = append(points, l.CheckPath[:]...)
	for _, p := range points {
		if !isFraction(p.X) || !isFraction(p.Y) {
			return fmt.Errorf("%w: point %v is outside its box", ErrInvalidLayout, p)
		}
	}

	switch {
	case l.BarTop >= l.BarBottom:
		return fmt.Errorf("%w: bar band is empty", ErrInvalidLayout)
	case l.FrameTop >= l.FrameBottom:
		return fmt.Errorf("%w: frame is empty vertically", ErrInvalidLayout)
	case l.FrameMargin >= 0.5:
		return fmt.Errorf("%w: frame margin %v leaves no frame", ErrInvalidLayout, l.FrameMargin)
	case l.MinCheckStroke < 1:
		return fmt.Errorf("%w: minimum check stroke must be at least one pixel", ErrInvalidLayout)
	case l.MinBoxOutline < 0:
		return fmt.Errorf("%w: minimum box outline is negative", ErrInvalidLayout)
	}
	return nil
}

func isFraction(f float64) bool {
	return f >= 0 && f <= 1
}
