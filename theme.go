package scanicon

import "image/color"

// Theme holds the color of every icon layer.
type Theme struct {
	GradientTop    color.NRGBA
	GradientBottom color.NRGBA
	Bars           color.NRGBA
	Brackets       color.NRGBA
	ScanLine       color.NRGBA
	BoxFill        color.NRGBA
	BoxOutline     color.NRGBA
	Fold           color.NRGBA
	CheckDisc      color.NRGBA
	CheckMark      color.NRGBA
}

// DefaultTheme returns the teal scanner palette used by the store icons.
func DefaultTheme() Theme {
	return Theme{
		GradientTop:    color.NRGBA{R: 0, G: 131, B: 143, A: 255}, // #00838F
		GradientBottom: color.NRGBA{R: 0, G: 77, B: 84, A: 255},   // #004D54
		Bars:           color.NRGBA{R: 255, G: 255, B: 255, A: 240},
		Brackets:       color.NRGBA{R: 0, G: 229, B: 255, A: 255},
		ScanLine:       color.NRGBA{R: 255, G: 82, B: 82, A: 255},
		BoxFill:        color.NRGBA{R: 255, G: 255, B: 255, A: 230},
		BoxOutline:     color.NRGBA{R: 0, G: 131, B: 143, A: 255},
		Fold:           color.NRGBA{R: 0, G: 131, B: 143, A: 200},
		CheckDisc:      color.NRGBA{R: 76, G: 175, B: 80, A: 255},
		CheckMark:      color.NRGBA{R: 255, G: 255, B: 255, A: 255},
	}
}
