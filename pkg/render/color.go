// pkg/render/color.go
package render

import "image/color"

// WheelColors holds all the color definitions needed to render the wheel.
type WheelColors struct {
	Sectors     []color.RGBA
	Stroke      color.RGBA
	Pointer     color.RGBA
	TextDark    color.RGBA
	TextLight   color.RGBA
	StrokeWidth float32
	PointerSize float64
}

// DarkenColor reduces the brightness of a color.
func DarkenColor(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * 0.5),
		G: uint8(float64(c.G) * 0.5),
		B: uint8(float64(c.B) * 0.5),
		A: c.A,
	}
}

// WithAlpha умножает все каналы на alpha (цвета в ebiten premultiplied).
func WithAlpha(c color.RGBA, alpha float64) color.RGBA {
	if alpha < 0 {
		alpha = 0
	} else if alpha > 1 {
		alpha = 1
	}
	return color.RGBA{
		R: uint8(float64(c.R) * alpha),
		G: uint8(float64(c.G) * alpha),
		B: uint8(float64(c.B) * alpha),
		A: uint8(float64(c.A) * alpha),
	}
}
