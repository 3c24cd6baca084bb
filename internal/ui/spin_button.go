// internal/ui/spin_button.go
package ui

import (
	"fortune-wheel/internal/config"
	"fortune-wheel/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// SpinButton - кнопка "SPIN". Активность и прозрачность задаёт контроллер.
type SpinButton struct {
	X, Y, Width, Height float32
	Text                string
	fontFace            font.Face
}

// NewSpinButton создает кнопку, центрированную по X.
func NewSpinButton(centerX, y, width, height float32, fontFace font.Face) *SpinButton {
	return &SpinButton{
		X:        centerX - width/2,
		Y:        y - height/2,
		Width:    width,
		Height:   height,
		Text:     "SPIN",
		fontFace: fontFace,
	}
}

// Contains проверяет, попадает ли точка в кнопку.
func (b *SpinButton) Contains(x, y int) bool {
	fx, fy := float32(x), float32(y)
	return fx >= b.X && fx <= b.X+b.Width && fy >= b.Y && fy <= b.Y+b.Height
}

// Draw отрисовывает кнопку с заданной прозрачностью.
func (b *SpinButton) Draw(screen *ebiten.Image, enabled bool, alpha float64) {
	bg := config.ButtonColor
	if enabled {
		mx, my := ebiten.CursorPosition()
		if b.Contains(mx, my) {
			bg = config.ButtonHoverColor
		}
	}
	vector.DrawFilledRect(screen, b.X, b.Y, b.Width, b.Height, render.WithAlpha(bg, alpha), true)
	vector.StrokeRect(screen, b.X, b.Y, b.Width, b.Height, 2, render.WithAlpha(config.StrokeColor, alpha), true)

	bounds := text.BoundString(b.fontFace, b.Text)
	tx := int(b.X+b.Width/2) - bounds.Dx()/2
	ty := int(b.Y+b.Height/2) + bounds.Dy()/2
	text.Draw(screen, b.Text, b.fontFace, tx, ty, render.WithAlpha(config.TextLightColor, alpha))
}
