// internal/ui/spin_button_rl.go
package ui

import (
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// SpinButtonRL - версия кнопки вращения для Raylib
type SpinButtonRL struct {
	Rect       rl.Rectangle
	Text       string
	TextColor  rl.Color
	BgColor    rl.Color
	HoverColor rl.Color
	Font       rl.Font
	FontSize   float32
}

// NewSpinButtonRL создает кнопку, центрированную по X.
func NewSpinButtonRL(centerX, y, width, height float32, font rl.Font, bg, hover color.RGBA) *SpinButtonRL {
	return &SpinButtonRL{
		Rect:       rl.NewRectangle(centerX-width/2, y-height/2, width, height),
		Text:       "SPIN",
		TextColor:  rl.White,
		BgColor:    toRL(bg),
		HoverColor: toRL(hover),
		Font:       font,
		FontSize:   22,
	}
}

// IsClicked проверяет, был ли сделан клик по кнопке.
func (b *SpinButtonRL) IsClicked(mousePos rl.Vector2) bool {
	return rl.CheckCollisionPointRec(mousePos, b.Rect) && rl.IsMouseButtonPressed(rl.MouseLeftButton)
}

// Draw отрисовывает кнопку; выключенная рисуется полупрозрачной.
func (b *SpinButtonRL) Draw(mousePos rl.Vector2, enabled bool, alpha float32) {
	bgColor := b.BgColor
	if enabled && rl.CheckCollisionPointRec(mousePos, b.Rect) {
		bgColor = b.HoverColor
	}

	rl.DrawRectangleRec(b.Rect, rl.Fade(bgColor, alpha))
	rl.DrawRectangleLinesEx(b.Rect, 2, rl.Fade(rl.White, alpha))

	textSize := rl.MeasureTextEx(b.Font, b.Text, b.FontSize, 1)
	textX := b.Rect.X + (b.Rect.Width-textSize.X)/2
	textY := b.Rect.Y + (b.Rect.Height-textSize.Y)/2
	rl.DrawTextEx(b.Font, b.Text, rl.NewVector2(textX, textY), b.FontSize, 1, rl.Fade(b.TextColor, alpha))
}

// toRL converts color.RGBA to rl.Color
func toRL(c color.RGBA) rl.Color {
	return rl.NewColor(c.R, c.G, c.B, c.A)
}
