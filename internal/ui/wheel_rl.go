// internal/ui/wheel_rl.go
package ui

import (
	"image/color"
	"math"
	"strconv"
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// WheelViewRL рисует колесо, указатель и надписи с монетами средствами Raylib.
type WheelViewRL struct {
	Center      rl.Vector2
	Radius      float32
	Wedges      []int // награды клиньев против часовой стрелки от указателя
	Colors      []rl.Color
	PointerSize float32
	Font        rl.Font
}

// NewWheelViewRL создает представление колеса.
func NewWheelViewRL(cx, cy, radius float32, wedges []int, colors []color.RGBA, pointerSize float32, font rl.Font) *WheelViewRL {
	rlColors := make([]rl.Color, len(colors))
	for i, c := range colors {
		rlColors[i] = toRL(c)
	}
	return &WheelViewRL{
		Center:      rl.NewVector2(cx, cy),
		Radius:      radius,
		Wedges:      wedges,
		Colors:      rlColors,
		PointerSize: pointerSize,
		Font:        font,
	}
}

// Draw рисует колесо, повернутое на rotationDeg (против часовой стрелки).
func (w *WheelViewRL) Draw(rotationDeg float64) {
	step := float32(360.0 / float64(len(w.Wedges)))
	for k, reward := range w.Wedges {
		// В Raylib углы растут по часовой стрелке, 0 - вправо
		mid := -90 - float32(k)*step - float32(rotationDeg)
		c := w.Colors[k%len(w.Colors)]
		rl.DrawCircleSector(w.Center, w.Radius, mid-step/2, mid+step/2, 16, c)
		rl.DrawCircleSectorLines(w.Center, w.Radius, mid-step/2, mid+step/2, 16, rl.White)

		rad := float64(mid) * math.Pi / 180
		label := strconv.Itoa(reward)
		size := rl.MeasureTextEx(w.Font, label, 16, 1)
		pos := rl.NewVector2(
			w.Center.X+w.Radius*0.7*float32(math.Cos(rad))-size.X/2,
			w.Center.Y+w.Radius*0.7*float32(math.Sin(rad))-size.Y/2,
		)
		rl.DrawTextEx(w.Font, label, pos, 16, 1, rl.Black)
	}

	p := w.PointerSize
	top := w.Center.Y - w.Radius
	rl.DrawTriangle(
		rl.NewVector2(w.Center.X-p/2, top-p),
		rl.NewVector2(w.Center.X, top+p/2),
		rl.NewVector2(w.Center.X+p/2, top-p),
		rl.Red,
	)
}

// DrawCoins рисует баланс и, если видима, дельту.
func (w *WheelViewRL) DrawCoins(x, y float32, balance, delta string, deltaVisible bool) {
	rl.DrawTextEx(w.Font, "Coins: "+balance, rl.NewVector2(x, y), 24, 1, rl.RayWhite)
	if !deltaVisible || delta == "" {
		return
	}
	c := rl.Green
	if strings.HasPrefix(delta, "-") {
		c = rl.Red
	}
	rl.DrawTextEx(w.Font, delta, rl.NewVector2(x, y+36), 24, 1, c)
}
