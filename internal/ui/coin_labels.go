// internal/ui/coin_labels.go
package ui

import (
	"strings"

	"fortune-wheel/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
)

// CoinLabels отображает баланс и всплывающую дельту.
type CoinLabels struct {
	BalanceX, BalanceY int
	DeltaX, DeltaY     int
	fontFace           font.Face
}

func NewCoinLabels(fontFace font.Face) *CoinLabels {
	return &CoinLabels{
		BalanceX: config.BalanceTextX,
		BalanceY: config.BalanceTextY,
		DeltaX:   config.DeltaTextX,
		DeltaY:   config.DeltaTextY,
		fontFace: fontFace,
	}
}

// Draw рисует баланс всегда, а дельту - только если она видима.
func (l *CoinLabels) Draw(screen *ebiten.Image, balance, delta string, deltaVisible bool) {
	text.Draw(screen, "Coins: "+balance, l.fontFace, l.BalanceX, l.BalanceY, config.TextLightColor)
	if !deltaVisible || delta == "" {
		return
	}
	c := config.DeltaPlusColor
	if strings.HasPrefix(delta, "-") {
		c = config.DeltaMinusColor
	}
	text.Draw(screen, delta, l.fontFace, l.DeltaX, l.DeltaY, c)
}
