// internal/system/coin_display.go
package system

import (
	"math"
	"strconv"

	"fortune-wheel/internal/component"
	"fortune-wheel/internal/utils"
)

// CoinDisplaySystem управляет текстом "+N"/"-N" и анимацией счётчика.
// Новая анимация просто перезаписывает старую.
type CoinDisplaySystem struct {
	display       *component.CoinDisplay
	wallet        *component.Wallet
	hideDelay     float64
	tweenDuration float64
}

func NewCoinDisplaySystem(display *component.CoinDisplay, wallet *component.Wallet, hideDelay, tweenDuration float64) *CoinDisplaySystem {
	display.Balance = wallet.Current
	return &CoinDisplaySystem{
		display:       display,
		wallet:        wallet,
		hideDelay:     hideDelay,
		tweenDuration: tweenDuration,
	}
}

// ShowDelta показывает подписанное число и назначает скрытие через hideDelay.
func (s *CoinDisplaySystem) ShowDelta(delta int, now float64) {
	text := strconv.Itoa(delta)
	if delta >= 0 {
		text = "+" + text
	}
	s.display.Delta.Text = text
	s.display.Delta.Visible = true
	s.ScheduleHide(now)
}

// ScheduleHide переназначает скрытие дельты на now+hideDelay.
func (s *CoinDisplaySystem) ScheduleHide(now float64) {
	s.display.Delta.HideAt = now + s.hideDelay
}

// StartTween запускает анимацию счётчика от Wallet.Previous к Wallet.Current.
func (s *CoinDisplaySystem) StartTween() {
	s.display.Tween = component.BalanceTween{
		From:     s.wallet.Previous,
		To:       s.wallet.Current,
		Duration: s.tweenDuration,
		Active:   true,
	}
	s.display.Balance = s.wallet.Previous
}

// Update обрабатывает отложенное скрытие и шаг анимации.
func (s *CoinDisplaySystem) Update(now, deltaTime float64) {
	if s.display.Delta.Visible && now >= s.display.Delta.HideAt {
		s.display.Delta.Visible = false
	}

	tw := &s.display.Tween
	if !tw.Active {
		return
	}
	if tw.Elapsed >= tw.Duration {
		// Закрываем анимацию точным значением, без накопленного округления
		tw.Active = false
		s.display.Balance = s.wallet.Current
		s.wallet.Previous = s.wallet.Current
		return
	}
	s.display.Balance = int(math.Floor(utils.Lerp(float64(tw.From), float64(tw.To), tw.Elapsed/tw.Duration)))
	tw.Elapsed += deltaTime
}
