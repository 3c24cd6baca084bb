// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 800
	ScreenHeight = 600
	MaxDeltaTime = 0.06

	TurnCost     = 300  // Стоимость одного вращения
	InitialCoins = 1000 // Стартовый баланс, обычно приходит из внешнего кошелька

	SpinDuration = 4.0 // Секунды вращения колеса
	WholeTurns   = 5   // Полных оборотов перед остановкой

	DeltaHideDelay       = 1.0 // Через сколько секунд прячем "+N"/"-N"
	BalanceTweenDuration = 0.5 // Анимация счётчика монет

	SectorCount   = 12
	SectorStep    = 30.0
	DefaultReward = 300

	SpinEnabledAlpha  = 1.0
	SpinDisabledAlpha = 0.5

	WheelRadius      = 220.0
	WheelCenterY     = 270.0
	WheelStrokeWidth = 2.0
	PointerSize      = 18.0

	SpinButtonWidth  = 160.0
	SpinButtonHeight = 48.0
	SpinButtonY      = 530.0

	BalanceTextX = 24
	BalanceTextY = 40
	DeltaTextX   = 24
	DeltaTextY   = 76

	LabelFontSize  = 22.0
	SectorFontSize = 14.0
)

var (
	BackgroundColor  = color.RGBA{20, 20, 30, 255}
	TextLightColor   = color.RGBA{240, 240, 240, 255}
	TextDarkColor    = color.RGBA{20, 20, 30, 255}
	StrokeColor      = color.RGBA{255, 255, 255, 255}
	PointerColor     = color.RGBA{220, 60, 60, 255}
	ButtonColor      = color.RGBA{70, 130, 180, 255}
	ButtonHoverColor = color.RGBA{90, 150, 200, 255}
	DeltaPlusColor   = color.RGBA{50, 205, 50, 255}
	DeltaMinusColor  = color.RGBA{220, 60, 60, 255}
	SectorColors     = []color.RGBA{
		{255, 50, 50, 255},  // Red
		{255, 215, 0, 255},  // Gold
		{50, 100, 255, 255}, // Blue
		{50, 255, 50, 255},  // Green
		{180, 50, 230, 255}, // Purple
		{255, 140, 0, 255},  // Orange
	}
)
