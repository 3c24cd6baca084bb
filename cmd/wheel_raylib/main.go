// cmd/wheel_raylib/main.go
package main

import (
	"flag"
	"log"

	"fortune-wheel/internal/app"
	"fortune-wheel/internal/assets"
	"fortune-wheel/internal/config"
	"fortune-wheel/internal/logger"
	"fortune-wheel/internal/ui"

	rl "github.com/gen2brain/raylib-go/raylib"
	"go.uber.org/zap"
)

func main() {
	configPath := flag.String("config", "wheel.yaml", "path to wheel settings")
	flag.Parse()

	settings, err := config.LoadSettings(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	zlog, err := logger.New(settings.Log)
	if err != nil {
		log.Fatal(err)
	}
	defer zlog.Sync()

	wheel, _, err := app.NewFromSettings(settings, zlog)
	if err != nil {
		zlog.Fatal("failed to create wheel", zap.Error(err))
	}
	fonts, err := assets.NewFontManager()
	if err != nil {
		zlog.Fatal("failed to load fonts", zap.Error(err))
	}

	rl.InitWindow(config.ScreenWidth, config.ScreenHeight, "Fortune Wheel (raylib)")
	defer rl.CloseWindow()
	rl.SetTargetFPS(60)

	font := rl.LoadFontFromMemory(".ttf", fonts.TTF(), 32, nil)
	defer rl.UnloadFont(font)

	sectors := wheel.Sectors()
	wedges := make([]int, sectors.Len())
	for k := range wedges {
		wedges[k] = sectors.WedgeReward(k)
	}
	wheelView := ui.NewWheelViewRL(config.ScreenWidth/2, config.WheelCenterY, config.WheelRadius, wedges, config.SectorColors, config.PointerSize, font)
	button := ui.NewSpinButtonRL(config.ScreenWidth/2, config.SpinButtonY, config.SpinButtonWidth, config.SpinButtonHeight, font, config.ButtonColor, config.ButtonHoverColor)
	bg := config.BackgroundColor

	view := wheel.View()
	for !rl.WindowShouldClose() {
		deltaTime := float64(rl.GetFrameTime())
		if deltaTime > config.MaxDeltaTime {
			deltaTime = config.MaxDeltaTime
		}

		mousePos := rl.GetMousePosition()
		if view.SpinEnabled && (button.IsClicked(mousePos) || rl.IsKeyPressed(rl.KeySpace)) {
			wheel.RequestSpin()
		}
		view = wheel.Update(deltaTime)

		rl.BeginDrawing()
		rl.ClearBackground(rl.NewColor(bg.R, bg.G, bg.B, bg.A))
		wheelView.Draw(view.RotationDeg)
		button.Draw(mousePos, view.SpinEnabled, float32(view.SpinAlpha))
		wheelView.DrawCoins(config.BalanceTextX, config.BalanceTextY-24, view.BalanceText, view.DeltaText, view.DeltaVisible)
		rl.EndDrawing()
	}
}
