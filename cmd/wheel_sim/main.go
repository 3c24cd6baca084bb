// cmd/wheel_sim/main.go
//
// Прогоняет колесо без окна: фиксированный шаг кадра, N вращений подряд.
package main

import (
	"flag"
	"log"

	"fortune-wheel/internal/app"
	"fortune-wheel/internal/config"
	"fortune-wheel/internal/logger"

	"go.uber.org/zap"
)

func main() {
	configPath := flag.String("config", "wheel.yaml", "path to wheel settings")
	spins := flag.Int("spins", 10, "number of spins to attempt")
	fps := flag.Float64("fps", 60, "simulated frame rate")
	seed := flag.Int64("seed", 0, "override settings seed (0 keeps the file value)")
	flag.Parse()

	settings, err := config.LoadSettings(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	if *seed != 0 {
		settings.Seed = *seed
	}
	if *fps <= 0 {
		log.Fatalf("fps must be positive, got %v", *fps)
	}
	zlog, err := logger.New(settings.Log)
	if err != nil {
		log.Fatal(err)
	}
	defer zlog.Sync()

	wheel, session, err := app.NewFromSettings(settings, zlog)
	if err != nil {
		zlog.Fatal("failed to create wheel", zap.Error(err))
	}

	frame := 1 / *fps
	// Запас по кадрам: вращение плюс анимация счётчика
	framesPerSpin := int((config.SpinDuration+config.BalanceTweenDuration)*(*fps)) + 2
	for i := 0; i < *spins; i++ {
		if !wheel.RequestSpin() {
			zlog.Info("out of coins", zap.Int("coins", wheel.Wallet().Current))
			break
		}
		for f := 0; f < framesPerSpin; f++ {
			wheel.Update(frame)
		}
	}

	zlog.Info("session finished",
		zap.Int("spins", session.Spins),
		zap.Int("won", session.Won),
		zap.Int("spent", session.Spins*wheel.TurnCost()),
		zap.Int("coins", wheel.Wallet().Current))
}
