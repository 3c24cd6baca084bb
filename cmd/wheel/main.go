// cmd/wheel/main.go
package main

import (
	"flag"
	"log"
	"net/http"
	_ "net/http/pprof"
	"time"

	"fortune-wheel/internal/app"
	"fortune-wheel/internal/assets"
	"fortune-wheel/internal/config"
	"fortune-wheel/internal/logger"
	"fortune-wheel/internal/state"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
)

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	configPath := flag.String("config", "wheel.yaml", "path to wheel settings")
	pprofAddr := flag.String("pprof", "", "listen address for pprof, e.g. localhost:6060")
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

	if *pprofAddr != "" {
		go func() {
			zlog.Warn("pprof server stopped", zap.Error(http.ListenAndServe(*pprofAddr, nil)))
		}()
	}

	wheel, _, err := app.NewFromSettings(settings, zlog)
	if err != nil {
		zlog.Fatal("failed to create wheel", zap.Error(err))
	}

	fonts, err := assets.NewFontManager()
	if err != nil {
		zlog.Fatal("failed to load fonts", zap.Error(err))
	}
	defer fonts.Unload()
	labelFace, err := fonts.Face(config.LabelFontSize)
	if err != nil {
		zlog.Fatal("failed to load label font", zap.Error(err))
	}
	sectorFace, err := fonts.Face(config.SectorFontSize)
	if err != nil {
		zlog.Fatal("failed to load sector font", zap.Error(err))
	}

	sm := state.NewStateMachine()
	sm.SetState(state.NewWheelState(wheel, labelFace, sectorFace))
	game := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
	}

	zlog.Info("wheel ready",
		zap.Int("turn_cost", wheel.TurnCost()),
		zap.Int("coins", wheel.Wallet().Current))

	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Fortune Wheel")
	if err := ebiten.RunGame(game); err != nil {
		zlog.Fatal("game loop failed", zap.Error(err))
	}
}
