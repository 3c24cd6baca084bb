package app

import (
	"fmt"

	"fortune-wheel/internal/config"
	"fortune-wheel/internal/defs"
	"fortune-wheel/internal/event"
	"fortune-wheel/internal/utils"

	"go.uber.org/zap"
)

// NewFromSettings собирает колесо из настроек: таблица наград, сид, логгер.
func NewFromSettings(s config.Settings, log *zap.Logger) (*WheelController, *SessionListener, error) {
	sectors, err := defs.NewSectorTable(s.Rewards)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to build sector table: %w", err)
	}
	if log == nil {
		log = zap.NewNop()
	}

	dispatcher := event.NewDispatcher()
	listener := &SessionListener{log: log}
	dispatcher.SubscribeAll(listener, event.SpinFinished, event.RewardGranted, event.SpinRejected)

	w := NewWheelController(Options{
		TurnCost:     s.TurnCost,
		InitialCoins: s.InitialCoins,
		Sectors:      sectors,
		Rng:          utils.NewPRNGService(s.Seed),
		Dispatcher:   dispatcher,
		Logger:       log,
	})
	return w, listener, nil
}

// SessionListener ведёт статистику сессии и пишет итог каждого вращения в лог.
type SessionListener struct {
	log      *zap.Logger
	Spins    int
	Rejected int
	Won      int
}

func (l *SessionListener) OnEvent(e event.Event) {
	switch e.Type {
	case event.SpinFinished:
		l.Spins++
	case event.SpinRejected:
		l.Rejected++
	case event.RewardGranted:
		data, ok := e.Data.(event.RewardData)
		if !ok {
			return
		}
		l.Won += data.Reward
		l.log.Info("spin result",
			zap.Int("spin", l.Spins),
			zap.Int("stop_angle", data.StopAngle),
			zap.Int("reward", data.Reward),
			zap.Int("coins", data.Coins))
	}
}
