// internal/app/wheel.go
package app

import (
	"strconv"

	"fortune-wheel/internal/component"
	"fortune-wheel/internal/config"
	"fortune-wheel/internal/defs"
	"fortune-wheel/internal/event"
	"fortune-wheel/internal/system"

	"go.uber.org/zap"
)

// SectorPicker выбирает индекс сектора в [0, n).
// *utils.PRNGService подходит как есть.
type SectorPicker interface {
	Intn(n int) int
}

// Options - параметры, которые задаются один раз при создании колеса.
type Options struct {
	TurnCost     int
	InitialCoins int
	Sectors      *defs.SectorTable
	Rng          SectorPicker
	Dispatcher   *event.Dispatcher // nil - события никуда не уходят
	Logger       *zap.Logger       // nil - zap.NewNop()
}

// WheelController owns the spin state, the wallet and the coin display.
// It is driven by Update once per frame and by RequestSpin on user input.
// Not safe for concurrent use: everything happens on the frame goroutine.
type WheelController struct {
	turnCost   int
	sectors    *defs.SectorTable
	rng        SectorPicker
	dispatcher *event.Dispatcher
	log        *zap.Logger

	spin    component.SpinState
	wallet  component.Wallet
	display component.CoinDisplay

	SpinSystem        *system.SpinSystem
	CoinDisplaySystem *system.CoinDisplaySystem

	now     float64 // сумма deltaTime с начала сессии
	canSpin bool
}

// NewWheelController creates a controller with the wheel at rest.
func NewWheelController(opts Options) *WheelController {
	if opts.Sectors == nil {
		panic("sectors cannot be nil")
	}
	if opts.Rng == nil {
		panic("rng cannot be nil")
	}
	if opts.Dispatcher == nil {
		opts.Dispatcher = event.NewDispatcher()
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}

	w := &WheelController{
		turnCost:   opts.TurnCost,
		sectors:    opts.Sectors,
		rng:        opts.Rng,
		dispatcher: opts.Dispatcher,
		log:        opts.Logger,
		spin:       component.NewSpinState(config.SpinDuration),
		wallet:     component.NewWallet(opts.InitialCoins),
	}
	w.SpinSystem = system.NewSpinSystem(&w.spin)
	w.CoinDisplaySystem = system.NewCoinDisplaySystem(&w.display, &w.wallet, config.DeltaHideDelay, config.BalanceTweenDuration)
	w.canSpin = w.computeCanSpin()
	return w
}

// RequestSpin списывает стоимость и запускает колесо. Если монет не хватает
// или колесо уже крутится, вызов ничего не меняет и возвращает false.
func (w *WheelController) RequestSpin() bool {
	if w.spin.IsSpinning || w.wallet.Current < w.turnCost {
		w.dispatcher.Dispatch(event.Event{
			Type: event.SpinRejected,
			Data: event.SpinData{TargetAngle: w.spin.TargetAngle, Coins: w.wallet.Current},
		})
		return false
	}

	w.wallet.Previous = w.wallet.Current
	w.wallet.Current -= w.turnCost

	offset := w.sectors.Boundary(w.rng.Intn(w.sectors.Len()))
	target := -(config.WholeTurns*360 + offset)
	w.SpinSystem.Start(target)

	w.CoinDisplaySystem.ShowDelta(-w.turnCost, w.now)
	w.CoinDisplaySystem.StartTween()
	w.canSpin = false

	w.log.Debug("spin started",
		zap.Float64("target", target),
		zap.Int("coins", w.wallet.Current))
	w.dispatcher.Dispatch(event.Event{
		Type: event.SpinStarted,
		Data: event.SpinData{TargetAngle: target, Coins: w.wallet.Current},
	})
	return true
}

// Update продвигает колесо и анимации монет на deltaTime секунд
// и возвращает то, что хост должен отрисовать.
func (w *WheelController) Update(deltaTime float64) View {
	w.now += deltaTime
	w.canSpin = w.computeCanSpin()

	if w.SpinSystem.Update(deltaTime) {
		stopAngle := int(w.spin.StartAngle)
		w.dispatcher.Dispatch(event.Event{
			Type: event.SpinFinished,
			Data: event.SpinData{TargetAngle: w.spin.TargetAngle, StopAngle: stopAngle, Coins: w.wallet.Current},
		})
		w.rewardBySector(stopAngle)
		w.CoinDisplaySystem.ScheduleHide(w.now)
	}

	w.CoinDisplaySystem.Update(w.now, deltaTime)
	return w.View()
}

// rewardBySector начисляет награду за сектор под указателем.
func (w *WheelController) rewardBySector(stopAngle int) {
	reward, ok := w.sectors.RewardFor(stopAngle)
	if !ok {
		w.log.Warn("stop angle is not in the reward table, using default reward",
			zap.Int("stop_angle", stopAngle),
			zap.Int("reward", reward))
		w.dispatcher.Dispatch(event.Event{
			Type: event.InvariantViolation,
			Data: event.RewardData{StopAngle: stopAngle, Reward: reward, Coins: w.wallet.Current},
		})
	}

	w.wallet.Previous = w.wallet.Current
	w.wallet.Current += reward
	w.CoinDisplaySystem.ShowDelta(reward, w.now)
	w.CoinDisplaySystem.StartTween()

	w.log.Debug("reward granted",
		zap.Int("stop_angle", stopAngle),
		zap.Int("reward", reward),
		zap.Int("coins", w.wallet.Current))
	w.dispatcher.Dispatch(event.Event{
		Type: event.RewardGranted,
		Data: event.RewardData{StopAngle: stopAngle, Reward: reward, Coins: w.wallet.Current},
	})
}

func (w *WheelController) computeCanSpin() bool {
	return !w.spin.IsSpinning && w.wallet.Current >= w.turnCost
}

// View собирает модель представления из текущего состояния.
func (w *WheelController) View() View {
	alpha := config.SpinDisabledAlpha
	if w.canSpin {
		alpha = config.SpinEnabledAlpha
	}
	return View{
		RotationDeg:  w.spin.Rotation,
		SpinEnabled:  w.canSpin,
		SpinAlpha:    alpha,
		BalanceText:  strconv.Itoa(w.display.Balance),
		DeltaText:    w.display.Delta.Text,
		DeltaVisible: w.display.Delta.Visible,
	}
}

// Spin возвращает копию состояния вращения.
func (w *WheelController) Spin() component.SpinState { return w.spin }

// Wallet возвращает копию кошелька.
func (w *WheelController) Wallet() component.Wallet { return w.wallet }

// Sectors returns the reward table the wheel was built with.
func (w *WheelController) Sectors() *defs.SectorTable { return w.sectors }

// TurnCost returns the configured price of one spin.
func (w *WheelController) TurnCost() int { return w.turnCost }
