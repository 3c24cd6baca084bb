package app

import (
	"testing"

	"fortune-wheel/internal/defs"
	"fortune-wheel/internal/event"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

const frame = 1.0 / 60

// fixedPicker всегда возвращает один и тот же индекс сектора.
type fixedPicker struct {
	index int
	calls int
}

func (p *fixedPicker) Intn(n int) int {
	p.calls++
	return p.index % n
}

func newTestWheel(t *testing.T, coins, index int) (*WheelController, *fixedPicker) {
	t.Helper()
	sectors, err := defs.NewSectorTable(nil)
	if err != nil {
		t.Fatalf("NewSectorTable: %v", err)
	}
	picker := &fixedPicker{index: index}
	w := NewWheelController(Options{
		TurnCost:     300,
		InitialCoins: coins,
		Sectors:      sectors,
		Rng:          picker,
	})
	return w, picker
}

// runFor прогоняет контроллер seconds секунд кадрами по 1/60.
func runFor(w *WheelController, seconds float64) View {
	var v View
	for elapsed := 0.0; elapsed < seconds; elapsed += frame {
		v = w.Update(frame)
	}
	return v
}

func TestTargetAndStopAngleForEverySector(t *testing.T) {
	rewards := map[int]int{
		0: 1000, -330: 200, -300: 100, -270: 500, -240: 300, -210: 100,
		-180: 900, -150: 200, -120: 100, -90: 700, -60: 300, -30: 100,
	}

	for index := 0; index < 12; index++ {
		w, _ := newTestWheel(t, 1000, index)
		if !w.RequestSpin() {
			t.Fatalf("index %d: spin rejected", index)
		}

		offset := float64(30 * (index + 1))
		wantTarget := -(5*360 + offset)
		if got := w.Spin().TargetAngle; got != wantTarget {
			t.Errorf("index %d: TargetAngle = %v, want %v", index, got, wantTarget)
		}

		runFor(w, 5)

		spin := w.Spin()
		if spin.IsSpinning {
			t.Fatalf("index %d: still spinning after 5s", index)
		}
		wantStop := -int(offset) % 360
		if spin.StartAngle != float64(wantStop) {
			t.Errorf("index %d: StartAngle = %v, want %d", index, spin.StartAngle, wantStop)
		}
		if spin.Rotation != wantTarget {
			t.Errorf("index %d: Rotation = %v, want %v", index, spin.Rotation, wantTarget)
		}

		reward, ok := rewards[wantStop]
		if !ok {
			t.Fatalf("index %d: stop angle %d not in documented set", index, wantStop)
		}
		if got := w.Wallet().Current; got != 1000-300+reward {
			t.Errorf("index %d: coins = %d, want %d", index, got, 1000-300+reward)
		}
	}
}

func TestScenarioFullTurnPaysThousand(t *testing.T) {
	w, _ := newTestWheel(t, 1000, 11) // смещение 360

	if !w.RequestSpin() {
		t.Fatal("spin rejected")
	}
	if got := w.Wallet().Current; got != 700 {
		t.Fatalf("coins after paying = %d, want 700", got)
	}

	// Первый кадр анимации показывает старый баланс, дальше счётчик идёт вниз к 700
	v := w.Update(0.25)
	if v.BalanceText != "1000" {
		t.Errorf("balance on first tween frame = %q, want 1000", v.BalanceText)
	}
	v = w.Update(0.25)
	if v.BalanceText != "850" {
		t.Errorf("balance mid-tween = %q, want 850", v.BalanceText)
	}
	v = runFor(w, 0.5)
	if v.BalanceText != "700" {
		t.Errorf("balance after tween = %q, want 700", v.BalanceText)
	}

	runFor(w, 4)
	if w.Spin().IsSpinning {
		t.Fatal("still spinning")
	}
	if w.Spin().StartAngle != 0 {
		t.Errorf("StartAngle = %v, want 0", w.Spin().StartAngle)
	}
	if got := w.Wallet().Current; got != 1700 {
		t.Errorf("coins = %d, want 1700", got)
	}
}

func TestRejectedWhenNotEnoughCoins(t *testing.T) {
	w, picker := newTestWheel(t, 200, 0)
	spinBefore, walletBefore := w.Spin(), w.Wallet()

	if w.RequestSpin() {
		t.Fatal("spin must be rejected with 200 < 300")
	}
	if w.Spin() != spinBefore || w.Wallet() != walletBefore {
		t.Errorf("state changed on rejected spin: %+v %+v", w.Spin(), w.Wallet())
	}
	if w.Wallet().Current != 200 || w.Spin().IsSpinning {
		t.Errorf("unexpected state: coins=%d spinning=%v", w.Wallet().Current, w.Spin().IsSpinning)
	}
	if picker.calls != 0 {
		t.Errorf("rng consulted on rejected spin")
	}

	v := w.Update(frame)
	if v.SpinEnabled || v.SpinAlpha != 0.5 {
		t.Errorf("button must be disabled: %+v", v)
	}
}

func TestRejectedWhileSpinning(t *testing.T) {
	w, picker := newTestWheel(t, 5000, 3)
	if !w.RequestSpin() {
		t.Fatal("first spin rejected")
	}
	w.Update(1)

	spinBefore, walletBefore := w.Spin(), w.Wallet()
	if w.RequestSpin() {
		t.Fatal("second spin must be rejected while spinning")
	}
	if w.Spin() != spinBefore || w.Wallet() != walletBefore {
		t.Errorf("state changed on re-entrant spin")
	}
	if picker.calls != 1 {
		t.Errorf("rng called %d times, want 1", picker.calls)
	}
}

func TestButtonGating(t *testing.T) {
	w, _ := newTestWheel(t, 300, 0)

	v := w.Update(frame)
	if !v.SpinEnabled || v.SpinAlpha != 1.0 {
		t.Fatalf("idle wheel with enough coins must be enabled: %+v", v)
	}

	w.RequestSpin()
	v = w.Update(frame)
	if v.SpinEnabled || v.SpinAlpha != 0.5 {
		t.Errorf("spinning wheel must be disabled: %+v", v)
	}

	// Сектор -30 платит 100: 0 + 100 < 300, кнопка остаётся выключенной
	runFor(w, 5)
	v = w.Update(frame)
	if w.Wallet().Current != 100 {
		t.Fatalf("coins = %d, want 100", w.Wallet().Current)
	}
	if v.SpinEnabled {
		t.Error("button enabled without enough coins")
	}
}

func TestDeltaTextLifecycle(t *testing.T) {
	w, _ := newTestWheel(t, 1000, 8) // -270 -> 500

	w.RequestSpin()
	v := w.View()
	if !v.DeltaVisible || v.DeltaText != "-300" {
		t.Fatalf("expected visible -300, got %+v", v)
	}

	v = w.Update(0.5)
	if !v.DeltaVisible {
		t.Error("delta hidden before 1s")
	}
	v = w.Update(0.6)
	if v.DeltaVisible {
		t.Error("delta still visible after 1s")
	}

	// Доводим до остановки
	for w.Spin().IsSpinning {
		v = w.Update(frame)
	}
	if !v.DeltaVisible || v.DeltaText != "+500" {
		t.Fatalf("expected visible +500 after stop, got %+v", v)
	}
	v = runFor(w, 1.1)
	if v.DeltaVisible {
		t.Error("reward delta still visible after 1s")
	}
}

func TestTweenClosureAfterReward(t *testing.T) {
	w, _ := newTestWheel(t, 1000, 5) // -180 -> 900

	w.RequestSpin()
	for w.Spin().IsSpinning {
		w.Update(frame)
	}
	v := runFor(w, 0.6)

	wallet := w.Wallet()
	if wallet.Current != 1600 {
		t.Fatalf("coins = %d, want 1600", wallet.Current)
	}
	if v.BalanceText != "1600" {
		t.Errorf("displayed balance = %q, want 1600", v.BalanceText)
	}
	if wallet.Previous != wallet.Current {
		t.Errorf("Previous = %d, want %d", wallet.Previous, wallet.Current)
	}
}

func TestConsecutiveSpinsStartFromLastStop(t *testing.T) {
	w, picker := newTestWheel(t, 1000, 2) // -90
	w.RequestSpin()
	runFor(w, 5)
	if w.Spin().StartAngle != -90 {
		t.Fatalf("StartAngle = %v, want -90", w.Spin().StartAngle)
	}

	picker.index = 0 // -30
	if !w.RequestSpin() {
		t.Fatal("second spin rejected")
	}
	v := w.Update(frame)
	if v.RotationDeg > -90 || v.RotationDeg < -91 {
		t.Errorf("second spin should start near -90, got %v", v.RotationDeg)
	}
	runFor(w, 5)
	if w.Spin().StartAngle != -30 {
		t.Errorf("StartAngle = %v, want -30", w.Spin().StartAngle)
	}
	// 1000 - 300 + 700 - 300 + 100
	if got := w.Wallet().Current; got != 1200 {
		t.Errorf("coins = %d, want 1200", got)
	}
}

func TestEventsPublished(t *testing.T) {
	sectors, _ := defs.NewSectorTable(nil)
	d := event.NewDispatcher()
	var seen []event.Event
	d.SubscribeAll(event.ListenerFunc(func(e event.Event) { seen = append(seen, e) }),
		event.SpinStarted, event.SpinRejected, event.SpinFinished, event.RewardGranted)

	w := NewWheelController(Options{
		TurnCost:     300,
		InitialCoins: 300,
		Sectors:      sectors,
		Rng:          &fixedPicker{index: 9}, // -300 -> 100
		Dispatcher:   d,
	})
	w.RequestSpin()
	w.RequestSpin()
	runFor(w, 5)

	want := []event.EventType{event.SpinStarted, event.SpinRejected, event.SpinFinished, event.RewardGranted}
	if len(seen) != len(want) {
		t.Fatalf("got %d events, want %d", len(seen), len(want))
	}
	for i, e := range seen {
		if e.Type != want[i] {
			t.Errorf("event %d = %s, want %s", i, e.Type, want[i])
		}
	}
	if data := seen[3].Data.(event.RewardData); data.StopAngle != -300 || data.Reward != 100 || data.Coins != 100 {
		t.Errorf("unexpected reward payload: %+v", data)
	}
}

func TestUnknownStopAngleLogsAndPaysDefault(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	sectors, _ := defs.NewSectorTable(nil)
	d := event.NewDispatcher()
	violations := 0
	d.Subscribe(event.InvariantViolation, event.ListenerFunc(func(event.Event) { violations++ }))

	w := NewWheelController(Options{
		TurnCost:     300,
		InitialCoins: 0,
		Sectors:      sectors,
		Rng:          &fixedPicker{},
		Dispatcher:   d,
		Logger:       zap.New(core),
	})
	w.rewardBySector(15)

	if got := w.Wallet().Current; got != 300 {
		t.Errorf("coins = %d, want default reward 300", got)
	}
	if violations != 1 {
		t.Errorf("InvariantViolation dispatched %d times, want 1", violations)
	}
	if logs.Len() != 1 {
		t.Fatalf("expected 1 warning, got %d", logs.Len())
	}
	entry := logs.All()[0]
	if entry.ContextMap()["stop_angle"] != int64(15) {
		t.Errorf("unexpected log fields: %v", entry.ContextMap())
	}
}

func TestSameSectorTwiceSpinsFullDuration(t *testing.T) {
	w, _ := newTestWheel(t, 1000, 2) // -90 -> 700
	w.RequestSpin()
	runFor(w, 5)
	if w.Spin().Rotation != -1890 {
		t.Fatalf("Rotation = %v, want -1890", w.Spin().Rotation)
	}

	if !w.RequestSpin() {
		t.Fatal("second spin rejected")
	}
	w.Update(frame)
	if !w.Spin().IsSpinning {
		t.Fatalf("second spin stopped after one frame: %+v", w.Spin())
	}
	// 1000 - 300 + 700 - 300, награда ещё не начислена
	if got := w.Wallet().Current; got != 1100 {
		t.Errorf("coins = %d, want 1100", got)
	}

	runFor(w, 3.8)
	if !w.Spin().IsSpinning {
		t.Error("second spin finished before 4s")
	}
	runFor(w, 0.5)
	if w.Spin().IsSpinning {
		t.Fatal("second spin did not finish")
	}
	if w.Spin().StartAngle != -90 {
		t.Errorf("StartAngle = %v, want -90", w.Spin().StartAngle)
	}
	if got := w.Wallet().Current; got != 1800 {
		t.Errorf("coins = %d, want 1800", got)
	}
}
