// internal/event/types.go
package event

const (
	SpinStarted        EventType = "SpinStarted"        // Колесо запущено, монеты списаны
	SpinRejected       EventType = "SpinRejected"       // Не хватает монет или колесо уже крутится
	SpinFinished       EventType = "SpinFinished"       // Колесо остановилось
	RewardGranted      EventType = "RewardGranted"      // Награда зачислена
	InvariantViolation EventType = "InvariantViolation" // Угол остановки не из таблицы
)

// SpinData передаётся с SpinStarted, SpinRejected и SpinFinished.
type SpinData struct {
	TargetAngle float64
	StopAngle   int // только для SpinFinished
	Coins       int
}

// RewardData передаётся с RewardGranted и InvariantViolation.
type RewardData struct {
	StopAngle int
	Reward    int
	Coins     int // баланс после начисления
}
