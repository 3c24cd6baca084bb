package component

// SpinState - состояние вращения колеса.
type SpinState struct {
	IsSpinning  bool
	StartAngle  float64 // один из {0, -30, ..., -330}
	TargetAngle float64 // -(полные обороты*360 + смещение сектора)
	Elapsed     float64 // секунды с начала вращения
	Duration    float64
	Rotation    float64 // угол, выставленный колесу на последнем кадре (ось z)
}

// NewSpinState возвращает колесо в покое.
func NewSpinState(duration float64) SpinState {
	return SpinState{Duration: duration}
}
