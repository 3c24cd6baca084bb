// internal/system/spin.go
package system

import (
	"fortune-wheel/internal/component"
	"fortune-wheel/internal/utils"
)

// SpinSystem двигает колесо от StartAngle к TargetAngle.
type SpinSystem struct {
	state *component.SpinState
}

// NewSpinSystem создает систему вращения поверх переданного состояния.
func NewSpinSystem(state *component.SpinState) *SpinSystem {
	return &SpinSystem{state: state}
}

// Start запускает вращение к targetAngle с текущего StartAngle.
func (s *SpinSystem) Start(targetAngle float64) {
	s.state.TargetAngle = targetAngle
	s.state.Elapsed = 0
	// Та же поза колеса, но без хвоста прошлого оборота
	s.state.Rotation = s.state.StartAngle
	s.state.IsSpinning = true
}

// Update продвигает вращение на deltaTime. Возвращает true на кадре,
// где колесо остановилось; StartAngle к этому моменту уже нормализован.
func (s *SpinSystem) Update(deltaTime float64) (stopped bool) {
	st := s.state
	if !st.IsSpinning {
		return false
	}

	st.Elapsed += deltaTime
	// Вторая проверка почти недостижима при монотонном сглаживании,
	// но остановка по точному совпадению угла сохранена.
	if st.Elapsed > st.Duration || st.Rotation == st.TargetAngle {
		st.Elapsed = st.Duration
		st.IsSpinning = false
		st.StartAngle = utils.ModDeg(st.TargetAngle, 360)
		stopped = true
	}

	t := utils.Clamp01(st.Elapsed / st.Duration)
	st.Rotation = utils.Lerp(st.StartAngle, st.TargetAngle, utils.Smootherstep(t))
	return stopped
}
