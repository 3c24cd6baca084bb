// internal/state/wheel_state.go
package state

import (
	"fortune-wheel/internal/app"
	"fortune-wheel/internal/config"
	"fortune-wheel/internal/ui"
	"fortune-wheel/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"golang.org/x/image/font"
)

// Убеждаемся, что WheelState соответствует интерфейсу State
var _ State = (*WheelState)(nil)

// WheelState - экран с колесом фортуны
type WheelState struct {
	wheel      *app.WheelController
	renderer   *render.WheelRenderer
	spinButton *ui.SpinButton
	coins      *ui.CoinLabels
	view       app.View
}

// NewWheelState собирает экран вокруг готового контроллера.
func NewWheelState(wheel *app.WheelController, labelFace, sectorFace font.Face) *WheelState {
	sectors := wheel.Sectors()
	wedges := make([]int, sectors.Len())
	for k := range wedges {
		wedges[k] = sectors.WedgeReward(k)
	}

	colors := &render.WheelColors{
		Sectors:     config.SectorColors,
		Stroke:      config.StrokeColor,
		Pointer:     config.PointerColor,
		TextDark:    config.TextDarkColor,
		TextLight:   config.TextLightColor,
		StrokeWidth: config.WheelStrokeWidth,
		PointerSize: config.PointerSize,
	}

	return &WheelState{
		wheel:      wheel,
		renderer:   render.NewWheelRenderer(config.WheelRadius, wedges, sectorFace, colors),
		spinButton: ui.NewSpinButton(config.ScreenWidth/2, config.SpinButtonY, config.SpinButtonWidth, config.SpinButtonHeight, labelFace),
		coins:      ui.NewCoinLabels(labelFace),
		view:       wheel.View(),
	}
}

func (s *WheelState) Enter() {
	// Ничего не делаем при входе
}

func (s *WheelState) Update(deltaTime float64) {
	// Кнопка реагирует только если контроллер разрешил вращение на прошлом кадре
	if s.view.SpinEnabled && s.spinRequested() {
		s.wheel.RequestSpin()
	}
	s.view = s.wheel.Update(deltaTime)
}

func (s *WheelState) spinRequested() bool {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		return true
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		return s.spinButton.Contains(x, y)
	}
	return false
}

func (s *WheelState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	s.renderer.Draw(screen, config.ScreenWidth/2, config.WheelCenterY, s.view.RotationDeg)
	s.spinButton.Draw(screen, s.view.SpinEnabled, s.view.SpinAlpha)
	s.coins.Draw(screen, s.view.BalanceText, s.view.DeltaText, s.view.DeltaVisible)
}

func (s *WheelState) Exit() {
	// Ничего не делаем при выходе
}
