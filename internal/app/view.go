package app

// View - всё, что хост должен нарисовать за кадр. Не содержит ссылок
// на состояние контроллера.
type View struct {
	RotationDeg  float64 // поворот колеса вокруг оси z, градусы
	SpinEnabled  bool    // можно ли нажимать кнопку
	SpinAlpha    float64 // 1.0 - активна, 0.5 - полупрозрачная
	BalanceText  string
	DeltaText    string
	DeltaVisible bool
}
