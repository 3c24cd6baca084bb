package component

// DeltaFlash - всплывающий текст "+N"/"-N".
type DeltaFlash struct {
	Text    string
	Visible bool
	HideAt  float64 // абсолютное время (сек. с начала сессии), когда прятать
}

// BalanceTween анимирует отображаемый баланс от From к To.
type BalanceTween struct {
	From, To int
	Elapsed  float64
	Duration float64
	Active   bool
}

// CoinDisplay - всё, что нужно для отрисовки монет. Не авторитетно.
type CoinDisplay struct {
	Balance int // отображаемое значение
	Delta   DeltaFlash
	Tween   BalanceTween
}
