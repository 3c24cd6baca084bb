package component

// Wallet хранит баланс. Current - авторитетное значение, Previous - снимок
// для анимации счётчика.
type Wallet struct {
	Current  int
	Previous int
}

// NewWallet создаёт кошелёк со стартовым балансом.
func NewWallet(coins int) Wallet {
	return Wallet{Current: coins, Previous: coins}
}
