package wallet

import "time"

// Record is a wallet registered with the service and addressable by ID.
type Record struct {
	ID        string
	CreatedAt time.Time
	Wallet    *Wallet
}

// Balance encapsulates available funds for a wallet at a point in time.
type Balance struct {
	WalletID string
	Amount   int64
	AsOf     time.Time
}
