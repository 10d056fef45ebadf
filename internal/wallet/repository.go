package wallet

import (
	"context"
	"errors"
)

var (
	// ErrWalletNotFound is returned when no wallet is registered under an ID.
	ErrWalletNotFound = errors.New("wallet not found")

	// ErrWalletExists is returned when registering an ID twice.
	ErrWalletExists = errors.New("wallet exists")
)

// Repository keeps track of live wallets.
type Repository interface {
	Create(ctx context.Context, record Record) error
	Get(ctx context.Context, id string) (Record, error)
}
