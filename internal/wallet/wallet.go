package wallet

import (
	"errors"
	"fmt"
	"sync"
)

var (
	// ErrNotEnoughFunds occurs when a withdrawal asks for more than the wallet
	// currently holds. The balance is left untouched.
	ErrNotEnoughFunds = errors.New("not enough funds")

	// ErrInvalidAmount indicates an amount rejected before any mutation: a
	// non-positive amount in strict mode, or one that would overflow the balance.
	ErrInvalidAmount = errors.New("invalid amount")
)

// Option tunes a Wallet at construction time.
type Option func(*Wallet)

// WithStrictAmounts makes Deposit and Withdraw reject non-positive amounts
// with ErrInvalidAmount.
func WithStrictAmounts(strict bool) Option {
	return func(w *Wallet) {
		w.strict = strict
	}
}

// Wallet holds a single non-negative balance. It is safe for concurrent use.
type Wallet struct {
	mu      sync.Mutex
	balance int64
	strict  bool
}

// New returns an empty wallet.
func New(opts ...Option) *Wallet {
	w := &Wallet{}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Balance returns the current balance.
func (w *Wallet) Balance() int64 {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.balance
}

// Strict reports whether non-positive amounts are rejected.
func (w *Wallet) Strict() bool {
	return w.strict
}

// Deposit adds amount to the balance.
func (w *Wallet) Deposit(amount int64) error {
	_, err := w.deposit(amount)
	return err
}

// Withdraw removes amount from the balance. Asking for more than the balance
// fails with ErrNotEnoughFunds; asking for exactly the balance empties it.
func (w *Wallet) Withdraw(amount int64) error {
	_, err := w.withdraw(amount)
	return err
}

func (w *Wallet) deposit(amount int64) (int64, error) {
	if err := w.checkAmount(amount); err != nil {
		return 0, err
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	next := w.balance + amount
	if amount > 0 && next < w.balance {
		return w.balance, fmt.Errorf("%w: deposit of %d overflows balance %d", ErrInvalidAmount, amount, w.balance)
	}
	// lenient mode lets a negative deposit through, but never below zero
	if next < 0 {
		return w.balance, fmt.Errorf("%w: deposit of %d with balance %d", ErrNotEnoughFunds, amount, w.balance)
	}

	w.balance = next
	return next, nil
}

func (w *Wallet) withdraw(amount int64) (int64, error) {
	if err := w.checkAmount(amount); err != nil {
		return 0, err
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	if amount > w.balance {
		return w.balance, fmt.Errorf("%w: requested %d, available %d", ErrNotEnoughFunds, amount, w.balance)
	}

	next := w.balance - amount
	if amount < 0 && next < w.balance {
		return w.balance, fmt.Errorf("%w: withdrawal of %d overflows balance %d", ErrInvalidAmount, amount, w.balance)
	}

	w.balance = next
	return next, nil
}

func (w *Wallet) checkAmount(amount int64) error {
	if w.strict && amount <= 0 {
		return fmt.Errorf("%w: amount must be positive, got %d", ErrInvalidAmount, amount)
	}
	return nil
}
