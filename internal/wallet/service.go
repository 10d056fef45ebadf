package wallet

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/congo-pay/wallet_service/internal/notification"
)

// Service exposes wallet operations over the registry.
type Service struct {
	repo     Repository
	notifier notification.Notifier
	opts     []Option
}

// NewService builds a wallet service instance. The options are applied to
// every wallet it creates.
func NewService(repo Repository, notifier notification.Notifier, opts ...Option) *Service {
	return &Service{repo: repo, notifier: notifier, opts: opts}
}

// Create registers a new empty wallet.
func (s *Service) Create(ctx context.Context) (Record, error) {
	record := Record{
		ID:        uuid.New().String(),
		CreatedAt: time.Now().UTC(),
		Wallet:    New(s.opts...),
	}

	if err := s.repo.Create(ctx, record); err != nil {
		return Record{}, err
	}

	return record, nil
}

// Get retrieves a registered wallet.
func (s *Service) Get(ctx context.Context, id string) (Record, error) {
	return s.repo.Get(ctx, id)
}

// Balance returns the current balance of the wallet.
func (s *Service) Balance(ctx context.Context, id string) (Balance, error) {
	record, err := s.repo.Get(ctx, id)
	if err != nil {
		return Balance{}, err
	}
	return snapshot(record.ID, record.Wallet.Balance()), nil
}

// Deposit adds amount to the wallet and returns the resulting balance.
func (s *Service) Deposit(ctx context.Context, id string, amount int64) (Balance, error) {
	record, err := s.repo.Get(ctx, id)
	if err != nil {
		return Balance{}, err
	}

	balance, err := record.Wallet.deposit(amount)
	if err != nil {
		return Balance{}, err
	}

	s.notify(ctx, notification.Message{
		Kind:        notification.KindDeposit,
		Destination: record.ID,
		Body:        fmt.Sprintf("Deposited %d, balance is now %d", amount, balance),
	})

	return snapshot(record.ID, balance), nil
}

// Withdraw takes amount out of the wallet and returns the resulting balance.
// The wallet is unchanged when the funds are insufficient.
func (s *Service) Withdraw(ctx context.Context, id string, amount int64) (Balance, error) {
	record, err := s.repo.Get(ctx, id)
	if err != nil {
		return Balance{}, err
	}

	balance, err := record.Wallet.withdraw(amount)
	if err != nil {
		return Balance{}, err
	}

	s.notify(ctx, notification.Message{
		Kind:        notification.KindWithdrawal,
		Destination: record.ID,
		Body:        fmt.Sprintf("Withdrew %d, balance is now %d", amount, balance),
	})

	return snapshot(record.ID, balance), nil
}

func (s *Service) notify(ctx context.Context, msg notification.Message) {
	if s.notifier != nil {
		_ = s.notifier.Send(ctx, msg)
	}
}

func snapshot(id string, amount int64) Balance {
	return Balance{WalletID: id, Amount: amount, AsOf: time.Now().UTC()}
}
