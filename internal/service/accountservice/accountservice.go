package accountservice

import (
	"context"
	"errors"

	"github.com/taskhive/server/internal/domain"
	"go.uber.org/zap"
)

type Repo interface {
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	Debit(ctx context.Context, email string, amount int64) (bool, error)
	Credit(ctx context.Context, email string, amount int64) (bool, error)
}

// Service is the account store: the single source of truth for spendable coin
// balances. Balances change only through Debit and Credit.
type Service struct {
	repo Repo
}

func New(repo Repo) *Service {
	return &Service{
		repo: repo,
	}
}

var (
	ErrAccountNotFound   = errors.New("account not found")
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrInvalidAmount     = errors.New("amount must be positive")
)

func (s *Service) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		zap.L().Error("failed to get account", zap.Error(err))
		return nil, err
	}
	if user == nil {
		return nil, ErrAccountNotFound
	}
	return user, nil
}

func (s *Service) Debit(ctx context.Context, email string, amount int64) error {
	if amount <= 0 {
		return ErrInvalidAmount
	}
	ok, err := s.repo.Debit(ctx, email, amount)
	if err != nil {
		zap.L().Error("failed to debit account", zap.Error(err))
		return err
	}
	if !ok {
		// the guarded update touched nothing: either the account is missing
		// or the balance is below amount
		user, err := s.repo.GetByEmail(ctx, email)
		if err != nil {
			return err
		}
		if user == nil {
			return ErrAccountNotFound
		}
		zap.L().Info("debit refused, insufficient funds",
			zap.String("email", email), zap.Int64("amount", amount), zap.Int64("coins", user.Coins))
		return ErrInsufficientFunds
	}
	return nil
}

func (s *Service) Credit(ctx context.Context, email string, amount int64) error {
	if amount <= 0 {
		return ErrInvalidAmount
	}
	ok, err := s.repo.Credit(ctx, email, amount)
	if err != nil {
		zap.L().Error("failed to credit account", zap.Error(err))
		return err
	}
	if !ok {
		return ErrAccountNotFound
	}
	return nil
}
