package walletservice

import (
	"context"
	"errors"

	"github.com/taskhive/server/internal/domain"
	"github.com/taskhive/server/internal/pg"
	"go.uber.org/zap"
)

type WithdrawalRepo interface {
	Create(ctx context.Context, req *domain.WithdrawRequest) (*domain.WithdrawRequest, error)
	FindAll(ctx context.Context) ([]domain.WithdrawRequest, error)
	Delete(ctx context.Context, id int) (bool, error)
}

type AccountService interface {
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Debit(ctx context.Context, email string, amount int64) error
	Credit(ctx context.Context, email string, amount int64) error
}

// Service is the withdrawal queue plus coin purchase. Coins leave the
// spendable balance the moment a withdrawal is requested; settlement later
// removes the queued request without touching the ledger again.
type Service struct {
	repo      WithdrawalRepo
	accounts  AccountService
	txManager pg.TXManager
}

func New(repo WithdrawalRepo, accounts AccountService, txManager pg.TXManager) *Service {
	return &Service{
		repo:      repo,
		accounts:  accounts,
		txManager: txManager,
	}
}

var (
	ErrUnauthorizedRole   = errors.New("unauthorized action")
	ErrWithdrawalNotFound = errors.New("withdraw request not found")
)

// RequestWithdrawal debits the worker and records the request as one
// transaction; a recorded request without the debit (or the reverse) can never
// be observed.
func (s *Service) RequestWithdrawal(ctx context.Context, email string, amount int64, method string) (*domain.WithdrawRequest, error) {
	worker, err := s.accounts.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if worker.Role != domain.RoleWorker {
		zap.L().Info("withdrawal refused, not a worker", zap.String("email", email))
		return nil, ErrUnauthorizedRole
	}

	req := &domain.WithdrawRequest{
		WorkerEmail: worker.Email,
		WorkerName:  worker.Name,
		Amount:      amount,
		Method:      method,
	}

	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		if err := s.accounts.Debit(ctx, worker.Email, amount); err != nil {
			return err
		}
		req, err = s.repo.Create(ctx, req)
		return err
	})
	if err != nil {
		return nil, err
	}

	zap.L().Info("withdrawal requested",
		zap.String("worker", worker.Email), zap.Int64("amount", amount), zap.String("method", method))
	return req, nil
}

// Settle removes a queued request; the payout itself happens off-system and
// the coins were already debited at request time.
func (s *Service) Settle(ctx context.Context, id int) error {
	ok, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return ErrWithdrawalNotFound
	}
	zap.L().Info("withdraw request settled", zap.Int("request_id", id))
	return nil
}

func (s *Service) GetWithdrawRequests(ctx context.Context) ([]domain.WithdrawRequest, error) {
	requests, err := s.repo.FindAll(ctx)
	if err != nil {
		zap.L().Error("failed to fetch withdraw requests", zap.Error(err))
		return nil, err
	}
	return requests, nil
}

// PurchaseCoins credits a buyer account. This is the only operation that
// introduces new coins; the payment provider itself is external.
func (s *Service) PurchaseCoins(ctx context.Context, email string, coins int64) (*domain.User, error) {
	buyer, err := s.accounts.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if buyer.Role != domain.RoleBuyer {
		zap.L().Info("purchase refused, not a buyer", zap.String("email", email))
		return nil, ErrUnauthorizedRole
	}

	if err := s.accounts.Credit(ctx, buyer.Email, coins); err != nil {
		return nil, err
	}

	zap.L().Info("coins purchased", zap.String("buyer", buyer.Email), zap.Int64("coins", coins))
	return s.accounts.GetByEmail(ctx, email)
}
