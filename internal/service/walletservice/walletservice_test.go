package walletservice

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/taskhive/server/internal/domain"
	"github.com/taskhive/server/internal/pg"
	"github.com/taskhive/server/internal/service/accountservice"
)

func NewMock(t *testing.T) (*Service, *MockWithdrawalRepo, *MockAccountService, *pg.MockTXManager) {
	ctrl := gomock.NewController(t)
	repo := NewMockWithdrawalRepo(ctrl)
	accounts := NewMockAccountService(ctrl)
	txManager := pg.NewMockTXManager(ctrl)
	service := New(repo, accounts, txManager)
	defer ctrl.Finish()
	return service, repo, accounts, txManager
}

func passThrough(txManager *pg.MockTXManager) {
	txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
			return fn(ctx)
		})
}

func TestRequestWithdrawal(t *testing.T) {
	service, repo, accounts, txManager := NewMock(t)

	worker := &domain.User{ID: 2, Email: "worker@example.com", Name: "Worker", Role: domain.RoleWorker, Coins: 30}

	tests := []struct {
		name          string
		prepareMock   func()
		expectedReq   *domain.WithdrawRequest
		expectedError error
	}{
		{
			name: "Debit and queue entry happen together",
			prepareMock: func() {
				accounts.EXPECT().GetByEmail(gomock.Any(), "worker@example.com").Return(worker, nil)
				passThrough(txManager)
				accounts.EXPECT().Debit(gomock.Any(), "worker@example.com", int64(10)).Return(nil)
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, req *domain.WithdrawRequest) (*domain.WithdrawRequest, error) {
					req.ID = 2
					return req, nil
				})
			},
			expectedReq: &domain.WithdrawRequest{
				ID:          2,
				WorkerEmail: "worker@example.com",
				WorkerName:  "Worker",
				Amount:      10,
				Method:      "bkash",
			},
			expectedError: nil,
		},
		{
			name: "Refused debit queues nothing",
			prepareMock: func() {
				accounts.EXPECT().GetByEmail(gomock.Any(), "worker@example.com").Return(worker, nil)
				passThrough(txManager)
				accounts.EXPECT().Debit(gomock.Any(), "worker@example.com", int64(10)).
					Return(accountservice.ErrInsufficientFunds)
			},
			expectedReq:   nil,
			expectedError: accountservice.ErrInsufficientFunds,
		},
		{
			name: "Buyer cannot withdraw",
			prepareMock: func() {
				accounts.EXPECT().GetByEmail(gomock.Any(), "worker@example.com").
					Return(&domain.User{ID: 1, Email: "worker@example.com", Role: domain.RoleBuyer}, nil)
			},
			expectedReq:   nil,
			expectedError: ErrUnauthorizedRole,
		},
		{
			name: "Missing account",
			prepareMock: func() {
				accounts.EXPECT().GetByEmail(gomock.Any(), "worker@example.com").
					Return(nil, accountservice.ErrAccountNotFound)
			},
			expectedReq:   nil,
			expectedError: accountservice.ErrAccountNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			req, err := service.RequestWithdrawal(context.Background(), "worker@example.com", 10, "bkash")

			if tt.expectedError != nil {
				assert.EqualError(t, err, tt.expectedError.Error())
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.expectedReq, req)
		})
	}
}

func TestSettle(t *testing.T) {
	service, repo, _, _ := NewMock(t)

	tests := []struct {
		name          string
		prepareMock   func()
		expectedError error
	}{
		{
			name: "Queued request is removed",
			prepareMock: func() {
				repo.EXPECT().Delete(gomock.Any(), 2).Return(true, nil)
			},
			expectedError: nil,
		},
		{
			name: "Missing request",
			prepareMock: func() {
				repo.EXPECT().Delete(gomock.Any(), 2).Return(false, nil)
			},
			expectedError: ErrWithdrawalNotFound,
		},
		{
			name: "Repository error",
			prepareMock: func() {
				repo.EXPECT().Delete(gomock.Any(), 2).Return(false, errors.New("database error"))
			},
			expectedError: errors.New("database error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			err := service.Settle(context.Background(), 2)

			if tt.expectedError != nil {
				assert.EqualError(t, err, tt.expectedError.Error())
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestGetWithdrawRequests(t *testing.T) {
	service, repo, _, _ := NewMock(t)
	now := time.Now()

	repo.EXPECT().FindAll(gomock.Any()).Return([]domain.WithdrawRequest{
		{ID: 2, WorkerEmail: "worker@example.com", Amount: 10, CreatedAt: now},
	}, nil)

	requests, err := service.GetWithdrawRequests(context.Background())
	assert.NoError(t, err)
	assert.Len(t, requests, 1)
	assert.Equal(t, int64(10), requests[0].Amount)
}

func TestPurchaseCoins(t *testing.T) {
	service, _, accounts, _ := NewMock(t)

	buyer := &domain.User{ID: 1, Email: "buyer@example.com", Role: domain.RoleBuyer, Coins: 50}

	tests := []struct {
		name          string
		prepareMock   func()
		expectedUser  *domain.User
		expectedError error
	}{
		{
			name: "Buyer balance grows by the purchase",
			prepareMock: func() {
				accounts.EXPECT().GetByEmail(gomock.Any(), "buyer@example.com").Return(buyer, nil)
				accounts.EXPECT().Credit(gomock.Any(), "buyer@example.com", int64(100)).Return(nil)
				accounts.EXPECT().GetByEmail(gomock.Any(), "buyer@example.com").
					Return(&domain.User{ID: 1, Email: "buyer@example.com", Role: domain.RoleBuyer, Coins: 150}, nil)
			},
			expectedUser:  &domain.User{ID: 1, Email: "buyer@example.com", Role: domain.RoleBuyer, Coins: 150},
			expectedError: nil,
		},
		{
			name: "Worker cannot purchase",
			prepareMock: func() {
				accounts.EXPECT().GetByEmail(gomock.Any(), "buyer@example.com").
					Return(&domain.User{ID: 2, Email: "buyer@example.com", Role: domain.RoleWorker}, nil)
			},
			expectedUser:  nil,
			expectedError: ErrUnauthorizedRole,
		},
		{
			name: "Failed credit",
			prepareMock: func() {
				accounts.EXPECT().GetByEmail(gomock.Any(), "buyer@example.com").Return(buyer, nil)
				accounts.EXPECT().Credit(gomock.Any(), "buyer@example.com", int64(100)).
					Return(errors.New("database error"))
			},
			expectedUser:  nil,
			expectedError: errors.New("database error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			user, err := service.PurchaseCoins(context.Background(), "buyer@example.com", 100)

			if tt.expectedError != nil {
				assert.EqualError(t, err, tt.expectedError.Error())
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.expectedUser, user)
		})
	}
}
