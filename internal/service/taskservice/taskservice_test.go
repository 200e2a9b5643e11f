package taskservice

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/taskhive/server/internal/domain"
	"github.com/taskhive/server/internal/pg"
)

func NewMock(t *testing.T) (*Service, *MockRepo, *MockAccountService, *pg.MockTXManager) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepo(ctrl)
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

func TestCreateTask(t *testing.T) {
	service, repo, accounts, txManager := NewMock(t)

	buyer := &domain.User{ID: 1, Email: "buyer@example.com", Name: "Buyer", Role: domain.RoleBuyer, Coins: 50}
	params := CreateTaskParams{
		Title:           "Watch video",
		RequiredWorkers: 2,
		PayableAmount:   20,
		BuyerEmail:      "buyer@example.com",
	}

	tests := []struct {
		name          string
		params        CreateTaskParams
		prepareMock   func()
		expectedTask  *domain.Task
		expectedError error
	}{
		{
			name:   "Debit and task creation succeed together",
			params: params,
			prepareMock: func() {
				accounts.EXPECT().GetByEmail(gomock.Any(), "buyer@example.com").Return(buyer, nil)
				passThrough(txManager)
				accounts.EXPECT().Debit(gomock.Any(), "buyer@example.com", int64(40)).Return(nil)
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, task *domain.Task) (*domain.Task, error) {
					task.ID = 3
					task.EscrowRemaining = task.TotalPayable
					return task, nil
				})
			},
			expectedTask: &domain.Task{
				ID:              3,
				Title:           "Watch video",
				RequiredWorkers: 2,
				PayableAmount:   20,
				TotalPayable:    40,
				EscrowRemaining: 40,
				BuyerID:         1,
				BuyerEmail:      "buyer@example.com",
				BuyerName:       "Buyer",
			},
			expectedError: nil,
		},
		{
			name:   "Refused debit aborts the whole creation",
			params: params,
			prepareMock: func() {
				accounts.EXPECT().GetByEmail(gomock.Any(), "buyer@example.com").Return(buyer, nil)
				passThrough(txManager)
				accounts.EXPECT().Debit(gomock.Any(), "buyer@example.com", int64(40)).
					Return(errors.New("insufficient funds"))
			},
			expectedTask:  nil,
			expectedError: errors.New("insufficient funds"),
		},
		{
			name:   "Worker cannot fund tasks",
			params: params,
			prepareMock: func() {
				accounts.EXPECT().GetByEmail(gomock.Any(), "buyer@example.com").
					Return(&domain.User{ID: 2, Email: "buyer@example.com", Role: domain.RoleWorker}, nil)
			},
			expectedTask:  nil,
			expectedError: ErrUnauthorizedRole,
		},
		{
			name: "Zero workers is invalid",
			params: CreateTaskParams{
				Title:           "Watch video",
				RequiredWorkers: 0,
				PayableAmount:   20,
				BuyerEmail:      "buyer@example.com",
			},
			prepareMock:   func() {},
			expectedTask:  nil,
			expectedError: ErrInvalidTask,
		},
		{
			name: "Negative payable amount is invalid",
			params: CreateTaskParams{
				Title:           "Watch video",
				RequiredWorkers: 2,
				PayableAmount:   -1,
				BuyerEmail:      "buyer@example.com",
			},
			prepareMock:   func() {},
			expectedTask:  nil,
			expectedError: ErrInvalidTask,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			task, err := service.CreateTask(context.Background(), tt.params)

			if tt.expectedError != nil {
				assert.EqualError(t, err, tt.expectedError.Error())
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.expectedTask, task)
		})
	}
}

func TestGetTask(t *testing.T) {
	service, repo, _, _ := NewMock(t)

	tests := []struct {
		name          string
		prepareMock   func()
		expectedTask  *domain.Task
		expectedError error
	}{
		{
			name: "Existing task is returned",
			prepareMock: func() {
				repo.EXPECT().GetByID(gomock.Any(), 3).Return(&domain.Task{ID: 3}, nil)
			},
			expectedTask:  &domain.Task{ID: 3},
			expectedError: nil,
		},
		{
			name: "Missing task",
			prepareMock: func() {
				repo.EXPECT().GetByID(gomock.Any(), 3).Return(nil, nil)
			},
			expectedTask:  nil,
			expectedError: ErrTaskNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			task, err := service.GetTask(context.Background(), 3)

			if tt.expectedError != nil {
				assert.EqualError(t, err, tt.expectedError.Error())
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.expectedTask, task)
		})
	}
}

func TestUpdateTask(t *testing.T) {
	service, repo, _, _ := NewMock(t)

	tests := []struct {
		name          string
		prepareMock   func()
		expectedTask  *domain.Task
		expectedError error
	}{
		{
			name: "Metadata is updated",
			prepareMock: func() {
				repo.EXPECT().UpdateMetadata(gomock.Any(), gomock.Any()).
					Return(&domain.Task{ID: 3, Title: "New title", TotalPayable: 40, EscrowRemaining: 40}, nil)
			},
			expectedTask:  &domain.Task{ID: 3, Title: "New title", TotalPayable: 40, EscrowRemaining: 40},
			expectedError: nil,
		},
		{
			name: "Missing task",
			prepareMock: func() {
				repo.EXPECT().UpdateMetadata(gomock.Any(), gomock.Any()).Return(nil, nil)
			},
			expectedTask:  nil,
			expectedError: ErrTaskNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			task, err := service.UpdateTask(context.Background(), 3, UpdateTaskParams{Title: "New title"})

			if tt.expectedError != nil {
				assert.EqualError(t, err, tt.expectedError.Error())
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.expectedTask, task)
		})
	}
}

func TestRelease(t *testing.T) {
	service, repo, accounts, txManager := NewMock(t)

	tests := []struct {
		name          string
		prepareMock   func()
		expectedError error
	}{
		{
			name: "Escrow drain and worker credit succeed together",
			prepareMock: func() {
				passThrough(txManager)
				repo.EXPECT().DrainEscrow(gomock.Any(), 3, int64(20)).Return(true, nil)
				accounts.EXPECT().Credit(gomock.Any(), "worker@example.com", int64(20)).Return(nil)
			},
			expectedError: nil,
		},
		{
			name: "Exhausted escrow pays nobody",
			prepareMock: func() {
				passThrough(txManager)
				repo.EXPECT().DrainEscrow(gomock.Any(), 3, int64(20)).Return(false, nil)
				repo.EXPECT().GetByID(gomock.Any(), 3).
					Return(&domain.Task{ID: 3, EscrowRemaining: 0}, nil)
			},
			expectedError: ErrEscrowExhausted,
		},
		{
			name: "Missing task",
			prepareMock: func() {
				passThrough(txManager)
				repo.EXPECT().DrainEscrow(gomock.Any(), 3, int64(20)).Return(false, nil)
				repo.EXPECT().GetByID(gomock.Any(), 3).Return(nil, nil)
			},
			expectedError: ErrTaskNotFound,
		},
		{
			name: "Failed credit rolls the drain back",
			prepareMock: func() {
				passThrough(txManager)
				repo.EXPECT().DrainEscrow(gomock.Any(), 3, int64(20)).Return(true, nil)
				accounts.EXPECT().Credit(gomock.Any(), "worker@example.com", int64(20)).
					Return(errors.New("database error"))
			},
			expectedError: errors.New("database error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			err := service.Release(context.Background(), 3, "worker@example.com", 20)

			if tt.expectedError != nil {
				assert.EqualError(t, err, tt.expectedError.Error())
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCancel(t *testing.T) {
	service, repo, accounts, txManager := NewMock(t)

	tests := []struct {
		name           string
		prepareMock    func()
		expectedRefund int64
		expectedError  error
	}{
		{
			name: "Open task is deleted and the escrow refunded",
			prepareMock: func() {
				passThrough(txManager)
				repo.EXPECT().DeleteOpen(gomock.Any(), 3).
					Return(&domain.Task{ID: 3, BuyerEmail: "buyer@example.com", EscrowRemaining: 40}, nil)
				accounts.EXPECT().Credit(gomock.Any(), "buyer@example.com", int64(40)).Return(nil)
			},
			expectedRefund: 40,
			expectedError:  nil,
		},
		{
			name: "Task with approvals is not cancellable",
			prepareMock: func() {
				passThrough(txManager)
				repo.EXPECT().DeleteOpen(gomock.Any(), 3).Return(nil, nil)
				repo.EXPECT().GetByID(gomock.Any(), 3).
					Return(&domain.Task{ID: 3, ApprovedCount: 1}, nil)
			},
			expectedRefund: 0,
			expectedError:  ErrNotCancellable,
		},
		{
			name: "Missing task",
			prepareMock: func() {
				passThrough(txManager)
				repo.EXPECT().DeleteOpen(gomock.Any(), 3).Return(nil, nil)
				repo.EXPECT().GetByID(gomock.Any(), 3).Return(nil, nil)
			},
			expectedRefund: 0,
			expectedError:  ErrTaskNotFound,
		},
		{
			name: "Failed refund rolls the deletion back",
			prepareMock: func() {
				passThrough(txManager)
				repo.EXPECT().DeleteOpen(gomock.Any(), 3).
					Return(&domain.Task{ID: 3, BuyerEmail: "buyer@example.com", EscrowRemaining: 40}, nil)
				accounts.EXPECT().Credit(gomock.Any(), "buyer@example.com", int64(40)).
					Return(errors.New("database error"))
			},
			expectedRefund: 0,
			expectedError:  errors.New("database error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			refund, err := service.Cancel(context.Background(), 3)

			if tt.expectedError != nil {
				assert.EqualError(t, err, tt.expectedError.Error())
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.expectedRefund, refund)
		})
	}
}
