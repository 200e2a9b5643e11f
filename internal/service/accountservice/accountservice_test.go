package accountservice

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/taskhive/server/internal/domain"
)

func NewMock(t *testing.T) (*Service, *MockRepo) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepo(ctrl)
	service := New(repo)
	defer ctrl.Finish()
	return service, repo
}

func TestGetByEmail(t *testing.T) {
	service, repo := NewMock(t)

	tests := []struct {
		name          string
		email         string
		prepareMock   func()
		expectedUser  *domain.User
		expectedError error
	}{
		{
			name:  "Existing account is returned",
			email: "buyer@example.com",
			prepareMock: func() {
				repo.EXPECT().GetByEmail(gomock.Any(), "buyer@example.com").
					Return(&domain.User{ID: 1, Email: "buyer@example.com", Coins: 50}, nil)
			},
			expectedUser:  &domain.User{ID: 1, Email: "buyer@example.com", Coins: 50},
			expectedError: nil,
		},
		{
			name:  "Unknown account",
			email: "nobody@example.com",
			prepareMock: func() {
				repo.EXPECT().GetByEmail(gomock.Any(), "nobody@example.com").Return(nil, nil)
			},
			expectedUser:  nil,
			expectedError: ErrAccountNotFound,
		},
		{
			name:  "Repository error",
			email: "buyer@example.com",
			prepareMock: func() {
				repo.EXPECT().GetByEmail(gomock.Any(), "buyer@example.com").Return(nil, errors.New("database error"))
			},
			expectedUser:  nil,
			expectedError: errors.New("database error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			user, err := service.GetByEmail(context.Background(), tt.email)

			if tt.expectedError != nil {
				assert.EqualError(t, err, tt.expectedError.Error())
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.expectedUser, user)
		})
	}
}

func TestDebit(t *testing.T) {
	service, repo := NewMock(t)

	tests := []struct {
		name          string
		amount        int64
		prepareMock   func()
		expectedError error
	}{
		{
			name:   "Sufficient balance is debited",
			amount: 40,
			prepareMock: func() {
				repo.EXPECT().Debit(gomock.Any(), "buyer@example.com", int64(40)).Return(true, nil)
			},
			expectedError: nil,
		},
		{
			name:          "Non-positive amount is refused",
			amount:        0,
			prepareMock:   func() {},
			expectedError: ErrInvalidAmount,
		},
		{
			name:   "Refused debit on existing account means insufficient funds",
			amount: 1000,
			prepareMock: func() {
				repo.EXPECT().Debit(gomock.Any(), "buyer@example.com", int64(1000)).Return(false, nil)
				repo.EXPECT().GetByEmail(gomock.Any(), "buyer@example.com").
					Return(&domain.User{ID: 1, Email: "buyer@example.com", Coins: 50}, nil)
			},
			expectedError: ErrInsufficientFunds,
		},
		{
			name:   "Refused debit on missing account",
			amount: 40,
			prepareMock: func() {
				repo.EXPECT().Debit(gomock.Any(), "buyer@example.com", int64(40)).Return(false, nil)
				repo.EXPECT().GetByEmail(gomock.Any(), "buyer@example.com").Return(nil, nil)
			},
			expectedError: ErrAccountNotFound,
		},
		{
			name:   "Repository error",
			amount: 40,
			prepareMock: func() {
				repo.EXPECT().Debit(gomock.Any(), "buyer@example.com", int64(40)).Return(false, errors.New("database error"))
			},
			expectedError: errors.New("database error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			err := service.Debit(context.Background(), "buyer@example.com", tt.amount)

			if tt.expectedError != nil {
				assert.EqualError(t, err, tt.expectedError.Error())
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCredit(t *testing.T) {
	service, repo := NewMock(t)

	tests := []struct {
		name          string
		amount        int64
		prepareMock   func()
		expectedError error
	}{
		{
			name:   "Existing account is credited",
			amount: 20,
			prepareMock: func() {
				repo.EXPECT().Credit(gomock.Any(), "worker@example.com", int64(20)).Return(true, nil)
			},
			expectedError: nil,
		},
		{
			name:          "Non-positive amount is refused",
			amount:        -5,
			prepareMock:   func() {},
			expectedError: ErrInvalidAmount,
		},
		{
			name:   "Missing account",
			amount: 20,
			prepareMock: func() {
				repo.EXPECT().Credit(gomock.Any(), "worker@example.com", int64(20)).Return(false, nil)
			},
			expectedError: ErrAccountNotFound,
		},
		{
			name:   "Repository error",
			amount: 20,
			prepareMock: func() {
				repo.EXPECT().Credit(gomock.Any(), "worker@example.com", int64(20)).Return(false, errors.New("database error"))
			},
			expectedError: errors.New("database error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			err := service.Credit(context.Background(), "worker@example.com", tt.amount)

			if tt.expectedError != nil {
				assert.EqualError(t, err, tt.expectedError.Error())
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
