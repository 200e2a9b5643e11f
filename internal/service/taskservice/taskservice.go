package taskservice

import (
	"context"
	"errors"
	"time"

	"github.com/taskhive/server/internal/domain"
	"github.com/taskhive/server/internal/pg"
	"go.uber.org/zap"
)

type Repo interface {
	Create(ctx context.Context, task *domain.Task) (*domain.Task, error)
	GetByID(ctx context.Context, id int) (*domain.Task, error)
	FindByBuyerEmail(ctx context.Context, email string) ([]domain.Task, error)
	FindAll(ctx context.Context) ([]domain.Task, error)
	UpdateMetadata(ctx context.Context, task *domain.Task) (*domain.Task, error)
	DrainEscrow(ctx context.Context, id int, amount int64) (bool, error)
	DeleteOpen(ctx context.Context, id int) (*domain.Task, error)
}

type AccountService interface {
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Debit(ctx context.Context, email string, amount int64) error
	Credit(ctx context.Context, email string, amount int64) error
}

// Service owns the task escrow: coins move from the buyer into the task at
// creation and leave it only through Release (payout) or Cancel (refund).
type Service struct {
	repo      Repo
	accounts  AccountService
	txManager pg.TXManager
}

func New(repo Repo, accounts AccountService, txManager pg.TXManager) *Service {
	return &Service{
		repo:      repo,
		accounts:  accounts,
		txManager: txManager,
	}
}

var (
	ErrUnauthorizedRole = errors.New("unauthorized action")
	ErrTaskNotFound     = errors.New("task not found")
	ErrEscrowExhausted  = errors.New("task escrow exhausted")
	ErrNotCancellable   = errors.New("task has approved submissions")
	ErrInvalidTask      = errors.New("required workers and payable amount must be positive")
)

type CreateTaskParams struct {
	Title           string
	Detail          string
	RequiredWorkers int
	PayableAmount   int64
	CompletionDate  time.Time
	SubmissionInfo  string
	ImageURL        string
	BuyerEmail      string
}

// CreateTask funds the escrow and persists the task as one transaction: a
// deducted balance without a task record (or the reverse) can never be
// observed, not even across a crash.
func (s *Service) CreateTask(ctx context.Context, params CreateTaskParams) (*domain.Task, error) {
	if params.RequiredWorkers <= 0 || params.PayableAmount <= 0 {
		return nil, ErrInvalidTask
	}

	buyer, err := s.accounts.GetByEmail(ctx, params.BuyerEmail)
	if err != nil {
		return nil, err
	}
	if buyer.Role != domain.RoleBuyer {
		zap.L().Info("task creation refused, not a buyer", zap.String("email", params.BuyerEmail))
		return nil, ErrUnauthorizedRole
	}

	totalPayable := int64(params.RequiredWorkers) * params.PayableAmount
	task := &domain.Task{
		Title:           params.Title,
		Detail:          params.Detail,
		RequiredWorkers: params.RequiredWorkers,
		PayableAmount:   params.PayableAmount,
		TotalPayable:    totalPayable,
		CompletionDate:  params.CompletionDate,
		SubmissionInfo:  params.SubmissionInfo,
		ImageURL:        params.ImageURL,
		BuyerID:         buyer.ID,
		BuyerEmail:      buyer.Email,
		BuyerName:       buyer.Name,
	}

	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		if err := s.accounts.Debit(ctx, buyer.Email, totalPayable); err != nil {
			return err
		}
		task, err = s.repo.Create(ctx, task)
		return err
	})
	if err != nil {
		return nil, err
	}

	zap.L().Info("task funded",
		zap.Int("task_id", task.ID), zap.String("buyer", buyer.Email), zap.Int64("escrow", totalPayable))
	return task, nil
}

func (s *Service) GetTask(ctx context.Context, id int) (*domain.Task, error) {
	task, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, ErrTaskNotFound
	}
	return task, nil
}

func (s *Service) GetTasksByBuyer(ctx context.Context, email string) ([]domain.Task, error) {
	tasks, err := s.repo.FindByBuyerEmail(ctx, email)
	if err != nil {
		zap.L().Error("failed to get buyer tasks", zap.Error(err))
		return nil, err
	}
	return tasks, nil
}

func (s *Service) GetAllTasks(ctx context.Context) ([]domain.Task, error) {
	tasks, err := s.repo.FindAll(ctx)
	if err != nil {
		zap.L().Error("failed to get tasks", zap.Error(err))
		return nil, err
	}
	return tasks, nil
}

type UpdateTaskParams struct {
	Title          string
	Detail         string
	CompletionDate time.Time
	SubmissionInfo string
	ImageURL       string
}

// UpdateTask edits descriptive fields only; required_workers, payable_amount
// and the escrowed balance are immutable after funding.
func (s *Service) UpdateTask(ctx context.Context, id int, params UpdateTaskParams) (*domain.Task, error) {
	task := &domain.Task{
		ID:             id,
		Title:          params.Title,
		Detail:         params.Detail,
		CompletionDate: params.CompletionDate,
		SubmissionInfo: params.SubmissionInfo,
		ImageURL:       params.ImageURL,
	}
	updated, err := s.repo.UpdateMetadata(ctx, task)
	if err != nil {
		zap.L().Error("failed to update task", zap.Error(err))
		return nil, err
	}
	if updated == nil {
		return nil, ErrTaskNotFound
	}
	return updated, nil
}

// Release drains one payout from the task escrow and credits the worker,
// inside the caller's transaction when one is open. The guarded decrement is
// the backstop against overpaying past total_payable: tasks stay open after
// full staffing, so extra approvals surface here as ErrEscrowExhausted.
func (s *Service) Release(ctx context.Context, taskID int, workerEmail string, amount int64) error {
	return s.txManager.Begin(ctx, func(ctx context.Context) error {
		ok, err := s.repo.DrainEscrow(ctx, taskID, amount)
		if err != nil {
			return err
		}
		if !ok {
			task, err := s.repo.GetByID(ctx, taskID)
			if err != nil {
				return err
			}
			if task == nil {
				return ErrTaskNotFound
			}
			zap.L().Warn("escrow release refused",
				zap.Int("task_id", taskID), zap.Int64("amount", amount), zap.Int64("remaining", task.EscrowRemaining))
			return ErrEscrowExhausted
		}
		return s.accounts.Credit(ctx, workerEmail, amount)
	})
}

// Cancel deletes a task that has no approved submissions yet and refunds the
// full remaining escrow to the buyer, as one transaction.
func (s *Service) Cancel(ctx context.Context, id int) (int64, error) {
	var refund int64
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		deleted, err := s.repo.DeleteOpen(ctx, id)
		if err != nil {
			return err
		}
		if deleted == nil {
			task, err := s.repo.GetByID(ctx, id)
			if err != nil {
				return err
			}
			if task == nil {
				return ErrTaskNotFound
			}
			return ErrNotCancellable
		}
		refund = deleted.EscrowRemaining
		if refund > 0 {
			if err := s.accounts.Credit(ctx, deleted.BuyerEmail, refund); err != nil {
				return err
			}
		}
		zap.L().Info("task cancelled",
			zap.Int("task_id", id), zap.String("buyer", deleted.BuyerEmail), zap.Int64("refund", refund))
		return nil
	})
	if err != nil {
		return 0, err
	}
	return refund, nil
}
