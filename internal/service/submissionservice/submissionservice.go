package submissionservice

import (
	"context"
	"errors"

	"github.com/taskhive/server/internal/domain"
	"github.com/taskhive/server/internal/pg"
	"go.uber.org/zap"
)

type Repo interface {
	Create(ctx context.Context, sub *domain.Submission) (*domain.Submission, error)
	GetByID(ctx context.Context, id int) (*domain.Submission, error)
	FindByWorkerEmail(ctx context.Context, email string) ([]domain.Submission, error)
	FindByTaskID(ctx context.Context, taskID int) ([]domain.Submission, error)
	FindAll(ctx context.Context) ([]domain.Submission, error)
	TransitionFromPending(ctx context.Context, id int, status string) (bool, error)
}

type TaskEscrow interface {
	GetTask(ctx context.Context, id int) (*domain.Task, error)
	Release(ctx context.Context, taskID int, workerEmail string, amount int64) error
}

// Service drives the submission state machine: pending is the only initial
// state, approved and rejected are terminal, and an approval pays out exactly
// once.
type Service struct {
	repo      Repo
	escrow    TaskEscrow
	txManager pg.TXManager
}

func New(repo Repo, escrow TaskEscrow, txManager pg.TXManager) *Service {
	return &Service{
		repo:      repo,
		escrow:    escrow,
		txManager: txManager,
	}
}

var (
	ErrSubmissionNotFound = errors.New("submission not found")
	ErrAlreadyProcessed   = errors.New("submission already processed")
	ErrInvalidStatus      = errors.New("status must be approved or rejected")
)

// Submit records a pending submission against an existing task. No ledger
// effect until the buyer decides.
func (s *Service) Submit(ctx context.Context, taskID int, workerEmail, workerName, proof string) (*domain.Submission, error) {
	task, err := s.escrow.GetTask(ctx, taskID)
	if err != nil {
		return nil, err
	}

	sub := &domain.Submission{
		TaskID:      task.ID,
		TaskTitle:   task.Title,
		BuyerEmail:  task.BuyerEmail,
		WorkerEmail: workerEmail,
		WorkerName:  workerName,
		Proof:       proof,
		Status:      domain.PendingSubmissionStatus,
	}

	sub, err = s.repo.Create(ctx, sub)
	if err != nil {
		zap.L().Error("can't save submission", zap.Error(err))
		return nil, err
	}
	return sub, nil
}

// Decide moves a pending submission to a terminal state. The compare-and-swap
// transition and the escrow release run in one transaction: a submission can
// never read approved while the payout did not happen, and a replayed decision
// gets ErrAlreadyProcessed with no ledger effect.
func (s *Service) Decide(ctx context.Context, id int, status string) (*domain.Submission, error) {
	if status != domain.ApprovedSubmissionStatus && status != domain.RejectedSubmissionStatus {
		return nil, ErrInvalidStatus
	}

	sub, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if sub == nil {
		return nil, ErrSubmissionNotFound
	}

	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		ok, err := s.repo.TransitionFromPending(ctx, id, status)
		if err != nil {
			return err
		}
		if !ok {
			zap.L().Info("decision replay refused",
				zap.Int("submission_id", id), zap.String("status", sub.Status))
			return ErrAlreadyProcessed
		}
		if status == domain.ApprovedSubmissionStatus {
			task, err := s.escrow.GetTask(ctx, sub.TaskID)
			if err != nil {
				return err
			}
			return s.escrow.Release(ctx, task.ID, sub.WorkerEmail, task.PayableAmount)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sub.Status = status
	zap.L().Info("submission decided",
		zap.Int("submission_id", id), zap.String("status", status), zap.String("worker", sub.WorkerEmail))
	return sub, nil
}

func (s *Service) GetByWorker(ctx context.Context, email string) ([]domain.Submission, error) {
	subs, err := s.repo.FindByWorkerEmail(ctx, email)
	if err != nil {
		zap.L().Error("failed to get worker submissions", zap.Error(err))
		return nil, err
	}
	return subs, nil
}

func (s *Service) GetByTask(ctx context.Context, taskID int) ([]domain.Submission, error) {
	subs, err := s.repo.FindByTaskID(ctx, taskID)
	if err != nil {
		zap.L().Error("failed to get task submissions", zap.Error(err))
		return nil, err
	}
	return subs, nil
}

func (s *Service) GetAll(ctx context.Context) ([]domain.Submission, error) {
	subs, err := s.repo.FindAll(ctx)
	if err != nil {
		zap.L().Error("failed to get submissions", zap.Error(err))
		return nil, err
	}
	return subs, nil
}
