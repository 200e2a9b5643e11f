package reconciler

import (
	"context"
	"sync"
	"time"

	"github.com/taskhive/server/internal/config"
	"github.com/taskhive/server/internal/domain"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Service periodically surfaces withdraw requests that sit unsettled for too
// long. Settlement itself stays an administrative action; this only gives
// operators visibility, it never touches the ledger.

const maxPendingAge = 24 * time.Hour

var inFlight sync.Map

type Repo interface {
	FindOlderThan(ctx context.Context, cutoff time.Time, limit uint32) ([]domain.WithdrawRequest, error)
}

type Service struct {
	repo          Repo
	limit         uint32
	workerPool    WorkerPoolI
	sweepInterval time.Duration
}

func New(cfg *config.Config, repo Repo) *Service {
	return &Service{
		repo:          repo,
		limit:         1000,
		workerPool:    NewWorkerPool(10),
		sweepInterval: time.Duration(cfg.ReconcileInterval) * time.Second,
	}
}

func (s *Service) Start(ctx context.Context) {
	zap.L().Info("Withdrawal reconciler started")
	go s.run(ctx)
}

func (s *Service) run(ctx context.Context) {
	ticker := time.NewTicker(s.sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("Context canceled, stopping reconciler")
			return
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

func (s *Service) sweep(ctx context.Context) {
	cutoff := time.Now().Add(-maxPendingAge)
	requests, err := s.repo.FindOlderThan(ctx, cutoff, s.limit)
	if err != nil {
		zap.L().Error("Failed to fetch stale withdraw requests", zap.Error(err))
		return
	}

	var g errgroup.Group
	for _, req := range requests {
		req := req

		if _, loaded := inFlight.LoadOrStore(req.ID, struct{}{}); loaded {
			continue
		}

		g.Go(func() error {
			err := s.workerPool.AddTask(ctx, func() error {
				defer inFlight.Delete(req.ID)
				return s.handleRequest(req)
			})
			if err != nil {
				inFlight.Delete(req.ID)
				return err
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		zap.L().Error("Error reconciling withdraw requests", zap.Error(err))
	}
}

func (s *Service) handleRequest(req domain.WithdrawRequest) error {
	zap.L().Warn("withdraw request awaiting settlement",
		zap.Int("request_id", req.ID),
		zap.String("worker", req.WorkerEmail),
		zap.Int64("amount", req.Amount),
		zap.Duration("age", time.Since(req.CreatedAt)),
	)
	return nil
}
