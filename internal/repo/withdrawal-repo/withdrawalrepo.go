package withdrawalrepo

import (
	"context"
	"time"

	"github.com/taskhive/server/internal/domain"
	"github.com/taskhive/server/internal/pg"
	"go.uber.org/zap"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) Create(ctx context.Context, req *domain.WithdrawRequest) (*domain.WithdrawRequest, error) {
	query := `
		INSERT INTO withdraw_requests (worker_email, worker_name, amount, method)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`
	err := r.db.QueryRow(ctx, query, req.WorkerEmail, req.WorkerName, req.Amount, req.Method).
		Scan(&req.ID, &req.CreatedAt)
	if err != nil {
		zap.L().Error("can't save withdraw request", zap.Error(err))
		return nil, err
	}
	return req, nil
}

func (r *Repository) FindAll(ctx context.Context) ([]domain.WithdrawRequest, error) {
	query := `
        SELECT id, worker_email, worker_name, amount, method, created_at
        FROM withdraw_requests
        ORDER BY created_at DESC
    `
	return r.findMany(ctx, query)
}

// FindOlderThan lists requests still awaiting settlement that were created
// before cutoff, oldest first.
func (r *Repository) FindOlderThan(ctx context.Context, cutoff time.Time, limit uint32) ([]domain.WithdrawRequest, error) {
	query := `
        SELECT id, worker_email, worker_name, amount, method, created_at
        FROM withdraw_requests
        WHERE created_at < $1
        ORDER BY created_at ASC
        LIMIT $2
    `
	return r.findMany(ctx, query, cutoff, int(limit))
}

func (r *Repository) findMany(ctx context.Context, query string, args ...any) ([]domain.WithdrawRequest, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("can't get withdraw requests", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var requests []domain.WithdrawRequest
	for rows.Next() {
		var req domain.WithdrawRequest
		err := rows.Scan(&req.ID, &req.WorkerEmail, &req.WorkerName, &req.Amount, &req.Method, &req.CreatedAt)
		if err != nil {
			zap.L().Error("can't scan withdraw request row", zap.Error(err))
			return nil, err
		}
		requests = append(requests, req)
	}
	return requests, nil
}

// Delete removes a settled request; the coins were debited when the request
// was recorded, so no ledger action accompanies this.
func (r *Repository) Delete(ctx context.Context, id int) (bool, error) {
	query := `
        DELETE FROM withdraw_requests
        WHERE id = $1
    `
	tag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		zap.L().Error("can't delete withdraw request", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
