package submissionrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/taskhive/server/internal/domain"
	"github.com/taskhive/server/internal/pg"
	"go.uber.org/zap"
)

const submissionColumns = `id, task_id, task_title, buyer_email, worker_email, worker_name, proof, status, created_at`

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func scanSubmission(row pgx.Row) (*domain.Submission, error) {
	var s domain.Submission
	err := row.Scan(&s.ID, &s.TaskID, &s.TaskTitle, &s.BuyerEmail, &s.WorkerEmail, &s.WorkerName, &s.Proof, &s.Status, &s.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *Repository) Create(ctx context.Context, sub *domain.Submission) (*domain.Submission, error) {
	query := `
        INSERT INTO submissions (task_id, task_title, buyer_email, worker_email, worker_name, proof, status)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING id, created_at
    `
	err := r.db.QueryRow(ctx, query,
		sub.TaskID, sub.TaskTitle, sub.BuyerEmail, sub.WorkerEmail, sub.WorkerName, sub.Proof, sub.Status,
	).Scan(&sub.ID, &sub.CreatedAt)
	if err != nil {
		zap.L().Error("can't create submission", zap.Error(err))
		return nil, err
	}
	return sub, nil
}

func (r *Repository) GetByID(ctx context.Context, id int) (*domain.Submission, error) {
	query := `
        SELECT ` + submissionColumns + `
        FROM submissions
        WHERE id = $1
    `
	sub, err := scanSubmission(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't get submission", zap.Error(err))
		return nil, err
	}
	return sub, nil
}

func (r *Repository) FindByWorkerEmail(ctx context.Context, email string) ([]domain.Submission, error) {
	query := `
        SELECT ` + submissionColumns + `
        FROM submissions
        WHERE worker_email = $1
        ORDER BY created_at DESC
    `
	return r.findMany(ctx, query, email)
}

func (r *Repository) FindByTaskID(ctx context.Context, taskID int) ([]domain.Submission, error) {
	query := `
        SELECT ` + submissionColumns + `
        FROM submissions
        WHERE task_id = $1
        ORDER BY created_at DESC
    `
	return r.findMany(ctx, query, taskID)
}

func (r *Repository) FindAll(ctx context.Context) ([]domain.Submission, error) {
	query := `
        SELECT ` + submissionColumns + `
        FROM submissions
        ORDER BY created_at DESC
    `
	return r.findMany(ctx, query)
}

func (r *Repository) findMany(ctx context.Context, query string, args ...any) ([]domain.Submission, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("can't get submissions", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var subs []domain.Submission
	for rows.Next() {
		sub, err := scanSubmission(rows)
		if err != nil {
			zap.L().Error("can't scan submission row", zap.Error(err))
			return nil, err
		}
		subs = append(subs, *sub)
	}
	return subs, nil
}

// TransitionFromPending is the compare-and-swap out of the pending state.
// Zero rows means the submission was already decided (or never existed); the
// terminal states are one-way.
func (r *Repository) TransitionFromPending(ctx context.Context, id int, status string) (bool, error) {
	query := `
        UPDATE submissions
        SET status = $1
        WHERE id = $2 AND status = 'pending'
    `
	tag, err := r.db.Exec(ctx, query, status, id)
	if err != nil {
		zap.L().Error("can't transition submission status", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
