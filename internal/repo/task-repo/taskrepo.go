package taskrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/taskhive/server/internal/domain"
	"github.com/taskhive/server/internal/pg"
	"go.uber.org/zap"
)

const taskColumns = `id, title, detail, required_workers, payable_amount, total_payable, escrow_remaining, approved_count, completion_date, submission_info, image_url, buyer_id, buyer_email, buyer_name, created_at`

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func scanTask(row pgx.Row) (*domain.Task, error) {
	var t domain.Task
	err := row.Scan(&t.ID, &t.Title, &t.Detail, &t.RequiredWorkers, &t.PayableAmount, &t.TotalPayable,
		&t.EscrowRemaining, &t.ApprovedCount, &t.CompletionDate, &t.SubmissionInfo, &t.ImageURL,
		&t.BuyerID, &t.BuyerEmail, &t.BuyerName, &t.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *Repository) Create(ctx context.Context, task *domain.Task) (*domain.Task, error) {
	query := `
        INSERT INTO tasks (title, detail, required_workers, payable_amount, total_payable, escrow_remaining, completion_date, submission_info, image_url, buyer_id, buyer_email, buyer_name)
        VALUES ($1, $2, $3, $4, $5, $5, $6, $7, $8, $9, $10, $11)
        RETURNING id, created_at
    `
	err := r.db.QueryRow(ctx, query,
		task.Title, task.Detail, task.RequiredWorkers, task.PayableAmount, task.TotalPayable,
		task.CompletionDate, task.SubmissionInfo, task.ImageURL,
		task.BuyerID, task.BuyerEmail, task.BuyerName,
	).Scan(&task.ID, &task.CreatedAt)
	if err != nil {
		zap.L().Error("can't create task", zap.Error(err))
		return nil, err
	}
	task.EscrowRemaining = task.TotalPayable
	return task, nil
}

func (r *Repository) GetByID(ctx context.Context, id int) (*domain.Task, error) {
	query := `
        SELECT ` + taskColumns + `
        FROM tasks
        WHERE id = $1
    `
	task, err := scanTask(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't get task", zap.Error(err))
		return nil, err
	}
	return task, nil
}

func (r *Repository) FindByBuyerEmail(ctx context.Context, email string) ([]domain.Task, error) {
	query := `
        SELECT ` + taskColumns + `
        FROM tasks
        WHERE buyer_email = $1
        ORDER BY created_at DESC
    `
	return r.findMany(ctx, query, email)
}

func (r *Repository) FindAll(ctx context.Context) ([]domain.Task, error) {
	query := `
        SELECT ` + taskColumns + `
        FROM tasks
        ORDER BY created_at DESC
    `
	return r.findMany(ctx, query)
}

func (r *Repository) findMany(ctx context.Context, query string, args ...any) ([]domain.Task, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("can't get tasks", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var tasks []domain.Task
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			zap.L().Error("can't scan task row", zap.Error(err))
			return nil, err
		}
		tasks = append(tasks, *task)
	}
	return tasks, nil
}

// UpdateMetadata touches descriptive fields only; the monetary columns
// (payable_amount, total_payable, escrow_remaining, required_workers) are
// never part of the statement.
func (r *Repository) UpdateMetadata(ctx context.Context, task *domain.Task) (*domain.Task, error) {
	query := `
        UPDATE tasks
        SET title = $1, detail = $2, completion_date = $3, submission_info = $4, image_url = $5
        WHERE id = $6
        RETURNING ` + taskColumns + `
	`
	updated, err := scanTask(r.db.QueryRow(ctx, query,
		task.Title, task.Detail, task.CompletionDate, task.SubmissionInfo, task.ImageURL, task.ID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't update task", zap.Error(err))
		return nil, err
	}
	return updated, nil
}

// DrainEscrow is the guarded check-and-decrement on the task escrow: it fails
// (zero rows) when the remaining escrow is below amount, so concurrent releases
// can never jointly overpay past total_payable.
func (r *Repository) DrainEscrow(ctx context.Context, id int, amount int64) (bool, error) {
	query := `
        UPDATE tasks
        SET escrow_remaining = escrow_remaining - $1, approved_count = approved_count + 1
        WHERE id = $2 AND escrow_remaining >= $1
    `
	tag, err := r.db.Exec(ctx, query, amount, id)
	if err != nil {
		zap.L().Error("can't drain task escrow", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// DeleteOpen removes the task only while nothing has been approved against it
// and returns the deleted row so the caller can refund the remaining escrow.
func (r *Repository) DeleteOpen(ctx context.Context, id int) (*domain.Task, error) {
	query := `
        DELETE FROM tasks
        WHERE id = $1 AND approved_count = 0
        RETURNING ` + taskColumns + `
	`
	task, err := scanTask(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't delete task", zap.Error(err))
		return nil, err
	}
	return task, nil
}
