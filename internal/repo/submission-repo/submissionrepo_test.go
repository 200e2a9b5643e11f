package submissionrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"

	"github.com/taskhive/server/internal/domain"
)

var submissionRows = []string{
	"id", "task_id", "task_title", "buyer_email", "worker_email", "worker_name",
	"proof", "status", "created_at",
}

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()

	return repo, mockDB
}

func addSubmissionRow(rows *pgxmock.Rows, s *domain.Submission) *pgxmock.Rows {
	return rows.AddRow(
		s.ID, s.TaskID, s.TaskTitle, s.BuyerEmail, s.WorkerEmail, s.WorkerName,
		s.Proof, s.Status, s.CreatedAt,
	)
}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	query := regexp.QuoteMeta(`
        INSERT INTO submissions (task_id, task_title, buyer_email, worker_email, worker_name, proof, status)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING id, created_at
    `)

	sub := &domain.Submission{
		TaskID:      3,
		TaskTitle:   "Watch video",
		BuyerEmail:  "buyer@example.com",
		WorkerEmail: "worker@example.com",
		WorkerName:  "Worker",
		Proof:       "screenshot.png",
		Status:      domain.PendingSubmissionStatus,
	}

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
	}{
		{
			name: "Successfully creates submission",
			mockSetup: func() {
				mock.ExpectQuery(query).
					WithArgs(3, "Watch video", "buyer@example.com", "worker@example.com", "Worker", "screenshot.png", "pending").
					WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(5, now))
			},
			expectErr: false,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(query).
					WithArgs(3, "Watch video", "buyer@example.com", "worker@example.com", "Worker", "screenshot.png", "pending").
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.Create(context.Background(), sub)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, 5, result.ID)
			}
		})
	}
}

func TestRepository_GetByID(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	query := regexp.QuoteMeta(`
        SELECT ` + submissionColumns + `
        FROM submissions
        WHERE id = $1
    `)

	sub := &domain.Submission{
		ID: 5, TaskID: 3, TaskTitle: "Watch video", BuyerEmail: "buyer@example.com",
		WorkerEmail: "worker@example.com", WorkerName: "Worker", Proof: "screenshot.png",
		Status: domain.PendingSubmissionStatus, CreatedAt: now,
	}

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		result    *domain.Submission
	}{
		{
			name: "Existing submission is returned",
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs(5).
					WillReturnRows(addSubmissionRow(pgxmock.NewRows(submissionRows), sub))
			},
			expectErr: false,
			result:    sub,
		},
		{
			name: "Missing submission returns nil",
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs(5).WillReturnError(pgx.ErrNoRows)
			},
			expectErr: false,
			result:    nil,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs(5).WillReturnError(errors.New("database error"))
			},
			expectErr: true,
			result:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.GetByID(context.Background(), 5)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.result, result)
		})
	}
}

func TestRepository_FindByWorkerEmail(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	query := regexp.QuoteMeta(`
        SELECT ` + submissionColumns + `
        FROM submissions
        WHERE worker_email = $1
        ORDER BY created_at DESC
    `)

	first := &domain.Submission{ID: 6, TaskID: 4, WorkerEmail: "worker@example.com", Status: "pending", CreatedAt: now}
	second := &domain.Submission{ID: 5, TaskID: 3, WorkerEmail: "worker@example.com", Status: "approved", CreatedAt: now.Add(-time.Hour)}

	mock.ExpectQuery(query).WithArgs("worker@example.com").
		WillReturnRows(addSubmissionRow(addSubmissionRow(pgxmock.NewRows(submissionRows), first), second))

	subs, err := repo.FindByWorkerEmail(context.Background(), "worker@example.com")
	assert.NoError(t, err)
	assert.Len(t, subs, 2)
	assert.Equal(t, 6, subs[0].ID)
	assert.Equal(t, 5, subs[1].ID)
}

func TestRepository_FindByTaskID(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	query := regexp.QuoteMeta(`
        SELECT ` + submissionColumns + `
        FROM submissions
        WHERE task_id = $1
        ORDER BY created_at DESC
    `)

	sub := &domain.Submission{ID: 5, TaskID: 3, WorkerEmail: "worker@example.com", Status: "pending", CreatedAt: now}

	mock.ExpectQuery(query).WithArgs(3).
		WillReturnRows(addSubmissionRow(pgxmock.NewRows(submissionRows), sub))

	subs, err := repo.FindByTaskID(context.Background(), 3)
	assert.NoError(t, err)
	assert.Len(t, subs, 1)
	assert.Equal(t, 5, subs[0].ID)
}

func TestRepository_TransitionFromPending(t *testing.T) {
	repo, mock := NewMock(t)

	query := regexp.QuoteMeta(`
        UPDATE submissions
        SET status = $1
        WHERE id = $2 AND status = 'pending'
    `)

	tests := []struct {
		name      string
		status    string
		mockSetup func()
		expectErr bool
		expected  bool
	}{
		{
			name:   "Pending submission moves to approved",
			status: domain.ApprovedSubmissionStatus,
			mockSetup: func() {
				mock.ExpectExec(query).WithArgs("approved", 5).
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
			},
			expectErr: false,
			expected:  true,
		},
		{
			name:   "Decided submission stays put",
			status: domain.RejectedSubmissionStatus,
			mockSetup: func() {
				mock.ExpectExec(query).WithArgs("rejected", 5).
					WillReturnResult(pgxmock.NewResult("UPDATE", 0))
			},
			expectErr: false,
			expected:  false,
		},
		{
			name:   "Database error",
			status: domain.ApprovedSubmissionStatus,
			mockSetup: func() {
				mock.ExpectExec(query).WithArgs("approved", 5).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
			expected:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			ok, err := repo.TransitionFromPending(context.Background(), 5, tt.status)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.expected, ok)
		})
	}
}
