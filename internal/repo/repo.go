package repo

import (
	"github.com/taskhive/server/internal/pg"
	"github.com/taskhive/server/internal/reconciler"
	accountrepo "github.com/taskhive/server/internal/repo/account-repo"
	submissionrepo "github.com/taskhive/server/internal/repo/submission-repo"
	taskrepo "github.com/taskhive/server/internal/repo/task-repo"
	withdrawalrepo "github.com/taskhive/server/internal/repo/withdrawal-repo"
	"github.com/taskhive/server/internal/service/accountservice"
	"github.com/taskhive/server/internal/service/submissionservice"
	"github.com/taskhive/server/internal/service/taskservice"
	"github.com/taskhive/server/internal/service/walletservice"
)

type Repositories struct {
	AccountRepo    accountservice.Repo
	TaskRepo       taskservice.Repo
	SubmissionRepo submissionservice.Repo
	WithdrawalRepo walletservice.WithdrawalRepo

	// WithdrawalQueue is the same store as WithdrawalRepo, seen through the
	// reconciler's read-only window.
	WithdrawalQueue reconciler.Repo
}

func New(conn pg.Database) *Repositories {
	accountRepo := accountrepo.New(conn)
	taskRepo := taskrepo.New(conn)
	submissionRepo := submissionrepo.New(conn)
	withdrawalRepo := withdrawalrepo.New(conn)

	return &Repositories{
		AccountRepo:     accountRepo,
		TaskRepo:        taskRepo,
		SubmissionRepo:  submissionRepo,
		WithdrawalRepo:  withdrawalRepo,
		WithdrawalQueue: withdrawalRepo,
	}
}
