package service

import (
	"github.com/taskhive/server/internal/config"
	"github.com/taskhive/server/internal/handlers/auth"
	"github.com/taskhive/server/internal/handlers/submissions"
	"github.com/taskhive/server/internal/handlers/tasks"
	"github.com/taskhive/server/internal/handlers/wallet"

	pkgauth "github.com/taskhive/server/pkg/auth"

	"github.com/taskhive/server/internal/pg"
	"github.com/taskhive/server/internal/repo"
	"github.com/taskhive/server/internal/service/accountservice"
	"github.com/taskhive/server/internal/service/authservice"
	"github.com/taskhive/server/internal/service/submissionservice"
	"github.com/taskhive/server/internal/service/taskservice"
	"github.com/taskhive/server/internal/service/walletservice"
)

type Services struct {
	AuthService       auth.Service
	TaskService       tasks.Service
	SubmissionService submissions.Service
	WalletService     wallet.Service
}

func New(cfg *config.Config, repo *repo.Repositories, txManager pg.TXManager) *Services {
	accountService := accountservice.New(repo.AccountRepo)
	taskService := taskservice.New(repo.TaskRepo, accountService, txManager)
	submissionService := submissionservice.New(repo.SubmissionRepo, taskService, txManager)
	walletService := walletservice.New(repo.WithdrawalRepo, accountService, txManager)
	authService := authservice.New(cfg, repo.AccountRepo, &pkgauth.HashService{}, pkgauth.NewJWTService(cfg.JWTSecret))

	return &Services{
		AuthService:       authService,
		TaskService:       taskService,
		SubmissionService: submissionService,
		WalletService:     walletService,
	}
}
