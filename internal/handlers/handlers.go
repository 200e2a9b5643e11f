package handlers

import (
	"net/http"

	_ "github.com/taskhive/server/docs"
	adminhandlers "github.com/taskhive/server/internal/handlers/admin"
	authhandlers "github.com/taskhive/server/internal/handlers/auth"
	submissionhandlers "github.com/taskhive/server/internal/handlers/submissions"
	taskhandlers "github.com/taskhive/server/internal/handlers/tasks"
	wallethandlers "github.com/taskhive/server/internal/handlers/wallet"
	"github.com/taskhive/server/internal/service"
	"github.com/taskhive/server/pkg/auth"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
}

type TaskHandler interface {
	Add(w http.ResponseWriter, r *http.Request)
	My(w http.ResponseWriter, r *http.Request)
	Available(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type SubmissionHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	ByWorker(w http.ResponseWriter, r *http.Request)
	ByTask(w http.ResponseWriter, r *http.Request)
	UpdateStatus(w http.ResponseWriter, r *http.Request)
}

type WalletHandler interface {
	Withdraw(w http.ResponseWriter, r *http.Request)
	Purchase(w http.ResponseWriter, r *http.Request)
}

type AdminHandler interface {
	WithdrawRequests(w http.ResponseWriter, r *http.Request)
	SettleWithdrawRequest(w http.ResponseWriter, r *http.Request)
	AllSubmissions(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler       AuthHandler
	TaskHandler       TaskHandler
	SubmissionHandler SubmissionHandler
	WalletHandler     WalletHandler
	AdminHandler      AdminHandler

	jwtService auth.JWTServiceInterface
}

func New(s *service.Services, jwtService auth.JWTServiceInterface) *Handlers {
	return &Handlers{
		AuthHandler:       authhandlers.New(s.AuthService),
		TaskHandler:       taskhandlers.New(s.TaskService),
		SubmissionHandler: submissionhandlers.New(s.SubmissionService),
		WalletHandler:     wallethandlers.New(s.WalletService),
		AdminHandler:      adminhandlers.New(s.WalletService, s.SubmissionService),
		jwtService:        jwtService,
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", h.AuthHandler.Register)
			r.Post("/login", h.AuthHandler.Login)
		})

		r.Group(func(r chi.Router) {
			r.Use(auth.Middleware(h.jwtService))
			r.Route("/tasks", func(r chi.Router) {
				r.Post("/add", h.TaskHandler.Add)
				r.Get("/my", h.TaskHandler.My)
				r.Get("/available", h.TaskHandler.Available)

				r.Post("/submissions", h.SubmissionHandler.Create)
				r.Get("/submissions/worker/{email}", h.SubmissionHandler.ByWorker)
				r.Get("/submissions/task/{id}", h.SubmissionHandler.ByTask)
				r.Put("/submissions/{id}/status", h.SubmissionHandler.UpdateStatus)

				r.Put("/{id}", h.TaskHandler.Update)
				r.Delete("/{id}", h.TaskHandler.Delete)
			})
			r.Route("/wallet", func(r chi.Router) {
				r.Post("/withdraw", h.WalletHandler.Withdraw)
				r.Post("/purchase", h.WalletHandler.Purchase)
			})
			r.Route("/admin", func(r chi.Router) {
				r.Use(auth.RequireRole("admin"))
				r.Get("/withdraw-requests", h.AdminHandler.WithdrawRequests)
				r.Delete("/withdraw-requests/{id}", h.AdminHandler.SettleWithdrawRequest)
				r.Get("/all-submissions", h.AdminHandler.AllSubmissions)
			})
		})
	})

	return r
}
